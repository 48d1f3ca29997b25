package repository

import (
	"errors"

	"github.com/quillsign/quillsign/internal/domain/field"
	"gorm.io/gorm"
)

type FieldRepo interface {
	CreateField(f *field.SignatureField) error
	CreateFields(fs []*field.SignatureField) error
	GetFieldByID(id uint) (*field.SignatureField, error)
	UpdateField(f *field.SignatureField) error
	DeleteField(id uint) error
	// ListFieldsByDocumentID returns fields in ascending (page, id) order so
	// that rendering is deterministic.
	ListFieldsByDocumentID(documentID uint) ([]field.SignatureField, error)
	CountUnfilledRequired(documentID uint) (int64, error)
	WithTx(tx *gorm.DB) FieldRepo
}

type DBFieldRepo struct {
	db *gorm.DB
}

func NewFieldRepo(db *gorm.DB) *DBFieldRepo {
	return &DBFieldRepo{
		db: db,
	}
}

func (r *DBFieldRepo) CreateField(f *field.SignatureField) error {
	return r.db.Create(f).Error
}

func (r *DBFieldRepo) CreateFields(fs []*field.SignatureField) error {
	return r.db.Create(fs).Error
}

func (r *DBFieldRepo) GetFieldByID(id uint) (*field.SignatureField, error) {
	var f field.SignatureField
	if err := r.db.First(&f, id).Error; err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *DBFieldRepo) UpdateField(f *field.SignatureField) error {
	if f.ID == 0 {
		return errors.New("missing field ID")
	}
	return r.db.Save(f).Error
}

func (r *DBFieldRepo) DeleteField(id uint) error {
	return r.db.Delete(&field.SignatureField{}, id).Error
}

func (r *DBFieldRepo) ListFieldsByDocumentID(documentID uint) ([]field.SignatureField, error) {
	var fields []field.SignatureField
	if err := r.db.Where("document_id = ?", documentID).
		Order("page ASC, f_id ASC").
		Find(&fields).Error; err != nil {
		return nil, err
	}
	return fields, nil
}

func (r *DBFieldRepo) CountUnfilledRequired(documentID uint) (int64, error) {
	var count int64
	err := r.db.Model(&field.SignatureField{}).
		Where("document_id = ? AND required = ? AND (value IS NULL OR value = '')", documentID, true).
		Count(&count).Error
	return count, err
}

func (r *DBFieldRepo) WithTx(tx *gorm.DB) FieldRepo {
	if tx == nil {
		return r
	}
	return &DBFieldRepo{
		db: tx,
	}
}
