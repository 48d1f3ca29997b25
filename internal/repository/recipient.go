package repository

import (
	"strings"

	"github.com/quillsign/quillsign/internal/domain/recipient"
	"gorm.io/gorm"
)

type RecipientRepo interface {
	CreateRecipient(rec *recipient.DocumentRecipient) error
	GetRecipientByID(id uint) (*recipient.DocumentRecipient, error)
	// GetByDocumentAndEmail matches the email case-insensitively.
	GetByDocumentAndEmail(documentID uint, email string) (*recipient.DocumentRecipient, error)
	ListByDocumentID(documentID uint) ([]recipient.DocumentRecipient, error)
	UpdateRecipient(rec *recipient.DocumentRecipient) error
	DeleteRecipient(id uint) error
	WithTx(tx *gorm.DB) RecipientRepo
}

type DBRecipientRepo struct {
	db *gorm.DB
}

func NewRecipientRepo(db *gorm.DB) *DBRecipientRepo {
	return &DBRecipientRepo{
		db: db,
	}
}

func (r *DBRecipientRepo) CreateRecipient(rec *recipient.DocumentRecipient) error {
	rec.Email = strings.ToLower(rec.Email)
	return r.db.Create(rec).Error
}

func (r *DBRecipientRepo) GetRecipientByID(id uint) (*recipient.DocumentRecipient, error) {
	var rec recipient.DocumentRecipient
	if err := r.db.First(&rec, id).Error; err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *DBRecipientRepo) GetByDocumentAndEmail(documentID uint, email string) (*recipient.DocumentRecipient, error) {
	var rec recipient.DocumentRecipient
	if err := r.db.Where("document_id = ? AND LOWER(email) = LOWER(?)", documentID, email).
		First(&rec).Error; err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *DBRecipientRepo) ListByDocumentID(documentID uint) ([]recipient.DocumentRecipient, error) {
	var recs []recipient.DocumentRecipient
	if err := r.db.Where("document_id = ?", documentID).
		Order("sign_order ASC, r_id ASC").
		Find(&recs).Error; err != nil {
		return nil, err
	}
	return recs, nil
}

func (r *DBRecipientRepo) UpdateRecipient(rec *recipient.DocumentRecipient) error {
	return r.db.Save(rec).Error
}

func (r *DBRecipientRepo) DeleteRecipient(id uint) error {
	return r.db.Delete(&recipient.DocumentRecipient{}, id).Error
}

func (r *DBRecipientRepo) WithTx(tx *gorm.DB) RecipientRepo {
	if tx == nil {
		return r
	}
	return &DBRecipientRepo{
		db: tx,
	}
}
