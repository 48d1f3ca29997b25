package repository

import (
	"github.com/quillsign/quillsign/internal/domain/document"
	"gorm.io/gorm"
)

type DocumentRepo interface {
	CreateDocument(d *document.Document) error
	GetDocumentByID(id uint) (document.Document, error)
	GetOwnerIDByDocumentID(id uint) (uint, error)
	UpdateDocument(d *document.Document) error
	// TransitionStatus moves the document to `to` only if its current status is
	// one of `from`. Reports whether the row actually changed.
	TransitionStatus(id uint, from []document.Status, to document.Status) (bool, error)
	SetArtifact(id uint, path string) error
	ListDocumentsByOwner(ownerID uint) ([]document.Document, error)
	DeleteDocument(id uint) error
	WithTx(tx *gorm.DB) DocumentRepo
}

type DBDocumentRepo struct {
	db *gorm.DB
}

func NewDocumentRepo(db *gorm.DB) *DBDocumentRepo {
	return &DBDocumentRepo{
		db: db,
	}
}

func (r *DBDocumentRepo) CreateDocument(d *document.Document) error {
	return r.db.Create(d).Error
}

func (r *DBDocumentRepo) GetDocumentByID(id uint) (document.Document, error) {
	var d document.Document
	err := r.db.First(&d, id).Error
	return d, err
}

func (r *DBDocumentRepo) GetOwnerIDByDocumentID(id uint) (uint, error) {
	var ownerID uint
	err := r.db.Model(&document.Document{}).
		Select("owner_id").
		Where("d_id = ?", id).
		First(&ownerID).Error
	if err != nil {
		return 0, err
	}
	return ownerID, nil
}

func (r *DBDocumentRepo) UpdateDocument(d *document.Document) error {
	return r.db.Save(d).Error
}

func (r *DBDocumentRepo) TransitionStatus(id uint, from []document.Status, to document.Status) (bool, error) {
	res := r.db.Model(&document.Document{}).
		Where("d_id = ? AND status IN ?", id, from).
		Update("status", to)
	return res.RowsAffected == 1, res.Error
}

func (r *DBDocumentRepo) SetArtifact(id uint, path string) error {
	return r.db.Model(&document.Document{}).
		Where("d_id = ?", id).
		Updates(map[string]interface{}{
			"artifact_path": path,
			"status":        document.StatusCompleted,
		}).Error
}

func (r *DBDocumentRepo) ListDocumentsByOwner(ownerID uint) ([]document.Document, error) {
	var docs []document.Document
	if err := r.db.Where("owner_id = ?", ownerID).Order("create_at DESC").Find(&docs).Error; err != nil {
		return nil, err
	}
	return docs, nil
}

func (r *DBDocumentRepo) DeleteDocument(id uint) error {
	return r.db.Delete(&document.Document{}, id).Error
}

func (r *DBDocumentRepo) WithTx(tx *gorm.DB) DocumentRepo {
	if tx == nil {
		return r
	}
	return &DBDocumentRepo{
		db: tx,
	}
}
