package repository

import (
	"errors"

	"github.com/quillsign/quillsign/internal/domain/field"
	"gorm.io/gorm"
)

type SignatureRepo interface {
	// UpsertSignature keeps at most one live Signature per (document, signer).
	// An existing row is overwritten in place.
	UpsertSignature(s *field.Signature) error
	GetByDocumentAndUser(documentID, userID uint) (*field.Signature, error)
	ListByDocumentID(documentID uint) ([]field.Signature, error)
	// ClearFieldLink detaches any Signature rows pointing at a deleted field.
	// The rows themselves are kept as audit records.
	ClearFieldLink(fieldID uint) error
	WithTx(tx *gorm.DB) SignatureRepo
}

type DBSignatureRepo struct {
	db *gorm.DB
}

func NewSignatureRepo(db *gorm.DB) *DBSignatureRepo {
	return &DBSignatureRepo{
		db: db,
	}
}

func (r *DBSignatureRepo) UpsertSignature(s *field.Signature) error {
	var existing field.Signature
	err := r.db.Where("document_id = ? AND user_id = ?", s.DocumentID, s.UserID).
		First(&existing).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return r.db.Create(s).Error
		}
		return err
	}
	s.ID = existing.ID
	s.SignedAt = existing.SignedAt
	return r.db.Save(s).Error
}

func (r *DBSignatureRepo) GetByDocumentAndUser(documentID, userID uint) (*field.Signature, error) {
	var s field.Signature
	if err := r.db.Where("document_id = ? AND user_id = ?", documentID, userID).
		First(&s).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *DBSignatureRepo) ListByDocumentID(documentID uint) ([]field.Signature, error) {
	var sigs []field.Signature
	if err := r.db.Where("document_id = ?", documentID).Find(&sigs).Error; err != nil {
		return nil, err
	}
	return sigs, nil
}

func (r *DBSignatureRepo) ClearFieldLink(fieldID uint) error {
	return r.db.Model(&field.Signature{}).
		Where("field_id = ?", fieldID).
		Update("field_id", nil).Error
}

func (r *DBSignatureRepo) WithTx(tx *gorm.DB) SignatureRepo {
	if tx == nil {
		return r
	}
	return &DBSignatureRepo{
		db: tx,
	}
}
