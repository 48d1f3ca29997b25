package repository

import (
	"github.com/quillsign/quillsign/internal/domain/signing"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SigningRepo interface {
	CreateRequest(r *signing.SigningRequest) error
	GetRequestByID(id uint) (*signing.SigningRequest, error)
	GetRequestByToken(token string) (*signing.SigningRequest, error)
	// GetRequestByTokenForUpdate takes a row lock on the request so concurrent
	// completion recomputations serialize on the same snapshot.
	GetRequestByTokenForUpdate(token string) (*signing.SigningRequest, error)
	ListRequestsByDocumentID(documentID uint) ([]signing.SigningRequest, error)
	UpdateRequest(r *signing.SigningRequest) error
	UpdateRequestStatus(id uint, status signing.Status) error
	// MarkCompleted flips the request to completed only if it is not already;
	// the reported bool makes the winner of concurrent recomputations explicit.
	MarkCompleted(id uint, snapshot datatypes.JSON) (bool, error)
	// AdvanceSignerIndex bumps current_signer_index from `from` to `from+1`.
	// The guarded WHERE keeps the index strictly monotonic under concurrency.
	AdvanceSignerIndex(id uint, from int) (bool, error)
	UpdateSigner(s *signing.SignerInfo) error
	WithTx(tx *gorm.DB) SigningRepo
}

type DBSigningRepo struct {
	db *gorm.DB
}

func NewSigningRepo(db *gorm.DB) *DBSigningRepo {
	return &DBSigningRepo{
		db: db,
	}
}

func (r *DBSigningRepo) CreateRequest(req *signing.SigningRequest) error {
	return r.db.Create(req).Error
}

func (r *DBSigningRepo) GetRequestByID(id uint) (*signing.SigningRequest, error) {
	var req signing.SigningRequest
	if err := r.db.Preload("Signers", func(db *gorm.DB) *gorm.DB {
		return db.Order("sign_order ASC, si_id ASC")
	}).First(&req, id).Error; err != nil {
		return nil, err
	}
	return &req, nil
}

func (r *DBSigningRepo) GetRequestByToken(token string) (*signing.SigningRequest, error) {
	var req signing.SigningRequest
	if err := r.db.Preload("Signers", func(db *gorm.DB) *gorm.DB {
		return db.Order("sign_order ASC, si_id ASC")
	}).Where("token = ?", token).First(&req).Error; err != nil {
		return nil, err
	}
	return &req, nil
}

func (r *DBSigningRepo) GetRequestByTokenForUpdate(token string) (*signing.SigningRequest, error) {
	var req signing.SigningRequest
	if err := r.db.Clauses(clause.Locking{Strength: "UPDATE"}).
		Preload("Signers", func(db *gorm.DB) *gorm.DB {
			return db.Order("sign_order ASC, si_id ASC")
		}).Where("token = ?", token).First(&req).Error; err != nil {
		return nil, err
	}
	return &req, nil
}

func (r *DBSigningRepo) ListRequestsByDocumentID(documentID uint) ([]signing.SigningRequest, error) {
	var reqs []signing.SigningRequest
	if err := r.db.Preload("Signers", func(db *gorm.DB) *gorm.DB {
		return db.Order("sign_order ASC, si_id ASC")
	}).Where("document_id = ?", documentID).
		Order("create_at DESC").
		Find(&reqs).Error; err != nil {
		return nil, err
	}
	return reqs, nil
}

func (r *DBSigningRepo) UpdateRequest(req *signing.SigningRequest) error {
	return r.db.Omit("Signers").Save(req).Error
}

func (r *DBSigningRepo) UpdateRequestStatus(id uint, status signing.Status) error {
	return r.db.Model(&signing.SigningRequest{}).
		Where("sr_id = ?", id).
		Update("status", status).Error
}

func (r *DBSigningRepo) MarkCompleted(id uint, snapshot datatypes.JSON) (bool, error) {
	res := r.db.Model(&signing.SigningRequest{}).
		Where("sr_id = ? AND status <> ?", id, signing.StatusCompleted).
		Updates(map[string]interface{}{
			"status":             signing.StatusCompleted,
			"completed_snapshot": snapshot,
		})
	return res.RowsAffected == 1, res.Error
}

func (r *DBSigningRepo) AdvanceSignerIndex(id uint, from int) (bool, error) {
	res := r.db.Model(&signing.SigningRequest{}).
		Where("sr_id = ? AND current_signer_index = ?", id, from).
		Update("current_signer_index", from+1)
	return res.RowsAffected == 1, res.Error
}

func (r *DBSigningRepo) UpdateSigner(s *signing.SignerInfo) error {
	return r.db.Save(s).Error
}

func (r *DBSigningRepo) WithTx(tx *gorm.DB) SigningRepo {
	if tx == nil {
		return r
	}
	return &DBSigningRepo{
		db: tx,
	}
}
