package repository

import (
	"github.com/quillsign/quillsign/db"
	"gorm.io/gorm"
)

type Repos struct {
	Document  DocumentRepo
	Field     FieldRepo
	Signature SignatureRepo
	Signing   SigningRepo
	Recipient RecipientRepo
	User      UserRepo
	Audit     AuditRepo

	db *gorm.DB
}

func New() *Repos {
	return NewRepositories(db.DB)
}

func NewRepositories(db *gorm.DB) *Repos {
	return &Repos{
		Document:  NewDocumentRepo(db),
		Field:     NewFieldRepo(db),
		Signature: NewSignatureRepo(db),
		Signing:   NewSigningRepo(db),
		Recipient: NewRecipientRepo(db),
		User:      NewUserRepo(db),
		Audit:     NewAuditRepo(db),
		db:        db,
	}
}

func (r *Repos) Begin() *gorm.DB {
	return r.db.Begin()
}

func (r *Repos) WithTx(tx *gorm.DB) *Repos {
	return &Repos{
		Document:  r.Document.WithTx(tx),
		Field:     r.Field.WithTx(tx),
		Signature: r.Signature.WithTx(tx),
		Signing:   r.Signing.WithTx(tx),
		Recipient: r.Recipient.WithTx(tx),
		User:      r.User.WithTx(tx),
		Audit:     r.Audit.WithTx(tx),
		db:        tx,
	}
}

// ExecTx runs fn with every repository bound to a single transaction.
// Without a backing db (repos assembled by hand in tests) fn runs
// against the container as-is.
func (r *Repos) ExecTx(fn func(*Repos) error) error {
	if r.db == nil {
		return fn(r)
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		txRepos := r.WithTx(tx)
		return fn(txRepos)
	})
}
