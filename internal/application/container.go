package application

import (
	"github.com/quillsign/quillsign/internal/repository"
)

type Services struct {
	User      *UserService
	Document  *DocumentService
	Field     *FieldService
	Signing   *SigningService
	Recipient *RecipientService
	Finalize  *FinalizeService
	Audit     *AuditService
}

func New(repos *repository.Repos) *Services {
	storage := NewMinioStorage()
	notifier := NewLogNotifier()
	return &Services{
		User:      NewUserService(repos),
		Document:  NewDocumentService(repos, storage),
		Field:     NewFieldService(repos),
		Signing:   NewSigningService(repos, notifier),
		Recipient: NewRecipientService(repos),
		Finalize:  NewFinalizeService(repos, storage),
		Audit:     NewAuditService(repos),
	}
}
