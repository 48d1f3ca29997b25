package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/quillsign/quillsign/internal/application"
	"github.com/quillsign/quillsign/internal/repository"
)

type Handlers struct {
	User      *UserHandler
	Document  *DocumentHandler
	Field     *FieldHandler
	Signing   *SigningHandler
	Recipient *RecipientHandler
	Audit     *AuditHandler
	Router    *gin.Engine
}

func New(svc *application.Services, repos *repository.Repos, router *gin.Engine) *Handlers {
	return &Handlers{
		User:      NewUserHandler(svc.User),
		Document:  NewDocumentHandler(svc.Document, svc.Finalize, repos),
		Field:     NewFieldHandler(svc.Field),
		Signing:   NewSigningHandler(svc.Signing),
		Recipient: NewRecipientHandler(svc.Recipient, repos),
		Audit:     NewAuditHandler(svc.Audit),
		Router:    router,
	}
}
