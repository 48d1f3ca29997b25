package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/quillsign/quillsign/internal/application"
	"github.com/quillsign/quillsign/internal/domain/recipient"
	"github.com/quillsign/quillsign/internal/repository"
	"github.com/quillsign/quillsign/pkg/response"
	"github.com/quillsign/quillsign/pkg/utils"
)

type RecipientHandler struct {
	svc   *application.RecipientService
	repos *repository.Repos
}

func NewRecipientHandler(svc *application.RecipientService, repos *repository.Repos) *RecipientHandler {
	return &RecipientHandler{svc: svc, repos: repos}
}

func (h *RecipientHandler) Add(c *gin.Context) {
	uid, _ := utils.GetUserIDFromContext(c)
	docID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid document ID"})
		return
	}

	var input recipient.CreateRecipientDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: bindingErrorMessage(err)})
		return
	}

	rec, err := h.svc.Add(docID, uid, input)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.LogAuditWithConsole(c, "add_recipient", "document", c.Param("id"), nil, rec, "recipient added", h.repos.Audit)
	c.JSON(http.StatusCreated, rec)
}

func (h *RecipientHandler) ListByDocument(c *gin.Context) {
	uid, _ := utils.GetUserIDFromContext(c)
	docID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid document ID"})
		return
	}

	recs, err := h.svc.ListByDocument(docID, uid)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, recs)
}

func (h *RecipientHandler) Remove(c *gin.Context) {
	uid, _ := utils.GetUserIDFromContext(c)
	id, err := utils.ParseIDParam(c, "recipient_id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid recipient ID"})
		return
	}

	if err := h.svc.Remove(id, uid); err != nil {
		respondServiceError(c, err)
		return
	}

	utils.LogAuditWithConsole(c, "remove_recipient", "document", c.Param("recipient_id"), nil, nil, "recipient removed", h.repos.Audit)
	c.JSON(http.StatusOK, response.MessageResponse{Message: "Recipient removed"})
}

// Sign godoc
// @Summary Sign or decline a document as a listed recipient
// @Tags recipients
// @Accept json
// @Produce json
// @Param id path int true "Document ID"
// @Param input body recipient.RecipientSignDTO true "Signature or decline"
// @Success 200 {object} recipient.DocumentRecipient
// @Failure 403 {object} response.ErrorResponse "Email not on recipient list, or witness acting before their signer"
// @Failure 409 {object} response.ErrorResponse "Recipient already acted"
// @Router /documents/{id}/recipients/sign [post]
func (h *RecipientHandler) Sign(c *gin.Context) {
	docID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid document ID"})
		return
	}

	var input recipient.RecipientSignDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: bindingErrorMessage(err)})
		return
	}

	rec, err := h.svc.Sign(docID, input)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, rec)
}
