package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/quillsign/quillsign/internal/application"
	"github.com/quillsign/quillsign/internal/domain/signing"
	"github.com/quillsign/quillsign/pkg/response"
	"github.com/quillsign/quillsign/pkg/utils"
)

type SigningHandler struct {
	svc *application.SigningService
}

func NewSigningHandler(svc *application.SigningService) *SigningHandler {
	return &SigningHandler{svc: svc}
}

// Create godoc
// @Summary Start a signing round for a document
// @Tags signing
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param input body signing.CreateRequestDTO true "Signing request"
// @Success 201 {object} signing.SigningRequest
// @Failure 409 {object} response.ErrorResponse "Document already finalized"
// @Router /signing-requests [post]
func (h *SigningHandler) Create(c *gin.Context) {
	uid, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	var input signing.CreateRequestDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: bindingErrorMessage(err)})
		return
	}

	req, err := h.svc.CreateRequest(uid, input)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, req)
}

func (h *SigningHandler) ListByDocument(c *gin.Context) {
	uid, _ := utils.GetUserIDFromContext(c)
	docID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid document ID"})
		return
	}

	reqs, err := h.svc.ListByDocument(docID, uid)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, reqs)
}

func (h *SigningHandler) Resend(c *gin.Context) {
	uid, _ := utils.GetUserIDFromContext(c)
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid request ID"})
		return
	}

	req, err := h.svc.Resend(id, uid)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, req)
}

func (h *SigningHandler) Cancel(c *gin.Context) {
	uid, _ := utils.GetUserIDFromContext(c)
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid request ID"})
		return
	}

	if err := h.svc.Cancel(id, uid); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "Signing request cancelled"})
}

// View godoc
// @Summary Resolve a signing token for an anonymous signer
// @Tags signing
// @Produce json
// @Param token path string true "Signing token"
// @Param email query string false "Signer email"
// @Success 200 {object} signing.SignerView
// @Failure 403 {object} response.ErrorResponse "Email not on signer list"
// @Failure 404 {object} response.ErrorResponse "Unknown token"
// @Failure 410 {object} response.ErrorResponse "Request expired"
// @Router /sign/{token} [get]
func (h *SigningHandler) View(c *gin.Context) {
	view, err := h.svc.ViewByToken(c.Param("token"), c.Query("email"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// Fields lists the fields the named signer may act on.
func (h *SigningHandler) Fields(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "email query parameter is required"})
		return
	}

	fields, err := h.svc.FieldsForSigner(c.Param("token"), email)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, fields)
}

// Sign godoc
// @Summary Submit a signature or rejection for a signing token
// @Tags signing
// @Accept json
// @Produce json
// @Param token path string true "Signing token"
// @Param input body signing.SignByTokenDTO true "Signature payload"
// @Success 200 {object} signing.SigningRequest
// @Failure 403 {object} response.ErrorResponse "Email not on signer list, or not this signer's turn"
// @Failure 409 {object} response.ErrorResponse "Already signed"
// @Failure 410 {object} response.ErrorResponse "Request expired"
// @Router /sign/{token} [post]
func (h *SigningHandler) Sign(c *gin.Context) {
	var input signing.SignByTokenDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: bindingErrorMessage(err)})
		return
	}

	req, err := h.svc.SignByToken(c.Param("token"), input)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, req)
}
