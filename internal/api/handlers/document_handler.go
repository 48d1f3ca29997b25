package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/quillsign/quillsign/internal/application"
	"github.com/quillsign/quillsign/internal/domain/document"
	"github.com/quillsign/quillsign/internal/repository"
	"github.com/quillsign/quillsign/pkg/response"
	"github.com/quillsign/quillsign/pkg/utils"
)

// maxUploadBytes caps document uploads at 32 MiB.
const maxUploadBytes = 32 << 20

type DocumentHandler struct {
	svc      *application.DocumentService
	finalize *application.FinalizeService
	repos    *repository.Repos
}

func NewDocumentHandler(svc *application.DocumentService, finalize *application.FinalizeService, repos *repository.Repos) *DocumentHandler {
	return &DocumentHandler{svc: svc, finalize: finalize, repos: repos}
}

// Upload godoc
// @Summary Upload a new PDF document
// @Tags documents
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param title formData string true "Document title"
// @Param file formData file true "PDF file"
// @Success 201 {object} document.Document
// @Failure 400 {object} response.ErrorResponse "Bad request"
// @Failure 422 {object} response.ErrorResponse "Not a readable PDF"
// @Router /documents [post]
func (h *DocumentHandler) Upload(c *gin.Context) {
	uid, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	var input document.CreateDocumentDTO
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: bindingErrorMessage(err)})
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "file is required"})
		return
	}
	if fileHeader.Size > maxUploadBytes {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "file exceeds upload limit"})
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}

	doc, err := h.svc.Upload(c.Request.Context(), uid, input.Title, fileHeader.Filename, data)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.LogAuditWithConsole(c, "upload", "document", doc.Filename, nil, doc, "document uploaded", h.repos.Audit)
	c.JSON(http.StatusCreated, doc)
}

func (h *DocumentHandler) List(c *gin.Context) {
	uid, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	docs, err := h.svc.List(uid)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, docs)
}

func (h *DocumentHandler) Get(c *gin.Context) {
	uid, _ := utils.GetUserIDFromContext(c)
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid document ID"})
		return
	}

	doc, err := h.svc.Get(id, uid)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, doc)
}

func (h *DocumentHandler) Update(c *gin.Context) {
	uid, _ := utils.GetUserIDFromContext(c)
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid document ID"})
		return
	}

	var input document.UpdateDocumentDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: bindingErrorMessage(err)})
		return
	}

	doc, err := h.svc.UpdateMeta(id, uid, input)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, doc)
}

func (h *DocumentHandler) Delete(c *gin.Context) {
	uid, _ := utils.GetUserIDFromContext(c)
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid document ID"})
		return
	}

	if err := h.svc.Delete(c.Request.Context(), id, uid); err != nil {
		respondServiceError(c, err)
		return
	}

	utils.LogAuditWithConsole(c, "delete", "document", c.Param("id"), nil, nil, "document deleted", h.repos.Audit)
	c.JSON(http.StatusOK, response.MessageResponse{Message: "Document deleted"})
}

// Download redirects the owner to a short-lived presigned URL. With
// ?artifact=true it serves the finalized rendering instead of the original.
func (h *DocumentHandler) Download(c *gin.Context) {
	uid, _ := utils.GetUserIDFromContext(c)
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid document ID"})
		return
	}

	link, err := h.svc.DownloadLink(c.Request.Context(), id, uid, c.Query("artifact") == "true")
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.Redirect(http.StatusTemporaryRedirect, link)
}

// Finalize godoc
// @Summary Render filled fields into the PDF and mark it completed
// @Tags documents
// @Security BearerAuth
// @Produce json
// @Param id path int true "Document ID"
// @Success 200 {object} response.FinalizeResponse
// @Failure 409 {object} response.ErrorResponse "Already finalized"
// @Failure 422 {object} response.ErrorResponse "Required fields unfilled"
// @Router /documents/{id}/finalize [post]
func (h *DocumentHandler) Finalize(c *gin.Context) {
	uid, _ := utils.GetUserIDFromContext(c)
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid document ID"})
		return
	}

	doc, embedded, err := h.finalize.Finalize(c.Request.Context(), id, uid)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	artifact := ""
	if doc.ArtifactPath != nil {
		artifact = *doc.ArtifactPath
	}
	utils.LogAuditWithConsole(c, "finalize", "document", c.Param("id"), nil, doc, "document finalized", h.repos.Audit)
	c.JSON(http.StatusOK, response.FinalizeResponse{
		Message:        "Document finalized",
		ArtifactPath:   artifact,
		FieldsEmbedded: embedded,
	})
}

// Preview streams the current fill state as a PDF without persisting anything.
func (h *DocumentHandler) Preview(c *gin.Context) {
	uid, _ := utils.GetUserIDFromContext(c)
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid document ID"})
		return
	}

	out, _, err := h.finalize.Preview(c.Request.Context(), id, uid)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.Data(http.StatusOK, "application/pdf", out)
}
