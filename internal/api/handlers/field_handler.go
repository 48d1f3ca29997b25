package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/quillsign/quillsign/internal/application"
	"github.com/quillsign/quillsign/internal/domain/field"
	"github.com/quillsign/quillsign/pkg/response"
	"github.com/quillsign/quillsign/pkg/utils"
)

type FieldHandler struct {
	svc *application.FieldService
}

func NewFieldHandler(svc *application.FieldService) *FieldHandler {
	return &FieldHandler{svc: svc}
}

// Create godoc
// @Summary Place a field on a document page
// @Tags fields
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param input body field.CreateFieldDTO true "Field definition"
// @Success 201 {object} field.SignatureField
// @Failure 422 {object} response.ErrorResponse "Invalid type, page or geometry"
// @Router /fields [post]
func (h *FieldHandler) Create(c *gin.Context) {
	uid, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	var input field.CreateFieldDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: bindingErrorMessage(err)})
		return
	}

	f, err := h.svc.Create(uid, input)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, f)
}

func (h *FieldHandler) Update(c *gin.Context) {
	uid, _ := utils.GetUserIDFromContext(c)
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid field ID"})
		return
	}

	var input field.UpdateFieldDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: bindingErrorMessage(err)})
		return
	}

	f, err := h.svc.Update(id, uid, input)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, f)
}

func (h *FieldHandler) Delete(c *gin.Context) {
	uid, _ := utils.GetUserIDFromContext(c)
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid field ID"})
		return
	}

	if err := h.svc.Delete(id, uid); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "Field deleted"})
}

func (h *FieldHandler) ListByDocument(c *gin.Context) {
	uid, _ := utils.GetUserIDFromContext(c)
	docID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid document ID"})
		return
	}

	fields, err := h.svc.ListByDocument(docID, uid)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, fields)
}

// Fill writes a value into a field as the authenticated user.
func (h *FieldHandler) Fill(c *gin.Context) {
	uid, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}
	email, _ := utils.GetUserEmailFromContext(c)

	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid field ID"})
		return
	}

	var input field.FillFieldDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: bindingErrorMessage(err)})
		return
	}

	f, err := h.svc.Fill(id, uid, email, input)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, f)
}

// CreateFromTemplate accepts either a JSON body of field specs or an uploaded
// YAML template file.
func (h *FieldHandler) CreateFromTemplate(c *gin.Context) {
	uid, _ := utils.GetUserIDFromContext(c)
	docID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid document ID"})
		return
	}

	var specs []field.TemplateFieldSpec
	if fileHeader, err := c.FormFile("template"); err == nil {
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
		specs, err = utils.ParseFieldTemplate(data)
		if err != nil {
			c.JSON(http.StatusUnprocessableEntity, response.ErrorResponse{Error: err.Error()})
			return
		}
	} else {
		var input field.CreateFromTemplateDTO
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: bindingErrorMessage(err)})
			return
		}
		specs = input.Fields
	}

	fields, err := h.svc.CreateFromTemplate(docID, uid, specs)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, fields)
}

// Link clones a field onto additional pages.
func (h *FieldHandler) Link(c *gin.Context) {
	uid, _ := utils.GetUserIDFromContext(c)
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid field ID"})
		return
	}

	var input field.LinkFieldsDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: bindingErrorMessage(err)})
		return
	}

	fields, err := h.svc.LinkAcrossPages(id, uid, input.TargetPages)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, fields)
}
