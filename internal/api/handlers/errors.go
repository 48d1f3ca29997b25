package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/quillsign/quillsign/internal/application"
	"github.com/quillsign/quillsign/pkg/response"
)

// respondServiceError maps the application error taxonomy onto HTTP statuses.
// Every handler funnels service failures through here so the mapping stays in
// one place.
func respondServiceError(c *gin.Context, err error) {
	var verr *application.ValidationError
	if errors.As(err, &verr) {
		c.JSON(http.StatusUnprocessableEntity, response.ErrorResponse{
			Error:    verr.Error(),
			Unfilled: int(verr.Unfilled),
		})
		return
	}

	switch {
	case errors.Is(err, application.ErrDocumentNotFound),
		errors.Is(err, application.ErrFieldNotFound),
		errors.Is(err, application.ErrRequestNotFound),
		errors.Is(err, application.ErrSignerNotFound),
		errors.Is(err, application.ErrUserNotFound):
		c.JSON(http.StatusNotFound, response.ErrorResponse{Error: err.Error()})
	case errors.Is(err, application.ErrForbidden),
		errors.Is(err, application.ErrNotYourTurn):
		c.JSON(http.StatusForbidden, response.ErrorResponse{Error: err.Error()})
	case errors.Is(err, application.ErrGone):
		c.JSON(http.StatusGone, response.ErrorResponse{Error: err.Error()})
	case errors.Is(err, application.ErrConflict),
		errors.Is(err, application.ErrEmailTaken):
		c.JSON(http.StatusConflict, response.ErrorResponse{Error: err.Error()})
	case errors.Is(err, application.ErrInvalidInput):
		c.JSON(http.StatusUnprocessableEntity, response.ErrorResponse{Error: err.Error()})
	case errors.Is(err, application.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
	}
}
