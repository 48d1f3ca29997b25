package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/quillsign/quillsign/internal/repository"
	"github.com/quillsign/quillsign/pkg/response"
	"github.com/quillsign/quillsign/pkg/utils"
)

// Auth handles authorization middleware
type Auth struct {
	repos *repository.Repos
}

func NewAuth(repos *repository.Repos) *Auth {
	return &Auth{repos: repos}
}

// OwnerExtractor resolves the owning user id for the resource a request
// targets.
type OwnerExtractor func(c *gin.Context, repos *repository.Repos) (uint, error)

// FromDocumentIDParam resolves ownership through the :id document parameter.
func FromDocumentIDParam() OwnerExtractor {
	return func(c *gin.Context, repos *repository.Repos) (uint, error) {
		id, err := utils.ParseIDParam(c, "id")
		if err != nil {
			return 0, err
		}
		return repos.Document.GetOwnerIDByDocumentID(id)
	}
}

// DocumentOwner rejects requests whose JWT identity does not own the target
// document. Services re-check ownership; this keeps unauthorized requests out
// of the handlers entirely.
func (a *Auth) DocumentOwner(extractor OwnerExtractor) gin.HandlerFunc {
	return func(c *gin.Context) {
		uid, err := utils.GetUserIDFromContext(c)
		if err != nil {
			c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
			c.Abort()
			return
		}

		ownerID, err := extractor(c, a.repos)
		if err != nil {
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "document not found"})
			c.Abort()
			return
		}
		if ownerID != uid {
			c.JSON(http.StatusForbidden, response.ErrorResponse{Error: "access denied"})
			c.Abort()
			return
		}

		c.Next()
	}
}

// LoggingMiddleware logs requests (placeholder; hook for real logging)
func LoggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
	}
}

// CORSMiddleware allows browser clients on local and configured origins.
func CORSMiddleware() gin.HandlerFunc {
	config := cors.Config{
		AllowOriginFunc: func(origin string) bool {
			if strings.HasPrefix(origin, "http://localhost:") {
				return true
			}
			if strings.HasPrefix(origin, "http://127.0.0.1:") {
				return true
			}
			return false
		},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	return cors.New(config)
}
