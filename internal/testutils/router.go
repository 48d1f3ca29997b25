package testutils

import (
	"github.com/gin-gonic/gin"

	"github.com/quillsign/quillsign/internal/api/routes"
	"github.com/quillsign/quillsign/internal/application"
	"github.com/quillsign/quillsign/internal/repository"
)

// SetupRouter builds a test engine on top of explicit repositories so
// handler tests can swap in mocks.
func SetupRouter(repos *repository.Repos, services *application.Services) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	routes.RegisterRoutesWith(r, repos, services)
	return r
}
