package routes

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/quillsign/quillsign/internal/api/handlers"
	"github.com/quillsign/quillsign/internal/api/middleware"
	"github.com/quillsign/quillsign/internal/application"
	"github.com/quillsign/quillsign/internal/cron"
	"github.com/quillsign/quillsign/internal/repository"
)

func RegisterRoutes(r *gin.Engine) {
	repos_instance := repository.New()
	services_instance := application.New(repos_instance)
	RegisterRoutesWith(r, repos_instance, services_instance)
}

// RegisterRoutesWith wires the API onto r with explicit dependencies, which is
// what the tests use.
func RegisterRoutesWith(r *gin.Engine, repos_instance *repository.Repos, services_instance *application.Services) {
	handlers_instance := handlers.New(services_instance, repos_instance, r)
	authMiddleware := middleware.NewAuth(repos_instance)

	// Start background tasks
	cron.StartCleanupTask(services_instance.Audit)

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	r.POST("/register", handlers_instance.User.Register)
	r.POST("/login", handlers_instance.User.Login)
	r.POST("/logout", handlers_instance.User.Logout)
	r.GET("/auth/status", middleware.JWTAuthMiddleware(), handlers.AuthStatusHandler)

	// Anonymous signer surface. The token in the path is the credential.
	sign := r.Group("/sign")
	{
		sign.GET("/:token", handlers_instance.Signing.View)
		sign.GET("/:token/fields", handlers_instance.Signing.Fields)
		sign.POST("/:token", handlers_instance.Signing.Sign)
	}

	// Recipient signing uses the email in the payload as the credential.
	r.POST("/documents/:id/recipients/sign", handlers_instance.Recipient.Sign)

	auth := r.Group("/")
	auth.Use(middleware.JWTAuthMiddleware())
	{
		auth.GET("/me", handlers_instance.User.Me)

		documents := auth.Group("/documents")
		{
			documents.POST("", handlers_instance.Document.Upload)
			documents.GET("", handlers_instance.Document.List)

			owned := documents.Group("/:id")
			owned.Use(authMiddleware.DocumentOwner(middleware.FromDocumentIDParam()))
			{
				owned.GET("", handlers_instance.Document.Get)
				owned.PUT("", handlers_instance.Document.Update)
				owned.DELETE("", handlers_instance.Document.Delete)
				owned.GET("/download", handlers_instance.Document.Download)
				owned.GET("/preview", handlers_instance.Document.Preview)
				owned.POST("/finalize", handlers_instance.Document.Finalize)

				owned.GET("/fields", handlers_instance.Field.ListByDocument)
				owned.POST("/fields/template", handlers_instance.Field.CreateFromTemplate)

				owned.GET("/signing-requests", handlers_instance.Signing.ListByDocument)

				owned.GET("/recipients", handlers_instance.Recipient.ListByDocument)
				owned.POST("/recipients", handlers_instance.Recipient.Add)
				owned.DELETE("/recipients/:recipient_id", handlers_instance.Recipient.Remove)
			}
		}

		fields := auth.Group("/fields")
		{
			fields.POST("", handlers_instance.Field.Create)
			fields.PUT("/:id", handlers_instance.Field.Update)
			fields.DELETE("/:id", handlers_instance.Field.Delete)
			fields.POST("/:id/fill", handlers_instance.Field.Fill)
			fields.POST("/:id/link", handlers_instance.Field.Link)
		}

		signingRequests := auth.Group("/signing-requests")
		{
			signingRequests.POST("", handlers_instance.Signing.Create)
			signingRequests.POST("/:id/resend", handlers_instance.Signing.Resend)
			signingRequests.POST("/:id/cancel", handlers_instance.Signing.Cancel)
		}

		audit := auth.Group("/audit/logs")
		{
			audit.GET("", handlers_instance.Audit.GetAuditLogs)
		}
	}
}
