package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"zyppr/handlers"
	"zyppr/middleware"
	"zyppr/models"
)

// RegisterAuthRoutes registers account lifecycle endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/signup", hb.SignupHandler)
		api.POST("/login", hb.LoginHandler)

		api.Use(middleware.JWTAuthMiddleware())
		api.POST("/logout", hb.LogoutHandler)
		api.GET("/profile", hb.GetProfileHandler)
		api.PUT("/profile", hb.UpdateProfileHandler)
		api.POST("/reset-password", hb.ResetPasswordHandler)
	}
}

// RegisterBusinessRoutes registers tenant discovery and owner mutations.
func RegisterBusinessRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/businesses")
	{
		api.Use(middleware.JWTAuthMiddleware())
		api.GET("", hb.ListBusinessesHandler)
		api.GET("/:id", hb.GetBusinessHandler)
		api.POST("/:id/appointments", hb.BookAppointmentHandler)

		owner := api.Group("")
		owner.Use(middleware.RequireRole(string(models.RoleBusinessOwner)))
		owner.POST("/:id/services", hb.AddServiceHandler)
		owner.POST("/:id/photos", hb.UploadPhotoHandler)
		owner.DELETE("/:id/photos/:photoId", hb.DeletePhotoHandler)
		owner.POST("/:id/announcements", hb.AddAnnouncementHandler)
	}
}

// RegisterAppointmentRoutes registers cross-business appointment endpoints.
func RegisterAppointmentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/appointments")
	{
		api.Use(middleware.JWTAuthMiddleware())
		api.GET("/mine", hb.MyAppointmentsHandler)
		api.DELETE("/:id", hb.CancelAppointmentHandler)
	}
}

// RegisterAssistantRoutes registers the conversational endpoints.
func RegisterAssistantRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/assistant")
	{
		api.Use(middleware.JWTAuthMiddleware())
		api.POST("/chat", hb.ChatHandler)
	}

	marketing := r.Group("/api/marketing")
	{
		marketing.Use(middleware.JWTAuthMiddleware())
		marketing.Use(middleware.RequireRole(string(models.RoleBusinessOwner)))
		marketing.POST("/post", hb.GenerateMarketingPostHandler)
		marketing.POST("/description", hb.GenerateDescriptionHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm Zyppr"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterAuthRoutes(r, hb)
	RegisterBusinessRoutes(r, hb)
	RegisterAppointmentRoutes(r, hb)
	RegisterAssistantRoutes(r, hb)
}
