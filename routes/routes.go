package routes

import (
	"net/http"
	"time"

	"barberbook/handlers"
	"barberbook/middleware"
	"barberbook/models"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm BarberBook"})
	})
}

// RegisterCatalogRoutes registers the public listings plus payment widget
// config; no auth so the landing page can render before sign-in.
func RegisterCatalogRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/catalog")
	{
		api.GET("/locations", hb.ListLocations)
		api.GET("/locations/:id", hb.GetLocation)
		api.GET("/services", hb.ListServices)
		api.GET("/services/:id", hb.GetService)
	}
	r.GET("/api/payments/config", hb.PaymentConfig)
}

// RegisterProfileRoutes registers registration and self-service profile
// endpoints. MeHandler and RegisterProfile run before a profile exists, so
// they sit behind the identity check only.
func RegisterProfileRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/profiles")
	{
		api.Use(middleware.FirebaseAuthMiddleware())
		api.GET("/me", hb.Me)
		api.POST("/register", hb.RegisterProfile)

		owned := api.Group("")
		owned.Use(middleware.RequireProfile(hb.Dir))
		owned.PUT("/me", hb.UpdateMe)
	}
}

// RegisterBookingRoutes sets up the endpoints for the booking wizard.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	bookingGroup := r.Group("/api/booking")
	{
		bookingGroup.Use(middleware.FirebaseAuthMiddleware())
		bookingGroup.Use(middleware.RequireProfile(hb.Dir))
		bookingGroup.POST("/session", hb.StartBookingSession)
		bookingGroup.GET("/session/:id", hb.GetBookingSession)
		bookingGroup.POST("/session/:id/next", hb.AdvanceBookingSession)
		bookingGroup.POST("/session/:id/back", hb.BackBookingSession)
		bookingGroup.POST("/session/:id/submit", hb.SubmitBooking)
		bookingGroup.POST("/session/:id/payment-complete", hb.CompleteBookingPayment)
		bookingGroup.POST("/session/:id/reset", hb.ResetBookingSession)
	}
}

// RegisterAgendaRoutes sets up the appointment book. Role scoping happens
// in the service layer; the routes only require a registered profile.
func RegisterAgendaRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/appointments")
	{
		api.Use(middleware.FirebaseAuthMiddleware())
		api.Use(middleware.RequireProfile(hb.Dir))
		api.GET("", hb.ListAppointments)
		api.POST("/:id/cancel", hb.CancelAppointment)
		api.POST("/:id/complete", hb.CompleteAppointment)
	}
}

// RegisterDirectoryRoutes sets up the staff-facing people listings.
func RegisterDirectoryRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/directory")
	{
		api.Use(middleware.FirebaseAuthMiddleware())
		api.Use(middleware.RequireProfile(hb.Dir))
		api.GET("/barbers", hb.ListBarbers)

		staff := api.Group("")
		staff.Use(middleware.RequireRole(
			models.RoleBarber, models.RoleManager, models.RoleOwner, models.RoleAdmin))
		staff.GET("/clients", hb.ListClients)

		managers := api.Group("")
		managers.Use(middleware.RequireRole(
			models.RoleManager, models.RoleOwner, models.RoleAdmin))
		managers.GET("/staff", hb.ListStaff)
	}
}

// RegisterPaymentRoutes exposes the processor webhook. No JWT; the
// signature check inside the handler is the auth.
func RegisterPaymentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/api/payments/stripe/webhook", hb.StripeWebhook)
}

// RegisterAdminRoutes sets up endpoints for operator administration.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/api/admin/login", hb.AdminLogin)

	adminGroup := r.Group("/api/admin")
	{
		adminGroup.Use(middleware.JWTAuthAdminMiddleware())

		adminGroup.POST("/catalog/locations", hb.CreateLocation)
		adminGroup.PUT("/catalog/locations/:id", hb.UpdateLocation)
		adminGroup.DELETE("/catalog/locations/:id", hb.DeleteLocation)
		adminGroup.POST("/catalog/services", hb.CreateService)
		adminGroup.PUT("/catalog/services/:id", hb.UpdateService)
		adminGroup.DELETE("/catalog/services/:id", hb.DeleteService)
		adminGroup.POST("/catalog/seed", hb.SeedCatalog)

		adminGroup.POST("/staff", hb.CreateStaff)
		adminGroup.DELETE("/profiles/:id", hb.DeactivateProfile)

		adminGroup.POST("/media/:bucket", hb.UploadMedia)
		adminGroup.DELETE("/media/:publicId", hb.DeleteMedia)
	}
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type", "Stripe-Signature"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterCatalogRoutes(r, hb)
	RegisterProfileRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterAgendaRoutes(r, hb)
	RegisterDirectoryRoutes(r, hb)
	RegisterPaymentRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
}
