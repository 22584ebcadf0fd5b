package routes

import (
	"net/http"
	"time"

	"glowdesk/handlers"
	"glowdesk/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers business account endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/register", hb.Business.Register)
		api.POST("/signin", hb.Business.SignIn)
	}
}

// RegisterPortalRoutes registers the public customer-facing booking
// endpoints. These are unauthenticated: the business is addressed by
// slug or id in the path.
func RegisterPortalRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/portal")
	{
		api.GET("/resolve/:slug", hb.Business.GetBySlug)
		api.POST("/:businessID/customers", hb.Business.UpsertCustomer)
		api.GET("/:businessID/days", hb.Booking.GetAvailableDays)
		api.GET("/:businessID/slots", hb.Booking.GetAvailableSlots)
		api.POST("/:businessID/bookings", hb.Booking.CreateBooking)
	}
}

// RegisterBusinessRoutes registers the owner dashboard endpoints. All of
// them require an owner token.
func RegisterBusinessRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/business")
	api.Use(middleware.OwnerAuthMiddleware())
	{
		api.GET("/me", hb.Business.Me)

		api.GET("/calendar", hb.Booking.GetDayCalendar)
		api.PUT("/bookings/:id/reschedule", hb.Booking.RescheduleBooking)
		api.PUT("/bookings/:id/cancel", hb.Booking.CancelBooking)
		api.PUT("/bookings/:id/complete", hb.Booking.CompleteBooking)
		api.GET("/customers/:id/appointments", hb.Booking.GetCustomerAppointments)

		api.POST("/staff", hb.Staff.CreateStaff)
		api.GET("/staff", hb.Staff.ListStaff)
		api.PUT("/staff/:id/active", hb.Staff.SetActive)
		api.POST("/staff/:id/windows", hb.Staff.SetWindow)
		api.GET("/staff/:id/windows", hb.Staff.ListWindows)
		api.PUT("/staff/:id/windows/:windowID", hb.Staff.UpdateWindow)
		api.DELETE("/staff/:id/windows/:windowID", hb.Staff.DeleteWindow)

		api.POST("/services", hb.Catalog.CreateService)
		api.GET("/services", hb.Catalog.ListServices)
		api.PUT("/services/:id", hb.Catalog.UpdateService)
		api.PUT("/services/:id/active", hb.Catalog.SetServiceActive)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm Glowdesk"})
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
	RegisterPortalRoutes(r, hb)
	RegisterBusinessRoutes(r, hb)
}
