package routes

import (
	"net/http"
	"time"

	"studiobook/handlers"
	"studiobook/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterBookingRoutes sets up the draft wizard and booking endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	draftGroup := r.Group("/api/booking")
	{
		draftGroup.POST("/draft", hb.Booking.StartDraft)
		draftGroup.GET("/draft/:draftID", hb.Booking.GetDraft)
		draftGroup.PUT("/draft/:draftID", hb.Booking.UpdateDraft)
		draftGroup.DELETE("/draft/:draftID", hb.Booking.CancelDraft)
		draftGroup.POST("/draft/:draftID/submit", hb.Booking.SubmitDraft)
	}

	bookingGroup := r.Group("/api/bookings")
	{
		bookingGroup.GET("/:id", hb.Booking.GetBooking)
		bookingGroup.GET("/:id/calendar.ics", hb.Calendar.GetBookingCalendar)
	}
}

// RegisterStudioRoutes registers studio directory endpoints.
func RegisterStudioRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/studios")
	{
		api.POST("", hb.Studio.RegisterStudio)
		api.GET("/:id", hb.Studio.GetStudio)
		api.GET("/:id/availability", hb.Booking.GetAvailability)
		api.POST("/:id/verification", hb.Studio.SubmitVerification)
		api.GET("/:id/verification", hb.Studio.ListVerifications)
	}
}

// RegisterPaymentRoutes registers the server-to-server payment webhook.
func RegisterPaymentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/payments")
	{
		api.POST("/payhere/notify", hb.Webhook.HandlePayHereNotify)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "services": utils.GetHealthStatus()})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterBookingRoutes(r, hb)
	RegisterStudioRoutes(r, hb)
	RegisterPaymentRoutes(r, hb)
	RegisterHealthRoute(r)
}
