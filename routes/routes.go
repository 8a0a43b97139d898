package routes

import (
	"net/http"
	"time"

	"ridelink/handlers"
	"ridelink/middleware"
	"ridelink/models"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires every endpoint group onto the router.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterAuthRoutes(r, hb)
	RegisterCatalogRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "ridelink is up"})
	})
}

// RegisterAuthRoutes registers registration and login.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/register", hb.RegisterUserHandler)
		api.POST("/login", hb.AuthenticateUserHandler)
	}
}

// RegisterCatalogRoutes registers route, bus, taxi and hybrid lookups.
// These are public: the client walks them before login in the booking flow.
func RegisterCatalogRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api")
	{
		api.POST("/routes/calculate", hb.CalculateRouteHandler)
		api.POST("/buses/options", hb.BusOptionsHandler)
		api.POST("/buses/details", hb.BusDetailsHandler)
		api.POST("/taxis/options", hb.TaxiOptionsHandler)
		api.POST("/hybrid/recommendation", hb.RecommendHandler)
	}
}

// RegisterBookingRoutes registers the booking lifecycle endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/bookings")
	{
		api.POST("/seats", hb.ReserveSeatsHandler)
		api.POST("/taxi", hb.AttachTaxiHandler)
		api.POST("/finalize", hb.FinalizePaymentHandler)
		api.POST("/payment-intent", hb.PaymentIntentHandler)

		// Listings require authentication; operator listings are role-gated.
		protected := api.Group("")
		protected.Use(middleware.JWTAuthUserMiddleware(hb.UserRepo))
		protected.GET("/user/:userId", hb.UserBookingsHandler)
		protected.GET("/operator", middleware.RequireRole(models.RoleOperator), hb.OperatorBookingsHandler)
		protected.GET("/taxi", middleware.RequireRole(models.RoleTaxi), hb.TaxiBookingsHandler)
	}
}
