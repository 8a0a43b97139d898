package handlers

import (
	userRepo "ridelink/database/repository/user"

	"github.com/gin-gonic/gin"
)

// HandlerBundle groups the handlers and repositories the route registrar
// needs.
type HandlerBundle struct {
	UserRepo userRepo.UserRepository

	// Auth endpoints.
	RegisterUserHandler     gin.HandlerFunc
	AuthenticateUserHandler gin.HandlerFunc

	// Catalog endpoints.
	CalculateRouteHandler gin.HandlerFunc
	BusOptionsHandler     gin.HandlerFunc
	BusDetailsHandler     gin.HandlerFunc
	TaxiOptionsHandler    gin.HandlerFunc
	RecommendHandler      gin.HandlerFunc

	// Booking endpoints.
	ReserveSeatsHandler     gin.HandlerFunc
	AttachTaxiHandler       gin.HandlerFunc
	FinalizePaymentHandler  gin.HandlerFunc
	PaymentIntentHandler    gin.HandlerFunc
	UserBookingsHandler     gin.HandlerFunc
	OperatorBookingsHandler gin.HandlerFunc
	TaxiBookingsHandler     gin.HandlerFunc
}
