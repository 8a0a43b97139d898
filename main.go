// File: ridelink/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ridelink/catalog"
	"ridelink/config"
	"ridelink/cron"
	"ridelink/database"
	bookingRepoPkg "ridelink/database/repository/booking"
	busRepoPkg "ridelink/database/repository/bus"
	userRepoPkg "ridelink/database/repository/user"
	"ridelink/handlers"
	"ridelink/middleware"
	"ridelink/routes"
	"ridelink/services/booking"
	"ridelink/services/seatlock"
	"ridelink/services/tasks"
	"ridelink/services/user"
	"ridelink/utils"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v76"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.InitLeaseCache()
	stripe.Key = config.AppConfig.StripeKey

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	userRepo := userRepoPkg.NewMongoUserRepo()
	busRepo := busRepoPkg.NewMongoBusRepo()
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()

	// Seed the bus catalog while the store is reachable.
	if database.Available(context.Background()) {
		for _, b := range catalog.Buses() {
			b := b
			if err := busRepo.Upsert(&b); err != nil {
				logger.Sugar().Warnf("main: failed to seed bus %s: %v", b.RouteNo, err)
			}
		}
	}

	// services.
	userService := &user.DefaultUserService{
		Repo: userRepo,
	}
	handlers.SetUserService(userService)

	leaseTTL := time.Duration(config.AppConfig.SeatLeaseTTLMinutes) * time.Minute
	var lease seatlock.Lease
	if utils.RedisAvailable(utils.GetLeaseCacheClient()) {
		lease = seatlock.NewRedisLease(utils.GetLeaseCacheClient(), leaseTTL)
	} else {
		lease = seatlock.NewMemoryLease(leaseTTL)
	}

	bookingService := &booking.DefaultBookingService{
		Buses:          busRepo,
		Bookings:       bookingRepo,
		Users:          userService,
		Lease:          lease,
		Scheduler:      tasks.NewScheduler(),
		PaymentTimeout: time.Duration(config.AppConfig.PaymentTimeoutMinutes) * time.Minute,
	}

	bookingHandler := handlers.NewBookingHandler(bookingService, logger)
	busHandler := handlers.NewBusHandler(busRepo)
	hybridHandler := handlers.NewHybridHandler(busRepo, utils.GetCacheClient(), logger)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		UserRepo: userRepo,

		// Auth endpoints.
		RegisterUserHandler:     handlers.RegisterUserHandler,
		AuthenticateUserHandler: handlers.AuthenticateUserHandler,

		// Catalog endpoints.
		CalculateRouteHandler: handlers.CalculateRouteHandler,
		BusOptionsHandler:     busHandler.Options,
		BusDetailsHandler:     busHandler.Details,
		TaxiOptionsHandler:    handlers.TaxiOptionsHandler,
		RecommendHandler:      hybridHandler.Recommend,

		// Booking endpoints.
		ReserveSeatsHandler:     bookingHandler.ReserveSeats,
		AttachTaxiHandler:       bookingHandler.AttachTaxi,
		FinalizePaymentHandler:  bookingHandler.FinalizePayment,
		PaymentIntentHandler:    bookingHandler.PaymentIntent,
		UserBookingsHandler:     bookingHandler.UserBookings,
		OperatorBookingsHandler: bookingHandler.OperatorBookings,
		TaxiBookingsHandler:     bookingHandler.TaxiBookings,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the payment-timeout sweeper.
	cron.InitExpiryWorker(bookingService)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
