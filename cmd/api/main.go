package main

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"staysync/internal/config"
	"staysync/internal/database"
	"staysync/internal/middleware"
	"staysync/internal/modules/availability"
	"staysync/internal/modules/booking"
	"staysync/internal/modules/catalog"
	"staysync/internal/modules/payment"
	jwtsvc "staysync/internal/pkg/jwt"
	"staysync/internal/repository"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatal(err)
	}

	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		logger.SetLevel(level)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		logger.Fatal(err)
	}
	if err := database.Migrate(db); err != nil {
		logger.Fatal(err)
	}

	hotelRepo := repository.NewHotelRepository(db)
	roomRepo := repository.NewRoomRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	sessionRepo := repository.NewPaymentSessionRepository(db)

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL)

	catalogService := catalog.NewService(hotelRepo, roomRepo)
	catalogHandler := catalog.NewHandler(catalogService)

	availabilityService := availability.NewService(roomRepo, bookingRepo, cfg.RepositoryTimeout)
	availabilityHandler := availability.NewHandler(availabilityService)

	bookingService := booking.NewService(bookingRepo, roomRepo, cfg.RepositoryTimeout, logger)
	bookingHandler := booking.NewHandler(bookingService)

	paymentService := payment.NewService(sessionRepo, bookingRepo, payment.Config{
		CheckoutBaseURL: cfg.CheckoutBaseURL,
		CallbackURL:     cfg.CheckoutCallbackURL,
		SuccessPage:     cfg.PaymentSuccessPage,
		CancelPage:      cfg.PaymentCancelPage,
		DefaultCurrency: cfg.DefaultCurrency,
	}, cfg.RepositoryTimeout, logger)
	paymentHandler := payment.NewHandler(paymentService, logger)

	r := gin.New()
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.RequestLogger(logger))
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSAllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
	}))

	v1 := r.Group("/api/v1")
	{
		// public: catalog reads, availability reads, processor callback
		catalogHandler.RegisterRoutes(v1)
		availabilityHandler.RegisterRoutes(v1)
		paymentHandler.RegisterPublicRoutes(v1)

		// protected: everything that writes on behalf of a user
		protected := v1.Group("/")
		protected.Use(middleware.Identity(j))
		{
			bookingHandler.RegisterRoutes(protected)
			paymentHandler.RegisterProtectedRoutes(protected)
		}
	}

	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Fatal(err)
	}
}
