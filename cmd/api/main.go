package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"nexyatra/internal/cache"
	"nexyatra/internal/config"
	"nexyatra/internal/database"
	"nexyatra/internal/domain"
	"nexyatra/internal/gateway/phonepe"
	"nexyatra/internal/middleware"
	"nexyatra/internal/modules/auth"
	"nexyatra/internal/modules/contact"
	"nexyatra/internal/modules/dashboard"
	"nexyatra/internal/modules/destination"
	"nexyatra/internal/modules/lead"
	"nexyatra/internal/modules/payment"
	"nexyatra/internal/modules/review"
	jwtsvc "nexyatra/internal/pkg/jwt"
	"nexyatra/internal/repository"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	if err := db.AutoMigrate(
		&domain.User{},
		&domain.Destination{},
		&domain.Lead{},
		&domain.Review{},
		&domain.ContactMessage{},
		&domain.PaymentOrder{},
	); err != nil {
		log.Fatal(err)
	}

	userRepo := repository.NewUserRepository(db)
	destinationRepo := repository.NewDestinationRepository(db)
	leadRepo := repository.NewLeadRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	contactRepo := repository.NewContactMessageRepository(db)
	orderRepo := repository.NewPaymentOrderRepository(db)

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTAccessTTL)

	hub := dashboard.NewHub()
	defer hub.Close()

	// nil is fine: the cache is a miss-through when Redis is not configured.
	var statusCache *cache.OrderStatusCache
	if cfg.RedisAddr != "" {
		statusCache = cache.NewOrderStatusCache(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	}

	if !cfg.PhonePe.Configured() {
		log.Printf("level=warn msg=phonepe credentials missing, order creation will be refused")
	}
	gateway := phonepe.NewClient(cfg.PhonePe)

	authService := auth.NewService(userRepo, j)
	authHandler := auth.NewHandler(authService)

	destinationService := destination.NewService(destinationRepo, reviewRepo)
	destinationHandler := destination.NewHandler(destinationService)

	leadService := lead.NewService(leadRepo, hub)
	leadHandler := lead.NewHandler(leadService)

	reviewService := review.NewService(reviewRepo)
	reviewHandler := review.NewHandler(reviewService)

	contactService := contact.NewService(contactRepo)
	contactHandler := contact.NewHandler(contactService)

	paymentService := payment.NewService(gateway, orderRepo, statusCache, hub, cfg.PhonePe, log.Printf)
	paymentHandler := payment.NewHandler(paymentService, log.Printf)

	dashboardHandler := dashboard.NewHandler(hub, j)

	r := gin.Default()
	r.Use(middleware.CORS(cfg.CORSAllowedOrigins))
	r.Use(middleware.RequestID())
	r.Use(middleware.ErrorLogger())

	v1 := r.Group("/api/v1")
	{
		// public storefront
		authHandler.RegisterRoutes(v1)
		destinationHandler.RegisterPublicRoutes(v1)
		leadHandler.RegisterPublicRoutes(v1)
		reviewHandler.RegisterPublicRoutes(v1)
		contactHandler.RegisterPublicRoutes(v1)
		paymentHandler.RegisterRoutes(v1)
		dashboardHandler.RegisterRoutes(v1)

		// admin dashboard
		admin := v1.Group("/admin")
		admin.Use(middleware.RequireAdmin(j))
		{
			destinationHandler.RegisterAdminRoutes(admin)
			leadHandler.RegisterAdminRoutes(admin)
			reviewHandler.RegisterAdminRoutes(admin)
			contactHandler.RegisterAdminRoutes(admin)
			paymentHandler.RegisterAdminRoutes(admin)
		}
	}

	if err := r.Run(cfg.ListenAddr); err != nil {
		log.Fatal(err)
	}
}
