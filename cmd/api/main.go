package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"

	"github.com/planventura/eventos-api/internal/bus"
	"github.com/planventura/eventos-api/internal/config"
	"github.com/planventura/eventos-api/internal/database"
	"github.com/planventura/eventos-api/internal/http/handlers"
	"github.com/planventura/eventos-api/internal/http/middleware"
	"github.com/planventura/eventos-api/internal/logger"
	"github.com/planventura/eventos-api/internal/mailer"
	"github.com/planventura/eventos-api/internal/payments"
	"github.com/planventura/eventos-api/internal/ratelimit"
	"github.com/planventura/eventos-api/internal/repository"
	"github.com/planventura/eventos-api/internal/service"
	"github.com/planventura/eventos-api/internal/storage"
)

func main() {
	// .env is for local development; a missing file is fine.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()
	pool, err := database.Connect(ctx, cfg.Database)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	publisher := newPublisher(cfg)
	defer publisher.Close()

	blobs, err := storage.NewDiskStore(cfg.Uploads.Dir, cfg.Uploads.BaseURL)
	if err != nil {
		logger.Error("failed to prepare uploads dir", "error", err)
		os.Exit(1)
	}

	var limiter *ratelimit.Limiter
	if cfg.Redis.URL != "" {
		limiter, err = ratelimit.NewLimiter(cfg.Redis.URL, 10, time.Minute)
		if err != nil {
			logger.Error("failed to configure rate limiter", "error", err)
			os.Exit(1)
		}
	}

	var intents payments.Intents
	if cfg.Stripe.SecretKey != "" {
		intents = payments.NewStripeIntents(cfg.Stripe.SecretKey, cfg.Stripe.Currency)
	}

	userRepo := repository.NewUserRepository(pool)
	organizerRepo := repository.NewOrganizerRepository(pool)
	eventRepo := repository.NewEventRepository(pool)
	locationRepo := repository.NewLocationRepository(pool)
	reservationRepo := repository.NewReservationRepository(pool)

	mail := newMailer(cfg)
	authService := service.NewAuthService(userRepo, organizerRepo, mail, publisher, cfg.Auth.JWTSecret, cfg.Auth.SessionTTL)
	userService := service.NewUserService(userRepo)
	eventService := service.NewEventService(eventRepo, organizerRepo, locationRepo, publisher)
	reservationService := service.NewReservationService(reservationRepo, eventRepo, userRepo, intents, mail, publisher)
	catalogService := service.NewCatalogService(organizerRepo, locationRepo)

	guard := middleware.NewSessionGuard(cfg.Auth.JWTSecret)
	h := handlers.New(authService, userService, eventService, reservationService, catalogService,
		guard, blobs, limiter, cfg.Auth.SessionTTL)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logging)
	r.Use(middleware.Recover)
	r.Use(middleware.Health)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:5173", "http://localhost:3000"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	h.Routes(r)

	// Uploaded images are served straight off disk.
	r.Handle(cfg.Uploads.BaseURL+"/*", http.StripPrefix(cfg.Uploads.BaseURL+"/",
		http.FileServer(http.Dir(cfg.Uploads.Dir))))

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		logger.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("shutdown error", "error", err)
		}
	}()

	logger.Info("starting server", "port", cfg.Server.Port, "env", cfg.App.Env)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("server error", "error", err)
		os.Exit(1)
	}
}

func newPublisher(cfg *config.Config) bus.Publisher {
	if cfg.NATS.URL == "" {
		return bus.NoopPublisher{}
	}
	publisher, err := bus.NewNATSPublisher(cfg.NATS.URL)
	if err != nil {
		logger.Warn("NATS unavailable, domain events disabled", "error", err)
		return bus.NoopPublisher{}
	}
	return publisher
}

func newMailer(cfg *config.Config) mailer.Service {
	switch {
	case cfg.Email.DevMode:
		return mailer.NewDevMailer()
	case cfg.Email.MailerSendKey != "":
		return mailer.NewMailerSend(cfg.Email.MailerSendKey, cfg.Email.FromName, cfg.Email.FromEmail)
	default:
		return mailer.NewSMTPMailer(cfg.Email.SMTPHost, cfg.Email.SMTPPort,
			cfg.Email.SMTPFrom, cfg.Email.SMTPUser, cfg.Email.SMTPPass, cfg.Email.SMTPUseTLS)
	}
}
