package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/slotline/interview-api/internal/handlers"
	"github.com/slotline/interview-api/internal/mailer"
	"github.com/slotline/interview-api/internal/service"
	"github.com/slotline/interview-api/internal/store"
	"github.com/slotline/interview-api/internal/store/memory"
	"github.com/slotline/interview-api/internal/store/postgres"
	"github.com/slotline/interview-api/pkg/config"
	"github.com/slotline/interview-api/pkg/events"
	"github.com/slotline/interview-api/pkg/logger"
	mw "github.com/slotline/interview-api/pkg/middleware"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	ctx := context.Background()

	// Entity store. Memory is the default; postgres persists across restarts.
	var st *store.Store
	switch cfg.Store.Driver {
	case "postgres":
		pool, err := postgres.Connect(ctx, cfg.Store)
		if err != nil {
			logger.Error("Failed to connect to database", "error", err)
			os.Exit(1)
		}
		defer pool.Close()

		if err := postgres.EnsureSchema(ctx, pool); err != nil {
			logger.Error("Failed to ensure schema", "error", err)
			os.Exit(1)
		}
		st = postgres.New(pool)
	default:
		st = memory.New()
	}

	// Event bus. Without NATS_URL events are dropped.
	var eventBus events.EventBus
	if cfg.NATS.URL != "" {
		bus, err := events.NewNATSEventBus(cfg.NATS.URL)
		if err != nil {
			logger.Error("Failed to connect to NATS", "error", err)
			os.Exit(1)
		}
		defer bus.Close()
		eventBus = bus
	} else {
		logger.Info("NATS_URL not set, events disabled")
		eventBus = events.NewNoopEventBus()
	}

	// Mailer. Dev mode logs messages instead of sending them.
	var mailService mailer.Service
	if !cfg.Email.DevMode && cfg.Email.MailerSendKey != "" {
		mailService = mailer.NewMailerSend(cfg.Email.MailerSendKey, cfg.Email.FromName, cfg.Email.FromEmail)
	} else {
		mailService = mailer.NewDevMailer()
	}

	// Initialize services
	authService := service.NewAuthService(st.Users, eventBus, cfg)
	directoryService := service.NewDirectoryService(st.Companies, st.Users)
	schedulingService := service.NewSchedulingService(st.TimeSlots, st.Interviews, eventBus, mailService, cfg)

	// Initialize handlers
	h := handlers.New(authService, directoryService, schedulingService, cfg)

	// Setup router
	r := chi.NewRouter()

	// Middleware
	r.Use(mw.RequestID)
	r.Use(mw.ServiceName("interview-api"))
	r.Use(mw.Logging)

	// CORS configuration
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:5173", "http://localhost:3000", "*"},
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Use(mw.Health)

	// Rate limiting on auth endpoints when Redis is available.
	if cfg.Redis.URL != "" {
		opts, err := redis.ParseURL(cfg.Redis.URL)
		if err != nil {
			logger.Error("Invalid REDIS_URL", "error", err)
			os.Exit(1)
		}
		rdb := redis.NewClient(opts)
		defer rdb.Close()

		limiter := mw.NewRateLimiter(rdb, mw.RateLimitConfig{
			Requests: 20,
			Window:   time.Minute,
			KeyFunc:  mw.ClientIPKeyFunc,
			SkipFunc: func(r *http.Request) bool {
				return !strings.HasPrefix(r.URL.Path, "/auth/")
			},
		})
		r.Use(limiter.Middleware())
	}

	// Routes
	r.Mount("/", h.Routes())

	// Start server
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		logger.Info("Shutting down interview API...")

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			logger.Error("Server shutdown error", "error", err)
		}
	}()

	logger.Info("Starting interview API", "port", cfg.Server.Port, "store", cfg.Store.Driver)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("Server error", "error", err)
		os.Exit(1)
	}
}
