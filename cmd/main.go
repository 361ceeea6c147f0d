// cmd/main.go is the application entry point.
// It wires together all layers and starts the HTTP server.
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/eventease/eventease/internal/config"
	"github.com/eventease/eventease/internal/database"
	"github.com/eventease/eventease/internal/handler"
	"github.com/eventease/eventease/internal/logger"
	"github.com/eventease/eventease/internal/notify"
	"github.com/eventease/eventease/internal/repository"
	"github.com/eventease/eventease/internal/service"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logLevel := "info"
	if cfg.App.Debug {
		logLevel = "debug"
	}
	zlog, err := logger.New(logger.Config{
		Level:       logLevel,
		Development: !cfg.IsProduction(),
		ServiceName: cfg.App.Name,
	})
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer func() { _ = zlog.Sync() }()

	pool, err := database.NewPool(ctx, cfg.Database)
	if err != nil {
		zlog.Fatal("database", zap.Error(err))
	}
	defer pool.Close()
	zlog.Info("connected to postgres", zap.String("db", cfg.Database.DBName))

	// ── Wire up layers ───────────────────────────────────────────────────
	eventRepo := repository.NewEventRepository(pool)
	regRepo := repository.NewRegistrationRepository(pool)
	bookingRepo := repository.NewBookingRepository(pool)
	invoiceRepo := repository.NewInvoiceRepository(pool)
	likeRepo := repository.NewLikeRepository(pool)
	reviewRepo := repository.NewReviewRepository(pool)
	userRepo := repository.NewUserRepository(pool)

	mailer := notify.NewClient(cfg.Notify)

	authSvc := service.NewAuthService(userRepo, cfg.JWT)
	catalogSvc := service.NewCatalogService(eventRepo)
	bookingSvc := service.NewBookingService(eventRepo, regRepo, bookingRepo, invoiceRepo, mailer, zlog)
	socialSvc := service.NewSocialService(likeRepo, reviewRepo, eventRepo)
	moderationSvc := service.NewModerationService(eventRepo)
	invoiceSvc := service.NewInvoiceService(invoiceRepo)

	authHandler := handler.NewAuthHandler(authSvc)
	eventHandler := handler.NewEventHandler(catalogSvc)
	bookingHandler := handler.NewBookingHandler(bookingSvc)
	socialHandler := handler.NewSocialHandler(socialSvc)
	adminHandler := handler.NewAdminHandler(moderationSvc)
	invoiceHandler := handler.NewInvoiceHandler(invoiceSvc)

	// ── Build the router ─────────────────────────────────────────────────
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(handler.AccessLog(zlog))
	r.Use(handler.CORS)

	requireAuth := handler.RequireAuth(cfg.JWT.Secret)

	r.Get("/health", handler.HealthCheck)

	r.Route("/auth", func(r chi.Router) {
		r.Post("/signup", authHandler.Signup)
		r.Post("/login", authHandler.Login)
	})

	r.Route("/events", func(r chi.Router) {
		r.Get("/", eventHandler.ListEvents)
		r.Get("/{id}", eventHandler.GetEvent)
		r.Get("/{id}/reviews", socialHandler.ListReviews)

		r.Group(func(r chi.Router) {
			r.Use(requireAuth)
			r.Post("/", eventHandler.CreateEvent)
			r.Post("/{id}/submit", bookingHandler.Submit)
			r.Get("/{id}/registrations", bookingHandler.ListRegistrations)
			r.Post("/{id}/like", socialHandler.ToggleLike)
			r.Post("/{id}/reviews", socialHandler.SubmitReview)
		})
	})

	r.Route("/invoices", func(r chi.Router) {
		r.Use(requireAuth)
		r.Get("/{id}", invoiceHandler.GetInvoice)
		r.Get("/{id}/html", invoiceHandler.RenderInvoice)
	})

	r.Route("/admin", func(r chi.Router) {
		r.Use(requireAuth)
		r.Use(handler.RequireAdmin)
		r.Get("/events", adminHandler.ListAllEvents)
		r.Post("/events/{id}/moderate", adminHandler.Moderate)
	})

	// ── Start server with graceful shutdown ──────────────────────────────
	srv := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		zlog.Info("server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zlog.Fatal("server error", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zlog.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		zlog.Fatal("graceful shutdown failed", zap.Error(err))
	}
	zlog.Info("server stopped")
}
