package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	api "github.com/morem6161/bcsme/internal/api/http"
	"github.com/morem6161/bcsme/internal/config"
	"github.com/morem6161/bcsme/internal/jobs"
	"github.com/morem6161/bcsme/internal/logger"
	"github.com/morem6161/bcsme/internal/repository/sqlite"
	"github.com/morem6161/bcsme/internal/scheduler"
	"github.com/morem6161/bcsme/internal/security"
	"github.com/morem6161/bcsme/internal/service"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting BCSME membership service...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "path", cfg.Database.Path)

	// Open the embedded database and ensure the schema exists
	store, err := sqlite.Open(cfg.Database.Path)
	if err != nil {
		logger.Error("Failed to open database", "error", err)
		log.Fatalf("Failed to open database: %v", err)
	}
	defer store.Close()
	logger.Info("Database ready")

	// Initialize Email Service (optional)
	var emailSvc service.EmailService
	if cfg.EmailEnabled() {
		emailSvc = service.NewEmailService(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.User, cfg.SMTP.Password, cfg.SMTP.From)
		logger.Info("Email notifications enabled", "host", cfg.SMTP.Host, "admin_email", cfg.SMTP.AdminEmail)
	} else {
		logger.Info("Email notifications disabled (not configured)")
	}

	// Initialize Services
	memberSvc := service.NewMemberService(store.MemberRepository)
	appSvc := service.NewApplicationService(store.ApplicationRepository, store.MemberRepository, memberSvc, emailSvc, cfg.SMTP.AdminEmail)
	authSvc := service.NewAuthService(store.AdminUserRepository)

	// Bootstrap the default admin account
	ctx := context.Background()
	if err := authSvc.EnsureBootstrapAdmin(ctx, cfg.Admin.Username, cfg.Admin.Password, cfg.Admin.Email); err != nil {
		logger.Error("Failed to bootstrap admin user", "error", err)
		log.Fatalf("Failed to bootstrap admin user: %v", err)
	}

	// Initialize Security
	tokenManager := security.NewTokenManager(cfg.Session.Secret, time.Duration(cfg.Session.ExpiryMinutes)*time.Minute)

	// Start the pending review digest scheduler
	jobRunner := jobs.NewJobRunner(appSvc, emailSvc, cfg)
	sched := scheduler.NewScheduler(jobRunner)
	sched.Start()
	defer sched.Stop()

	// Build the HTTP server
	server := api.NewServer(appSvc, memberSvc, authSvc, tokenManager, cfg.Web.Dir)
	httpServer := &http.Server{
		Addr:         cfg.GetServerAddress(),
		Handler:      server.Router(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	go func() {
		logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("HTTP server failed", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for shutdown signal
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	logger.Info("Shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown failed", "error", err)
	}
	logger.Info("Shutdown complete")
}
