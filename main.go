package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"

	"github.com/urojiuyu1986/my-golf-app/internal/config"
	"github.com/urojiuyu1986/my-golf-app/internal/database"
	"github.com/urojiuyu1986/my-golf-app/internal/events"
	server "github.com/urojiuyu1986/my-golf-app/internal/http"
	"github.com/urojiuyu1986/my-golf-app/internal/ledger"
	"github.com/urojiuyu1986/my-golf-app/internal/metrics"
	slacknotifier "github.com/urojiuyu1986/my-golf-app/internal/notifier/slack"
	"github.com/urojiuyu1986/my-golf-app/internal/store"
	"github.com/urojiuyu1986/my-golf-app/internal/store/sheets"
	"github.com/urojiuyu1986/my-golf-app/internal/store/sqlite"
)

func main() {
	// Start profiling timer
	startTime := time.Now()
	log.SetFormatter(log.JSONFormatter)
	cfg := config.Load()

	var recordStore store.RecordStore
	var dbTeardown func()
	switch cfg.StoreBackend {
	case "sheets":
		var err error
		recordStore, err = sheets.New(cfg.Sheets.CredentialsFile, cfg.Sheets.SpreadsheetID)
		if err != nil {
			log.Fatalf("Failed to initialize sheets store: %s", err)
		}
	default:
		db, teardown, err := database.InitDB(cfg.DBName, cfg.Turso.PrimaryURL, cfg.Turso.AuthToken, cfg.MigrationsDir)
		if err != nil {
			log.Fatalf("Failed to initialize database: %s", err)
		}
		dbTeardown = teardown
		recordStore = sqlite.New(db)
	}
	if dbTeardown != nil {
		defer func() {
			log.Info("Closing database connection")
			dbTeardown()
		}()
	}

	metricsSvc := metrics.NewService()
	metricsHandler := metrics.NewMetricsHandler()
	notifier := slacknotifier.NewNotifier(cfg.Slack.Token, cfg.Slack.ChannelID, metricsSvc)
	publisher := events.New(cfg.ProjectID)
	matchLedger := ledger.New(recordStore, notifier, metricsSvc, publisher)

	s := server.NewServer(
		recordStore,
		matchLedger,
		metricsSvc,
		metricsHandler,
		cfg,
		notifier,
	)

	// --- Record startup time ---
	startupDuration := time.Since(startTime)
	metricsSvc.SetStartupTime(startupDuration.Seconds())
	log.Info("Startup time recorded", "duration_ms", startupDuration.Milliseconds())

	// --- Graceful shutdown setup ---
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: s,
	}

	// Channel to listen for errors coming from the server
	serverErrors := make(chan error, 1)

	// Start the server in a goroutine
	go func() {
		log.Info("Server started", "port", cfg.Port, "store", cfg.StoreBackend)
		serverErrors <- srv.ListenAndServe()
	}()

	// Channel to listen for interrupt signals
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a signal or an error
	select {
	case err := <-serverErrors:
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	case sig := <-shutdown:
		log.Info("Shutdown signal received", "signal", sig)

		// Create a context with a timeout for the shutdown.
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		// Attempt to gracefully shut down the server.
		if err := srv.Shutdown(ctx); err != nil {
			log.Error("Server shutdown failed", "error", err)
		} else {
			log.Info("Server gracefully stopped")
		}
	}

	log.Info("Server process shutting down")
}
