package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ElectroNickP/BBD-Gasoline-Report-Bot/internal/config"
	"github.com/ElectroNickP/BBD-Gasoline-Report-Bot/internal/dictionary"
	"github.com/ElectroNickP/BBD-Gasoline-Report-Bot/internal/handler"
	"github.com/ElectroNickP/BBD-Gasoline-Report-Bot/internal/middleware"
	"github.com/ElectroNickP/BBD-Gasoline-Report-Bot/internal/repository/postgres"
	"github.com/ElectroNickP/BBD-Gasoline-Report-Bot/internal/service"
	"github.com/ElectroNickP/BBD-Gasoline-Report-Bot/internal/session"

	"github.com/golang-migrate/migrate/v4"
	postgresdb "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// Drafts idle for longer than this are discarded by the background sweep.
const (
	draftMaxIdle  = 12 * time.Hour
	sweepInterval = time.Hour
)

func main() {
	// Initialize logger
	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("Starting BBD Gasoline Report Bot")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err))
	}

	logger.Info("Configuration loaded successfully")

	// Load reference data
	dict, err := dictionary.Load(cfg.DictionariesFile)
	if err != nil {
		logger.Fatal("Failed to load dictionaries", zap.Error(err))
	}

	logger.Info("Dictionaries loaded",
		zap.Int("captains", len(dict.Captains())),
		zap.Int("boats", len(dict.Boats())),
		zap.Int("programs", len(dict.Programs())),
		zap.Int("piers", len(dict.Piers())),
	)

	whitelist, err := service.LoadWhitelist(cfg.AllowedUsersFile)
	if err != nil {
		logger.Fatal("Failed to load whitelist", zap.Error(err))
	}

	authService := service.NewAuthService(whitelist)

	logger.Info("Whitelist loaded", zap.Int("users", authService.Count()))

	// Connect to database with retries
	db, err := connectDatabase(cfg.DSN(), logger)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Database connection established")

	// Run migrations
	if err := runMigrations(db, logger); err != nil {
		logger.Fatal("Failed to run migrations", zap.Error(err))
	}

	logger.Info("Database migrations completed")

	// Initialize repositories and services
	reportRepo := postgres.NewReportRepo(db)
	sessions := session.NewManager()

	reportService := service.NewReportService(reportRepo, logger)
	formService := service.NewFormService(dict, sessions, reportService, logger)
	analyticsService := service.NewAnalyticsService(reportRepo, logger)

	// Initialize Telegram bot
	bot, err := tele.NewBot(tele.Settings{
		Token:  cfg.BotToken,
		Poller: &tele.LongPoller{Timeout: 10 * time.Second},
	})
	if err != nil {
		logger.Fatal("Failed to create bot", zap.Error(err))
	}

	logger.Info("Telegram bot initialized")

	bot.Use(middleware.AuthMiddleware(authService, logger))

	// Initialize handler
	h := handler.NewHandler(bot, authService, formService, reportService, analyticsService, sessions, logger)
	h.RegisterHandlers()

	logger.Info("Handlers registered")

	// Start draft sweep in background
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go runDraftSweep(ctx, sessions, logger)

	// Start bot in background
	go func() {
		logger.Info("Bot started successfully")
		bot.Start()
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	<-sigChan

	logger.Info("Shutdown signal received, stopping bot...")

	// Graceful shutdown
	bot.Stop()
	cancel()

	logger.Info("Bot stopped gracefully")
}

// connectDatabase connects to PostgreSQL with retries
func connectDatabase(dsn string, logger *zap.Logger) (*sql.DB, error) {
	var db *sql.DB
	var err error

	maxRetries := 30
	retryDelay := 2 * time.Second

	for i := 0; i < maxRetries; i++ {
		db, err = sql.Open("postgres", dsn)
		if err != nil {
			logger.Warn("Failed to open database connection",
				zap.Int("attempt", i+1),
				zap.Error(err),
			)
			time.Sleep(retryDelay)
			continue
		}

		// Test connection
		if err = db.Ping(); err != nil {
			logger.Warn("Failed to ping database",
				zap.Int("attempt", i+1),
				zap.Error(err),
			)
			db.Close()
			time.Sleep(retryDelay)
			continue
		}

		// Connection successful
		db.SetMaxOpenConns(25)
		db.SetMaxIdleConns(5)
		db.SetConnMaxLifetime(5 * time.Minute)

		return db, nil
	}

	return nil, fmt.Errorf("failed to connect to database after %d attempts: %w", maxRetries, err)
}

// runMigrations runs database migrations
func runMigrations(db *sql.DB, logger *zap.Logger) error {
	driver, err := postgresdb.WithInstance(db, &postgresdb.Config{})
	if err != nil {
		return fmt.Errorf("failed to create migration driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance(
		"file://migrations",
		"postgres",
		driver,
	)
	if err != nil {
		return fmt.Errorf("failed to create migration instance: %w", err)
	}

	if err := m.Up(); err != nil {
		if err == migrate.ErrNoChange {
			logger.Info("No new migrations to apply")
			return nil
		}
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	logger.Info("Migrations applied successfully")
	return nil
}

// runDraftSweep periodically evicts abandoned drafts
func runDraftSweep(ctx context.Context, sessions *session.Manager, logger *zap.Logger) {
	ticker := time.NewTicker(sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("Draft sweep stopped")
			return
		case <-ticker.C:
			if evicted := sessions.EvictIdle(draftMaxIdle); evicted > 0 {
				logger.Info("Evicted idle drafts",
					zap.Int("evicted", evicted),
					zap.Int("active", sessions.Active()),
				)
			}
		}
	}
}
