// main.go
package main

import (
	"context"
	"log"
	"time"

	"insekta-dashboard/cmd"
	"insekta-dashboard/internal/data/repository"
	"insekta-dashboard/internal/usecase"
	"insekta-dashboard/internal/wire"
	"insekta-dashboard/pkg/database"
	"insekta-dashboard/pkg/mailer"
	"insekta-dashboard/pkg/sheet"
	"insekta-dashboard/pkg/storage"
	"insekta-dashboard/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.String("env", config.App.Env),
		zap.Bool("debug", config.App.Debug),
	)

	// Connect to database
	db, err := database.InitDB(config.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Database connected successfully")

	migrateCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	err = database.Migrate(migrateCtx, db)
	cancel()
	if err != nil {
		logger.Fatal("Failed to migrate database", zap.Error(err))
	}

	// Initialize all repositories
	repos := repository.NewRepository(db, logger)

	// Outbound adapters
	store, err := storage.NewProvider(config.Storage)
	if err != nil {
		logger.Fatal("Failed to init storage", zap.Error(err), zap.String("provider", config.Storage.Provider))
	}

	deps := usecase.Deps{
		Storage:  store,
		Mailer:   mailer.New(config.Email, logger),
		Pipeline: sheet.NewPipeline(sheet.NewHTTPFetcher(config.Sheet.Timeout())),
	}

	// Wire all dependencies
	app := wire.Wiring(repos, deps, config, logger)

	bootCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	err = app.Service.Auth.BootstrapAdmin(bootCtx)
	cancel()
	if err != nil {
		logger.Fatal("Failed to bootstrap admin", zap.Error(err))
	}

	// Start server
	if err := cmd.APIServer(app.Router, config.App.Port, logger); err != nil {
		logger.Error("Server stopped", zap.Error(err))
	}
}
