package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	chestUseCase "github.com/gameplants/plants-api/internal/domain/usecase/chest"
	deckUseCase "github.com/gameplants/plants-api/internal/domain/usecase/deck"
	itemUseCase "github.com/gameplants/plants-api/internal/domain/usecase/item"
	matchmakingUseCase "github.com/gameplants/plants-api/internal/domain/usecase/matchmaking"
	plantUseCase "github.com/gameplants/plants-api/internal/domain/usecase/plant"
	purchaseUseCase "github.com/gameplants/plants-api/internal/domain/usecase/purchase"
	userUseCase "github.com/gameplants/plants-api/internal/domain/usecase/user"

	"github.com/gameplants/plants-api/internal/infrastructure/adapter/api/handler"
	"github.com/gameplants/plants-api/internal/infrastructure/adapter/api/routes"
	"github.com/gameplants/plants-api/internal/infrastructure/adapter/auth"
	"github.com/gameplants/plants-api/internal/infrastructure/adapter/database"
	"github.com/gameplants/plants-api/internal/infrastructure/adapter/logger"
	"github.com/gameplants/plants-api/internal/infrastructure/adapter/repository"
	timeProvider "github.com/gameplants/plants-api/internal/infrastructure/adapter/time"
	"github.com/gameplants/plants-api/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := cfg.Validate(); err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}

	// Set Gin mode based on environment
	if cfg.Environment == config.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create logger
	appLogger := logger.NewZapLogger(cfg.Environment == config.Production)
	appLogger.SetLevel(logger.LevelFromString(cfg.Logger.Level))
	defer appLogger.Flush()

	// Initialize time provider
	tp := timeProvider.NewRealTimeProvider()

	// Connect to the database
	dbManager := database.NewManager(cfg.ToDatabaseConfig(), appLogger, tp)
	if _, err := dbManager.Connect(); err != nil {
		appLogger.Error("Failed to connect to database", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}
	defer dbManager.Close()

	// Run migrations
	if err := dbManager.MigrationManager().MigrateAll(); err != nil {
		appLogger.Error("Failed to run migrations", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(dbManager.DB(), tp, appLogger)
	itemRepo := repository.NewItemRepository(dbManager.DB(), appLogger)
	ownedItemRepo := repository.NewOwnedItemRepository(dbManager.DB(), appLogger)
	plantRepo := repository.NewPlantRepository(dbManager.DB(), appLogger)
	deckRepo := repository.NewDeckRepository(dbManager.DB(), appLogger)
	chestRepo := repository.NewChestRepository(dbManager.DB(), appLogger)
	matchmakingRepo := repository.NewMatchmakingRepository(dbManager.DB(), appLogger)

	// Unit of work (transaction manager) for purchases
	uow := dbManager.CreateUnitOfWork()

	// Auth adapters
	tokenService := auth.NewJWTService(cfg.Auth.JWTSecret, tp)
	passwordHasher := auth.NewBcryptHasher()

	// Initialize use cases
	userService := userUseCase.NewUserUseCase(userRepo, passwordHasher, tokenService, tp, appLogger, cfg.Auth.TokenTTL)
	purchaseService := purchaseUseCase.NewService(uow, tp, appLogger)
	itemService := itemUseCase.NewItemUseCase(itemRepo, ownedItemRepo, appLogger)
	plantService := plantUseCase.NewPlantUseCase(plantRepo, tp, appLogger)
	deckService := deckUseCase.NewDeckUseCase(deckRepo, userRepo, appLogger)
	chestService := chestUseCase.NewChestUseCase(chestRepo, tp, appLogger)
	matchmakingService := matchmakingUseCase.NewMatchmakingUseCase(matchmakingRepo, tp, appLogger)

	// Initialize API handlers
	handlers := routes.Handlers{
		User:        handler.NewUserHandler(userService, appLogger),
		Purchase:    handler.NewPurchaseHandler(purchaseService, appLogger),
		Plant:       handler.NewPlantHandler(plantService, appLogger),
		Deck:        handler.NewDeckHandler(deckService, appLogger),
		Chest:       handler.NewChestHandler(chestService, appLogger),
		Matchmaking: handler.NewMatchmakingHandler(matchmakingService, appLogger),
		Item:        handler.NewItemHandler(itemService, appLogger),
	}

	// Initialize Gin router
	router := gin.New()

	// Setup middlewares
	routes.SetupMiddlewares(router, appLogger)

	// Setup routes
	routes.SetupRoutes(router, handlers, userService, appLogger)

	// Create HTTP server with configurable timeout values
	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	// Start the server in a goroutine
	go func() {
		appLogger.Info("Starting server", map[string]any{
			"port": cfg.Server.Port,
			"env":  cfg.Environment,
		})

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Error("Failed to start server", map[string]any{
				"error": err.Error(),
			})
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...", nil)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", map[string]any{
			"error": err.Error(),
		})
	}

	appLogger.Info("Server exited gracefully", nil)
}
