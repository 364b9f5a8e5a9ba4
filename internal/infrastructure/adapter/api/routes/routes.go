package routes

import (
	coreport "github.com/gameplants/plants-api/internal/domain/port/core"
	userUseCase "github.com/gameplants/plants-api/internal/domain/usecase/user"
	"github.com/gameplants/plants-api/internal/infrastructure/adapter/api/handler"
	"github.com/gameplants/plants-api/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// Handlers bundles every route handler the API exposes
type Handlers struct {
	User        *handler.UserHandler
	Purchase    *handler.PurchaseHandler
	Plant       *handler.PlantHandler
	Deck        *handler.DeckHandler
	Chest       *handler.ChestHandler
	Matchmaking *handler.MatchmakingHandler
	Item        *handler.ItemHandler
}

// SetupRoutes configures all the routes for the API
func SetupRoutes(
	router *gin.Engine,
	handlers Handlers,
	userService *userUseCase.UserUseCase,
	logger coreport.Logger,
) {
	auth := middleware.Auth(userService, logger)

	// Account routes
	userRoutes := router.Group("/usuaris")
	{
		userRoutes.GET("", handlers.User.GetAll)
		userRoutes.POST("", handlers.User.Register)
		userRoutes.POST("/api/login", handlers.User.Login)
		userRoutes.GET("/:id", auth, handlers.User.GetByID)
		userRoutes.GET("/correu/:correu", auth, handlers.User.GetByCorreu)
		userRoutes.PUT("/:id", auth, handlers.User.Update)
		userRoutes.DELETE("/:id", auth, handlers.User.Delete)
		userRoutes.PUT("/btc/:userId", auth, handlers.User.CreditBalance)
	}

	// Plant routes
	plantRoutes := router.Group("/plantas")
	{
		plantRoutes.GET("", auth, handlers.Plant.GetAll)
		plantRoutes.GET("/:id", auth, handlers.Plant.GetByID)
		plantRoutes.GET("/usuaris/:id", auth, handlers.Plant.GetByUser)
		plantRoutes.POST("", auth, handlers.Plant.Create)
		plantRoutes.PUT("/:id", auth, handlers.Plant.Update)
		plantRoutes.DELETE("/:id", auth, handlers.Plant.Delete)
	}

	// Catalog routes (public)
	itemRoutes := router.Group("/items")
	{
		itemRoutes.GET("", handlers.Item.GetCatalog)
		itemRoutes.POST("/by-ids", handlers.Item.GetByIDs)
	}

	// Purchase and inventory routes
	purchaseRoutes := router.Group("/items_usuaris")
	{
		purchaseRoutes.POST("", auth, handlers.Purchase.ProcessPurchase)
		purchaseRoutes.GET("/:id", auth, handlers.Item.GetOwnedByUser)
	}

	// Deck routes
	deckRoutes := router.Group("/mazo")
	{
		deckRoutes.GET("/existeMazo/:userId", handlers.Deck.Exists)
		deckRoutes.GET("/correu/:correu", auth, handlers.Deck.GetPlantsByCorreu)
		deckRoutes.GET("/:userId", auth, handlers.Deck.GetPlants)
		deckRoutes.PUT("/:userId", auth, handlers.Deck.SetDeck)
	}

	// Chest routes
	chestRoutes := router.Group("/cofres")
	{
		chestRoutes.GET("/:id", auth, handlers.Chest.GetByUser)
		chestRoutes.POST("/:userId/:tipo", auth, handlers.Chest.Create)
		chestRoutes.DELETE("/:userId/:cofreId", auth, handlers.Chest.Delete)
	}

	// Matchmaking routes
	matchmakingRoutes := router.Group("/matchmaking")
	{
		matchmakingRoutes.POST("/agregar", auth, handlers.Matchmaking.Enqueue)
		matchmakingRoutes.GET("/lista", auth, handlers.Matchmaking.List)
		matchmakingRoutes.DELETE("/eliminar/:id", auth, handlers.Matchmaking.Remove)
		matchmakingRoutes.DELETE("/eliminar-correu/:correu", auth, handlers.Matchmaking.RemoveByCorreu)
	}
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger) {
	router.Use(middleware.RequestID())
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.Logger(logger))
	router.Use(middleware.CORS())
}
