package main

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"warehouse-service/internal/config"
	"warehouse-service/internal/database"
	"warehouse-service/internal/handler"
	"warehouse-service/internal/inventory"
	"warehouse-service/internal/logger"
	"warehouse-service/internal/metrics"
	mid "warehouse-service/internal/middleware"
	"warehouse-service/internal/store"
)

func main() {
	// Load configuration (.env file is optional)
	appConfig, err := config.Load("warehouse-service")
	if err != nil {
		// Can't use structured logger yet since it's not initialized
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	if err := logger.Init(&logger.Config{
		Level:       appConfig.Log.Level,
		Environment: appConfig.Server.Env,
		ServiceName: appConfig.ServiceName,
	}); err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	log := logger.GetLogger()
	defer log.Sync()

	log.Info("Starting warehouse-service",
		zap.String("environment", appConfig.Server.Env),
		zap.String("port", appConfig.Server.Port))

	// Initialize Prometheus metrics
	metrics.Init(appConfig)
	log.Info("Prometheus metrics initialized",
		zap.String("metrics_prefix", appConfig.Metrics.Prefix))

	// Initialize database
	db, err := database.Init(&appConfig.DB)
	if err != nil {
		log.Fatal("Failed to initialize database", zap.Error(err))
	}
	log.Info("Database connection established")

	// Initialize storage and the inventory engine
	inventoryStore := store.NewGormStore(db)
	if err := inventoryStore.Migrate(); err != nil {
		log.Fatal("Failed to run database migrations", zap.Error(err))
	}
	engine := inventory.NewEngine(inventoryStore)

	if appConfig.SeedOnStart {
		if err := database.Seed(context.Background(), inventoryStore, engine); err != nil {
			log.Fatal("Failed to seed database", zap.Error(err))
		}
	}

	// Initialize Echo instance
	e := echo.New()

	// Middleware
	e.Use(echomw.Recover())
	e.Use(echomw.CORS())
	e.Use(mid.RequestID)
	e.Use(logger.Middleware())
	e.Use(mid.Metrics)

	// Metrics endpoint
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Health check endpoint
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	// Inventory API routes
	h := handler.New(engine)
	api := e.Group("/api")
	api.GET("/compartments", h.ListCompartments)
	api.GET("/items", h.ListItems)
	api.POST("/items", h.CreateItem)
	api.DELETE("/items/:id", h.DeleteItem)
	api.GET("/transactions", h.ListTransactions)
	api.POST("/transactions/send", h.SendItems)
	api.POST("/transactions/receive", h.ReceiveItems)

	// Start server
	port := appConfig.Server.Port
	log.Info("Starting server", zap.String("port", port))
	if err := e.Start(":" + port); err != nil {
		log.Fatal("Server error", zap.Error(err))
	}
}
