package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"prodorder/internal/config"
	"prodorder/internal/db"
	"prodorder/internal/handlers"
	"prodorder/internal/repositories"
	"prodorder/internal/services"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	log.Logger = log.With().Str("service", "prodorder").Logger()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load config")
	}

	pool, err := db.Connect(context.Background(), cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer pool.Close()

	if err := db.Migrate(cfg.DatabaseURL, cfg.MigrationsPath); err != nil {
		log.Fatal().Err(err).Msg("Failed to run migrations")
	}

	// Create repositories
	productRepo := repositories.NewProductRepo(pool)
	customerRepo := repositories.NewCustomerRepo(pool)
	orderRepo := repositories.NewOrderRepo(pool)
	statsRepo := repositories.NewStatsRepo(pool)

	// Create services
	productSvc := services.NewProductService(productRepo)
	customerSvc := services.NewCustomerService(customerRepo)
	orderSvc := services.NewOrderService(orderRepo, customerRepo, productRepo)
	statsSvc := services.NewStatsService(statsRepo)

	// Create handlers
	productHandlers := handlers.NewProductHandlers(productSvc)
	customerHandlers := handlers.NewCustomerHandlers(customerSvc)
	orderHandlers := handlers.NewOrderHandlers(orderSvc)
	statsHandlers := handlers.NewStatsHandlers(statsSvc)

	// Create Echo instance
	e := echo.New()
	e.HideBanner = true

	// Global middleware
	e.Use(echoMiddleware.Logger())
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.CORS())
	e.Use(echoMiddleware.RemoveTrailingSlash())

	e.GET("/health", func(c echo.Context) error {
		return handlers.HealthCheck(c, pool)
	})

	// API routes
	api := e.Group("/api")
	api.GET("/orders", orderHandlers.ListOrders)
	api.POST("/orders", orderHandlers.CreateOrder)
	api.PUT("/orders/:id/status", orderHandlers.UpdateOrderStatus)
	api.GET("/products", productHandlers.ListProducts)
	api.POST("/products", productHandlers.CreateProduct)
	api.GET("/customers", customerHandlers.ListCustomers)
	api.POST("/customers", customerHandlers.CreateCustomer)
	api.GET("/stats", statsHandlers.GetStats)

	// Start server
	go func() {
		log.Info().Str("port", cfg.Port).Msg("Starting HTTP server")
		if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Forced shutdown")
	}
}
