package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/pupunkorvat/storefront/internal/api"
	"github.com/pupunkorvat/storefront/internal/api/handlers"
	"github.com/pupunkorvat/storefront/internal/cart"
	"github.com/pupunkorvat/storefront/internal/checkout"
	"github.com/pupunkorvat/storefront/internal/config"
	"github.com/pupunkorvat/storefront/internal/session"
	"github.com/pupunkorvat/storefront/internal/storefront"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	var logger *zap.Logger
	if cfg.Environment == "production" {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	// Storefront API client
	client := storefront.NewClient(cfg.Storefront, logger)

	// Cart and checkout state
	gateway := cart.NewGateway(client, logger)
	carts := cart.NewManager(gateway, logger)
	flows := checkout.NewManager()
	sessions := session.NewResolver(cfg.Environment == "production")

	deps := &handlers.Deps{
		Client:   client,
		Carts:    carts,
		Flows:    flows,
		Sessions: sessions,
		BaseURL:  cfg.BaseURL,
	}

	router := api.NewRouter(cfg, deps, logger)

	logger.Info("Starting storefront service",
		zap.String("port", cfg.Port),
		zap.String("environment", cfg.Environment),
	)

	if err := router.Run(":" + cfg.Port); err != nil {
		logger.Fatal("Server failed", zap.Error(err))
	}
}
