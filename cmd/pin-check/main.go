package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/pupunkorvat/storefront/internal/config"
	"github.com/pupunkorvat/storefront/internal/storefront"
)

// pin-check verifies a scanner PIN against the backend, for testing an
// event's scanner setup before the doors open.
func main() {
	if len(os.Args) < 3 {
		fmt.Println("Usage: go run cmd/pin-check/main.go <event-id> <pin>")
		fmt.Println("Example: go run cmd/pin-check/main.go \"evt_123\" \"4711\"")
		os.Exit(1)
	}

	eventID := os.Args[1]
	pin := os.Args[2]

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	logger, _ := zap.NewDevelopment()
	defer logger.Sync()

	client := storefront.NewClient(cfg.Storefront, logger)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := client.ValidateTicketPin(ctx, eventID, pin)
	if err != nil {
		fmt.Fprintf(os.Stderr, "PIN check failed: %v\n", err)
		os.Exit(1)
	}

	if result.Valid {
		fmt.Printf("PIN is valid for event %s\n", eventID)
	} else {
		fmt.Printf("PIN is NOT valid for event %s\n", eventID)
		os.Exit(1)
	}
}
