package main

import (
	"context"
	"fmt"
	"os"

	_ "github.com/joho/godotenv/autoload"

	_ "business_manager/docs"
	"business_manager/internal/adapter/http/routes"
	"business_manager/internal/config"
	"business_manager/internal/infrastructure/logging"
)

// @title           Business Manager API
// @version         1.0
// @description     Parts and labor catalog, customers, quotes, proposals, invoices, reports and invoice payments backed by DynamoDB.

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @host localhost:8080

// @BasePath  /v1

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logger := logging.New(cfg.LogFormat, cfg.LogLevel).With().Str("service", "business-manager").Logger()
	if err := routes.Run(context.Background(), cfg, logger); err != nil {
		logger.Fatal().Err(err).Msg("failed to startup the application")
	}
}
