package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"

	"business_manager/internal/domain/pricing"
)

// Config holds application configuration loaded from the environment.
type Config struct {
	AppEnv    string
	Port      string
	LogFormat string
	LogLevel  string

	AWSRegion          string
	AWSAccessKeyID     string
	AWSSecretAccessKey string
	DynamoDBEndpoint   string

	DocumentsTable string
	PartsTable     string
	LaborTable     string
	PaymentsTable  string
	CustomersTable string

	InvoiceMarkupRebase pricing.RebaseMode
	QuoteValidityDays   int
	InvoiceDueDays      int
	CompanyName         string

	DraftIdleTTL       time.Duration
	DraftSweepInterval time.Duration

	MercadoPagoAccessToken string
	TestPayerEmail         string
	PaymentGatewayMock     bool
}

// Load reads configuration from environment variables and an optional .env file.
func Load() (*Config, error) {
	_ = godotenv.Load()

	k := koanf.New(".")
	if err := k.Load(env.Provider("", ".", func(s string) string { return s }), nil); err != nil {
		return nil, fmt.Errorf("load env: %w", err)
	}

	cfg := &Config{
		AppEnv:    valueOrDefault(k.String("APP_ENV"), "development"),
		Port:      valueOrDefault(k.String("PORT"), "8080"),
		LogFormat: valueOrDefault(k.String("LOG_FORMAT"), "json"),
		LogLevel:  valueOrDefault(k.String("LOG_LEVEL"), "info"),

		AWSRegion:          valueOrDefault(k.String("AWS_REGION"), "us-east-1"),
		AWSAccessKeyID:     valueOrDefault(k.String("AWS_ACCESS_KEY_ID"), "local"),
		AWSSecretAccessKey: valueOrDefault(k.String("AWS_SECRET_ACCESS_KEY"), "local"),
		DynamoDBEndpoint:   strings.TrimSpace(k.String("DYNAMODB_ENDPOINT")),

		DocumentsTable: valueOrDefault(k.String("DOCUMENTS_TABLE"), "documents"),
		PartsTable:     valueOrDefault(k.String("PARTS_TABLE"), "parts"),
		LaborTable:     valueOrDefault(k.String("LABOR_TABLE"), "labor_rates"),
		PaymentsTable:  valueOrDefault(k.String("PAYMENTS_TABLE"), "payments"),
		CustomersTable: valueOrDefault(k.String("CUSTOMERS_TABLE"), "customers"),

		QuoteValidityDays: parsePositiveInt(k.String("QUOTE_VALIDITY_DAYS"), 30),
		InvoiceDueDays:    parsePositiveInt(k.String("INVOICE_DUE_DAYS"), 30),
		CompanyName:       valueOrDefault(k.String("COMPANY_NAME"), "Business Manager"),

		DraftIdleTTL:       parseDuration(k.String("DRAFT_IDLE_TTL"), 24*time.Hour),
		DraftSweepInterval: parseDuration(k.String("DRAFT_SWEEP_INTERVAL"), 10*time.Minute),

		MercadoPagoAccessToken: strings.TrimSpace(k.String("MERCADOPAGO_ACCESS_TOKEN")),
		TestPayerEmail:         strings.TrimSpace(k.String("MERCADOPAGO_TEST_PAYER_EMAIL")),
		PaymentGatewayMock:     parseBool(k.String("PAYMENT_GATEWAY_MOCK")) || parseBool(k.String("MERCADOPAGO_MOCK")),
	}

	rebase, ok := pricing.ParseRebaseMode(valueOrDefault(k.String("INVOICE_MARKUP_REBASE"), string(pricing.RebaseFromTotal)))
	if !ok {
		return nil, fmt.Errorf("INVOICE_MARKUP_REBASE must be %q or %q", pricing.RebaseFromTotal, pricing.RebaseFromOriginalBase)
	}
	cfg.InvoiceMarkupRebase = rebase

	return cfg, nil
}

// HTTPAddr returns the address the HTTP server should bind to.
func (c *Config) HTTPAddr() string {
	port := strings.TrimSpace(c.Port)
	if port == "" {
		port = "8080"
	}
	if strings.HasPrefix(port, ":") {
		return port
	}
	return ":" + port
}

func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.AppEnv, "production")
}

func valueOrDefault(value, fallback string) string {
	if strings.TrimSpace(value) != "" {
		return strings.TrimSpace(value)
	}
	return fallback
}

func parseBool(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "1", "true", "yes", "on", "mock":
		return true
	default:
		return false
	}
}

func parsePositiveInt(value string, fallback int) int {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}

func parseDuration(value string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(strings.TrimSpace(value))
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}

// MustLoad behaves like Load but panics on error.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(err)
	}
	return cfg
}
