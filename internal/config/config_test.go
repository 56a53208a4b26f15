package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"business_manager/internal/domain/pricing"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{
		"PORT", "LOG_FORMAT", "DOCUMENTS_TABLE", "INVOICE_MARKUP_REBASE",
		"QUOTE_VALIDITY_DAYS", "INVOICE_DUE_DAYS", "PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK", "COMPANY_NAME",
		"DRAFT_IDLE_TTL", "DRAFT_SWEEP_INTERVAL",
	} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.HTTPAddr())
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, "documents", cfg.DocumentsTable)
	assert.Equal(t, "customers", cfg.CustomersTable)
	assert.Equal(t, pricing.RebaseFromTotal, cfg.InvoiceMarkupRebase)
	assert.Equal(t, 30, cfg.QuoteValidityDays)
	assert.Equal(t, 30, cfg.InvoiceDueDays)
	assert.Equal(t, 24*time.Hour, cfg.DraftIdleTTL)
	assert.Equal(t, 10*time.Minute, cfg.DraftSweepInterval)
	assert.Equal(t, "Business Manager", cfg.CompanyName)
	assert.False(t, cfg.PaymentGatewayMock)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", ":9090")
	t.Setenv("INVOICE_MARKUP_REBASE", "BASE")
	t.Setenv("QUOTE_VALIDITY_DAYS", "14")
	t.Setenv("INVOICE_DUE_DAYS", "-3")
	t.Setenv("MERCADOPAGO_MOCK", "yes")
	t.Setenv("DRAFT_IDLE_TTL", "90m")
	t.Setenv("DRAFT_SWEEP_INTERVAL", "never")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.HTTPAddr())
	assert.Equal(t, pricing.RebaseFromOriginalBase, cfg.InvoiceMarkupRebase)
	assert.Equal(t, 14, cfg.QuoteValidityDays)
	assert.Equal(t, 30, cfg.InvoiceDueDays)
	assert.Equal(t, 90*time.Minute, cfg.DraftIdleTTL)
	assert.Equal(t, 10*time.Minute, cfg.DraftSweepInterval)
	assert.True(t, cfg.PaymentGatewayMock)
}

func TestLoadRejectsUnknownRebaseMode(t *testing.T) {
	t.Setenv("INVOICE_MARKUP_REBASE", "sometimes")

	_, err := Load()
	assert.Error(t, err)
}
