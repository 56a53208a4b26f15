package payments

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMercadoPagoGateway_RequiresToken(t *testing.T) {
	g, err := NewMercadoPagoGateway("", false, zerolog.Nop())
	assert.Nil(t, g)
	assert.ErrorIs(t, err, ErrMissingMercadoPagoAccessToken)
}

func TestMercadoPagoGateway_MockApproves(t *testing.T) {
	g, err := NewMercadoPagoGateway("", true, zerolog.Nop())
	require.NoError(t, err)
	g.now = func() time.Time { return time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC) }

	id, status, raw, err := g.CreatePayment(context.Background(), json.RawMessage(`{"transaction_amount":210.01,"external_reference":"inv-1"}`))
	require.NoError(t, err)
	assert.Equal(t, "approved", status)
	assert.NotEmpty(t, id)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(raw, &resp))
	assert.Equal(t, "inv-1", resp["external_reference"])
	assert.Equal(t, 210.01, resp["transaction_amount"])
	assert.Equal(t, "accredited", resp["status_detail"])
	assert.Equal(t, "2026-03-14T12:00:00Z", resp["date_approved"])
}

func TestMercadoPagoGateway_MockKeepsInvalidPayload(t *testing.T) {
	g, err := NewMercadoPagoGateway("", true, zerolog.Nop())
	require.NoError(t, err)

	_, status, raw, err := g.CreatePayment(context.Background(), json.RawMessage(`not json`))
	require.NoError(t, err)
	assert.Equal(t, "approved", status)
	assert.True(t, json.Valid(raw))
}

func TestMercadoPagoGateway_NotConfigured(t *testing.T) {
	var g *MercadoPagoGateway
	_, _, _, err := g.CreatePayment(context.Background(), nil)
	assert.ErrorIs(t, err, ErrMercadoPagoGatewayNotConfigured)
}
