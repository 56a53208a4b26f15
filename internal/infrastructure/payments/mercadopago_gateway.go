package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
	"github.com/rs/zerolog"

	"business_manager/internal/usecase/interfaces"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
var ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")

// MercadoPagoGateway charges invoices through Mercado Pago. In mock mode it
// approves every payment locally and echoes the request back.
type MercadoPagoGateway struct {
	client   payment.Client
	mockMode bool
	logger   zerolog.Logger
	now      func() time.Time
}

var _ interfaces.IPaymentGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(accessToken string, mock bool, logger zerolog.Logger) (*MercadoPagoGateway, error) {
	logger = logger.With().Str("component", "payment_gateway").Logger()

	if mock {
		logger.Info().Msg("mock mode enabled")
		return &MercadoPagoGateway{mockMode: true, logger: logger, now: time.Now}, nil
	}

	if accessToken == "" {
		logger.Warn().Msg("missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		logger.Error().Err(err).Msg("failed creating sdk config")
		return nil, err
	}
	logger.Info().Msg("mercado pago client initialized")

	return &MercadoPagoGateway{client: payment.NewClient(cfg), logger: logger, now: time.Now}, nil
}

func (g *MercadoPagoGateway) CreatePayment(ctx context.Context, requestPayload json.RawMessage) (providerPaymentID string, providerStatus string, providerResponse json.RawMessage, err error) {
	if g != nil && g.mockMode {
		return g.mockPayment(requestPayload)
	}

	if g == nil || g.client == nil {
		return "", "", nil, ErrMercadoPagoGatewayNotConfigured
	}
	g.logger.Debug().Int("payload_len", len(requestPayload)).Msg("create payment start")

	var req payment.Request
	if err := json.Unmarshal(requestPayload, &req); err != nil {
		g.logger.Error().Err(err).Msg("payload unmarshal failed")
		return "", "", nil, err
	}

	resp, err := g.client.Create(ctx, req)
	if err != nil {
		g.logger.Error().Err(err).Msg("sdk create failed")
		return "", "", nil, err
	}

	b, err := json.Marshal(resp)
	if err != nil {
		g.logger.Error().Err(err).Msg("response marshal failed")
		return "", "", nil, err
	}
	id := fmt.Sprintf("%d", resp.ID)
	g.logger.Info().
		Str("provider_payment_id", id).
		Str("provider_status", resp.Status).
		Msg("payment created")

	return id, resp.Status, b, nil
}

func (g *MercadoPagoGateway) mockPayment(requestPayload json.RawMessage) (string, string, json.RawMessage, error) {
	resp := map[string]any{}
	if len(requestPayload) > 0 && json.Valid(requestPayload) {
		if err := json.Unmarshal(requestPayload, &resp); err != nil {
			resp = map[string]any{"request_payload_raw": string(requestPayload)}
		}
	}

	now := g.now().UTC()
	id := strconv.FormatInt(now.UnixNano(), 10)
	ts := now.Format(time.RFC3339Nano)
	resp["id"] = id
	resp["status"] = "approved"
	resp["status_detail"] = "accredited"
	if _, ok := resp["date_created"]; !ok {
		resp["date_created"] = ts
	}
	if _, ok := resp["date_approved"]; !ok {
		resp["date_approved"] = ts
	}

	b, err := json.Marshal(resp)
	if err != nil {
		g.logger.Error().Err(err).Msg("mock response marshal failed")
		return "", "", nil, err
	}

	g.logger.Info().Str("provider_payment_id", id).Str("provider_status", "approved").Msg("mock payment created")
	return id, "approved", b, nil
}
