package interfaces

import (
	"context"
	"encoding/json"
)

// IPaymentGateway charges an invoice through an external provider. The
// request payload is the provider's own payment body, already carrying the
// invoice amount; the raw response is kept on the stored payment.
type IPaymentGateway interface {
	CreatePayment(ctx context.Context, requestPayload json.RawMessage) (providerPaymentID string, providerStatus string, providerResponse json.RawMessage, err error)
}
