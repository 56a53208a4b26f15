package entities

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// PaymentStatus is the outcome recorded for an invoice payment.
type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusApproved PaymentStatus = "approved"
	PaymentStatusDenied   PaymentStatus = "denied"
)

// PaymentStatusFromProvider maps a Mercado Pago status onto ours.
func PaymentStatusFromProvider(s string) PaymentStatus {
	switch s {
	case "approved", "authorized":
		return PaymentStatusApproved
	case "rejected", "cancelled", "refunded", "charged_back":
		return PaymentStatusDenied
	default:
		return PaymentStatusPending
	}
}

// BillingPayment is a payment made against an invoice.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI (invoice_id-index): invoice_id
//
// MPPayloadRaw keeps the provider response body as received; MPPayload is
// its parsed form.
type BillingPayment struct {
	ID        string          `json:"id"`
	InvoiceID string          `json:"invoice_id"`
	Amount    decimal.Decimal `json:"amount"`
	Date      time.Time       `json:"date"`
	Status    PaymentStatus   `json:"status"`

	MPPayloadRaw json.RawMessage `json:"mp_payload_raw,omitempty"`
	MPPayload    map[string]any  `json:"mp_payload,omitempty"`
}
