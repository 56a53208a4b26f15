package response

import (
	"time"

	"business_manager/internal/domain/entities"
)

type BillingPaymentResponse struct {
	PaymentID   string    `json:"payment_id"`
	ID          string    `json:"id"`
	InvoiceID   string    `json:"invoice_id"`
	Amount      float64   `json:"amount"`
	PaymentDate time.Time `json:"payment_date"`
	Date        time.Time `json:"date"`
	Status      string    `json:"status"`

	MPPayloadRaw string         `json:"mp_payload_raw,omitempty"`
	MPPayload    map[string]any `json:"mp_payload,omitempty"`
}

func FromBillingPayment(p entities.BillingPayment) BillingPaymentResponse {
	return BillingPaymentResponse{
		PaymentID:    p.ID,
		ID:           p.ID,
		InvoiceID:    p.InvoiceID,
		Amount:       amount(p.Amount),
		PaymentDate:  p.Date,
		Date:         p.Date,
		Status:       string(p.Status),
		MPPayloadRaw: string(p.MPPayloadRaw),
		MPPayload:    p.MPPayload,
	}
}

func FromBillingPayments(payments []entities.BillingPayment) []BillingPaymentResponse {
	out := make([]BillingPaymentResponse, 0, len(payments))
	for _, p := range payments {
		out = append(out, FromBillingPayment(p))
	}
	return out
}
