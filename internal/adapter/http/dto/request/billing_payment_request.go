package request

import "encoding/json"

// BillingPaymentCreateRequest is the wrapped form of the pay-invoice body.
//
// `mp_payload` is forwarded to Mercado Pago and stored as-is (raw JSON) to
// support varying Mercado Pago schemas. A bare payment body is accepted too.
type BillingPaymentCreateRequest struct {
	MPPayload json.RawMessage `json:"mp_payload"`
}
