package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"business_manager/internal/domain/entities"
	"business_manager/internal/domain/pricing"
	"business_manager/internal/usecase/interfaces"
)

var (
	ErrBillingPaymentNotFound         = errors.New("billing payment not found")
	ErrInvalidPaymentID               = errors.New("invalid payment id")
	ErrInvalidPaymentInvoiceID        = errors.New("invalid invoice_id")
	ErrInvalidMPPayload               = errors.New("invalid mercado pago payload")
	ErrInvoiceNotPayable              = errors.New("invoice not payable")
	ErrPaymentGatewayNotConfigured    = errors.New("payment gateway not configured")
	ErrPaymentGatewayBadRequest       = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized     = errors.New("payment gateway unauthorized")
	ErrPaymentGatewayInvalidUsers     = errors.New("payment gateway invalid users involved")
	ErrPaymentGatewayCustomerNotFound = errors.New("payment gateway customer not found")
)

// PaymentSettings tune the payload sent to the provider.
type PaymentSettings struct {
	// SandboxPayerEmail fills payer.email when the caller sent no payer
	// identity, so sandbox tokens can be exercised without a real buyer.
	SandboxPayerEmail string
}

// IBillingPaymentUseCase charges invoices and keeps the payment records.
type IBillingPaymentUseCase interface {
	PayInvoice(ctx context.Context, invoiceID string, mpPayload json.RawMessage) (entities.BillingPayment, error)
	GetByID(ctx context.Context, id string) (entities.BillingPayment, error)
	ListByInvoiceID(ctx context.Context, invoiceID string) ([]entities.BillingPayment, error)
}

type BillingPaymentUseCase struct {
	repo      interfaces.IBillingPaymentRepository
	documents interfaces.IDocumentRepository
	gateway   interfaces.IPaymentGateway
	settings  PaymentSettings
	logger    zerolog.Logger
}

var _ IBillingPaymentUseCase = (*BillingPaymentUseCase)(nil)

func NewBillingPaymentUseCase(repo interfaces.IBillingPaymentRepository, documents interfaces.IDocumentRepository, gateway interfaces.IPaymentGateway, settings PaymentSettings, logger zerolog.Logger) *BillingPaymentUseCase {
	return &BillingPaymentUseCase{repo: repo, documents: documents, gateway: gateway, settings: settings, logger: logger}
}

// PayInvoice charges a pending or overdue invoice for its stored total and
// marks it paid once the provider approves the payment.
func (u *BillingPaymentUseCase) PayInvoice(ctx context.Context, invoiceID string, mpPayload json.RawMessage) (entities.BillingPayment, error) {
	invoiceID = strings.TrimSpace(invoiceID)
	log := u.logger.With().Str("invoice_id", invoiceID).Logger()
	log.Debug().Int("payload_len", len(mpPayload)).Msg("pay invoice start")

	if invoiceID == "" {
		return entities.BillingPayment{}, ErrInvalidPaymentInvoiceID
	}
	if len(mpPayload) == 0 || !json.Valid(mpPayload) {
		log.Warn().Msg("invalid payload")
		return entities.BillingPayment{}, ErrInvalidMPPayload
	}
	if u.gateway == nil {
		log.Error().Msg("gateway not configured")
		return entities.BillingPayment{}, ErrPaymentGatewayNotConfigured
	}

	invoice, err := u.documents.GetByID(ctx, invoiceID)
	if err != nil {
		log.Error().Err(err).Msg("failed loading invoice")
		return entities.BillingPayment{}, err
	}
	if invoice.ID == "" || invoice.Kind != entities.DocumentKindInvoice {
		return entities.BillingPayment{}, ErrDocumentNotFound
	}
	if invoice.Status != entities.DocumentStatusPending && invoice.Status != entities.DocumentStatusOverdue {
		log.Warn().Str("status", string(invoice.Status)).Msg("invoice not payable")
		return entities.BillingPayment{}, ErrInvoiceNotPayable
	}

	var reqMap map[string]any
	if err := json.Unmarshal(mpPayload, &reqMap); err != nil || reqMap == nil {
		return entities.BillingPayment{}, ErrInvalidMPPayload
	}
	if !hasNonEmptyString(reqMap, "payment_method_id") {
		log.Warn().Msg("missing payment_method_id")
		return entities.BillingPayment{}, ErrInvalidMPPayload
	}
	u.ensurePayerDefaults(reqMap)
	if !hasPayer(reqMap) {
		log.Warn().Msg("missing or invalid payer")
		return entities.BillingPayment{}, ErrInvalidMPPayload
	}
	if _, ok := reqMap["external_reference"]; !ok {
		reqMap["external_reference"] = invoice.ID
	}
	if _, ok := reqMap["description"]; !ok {
		reqMap["description"] = fmt.Sprintf("Invoice %s", invoice.Number)
	}
	// The stored invoice total is the only source for the charged amount.
	amount := pricing.Round(invoice.TotalAmount)
	reqMap["transaction_amount"] = amount.InexactFloat64()
	body, err := json.Marshal(reqMap)
	if err != nil {
		return entities.BillingPayment{}, err
	}

	providerPaymentID, providerStatus, providerResp, err := u.gateway.CreatePayment(ctx, body)
	if err != nil {
		log.Error().Err(err).Msg("payment gateway failed")
		return entities.BillingPayment{}, mapGatewayError(err)
	}
	log.Info().Str("provider_payment_id", providerPaymentID).Str("provider_status", providerStatus).Msg("payment gateway success")

	var parsed map[string]any
	if err := json.Unmarshal(providerResp, &parsed); err != nil {
		log.Warn().Err(err).Msg("provider response unmarshal failed")
	}

	p := entities.BillingPayment{
		ID:           providerPaymentID,
		InvoiceID:    invoice.ID,
		Amount:       amount,
		Date:         time.Now().UTC(),
		Status:       entities.PaymentStatusFromProvider(providerStatus),
		MPPayloadRaw: providerResp,
		MPPayload:    parsed,
	}
	created, err := u.repo.Create(ctx, p)
	if err != nil {
		log.Error().Err(err).Str("payment_id", p.ID).Msg("payment repository create failed")
		return entities.BillingPayment{}, err
	}

	if created.Status == entities.PaymentStatusApproved {
		if _, err := u.documents.UpdateStatus(ctx, invoice.ID, entities.DocumentStatusPaid); err != nil {
			log.Error().Err(err).Str("payment_id", created.ID).Msg("marking invoice paid failed")
			return entities.BillingPayment{}, err
		}
	}
	log.Info().Str("payment_id", created.ID).Str("status", string(created.Status)).Str("amount", created.Amount.String()).Msg("pay invoice success")
	return created, nil
}

func (u *BillingPaymentUseCase) GetByID(ctx context.Context, id string) (entities.BillingPayment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.BillingPayment{}, ErrInvalidPaymentID
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.BillingPayment{}, err
	}
	if p.ID == "" {
		return entities.BillingPayment{}, ErrBillingPaymentNotFound
	}
	return p, nil
}

func (u *BillingPaymentUseCase) ListByInvoiceID(ctx context.Context, invoiceID string) ([]entities.BillingPayment, error) {
	invoiceID = strings.TrimSpace(invoiceID)
	if invoiceID == "" {
		return nil, ErrInvalidPaymentInvoiceID
	}
	return u.repo.ListByInvoiceID(ctx, invoiceID)
}

func (u *BillingPaymentUseCase) ensurePayerDefaults(m map[string]any) {
	v, ok := m["payer"]
	if !ok || v == nil {
		v = map[string]any{}
		m["payer"] = v
	}
	payer, ok := v.(map[string]any)
	if !ok {
		return
	}
	if _, ok := payer["type"]; !ok {
		payer["type"] = "customer"
	}
	if !hasPayerID(payer) && !hasNonEmptyString(payer, "email") && u.settings.SandboxPayerEmail != "" {
		payer["email"] = u.settings.SandboxPayerEmail
	}
}

func hasNonEmptyString(m map[string]any, key string) bool {
	s, ok := m[key].(string)
	return ok && strings.TrimSpace(s) != ""
}

func hasPayer(m map[string]any) bool {
	payer, ok := m["payer"].(map[string]any)
	if !ok {
		return false
	}
	return hasNonEmptyString(payer, "email") || hasPayerID(payer)
}

func hasPayerID(payer map[string]any) bool {
	v, ok := payer["id"]
	if !ok || v == nil {
		return false
	}
	s := strings.TrimSpace(fmt.Sprintf("%v", v))
	return s != "" && s != "<nil>"
}

// mapGatewayError classifies provider failures by the body the SDK echoes
// back in the error text.
func mapGatewayError(err error) error {
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "customer not found"), strings.Contains(msg, `"code":2002`):
		return ErrPaymentGatewayCustomerNotFound
	case strings.Contains(msg, "invalid users involved"), strings.Contains(msg, `"code":2034`):
		return ErrPaymentGatewayInvalidUsers
	case strings.Contains(msg, `"error":"unauthorized"`), strings.Contains(msg, `"status":401`):
		return ErrPaymentGatewayUnauthorized
	case strings.Contains(msg, `"error":"bad_request"`), strings.Contains(msg, `"status":400`):
		return ErrPaymentGatewayBadRequest
	}
	return err
}
