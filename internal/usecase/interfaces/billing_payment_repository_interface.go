package interfaces

import (
	"context"

	"business_manager/internal/domain/entities"
)

// IBillingPaymentRepository abstracts DynamoDB persistence for invoice payments.
type IBillingPaymentRepository interface {
	Create(ctx context.Context, p entities.BillingPayment) (entities.BillingPayment, error)
	GetByID(ctx context.Context, id string) (entities.BillingPayment, error)
	ListByInvoiceID(ctx context.Context, invoiceID string) ([]entities.BillingPayment, error)
}
