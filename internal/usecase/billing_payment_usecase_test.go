package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"

	"business_manager/internal/domain/entities"
	mock_interfaces "business_manager/internal/usecase/interfaces/mocks"
)

const validMPPayload = `{"payment_method_id":"pix","payer":{"email":"x@test.com"}}`

func pendingInvoice() entities.Document {
	return entities.Document{
		ID:          "inv-1",
		Number:      "I-2026-0001",
		Kind:        entities.DocumentKindInvoice,
		Status:      entities.DocumentStatusPending,
		TotalAmount: decimal.RequireFromString("210.005"),
	}
}

func TestBillingPaymentUseCase_PayInvoice_Validations(t *testing.T) {
	t.Run("empty invoice id", func(t *testing.T) {
		uc := NewBillingPaymentUseCase(nil, nil, nil, PaymentSettings{}, zerolog.Nop())
		_, err := uc.PayInvoice(context.Background(), " ", json.RawMessage(`{}`))
		if !errors.Is(err, ErrInvalidPaymentInvoiceID) {
			t.Fatalf("expected ErrInvalidPaymentInvoiceID, got %v", err)
		}
	})

	t.Run("empty payload", func(t *testing.T) {
		uc := NewBillingPaymentUseCase(nil, nil, nil, PaymentSettings{}, zerolog.Nop())
		_, err := uc.PayInvoice(context.Background(), "inv-1", nil)
		if !errors.Is(err, ErrInvalidMPPayload) {
			t.Fatalf("expected ErrInvalidMPPayload, got %v", err)
		}
	})

	t.Run("invalid json payload", func(t *testing.T) {
		uc := NewBillingPaymentUseCase(nil, nil, nil, PaymentSettings{}, zerolog.Nop())
		_, err := uc.PayInvoice(context.Background(), "inv-1", json.RawMessage(`{`))
		if !errors.Is(err, ErrInvalidMPPayload) {
			t.Fatalf("expected ErrInvalidMPPayload, got %v", err)
		}
	})

	t.Run("gateway not configured", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		docs := mock_interfaces.NewMockIDocumentRepository(ctrl)
		uc := NewBillingPaymentUseCase(nil, docs, nil, PaymentSettings{}, zerolog.Nop())

		_, err := uc.PayInvoice(context.Background(), "inv-1", json.RawMessage(validMPPayload))
		if !errors.Is(err, ErrPaymentGatewayNotConfigured) {
			t.Fatalf("expected ErrPaymentGatewayNotConfigured, got %v", err)
		}
	})
}

func TestBillingPaymentUseCase_PayInvoice_InvoiceChecks(t *testing.T) {
	cases := []struct {
		name    string
		invoice entities.Document
		err     error
		want    error
	}{
		{name: "repository error", err: errors.New("db"), want: nil},
		{name: "not found", invoice: entities.Document{}, want: ErrDocumentNotFound},
		{name: "not an invoice", invoice: entities.Document{ID: "inv-1", Kind: entities.DocumentKindQuote, Status: entities.DocumentStatusPending}, want: ErrDocumentNotFound},
		{name: "already paid", invoice: entities.Document{ID: "inv-1", Kind: entities.DocumentKindInvoice, Status: entities.DocumentStatusPaid}, want: ErrInvoiceNotPayable},
		{name: "cancelled", invoice: entities.Document{ID: "inv-1", Kind: entities.DocumentKindInvoice, Status: entities.DocumentStatusCancelled}, want: ErrInvoiceNotPayable},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo := mock_interfaces.NewMockIBillingPaymentRepository(ctrl)
			docs := mock_interfaces.NewMockIDocumentRepository(ctrl)
			gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
			uc := NewBillingPaymentUseCase(repo, docs, gateway, PaymentSettings{}, zerolog.Nop())

			docs.EXPECT().GetByID(gomock.Any(), "inv-1").Return(tc.invoice, tc.err)

			_, err := uc.PayInvoice(context.Background(), "inv-1", json.RawMessage(validMPPayload))
			if tc.want == nil {
				if err == nil || err.Error() != "db" {
					t.Fatalf("expected db error, got %v", err)
				}
				return
			}
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestBillingPaymentUseCase_PayInvoice_PayloadValidation(t *testing.T) {
	t.Run("missing payment_method_id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		docs := mock_interfaces.NewMockIDocumentRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewBillingPaymentUseCase(nil, docs, gateway, PaymentSettings{}, zerolog.Nop())

		docs.EXPECT().GetByID(gomock.Any(), "inv-1").Return(pendingInvoice(), nil)

		_, err := uc.PayInvoice(context.Background(), "inv-1", json.RawMessage(`{"payer":{"email":"x@test.com"}}`))
		if !errors.Is(err, ErrInvalidMPPayload) {
			t.Fatalf("expected ErrInvalidMPPayload, got %v", err)
		}
	})

	t.Run("missing payer without sandbox email", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		docs := mock_interfaces.NewMockIDocumentRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewBillingPaymentUseCase(nil, docs, gateway, PaymentSettings{}, zerolog.Nop())

		docs.EXPECT().GetByID(gomock.Any(), "inv-1").Return(pendingInvoice(), nil)

		_, err := uc.PayInvoice(context.Background(), "inv-1", json.RawMessage(`{"payment_method_id":"pix"}`))
		if !errors.Is(err, ErrInvalidMPPayload) {
			t.Fatalf("expected ErrInvalidMPPayload, got %v", err)
		}
	})
}

func TestBillingPaymentUseCase_PayInvoice_GatewayErrorMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want error
	}{
		{name: "customer not found", err: errors.New(`{"code":2002}`), want: ErrPaymentGatewayCustomerNotFound},
		{name: "invalid users", err: errors.New(`invalid users involved`), want: ErrPaymentGatewayInvalidUsers},
		{name: "unauthorized", err: errors.New(`{"error":"unauthorized"}`), want: ErrPaymentGatewayUnauthorized},
		{name: "bad request", err: errors.New(`{"status":400}`), want: ErrPaymentGatewayBadRequest},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo := mock_interfaces.NewMockIBillingPaymentRepository(ctrl)
			docs := mock_interfaces.NewMockIDocumentRepository(ctrl)
			gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
			uc := NewBillingPaymentUseCase(repo, docs, gateway, PaymentSettings{}, zerolog.Nop())

			docs.EXPECT().GetByID(gomock.Any(), "inv-1").Return(pendingInvoice(), nil)
			gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("", "", nil, tc.err)

			_, err := uc.PayInvoice(context.Background(), "inv-1", json.RawMessage(validMPPayload))
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}

	t.Run("unknown gateway error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		docs := mock_interfaces.NewMockIDocumentRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewBillingPaymentUseCase(nil, docs, gateway, PaymentSettings{}, zerolog.Nop())

		docs.EXPECT().GetByID(gomock.Any(), "inv-1").Return(pendingInvoice(), nil)
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("", "", nil, errors.New("boom"))

		_, err := uc.PayInvoice(context.Background(), "inv-1", json.RawMessage(validMPPayload))
		if err == nil || err.Error() != "boom" {
			t.Fatalf("expected boom, got %v", err)
		}
	})
}

func TestBillingPaymentUseCase_PayInvoice_Success(t *testing.T) {
	t.Run("approved payment marks invoice paid", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBillingPaymentRepository(ctrl)
		docs := mock_interfaces.NewMockIDocumentRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewBillingPaymentUseCase(repo, docs, gateway, PaymentSettings{SandboxPayerEmail: "sandbox@test.com"}, zerolog.Nop())

		docs.EXPECT().GetByID(gomock.Any(), "inv-1").Return(pendingInvoice(), nil)
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, body json.RawMessage) (string, string, json.RawMessage, error) {
			var sent map[string]any
			if err := json.Unmarshal(body, &sent); err != nil {
				t.Fatalf("unexpected body %s", body)
			}
			if sent["transaction_amount"] != 210.01 {
				t.Fatalf("expected amount 210.01 from invoice total, got %v", sent["transaction_amount"])
			}
			if sent["external_reference"] != "inv-1" {
				t.Fatalf("expected external_reference inv-1, got %v", sent["external_reference"])
			}
			payer, _ := sent["payer"].(map[string]any)
			if payer["email"] != "sandbox@test.com" {
				t.Fatalf("expected sandbox payer email, got %v", payer["email"])
			}
			return "123", "approved", json.RawMessage(`{"id":123,"status":"approved"}`), nil
		})
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, p entities.BillingPayment) (entities.BillingPayment, error) {
			return p, nil
		})
		docs.EXPECT().UpdateStatus(gomock.Any(), "inv-1", entities.DocumentStatusPaid).Return(entities.Document{ID: "inv-1", Status: entities.DocumentStatusPaid}, nil)

		p, err := uc.PayInvoice(context.Background(), "inv-1", json.RawMessage(`{"payment_method_id":"pix"}`))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.ID != "123" || p.InvoiceID != "inv-1" || p.Status != entities.PaymentStatusApproved {
			t.Fatalf("unexpected payment: %+v", p)
		}
		if !p.Amount.Equal(decimal.RequireFromString("210.01")) {
			t.Fatalf("expected amount 210.01, got %s", p.Amount)
		}
	})

	t.Run("pending payment keeps invoice open", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBillingPaymentRepository(ctrl)
		docs := mock_interfaces.NewMockIDocumentRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewBillingPaymentUseCase(repo, docs, gateway, PaymentSettings{}, zerolog.Nop())

		docs.EXPECT().GetByID(gomock.Any(), "inv-1").Return(pendingInvoice(), nil)
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("124", "in_process", json.RawMessage(`{}`), nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, p entities.BillingPayment) (entities.BillingPayment, error) {
			return p, nil
		})

		p, err := uc.PayInvoice(context.Background(), "inv-1", json.RawMessage(validMPPayload))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.Status != entities.PaymentStatusPending {
			t.Fatalf("expected pending, got %s", p.Status)
		}
	})
}

func TestBillingPaymentUseCase_Queries(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIBillingPaymentRepository(ctrl)
	uc := NewBillingPaymentUseCase(repo, nil, nil, PaymentSettings{}, zerolog.Nop())

	if _, err := uc.GetByID(context.Background(), ""); !errors.Is(err, ErrInvalidPaymentID) {
		t.Fatalf("expected ErrInvalidPaymentID, got %v", err)
	}

	repo.EXPECT().GetByID(gomock.Any(), "p-1").Return(entities.BillingPayment{}, nil)
	if _, err := uc.GetByID(context.Background(), "p-1"); !errors.Is(err, ErrBillingPaymentNotFound) {
		t.Fatalf("expected ErrBillingPaymentNotFound, got %v", err)
	}

	if _, err := uc.ListByInvoiceID(context.Background(), " "); !errors.Is(err, ErrInvalidPaymentInvoiceID) {
		t.Fatalf("expected ErrInvalidPaymentInvoiceID, got %v", err)
	}

	repo.EXPECT().ListByInvoiceID(gomock.Any(), "inv-1").Return([]entities.BillingPayment{{ID: "p-1"}}, nil)
	list, err := uc.ListByInvoiceID(context.Background(), "inv-1")
	if err != nil || len(list) != 1 {
		t.Fatalf("unexpected list result: %v %v", list, err)
	}
}
