package usecase

import (
	"context"
	"errors"
	"slices"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"business_manager/internal/domain/entities"
	"business_manager/internal/domain/pricing"
	"business_manager/internal/usecase/interfaces"
)

var ErrInvalidReportPeriod = errors.New("invalid report period")

const (
	topCustomersLimit   = 5
	unknownCustomerName = "Unknown"
)

// IReportUseCase summarizes business activity over a week or a month.
type IReportUseCase interface {
	Summary(ctx context.Context, period entities.ReportPeriod, ref time.Time) (entities.Report, error)
}

type ReportUseCase struct {
	documents interfaces.IDocumentRepository
	customers interfaces.ICustomerRepository
	logger    zerolog.Logger
}

var _ IReportUseCase = (*ReportUseCase)(nil)

func NewReportUseCase(documents interfaces.IDocumentRepository, customers interfaces.ICustomerRepository, logger zerolog.Logger) *ReportUseCase {
	return &ReportUseCase{documents: documents, customers: customers, logger: logger}
}

// Summary reports on documents and customers created in the period holding
// ref. Revenue counts paid invoices only. The average job value is taken
// over accepted quotes.
func (u *ReportUseCase) Summary(ctx context.Context, period entities.ReportPeriod, ref time.Time) (entities.Report, error) {
	from, to, ok := period.Range(ref)
	if !ok {
		return entities.Report{}, ErrInvalidReportPeriod
	}
	in := func(t time.Time) bool { return !t.Before(from) && t.Before(to) }

	report := entities.Report{
		Period:          period,
		From:            from,
		To:              to,
		TotalRevenue:    decimal.Zero,
		AverageJobValue: decimal.Zero,
		TopCustomers:    []entities.CustomerRevenue{},
	}

	invoices, err := u.documents.ListByKind(ctx, entities.DocumentKindInvoice)
	if err != nil {
		return entities.Report{}, err
	}
	revenue := make(map[string]decimal.Decimal)
	for _, inv := range invoices {
		if !in(inv.CreatedAt) {
			continue
		}
		report.InvoicesIssued++
		if inv.Status != entities.DocumentStatusPaid {
			continue
		}
		report.InvoicesPaid++
		report.TotalRevenue = report.TotalRevenue.Add(inv.TotalAmount)
		name := strings.TrimSpace(inv.Customer.Name)
		if name == "" {
			name = unknownCustomerName
		}
		revenue[name] = revenue[name].Add(inv.TotalAmount)
	}
	report.TopCustomers = topCustomers(revenue, topCustomersLimit)

	quotes, err := u.documents.ListByKind(ctx, entities.DocumentKindQuote)
	if err != nil {
		return entities.Report{}, err
	}
	accepted := make([]decimal.Decimal, 0)
	for _, q := range quotes {
		if !in(q.CreatedAt) {
			continue
		}
		report.QuotesIssued++
		if q.Status == entities.DocumentStatusAccepted {
			accepted = append(accepted, q.TotalAmount)
		}
	}
	report.QuotesAccepted = len(accepted)
	if len(accepted) > 0 {
		report.AverageJobValue = pricing.Sum(accepted...).Div(decimal.NewFromInt(int64(len(accepted))))
	}

	customers, err := u.customers.List(ctx)
	if err != nil {
		return entities.Report{}, err
	}
	for _, c := range customers {
		if in(c.CreatedAt) {
			report.NewCustomers++
		}
	}

	u.logger.Debug().
		Str("period", string(period)).
		Time("from", from).
		Int("invoices_paid", report.InvoicesPaid).
		Msg("report computed")
	return report, nil
}

func topCustomers(revenue map[string]decimal.Decimal, limit int) []entities.CustomerRevenue {
	out := make([]entities.CustomerRevenue, 0, len(revenue))
	for name, total := range revenue {
		out = append(out, entities.CustomerRevenue{Name: name, Revenue: total})
	}
	slices.SortFunc(out, func(a, b entities.CustomerRevenue) int {
		if c := b.Revenue.Cmp(a.Revenue); c != 0 {
			return c
		}
		return strings.Compare(a.Name, b.Name)
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}
