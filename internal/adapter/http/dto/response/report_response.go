package response

import (
	"time"

	"business_manager/internal/domain/entities"
)

type CustomerRevenueResponse struct {
	Name    string  `json:"name"`
	Revenue float64 `json:"revenue"`
}

// ReportResponse carries money rounded to cents. To is exclusive.
type ReportResponse struct {
	Period          string                    `json:"period"`
	From            time.Time                 `json:"from"`
	To              time.Time                 `json:"to"`
	TotalRevenue    float64                   `json:"total_revenue"`
	InvoicesIssued  int                       `json:"invoices_issued"`
	InvoicesPaid    int                       `json:"invoices_paid"`
	QuotesIssued    int                       `json:"quotes_issued"`
	QuotesAccepted  int                       `json:"quotes_accepted"`
	AverageJobValue float64                   `json:"average_job_value"`
	NewCustomers    int                       `json:"new_customers"`
	TopCustomers    []CustomerRevenueResponse `json:"top_customers"`
}

func FromReport(r entities.Report) ReportResponse {
	top := make([]CustomerRevenueResponse, 0, len(r.TopCustomers))
	for _, c := range r.TopCustomers {
		top = append(top, CustomerRevenueResponse{Name: c.Name, Revenue: amount(c.Revenue)})
	}
	return ReportResponse{
		Period:          string(r.Period),
		From:            r.From,
		To:              r.To,
		TotalRevenue:    amount(r.TotalRevenue),
		InvoicesIssued:  r.InvoicesIssued,
		InvoicesPaid:    r.InvoicesPaid,
		QuotesIssued:    r.QuotesIssued,
		QuotesAccepted:  r.QuotesAccepted,
		AverageJobValue: amount(r.AverageJobValue),
		NewCustomers:    r.NewCustomers,
		TopCustomers:    top,
	}
}
