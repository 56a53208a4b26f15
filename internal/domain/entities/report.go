package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type ReportPeriod string

const (
	ReportPeriodWeekly  ReportPeriod = "weekly"
	ReportPeriodMonthly ReportPeriod = "monthly"
)

// Range returns the half-open interval [from, to) of the period containing
// ref. Weeks start on Monday.
func (p ReportPeriod) Range(ref time.Time) (from, to time.Time, ok bool) {
	day := time.Date(ref.Year(), ref.Month(), ref.Day(), 0, 0, 0, 0, ref.Location())
	switch p {
	case ReportPeriodWeekly:
		offset := (int(day.Weekday()) + 6) % 7
		from = day.AddDate(0, 0, -offset)
		return from, from.AddDate(0, 0, 7), true
	case ReportPeriodMonthly:
		from = time.Date(day.Year(), day.Month(), 1, 0, 0, 0, 0, day.Location())
		return from, from.AddDate(0, 1, 0), true
	}
	return time.Time{}, time.Time{}, false
}

// CustomerRevenue is the paid invoice total of one customer.
type CustomerRevenue struct {
	Name    string
	Revenue decimal.Decimal
}

// Report summarizes the documents created within [From, To).
type Report struct {
	Period          ReportPeriod
	From            time.Time
	To              time.Time
	TotalRevenue    decimal.Decimal
	InvoicesIssued  int
	InvoicesPaid    int
	QuotesIssued    int
	QuotesAccepted  int
	AverageJobValue decimal.Decimal
	NewCustomers    int
	TopCustomers    []CustomerRevenue
}
