package entities

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestReportPeriod_Range(t *testing.T) {
	day := func(y int, m time.Month, d, h int) time.Time { return time.Date(y, m, d, h, 0, 0, 0, time.UTC) }

	cases := []struct {
		name     string
		period   ReportPeriod
		ref      time.Time
		from, to time.Time
	}{
		{name: "week from sunday", period: ReportPeriodWeekly, ref: day(2026, 3, 15, 23), from: day(2026, 3, 9, 0), to: day(2026, 3, 16, 0)},
		{name: "week from monday", period: ReportPeriodWeekly, ref: day(2026, 3, 9, 0), from: day(2026, 3, 9, 0), to: day(2026, 3, 16, 0)},
		{name: "week across new year", period: ReportPeriodWeekly, ref: day(2027, 1, 1, 12), from: day(2026, 12, 28, 0), to: day(2027, 1, 4, 0)},
		{name: "month", period: ReportPeriodMonthly, ref: day(2026, 2, 28, 18), from: day(2026, 2, 1, 0), to: day(2026, 3, 1, 0)},
		{name: "december", period: ReportPeriodMonthly, ref: day(2026, 12, 31, 0), from: day(2026, 12, 1, 0), to: day(2027, 1, 1, 0)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			from, to, ok := tc.period.Range(tc.ref)
			assert.True(t, ok)
			assert.True(t, from.Equal(tc.from), "from %s", from)
			assert.True(t, to.Equal(tc.to), "to %s", to)
		})
	}

	_, _, ok := ReportPeriod("yearly").Range(day(2026, 1, 1, 0))
	assert.False(t, ok)
}

func TestCustomerProfile_Snapshot(t *testing.T) {
	c := CustomerProfile{ID: "c1", Name: "Acme", Email: "a@acme.test", Phone: "555", Address: "1 Main St", CreatedAt: time.Now()}
	assert.Equal(t, Customer{ID: "c1", Name: "Acme", Email: "a@acme.test", Phone: "555", Address: "1 Main St"}, c.Snapshot())
}
