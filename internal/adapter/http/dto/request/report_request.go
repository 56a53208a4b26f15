package request

import (
	"strings"
	"time"

	"business_manager/internal/domain/entities"
)

// ReportQuery selects the week or month holding Date. Period defaults to
// weekly and Date to today.
type ReportQuery struct {
	Period string `form:"period"`
	Date   string `form:"date"`
}

func (q ReportQuery) ToParams(now time.Time) (entities.ReportPeriod, time.Time, error) {
	period := entities.ReportPeriod(strings.ToLower(strings.TrimSpace(q.Period)))
	if period == "" {
		period = entities.ReportPeriodWeekly
	}
	ref, err := parseDate(q.Date)
	if err != nil {
		return "", time.Time{}, err
	}
	if ref.IsZero() {
		ref = now
	}
	return period, ref, nil
}
