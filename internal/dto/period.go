package dto

import (
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/sme_tax_estimator/internal/apperrors"
	"github.com/SscSPs/sme_tax_estimator/internal/core/domain"
)

// DateLayout is the wire format of period boundaries.
const DateLayout = "2006-01-02"

// ParsePeriod builds an inclusive period from optional YYYY-MM-DD strings.
// A missing toDate is today (UTC); a missing fromDate is 1 January of the toDate year.
func ParsePeriod(fromDate, toDate string, now time.Time) (domain.Period, error) {
	var period domain.Period

	to, err := parseDate(toDate, "toDate")
	if err != nil {
		return period, err
	}
	if to.IsZero() {
		y, m, d := now.UTC().Date()
		to = time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	}

	from, err := parseDate(fromDate, "fromDate")
	if err != nil {
		return period, err
	}
	if from.IsZero() {
		from = time.Date(to.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
	}

	if from.After(to) {
		return period, fmt.Errorf("%w: fromDate %s is after toDate %s", apperrors.ErrValidation, from.Format(DateLayout), to.Format(DateLayout))
	}
	period.From = from
	period.To = to
	return period, nil
}

func parseDate(value, field string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(DateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: invalid %s format, use YYYY-MM-DD", apperrors.ErrValidation, field)
	}
	return t, nil
}
