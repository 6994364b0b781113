package entities

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrInvalidBillingMonth = errors.New("invalid billing month")

// NormalizeBillingMonth converts "M/YYYY", "MM/YYYY" or "YYYY-MM" into the
// stored "MM/YYYY" form.
func NormalizeBillingMonth(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	var monthPart, yearPart string
	switch {
	case strings.Contains(raw, "/"):
		parts := strings.Split(raw, "/")
		if len(parts) != 2 {
			return "", ErrInvalidBillingMonth
		}
		monthPart, yearPart = parts[0], parts[1]
	case strings.Contains(raw, "-"):
		parts := strings.Split(raw, "-")
		if len(parts) != 2 {
			return "", ErrInvalidBillingMonth
		}
		yearPart, monthPart = parts[0], parts[1]
	default:
		return "", ErrInvalidBillingMonth
	}

	month, err := strconv.Atoi(strings.TrimSpace(monthPart))
	if err != nil {
		return "", ErrInvalidBillingMonth
	}
	year, err := strconv.Atoi(strings.TrimSpace(yearPart))
	if err != nil {
		return "", ErrInvalidBillingMonth
	}
	return BillingMonthKey(month, year)
}

// BillingMonthKey formats month and year as "MM/YYYY".
func BillingMonthKey(month, year int) (string, error) {
	if month < 1 || month > 12 || year < 1000 || year > 9999 {
		return "", ErrInvalidBillingMonth
	}
	return fmt.Sprintf("%02d/%d", month, year), nil
}
