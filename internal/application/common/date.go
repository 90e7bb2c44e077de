// Package common holds input helpers shared by the application services.
package common

import (
	"time"

	"github.com/bizdash/backend/internal/domain/shared"
)

// DateLayout is the wire format of calendar dates
const DateLayout = "2006-01-02"

// ParseDate accepts a calendar date or an RFC 3339 timestamp.
// An empty string yields the zero time, which domain constructors read as today.
func ParseDate(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse(DateLayout, value); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, shared.NewDomainError("INVALID_DATE", "Date must be YYYY-MM-DD or RFC 3339")
	}
	return t, nil
}

// ParseOptionalDate is ParseDate for nullable fields
func ParseOptionalDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := ParseDate(value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// FormatDate renders the calendar date of t
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}
