package service

import (
	"fmt"
	"time"

	"elevator_tracker/internal/models"
)

// ResolveDay turns an optional date string into a concrete calendar day.
// Absence resolves to today in UTC. A parseable "YYYY-MM-DD" value is returned
// verbatim, so arbitrary past or future days can be browsed. An explicitly
// supplied malformed value is a validation error.
func ResolveDay(raw string) (string, error) {
	if raw == "" {
		return time.Now().UTC().Format(models.DayLayout), nil
	}
	if _, err := time.Parse(models.DayLayout, raw); err != nil {
		return "", models.NewValidationError(fmt.Sprintf("invalid day %q; use YYYY-MM-DD", raw))
	}
	return raw, nil
}
