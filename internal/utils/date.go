package utils

import (
	"fmt"
	"time"

	"github.com/pastoraldigital/mass-schedule-manager/internal/core/domain"
)

// ParseDate parses a date in the roster's dd/mm/yyyy format, falling back to
// ISO yyyy-mm-dd. Both are interpreted as plain UTC dates.
func ParseDate(str string) (time.Time, error) {
	parsedDate, err := time.ParseInLocation(domain.KeyDateLayout, str, time.UTC)
	if err != nil {
		parsedDate, err = time.ParseInLocation("2006-01-02", str, time.UTC)
		if err != nil {
			return time.Time{}, fmt.Errorf("failed to parse date %q", str)
		}
	}
	return parsedDate, nil
}
