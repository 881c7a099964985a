package api

import (
	"fmt"
	"strconv"
	"time"
)

// dateLayout is the accepted input format for exercise dates and log
// query bounds.
const dateLayout = "2006-01-02"

// parseDuration converts the duration form field to whole minutes.
// Malformed input rejects the request rather than persisting a
// sentinel value.
func parseDuration(raw string) (int, error) {
	minutes, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid duration %q: expected whole minutes", raw)
	}
	return minutes, nil
}

// parseDate converts a YYYY-MM-DD string to a UTC midnight timestamp.
func parseDate(raw string) (time.Time, error) {
	date, err := time.ParseInLocation(dateLayout, raw, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", raw)
	}
	return date, nil
}

// parseLimit converts the limit query parameter to a result cap.
// Absent, non-numeric, or non-positive input means unbounded.
func parseLimit(raw string) int {
	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 0 {
		return 0
	}
	return limit
}
