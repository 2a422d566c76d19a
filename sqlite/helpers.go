package sqlite

import (
	"fmt"
	"time"

	"github.com/fwojciec/docfind"
)

// parseRFC3339 parses an RFC3339 formatted timestamp string.
// Returns an error if parsing fails with a descriptive message including the field name.
func parseRFC3339(value, fieldName string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse %s: %w", fieldName, err)
	}
	return t, nil
}

// unavailable reports a store failure as EUNAVAILABLE.
func unavailable(op string, err error) error {
	return docfind.Errorf(docfind.EUNAVAILABLE, "cache store %s: %v", op, err)
}
