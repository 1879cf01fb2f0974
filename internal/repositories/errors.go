package repositories

import (
	"strings"
)

func isDuplicateKeyError(err error) bool {
	if err == nil {
		return false
	}

	errStr := err.Error()
	return strings.Contains(errStr, "duplicate key") ||
		strings.Contains(errStr, "UNIQUE constraint") ||
		strings.Contains(errStr, "23505")
}

// isNumericOverflowError detects a value rejected by a NUMERIC(16,2) column
func isNumericOverflowError(err error) bool {
	if err == nil {
		return false
	}

	errStr := err.Error()
	return strings.Contains(errStr, "numeric field overflow") ||
		strings.Contains(errStr, "out of range") ||
		strings.Contains(errStr, "22003")
}
