package errors

import "unicode"

// maxTaskIDLength bounds task identifiers; they end up in SVG attributes,
// DOT labels and cache keys.
const maxTaskIDLength = 256

// ValidateTaskID rejects identifiers that are empty, too long, or carry
// control characters.
func ValidateTaskID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidChart, "task id cannot be empty")
	}
	if len(id) > maxTaskIDLength {
		return New(ErrCodeInvalidChart, "task id too long (max %d characters)", maxTaskIDLength)
	}
	for _, r := range id {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidChart, "task id %q contains control characters", id)
		}
	}
	return nil
}
