package errors

import "math"

// Field validators for layout parameters. Each returns an *Error with code
// INVALID_PARAMETER naming the offending field, so callers can surface the
// failure before any geometry is computed.

// ValidatePositiveCount validates a grid dimension (rows or columns).
func ValidatePositiveCount(field string, v int) error {
	if v <= 0 {
		return New(ErrCodeInvalidParameter, "%s must be a positive integer, got %d", field, v)
	}
	return nil
}

// ValidatePositiveLength validates a length in millimeters that must be
// strictly positive and finite.
func ValidatePositiveLength(field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return New(ErrCodeInvalidParameter, "%s must be finite, got %g", field, v)
	}
	if v <= 0 {
		return New(ErrCodeInvalidParameter, "%s must be positive, got %g mm", field, v)
	}
	return nil
}

// ValidateNonNegativeLength validates a length in millimeters that may be zero.
func ValidateNonNegativeLength(field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return New(ErrCodeInvalidParameter, "%s must be finite, got %g", field, v)
	}
	if v < 0 {
		return New(ErrCodeInvalidParameter, "%s must not be negative, got %g mm", field, v)
	}
	return nil
}

// ValidateApexAngle validates an apex angle in degrees, exclusive on both ends.
func ValidateApexAngle(field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return New(ErrCodeInvalidParameter, "%s must be finite, got %g", field, v)
	}
	if v <= 0 || v >= 180 {
		return New(ErrCodeInvalidParameter, "%s must be strictly between 0 and 180 degrees, got %g", field, v)
	}
	return nil
}
