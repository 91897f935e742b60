package errors

// NonPositiveFactor indicates that a rounding factor was zero, negative, or
// otherwise unusable (for floats, NaN or infinite). Factors must be strictly
// positive for every representation.
type NonPositiveFactor struct{}

func (NonPositiveFactor) Error() string {
	return "rounding factor must be a positive value"
}

// Overflow indicates that the mathematically correct rounded result cannot be
// represented by the operand's type, such as rounding uint8(255) up to the
// nearest multiple of 10.
type Overflow struct{}

func (Overflow) Error() string {
	return "rounded result is not representable by the operand's type"
}
