package roundable

// Integer covers every fixed-width integer type, signed or unsigned. Defined
// types whose underlying type is an integer, such as time.Duration, qualify
// as well.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Float covers both floating point precisions.
type Float interface {
	float32 | float64
}
