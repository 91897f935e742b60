package roundable

import (
	"math"

	"github.com/heyvito/roundable/errors"
)

// TryRoundFloatTo returns the multiple of factor nearest to value, resolving
// exact halfway cases with tie. It returns errors.NonPositiveFactor when
// factor is zero, negative, or not finite, and errors.Overflow when a finite
// value rounds to a non-finite result. NaN and infinite values are returned
// unchanged.
//
// Tie detection is best-effort: the halfway point is matched within one
// machine epsilon, so tie resolution is only guaranteed when the halfway
// point is exactly representable in T.
func TryRoundFloatTo[T Float](value, factor T, tie Tie) (T, error) {
	f := float64(factor)
	if !(f > 0) || math.IsInf(f, 0) {
		return 0, errors.NonPositiveFactor{}
	}
	if v := float64(value); math.IsNaN(v) || math.IsInf(v, 0) {
		return value, nil
	}

	eps := epsilon[T]()
	remainder := T(math.Mod(float64(value), float64(factor)))
	base := value - remainder
	half := factor / 2

	useSmaller := func() bool {
		switch tie {
		case TieDown:
			return true
		case TieTowardZero:
			return value > 0
		case TieAwayFromZero:
			return value < 0
		case TieTowardEven:
			return (floatAbs(T(math.Mod(float64(base/factor), 2))) < eps) != (value < 0)
		case TieTowardOdd:
			return (floatAbs(T(math.Mod(float64(base/factor), 2))) >= eps) != (value < 0)
		default: // TieUp
			return false
		}
	}

	if value > 0 {
		if remainder-half < -eps || (floatAbs(remainder-half) < eps && useSmaller()) {
			return base, nil
		}
		return finiteResult(base + factor)
	}

	// value <= 0
	if remainder-half+factor < -eps || (floatAbs(remainder+half) < eps && useSmaller()) {
		return finiteResult(base - factor)
	}
	return base, nil
}

// RoundFloatTo is TryRoundFloatTo for callers that have already bounded their
// inputs: instead of returning an error it panics on a bad factor or a
// non-finite result.
func RoundFloatTo[T Float](value, factor T, tie Tie) T {
	result, err := TryRoundFloatTo(value, factor, tie)
	if err != nil {
		panic(err)
	}
	return result
}

// RoundUpFloatTo is RoundFloatTo with the TieUp strategy.
func RoundUpFloatTo[T Float](value, factor T) T {
	return RoundFloatTo(value, factor, TieUp)
}

func floatAbs[T Float](v T) T {
	if v < 0 {
		return -v
	}
	return v
}

// epsilon returns the machine epsilon for T: the gap between 1.0 and the next
// representable value.
func epsilon[T Float]() T {
	var zero T
	if _, ok := any(zero).(float32); ok {
		return T(0x1p-23)
	}
	return T(0x1p-52)
}

func finiteResult[T Float](result T) (T, error) {
	if math.IsInf(float64(result), 0) {
		return 0, errors.Overflow{}
	}
	return result, nil
}
