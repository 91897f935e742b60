package roundable

import "github.com/heyvito/roundable/errors"

// TryRoundTo returns the multiple of factor nearest to value, resolving exact
// halfway cases with tie. It returns errors.NonPositiveFactor when factor is
// zero or negative, and errors.Overflow when the nearest multiple cannot be
// represented by T.
//
// time.Duration satisfies Integer, so Go durations round through here
// directly; the compound Duration type covers spans beyond its range.
func TryRoundTo[T Integer](value, factor T, tie Tie) (T, error) {
	if factor <= 0 {
		return 0, errors.NonPositiveFactor{}
	}

	remainder := value % factor
	// remainder carries the sign of value, so base stays between zero and
	// value and cannot overflow.
	base := value - remainder

	useSmaller := func() bool {
		switch tie {
		case TieDown:
			return true
		case TieTowardZero:
			return value > 0
		case TieAwayFromZero:
			return value < 0
		case TieTowardEven:
			return ((base/factor)%2 == 0) != (value < 0)
		case TieTowardOdd:
			return ((base/factor)%2 != 0) != (value < 0)
		default: // TieUp
			return false
		}
	}

	if value > 0 {
		// factor%2 keeps the midpoint comparison exact when factor is odd.
		if remainder < factor/2+factor%2 || (remainder == factor/2 && useSmaller()) {
			return base, nil
		}
		return checkedAdd(base, factor)
	}

	// value <= 0, so remainder is in (-factor, 0] and the sums below stay in
	// range.
	if remainder+factor < factor/2+factor%2 || (remainder+factor/2+factor%2 == 0 && useSmaller()) {
		return checkedSub(base, factor)
	}
	return base, nil
}

// RoundTo is TryRoundTo for callers that have already bounded their inputs:
// instead of returning an error it panics on a non-positive factor or an
// unrepresentable result.
func RoundTo[T Integer](value, factor T, tie Tie) T {
	result, err := TryRoundTo(value, factor, tie)
	if err != nil {
		panic(err)
	}
	return result
}

// RoundUpTo is RoundTo with the TieUp strategy.
func RoundUpTo[T Integer](value, factor T) T {
	return RoundTo(value, factor, TieUp)
}

// checkedAdd adds a strictly positive factor to base, reporting overflow
// instead of wrapping.
func checkedAdd[T Integer](base, factor T) (T, error) {
	sum := base + factor
	if sum < base {
		return 0, errors.Overflow{}
	}
	return sum, nil
}

// checkedSub subtracts a strictly positive factor from base, reporting
// overflow instead of wrapping.
func checkedSub[T Integer](base, factor T) (T, error) {
	diff := base - factor
	if diff > base {
		return 0, errors.Overflow{}
	}
	return diff, nil
}
