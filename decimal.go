package roundable

import (
	"github.com/govalues/decimal"

	"github.com/heyvito/roundable/errors"
)

// TryRoundDecimalTo returns the multiple of factor nearest to value,
// resolving exact halfway cases with tie. It returns
// errors.NonPositiveFactor when factor is zero or negative, and
// errors.Overflow when an intermediate or final result exceeds the decimal
// coefficient range.
//
// Decimal arithmetic is exact within its 19 significant digits, so unlike
// floats tie detection is exact whenever the doubled remainder still fits
// that precision.
func TryRoundDecimalTo(value, factor decimal.Decimal, tie Tie) (decimal.Decimal, error) {
	var zero decimal.Decimal
	if factor.Sign() <= 0 {
		return zero, errors.NonPositiveFactor{}
	}

	quotient, remainder, err := value.QuoRem(factor)
	if err != nil {
		return zero, errors.Overflow{}
	}
	if remainder.IsZero() {
		return value, nil
	}

	base, err := value.Sub(remainder)
	if err != nil {
		return zero, errors.Overflow{}
	}

	useSmaller := func() (bool, error) {
		switch tie {
		case TieDown:
			return true, nil
		case TieTowardZero:
			return value.IsPos(), nil
		case TieAwayFromZero:
			return value.IsNeg(), nil
		case TieTowardEven, TieTowardOdd:
			two := decimal.MustNew(2, 0)
			_, parity, err := quotient.QuoRem(two)
			if err != nil {
				return false, err
			}
			even := parity.IsZero()
			if tie == TieTowardEven {
				return even != value.IsNeg(), nil
			}
			return !even != value.IsNeg(), nil
		default: // TieUp
			return false, nil
		}
	}

	doubled, err := remainder.Mul(decimal.MustNew(2, 0))
	if err != nil {
		return zero, errors.Overflow{}
	}

	cmp := doubled.Abs().Cmp(factor)
	away := cmp > 0
	if cmp == 0 {
		smaller, err := useSmaller()
		if err != nil {
			return zero, errors.Overflow{}
		}
		// For negative values the smaller candidate is the one away from
		// zero.
		away = smaller == value.IsNeg()
	}
	if !away {
		return base, nil
	}

	var result decimal.Decimal
	if value.IsNeg() {
		result, err = base.Sub(factor)
	} else {
		result, err = base.Add(factor)
	}
	if err != nil {
		return zero, errors.Overflow{}
	}
	return result, nil
}

// RoundDecimalTo is TryRoundDecimalTo for callers that have already bounded
// their inputs: instead of returning an error it panics on a non-positive
// factor or an out-of-range result.
func RoundDecimalTo(value, factor decimal.Decimal, tie Tie) decimal.Decimal {
	result, err := TryRoundDecimalTo(value, factor, tie)
	if err != nil {
		panic(err)
	}
	return result
}

// RoundUpDecimalTo is RoundDecimalTo with the TieUp strategy.
func RoundUpDecimalTo(value, factor decimal.Decimal) decimal.Decimal {
	return RoundDecimalTo(value, factor, TieUp)
}
