package roundable

import (
	"fmt"
	"math"
	"math/bits"
	"strings"
	"time"

	"github.com/heyvito/roundable/errors"
	"github.com/heyvito/roundable/internal"
)

const nanosPerSecond = 1_000_000_000

// Duration is a non-negative span of time: a whole-second count plus a
// sub-second remainder at nanosecond resolution. It covers a far wider range
// than time.Duration, which caps out just short of 293 years.
type Duration struct {
	Seconds uint64
	Nanos   uint32 // always < 1e9
}

// Common factors for rounding durations. These carry no behavior; they are
// plain Duration values for caller convenience.
var (
	Nanosecond  = Duration{Nanos: 1}
	Microsecond = Duration{Nanos: 1_000}
	Millisecond = Duration{Nanos: 1_000_000}
	Second      = Duration{Seconds: 1}
	Minute      = Duration{Seconds: 60}
	Hour        = Duration{Seconds: 60 * 60}
	Day         = Duration{Seconds: 24 * 60 * 60}

	// MaxDuration is the largest representable Duration.
	MaxDuration = Duration{Seconds: math.MaxUint64, Nanos: nanosPerSecond - 1}
)

// NewDuration builds a Duration from whole seconds plus nanoseconds, carrying
// nanoseconds past a full second into the seconds count. The result saturates
// at MaxDuration when the carry does not fit.
func NewDuration(seconds uint64, nanos uint32) Duration {
	carried, carry := bits.Add64(seconds, uint64(nanos)/nanosPerSecond, 0)
	if carry != 0 {
		return MaxDuration
	}
	return Duration{Seconds: carried, Nanos: nanos % nanosPerSecond}
}

// DurationOf converts a time.Duration. It panics when d is negative, since
// Duration has no negative range.
func DurationOf(d time.Duration) Duration {
	if d < 0 {
		panic("roundable: cannot represent a negative time.Duration")
	}
	return Duration{
		Seconds: uint64(d / time.Second),
		Nanos:   uint32(d % time.Second),
	}
}

// Std converts d back into a time.Duration, or returns errors.Overflow when d
// exceeds its range.
func (d Duration) Std() (time.Duration, error) {
	const maxSeconds = math.MaxInt64 / nanosPerSecond
	if d.Seconds > maxSeconds ||
		(d.Seconds == maxSeconds && uint64(d.Nanos) > math.MaxInt64%nanosPerSecond) {
		return 0, errors.Overflow{}
	}
	return time.Duration(d.Seconds)*time.Second + time.Duration(d.Nanos), nil
}

func (d Duration) IsZero() bool {
	return d.Seconds == 0 && d.Nanos == 0
}

// Cmp returns -1, 0, or 1 depending on whether d is shorter than, equal to,
// or longer than other.
func (d Duration) Cmp(other Duration) int {
	switch {
	case d.Seconds != other.Seconds:
		if d.Seconds < other.Seconds {
			return -1
		}
		return 1
	case d.Nanos != other.Nanos:
		if d.Nanos < other.Nanos {
			return -1
		}
		return 1
	default:
		return 0
	}
}

// String renders the duration as seconds, with the sub-second remainder
// trimmed to its significant digits.
func (d Duration) String() string {
	if d.Nanos == 0 {
		return fmt.Sprintf("%ds", d.Seconds)
	}
	frac := strings.TrimRight(fmt.Sprintf("%09d", d.Nanos), "0")
	return fmt.Sprintf("%d.%ss", d.Seconds, frac)
}

// TryRoundTo returns the multiple of factor nearest to d, resolving exact
// halfway cases with tie. It returns errors.NonPositiveFactor when factor is
// zero, and errors.Overflow when the nearest multiple exceeds MaxDuration.
//
// Durations have no negative range, so TieTowardZero behaves as TieDown and
// TieAwayFromZero as TieUp.
func (d Duration) TryRoundTo(factor Duration, tie Tie) (Duration, error) {
	if factor.IsZero() {
		return Duration{}, errors.NonPositiveFactor{}
	}

	// Operand and factor share the nanosecond tick scale, so the whole
	// computation is exact integer arithmetic.
	value := d.ticks()
	f := factor.ticks()
	quotient, remainder := value.QuoRem(f)
	if remainder.IsZero() {
		return d, nil
	}

	useSmaller := func() bool {
		switch tie {
		case TieDown, TieTowardZero:
			return true
		case TieTowardEven:
			return quotient.Lo&1 == 0
		case TieTowardOdd:
			return quotient.Lo&1 == 1
		default: // TieUp, TieAwayFromZero
			return false
		}
	}

	base := value.Sub(remainder)
	// remainder < factor <= MaxDuration in ticks, so doubling cannot wrap.
	if cmp := remainder.Lsh1().Cmp(f); cmp < 0 || (cmp == 0 && useSmaller()) {
		return durationOfTicks(base), nil
	}

	up := base.Add(f)
	if up.Cmp(maxTicks) > 0 {
		return Duration{}, errors.Overflow{}
	}
	return durationOfTicks(up), nil
}

// RoundTo is TryRoundTo for callers that have already bounded their inputs:
// instead of returning an error it panics on a zero factor or an overflowing
// result.
func (d Duration) RoundTo(factor Duration, tie Tie) Duration {
	result, err := d.TryRoundTo(factor, tie)
	if err != nil {
		panic(err)
	}
	return result
}

// RoundUpTo is RoundTo with the TieUp strategy.
func (d Duration) RoundUpTo(factor Duration) Duration {
	return d.RoundTo(factor, TieUp)
}

var maxTicks = MaxDuration.ticks()

func (d Duration) ticks() internal.Uint128 {
	return internal.MulAdd64(d.Seconds, nanosPerSecond, uint64(d.Nanos))
}

func durationOfTicks(t internal.Uint128) Duration {
	// t never exceeds maxTicks, whose high word is below 1e9, so the
	// division cannot trap.
	seconds, nanos := bits.Div64(t.Hi, t.Lo, nanosPerSecond)
	return Duration{Seconds: seconds, Nanos: uint32(nanos)}
}
