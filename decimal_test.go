package roundable

import (
	"testing"

	"github.com/govalues/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heyvito/roundable/errors"
)

func dec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.Parse(s)
	require.NoError(t, err)
	return d
}

func assertDecimal(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.Zerof(t, dec(t, want).Cmp(got), "got %s, want %s", got, want)
}

func TestRoundDecimalNearest(t *testing.T) {
	assertDecimal(t, "3.1", RoundDecimalTo(dec(t, "3.14"), dec(t, "0.1"), TieUp))
	assertDecimal(t, "310", RoundDecimalTo(dec(t, "314"), dec(t, "10"), TieUp))
	assertDecimal(t, "300", RoundDecimalTo(dec(t, "314.1"), dec(t, "100"), TieUp))
	assertDecimal(t, "12.25", RoundDecimalTo(dec(t, "12.345"), dec(t, "0.25"), TieUp))
	assertDecimal(t, "-3.1", RoundDecimalTo(dec(t, "-3.14"), dec(t, "0.1"), TieUp))
}

func TestRoundDecimalExactMultiple(t *testing.T) {
	for _, tie := range allTies {
		assertDecimal(t, "3.10", RoundDecimalTo(dec(t, "3.10"), dec(t, "0.1"), tie))
		assertDecimal(t, "0", RoundDecimalTo(dec(t, "0"), dec(t, "0.25"), tie))
		assertDecimal(t, "-12", RoundDecimalTo(dec(t, "-12"), dec(t, "3"), tie))
	}
}

// 0.1 decimal ties are exact, unlike their binary float counterparts.
func TestRoundDecimalTies(t *testing.T) {
	assertDecimal(t, "3.2", RoundDecimalTo(dec(t, "3.15"), dec(t, "0.1"), TieUp))
	assertDecimal(t, "3.1", RoundDecimalTo(dec(t, "3.15"), dec(t, "0.1"), TieDown))
	assertDecimal(t, "3.1", RoundDecimalTo(dec(t, "3.15"), dec(t, "0.1"), TieTowardZero))
	assertDecimal(t, "3.2", RoundDecimalTo(dec(t, "3.15"), dec(t, "0.1"), TieAwayFromZero))
	assertDecimal(t, "3.2", RoundDecimalTo(dec(t, "3.15"), dec(t, "0.1"), TieTowardEven))
	assertDecimal(t, "3.1", RoundDecimalTo(dec(t, "3.15"), dec(t, "0.1"), TieTowardOdd))

	assertDecimal(t, "3.2", RoundDecimalTo(dec(t, "3.25"), dec(t, "0.1"), TieTowardEven))
	assertDecimal(t, "3.3", RoundDecimalTo(dec(t, "3.25"), dec(t, "0.1"), TieTowardOdd))

	assertDecimal(t, "-3.1", RoundDecimalTo(dec(t, "-3.15"), dec(t, "0.1"), TieUp))
	assertDecimal(t, "-3.2", RoundDecimalTo(dec(t, "-3.15"), dec(t, "0.1"), TieDown))
	assertDecimal(t, "-3.1", RoundDecimalTo(dec(t, "-3.15"), dec(t, "0.1"), TieTowardZero))
	assertDecimal(t, "-3.2", RoundDecimalTo(dec(t, "-3.15"), dec(t, "0.1"), TieAwayFromZero))
	assertDecimal(t, "-3.2", RoundDecimalTo(dec(t, "-3.15"), dec(t, "0.1"), TieTowardEven))
	assertDecimal(t, "-3.1", RoundDecimalTo(dec(t, "-3.15"), dec(t, "0.1"), TieTowardOdd))
}

func TestRoundDecimalBadFactor(t *testing.T) {
	for _, tie := range allTies {
		_, err := TryRoundDecimalTo(dec(t, "1"), decimal.Decimal{}, tie)
		assert.ErrorIs(t, err, errors.NonPositiveFactor{})

		_, err = TryRoundDecimalTo(dec(t, "1"), dec(t, "-0.1"), tie)
		assert.ErrorIs(t, err, errors.NonPositiveFactor{})
	}

	assert.PanicsWithValue(t, error(errors.NonPositiveFactor{}), func() {
		RoundDecimalTo(dec(t, "1"), dec(t, "0"), TieUp)
	})
}

func TestRoundDecimalOverflow(t *testing.T) {
	// Rounding the largest 19-digit value up needs a 20th digit.
	_, err := TryRoundDecimalTo(dec(t, "9999999999999999999"), dec(t, "10"), TieUp)
	assert.ErrorIs(t, err, errors.Overflow{})

	rounded, err := TryRoundDecimalTo(dec(t, "9999999999999999994"), dec(t, "10"), TieDown)
	require.NoError(t, err)
	assertDecimal(t, "9999999999999999990", rounded)
}

func TestRoundUpDecimalTo(t *testing.T) {
	assertDecimal(t, "3.2", RoundUpDecimalTo(dec(t, "3.15"), dec(t, "0.1")))
	assertDecimal(t, "12.5", RoundUpDecimalTo(dec(t, "12.43"), dec(t, "0.25")))
}

func BenchmarkRoundDecimalTo(b *testing.B) {
	value := decimal.MustParse("12.345")
	factor := decimal.MustParse("0.25")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = TryRoundDecimalTo(value, factor, TieTowardEven)
	}
}
