// Package roundable rounds numbers and durations to arbitrary factors, with
// explicit control over how ties are broken and well-defined overflow
// behavior.
//
// Rounding always yields an exact multiple of the factor. A value exactly
// halfway between two multiples is resolved by a Tie strategy, and a result
// that cannot be represented by the operand's type is reported as an overflow
// instead of silently wrapping:
//
//	roundable.RoundTo(314, 10, roundable.TieUp)       // 310
//	roundable.RoundFloatTo(314.1, 100.0, roundable.TieUp) // 300.0
//	roundable.TryRoundTo(uint8(255), 10, roundable.TieUp) // errors.Overflow
//
// Every operation is a pure function over its arguments; the package holds no
// state and is safe for unlimited concurrent use.
package roundable
