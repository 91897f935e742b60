package internal

import "math/bits"

// Uint128 is a fixed-size unsigned 128-bit integer. It is the scratch
// representation for duration arithmetic on the nanosecond scale, which needs
// about 94 bits for the full Duration range.
type Uint128 struct {
	Hi, Lo uint64
}

// MulAdd64 returns a*b + c as a 128-bit value.
func MulAdd64(a, b, c uint64) Uint128 {
	hi, lo := bits.Mul64(a, b)
	lo, carry := bits.Add64(lo, c, 0)
	return Uint128{Hi: hi + carry, Lo: lo}
}

func (u Uint128) IsZero() bool {
	return u.Hi == 0 && u.Lo == 0
}

// Cmp returns -1, 0, or 1 depending on whether u is less than, equal to, or
// greater than v.
func (u Uint128) Cmp(v Uint128) int {
	switch {
	case u.Hi != v.Hi:
		if u.Hi < v.Hi {
			return -1
		}
		return 1
	case u.Lo != v.Lo:
		if u.Lo < v.Lo {
			return -1
		}
		return 1
	default:
		return 0
	}
}

// Add returns u+v. Callers must keep the sum below 2^128.
func (u Uint128) Add(v Uint128) Uint128 {
	lo, carry := bits.Add64(u.Lo, v.Lo, 0)
	hi, _ := bits.Add64(u.Hi, v.Hi, carry)
	return Uint128{Hi: hi, Lo: lo}
}

// Sub returns u-v. Callers must ensure v <= u.
func (u Uint128) Sub(v Uint128) Uint128 {
	lo, borrow := bits.Sub64(u.Lo, v.Lo, 0)
	hi, _ := bits.Sub64(u.Hi, v.Hi, borrow)
	return Uint128{Hi: hi, Lo: lo}
}

// Lsh1 returns u shifted left by one bit, discarding the top bit.
func (u Uint128) Lsh1() Uint128 {
	return Uint128{Hi: u.Hi<<1 | u.Lo>>63, Lo: u.Lo << 1}
}

// QuoRem returns u/v and u%v. v must be non-zero.
func (u Uint128) QuoRem(v Uint128) (q, r Uint128) {
	if v.Hi == 0 && u.Hi < v.Lo {
		// Quotient fits in 64 bits, so the hardware can do the division.
		lo, rem := bits.Div64(u.Hi, u.Lo, v.Lo)
		return Uint128{Lo: lo}, Uint128{Lo: rem}
	}

	// Plain binary long division. Only reached for factors of 2^64
	// nanoseconds (~584 years) and up, or quotients past 2^64.
	for i := 127; i >= 0; i-- {
		r = r.Lsh1()
		r.Lo |= u.bit(i)
		if r.Cmp(v) >= 0 {
			r = r.Sub(v)
			q = q.setBit(i)
		}
	}
	return q, r
}

func (u Uint128) bit(i int) uint64 {
	if i >= 64 {
		return u.Hi >> (i - 64) & 1
	}
	return u.Lo >> i & 1
}

func (u Uint128) setBit(i int) Uint128 {
	if i >= 64 {
		u.Hi |= 1 << (i - 64)
	} else {
		u.Lo |= 1 << i
	}
	return u
}
