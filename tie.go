package roundable

// Tie determines which of the two candidate multiples wins when a value sits
// exactly halfway between them. Ties only come into play at the exact halfway
// point; every other value simply rounds to the nearest multiple.
type Tie int

const (
	// TieUp chooses the larger of the two candidate multiples, by arithmetic
	// value. For negative operands this moves toward zero.
	TieUp Tie = iota

	// TieDown chooses the smaller of the two candidate multiples.
	TieDown

	// TieTowardZero chooses the candidate with the smaller absolute value.
	// Equivalent to TieDown for unsigned values and durations.
	TieTowardZero

	// TieAwayFromZero chooses the candidate with the larger absolute value.
	// Equivalent to TieUp for unsigned values and durations.
	TieAwayFromZero

	// TieTowardEven chooses the candidate that is an even multiple of the
	// factor. This is the tie behavior of IEEE-754 "round half to even".
	TieTowardEven

	// TieTowardOdd chooses the candidate that is an odd multiple of the
	// factor.
	TieTowardOdd
)

func (t Tie) String() string {
	switch t {
	case TieUp:
		return "Up"
	case TieDown:
		return "Down"
	case TieTowardZero:
		return "TowardZero"
	case TieAwayFromZero:
		return "AwayFromZero"
	case TieTowardEven:
		return "TowardEven"
	case TieTowardOdd:
		return "TowardOdd"
	default:
		return "Unknown"
	}
}
