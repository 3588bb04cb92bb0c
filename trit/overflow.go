package trit

// Overflow reports whether a trit addition left the -1..1 range.
type Overflow int8

const (
	// OverflowNone means the sum fit in a single trit.
	OverflowNone Overflow = iota

	// PosOverflow means the raw sum was +2.
	PosOverflow

	// NegOverflow means the raw sum was -2.
	NegOverflow
)

func (o Overflow) String() string {
	switch o {
	case OverflowNone:
		return "None"
	case PosOverflow:
		return "PosOverflow"
	case NegOverflow:
		return "NegOverflow"
	default:
		return "Overflow(?)"
	}
}

// Carry returns the trit carried out by the overflow: Pos for PosOverflow,
// Neg for NegOverflow and Neu otherwise.
func (o Overflow) Carry() Trit {
	switch o {
	case PosOverflow:
		return Pos
	case NegOverflow:
		return Neg
	default:
		return Neu
	}
}

// Add sums the integer codes of t and other. The overflow indicator is
// PosOverflow when the raw sum exceeds 1 and NegOverflow when it is below -1.
// The returned trit is FromInt(sum), which means both overflowing sums yield Neu.
func (t Trit) Add(other Trit) (Overflow, Trit) {
	sum := t.Int() + other.Int()

	switch {
	case sum > 1:
		return PosOverflow, FromInt(sum)
	case sum < -1:
		return NegOverflow, FromInt(sum)
	default:
		return OverflowNone, FromInt(sum)
	}
}
