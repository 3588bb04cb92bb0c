package trit

// Truth tables are indexed by code+1, so row/column 0 is Neg, 1 is Neu and 2 is Pos.
var (
	andTable = [3][3]Trit{ //nolint:gochecknoglobals
		{Neg, Neg, Neg},
		{Neg, Neu, Neu},
		{Neg, Neu, Pos},
	}

	orTable = [3][3]Trit{ //nolint:gochecknoglobals
		{Neg, Neu, Pos},
		{Neu, Neu, Pos},
		{Pos, Pos, Pos},
	}

	xorTable = [3][3]Trit{ //nolint:gochecknoglobals
		{Neg, Neu, Pos},
		{Neu, Neu, Neu},
		{Pos, Neu, Neg},
	}
)

func (t Trit) index() int {
	return int(t.normal()) + 1
}

// Not swaps Pos and Neg and leaves Neu alone.
func (t Trit) Not() Trit {
	return -t.normal()
}

// And returns the more negative of the two operands.
func (t Trit) And(other Trit) Trit {
	return andTable[t.index()][other.index()]
}

// Or returns the more positive of the two operands.
func (t Trit) Or(other Trit) Trit {
	return orTable[t.index()][other.index()]
}

// Xor returns Neu if either operand is Neu, Neg if both are the same pole,
// and Pos if they are opposite poles.
func (t Trit) Xor(other Trit) Trit {
	return xorTable[t.index()][other.index()]
}
