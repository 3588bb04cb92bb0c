package tryte_test

import (
	"fmt"

	"github.com/amp-labs/amp-ternary/trit"
	"github.com/amp-labs/amp-ternary/tryte"
)

func ExampleTryte_Int() {
	word := tryte.Tryte{trit.Pos, trit.Neu, trit.Neu, trit.Neu, trit.Neu, trit.Neu}
	fmt.Println(word, word.Int())

	// Output:
	// +00000 243
}

func ExampleFromInt() {
	word, err := tryte.FromInt(-42)
	if err != nil {
		panic(err)
	}

	fmt.Println(word, word.Int(), word.Not().Int())

	// Output:
	// 0-+++0 -42 42
}
