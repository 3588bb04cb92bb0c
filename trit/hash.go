package trit

import (
	"hash"

	"github.com/amp-labs/amp-ternary/hashing"
)

var _ hashing.Hashable = Neu

// UpdateHash writes the trit's normalized code as a single byte.
func (t Trit) UpdateHash(h hash.Hash) error {
	_, err := h.Write([]byte{byte(t.normal())})

	return err
}
