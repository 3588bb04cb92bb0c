package tryte

import (
	"hash"
)

// UpdateHash writes the six trit codes in order. Invalid codes hash as Neu,
// so trytes that are Equals always hash identically.
func (t Tryte) UpdateHash(h hash.Hash) error {
	for _, tr := range t {
		if err := tr.UpdateHash(h); err != nil {
			return err
		}
	}

	return nil
}
