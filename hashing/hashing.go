package hashing

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"hash"

	"github.com/OneOfOne/xxhash"
	"github.com/zeebo/xxh3"
)

// HashFunc is a function that takes a Hashable object
// and returns a string representation of its hashing.
// As an example, the Sha256 function is a HashFunc.
// This lets us talk about hashing functions in a generic way.
type HashFunc func(hashable Hashable) (string, error)

// Hashable is an interface that allows an object to update
// a hash.Hash with its contents. This is useful for hashing
// objects so that they can be easily compared.
type Hashable interface {
	UpdateHash(h hash.Hash) error
}

var (
	_ HashFunc = Sha256
	_ HashFunc = Xxh3
	_ HashFunc = XXHash64
)

// Sha256 returns the SHA256 hashing of the given Hashable
// as a hex-encoded string. If the Hashable fails to
// update the hashing, an error is returned.
func Sha256(hashable Hashable) (string, error) {
	return hexDigest(sha256.New(), hashable)
}

// Xxh3 returns the 64-bit XXH3 hashing of the given Hashable as a
// hex-encoded string. It is much faster than Sha256 and is the
// preferred choice for in-memory map and set keys.
func Xxh3(hashable Hashable) (string, error) {
	return hexDigest(xxh3.New(), hashable)
}

// XXHash64 returns the classic 64-bit xxHash of the given Hashable
// as a hex-encoded string.
func XXHash64(hashable Hashable) (string, error) {
	return hexDigest(xxhash.New64(), hashable)
}

// Sum64 returns the 64-bit XXH3 hashing of the given Hashable.
func Sum64(hashable Hashable) (uint64, error) {
	h := xxh3.New()

	if err := hashable.UpdateHash(h); err != nil {
		return 0, err
	}

	return h.Sum64(), nil
}

func hexDigest(h hash.Hash, hashable Hashable) (string, error) {
	if err := hashable.UpdateHash(h); err != nil {
		return "", err
	}

	return hex.EncodeToString(h.Sum(nil)), nil
}

type HashableString string

func (s HashableString) String() string {
	return string(s)
}

func (s HashableString) UpdateHash(h hash.Hash) error {
	_, err := h.Write([]byte(s))
	if err != nil {
		return err
	}

	return nil
}

func (s HashableString) Equals(other HashableString) bool {
	return s == other
}

type HashableBytes []byte

func (b HashableBytes) UpdateHash(h hash.Hash) error {
	_, err := h.Write(b)

	return err
}

// HashableInt16 writes its value as two big-endian bytes.
type HashableInt16 int16

func (i HashableInt16) UpdateHash(h hash.Hash) error {
	var buf [2]byte

	binary.BigEndian.PutUint16(buf[:], uint16(i)) //nolint:gosec

	_, err := h.Write(buf[:])

	return err
}

func (i HashableInt16) Equals(other HashableInt16) bool {
	return i == other
}
