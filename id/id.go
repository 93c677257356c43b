// SPDX-License-Identifier: MIT
//
// File: id.go
// Role: ID value type, generation (entropy, seed, caller RNG) and formatting.
// Determinism:
//   - FromSeed(s) and FromRand(rand.New(rand.NewSource(s))) yield the same ID.
//   - New and NewRand use PCG streams with 128 bits of entropy-derived seed,
//     so every one of the 256^Size IDs is reachable.
// Concurrency:
//   - ID is an immutable value; all functions are safe for concurrent use.
//     FromRand is as safe as the *rand.Rand passed in (math/rand sources are not).

package id

import (
	crand "crypto/rand"
	"encoding/binary"
	"encoding/hex"
	"errors"
	"fmt"
	"math/rand"
	randv2 "math/rand/v2"
	"strings"
)

// Size is the number of bytes in an ID.
const Size = 4

// Sentinel errors returned by Parse.
var (
	// ErrInvalidLength indicates the textual form is not exactly 2*Size characters.
	ErrInvalidLength = errors.New("id: invalid length")

	// ErrInvalidHex indicates the textual form contains a non-hex character.
	ErrInvalidHex = errors.New("id: invalid hex")
)

// ID is an opaque vertex identifier. Equality and ordering are byte-wise.
type ID [Size]byte

// Nil is the all-zero ID. It is a valid value that New may return.
var Nil ID

// New returns a fresh ID drawn from a non-cryptographic source seeded from
// process entropy at call time.
func New() ID {
	return fromPCG(entropySeeds())
}

// NewRand returns a math/rand generator over a PCG stream seeded from process
// entropy. Unlike rand.NewSource, the seed is not reduced to 31 bits.
// The result is not safe for concurrent use.
func NewRand() *rand.Rand {
	return rand.New(newPCGSource(entropySeeds()))
}

// fromPCG draws one uniform 32-bit word from a PCG stream seeded with (seed1, seed2).
func fromPCG(seed1, seed2 uint64) ID {
	var x ID
	binary.BigEndian.PutUint32(x[:], randv2.New(randv2.NewPCG(seed1, seed2)).Uint32())

	return x
}

// FromSeed returns the ID produced by a source seeded with seed.
// Two calls with the same seed return the same ID.
func FromSeed(seed int64) ID {
	return FromRand(rand.New(rand.NewSource(seed)))
}

// FromRand draws Size independent bytes from r.
// Panics on nil r.
func FromRand(r *rand.Rand) ID {
	if r == nil {
		panic("id: FromRand(nil)")
	}
	var x ID
	for i := range x {
		x[i] = byte(r.Intn(256))
	}

	return x
}

// FromBytes wraps b without generating anything.
func FromBytes(b [Size]byte) ID { return ID(b) }

// Parse reverses String: it accepts exactly 2*Size hex characters.
// Upper-case input is accepted; String always emits lower case.
func Parse(s string) (ID, error) {
	var x ID
	if len(s) != hex.EncodedLen(Size) {
		return Nil, fmt.Errorf("Parse(%q): got %d chars, want %d: %w", s, len(s), hex.EncodedLen(Size), ErrInvalidLength)
	}
	if _, err := hex.Decode(x[:], []byte(s)); err != nil {
		return Nil, fmt.Errorf("Parse(%q): %v: %w", s, err, ErrInvalidHex)
	}

	return x, nil
}

// Bytes returns a copy of the raw bytes.
func (x ID) Bytes() [Size]byte { return [Size]byte(x) }

// IsNil reports whether x is the all-zero ID.
func (x ID) IsNil() bool { return x == Nil }

// Compare returns -1, 0 or +1 comparing x and y byte by byte.
func (x ID) Compare(y ID) int {
	for i := 0; i < Size; i++ {
		switch {
		case x[i] < y[i]:
			return -1
		case x[i] > y[i]:
			return 1
		}
	}

	return 0
}

// Less reports whether x sorts before y.
func (x ID) Less(y ID) bool { return x.Compare(y) < 0 }

// String returns the display form: 2*Size lowercase hex characters, no separators.
func (x ID) String() string { return hex.EncodeToString(x[:]) }

// GoString returns the debug form "[xx, xx, xx, xx]".
// It backs the %#v verb.
func (x ID) GoString() string {
	var b strings.Builder
	b.Grow(Size*4 + 1)
	b.WriteByte('[')
	for i := range x {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(hex.EncodeToString(x[i : i+1]))
	}
	b.WriteByte(']')

	return b.String()
}

// entropySeeds reads 16 bytes of OS entropy for seeding a PCG stream.
// If the OS source fails, the runtime-seeded math/rand/v2 generator is used.
func entropySeeds() (uint64, uint64) {
	var buf [16]byte
	if _, err := crand.Read(buf[:]); err != nil {
		return randv2.Uint64(), randv2.Uint64()
	}

	return binary.LittleEndian.Uint64(buf[:8]), binary.LittleEndian.Uint64(buf[8:])
}

// pcgSource adapts a math/rand/v2 PCG to the math/rand Source64 interface.
type pcgSource struct {
	pcg *randv2.PCG
}

func newPCGSource(seed1, seed2 uint64) *pcgSource {
	return &pcgSource{pcg: randv2.NewPCG(seed1, seed2)}
}

func (s *pcgSource) Uint64() uint64 { return s.pcg.Uint64() }

func (s *pcgSource) Int63() int64 { return int64(s.pcg.Uint64() >> 1) }

func (s *pcgSource) Seed(seed int64) { s.pcg.Seed(uint64(seed), 0) }
