// SPDX-License-Identifier: MIT
// Package core_test contains fixtures and helpers shared by the core tests.
//
// Purpose:
//   - Fixed identifiers so sorted outputs can be asserted exactly.
//   - Panic assertions that match on sentinel errors rather than strings.
//   - No *testing.T use inside goroutines (results are sent back instead).

package core_test

import (
	"errors"
	"testing"
	"time"

	"github.com/katalvlaran/lvmesh/core"
	"github.com/katalvlaran/lvmesh/id"
)

// Fixed identifiers, ascending.
var (
	IDA = id.FromBytes([id.Size]byte{0x00, 0x00, 0x00, 0x0a})
	IDB = id.FromBytes([id.Size]byte{0x00, 0x00, 0x00, 0x0b})
	IDC = id.FromBytes([id.Size]byte{0x00, 0x00, 0x00, 0x0c})
	IDX = id.FromBytes([id.Size]byte{0xff, 0x00, 0x00, 0x01})
	IDY = id.FromBytes([id.Size]byte{0xff, 0x00, 0x00, 0x02})
	IDZ = id.FromBytes([id.Size]byte{0xff, 0x00, 0x00, 0x03})
)

// Common sizes (avoid magic numbers in test bodies).
const (
	NConcurrentConnects = 500
	NReaders            = 32
	NFanOut             = 100

	// BlockWindow is how long a test waits to confirm an operation is blocked.
	BlockWindow = 50 * time.Millisecond
	// UnblockTimeout bounds the wait for an operation that should complete.
	UnblockTimeout = 5 * time.Second
)

// NewNamed returns vertices with fixed IDs A, B, C holding "alice", "bob", "carol".
func NewNamed() (a, b, c core.Vertex[string]) {
	return core.NewVertexWithID(IDA, "alice"),
		core.NewVertexWithID(IDB, "bob"),
		core.NewVertexWithID(IDC, "carol")
}

// MustPanicWith FAILS the test unless fn panics with an error value for which
// errors.Is(err, target) holds.
func MustPanicWith(t *testing.T, target error, fn func(), op string) {
	t.Helper()

	var recovered any
	func() {
		defer func() { recovered = recover() }()
		fn()
	}()

	if recovered == nil {
		t.Fatalf("%s: expected panic with %v, got none", op, target)
	}
	err, ok := recovered.(error)
	if !ok {
		t.Fatalf("%s: panic value %T(%v) is not an error", op, recovered, recovered)
	}
	if !errors.Is(err, target) {
		t.Fatalf("%s: panic %v does not match %v", op, err, target)
	}
}

// IDsOf maps handles to their identifiers, preserving order.
func IDsOf[T any](vs []core.Vertex[T]) []id.ID {
	out := make([]id.ID, len(vs))
	for i, v := range vs {
		out[i] = v.ID()
	}

	return out
}

// Blocked reports whether done stays open for BlockWindow.
func Blocked(done <-chan struct{}) bool {
	select {
	case <-done:
		return false
	case <-time.After(BlockWindow):
		return true
	}
}

// Completes reports whether done closes within UnblockTimeout.
func Completes(done <-chan struct{}) bool {
	select {
	case <-done:
		return true
	case <-time.After(UnblockTimeout):
		return false
	}
}
