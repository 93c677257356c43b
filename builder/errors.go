// SPDX-License-Identifier: MIT
// Package: lvmesh/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context with `%w` via builderErrorf.
//   • Constructors never panic at runtime; validation panics are confined to
//     option constructors (WithX...).

package builder

import (
	"errors"
	"fmt"
)

// ErrTooFewVertices indicates the vertex population is smaller than the
// constructor's minimum (MinLinkVertices for RandomLinks).
var ErrTooFewVertices = errors.New("builder: too few vertices")

// ErrNegativeRounds indicates a negative round count.
var ErrNegativeRounds = errors.New("builder: negative rounds")

// ErrConstructFailed indicates construction could not proceed without
// breaking a core invariant (for example, two distinct vertices with the same
// ID, which would make Connect a self-connect).
var ErrConstructFailed = errors.New("builder: construction failed")

// builderErrorf prefixes a formatted message with the method name and wraps
// the sentinel: "<Method>: <message>: <sentinel>".
func builderErrorf(method string, sentinel error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), sentinel)
}
