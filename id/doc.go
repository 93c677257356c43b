// SPDX-License-Identifier: MIT

// Package id provides the small opaque identifiers that name every vertex in
// lvmesh.
//
// An ID is a fixed 4-byte value. It is comparable with ==, usable as a map key,
// and cheap to copy. Identifiers are drawn from a non-cryptographic random
// source, either seeded from process entropy (New) or from a caller-supplied
// seed (FromSeed) for reproducible fixtures.
//
// Formatting contract:
//
//	fmt.Sprint(x)    // "0a1b2c3d"          (8 lowercase hex chars)
//	fmt.Sprintf("%#v", x) // "[0a, 1b, 2c, 3d]" (debug form)
//
// Uniqueness is probabilistic only. Nothing in this package detects or
// retries collisions; with 2^32 possible values the birthday bound is reached
// around 77 000 identifiers, so callers that keep large catalogs should check
// membership on insert (core.Graph does).
package id
