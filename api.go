// Package fathom provides a generic structural value engine: deep
// equality, deep ordering, deep hashing, and deep copy over arbitrary
// aggregate data.
//
// All four operations share one traversal discipline. A type's declared
// shape is classified once into a category (scalar, text, reference,
// sequence, map, record), compiled into a schema, and cached; every
// engine then walks that schema rather than inspecting runtime type
// metadata per call.
//
// # Categories
//
// The classifier assigns exactly one category per declared type:
//
//   - scalar: bool, integers, floats
//   - text: strings (immutable content, aliasable)
//   - reference: pointers (nullable single indirection)
//   - sequence: slices and arrays
//   - map: maps (no intrinsic order; keys sorted wherever order matters)
//   - record: structs (named fields in declared order)
//
// Chan, func, complex, uintptr, unsafe pointer, and interface kinds are
// rejected when the schema is built. Engines never fail at call time.
//
// # Basic Usage
//
//	type User struct {
//	    ID      int
//	    Name    string
//	    Friends []string
//	}
//
//	a := User{ID: 1, Name: "ann", Friends: []string{"bo"}}
//	b := fathom.Clone(a)
//
//	fathom.Equal(a, b)   // true
//	fathom.Compare(a, b) // 0
//	fathom.Hash(a) == fathom.Hash(b) // true
//
// The package-level functions build and cache an engine per type and
// panic if the type's schema is rejected. Use New or Use to surface the
// build error instead:
//
//	engine, err := fathom.New[User]()
//	if err != nil { ... }
//	engine.Equal(a, b)
//
// # Consistency
//
// Equal values hash equal and compare as ordered-equal, and a clone is
// equal to its source. Two documented departures from IEEE float
// semantics keep those properties coherent: NaN equals NaN (so equality
// stays reflexive), and NaN-vs-NaN orders as 0. The hash decomposes
// floats to their bit pattern after canonicalizing NaN and zero, so
// values that compare equal always hash equal.
//
// # Cyclic Data
//
// Each operation threads a visited set of reference identities on the
// active recursion path. Two references already on the path are treated
// as equal to each other, which guarantees termination on arbitrary
// cyclic topologies, including mutual two-node reference cycles.
//
// # Override Methods
//
// A type supplies its own implementation of any operation by declaring a
// value-receiver method, detected at schema build time:
//
//   - Equal(T) bool
//   - Compare(T) int
//   - Hash() uint64
//   - Clone() T
//
// A matching name with the wrong signature is a build-time rejection.
//
// # Field Policy Tags
//
// Per-field behavior is declared via the deep struct tag:
//
//	type Account struct {
//	    ID    string
//	    Cache map[string]int `deep:"skip"`    // invisible to all engines
//	    Pool  *Buffer        `deep:"shallow"` // clone aliases, not copies
//	}
//
// Only exported fields participate in traversal.
package fathom

// Equal reports deep structural equality of a and b.
// Panics if T's schema is rejected at build time.
func Equal[T any](a, b T) bool {
	return mustUse[T]().Equal(a, b)
}

// Compare performs a deep three-way comparison of a and b, returning -1,
// 0, or 1. Panics if T's schema is rejected at build time.
func Compare[T any](a, b T) int {
	return mustUse[T]().Compare(a, b)
}

// Hash accumulates a deep, order-sensitive hash of v.
// Panics if T's schema is rejected at build time.
func Hash[T any](v T) uint64 {
	return mustUse[T]().Hash(v)
}

// Clone produces an independent deep copy of v.
// Panics if T's schema is rejected at build time.
func Clone[T any](v T) T {
	return mustUse[T]().Clone(v)
}

// Fingerprint returns a hex-encoded BLAKE2b-256 digest of v's canonical
// structural encoding. Panics if T's schema is rejected at build time.
func Fingerprint[T any](v T) string {
	return mustUse[T]().Fingerprint(v)
}

// mustUse returns the cached engine for T, treating a schema rejection
// as a programming error.
func mustUse[T any]() *Engine[T] {
	e, err := Use[T]()
	if err != nil {
		panic(err)
	}
	return e
}
