package fathom

import (
	"context"
	"reflect"
	"time"

	"github.com/zoobzio/sentinel"
)

// Option configures engine construction.
type Option func(*config)

type config struct {
	tag string
}

// WithTag reads per-field policy from an alternate struct tag key
// instead of the default deep tag.
func WithTag(name string) Option {
	return func(c *config) {
		c.tag = name
	}
}

// Engine carries the compiled schema for T and performs the four deep
// operations over it.
//
// Engines are safe for concurrent use: every operation is a synchronous
// recursive descent that never mutates its operands, so the same engine
// and the same inputs may be shared across goroutines without locking.
type Engine[T any] struct {
	schema   *schema
	typeName string
}

// New compiles the schema for T and returns an engine for it.
//
// Construction is the only failure point. Kinds no engine can traverse,
// interface fields, malformed override signatures, and unknown deep tag
// values are all rejected here; the operations themselves are total over
// values of T.
func New[T any](opts ...Option) (*Engine[T], error) {
	cfg := config{tag: TagName}
	for _, opt := range opts {
		opt(&cfg)
	}

	rt := reflect.TypeFor[T]()
	if rt.Kind() == reflect.Struct {
		// Seed sentinel's registry so nested metadata lookups hit.
		sentinel.Scan[T]()
	}

	s, err := compileSchema(rt, cfg.tag)
	if err != nil {
		return nil, err
	}

	e := &Engine[T]{schema: s, typeName: typeName(rt)}
	emitEngineBuilt(context.Background(), e.typeName, s.category)
	return e, nil
}

// Equal reports deep structural equality of a and b.
func (e *Engine[T]) Equal(a, b T) bool {
	start := time.Now()
	eq := equalValue(e.schema, reflect.ValueOf(a), reflect.ValueOf(b), &pairVisits{})
	emitEqualComplete(context.Background(), e.typeName, time.Since(start), eq)
	return eq
}

// Compare performs a deep three-way comparison of a and b, returning -1,
// 0, or 1. Compare returns 0 exactly when Equal reports true.
func (e *Engine[T]) Compare(a, b T) int {
	start := time.Now()
	c := compareValue(e.schema, reflect.ValueOf(a), reflect.ValueOf(b), &pairVisits{})
	emitCompareComplete(context.Background(), e.typeName, time.Since(start), c)
	return c
}

// Hash accumulates a deep, order-sensitive hash of v. Values that are
// Equal hash equal.
func (e *Engine[T]) Hash(v T) uint64 {
	start := time.Now()
	h := hashValue(e.schema, reflect.ValueOf(v), &soloVisits{})
	emitHashComplete(context.Background(), e.typeName, time.Since(start))
	return h
}

// Clone produces an independent deep copy of v. Mutating mutable
// substructure of the copy never affects the source; immutable text is
// aliased per the documented policy.
func (e *Engine[T]) Clone(v T) T {
	start := time.Now()
	out := cloneValue(e.schema, reflect.ValueOf(v), &clones{})
	emitCloneComplete(context.Background(), e.typeName, time.Since(start))
	return out.Interface().(T)
}

// CloneInto deep-copies *src into *dst. The copy is materialized in full
// before dst is written, so cloning a value into itself (dst == src)
// cannot observe a partially overwritten source.
func (e *Engine[T]) CloneInto(dst, src *T) {
	tmp := e.Clone(*src)
	*dst = tmp
}

// Fingerprint returns a hex-encoded BLAKE2b-256 digest of v's canonical
// structural encoding. Values that are Equal produce identical
// fingerprints; map enumeration is sorted before digesting.
//
// Use for identification across processes, where the in-process Hash
// accumulator is not stable enough.
func (e *Engine[T]) Fingerprint(v T) string {
	start := time.Now()
	fp := fingerprint(e.schema, reflect.ValueOf(v))
	emitFingerprintComplete(context.Background(), e.typeName, time.Since(start))
	return fp
}
