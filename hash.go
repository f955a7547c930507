package fathom

import (
	"math"
	"reflect"
)

// Hash accumulation constants: h = h*hashMultiplier + contribution.
// Any well-distributing odd multiplier and seed pair would do; what must
// stay fixed is the deterministic combination order per category.
const (
	hashSeed       uint64 = 17
	hashMultiplier uint64 = 23
)

// hashRevisit is the contribution of a reference identity already on the
// recursion path. Folding a fixed tag instead of recursing keeps hashing
// total on cyclic data.
const hashRevisit uint64 = 0x9e3779b97f4a7c15

// nanBits is the single contribution for every NaN. All NaNs compare
// equal here, so they must hash alike regardless of payload bits.
var nanBits = math.Float64bits(math.NaN())

// hashValue accumulates a deep, order-sensitive hash of v.
//
// Maps fold over sorted keys, so two equal maps hash equal no matter how
// they were populated.
func hashValue(s *schema, v reflect.Value, vs *soloVisits) uint64 {
	if s.hashMethod >= 0 {
		return v.Method(s.hashMethod).Call(nil)[0].Uint()
	}

	h := hashSeed
	switch s.category {
	case CategoryScalar:
		return h*hashMultiplier + scalarOrdinal(v)

	case CategoryText:
		// Content hash, independent of storage identity or interning.
		str := v.String()
		for i := 0; i < len(str); i++ {
			h = h*hashMultiplier + uint64(str[i])
		}
		return h

	case CategoryReference:
		if v.IsNil() {
			// Absent contributes nothing beyond the seed.
			return h
		}
		id, _ := identify(v)
		if vs.enter(id) {
			return h*hashMultiplier + hashRevisit
		}
		defer vs.leave(id)
		return h*hashMultiplier + hashValue(s.elem, v.Elem(), vs)

	case CategorySequence:
		if id, ok := identify(v); ok {
			if vs.enter(id) {
				return h*hashMultiplier + hashRevisit
			}
			defer vs.leave(id)
		}
		for i := 0; i < v.Len(); i++ {
			h = h*hashMultiplier + hashValue(s.elem, v.Index(i), vs)
		}
		return h

	case CategoryMap:
		if v.Len() == 0 {
			return h
		}
		id, _ := identify(v)
		if vs.enter(id) {
			return h*hashMultiplier + hashRevisit
		}
		defer vs.leave(id)
		for _, e := range sortedEntries(s, v) {
			h = h*hashMultiplier + hashValue(s.key, e.key, vs)
			h = h*hashMultiplier + hashValue(s.val, e.val, vs)
		}
		return h

	case CategoryRecord:
		for i := range s.fields {
			f := &s.fields[i]
			if f.policy == policySkip {
				continue
			}
			h = h*hashMultiplier + hashValue(f.schema, v.FieldByIndex(f.index), vs)
		}
		return h
	}

	return h
}

// scalarOrdinal returns a scalar's hash contribution: its ordinal for
// integral kinds, its IEEE bit pattern for floats. NaN and zero are
// canonicalized first since each has multiple bit patterns that compare
// equal.
func scalarOrdinal(v reflect.Value) uint64 {
	switch v.Kind() {
	case reflect.Bool:
		if v.Bool() {
			return 1
		}
		return 0
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return uint64(v.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return v.Uint()
	case reflect.Float32, reflect.Float64:
		f := v.Float()
		if math.IsNaN(f) {
			return nanBits
		}
		if f == 0 {
			return 0
		}
		return math.Float64bits(f)
	}
	return 0
}
