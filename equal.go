package fathom

import (
	"math"
	"reflect"
)

// equalValue reports deep structural equality of two values of the same
// schema. Total over well-formed schemas; never mutates its operands.
//
// References, maps, and slices short-circuit on shared storage, and a
// pair of identities already on the recursion path compares equal, so the
// walk terminates on cyclic data.
func equalValue(s *schema, a, b reflect.Value, vs *pairVisits) bool {
	if s.equalMethod >= 0 {
		return a.Method(s.equalMethod).Call([]reflect.Value{b})[0].Bool()
	}

	switch s.category {
	case CategoryScalar:
		return equalScalar(a, b)

	case CategoryText:
		// Content equality, independent of storage identity.
		return a.String() == b.String()

	case CategoryReference:
		if a.IsNil() || b.IsNil() {
			return a.IsNil() == b.IsNil()
		}
		ia, _ := identify(a)
		ib, _ := identify(b)
		if ia == ib {
			return true
		}
		if vs.enter(ia, ib) {
			return true
		}
		defer vs.leave(ia, ib)
		return equalValue(s.elem, a.Elem(), b.Elem(), vs)

	case CategorySequence:
		if a.Len() != b.Len() {
			return false
		}
		if ia, ok := identify(a); ok {
			ib, _ := identify(b)
			if ia == ib {
				return true
			}
			if vs.enter(ia, ib) {
				return true
			}
			defer vs.leave(ia, ib)
		}
		for i := 0; i < a.Len(); i++ {
			if !equalValue(s.elem, a.Index(i), b.Index(i), vs) {
				return false
			}
		}
		return true

	case CategoryMap:
		if a.Len() != b.Len() {
			return false
		}
		if a.Len() == 0 {
			return true
		}
		ia, _ := identify(a)
		ib, _ := identify(b)
		if ia == ib {
			return true
		}
		if vs.enter(ia, ib) {
			return true
		}
		defer vs.leave(ia, ib)

		// Maps have no canonical enumeration order; both entry lists are
		// sorted before pairwise comparison.
		ea := sortedEntries(s, a)
		eb := sortedEntries(s, b)
		for i := range ea {
			if !equalValue(s.key, ea[i].key, eb[i].key, vs) {
				return false
			}
			if !equalValue(s.val, ea[i].val, eb[i].val, vs) {
				return false
			}
		}
		return true

	case CategoryRecord:
		// Declared field order, shared by both operands, short-circuit
		// on the first difference.
		for i := range s.fields {
			f := &s.fields[i]
			if f.policy == policySkip {
				continue
			}
			if !equalValue(f.schema, a.FieldByIndex(f.index), b.FieldByIndex(f.index), vs) {
				return false
			}
		}
		return true
	}

	return false
}

// equalScalar compares two scalar values of the same kind.
func equalScalar(a, b reflect.Value) bool {
	switch a.Kind() {
	case reflect.Bool:
		return a.Bool() == b.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return a.Int() == b.Int()
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return a.Uint() == b.Uint()
	case reflect.Float32, reflect.Float64:
		af, bf := a.Float(), b.Float()
		if math.IsNaN(af) && math.IsNaN(bf) {
			// Deliberate departure from IEEE semantics: NaN equals NaN,
			// keeping equality reflexive.
			return true
		}
		return af == bf
	}
	return false
}
