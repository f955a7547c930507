package fathom

import (
	"math"
	"reflect"
	"sort"
	"strings"
)

// compareValue performs a deep three-way comparison of two values of the
// same schema, returning -1, 0, or 1. Field, element, and sorted-key
// order sensitive. Cycle-safe via the same visited-pair discipline as
// equality: two references already on the recursion path order equal.
func compareValue(s *schema, a, b reflect.Value, vs *pairVisits) int {
	if s.compareMethod >= 0 {
		return int(a.Method(s.compareMethod).Call([]reflect.Value{b})[0].Int())
	}

	switch s.category {
	case CategoryScalar:
		return compareScalar(a, b)

	case CategoryText:
		return strings.Compare(a.String(), b.String())

	case CategoryReference:
		// Absent orders strictly before present.
		switch {
		case a.IsNil() && b.IsNil():
			return 0
		case a.IsNil():
			return -1
		case b.IsNil():
			return 1
		}
		ia, _ := identify(a)
		ib, _ := identify(b)
		if ia == ib {
			return 0
		}
		if vs.enter(ia, ib) {
			return 0
		}
		defer vs.leave(ia, ib)
		return compareValue(s.elem, a.Elem(), b.Elem(), vs)

	case CategorySequence:
		if ia, ok := identify(a); ok {
			if ib, ok := identify(b); ok {
				if ia == ib {
					return 0
				}
				if vs.enter(ia, ib) {
					return 0
				}
				defer vs.leave(ia, ib)
			}
		}
		// Lexicographic: first differing element decides, a true prefix
		// orders before the longer sequence.
		n := min(a.Len(), b.Len())
		for i := 0; i < n; i++ {
			if c := compareValue(s.elem, a.Index(i), b.Index(i), vs); c != 0 {
				return c
			}
		}
		return compareInt(int64(a.Len()), int64(b.Len()))

	case CategoryMap:
		if a.Len() == 0 && b.Len() == 0 {
			return 0
		}
		ia, oka := identify(a)
		ib, okb := identify(b)
		if oka && okb {
			if ia == ib {
				return 0
			}
			if vs.enter(ia, ib) {
				return 0
			}
			defer vs.leave(ia, ib)
		}

		// Sorted key sequence first, then values at matching positions.
		ea := sortedEntries(s, a)
		eb := sortedEntries(s, b)
		n := min(len(ea), len(eb))
		for i := 0; i < n; i++ {
			if c := compareValue(s.key, ea[i].key, eb[i].key, vs); c != 0 {
				return c
			}
		}
		if c := compareInt(int64(len(ea)), int64(len(eb))); c != 0 {
			return c
		}
		for i := range ea {
			if c := compareValue(s.val, ea[i].val, eb[i].val, vs); c != 0 {
				return c
			}
		}
		return 0

	case CategoryRecord:
		// Declared field order; first nonzero result wins.
		for i := range s.fields {
			f := &s.fields[i]
			if f.policy == policySkip {
				continue
			}
			if c := compareValue(f.schema, a.FieldByIndex(f.index), b.FieldByIndex(f.index), vs); c != 0 {
				return c
			}
		}
		return 0
	}

	return 0
}

// compareScalar performs a three-way comparison of two scalar values of
// the same kind.
func compareScalar(a, b reflect.Value) int {
	switch a.Kind() {
	case reflect.Bool:
		av, bv := a.Bool(), b.Bool()
		switch {
		case av == bv:
			return 0
		case !av:
			return -1
		default:
			return 1
		}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return compareInt(a.Int(), b.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		av, bv := a.Uint(), b.Uint()
		switch {
		case av < bv:
			return -1
		case av > bv:
			return 1
		}
		return 0
	case reflect.Float32, reflect.Float64:
		av, bv := a.Float(), b.Float()
		anan, bnan := math.IsNaN(av), math.IsNaN(bv)
		switch {
		case anan && bnan:
			// Zero for consistency with equality.
			return 0
		case anan:
			// NaN orders before every ordinary value.
			return -1
		case bnan:
			return 1
		case av < bv:
			return -1
		case av > bv:
			return 1
		}
		return 0
	}
	return 0
}

func compareInt(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// mapEntry pairs a key with its value at enumeration time. A NaN key can
// never be looked up again once enumerated, so values must travel with
// their keys instead of being refetched through MapIndex.
type mapEntry struct {
	key, val reflect.Value
}

// sortedEntries returns m's entries in the deterministic order defined by
// the ordering engine: by key, then by value when keys tie (a map can
// hold several NaN keys). Every engine that enumerates a map goes
// through here.
func sortedEntries(s *schema, m reflect.Value) []mapEntry {
	entries := make([]mapEntry, 0, m.Len())
	iter := m.MapRange()
	for iter.Next() {
		entries = append(entries, mapEntry{key: iter.Key(), val: iter.Value()})
	}
	sort.Slice(entries, func(i, j int) bool {
		if c := compareValue(s.key, entries[i].key, entries[j].key, &pairVisits{}); c != 0 {
			return c < 0
		}
		return compareValue(s.val, entries[i].val, entries[j].val, &pairVisits{}) < 0
	})
	return entries
}
