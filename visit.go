package fathom

import "reflect"

// ident is a reference identity: the storage a pointer, map, or slice
// designates. Slices carry their length so reslices of shared backing
// storage stay distinct.
type ident struct {
	ptr uintptr
	n   int
}

// identify reports the reference identity of v, if it has one.
// Only pointers, maps, and non-empty slices can participate in a cycle;
// everything else has no identity and needs no guard.
func identify(v reflect.Value) (ident, bool) {
	switch v.Kind() {
	case reflect.Pointer, reflect.Map:
		if v.IsNil() {
			return ident{}, false
		}
		return ident{ptr: v.Pointer()}, true
	case reflect.Slice:
		if v.Len() == 0 {
			return ident{}, false
		}
		return ident{ptr: v.Pointer(), n: v.Len()}, true
	}
	return ident{}, false
}

// pairVisits tracks pairs of reference identities on the active recursion
// path of a two-operand traversal. Two references already on the path are
// treated as equal to each other, which guarantees termination on cyclic
// data. Allocated lazily; acyclic shallow data never touches the map.
type pairVisits struct {
	pairs map[[2]ident]struct{}
}

// enter reports whether the pair is already on the path, recording it
// otherwise. A true return means the caller must not recurse.
func (p *pairVisits) enter(a, b ident) bool {
	key := [2]ident{a, b}
	if p.pairs == nil {
		p.pairs = make(map[[2]ident]struct{})
	}
	if _, ok := p.pairs[key]; ok {
		return true
	}
	p.pairs[key] = struct{}{}
	return false
}

// leave removes a pair when its recursion unwinds, keeping the set
// scoped to the current path rather than the whole traversal.
func (p *pairVisits) leave(a, b ident) {
	delete(p.pairs, [2]ident{a, b})
}

// soloVisits tracks single reference identities on the active recursion
// path of a one-operand traversal (hashing, rendering).
type soloVisits struct {
	seen map[ident]struct{}
}

func (s *soloVisits) enter(id ident) bool {
	if s.seen == nil {
		s.seen = make(map[ident]struct{})
	}
	if _, ok := s.seen[id]; ok {
		return true
	}
	s.seen[id] = struct{}{}
	return false
}

func (s *soloVisits) leave(id ident) {
	delete(s.seen, id)
}
