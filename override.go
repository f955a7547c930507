package fathom

import "reflect"

// Override method names. Detection is by signature on the value method
// set, so overrides must use value receivers.
const (
	methodEqual   = "Equal"
	methodCompare = "Compare"
	methodHash    = "Hash"
	methodClone   = "Clone"
)

var uint64Type = reflect.TypeFor[uint64]()

// detectOverrides records the override method indices for a type.
// A method whose name matches but whose signature does not is a
// build-time rejection rather than a silent fallthrough to generic
// traversal.
func detectOverrides(s *schema) error {
	rt := s.rt
	s.equalMethod = -1
	s.compareMethod = -1
	s.hashMethod = -1
	s.cloneMethod = -1

	if m, ok := rt.MethodByName(methodEqual); ok {
		mt := m.Type
		if mt.NumIn() != 2 || mt.In(1) != rt || mt.NumOut() != 1 || mt.Out(0).Kind() != reflect.Bool {
			return newSchemaError(ErrOverrideSignature, typeName(rt), methodEqual)
		}
		s.equalMethod = m.Index
	}

	if m, ok := rt.MethodByName(methodCompare); ok {
		mt := m.Type
		if mt.NumIn() != 2 || mt.In(1) != rt || mt.NumOut() != 1 || mt.Out(0).Kind() != reflect.Int {
			return newSchemaError(ErrOverrideSignature, typeName(rt), methodCompare)
		}
		s.compareMethod = m.Index
	}

	if m, ok := rt.MethodByName(methodHash); ok {
		mt := m.Type
		if mt.NumIn() != 1 || mt.NumOut() != 1 || mt.Out(0) != uint64Type {
			return newSchemaError(ErrOverrideSignature, typeName(rt), methodHash)
		}
		s.hashMethod = m.Index
	}

	if m, ok := rt.MethodByName(methodClone); ok {
		mt := m.Type
		if mt.NumIn() != 1 || mt.NumOut() != 1 || mt.Out(0) != rt {
			return newSchemaError(ErrOverrideSignature, typeName(rt), methodClone)
		}
		s.cloneMethod = m.Index
	}

	return nil
}
