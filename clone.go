package fathom

import "reflect"

// clones maps source reference identities to their already-allocated
// copies. Shared substructure stays shared in the output and cyclic
// inputs clone to isomorphic cyclic outputs.
type clones struct {
	made map[ident]reflect.Value
}

func (c *clones) lookup(id ident) (reflect.Value, bool) {
	out, ok := c.made[id]
	return out, ok
}

func (c *clones) record(id ident, v reflect.Value) {
	if c.made == nil {
		c.made = make(map[ident]reflect.Value)
	}
	c.made[id] = v
}

// cloneValue produces an independent copy of src.
//
// Aliasing policy: scalars copy by value; text is immutable in Go and
// aliases by construction; sequences and maps get fresh backing storage;
// map keys are lookup-only and copy by assignment; absent references stay
// absent, present ones allocate a new referent. Fields tagged
// deep:"shallow" copy by assignment, fields tagged deep:"skip" stay zero.
func cloneValue(s *schema, src reflect.Value, cl *clones) reflect.Value {
	if s.cloneMethod >= 0 {
		return src.Method(s.cloneMethod).Call(nil)[0]
	}

	switch s.category {
	case CategoryScalar, CategoryText:
		return src

	case CategoryReference:
		if src.IsNil() {
			return src
		}
		id, _ := identify(src)
		if out, ok := cl.lookup(id); ok {
			return out
		}
		out := reflect.New(s.rt.Elem())
		// Recorded before descending so a cycle lands on the referent
		// under construction.
		cl.record(id, out)
		out.Elem().Set(cloneValue(s.elem, src.Elem(), cl))
		return out

	case CategorySequence:
		if s.rt.Kind() == reflect.Slice {
			if src.IsNil() {
				return src
			}
			id, hasID := identify(src)
			if hasID {
				if out, ok := cl.lookup(id); ok {
					return out
				}
			}
			out := reflect.MakeSlice(s.rt, src.Len(), src.Len())
			if hasID {
				cl.record(id, out)
			}
			for i := 0; i < src.Len(); i++ {
				out.Index(i).Set(cloneValue(s.elem, src.Index(i), cl))
			}
			return out
		}
		out := reflect.New(s.rt).Elem()
		for i := 0; i < src.Len(); i++ {
			out.Index(i).Set(cloneValue(s.elem, src.Index(i), cl))
		}
		return out

	case CategoryMap:
		if src.IsNil() {
			return src
		}
		id, _ := identify(src)
		if out, ok := cl.lookup(id); ok {
			return out
		}
		out := reflect.MakeMapWithSize(s.rt, src.Len())
		cl.record(id, out)
		iter := src.MapRange()
		for iter.Next() {
			out.SetMapIndex(iter.Key(), cloneValue(s.val, iter.Value(), cl))
		}
		return out

	case CategoryRecord:
		out := reflect.New(s.rt).Elem()
		for i := range s.fields {
			f := &s.fields[i]
			switch f.policy {
			case policySkip:
				continue
			case policyShallow:
				out.FieldByIndex(f.index).Set(src.FieldByIndex(f.index))
			default:
				out.FieldByIndex(f.index).Set(cloneValue(f.schema, src.FieldByIndex(f.index), cl))
			}
		}
		return out
	}

	return src
}
