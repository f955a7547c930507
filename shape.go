package fathom

import (
	"reflect"

	"github.com/zoobzio/sentinel"
)

// TypeDescription is a flattened, exported view of a compiled schema's
// top level. Nested shapes are referenced by type expression rather than
// expanded, so descriptions of recursive types stay finite.
type TypeDescription struct {
	Type     string
	Category Category
	Fields   []FieldDescription // populated for records
}

// FieldDescription describes one record field in declared order.
type FieldDescription struct {
	Name     string
	Type     string
	Category Category // unset for skipped fields, whose type is never classified
	Policy   string   // "", "skip", or "shallow"
	SelfRef  bool     // reference back to the enclosing record type
}

// Describe compiles T's schema and returns its description. The same
// build-time rejections apply as for New.
func Describe[T any](opts ...Option) (TypeDescription, error) {
	cfg := config{tag: TagName}
	for _, opt := range opts {
		opt(&cfg)
	}

	rt := reflect.TypeFor[T]()
	if rt.Kind() == reflect.Struct {
		sentinel.Scan[T]()
	}

	s, err := compileSchema(rt, cfg.tag)
	if err != nil {
		return TypeDescription{}, err
	}

	desc := TypeDescription{
		Type:     s.rt.String(),
		Category: s.category,
	}
	for i := range s.fields {
		f := &s.fields[i]
		fd := FieldDescription{
			Name:    f.name,
			Policy:  policyString(f.policy),
			SelfRef: f.selfRef,
		}
		if f.schema != nil {
			fd.Type = f.schema.rt.String()
			fd.Category = f.schema.category
		} else {
			// Skipped fields carry their declared type but no category.
			fd.Type = fieldType(s.rt, f.index)
		}
		desc.Fields = append(desc.Fields, fd)
	}
	return desc, nil
}

func policyString(p fieldPolicy) string {
	switch p {
	case policySkip:
		return "skip"
	case policyShallow:
		return "shallow"
	default:
		return ""
	}
}

func fieldType(rt reflect.Type, index []int) string {
	sf := rt.FieldByIndex(index)
	return sf.Type.String()
}
