package fathom

import "reflect"

// Category classifies a declared type's shape. Every engine selects its
// traversal logic from the category, never from a value's runtime tag.
type Category uint8

const (
	// CategoryScalar covers booleans, integers, and floats.
	CategoryScalar Category = iota

	// CategoryText covers strings. Text content is immutable and may be
	// aliased by the deep-copy engine.
	CategoryText

	// CategoryReference covers pointers: a nullable single-indirection
	// link to another value.
	CategoryReference

	// CategorySequence covers slices and arrays.
	CategorySequence

	// CategoryMap covers maps. Maps have no intrinsic enumeration order;
	// every engine sorts keys before depending on order.
	CategoryMap

	// CategoryRecord covers structs: a fixed-shape aggregate of named,
	// ordered fields.
	CategoryRecord
)

// String returns the category name.
func (c Category) String() string {
	switch c {
	case CategoryScalar:
		return "scalar"
	case CategoryText:
		return "text"
	case CategoryReference:
		return "reference"
	case CategorySequence:
		return "sequence"
	case CategoryMap:
		return "map"
	case CategoryRecord:
		return "record"
	default:
		return "unknown"
	}
}

// classify assigns exactly one category to a declared type.
// Kinds the engines cannot traverse are rejected here, at build time;
// well-formed schemas have no runtime failure mode.
func classify(rt reflect.Type) (Category, error) {
	switch rt.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return CategoryScalar, nil
	case reflect.String:
		return CategoryText, nil
	case reflect.Pointer:
		return CategoryReference, nil
	case reflect.Slice, reflect.Array:
		return CategorySequence, nil
	case reflect.Map:
		return CategoryMap, nil
	case reflect.Struct:
		return CategoryRecord, nil
	case reflect.Interface:
		// Deep copy cannot allocate a referent for an interface without a
		// concrete type, so interfaces are a capability rejection.
		return 0, ErrInterfaceField
	default:
		return 0, ErrUnsupportedKind
	}
}
