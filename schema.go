package fathom

import (
	"reflect"
	"sync"

	"github.com/zoobzio/sentinel"
)

// TagName is the struct tag consulted for per-field policy.
//
// Recognized values:
//
//	deep:"skip"    - field is invisible to all four engines
//	deep:"shallow" - deep copy aliases the field instead of descending
const TagName = "deep"

func init() {
	// Register the policy tag with sentinel
	sentinel.Tag(TagName)
}

// fieldPolicy is the per-field traversal policy parsed from the deep tag.
type fieldPolicy uint8

const (
	policyDescend fieldPolicy = iota
	policySkip
	policyShallow
)

// parsePolicy validates a deep tag value.
func parsePolicy(val string) (fieldPolicy, bool) {
	switch val {
	case "":
		return policyDescend, true
	case "skip":
		return policySkip, true
	case "shallow":
		return policyShallow, true
	default:
		return 0, false
	}
}

// fieldSchema describes one record field in declared order.
type fieldSchema struct {
	name    string
	index   []int // reflect.Value.FieldByIndex access path
	schema  *schema
	policy  fieldPolicy
	selfRef bool // reference field whose target is the enclosing record type
}

// schema is the compiled shape of a type: its category, nested schemas,
// and override method indices. Built once per type and shared by all four
// engines; immutable after construction.
type schema struct {
	rt       reflect.Type
	category Category

	fields []fieldSchema // record
	elem   *schema       // reference target or sequence element
	key    *schema       // map key
	val    *schema       // map value

	// Override method indices into rt's method set, -1 when absent.
	equalMethod   int
	compareMethod int
	hashMethod    int
	cloneMethod   int
}

// schemaCacheKey combines type and tag name for cache lookup.
type schemaCacheKey struct {
	rt  reflect.Type
	tag string
}

var (
	schemaCache   = make(map[schemaCacheKey]*schema)
	schemaCacheMu sync.RWMutex
)

// compileSchema returns the cached schema for rt or builds a new one.
func compileSchema(rt reflect.Type, tag string) (*schema, error) {
	key := schemaCacheKey{rt: rt, tag: tag}

	// Fast path: read-lock cache check
	schemaCacheMu.RLock()
	if cached, ok := schemaCache[key]; ok {
		schemaCacheMu.RUnlock()
		return cached, nil
	}
	schemaCacheMu.RUnlock()

	// Slow path: build and cache with write-lock
	schemaCacheMu.Lock()
	defer schemaCacheMu.Unlock()

	// Double-check pattern
	if cached, ok := schemaCache[key]; ok {
		return cached, nil
	}

	b := &schemaBuilder{tag: tag, seen: make(map[reflect.Type]*schema)}
	s, err := b.build(rt)
	if err != nil {
		return nil, err
	}

	schemaCache[key] = s
	return s, nil
}

// resetSchemas clears the schema cache. Test isolation only.
func resetSchemas() {
	schemaCacheMu.Lock()
	defer schemaCacheMu.Unlock()
	schemaCache = make(map[schemaCacheKey]*schema)
}

// schemaBuilder compiles schemas for a root type and everything it
// reaches. seen carries in-progress schemas so recursive named types
// (Node -> *Node) terminate.
type schemaBuilder struct {
	tag  string
	seen map[reflect.Type]*schema
}

func (b *schemaBuilder) build(rt reflect.Type) (*schema, error) {
	if s, ok := b.seen[rt]; ok {
		return s, nil
	}

	cat, err := classify(rt)
	if err != nil {
		return nil, newSchemaError(err, typeName(rt), "")
	}

	s := &schema{rt: rt, category: cat}
	if err := detectOverrides(s); err != nil {
		return nil, err
	}
	b.seen[rt] = s

	switch cat {
	case CategoryReference, CategorySequence:
		if s.elem, err = b.build(rt.Elem()); err != nil {
			return nil, err
		}

	case CategoryMap:
		if s.key, err = b.build(rt.Key()); err != nil {
			return nil, err
		}
		if s.val, err = b.build(rt.Elem()); err != nil {
			return nil, err
		}

	case CategoryRecord:
		if err := b.buildFields(s, rt); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// buildFields compiles the field list for a record in declared order.
// Only exported fields participate in traversal.
func (b *schemaBuilder) buildFields(s *schema, rt reflect.Type) error {
	meta := b.recordMetadata(rt)
	s.fields = make([]fieldSchema, 0, len(meta.Fields))

	for _, fm := range meta.Fields {
		policy, ok := parsePolicy(fm.Tags[b.tag])
		if !ok {
			return newSchemaError(ErrInvalidTag, typeName(rt), fm.Name)
		}

		fs := fieldSchema{
			name:   fm.Name,
			index:  fm.Index,
			policy: policy,
		}

		// Skipped fields are never traversed, so their type is exempt
		// from classification. This is the escape hatch for fields the
		// engines cannot walk.
		if policy != policySkip {
			nested, err := b.build(fm.ReflectType)
			if err != nil {
				return err
			}
			fs.schema = nested
			fs.selfRef = nested.category == CategoryReference && fm.ReflectType.Elem() == rt
		}

		s.fields = append(s.fields, fs)
	}

	return nil
}

// recordMetadata returns sentinel metadata for a record type, consulting
// the sentinel registry first and falling back to direct construction.
func (b *schemaBuilder) recordMetadata(rt reflect.Type) sentinel.Metadata {
	if b.tag == TagName {
		if spec, ok := sentinel.Lookup(rt.String()); ok {
			return spec
		}
	}

	spec := sentinel.Metadata{
		TypeName:    rt.Name(),
		PackageName: rt.PkgPath(),
		Fields:      make([]sentinel.FieldMetadata, 0, rt.NumField()),
	}

	for i := 0; i < rt.NumField(); i++ {
		sf := rt.Field(i)
		if !sf.IsExported() {
			continue
		}

		fm := sentinel.FieldMetadata{
			Name:        sf.Name,
			Type:        sf.Type.String(),
			ReflectType: sf.Type,
			Index:       sf.Index,
			Tags:        b.parseTags(sf.Tag),
		}

		switch sf.Type.Kind() {
		case reflect.Struct:
			fm.Kind = sentinel.KindStruct
		case reflect.Ptr:
			fm.Kind = sentinel.KindPointer
		case reflect.Slice, reflect.Array:
			fm.Kind = sentinel.KindSlice
		case reflect.Map:
			fm.Kind = sentinel.KindMap
		case reflect.Interface:
			fm.Kind = sentinel.KindInterface
		default:
			fm.Kind = sentinel.KindScalar
		}

		spec.Fields = append(spec.Fields, fm)
	}

	return spec
}

// parseTags extracts the policy tag from a struct tag.
func (b *schemaBuilder) parseTags(tag reflect.StructTag) map[string]string {
	tags := make(map[string]string)
	if val, ok := tag.Lookup(b.tag); ok {
		tags[b.tag] = val
	}
	return tags
}

// typeName returns a printable name for a type, falling back to the full
// type expression for unnamed types.
func typeName(rt reflect.Type) string {
	if n := rt.Name(); n != "" {
		return n
	}
	return rt.String()
}
