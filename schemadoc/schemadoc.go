// Package schemadoc reads and writes explicit schema declarations.
//
// A Doc is a YAML document describing a record type's fields, their
// categories, and their policies. Committing a Doc next to the type and
// verifying it in a test turns any drift between the declaration and the
// reflected shape into a build-time failure.
package schemadoc

import (
	"errors"
	"fmt"
	"io"

	"github.com/zoobzio/fathom"
	"gopkg.in/yaml.v3"
)

// ErrDrift indicates a declaration no longer matches the reflected
// shape of its type.
var ErrDrift = errors.New("schema drift")

// Doc is an explicit declaration of a type's shape.
type Doc struct {
	Type     string     `yaml:"type"`
	Category string     `yaml:"category"`
	Fields   []FieldDoc `yaml:"fields,omitempty"`
}

// FieldDoc declares one record field in declared order.
type FieldDoc struct {
	Name     string `yaml:"name"`
	Type     string `yaml:"type"`
	Category string `yaml:"category,omitempty"`
	Policy   string `yaml:"policy,omitempty"`
	SelfRef  bool   `yaml:"self,omitempty"`
}

// Describe compiles T's schema and returns its declaration.
func Describe[T any]() (*Doc, error) {
	desc, err := fathom.Describe[T]()
	if err != nil {
		return nil, err
	}

	doc := &Doc{
		Type:     desc.Type,
		Category: desc.Category.String(),
	}
	for _, f := range desc.Fields {
		fd := FieldDoc{
			Name:    f.Name,
			Type:    f.Type,
			Policy:  f.Policy,
			SelfRef: f.SelfRef,
		}
		if f.Policy != "skip" {
			fd.Category = f.Category.String()
		}
		doc.Fields = append(doc.Fields, fd)
	}
	return doc, nil
}

// Encode writes the declaration as YAML.
func (d *Doc) Encode(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(d); err != nil {
		return fmt.Errorf("encode declaration: %w", err)
	}
	return enc.Close()
}

// Load reads a YAML declaration.
func Load(r io.Reader) (*Doc, error) {
	var doc Doc
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode declaration: %w", err)
	}
	return &doc, nil
}

// Verify checks a committed declaration against T's reflected shape and
// reports the first mismatch. A nil return means the declaration still
// matches field for field, in order.
func Verify[T any](d *Doc) error {
	current, err := Describe[T]()
	if err != nil {
		return err
	}

	if d.Type != current.Type {
		return fmt.Errorf("%w: declared type %q, reflected %q", ErrDrift, d.Type, current.Type)
	}
	if d.Category != current.Category {
		return fmt.Errorf("%w: declared category %q, reflected %q", ErrDrift, d.Category, current.Category)
	}
	if len(d.Fields) != len(current.Fields) {
		return fmt.Errorf("%w: declared %d fields, reflected %d", ErrDrift, len(d.Fields), len(current.Fields))
	}
	for i, f := range d.Fields {
		got := current.Fields[i]
		if f != got {
			return fmt.Errorf("%w: field %d declared %+v, reflected %+v", ErrDrift, i, f, got)
		}
	}
	return nil
}
