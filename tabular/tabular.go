// Package tabular renders values as indented structural text or aligned
// plain-text tables. It is a presentation layer for debugging engine
// outputs; the core has no dependency on it and it inspects values with
// its own reflection.
package tabular

import (
	"bytes"
	"fmt"
	"reflect"
	"sort"
	"strings"
	"unicode/utf8"
)

// Options configures table rendering.
type Options struct {
	// Header supplies column titles. When nil, titles are derived from
	// the row type's field names. Length must match the column count.
	Header []string

	// SuppressHeader omits the header and separator rows entirely.
	SuppressHeader bool
}

// Table renders a sequence of uniformly-shaped records as an aligned
// plain-text table: a header row (auto-derived, user-supplied, or
// suppressed), a separator row of dashes, and one row per record.
// Column width is the maximum rendered cell width in that column.
func Table(rows any, opts Options) (string, error) {
	rv := reflect.ValueOf(rows)
	if !rv.IsValid() || (rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array) {
		return "", fmt.Errorf("tabular: rows must be a slice or array, got %T", rows)
	}

	rt := rv.Type().Elem()
	if rt.Kind() == reflect.Pointer {
		rt = rt.Elem()
	}
	if rt.Kind() != reflect.Struct {
		return "", fmt.Errorf("tabular: row type %s is not a record", rv.Type().Elem())
	}

	cols := columnFields(rt)
	if len(cols) == 0 {
		return "", fmt.Errorf("tabular: row type %s has no exported fields", rt)
	}

	header := opts.Header
	if header == nil {
		header = make([]string, len(cols))
		for i, sf := range cols {
			header[i] = sf.Name
		}
	} else if len(header) != len(cols) {
		return "", fmt.Errorf("tabular: header has %d columns, rows have %d", len(header), len(cols))
	}

	// Render every cell first; widths come from the rendered text.
	cells := make([][]string, 0, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		row := rv.Index(i)
		if row.Kind() == reflect.Pointer {
			if row.IsNil() {
				return "", fmt.Errorf("tabular: row %d is nil", i)
			}
			row = row.Elem()
		}
		line := make([]string, len(cols))
		for j, sf := range cols {
			line[j] = renderCell(row.FieldByIndex(sf.Index))
		}
		cells = append(cells, line)
	}

	// Widths are measured in runes so multibyte cells stay aligned.
	widths := make([]int, len(cols))
	if !opts.SuppressHeader {
		for j, h := range header {
			widths[j] = utf8.RuneCountInString(h)
		}
	}
	for _, line := range cells {
		for j, cell := range line {
			if n := utf8.RuneCountInString(cell); n > widths[j] {
				widths[j] = n
			}
		}
	}

	var buf bytes.Buffer
	if !opts.SuppressHeader {
		writeRow(&buf, header, widths)
		sep := make([]string, len(cols))
		for j := range sep {
			sep[j] = strings.Repeat("-", widths[j])
		}
		writeRow(&buf, sep, widths)
	}
	for _, line := range cells {
		writeRow(&buf, line, widths)
	}

	return buf.String(), nil
}

// columnFields returns the exported fields of a row type in declared
// order.
func columnFields(rt reflect.Type) []reflect.StructField {
	cols := make([]reflect.StructField, 0, rt.NumField())
	for i := 0; i < rt.NumField(); i++ {
		sf := rt.Field(i)
		if !sf.IsExported() {
			continue
		}
		cols = append(cols, sf)
	}
	return cols
}

func renderCell(v reflect.Value) string {
	if v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return "<nil>"
		}
		return renderCell(v.Elem())
	}
	return fmt.Sprintf("%v", v.Interface())
}

func writeRow(buf *bytes.Buffer, cells []string, widths []int) {
	for j, cell := range cells {
		if j > 0 {
			buf.WriteString("  ")
		}
		if j == len(cells)-1 {
			// No trailing padding on the last column.
			buf.WriteString(cell)
			continue
		}
		buf.WriteString(cell)
		buf.WriteString(strings.Repeat(" ", widths[j]-utf8.RuneCountInString(cell)))
	}
	buf.WriteByte('\n')
}

// Sketch renders a value's shape as indented text: records as named
// field blocks, sequences and maps itemized one element per line, nil
// references as <nil>. Map keys are sorted by their rendered form so
// output is deterministic. Reference identities already being rendered
// print as <cycle>.
func Sketch(v any) string {
	var buf bytes.Buffer
	sketchValue(&buf, reflect.ValueOf(v), 0, make(map[uintptr]struct{}))
	return strings.TrimRight(buf.String(), "\n")
}

func sketchValue(buf *bytes.Buffer, v reflect.Value, depth int, path map[uintptr]struct{}) {
	if !v.IsValid() {
		indent(buf, depth)
		buf.WriteString("<nil>\n")
		return
	}

	switch v.Kind() {
	case reflect.Pointer:
		if v.IsNil() {
			indent(buf, depth)
			buf.WriteString("<nil>\n")
			return
		}
		p := v.Pointer()
		if _, ok := path[p]; ok {
			indent(buf, depth)
			buf.WriteString("<cycle>\n")
			return
		}
		path[p] = struct{}{}
		defer delete(path, p)
		sketchValue(buf, v.Elem(), depth, path)

	case reflect.Struct:
		indent(buf, depth)
		name := v.Type().Name()
		if name == "" {
			name = v.Type().String()
		}
		buf.WriteString(name)
		buf.WriteByte('\n')
		for i := 0; i < v.NumField(); i++ {
			sf := v.Type().Field(i)
			if !sf.IsExported() {
				continue
			}
			sketchField(buf, sf.Name, v.Field(i), depth+1, path)
		}

	case reflect.Slice, reflect.Array:
		if v.Kind() == reflect.Slice && v.Len() > 0 {
			p := v.Pointer()
			if _, ok := path[p]; ok {
				indent(buf, depth)
				buf.WriteString("<cycle>\n")
				return
			}
			path[p] = struct{}{}
			defer delete(path, p)
		}
		if v.Len() == 0 {
			indent(buf, depth)
			buf.WriteString("[]\n")
			return
		}
		for i := 0; i < v.Len(); i++ {
			indent(buf, depth)
			buf.WriteString("-\n")
			sketchValue(buf, v.Index(i), depth+1, path)
		}

	case reflect.Map:
		if v.Len() == 0 {
			indent(buf, depth)
			buf.WriteString("{}\n")
			return
		}
		p := v.Pointer()
		if _, ok := path[p]; ok {
			indent(buf, depth)
			buf.WriteString("<cycle>\n")
			return
		}
		path[p] = struct{}{}
		defer delete(path, p)
		// Entries are captured during enumeration; a NaN key cannot be
		// looked up again once enumerated.
		type entry struct {
			label string
			val   reflect.Value
		}
		entries := make([]entry, 0, v.Len())
		iter := v.MapRange()
		for iter.Next() {
			entries = append(entries, entry{fmt.Sprintf("%v", iter.Key().Interface()), iter.Value()})
		}
		sort.Slice(entries, func(i, j int) bool {
			return entries[i].label < entries[j].label
		})
		for _, e := range entries {
			sketchField(buf, e.label, e.val, depth, path)
		}

	default:
		indent(buf, depth)
		fmt.Fprintf(buf, "%v\n", v.Interface())
	}
}

// sketchField writes "name: value" inline for leaves and "name:" plus an
// indented block for aggregates.
func sketchField(buf *bytes.Buffer, name string, v reflect.Value, depth int, path map[uintptr]struct{}) {
	if isLeaf(v) {
		indent(buf, depth)
		if v.Kind() == reflect.Pointer && v.IsNil() {
			fmt.Fprintf(buf, "%s: <nil>\n", name)
			return
		}
		fmt.Fprintf(buf, "%s: %v\n", name, v.Interface())
		return
	}
	indent(buf, depth)
	buf.WriteString(name)
	buf.WriteString(":\n")
	sketchValue(buf, v, depth+1, path)
}

func isLeaf(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Struct, reflect.Slice, reflect.Array, reflect.Map:
		return false
	case reflect.Pointer:
		return v.IsNil()
	}
	return true
}

func indent(buf *bytes.Buffer, depth int) {
	for i := 0; i < depth; i++ {
		buf.WriteString("  ")
	}
}
