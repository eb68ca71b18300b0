// Package schema converts untyped parsed documents into validated values.
// A document is checked against an explicitly declared shape (scalars,
// sequences, and fixed-field records); any value whose runtime type does
// not match its declaration is rejected with the offending field path.
package schema

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Kind enumerates the scalar kinds a document value can be declared as.
type Kind int

const (
	String Kind = iota
	Number
	Bool
)

func (k Kind) String() string {
	switch k {
	case String:
		return "string"
	case Number:
		return "number"
	case Bool:
		return "bool"
	}
	return "unknown"
}

// Shape describes a declared type: a scalar kind, a sequence of an element
// shape, or a record with fixed fields.
type Shape interface {
	build(raw any, path string) (Value, error)
}

// Scalar declares a single string, number, or bool value.
type Scalar struct {
	Kind Kind
}

// Sequence declares an ordered list whose elements all share one shape.
type Sequence struct {
	Elem Shape
}

// Field declares one named record member. Optional fields may be absent or
// null in the document and resolve to an empty Value.
type Field struct {
	Name     string
	Shape    Shape
	Optional bool
}

// Record declares a mapping with a fixed set of fields. Keys present in the
// document but not declared here are ignored.
type Record struct {
	Fields []Field
}

// Build validates raw against shape, attributing any failure to path.
func Build(shape Shape, raw any, path string) (Value, error) {
	return shape.build(raw, path)
}

// Load parses doc as YAML and builds the root record from it. An empty
// document counts as an empty mapping, so a record whose fields are all
// optional loads successfully from an empty file.
func Load(doc []byte, root Record) (Value, error) {
	var raw any
	if err := yaml.Unmarshal(doc, &raw); err != nil {
		return Value{}, &ParseError{Err: err}
	}
	if raw == nil {
		raw = map[string]any{}
	}
	return Build(root, raw, "")
}

// LoadFile reads path and loads it like Load. A missing file counts as an
// empty document; load errors are attributed to the file.
func LoadFile(path string, root Record) (Value, error) {
	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return Value{}, fmt.Errorf("could not read %s: %w", path, err)
	}

	v, err := Load(data, root)
	if err != nil {
		return Value{}, attribute(err, path)
	}
	return v, nil
}

func (s Scalar) build(raw any, path string) (Value, error) {
	switch s.Kind {
	case String:
		if str, ok := raw.(string); ok {
			return Value{kind: stringValue, str: str}, nil
		}
	case Number:
		switch n := raw.(type) {
		case int:
			return Value{kind: numberValue, num: float64(n)}, nil
		case int64:
			return Value{kind: numberValue, num: float64(n)}, nil
		case uint64:
			return Value{kind: numberValue, num: float64(n)}, nil
		case float64:
			return Value{kind: numberValue, num: n}, nil
		}
	case Bool:
		if b, ok := raw.(bool); ok {
			return Value{kind: boolValue, b: b}, nil
		}
	}
	return Value{}, &TypeMismatchError{Path: path, Expected: s.Kind.String(), Actual: raw}
}

func (s Sequence) build(raw any, path string) (Value, error) {
	items, ok := raw.([]any)
	if !ok {
		return Value{}, &TypeMismatchError{Path: path, Expected: "sequence", Actual: raw}
	}

	seq := make([]Value, 0, len(items))
	for i, item := range items {
		v, err := Build(s.Elem, item, fmt.Sprintf("%s[%d]", path, i))
		if err != nil {
			return Value{}, err
		}
		seq = append(seq, v)
	}
	return Value{kind: sequenceValue, seq: seq}, nil
}

func (r Record) build(raw any, path string) (Value, error) {
	m, ok := raw.(map[string]any)
	if !ok {
		return Value{}, &TypeMismatchError{Path: path, Expected: "mapping", Actual: raw}
	}

	fields := make(map[string]Value, len(r.Fields))
	for _, f := range r.Fields {
		rv, present := m[f.Name]
		if !present || rv == nil {
			if f.Optional {
				fields[f.Name] = Value{}
				continue
			}
			return Value{}, &MissingFieldError{Path: path, Field: f.Name}
		}

		v, err := Build(f.Shape, rv, joinPath(path, f.Name))
		if err != nil {
			return Value{}, err
		}
		fields[f.Name] = v
	}
	return Value{kind: recordValue, fields: fields}, nil
}

func joinPath(path, name string) string {
	if path == "" {
		return name
	}
	return path + "." + name
}
