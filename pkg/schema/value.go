package schema

type valueKind int

const (
	emptyValue valueKind = iota
	stringValue
	numberValue
	boolValue
	sequenceValue
	recordValue
)

// Value is a validated document value. The zero Value is the empty value an
// optional absent field resolves to; its accessors return zero results.
type Value struct {
	kind   valueKind
	str    string
	num    float64
	b      bool
	seq    []Value
	fields map[string]Value
}

// Empty reports whether the value came from an absent or null field.
func (v Value) Empty() bool {
	return v.kind == emptyValue
}

// Str returns the string content of a string value.
func (v Value) Str() string {
	return v.str
}

// Num returns the numeric content of a number value.
func (v Value) Num() float64 {
	return v.num
}

// Int returns the numeric content truncated to an int.
func (v Value) Int() int {
	return int(v.num)
}

// Bool returns the content of a bool value.
func (v Value) Bool() bool {
	return v.b
}

// Seq returns the elements of a sequence value in document order.
func (v Value) Seq() []Value {
	return v.seq
}

// Field returns the named field of a record value. Fields of an empty value
// are themselves empty.
func (v Value) Field(name string) Value {
	return v.fields[name]
}
