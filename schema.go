package colstore

import (
	"fmt"
	"reflect"
	"strings"
)

// Kind identifies the element type of a column.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindBool
	KindInt
	KindInt8
	KindInt16
	KindInt32
	KindInt64
	KindUint
	KindUint8
	KindUint16
	KindUint32
	KindUint64
	KindUintptr
	KindFloat32
	KindFloat64
	KindComplex64
	KindComplex128
)

var kindNames = [...]string{
	KindInvalid:    "invalid",
	KindBool:       "bool",
	KindInt:        "int",
	KindInt8:       "int8",
	KindInt16:      "int16",
	KindInt32:      "int32",
	KindInt64:      "int64",
	KindUint:       "uint",
	KindUint8:      "uint8",
	KindUint16:     "uint16",
	KindUint32:     "uint32",
	KindUint64:     "uint64",
	KindUintptr:    "uintptr",
	KindFloat32:    "float32",
	KindFloat64:    "float64",
	KindComplex64:  "complex64",
	KindComplex128: "complex128",
}

var reflectKinds = map[reflect.Kind]Kind{
	reflect.Bool:       KindBool,
	reflect.Int:        KindInt,
	reflect.Int8:       KindInt8,
	reflect.Int16:      KindInt16,
	reflect.Int32:      KindInt32,
	reflect.Int64:      KindInt64,
	reflect.Uint:       KindUint,
	reflect.Uint8:      KindUint8,
	reflect.Uint16:     KindUint16,
	reflect.Uint32:     KindUint32,
	reflect.Uint64:     KindUint64,
	reflect.Uintptr:    KindUintptr,
	reflect.Float32:    KindFloat32,
	reflect.Float64:    KindFloat64,
	reflect.Complex64:  KindComplex64,
	reflect.Complex128: KindComplex128,
}

// String returns the Go type name of the kind.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Valid reports whether k names a primitive type.
func (k Kind) Valid() bool {
	return k > KindInvalid && int(k) < len(kindNames)
}

// GoType returns the Go type name used in generated code.
func (k Kind) GoType() string {
	return k.String()
}

// ParseKind parses a Go primitive type name. byte and rune are accepted as
// aliases of uint8 and int32.
func ParseKind(s string) (Kind, error) {
	s = strings.TrimSpace(s)
	switch s {
	case "byte":
		return KindUint8, nil
	case "rune":
		return KindInt32, nil
	}
	for k := KindBool; int(k) < len(kindNames); k++ {
		if kindNames[k] == s {
			return k, nil
		}
	}
	return KindInvalid, fmt.Errorf("%w: %q", ErrNotPrimitive, s)
}

// KindOf returns the kind of t. Strings, slices, arrays, maps, pointers,
// structs, interfaces, channels and functions are rejected with
// ErrNotPrimitive.
func KindOf(t reflect.Type) (Kind, error) {
	if t == nil {
		return KindInvalid, fmt.Errorf("%w: nil type", ErrNotPrimitive)
	}
	if k, ok := reflectKinds[t.Kind()]; ok {
		return k, nil
	}
	return KindInvalid, fmt.Errorf("%w: %s", ErrNotPrimitive, t)
}

// Field declares one column.
type Field struct {
	Name string
	Kind Kind
}

// Schema is the ordered, validated list of columns of a Dynamic table.
// It is immutable after construction.
type Schema struct {
	fields []Field
	index  map[string]int
}

// NewSchema validates fields and returns a schema. It fails fast with
// ErrEmptySchema, ErrDuplicateColumn or ErrNotPrimitive.
func NewSchema(fields ...Field) (*Schema, error) {
	if len(fields) == 0 {
		return nil, ErrEmptySchema
	}

	s := &Schema{
		fields: make([]Field, len(fields)),
		index:  make(map[string]int, len(fields)),
	}
	for i, f := range fields {
		if f.Name == "" {
			return nil, fmt.Errorf("column %d: empty name", i)
		}
		if !f.Kind.Valid() {
			return nil, fmt.Errorf("column %q: %w: %s", f.Name, ErrNotPrimitive, f.Kind)
		}
		if _, dup := s.index[f.Name]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateColumn, f.Name)
		}
		s.fields[i] = f
		s.index[f.Name] = i
	}
	return s, nil
}

// SchemaOf infers a schema from one sample value per column. Columns are
// named c0, c1, ...
func SchemaOf(samples ...any) (*Schema, error) {
	fields := make([]Field, len(samples))
	for i, v := range samples {
		k, err := KindOf(reflect.TypeOf(v))
		if err != nil {
			return nil, fmt.Errorf("column %d: %w", i, err)
		}
		fields[i] = Field{Name: fmt.Sprintf("c%d", i), Kind: k}
	}
	return NewSchema(fields...)
}

// Len returns the number of columns.
func (s *Schema) Len() int {
	return len(s.fields)
}

// Field returns column i. It panics if i is out of range.
func (s *Schema) Field(i int) Field {
	return s.fields[i]
}

// Fields returns a copy of the column list.
func (s *Schema) Fields() []Field {
	out := make([]Field, len(s.fields))
	copy(out, s.fields)
	return out
}

// Lookup returns the index of the named column.
func (s *Schema) Lookup(name string) (int, bool) {
	i, ok := s.index[name]
	return i, ok
}

// String renders the schema as "(name kind, ...)".
func (s *Schema) String() string {
	var b strings.Builder
	b.WriteByte('(')
	for i, f := range s.fields {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(f.Name)
		b.WriteByte(' ')
		b.WriteString(f.Kind.String())
	}
	b.WriteByte(')')
	return b.String()
}
