package varlayout

import (
	"fmt"

	"github.com/tuannm99/varlayout/internal/rawbytes"
)

type FieldKind uint8

const (
	KindScalar FieldKind = iota + 1
	KindArray
)

func (k FieldKind) String() string {
	switch k {
	case KindScalar:
		return "scalar"
	case KindArray:
		return "array"
	default:
		return fmt.Sprintf("FieldKind(%d)", uint8(k))
	}
}

// Field describes one record field: its name, whether it is a scalar or a
// runtime-sized array, and the size of one element in bytes. The element
// type itself is opaque to the engine; for composite element types the
// caller must ensure the type carries no compiler-inserted padding the
// engine cannot see.
type Field struct {
	Name     string
	Kind     FieldKind
	ElemSize int
}

// ScalarOf builds a scalar field descriptor sized after T.
func ScalarOf[T any](name string) Field {
	return Field{Name: name, Kind: KindScalar, ElemSize: rawbytes.Size[T]()}
}

// ArrayOf builds an array field descriptor whose elements are sized after T.
func ArrayOf[T any](name string) Field {
	return Field{Name: name, Kind: KindArray, ElemSize: rawbytes.Size[T]()}
}

// Schema is an immutable ordered sequence of fields, built once per record
// type and shared by every view of that type. Declaration order fixes
// layout order.
type Schema struct {
	fields []Field
	index  map[string]int
	arrays int
}

// SchemaBuilder collects field declarations in order. Calls chain; Build
// validates and freezes the result.
type SchemaBuilder struct {
	fields []Field
}

func NewSchemaBuilder() *SchemaBuilder {
	return &SchemaBuilder{}
}

// Scalar declares a single-element field of size bytes.
func (b *SchemaBuilder) Scalar(name string, size int) *SchemaBuilder {
	return b.Add(Field{Name: name, Kind: KindScalar, ElemSize: size})
}

// Array declares a field holding a runtime-determined count of
// elemSize-byte elements.
func (b *SchemaBuilder) Array(name string, elemSize int) *SchemaBuilder {
	return b.Add(Field{Name: name, Kind: KindArray, ElemSize: elemSize})
}

func (b *SchemaBuilder) Add(f Field) *SchemaBuilder {
	b.fields = append(b.fields, f)
	return b
}

func (b *SchemaBuilder) Build() (*Schema, error) {
	index := make(map[string]int, len(b.fields))
	arrays := 0
	for i, f := range b.fields {
		if f.Kind != KindScalar && f.Kind != KindArray {
			return nil, fmt.Errorf("%w: field %q declared as %s", ErrWrongKind, f.Name, f.Kind)
		}
		if f.ElemSize < 1 {
			return nil, fmt.Errorf("%w: field %q has element size %d", ErrElemSize, f.Name, f.ElemSize)
		}
		if _, dup := index[f.Name]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateField, f.Name)
		}
		index[f.Name] = i
		if f.Kind == KindArray {
			arrays++
		}
	}
	fields := make([]Field, len(b.fields))
	copy(fields, b.fields)
	return &Schema{fields: fields, index: index, arrays: arrays}, nil
}

func (s *Schema) NumFields() int { return len(s.fields) }

// NumArrays reports how many fields need a runtime length.
func (s *Schema) NumArrays() int { return s.arrays }

// Fields returns a copy of the field descriptors in declaration order.
func (s *Schema) Fields() []Field {
	out := make([]Field, len(s.fields))
	copy(out, s.fields)
	return out
}

func (s *Schema) HasField(name string) bool {
	_, ok := s.index[name]
	return ok
}

func (s *Schema) Field(name string) (Field, bool) {
	i, ok := s.index[name]
	if !ok {
		return Field{}, false
	}
	return s.fields[i], true
}

func (s *Schema) fieldIndex(name string) int {
	i, ok := s.index[name]
	if !ok {
		panic(fmt.Errorf("%w: %q", ErrUnknownField, name))
	}
	return i
}
