package varlayout

import (
	"fmt"

	"github.com/tuannm99/varlayout/internal/rawbytes"
)

// Typed field access. These are free functions because Go methods cannot
// take type parameters. Reads and writes are full value copies through
// rawbytes, so the buffer offset may be misaligned for T; nothing ever
// hands out a pointer into the buffer.
//
// T must match the field's declared element size exactly (ErrElemSize
// panic otherwise). For struct element types, any padding Go inserts into
// T is the caller's problem, same as the declared size itself.

// Get reads a scalar field.
func Get[T any](v RecordView, name string) T {
	i, f := scalarField[T](v, name)
	return rawbytes.Load[T](v.raw()[v.Layout().offsets[i]:][:f.ElemSize])
}

// Set writes a scalar field.
func Set[T any](v *MutableView, name string, val T) {
	i, f := scalarField[T](v, name)
	rawbytes.Store(v.buf[v.layout.offsets[i]:][:f.ElemSize], val)
}

// At reads element index of an array field, bounds-checked against the
// field's runtime length.
func At[T any](v RecordView, name string, index int) T {
	i, f := arrayField[T](v, name)
	l := v.Layout()
	checkIndex(f.Name, index, l.lens[i])
	return rawbytes.Load[T](v.raw()[l.offsets[i]+index*f.ElemSize:][:f.ElemSize])
}

// AtUnchecked is At without the index check. The offset arithmetic still
// happens; whatever bytes sit there are returned. For call sites that have
// proven the index in-range by other means.
func AtUnchecked[T any](v RecordView, name string, index int) T {
	i, f := arrayField[T](v, name)
	l := v.Layout()
	return rawbytes.Load[T](v.raw()[l.offsets[i]+index*f.ElemSize:][:f.ElemSize])
}

// SetAt writes element index of an array field, bounds-checked.
func SetAt[T any](v *MutableView, name string, index int, val T) {
	i, f := arrayField[T](v, name)
	checkIndex(f.Name, index, v.layout.lens[i])
	rawbytes.Store(v.buf[v.layout.offsets[i]+index*f.ElemSize:][:f.ElemSize], val)
}

// SetAtUnchecked is SetAt without the index check.
func SetAtUnchecked[T any](v *MutableView, name string, index int, val T) {
	i, f := arrayField[T](v, name)
	rawbytes.Store(v.buf[v.layout.offsets[i]+index*f.ElemSize:][:f.ElemSize], val)
}

func scalarField[T any](v RecordView, name string) (int, Field) {
	return fieldAs[T](v, name, KindScalar)
}

func arrayField[T any](v RecordView, name string) (int, Field) {
	return fieldAs[T](v, name, KindArray)
}

func fieldAs[T any](v RecordView, name string, kind FieldKind) (int, Field) {
	l := v.Layout()
	i := l.schema.fieldIndex(name)
	l.mustKind(i, kind)
	f := l.schema.fields[i]
	if s := rawbytes.Size[T](); s != f.ElemSize {
		panic(fmt.Errorf("%w: field %q holds %d-byte elements, value type is %d bytes",
			ErrElemSize, name, f.ElemSize, s))
	}
	return i, f
}
