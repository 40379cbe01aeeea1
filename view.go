package varlayout

import "fmt"

// RecordView is the read capability shared by both view variants. Writes
// live only on *MutableView, so handing code a RecordView (or a *ReadView)
// withholds mutation at the type level rather than through a runtime flag.
type RecordView interface {
	Schema() *Schema
	Layout() *Layout
	FieldCount() int
	TotalSize() int
	Offset(name string) int
	ArrayLen(name string) int
	Bytes(name string) []byte
	BytesAt(name string, index int) []byte

	raw() []byte
}

var (
	_ RecordView = (*ReadView)(nil)
	_ RecordView = (*MutableView)(nil)
)

// ReadView binds a schema, a resolved layout, and a caller-owned buffer
// into a read-only accessor. It holds no storage of its own: it is invalid
// the moment the buffer is freed or reallocated, which the caller must
// prevent for as long as the view is used.
type ReadView struct {
	layout *Layout
	buf    []byte
}

// MutableView is a ReadView plus the write capability.
type MutableView struct {
	ReadView
}

// NewReadView resolves the layout for arrayLens and overlays it on buf
// read-only. Panics with ErrSchemaMismatch exactly as Resolve does.
func NewReadView(schema *Schema, buf []byte, arrayLens []int) *ReadView {
	return Resolve(schema, arrayLens).View(buf)
}

// NewMutableView is NewReadView with the write capability.
func NewMutableView(schema *Schema, buf []byte, arrayLens []int) *MutableView {
	return Resolve(schema, arrayLens).MutableView(buf)
}

func (v *ReadView) Schema() *Schema { return v.layout.schema }

func (v *ReadView) Layout() *Layout { return v.layout }

func (v *ReadView) FieldCount() int { return v.layout.NumFields() }

func (v *ReadView) TotalSize() int { return v.layout.total }

func (v *ReadView) Offset(name string) int { return v.layout.Offset(name) }

func (v *ReadView) ArrayLen(name string) int { return v.layout.ArrayLen(name) }

// Bytes copies out the field's full extent.
func (v *ReadView) Bytes(name string) []byte {
	i := v.layout.schema.fieldIndex(name)
	out := make([]byte, v.layout.extents[i])
	copy(out, v.buf[v.layout.offsets[i]:][:v.layout.extents[i]])
	return out
}

// BytesAt copies out element index of an array field, bounds-checked.
func (v *ReadView) BytesAt(name string, index int) []byte {
	i := v.layout.schema.fieldIndex(name)
	v.layout.mustKind(i, KindArray)
	checkIndex(v.layout.schema.fields[i].Name, index, v.layout.lens[i])
	f := v.layout.schema.fields[i]
	out := make([]byte, f.ElemSize)
	copy(out, v.buf[v.layout.offsets[i]+index*f.ElemSize:][:f.ElemSize])
	return out
}

func (v *ReadView) raw() []byte { return v.buf }

// PutBytes overwrites the field's full extent with b, which must be
// exactly Extent(name) bytes.
func (v *MutableView) PutBytes(name string, b []byte) {
	i := v.layout.schema.fieldIndex(name)
	if len(b) != v.layout.extents[i] {
		panic(fmt.Errorf("%w: field %q spans %d bytes, got %d",
			ErrElemSize, name, v.layout.extents[i], len(b)))
	}
	copy(v.buf[v.layout.offsets[i]:][:len(b)], b)
}

// PutBytesAt overwrites element index of an array field with b, which must
// be exactly one element long. Bounds-checked.
func (v *MutableView) PutBytesAt(name string, index int, b []byte) {
	i := v.layout.schema.fieldIndex(name)
	v.layout.mustKind(i, KindArray)
	f := v.layout.schema.fields[i]
	checkIndex(f.Name, index, v.layout.lens[i])
	if len(b) != f.ElemSize {
		panic(fmt.Errorf("%w: field %q holds %d-byte elements, got %d bytes",
			ErrElemSize, name, f.ElemSize, len(b)))
	}
	copy(v.buf[v.layout.offsets[i]+index*f.ElemSize:][:f.ElemSize], b)
}

func checkIndex(name string, index, n int) {
	if index < 0 || index >= n {
		panic(fmt.Errorf("%w: index %d outside [0,%d) for field %q",
			ErrOutOfBounds, index, n, name))
	}
}
