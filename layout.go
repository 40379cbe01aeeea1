package varlayout

import "fmt"

// Layout is the resolved placement of one record instance: a byte offset
// and extent per field, in declaration order, with no padding anywhere.
// It is immutable once resolved and may back any number of views.
type Layout struct {
	schema  *Schema
	offsets []int
	extents []int
	lens    []int // runtime element count, array fields only
	total   int
}

// Resolve walks the schema in declaration order with a running offset
// cursor: each field starts where the previous one ended and advances the
// cursor by its extent. Array fields consume the next entry of arrayLens.
//
// The length vector must carry exactly schema.NumArrays() non-negative
// entries; anything else means the declaration and the call site have
// drifted apart, and Resolve panics with ErrSchemaMismatch.
func Resolve(schema *Schema, arrayLens []int) *Layout {
	if len(arrayLens) != schema.NumArrays() {
		panic(fmt.Errorf("%w: schema has %d array fields, got %d lengths",
			ErrSchemaMismatch, schema.NumArrays(), len(arrayLens)))
	}

	n := schema.NumFields()
	l := &Layout{
		schema:  schema,
		offsets: make([]int, n),
		extents: make([]int, n),
		lens:    make([]int, n),
	}

	cursor, next := 0, 0
	for i, f := range schema.fields {
		ext := f.ElemSize
		if f.Kind == KindArray {
			cnt := arrayLens[next]
			next++
			if cnt < 0 {
				panic(fmt.Errorf("%w: negative length %d for array field %q",
					ErrSchemaMismatch, cnt, f.Name))
			}
			l.lens[i] = cnt
			ext = cnt * f.ElemSize
		}
		l.offsets[i] = cursor
		l.extents[i] = ext
		cursor += ext
	}
	l.total = cursor
	return l
}

func (l *Layout) Schema() *Schema { return l.schema }

func (l *Layout) NumFields() int { return len(l.offsets) }

// TotalSize is the number of bytes the record spans, the sum of all extents.
func (l *Layout) TotalSize() int { return l.total }

// Offset is the field's byte offset from the start of the buffer.
// Unknown names panic with ErrUnknownField.
func (l *Layout) Offset(name string) int {
	return l.offsets[l.schema.fieldIndex(name)]
}

// Extent is the number of bytes the field occupies: ElemSize for scalars,
// length*ElemSize for arrays.
func (l *Layout) Extent(name string) int {
	return l.extents[l.schema.fieldIndex(name)]
}

// ArrayLen is the runtime element count of an array field.
func (l *Layout) ArrayLen(name string) int {
	i := l.schema.fieldIndex(name)
	l.mustKind(i, KindArray)
	return l.lens[i]
}

func (l *Layout) OffsetAt(i int) int { return l.offsets[i] }

func (l *Layout) ExtentAt(i int) int { return l.extents[i] }

// View overlays the layout on buf read-only. buf must span at least
// TotalSize() bytes; that is the caller's contract and is not validated
// here, slice bounds are the only backstop.
func (l *Layout) View(buf []byte) *ReadView {
	return &ReadView{layout: l, buf: buf}
}

// MutableView overlays the layout on buf with the write capability.
func (l *Layout) MutableView(buf []byte) *MutableView {
	return &MutableView{ReadView{layout: l, buf: buf}}
}

func (l *Layout) mustKind(i int, kind FieldKind) {
	if f := l.schema.fields[i]; f.Kind != kind {
		panic(fmt.Errorf("%w: field %q is %s, not %s", ErrWrongKind, f.Name, f.Kind, kind))
	}
}
