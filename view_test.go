package varlayout

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// packSimpleRecord lays out foo=3, bar="abc\x00", baz="wxyz\x00" back to
// back, the way a packed struct with those members sits in memory.
func packSimpleRecord(t *testing.T) []byte {
	t.Helper()

	buf := make([]byte, 4+4+5)
	binary.NativeEndian.PutUint32(buf[0:], 3)
	copy(buf[4:], "abc\x00")
	copy(buf[8:], "wxyz\x00")
	return buf
}

func TestViewOverlay(t *testing.T) {
	s := makeSimpleSchema(t)
	buf := packSimpleRecord(t)

	v := NewMutableView(s, buf, []int{4, 5})

	assert.Equal(t, int32(3), Get[int32](v, "foo"))
	assert.Equal(t, byte('b'), At[byte](v, "bar", 1))
	assert.Equal(t, byte('y'), At[byte](v, "baz", 2))

	// Writes land in the caller's buffer, not a private copy.
	SetAt(v, "baz", 3, byte('a'))
	assert.Equal(t, byte('a'), buf[8+3])
	assert.Equal(t, "wxya\x00", string(buf[8:]))
}

func TestViewIntrospection(t *testing.T) {
	s := makeSimpleSchema(t)
	buf := packSimpleRecord(t)

	check := func(v RecordView) {
		assert.Equal(t, 3, v.FieldCount())
		assert.Equal(t, 13, v.TotalSize())
		assert.Equal(t, 0, v.Offset("foo"))
		assert.Equal(t, 4, v.Offset("bar"))
		assert.Equal(t, 8, v.Offset("baz"))
		assert.Equal(t, 5, v.ArrayLen("baz"))
		assert.Same(t, s, v.Schema())
	}

	check(NewReadView(s, buf, []int{4, 5}))
	check(NewMutableView(s, buf, []int{4, 5}))
}

func TestReadViewOverConstData(t *testing.T) {
	// Overlaying data the caller treats as immutable: only the read
	// capability exists on a ReadView, there is no setter to misuse.
	data := []byte("This is const data\x00")
	s := makeSimpleSchema(t)

	v := NewReadView(s, data, []int{3, len(data) - 4 - 3})

	want := int32(binary.NativeEndian.Uint32([]byte("This")))
	assert.Equal(t, want, Get[int32](v, "foo"))
	assert.Equal(t, byte('i'), At[byte](v, "bar", 1))
}

func TestViewConstructionMismatch(t *testing.T) {
	s := makeSimpleSchema(t)
	buf := packSimpleRecord(t)

	requirePanicsIs(t, ErrSchemaMismatch, func() {
		NewReadView(s, buf, []int{})
	})
	requirePanicsIs(t, ErrSchemaMismatch, func() {
		NewMutableView(s, buf, []int{4})
	})
}

func TestLayoutReuseAcrossBuffers(t *testing.T) {
	s := makeSimpleSchema(t)
	l := Resolve(s, []int{4, 5})

	a := l.MutableView(make([]byte, l.TotalSize()))
	b := l.MutableView(make([]byte, l.TotalSize()))

	Set(a, "foo", int32(7))
	Set(b, "foo", int32(9))

	assert.Same(t, l, a.Layout())
	assert.Same(t, l, b.Layout())
	assert.Equal(t, int32(7), Get[int32](a, "foo"))
	assert.Equal(t, int32(9), Get[int32](b, "foo"))
}

func TestViewBytes(t *testing.T) {
	s := makeSimpleSchema(t)
	buf := packSimpleRecord(t)
	v := NewMutableView(s, buf, []int{4, 5})

	got := v.Bytes("bar")
	assert.Equal(t, []byte("abc\x00"), got)

	// Bytes is a copy, not an alias.
	got[0] = 'X'
	assert.Equal(t, byte('a'), buf[4])

	assert.Equal(t, []byte{'y'}, v.BytesAt("baz", 2))
	requirePanicsIs(t, ErrOutOfBounds, func() { v.BytesAt("baz", 5) })
	requirePanicsIs(t, ErrWrongKind, func() { v.BytesAt("foo", 0) })
}

func TestViewPutBytes(t *testing.T) {
	s := makeSimpleSchema(t)
	buf := packSimpleRecord(t)
	v := NewMutableView(s, buf, []int{4, 5})

	v.PutBytes("bar", []byte("defg"))
	assert.Equal(t, "defg", string(buf[4:8]))

	v.PutBytesAt("baz", 0, []byte{'W'})
	assert.Equal(t, byte('W'), buf[8])

	requirePanicsIs(t, ErrElemSize, func() {
		v.PutBytes("bar", []byte("too long"))
	})
	requirePanicsIs(t, ErrElemSize, func() {
		v.PutBytesAt("baz", 0, []byte("xy"))
	})
	requirePanicsIs(t, ErrOutOfBounds, func() {
		v.PutBytesAt("baz", -1, []byte{'W'})
	})
}

func TestScalarAtMisalignedOffset(t *testing.T) {
	// A 1-byte scalar followed by a uint32 puts the uint32 at offset 1,
	// off its natural alignment. Access must still round-trip.
	s, err := NewSchemaBuilder().
		Scalar("first", 1).
		Scalar("second", 4).
		Build()
	require.NoError(t, err)

	buf := []byte{'z', 'a', 'b', 'c', 'd'}
	v := NewMutableView(s, buf, nil)

	assert.Equal(t, binary.NativeEndian.Uint32([]byte("abcd")), Get[uint32](v, "second"))

	next := binary.NativeEndian.Uint32([]byte("abdd"))
	Set(v, "second", next)
	assert.Equal(t, byte('d'), buf[3])
	assert.Equal(t, next, Get[uint32](v, "second"))
}
