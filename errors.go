package varlayout

import "errors"

var (
	ErrDuplicateField = errors.New("varlayout: duplicate field name")
	ErrElemSize       = errors.New("varlayout: bad element size")
	ErrWrongKind      = errors.New("varlayout: wrong field kind")
	ErrUnknownField   = errors.New("varlayout: unknown field")
	ErrSchemaMismatch = errors.New("varlayout: array length vector does not match schema")
	ErrOutOfBounds    = errors.New("varlayout: array index out of range")
)
