// Package varlayout computes byte layouts for records whose array fields
// have lengths known only at runtime, and overlays those records on
// caller-owned buffers.
//
// A Schema is declared once per record type and shared by every instance.
// Given the runtime lengths of the array fields, Resolve produces the byte
// offset and extent of every field with no padding between fields, so a
// layout matches byte-packed wire and disk formats exactly. ReadView and
// MutableView bind a resolved layout to a buffer; all field access goes
// through byte-for-byte copies, never typed dereferences, so a buffer may
// start at any alignment.
//
// The package does not own, size, or synchronize the buffer. A Schema and a
// Layout are immutable after construction and safe to share across
// goroutines; concurrent writers to the same buffer need external
// coordination.
package varlayout
