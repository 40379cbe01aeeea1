// rawbytes copies values in and out of byte buffers without alignment
// requirements. Every transfer goes through a properly aligned local
// variable, so the buffer side may sit at any offset.
package rawbytes

import "unsafe"

// Size reports the in-memory size of T in bytes.
func Size[T any]() int {
	var v T
	return int(unsafe.Sizeof(v))
}

// Load reinterprets the leading Size[T]() bytes of b as a T.
// b must hold at least that many bytes.
func Load[T any](b []byte) T {
	var v T
	copy(unsafe.Slice((*byte)(unsafe.Pointer(&v)), unsafe.Sizeof(v)), b)
	return v
}

// Store writes the bytes of v into the front of b.
// b must hold at least Size[T]() bytes.
func Store[T any](b []byte, v T) {
	copy(b, unsafe.Slice((*byte)(unsafe.Pointer(&v)), unsafe.Sizeof(v)))
}
