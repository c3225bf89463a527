package utils

import (
	"golang.org/x/exp/constraints"
)

const BitsPerByte = 8

// Returns the size in bits of n bytes
func Bits(bytes int) int {
	return bytes * BitsPerByte
}

// Returns an all ones bitmask of n bits of the given unsigned integer type
func AllOnes[T constraints.Unsigned](bits int) T {
	return (T(1) << bits) - T(1)
}

// Implements a read-only view over an unsigned integer, allowing extracting individual bitfields easily
type BitView[T constraints.Unsigned] struct {
	Bits T
}

// Returns the viewed unsigned int value
func (v BitView[T]) Value() T {
	return v.Bits
}

// Extracts a range of bits given a first bit and a width
func (v BitView[T]) Read(bit int, width int) T {
	mask := AllOnes[T](width)
	return (v.Value() >> bit) & mask
}

// Returns true if the given bit is set
func (v BitView[T]) IsSet(bit int) bool {
	return v.Read(bit, 1) == 1
}

// Returns true if the bits of the range [bit, bit + width) are equal to the given pattern
func (v BitView[T]) Matches(pattern T, bit int, width int) bool {
	return v.Read(bit, width) == pattern&AllOnes[T](width)
}

// Creates a bit view out of an unsigned int
func CreateBitView[T constraints.Unsigned](value T) BitView[T] {
	return BitView[T]{
		Bits: value,
	}
}
