package utils

import (
	"golang.org/x/exp/constraints"
)

const BitsPerByte = 8

// Returns an all ones bitmask of n bits of the given unsigned integer type
func AllOnes[T constraints.Unsigned](bits int) T {
	return (T(1) << bits) - T(1)
}

// Implements a read-only view over an unsigned integer, allowing extracting
// individual bit fields easily
type BitView[T constraints.Unsigned] struct {
	bits T
}

// Returns the viewed unsigned int value
func (v BitView[T]) Value() T {
	return v.bits
}

// Extracts a range of bits given a first bit and a width
func (v BitView[T]) Read(bit int, width int) T {
	mask := AllOnes[T](width)
	return (v.bits >> bit) & mask
}

// Reads a single bit as a boolean flag
func (v BitView[T]) Flag(bit int) bool {
	return v.Read(bit, 1) != 0
}

// Creates a bit view out of an unsigned int
func CreateBitView[T constraints.Unsigned](value T) BitView[T] {
	return BitView[T]{
		bits: value,
	}
}
