package mc

import (
	"github.com/Manu343726/ocho86/pkg/utils"
)

// Cursor is a sequential, forward only view over a machine code byte
// sequence. It borrows the input buffer (no copy) and tracks a zero based
// offset that only moves forward, except through an explicit Reset.
//
// The zero value is not useful, use NewCursor.
type Cursor struct {
	program []byte
	offset  int
}

// Creates a cursor over a machine code buffer, positioned at offset zero
func NewCursor(program []byte) *Cursor {
	return &Cursor{
		program: program,
	}
}

// Returns the current byte offset within the program
func (c *Cursor) Offset() int {
	return c.offset
}

// Returns the number of bytes left to consume
func (c *Cursor) Remaining() int {
	return len(c.program) - c.offset
}

// Returns true if no bytes are left to consume
func (c *Cursor) AtEnd() bool {
	return c.Remaining() == 0
}

// Returns the next n bytes without advancing the cursor. Fails with
// ErrOutOfBytes if fewer than n bytes remain.
func (c *Cursor) Peek(n int) ([]byte, error) {
	if c.Remaining() < n {
		return nil, utils.MakeError(ErrOutOfBytes, "requested %v bytes, %v remain", n, c.Remaining())
	}

	return c.program[c.offset : c.offset+n], nil
}

// Moves the cursor forward by n bytes. Fails with ErrOutOfBytes if fewer
// than n bytes remain, leaving the offset untouched.
func (c *Cursor) Advance(n int) error {
	if c.Remaining() < n {
		return utils.MakeError(ErrOutOfBytes, "cannot advance %v bytes, %v remain", n, c.Remaining())
	}

	c.offset += n
	return nil
}

// Returns the next n bytes and advances past them
func (c *Cursor) Take(n int) ([]byte, error) {
	bytes, err := c.Peek(n)
	if err != nil {
		return nil, err
	}

	c.offset += n
	return bytes, nil
}

// Returns all bytes consumed since the given offset. Used by the decoder to
// record the exact encoding of each instruction.
func (c *Cursor) Since(offset int) []byte {
	return c.program[offset:c.offset]
}

// Moves the cursor back to offset zero, so the same program can be decoded
// again
func (c *Cursor) Reset() {
	c.offset = 0
}
