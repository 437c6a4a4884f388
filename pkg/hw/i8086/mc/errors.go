package mc

import (
	"errors"
	"fmt"
)

var (
	// The input buffer ended before the current instruction was complete
	ErrOutOfBytes = errors.New("out of bytes")

	// The leading byte does not match any supported MOV encoding
	ErrUnsupportedOpcode = errors.New("unsupported opcode")
)

// DecodeError annotates a decode failure with the byte offset of the
// instruction that failed to decode. It wraps one of the sentinel errors
// above, so callers can match the failure kind with errors.Is while still
// reporting the offset in diagnostics.
type DecodeError struct {
	Offset int
	Err    error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode failed at offset %v: %v", e.Offset, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

func makeDecodeError(offset int, err error) error {
	decodeError := &DecodeError{}
	if errors.As(err, &decodeError) {
		return err
	}

	return &DecodeError{
		Offset: offset,
		Err:    err,
	}
}
