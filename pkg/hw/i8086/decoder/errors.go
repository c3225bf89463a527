package decoder

import (
	"errors"
	"fmt"
)

var (
	// Fewer bytes remain than the matched instruction form requires
	ErrTruncatedInput = errors.New("truncated input")
	// The leading byte of an instruction matches no recognized encoding
	ErrUnsupportedOpcode = errors.New("unsupported opcode")
)

// Error returned when an instruction cannot be decoded. Wraps ErrTruncatedInput or ErrUnsupportedOpcode
type DecodeError struct {
	// Byte offset of the first byte of the failing instruction
	Offset int
	// First byte of the failing instruction
	Opcode byte
	Err    error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("offset %v (opcode 0x%02x): %v", e.Offset, e.Opcode, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// Returns true if the error was caused by an unrecognized opcode byte
func (e *DecodeError) IsUnsupportedOpcode() bool {
	return errors.Is(e.Err, ErrUnsupportedOpcode)
}

// Returns true if the error was caused by input ending in the middle of an instruction
func (e *DecodeError) IsTruncatedInput() bool {
	return errors.Is(e.Err, ErrTruncatedInput)
}
