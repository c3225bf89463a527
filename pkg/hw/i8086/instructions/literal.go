package instructions

import (
	"fmt"

	"github.com/Manu343726/sim8086/pkg/hw/i8086/registers"
)

// An 8 or 16 bit value read from the instruction stream (displacement or immediate data)
type Literal struct {
	// Raw bits as read from the stream, zero extended
	Raw uint16

	// Number of bytes the literal was encoded with
	Width registers.Width
}

// Creates an 8 bit literal
func Literal8(value uint8) Literal {
	return Literal{Raw: uint16(value), Width: registers.Width_Byte}
}

// Creates a 16 bit literal
func Literal16(value uint16) Literal {
	return Literal{Raw: value, Width: registers.Width_Word}
}

// Returns the literal interpreted as a two's complement value of its width
func (l Literal) Signed() int16 {
	switch l.Width {
	case registers.Width_Byte:
		return int16(int8(uint8(l.Raw)))
	case registers.Width_Word:
		return int16(l.Raw)
	}

	panic("unreachable")
}

// Returns the literal interpreted as an unsigned value of its width
func (l Literal) Unsigned() uint16 {
	return l.Raw
}

// Returns true if the literal is zero
func (l Literal) IsZero() bool {
	return l.Raw == 0
}

// Returns true if the literal is negative when rendered with the given options
func (l Literal) IsNegative(options FormatOptions) bool {
	return options.Signed && l.Signed() < 0
}

// Returns the absolute value of the literal as rendered with the given options
func (l Literal) Magnitude(options FormatOptions) int {
	if options.Signed {
		value := int(l.Signed())
		if value < 0 {
			return -value
		}
		return value
	}

	return int(l.Unsigned())
}

// Renders the literal in decimal
func (l Literal) Format(options FormatOptions) string {
	if options.Signed {
		return fmt.Sprint(l.Signed())
	}

	return fmt.Sprint(l.Unsigned())
}

func (l Literal) String() string {
	return l.Format(DefaultFormatOptions)
}
