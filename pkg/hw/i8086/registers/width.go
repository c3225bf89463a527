package registers

// Operand size selected by the w bit of an instruction
type Width uint8

const (
	// 8 bit operation (w = 0)
	Width_Byte Width = iota
	// 16 bit operation (w = 1)
	Width_Word
)

// Returns the width encoded by a w bit value. Only the least significant bit is considered
func WidthFromBit(w uint8) Width {
	return Width(w & 1)
}

// Returns the number of bytes of an operand of this width
func (w Width) Bytes() int {
	switch w {
	case Width_Byte:
		return 1
	case Width_Word:
		return 2
	}

	panic("unreachable")
}

// Returns the number of bits of an operand of this width
func (w Width) Bits() int {
	return w.Bytes() * 8
}

func (w Width) String() string {
	switch w {
	case Width_Byte:
		return "byte"
	case Width_Word:
		return "word"
	}

	panic("unreachable")
}
