package instructions

import (
	"fmt"
)

// Stores a fully decoded instruction
type Instruction struct {
	OpCode      OpCode
	Destination Operand
	Source      Operand
}

// Returns the mnemonic of the instruction
func (i Instruction) Mnemonic() string {
	return i.OpCode.Mnemonic()
}

// Renders the instruction as "<mnemonic> <destination>, <source>"
func (i Instruction) Format(options FormatOptions) string {
	return fmt.Sprintf("%v %v, %v", i.Mnemonic(), i.Destination.Format(options), i.Source.Format(options))
}

func (i Instruction) String() string {
	return i.Format(DefaultFormatOptions)
}
