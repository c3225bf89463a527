package instructions

// Represents an instruction operation
type OpCode uint

const (
	// Copy source operand into destination operand
	OpCode_MOV OpCode = iota

	// Total opcodes implemented
	TOTAL_OPCODES
)

var mnemonics = [TOTAL_OPCODES]string{
	OpCode_MOV: "mov",
}

// Returns the mnemonic of the instruction opcode
func (op OpCode) Mnemonic() string {
	if op >= TOTAL_OPCODES {
		panic("unreachable")
	}

	return mnemonics[op]
}

func (op OpCode) String() string {
	return op.Mnemonic()
}
