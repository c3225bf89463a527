package instructions

import (
	"github.com/Manu343726/sim8086/pkg/hw/i8086/registers"
)

// Selects which of the reg and rm operands is the destination (d bit)
type Direction uint8

const (
	// d = 0: rm is the destination, reg is the source
	Direction_ToRM Direction = iota
	// d = 1: reg is the destination, rm is the source
	Direction_ToReg
)

func (d Direction) String() string {
	switch d {
	case Direction_ToRM:
		return "to r/m"
	case Direction_ToReg:
		return "to reg"
	}

	panic("unreachable")
}

// Addressing mode selected by the mod field
type Mode uint8

const (
	// Memory operand, no displacement (except the direct address special case)
	Mode_Memory Mode = 0b00
	// Memory operand with 8 bit displacement
	Mode_MemoryDisplacement8 Mode = 0b01
	// Memory operand with 16 bit displacement
	Mode_MemoryDisplacement16 Mode = 0b10
	// Register operand, no displacement
	Mode_Register Mode = 0b11
)

func (m Mode) String() string {
	switch m {
	case Mode_Memory:
		return "memory"
	case Mode_MemoryDisplacement8:
		return "memory + disp8"
	case Mode_MemoryDisplacement16:
		return "memory + disp16"
	case Mode_Register:
		return "register"
	}

	panic("unreachable")
}

// Bitfields extracted from the leading byte(s) of a recognized instruction.
// Implemented by RegMemToReg and ImmediateToReg
type InstructionForm interface {
	// Returns the encoding the form was decoded from
	Encoding() *EncodingDescriptor

	// Number of bytes already consumed to extract the form fields
	HeaderBytes() int

	// Number of displacement/data bytes that follow the header
	TrailingBytes() int

	// Builds the decoded instruction given the trailing literal, which must be nil if TrailingBytes() is 0
	Instruction(trailing *Literal) Instruction
}

// Register/memory to/from register move fields
type RegMemToReg struct {
	Direction Direction
	Width     registers.Width
	Mod       Mode
	Reg       uint8
	RM        uint8
}

// Extracts the fields of a register/memory to/from register move from its two leading bytes
func DecodeRegMemToReg(first byte, second byte) RegMemToReg {
	encoding := Encodings[FormKind_RegMemToReg]

	return RegMemToReg{
		Direction: Direction(encoding.Field("d").Read(first)),
		Width:     registers.WidthFromBit(encoding.Field("w").Read(first)),
		Mod:       Mode(readModRM(second, "mod")),
		Reg:       readModRM(second, "reg"),
		RM:        readModRM(second, "rm"),
	}
}

func (f RegMemToReg) Encoding() *EncodingDescriptor {
	return Encodings[FormKind_RegMemToReg]
}

func (f RegMemToReg) HeaderBytes() int {
	return 2
}

// Returns true if the rm operand is an absolute 16 bit address
func (f RegMemToReg) IsDirectAddress() bool {
	return f.Mod == Mode_Memory && f.RM == registers.DirectAddressRM
}

func (f RegMemToReg) TrailingBytes() int {
	switch f.Mod {
	case Mode_Memory:
		if f.IsDirectAddress() {
			return 2
		}
		return 0
	case Mode_MemoryDisplacement8:
		return 1
	case Mode_MemoryDisplacement16:
		return 2
	case Mode_Register:
		return 0
	}

	panic("unreachable")
}

func (f RegMemToReg) Instruction(trailing *Literal) Instruction {
	reg := RegisterOperand{Register: registers.Register(f.Reg, f.Width)}
	var rm Operand

	switch {
	case f.Mod == Mode_Register:
		rm = RegisterOperand{Register: registers.Register(f.RM, f.Width)}
	case f.IsDirectAddress():
		rm = DirectAddressOperand{Address: trailing.Unsigned()}
	default:
		rm = EffectiveAddressOperand{
			Equation:     registers.Equation(f.RM),
			Displacement: trailing,
		}
	}

	if f.Direction == Direction_ToReg {
		return Instruction{OpCode: f.Encoding().OpCode, Destination: reg, Source: rm}
	}

	return Instruction{OpCode: f.Encoding().OpCode, Destination: rm, Source: reg}
}

// Immediate to register move fields
type ImmediateToReg struct {
	Width registers.Width
	Reg   uint8
}

// Extracts the fields of an immediate to register move from its leading byte
func DecodeImmediateToReg(first byte) ImmediateToReg {
	encoding := Encodings[FormKind_ImmediateToReg]

	return ImmediateToReg{
		Width: registers.WidthFromBit(encoding.Field("w").Read(first)),
		Reg:   encoding.Field("reg").Read(first),
	}
}

func (f ImmediateToReg) Encoding() *EncodingDescriptor {
	return Encodings[FormKind_ImmediateToReg]
}

func (f ImmediateToReg) HeaderBytes() int {
	return 1
}

func (f ImmediateToReg) TrailingBytes() int {
	return f.Width.Bytes()
}

func (f ImmediateToReg) Instruction(trailing *Literal) Instruction {
	return Instruction{
		OpCode:      f.Encoding().OpCode,
		Destination: RegisterOperand{Register: registers.Register(f.Reg, f.Width)},
		Source:      ImmediateOperand{Value: *trailing},
	}
}
