package instructions

import (
	"github.com/Manu343726/sim8086/pkg/utils"
)

// Identifies one of the recognized instruction encodings
type FormKind uint

const (
	// Register/memory to/from register move (100010dw)
	FormKind_RegMemToReg FormKind = iota
	// Immediate to register move (1011wrrr)
	FormKind_ImmediateToReg

	// Total encodings recognized
	TOTAL_FORMS
)

func (k FormKind) String() string {
	switch k {
	case FormKind_RegMemToReg:
		return "RegMemToReg"
	case FormKind_ImmediateToReg:
		return "ImmediateToReg"
	}

	panic("unreachable")
}

// Describes a bitfield within an instruction byte
type FieldDescriptor struct {
	// Short field name (d, w, mod, ...)
	Name string `yaml:"name"`
	// Least significant bit of the field within its byte
	Position int `yaml:"position"`
	// Field width in bits
	Width int `yaml:"width"`
	// Field description (for documentation)
	Description string `yaml:"description"`
}

// Extracts the field value from a byte
func (f *FieldDescriptor) Read(b byte) uint8 {
	return utils.CreateBitView(b).Read(f.Position, f.Width)
}

// Contains the fixed opcode bits and field layout of an instruction encoding
type EncodingDescriptor struct {
	Kind   FormKind `yaml:"-"`
	OpCode OpCode   `yaml:"-"`
	// Fixed most significant bits of the first byte
	Pattern uint8 `yaml:"-"`
	// Number of fixed bits in Pattern
	PatternBits int `yaml:"-"`
	// Variable fields of the first byte
	Fields []FieldDescriptor `yaml:"fields"`
	// True if the encoding is followed by a mod/reg/rm byte
	HasModRM bool `yaml:"modrm"`
	// Encoding description (for documentation)
	Description string `yaml:"description"`
}

// Returns the fixed opcode bits as a binary string
func (d *EncodingDescriptor) PatternString() string {
	return utils.FormatUintBinary(uint64(d.Pattern), d.PatternBits)
}

// Returns true if the first byte of an instruction has this encoding
func (d *EncodingDescriptor) Matches(first byte) bool {
	return utils.CreateBitView(first).Matches(d.Pattern, utils.BitsPerByte-d.PatternBits, d.PatternBits)
}

// Returns the first byte field with the given name. Panics if there is no such field
func (d *EncodingDescriptor) Field(name string) *FieldDescriptor {
	for i := range d.Fields {
		if d.Fields[i].Name == name {
			return &d.Fields[i]
		}
	}

	panic("unknown field '" + name + "' in " + d.Kind.String() + " encoding")
}

// Fields of the mod/reg/rm byte
var ModRMFields = []FieldDescriptor{
	{Name: "rm", Position: 0, Width: 3, Description: "register or memory operand, depending on mod"},
	{Name: "reg", Position: 3, Width: 3, Description: "register operand"},
	{Name: "mod", Position: 6, Width: 2, Description: "addressing mode: 00 memory, 01 memory + disp8, 10 memory + disp16, 11 register"},
}

// Reads a field of the mod/reg/rm byte by name
func readModRM(b byte, name string) uint8 {
	for i := range ModRMFields {
		if ModRMFields[i].Name == name {
			return ModRMFields[i].Read(b)
		}
	}

	panic("unreachable")
}

// All recognized encodings, indexed by FormKind
var Encodings = [TOTAL_FORMS]*EncodingDescriptor{
	FormKind_RegMemToReg:    RegMemToRegEncoding(),
	FormKind_ImmediateToReg: ImmediateToRegEncoding(),
}

func RegMemToRegEncoding() *EncodingDescriptor {
	return &EncodingDescriptor{
		Kind:        FormKind_RegMemToReg,
		OpCode:      OpCode_MOV,
		Pattern:     0b100010,
		PatternBits: 6,
		Fields: []FieldDescriptor{
			{Name: "w", Position: 0, Width: 1, Description: "operand width: 0 byte, 1 word"},
			{Name: "d", Position: 1, Width: 1, Description: "direction: 1 reg is the destination, 0 reg is the source"},
		},
		HasModRM:    true,
		Description: "Register/memory to/from register move",
	}
}

func ImmediateToRegEncoding() *EncodingDescriptor {
	return &EncodingDescriptor{
		Kind:        FormKind_ImmediateToReg,
		OpCode:      OpCode_MOV,
		Pattern:     0b1011,
		PatternBits: 4,
		Fields: []FieldDescriptor{
			{Name: "reg", Position: 0, Width: 3, Description: "destination register"},
			{Name: "w", Position: 3, Width: 1, Description: "operand width: 0 byte (8 bit data), 1 word (16 bit data)"},
		},
		HasModRM:    false,
		Description: "Immediate to register move",
	}
}

// Returns the encoding of an instruction given its first byte, or false if no recognized encoding matches
func Classify(first byte) (*EncodingDescriptor, bool) {
	for _, encoding := range Encodings {
		if encoding.Matches(first) {
			return encoding, true
		}
	}

	return nil, false
}
