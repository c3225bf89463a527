package instructions

import (
	"testing"

	"github.com/Manu343726/sim8086/pkg/hw/i8086/registers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var unsigned = FormatOptions{Signed: false}

func lit8(value uint8) *Literal {
	l := Literal8(value)
	return &l
}

func lit16(value uint16) *Literal {
	l := Literal16(value)
	return &l
}

func TestClassify(t *testing.T) {
	tests := []struct {
		first byte
		kind  FormKind
	}{
		{0x88, FormKind_RegMemToReg},
		{0x89, FormKind_RegMemToReg},
		{0x8A, FormKind_RegMemToReg},
		{0x8B, FormKind_RegMemToReg},
		{0xB0, FormKind_ImmediateToReg},
		{0xB9, FormKind_ImmediateToReg},
		{0xBF, FormKind_ImmediateToReg},
	}

	for _, test := range tests {
		encoding, ok := Classify(test.first)

		require.True(t, ok, "0x%02x", test.first)
		assert.Equal(t, test.kind, encoding.Kind, "0x%02x", test.first)
		assert.Equal(t, OpCode_MOV, encoding.OpCode)
	}
}

func TestClassify_Unrecognized(t *testing.T) {
	for _, first := range []byte{0x00, 0x8C, 0x90, 0xA0, 0xC6, 0xFF} {
		_, ok := Classify(first)
		assert.False(t, ok, "0x%02x", first)
	}
}

func TestDecodeRegMemToReg(t *testing.T) {
	form := DecodeRegMemToReg(0x89, 0xD9)

	assert.Equal(t, RegMemToReg{
		Direction: Direction_ToRM,
		Width:     registers.Width_Word,
		Mod:       Mode_Register,
		Reg:       0b011,
		RM:        0b001,
	}, form)
	assert.Equal(t, 2, form.HeaderBytes())
	assert.Equal(t, 0, form.TrailingBytes())
}

func TestDecodeImmediateToReg(t *testing.T) {
	form := DecodeImmediateToReg(0xBA)

	assert.Equal(t, ImmediateToReg{Width: registers.Width_Word, Reg: 0b010}, form)
	assert.Equal(t, 1, form.HeaderBytes())
	assert.Equal(t, 2, form.TrailingBytes())
	assert.Equal(t, 1, DecodeImmediateToReg(0xB1).TrailingBytes())
}

func TestRegMemToReg_TrailingBytes(t *testing.T) {
	tests := []struct {
		name     string
		second   byte
		trailing int
	}{
		{"mod 00", 0b00_000_000, 0},
		{"mod 00 direct address", 0b00_000_110, 2},
		{"mod 01", 0b01_000_110, 1},
		{"mod 10", 0b10_000_000, 2},
		{"mod 11", 0b11_000_110, 0},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.trailing, DecodeRegMemToReg(0x8B, test.second).TrailingBytes())
		})
	}
}

func TestRegMemToReg_DirectionSwapsOperands(t *testing.T) {
	for second := 0b11_000_000; second <= 0xFF; second++ {
		toRM := DecodeRegMemToReg(0x89, byte(second)).Instruction(nil)
		toReg := DecodeRegMemToReg(0x8B, byte(second)).Instruction(nil)

		assert.Equal(t, toRM.Destination, toReg.Source)
		assert.Equal(t, toRM.Source, toReg.Destination)
		assert.Equal(t, OperandKind_Register, toRM.Destination.Kind())
		assert.Equal(t, OperandKind_Register, toRM.Source.Kind())
	}
}

func TestInstruction_Format(t *testing.T) {
	tests := []struct {
		name     string
		form     InstructionForm
		trailing *Literal
		signed   string
		unsigned string
	}{
		{"register to register", DecodeRegMemToReg(0x89, 0xD9), nil, "mov cx, bx", "mov cx, bx"},
		{"byte registers", DecodeRegMemToReg(0x88, 0xE5), nil, "mov ch, ah", "mov ch, ah"},
		{"immediate 8", DecodeImmediateToReg(0xB1), lit8(12), "mov cl, 12", "mov cl, 12"},
		{"negative immediate 8", DecodeImmediateToReg(0xB5), lit8(0xF4), "mov ch, -12", "mov ch, 244"},
		{"immediate 16", DecodeImmediateToReg(0xBA), lit16(3948), "mov dx, 3948", "mov dx, 3948"},
		{"negative immediate 16", DecodeImmediateToReg(0xBA), lit16(0xF094), "mov dx, -3948", "mov dx, 61588"},
		{"effective address", DecodeRegMemToReg(0x8A, 0x00), nil, "mov al, [bx + si]", "mov al, [bx + si]"},
		{"zero displacement", DecodeRegMemToReg(0x8B, 0x56), lit8(0), "mov dx, [bp]", "mov dx, [bp]"},
		{"displacement 8", DecodeRegMemToReg(0x8A, 0x60), lit8(4), "mov ah, [bx + si + 4]", "mov ah, [bx + si + 4]"},
		{"displacement 16", DecodeRegMemToReg(0x8A, 0x80), lit16(4999), "mov al, [bx + si + 4999]", "mov al, [bx + si + 4999]"},
		{"negative displacement 8", DecodeRegMemToReg(0x8B, 0x41), lit8(0xDB), "mov ax, [bx + di - 37]", "mov ax, [bx + di + 219]"},
		{"negative displacement 16", DecodeRegMemToReg(0x89, 0x8C), lit16(0xFFD4), "mov [si - 44], cx", "mov [si + 65492], cx"},
		{"store", DecodeRegMemToReg(0x89, 0x09), nil, "mov [bx + di], cx", "mov [bx + di], cx"},
		{"direct address", DecodeRegMemToReg(0x8B, 0x1E), lit16(0), "mov bx, [0]", "mov bx, [0]"},
		{"direct address store", DecodeRegMemToReg(0x89, 0x1E), lit16(0xFFFF), "mov [65535], bx", "mov [65535], bx"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			instr := test.form.Instruction(test.trailing)

			assert.Equal(t, test.signed, instr.Format(DefaultFormatOptions))
			assert.Equal(t, test.signed, instr.String())
			assert.Equal(t, test.unsigned, instr.Format(unsigned))
		})
	}
}

func TestLiteral(t *testing.T) {
	assert.Equal(t, int16(-1), Literal8(0xFF).Signed())
	assert.Equal(t, uint16(0xFF), Literal8(0xFF).Unsigned())
	assert.Equal(t, int16(-3948), Literal16(61588).Signed())
	assert.Equal(t, 3948, Literal16(61588).Magnitude(DefaultFormatOptions))
	assert.Equal(t, 61588, Literal16(61588).Magnitude(unsigned))
	assert.True(t, Literal16(61588).IsNegative(DefaultFormatOptions))
	assert.False(t, Literal16(61588).IsNegative(unsigned))
	assert.True(t, Literal8(0).IsZero())
}

func TestOperandKinds(t *testing.T) {
	assert.Equal(t, "Register", RegisterOperand{}.Kind().String())
	assert.Equal(t, "DirectAddress", DirectAddressOperand{}.Kind().String())
	assert.Equal(t, "EffectiveAddress", EffectiveAddressOperand{}.Kind().String())
	assert.Equal(t, "Immediate", ImmediateOperand{}.Kind().String())
}

func TestDescribe(t *testing.T) {
	doc := Describe()

	require.Len(t, doc.Encodings, int(TOTAL_FORMS))
	assert.Equal(t, "100010", doc.Encodings[FormKind_RegMemToReg].Pattern)
	assert.Len(t, doc.Encodings[FormKind_RegMemToReg].ModRM, 3)
	assert.Equal(t, "1011", doc.Encodings[FormKind_ImmediateToReg].Pattern)
	assert.Empty(t, doc.Encodings[FormKind_ImmediateToReg].ModRM)
	assert.Equal(t, []string{"ax", "cx", "dx", "bx", "sp", "bp", "si", "di"}, doc.Registers["word"])
	assert.Equal(t, "bp + di", doc.Equations[3])
}

func TestDocString(t *testing.T) {
	doc := DocString()

	assert.Contains(t, doc, "100010xx  Register/memory to/from register move (mov)")
	assert.Contains(t, doc, "1011xxxx  Immediate to register move (mov)")
	assert.Contains(t, doc, "  110: bp\n")
	assert.Contains(t, doc, "  011: bl / bx\n")
}
