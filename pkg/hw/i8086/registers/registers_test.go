package registers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegister(t *testing.T) {
	tests := []struct {
		index uint8
		width Width
		name  string
	}{
		{0b000, Width_Byte, "al"},
		{0b001, Width_Byte, "cl"},
		{0b100, Width_Byte, "ah"},
		{0b111, Width_Byte, "bh"},
		{0b000, Width_Word, "ax"},
		{0b011, Width_Word, "bx"},
		{0b100, Width_Word, "sp"},
		{0b111, Width_Word, "di"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			register := Register(test.index, test.width)

			assert.Equal(t, test.name, register.Name)
			assert.Equal(t, test.index, register.Index)
			assert.Equal(t, test.width, register.Width)
		})
	}
}

func TestRegister_PanicsOnIndexOutOfRange(t *testing.T) {
	assert.Panics(t, func() { Register(8, Width_Word) })
}

func TestAllRegisters(t *testing.T) {
	names := func(width Width) []string {
		result := []string{}
		for _, register := range AllRegisters(width) {
			result = append(result, register.Name)
		}
		return result
	}

	assert.Equal(t, []string{"al", "cl", "dl", "bl", "ah", "ch", "dh", "bh"}, names(Width_Byte))
	assert.Equal(t, []string{"ax", "cx", "dx", "bx", "sp", "bp", "si", "di"}, names(Width_Word))
}

func TestRegisterByName(t *testing.T) {
	register, err := RegisterByName("si")
	require.NoError(t, err)
	assert.Equal(t, uint8(6), register.Index)
	assert.Equal(t, Width_Word, register.Width)

	_, err = RegisterByName("eax")
	assert.ErrorIs(t, err, ErrUnknownRegister)
}

func TestWidth(t *testing.T) {
	assert.Equal(t, Width_Byte, WidthFromBit(0))
	assert.Equal(t, Width_Word, WidthFromBit(1))
	assert.Equal(t, Width_Word, WidthFromBit(0b11))
	assert.Equal(t, 1, Width_Byte.Bytes())
	assert.Equal(t, 16, Width_Word.Bits())
}

func TestEquation(t *testing.T) {
	expected := []string{"bx + si", "bx + di", "bp + si", "bp + di", "si", "di", "bp", "bx"}

	for rm, equation := range AllEquations() {
		assert.Equal(t, uint8(rm), equation.RM)
		assert.Equal(t, expected[rm], equation.String())
	}
}

func TestEquation_DoesNotShareTables(t *testing.T) {
	equation := Equation(0)
	equation.Terms[0] = "ax"

	assert.Equal(t, "bx + si", Equation(0).String())
}
