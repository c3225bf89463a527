// Package registers contains the static tables the 8086 decoder uses to name registers
// and effective address equations.
package registers

import (
	"errors"

	"github.com/Manu343726/sim8086/pkg/utils"
)

// Number of registers addressable by a 3 bit reg/rm field
const TotalRegisters = 8

type RegisterDescriptor struct {
	// Assembly name of the register
	Name string

	// Value of the 3 bit reg/rm field selecting the register
	Index uint8

	// Size of the register
	Width Width

	// Register description (for documentation)
	Description string
}

func (d RegisterDescriptor) String() string {
	return d.Name
}

var ErrUnknownRegister = errors.New("unknown register")

var byteRegisters = [TotalRegisters]RegisterDescriptor{
	{Name: "al", Index: 0, Width: Width_Byte, Description: "Accumulator, low byte"},
	{Name: "cl", Index: 1, Width: Width_Byte, Description: "Count register, low byte"},
	{Name: "dl", Index: 2, Width: Width_Byte, Description: "Data register, low byte"},
	{Name: "bl", Index: 3, Width: Width_Byte, Description: "Base register, low byte"},
	{Name: "ah", Index: 4, Width: Width_Byte, Description: "Accumulator, high byte"},
	{Name: "ch", Index: 5, Width: Width_Byte, Description: "Count register, high byte"},
	{Name: "dh", Index: 6, Width: Width_Byte, Description: "Data register, high byte"},
	{Name: "bh", Index: 7, Width: Width_Byte, Description: "Base register, high byte"},
}

var wordRegisters = [TotalRegisters]RegisterDescriptor{
	{Name: "ax", Index: 0, Width: Width_Word, Description: "Accumulator"},
	{Name: "cx", Index: 1, Width: Width_Word, Description: "Count register"},
	{Name: "dx", Index: 2, Width: Width_Word, Description: "Data register"},
	{Name: "bx", Index: 3, Width: Width_Word, Description: "Base register"},
	{Name: "sp", Index: 4, Width: Width_Word, Description: "Stack pointer"},
	{Name: "bp", Index: 5, Width: Width_Word, Description: "Base pointer"},
	{Name: "si", Index: 6, Width: Width_Word, Description: "Source index"},
	{Name: "di", Index: 7, Width: Width_Word, Description: "Destination index"},
}

// Returns the register selected by a 3 bit reg/rm field and a width.
// Panics if index does not fit in 3 bits, since decoded fields never do.
func Register(index uint8, width Width) RegisterDescriptor {
	if index >= TotalRegisters {
		panic(utils.MakeError(ErrUnknownRegister, "register index %v does not fit in 3 bits", index))
	}

	switch width {
	case Width_Byte:
		return byteRegisters[index]
	case Width_Word:
		return wordRegisters[index]
	}

	panic("unreachable")
}

// Returns all registers of the given width, ordered by index
func AllRegisters(width Width) []RegisterDescriptor {
	return utils.Iota(TotalRegisters, func(i int) RegisterDescriptor {
		return Register(uint8(i), width)
	})
}

// Returns the register with the given name
func RegisterByName(name string) (RegisterDescriptor, error) {
	for _, width := range []Width{Width_Byte, Width_Word} {
		for _, register := range AllRegisters(width) {
			if register.Name == name {
				return register, nil
			}
		}
	}

	return RegisterDescriptor{}, utils.MakeError(ErrUnknownRegister, "'%v'", name)
}
