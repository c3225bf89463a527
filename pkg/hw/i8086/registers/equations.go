package registers

import (
	"strings"

	"github.com/Manu343726/sim8086/pkg/utils"
)

// rm field value that selects a direct address instead of [bp] when mod = 00
const DirectAddressRM uint8 = 0b110

// Base registers summed to compute an effective address
type AddressEquation struct {
	// Value of the rm field selecting the equation
	RM uint8

	// Registers added together, in assembly order
	Terms []string
}

func (e AddressEquation) String() string {
	return strings.Join(e.Terms, " + ")
}

var addressEquations = [TotalRegisters][]string{
	{"bx", "si"},
	{"bx", "di"},
	{"bp", "si"},
	{"bp", "di"},
	{"si"},
	{"di"},
	{"bp"},
	{"bx"},
}

// Returns the effective address equation selected by a 3 bit rm field
func Equation(rm uint8) AddressEquation {
	if rm >= TotalRegisters {
		panic(utils.MakeError(ErrUnknownRegister, "rm value %v does not fit in 3 bits", rm))
	}

	terms := make([]string, len(addressEquations[rm]))
	copy(terms, addressEquations[rm])

	return AddressEquation{
		RM:    rm,
		Terms: terms,
	}
}

// Returns all effective address equations, ordered by rm value
func AllEquations() []AddressEquation {
	return utils.Iota(TotalRegisters, func(i int) AddressEquation {
		return Equation(uint8(i))
	})
}
