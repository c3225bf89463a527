package instructions

import (
	"fmt"

	"github.com/Manu343726/sim8086/pkg/hw/i8086/registers"
)

// A decoded instruction operand. Implemented by RegisterOperand, DirectAddressOperand,
// EffectiveAddressOperand and ImmediateOperand
type Operand interface {
	// Returns the kind of operand
	Kind() OperandKind

	// Renders the operand as assembly text
	Format(options FormatOptions) string
}

// A register operand (ax, cl, ...)
type RegisterOperand struct {
	Register registers.RegisterDescriptor
}

func (o RegisterOperand) Kind() OperandKind {
	return OperandKind_Register
}

func (o RegisterOperand) Format(options FormatOptions) string {
	return o.Register.Name
}

func (o RegisterOperand) String() string {
	return o.Format(DefaultFormatOptions)
}

// A memory operand given as an absolute 16 bit address, with no register component
type DirectAddressOperand struct {
	Address uint16
}

func (o DirectAddressOperand) Kind() OperandKind {
	return OperandKind_DirectAddress
}

// Addresses are always rendered unsigned
func (o DirectAddressOperand) Format(options FormatOptions) string {
	return fmt.Sprintf("[%v]", o.Address)
}

func (o DirectAddressOperand) String() string {
	return o.Format(DefaultFormatOptions)
}

// A memory operand computed from base registers plus an optional displacement
type EffectiveAddressOperand struct {
	Equation registers.AddressEquation

	// nil if the encoding carried no displacement bytes
	Displacement *Literal
}

func (o EffectiveAddressOperand) Kind() OperandKind {
	return OperandKind_EffectiveAddress
}

// Zero displacements are omitted, so [bp] encoded with mod = 01 renders as [bp]
func (o EffectiveAddressOperand) Format(options FormatOptions) string {
	if o.Displacement == nil || o.Displacement.IsZero() {
		return fmt.Sprintf("[%v]", o.Equation)
	}

	sign := "+"
	if o.Displacement.IsNegative(options) {
		sign = "-"
	}

	return fmt.Sprintf("[%v %v %v]", o.Equation, sign, o.Displacement.Magnitude(options))
}

func (o EffectiveAddressOperand) String() string {
	return o.Format(DefaultFormatOptions)
}

// An immediate value operand
type ImmediateOperand struct {
	Value Literal
}

func (o ImmediateOperand) Kind() OperandKind {
	return OperandKind_Immediate
}

func (o ImmediateOperand) Format(options FormatOptions) string {
	return o.Value.Format(options)
}

func (o ImmediateOperand) String() string {
	return o.Format(DefaultFormatOptions)
}
