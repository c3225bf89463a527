package instructions

// Represents the kind of operand (Register, memory address, immediate)
type OperandKind uint

const (
	OperandKind_Register OperandKind = iota
	OperandKind_DirectAddress
	OperandKind_EffectiveAddress
	OperandKind_Immediate
)

func (o OperandKind) String() string {
	switch o {
	case OperandKind_Register:
		return "Register"
	case OperandKind_DirectAddress:
		return "DirectAddress"
	case OperandKind_EffectiveAddress:
		return "EffectiveAddress"
	case OperandKind_Immediate:
		return "Immediate"
	}

	panic("unreachable")
}
