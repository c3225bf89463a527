package instructions

import (
	"fmt"
	"strings"

	"github.com/Manu343726/sim8086/pkg/hw/i8086/registers"
	"github.com/Manu343726/sim8086/pkg/utils"
)

// Serializable summary of an encoding
type EncodingDocumentation struct {
	Form        string            `yaml:"form"`
	Mnemonic    string            `yaml:"mnemonic"`
	Pattern     string            `yaml:"pattern"`
	Description string            `yaml:"description"`
	Fields      []FieldDescriptor `yaml:"fields"`
	ModRM       []FieldDescriptor `yaml:"modrm,omitempty"`
}

// Serializable summary of all the tables the decoder works with
type Documentation struct {
	Encodings []EncodingDocumentation `yaml:"encodings"`
	Registers map[string][]string     `yaml:"registers"`
	Equations []string                `yaml:"equations"`
}

// Returns the documentation of all recognized encodings and lookup tables
func Describe() Documentation {
	doc := Documentation{
		Registers: map[string][]string{},
	}

	for _, encoding := range Encodings {
		entry := EncodingDocumentation{
			Form:        encoding.Kind.String(),
			Mnemonic:    encoding.OpCode.Mnemonic(),
			Pattern:     encoding.PatternString(),
			Description: encoding.Description,
			Fields:      encoding.Fields,
		}

		if encoding.HasModRM {
			entry.ModRM = ModRMFields
		}

		doc.Encodings = append(doc.Encodings, entry)
	}

	for _, width := range []registers.Width{registers.Width_Byte, registers.Width_Word} {
		doc.Registers[width.String()] = utils.Map(registers.AllRegisters(width), func(r registers.RegisterDescriptor) string {
			return r.Name
		})
	}

	doc.Equations = utils.Map(registers.AllEquations(), func(e registers.AddressEquation) string {
		return e.String()
	})

	return doc
}

// Returns a human readable description of all recognized encodings and lookup tables
func DocString() string {
	var builder strings.Builder

	builder.WriteString("Encodings:\n")
	for _, encoding := range Encodings {
		fmt.Fprintf(&builder, "  %v%v  %v (%v)\n",
			encoding.PatternString(),
			strings.Repeat("x", utils.BitsPerByte-encoding.PatternBits),
			encoding.Description,
			encoding.OpCode)

		fields := encoding.Fields
		if encoding.HasModRM {
			fields = append(append([]FieldDescriptor{}, fields...), ModRMFields...)
		}

		for _, field := range fields {
			fmt.Fprintf(&builder, "    %-4v bits %v-%v: %v\n", field.Name, field.Position+field.Width-1, field.Position, field.Description)
		}
	}

	builder.WriteString("\nRegisters (w=0 / w=1):\n")
	for i := 0; i < registers.TotalRegisters; i++ {
		fmt.Fprintf(&builder, "  %v: %v / %v\n",
			utils.FormatUintBinary(uint64(i), 3),
			registers.Register(uint8(i), registers.Width_Byte),
			registers.Register(uint8(i), registers.Width_Word))
	}

	builder.WriteString("\nEffective address equations (mod != 11):\n")
	for _, equation := range registers.AllEquations() {
		fmt.Fprintf(&builder, "  %v: %v\n", utils.FormatUintBinary(uint64(equation.RM), 3), equation)
	}

	return builder.String()
}
