package decoder

import (
	"fmt"
	"strings"

	"github.com/Manu343726/sim8086/pkg/hw/i8086/instructions"
	"github.com/Manu343726/sim8086/pkg/utils"
)

// Generates ASCII frame diagrams of the bytes of a decoded instruction, showing every opcode,
// field, displacement and data bit, followed by the rendered instruction
func Explain(decoded Decoded, options instructions.FormatOptions, leftpad int) (string, error) {
	encoding := decoded.Form.Encoding()
	header := decoded.Form.HeaderBytes()

	if len(decoded.Bytes) != header+decoded.Form.TrailingBytes() {
		return "", utils.MakeError(ErrTruncatedInput, "instruction at offset %v has %v bytes, expected %v", decoded.Offset, len(decoded.Bytes), header+decoded.Form.TrailingBytes())
	}

	var builder strings.Builder

	first := decoded.Bytes[0]
	firstFields := append(fieldFrames(encoding.Fields, first), utils.AsciiFrameField{
		Name:  encoding.PatternString(),
		Begin: utils.BitsPerByte - encoding.PatternBits,
		Width: encoding.PatternBits,
	})

	if err := writeFrame(&builder, fmt.Sprintf("byte 0: opcode %v", utils.FormatUintHex(uint64(first), 2)), firstFields, leftpad); err != nil {
		return "", err
	}

	if encoding.HasModRM {
		second := decoded.Bytes[1]
		if err := writeFrame(&builder, fmt.Sprintf("byte 1: mod/reg/rm %v", utils.FormatUintHex(uint64(second), 2)), fieldFrames(instructions.ModRMFields, second), leftpad); err != nil {
			return "", err
		}
	}

	if trailing := decoded.Bytes[header:]; len(trailing) > 0 {
		name := "data"
		if encoding.HasModRM {
			name = "disp"
		}

		fields := []utils.AsciiFrameField{}
		for i, b := range trailing {
			part := "lo"
			if i > 0 {
				part = "hi"
			}
			fields = append(fields, utils.AsciiFrameField{
				Name:  fmt.Sprintf("%v-%v %v", name, part, utils.FormatUintBinary(uint64(b), utils.BitsPerByte)),
				Begin: utils.Bits(i),
				Width: utils.BitsPerByte,
			})
		}

		title := fmt.Sprintf("byte %v: %v", header, name)
		if len(trailing) > 1 {
			title = fmt.Sprintf("bytes %v-%v: %v (little endian)", header, header+len(trailing)-1, name)
		}
		if err := writeFrame(&builder, title, fields, leftpad); err != nil {
			return "", err
		}
	}

	fmt.Fprintf(&builder, "%v%v\n", strings.Repeat(" ", leftpad), decoded.Format(options))

	return builder.String(), nil
}

// Returns frame fields sorted by position, labeled with their name and binary value
func fieldFrames(fields []instructions.FieldDescriptor, b byte) []utils.AsciiFrameField {
	frames := make([]utils.AsciiFrameField, len(fields))

	for i, field := range fields {
		frames[i] = utils.AsciiFrameField{
			Name:  fmt.Sprintf("%v=%v", field.Name, utils.FormatUintBinary(uint64(field.Read(b)), field.Width)),
			Begin: field.Position,
			Width: field.Width,
		}
	}

	return frames
}

func writeFrame(builder *strings.Builder, title string, fields []utils.AsciiFrameField, leftpad int) error {
	frame, err := utils.AsciiFrame(fields, utils.Bits(1+fields[len(fields)-1].TopUnit()/utils.BitsPerByte), "bits", utils.AsciiFrameUnitLayout_RightToLeft, leftpad)
	if err != nil {
		return err
	}

	fmt.Fprintf(builder, "%v%v\n%v\n", strings.Repeat(" ", leftpad), title, frame)
	return nil
}
