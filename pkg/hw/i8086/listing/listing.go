// Package listing writes decoded 8086 instructions as assembly listings.
//
// A listing starts with a "bits 16" directive and holds one instruction per line, so it can be fed
// back to an assembler. Output can be plain text or colorized with ANSI escape codes.
package listing

import (
	"fmt"
	"io"
	"sort"

	"github.com/Manu343726/sim8086/pkg/hw/i8086/decoder"
	"github.com/Manu343726/sim8086/pkg/hw/i8086/instructions"
	"github.com/Manu343726/sim8086/pkg/utils"
)

// FormatStyle controls the output style of a listing
type FormatStyle int

const (
	// StylePlain produces plain text output without colors
	StylePlain FormatStyle = iota
	// StyleColored produces colorized output using ANSI escape codes
	StyleColored
)

// Header written at the start of a listing
const Header = "bits 16"

// Listing settings
type Options struct {
	// Literal rendering
	Format instructions.FormatOptions
	// Write the "bits 16" directive first
	Header bool
	// Prefix each instruction with its offset and raw bytes
	Addresses bool
	Style     FormatStyle
}

// Writes listing lines to an io.Writer
type Writer struct {
	out     io.Writer
	options Options
	palette palette
}

func NewWriter(out io.Writer, options Options) *Writer {
	return &Writer{
		out:     out,
		options: options,
		palette: newPalette(options.Style),
	}
}

// Writes the listing header line
func (w *Writer) WriteHeader() error {
	_, err := fmt.Fprintln(w.out, w.palette.comment.Sprint(Header))
	return err
}

// Writes one instruction line
func (w *Writer) WriteInstruction(decoded decoder.Decoded) error {
	_, err := fmt.Fprintln(w.out, w.prefix(decoded.Offset, decoded.Bytes)+w.FormatInstruction(decoded.Instruction))
	return err
}

// Writes a comment line for a skipped byte
func (w *Writer) WriteSkipped(skipped decoder.Skipped) error {
	_, err := fmt.Fprintln(w.out, w.prefix(skipped.Offset, []byte{skipped.Opcode})+w.palette.comment.Sprint(SkippedComment(skipped)))
	return err
}

// Comment line text for a skipped byte
func SkippedComment(skipped decoder.Skipped) string {
	return fmt.Sprintf("; unsupported opcode %v skipped", utils.FormatUintHex(uint64(skipped.Opcode), 2))
}

// Writes a whole decode result: header, then instructions and skipped bytes in stream order
func (w *Writer) WriteResult(result *decoder.Result) error {
	if w.options.Header {
		if err := w.WriteHeader(); err != nil {
			return err
		}
	}

	type line struct {
		offset int
		write  func() error
	}

	lines := make([]line, 0, len(result.Instructions)+len(result.Skipped))

	for _, decoded := range result.Instructions {
		lines = append(lines, line{decoded.Offset, func() error { return w.WriteInstruction(decoded) }})
	}

	for _, skipped := range result.Skipped {
		lines = append(lines, line{skipped.Offset, func() error { return w.WriteSkipped(skipped) }})
	}

	sort.SliceStable(lines, func(i, j int) bool { return lines[i].offset < lines[j].offset })

	for _, l := range lines {
		if err := l.write(); err != nil {
			return err
		}
	}

	return nil
}

// Renders an instruction, colorizing the mnemonic and each operand by kind
func (w *Writer) FormatInstruction(instr instructions.Instruction) string {
	return fmt.Sprintf("%v %v, %v",
		w.palette.mnemonic.Sprint(instr.Mnemonic()),
		w.formatOperand(instr.Destination),
		w.formatOperand(instr.Source))
}

func (w *Writer) formatOperand(operand instructions.Operand) string {
	text := operand.Format(w.options.Format)

	switch operand.Kind() {
	case instructions.OperandKind_Register:
		return w.palette.register.Sprint(text)
	case instructions.OperandKind_Immediate:
		return w.palette.immediate.Sprint(text)
	case instructions.OperandKind_DirectAddress, instructions.OperandKind_EffectiveAddress:
		return w.palette.memory.Sprint(text)
	}

	panic("unreachable")
}

func (w *Writer) prefix(offset int, bytes []byte) string {
	if !w.options.Addresses {
		return ""
	}

	return w.palette.address.Sprintf("%04x  %-8s  ", offset, utils.FormatBytesHex(bytes))
}

// Writes a whole decode result to out
func Write(out io.Writer, result *decoder.Result, options Options) error {
	return NewWriter(out, options).WriteResult(result)
}
