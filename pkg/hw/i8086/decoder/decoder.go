// Package decoder turns a byte stream of 8086 machine code into decoded mov instructions.
//
// Instructions have variable length: the first byte selects the encoding, which decides how many
// mod/reg/rm, displacement and data bytes follow. Decoding is a sequential pass over an immutable
// buffer and holds no shared state, so a Decoder can be reused and called from multiple goroutines.
package decoder

import (
	"bytes"
	"errors"
	"io"
	"iter"
	"log/slog"

	"github.com/Manu343726/sim8086/pkg/hw/i8086/instructions"
	"github.com/Manu343726/sim8086/pkg/utils"
)

// A successfully decoded instruction and where it came from
type Decoded struct {
	// Byte offset of the first instruction byte
	Offset int
	// All bytes consumed by the instruction
	Bytes []byte
	// Bitfields extracted from the leading bytes
	Form        instructions.InstructionForm
	Instruction instructions.Instruction
}

// Renders the instruction as assembly text
func (d Decoded) Format(options instructions.FormatOptions) string {
	return d.Instruction.Format(options)
}

// An unrecognized opcode byte skipped by UnsupportedOpcodePolicy_Skip
type Skipped struct {
	Offset int
	Opcode byte
}

// Output of a whole buffer decode
type Result struct {
	// Decoded instructions in stream order
	Instructions []Decoded
	// Unrecognized bytes, in stream order. Always empty with UnsupportedOpcodePolicy_Abort
	Skipped []Skipped
}

// Returns one line of assembly text per decoded instruction
func (r *Result) Lines(options instructions.FormatOptions) []string {
	return utils.Map(r.Instructions, func(d Decoded) string {
		return d.Format(options)
	})
}

type Decoder struct {
	options Options
	logger  *slog.Logger
}

func NewDecoder(options Options) *Decoder {
	return &Decoder{
		options: options,
		logger:  options.logger(),
	}
}

// Decodes buf with default options (abort on unsupported opcodes, no logging)
func Decode(buf []byte) (*Result, error) {
	return NewDecoder(Options{}).Decode(buf)
}

// Decodes the next instruction at the cursor position.
//
// Returns io.EOF if the cursor is exhausted, or a *DecodeError. On ErrUnsupportedOpcode the opcode
// byte has been consumed, so the caller can keep decoding from the next byte.
func (d *Decoder) Next(c *ByteCursor) (Decoded, error) {
	if c.Exhausted() {
		return Decoded{}, io.EOF
	}

	start := c.Position()
	first, err := c.ReadByte()
	if err != nil {
		return Decoded{}, err
	}

	fail := func(err error) (Decoded, error) {
		return Decoded{}, &DecodeError{Offset: start, Opcode: first, Err: err}
	}

	encoding, ok := instructions.Classify(first)
	if !ok {
		return fail(utils.MakeError(ErrUnsupportedOpcode, "%v matches no recognized encoding", utils.FormatUintBinary(uint64(first), utils.BitsPerByte)))
	}

	var form instructions.InstructionForm

	switch encoding.Kind {
	case instructions.FormKind_RegMemToReg:
		second, err := c.ReadByte()
		if err != nil {
			return fail(utils.MakeError(err, "missing mod/reg/rm byte of %v", encoding.Description))
		}
		form = instructions.DecodeRegMemToReg(first, second)
	case instructions.FormKind_ImmediateToReg:
		form = instructions.DecodeImmediateToReg(first)
	default:
		panic("unreachable")
	}

	trailing, err := readTrailing(c, form.TrailingBytes())
	if err != nil {
		return fail(utils.MakeError(err, "missing displacement/data bytes of %v", encoding.Description))
	}

	return Decoded{
		Offset:      start,
		Bytes:       bytes.Clone(c.Since(start)),
		Form:        form,
		Instruction: form.Instruction(trailing),
	}, nil
}

func readTrailing(c *ByteCursor, n int) (*instructions.Literal, error) {
	var literal instructions.Literal

	switch n {
	case 0:
		return nil, nil
	case 1:
		value, err := c.ReadByte()
		if err != nil {
			return nil, err
		}
		literal = instructions.Literal8(value)
	case 2:
		value, err := c.ReadUint16()
		if err != nil {
			return nil, err
		}
		literal = instructions.Literal16(value)
	default:
		panic("unreachable")
	}

	return &literal, nil
}

// Whether err is an unsupported opcode error that the decoder steps over
func (d *Decoder) Skips(err error) bool {
	var decodeErr *DecodeError
	return d.options.OnUnsupported == UnsupportedOpcodePolicy_Skip &&
		errors.As(err, &decodeErr) && decodeErr.IsUnsupportedOpcode()
}

// Returns a lazy sequence of the instructions in buf.
//
// Every failure is yielded as a *DecodeError. With UnsupportedOpcodePolicy_Skip, unsupported opcode
// errors are yielded and the sequence continues at the next byte; any other error ends the sequence.
func (d *Decoder) All(buf []byte) iter.Seq2[Decoded, error] {
	return func(yield func(Decoded, error) bool) {
		c := NewByteCursor(buf)

		for !c.Exhausted() {
			decoded, err := d.Next(c)

			if err != nil {
				if !yield(Decoded{}, err) || !d.Skips(err) {
					return
				}
				continue
			}

			if !yield(decoded, nil) {
				return
			}
		}
	}
}

// Decodes the whole buffer.
//
// On failure returns the instructions decoded so far together with the *DecodeError.
// Reaching the end of buf at an instruction boundary is success.
func (d *Decoder) Decode(buf []byte) (*Result, error) {
	result := &Result{}

	for decoded, err := range d.All(buf) {
		if err != nil {
			var decodeErr *DecodeError
			if d.Skips(err) && errors.As(err, &decodeErr) {
				d.logger.Warn("skipping unsupported opcode",
					slog.Int("offset", decodeErr.Offset),
					slog.String("opcode", utils.FormatUintHex(uint64(decodeErr.Opcode), 2)))
				result.Skipped = append(result.Skipped, Skipped{Offset: decodeErr.Offset, Opcode: decodeErr.Opcode})
				continue
			}

			d.logger.Error("decode failed", slog.Any("error", err))
			return result, err
		}

		d.logger.Debug("decoded instruction",
			slog.Int("offset", decoded.Offset),
			slog.String("bytes", utils.FormatBytesHex(decoded.Bytes)),
			slog.String("form", decoded.Form.Encoding().Kind.String()),
			slog.String("text", decoded.Instruction.String()))

		result.Instructions = append(result.Instructions, decoded)
	}

	return result, nil
}
