package listing

import (
	"bytes"
	"errors"
	"testing"

	"github.com/Manu343726/sim8086/pkg/hw/i8086/decoder"
	"github.com/Manu343726/sim8086/pkg/hw/i8086/instructions"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, buf []byte, policy decoder.UnsupportedOpcodePolicy) *decoder.Result {
	t.Helper()

	result, err := decoder.NewDecoder(decoder.Options{OnUnsupported: policy}).Decode(buf)
	require.NoError(t, err)

	return result
}

func TestWrite_Plain(t *testing.T) {
	result := decode(t, []byte{0x89, 0xD9, 0xB5, 0xF4}, decoder.UnsupportedOpcodePolicy_Abort)
	var out bytes.Buffer

	err := Write(&out, result, Options{
		Format: instructions.DefaultFormatOptions,
		Header: true,
	})
	require.NoError(t, err)

	assert.Equal(t, "bits 16\nmov cx, bx\nmov ch, -12\n", out.String())
}

func TestWrite_Unsigned_NoHeader(t *testing.T) {
	result := decode(t, []byte{0xB5, 0xF4}, decoder.UnsupportedOpcodePolicy_Abort)
	var out bytes.Buffer

	require.NoError(t, Write(&out, result, Options{}))

	assert.Equal(t, "mov ch, 244\n", out.String())
}

func TestWrite_Addresses(t *testing.T) {
	result := decode(t, []byte{0x89, 0xD9, 0x8A, 0x80, 0x87, 0x13}, decoder.UnsupportedOpcodePolicy_Abort)
	var out bytes.Buffer

	require.NoError(t, Write(&out, result, Options{Format: instructions.DefaultFormatOptions, Addresses: true}))

	assert.Equal(t, ""+
		"0000  89d9      mov cx, bx\n"+
		"0002  8a808713  mov al, [bx + si + 4999]\n",
		out.String())
}

func TestWrite_SkippedBytesInStreamOrder(t *testing.T) {
	result := decode(t, []byte{0x89, 0xD9, 0x90, 0xB1, 0x0C}, decoder.UnsupportedOpcodePolicy_Skip)
	var out bytes.Buffer

	require.NoError(t, Write(&out, result, Options{Format: instructions.DefaultFormatOptions, Header: true}))

	assert.Equal(t, ""+
		"bits 16\n"+
		"mov cx, bx\n"+
		"; unsupported opcode 0x90 skipped\n"+
		"mov cl, 12\n",
		out.String())
}

func TestWriter_Colored(t *testing.T) {
	result := decode(t, []byte{0x8B, 0x1E, 0x00, 0x00, 0xB1, 0x0C}, decoder.UnsupportedOpcodePolicy_Abort)
	var out bytes.Buffer

	writer := NewWriter(&out, Options{Format: instructions.DefaultFormatOptions, Style: StyleColored})
	require.NoError(t, writer.WriteResult(result))

	p := newPalette(StyleColored)
	expected := p.mnemonic.Sprint("mov") + " " + p.register.Sprint("bx") + ", " + p.memory.Sprint("[0]") + "\n" +
		p.mnemonic.Sprint("mov") + " " + p.register.Sprint("cl") + ", " + p.immediate.Sprint("12") + "\n"

	assert.Equal(t, expected, out.String())
	assert.Contains(t, out.String(), "\x1b[")
}

func TestWriter_FormatInstruction_Plain(t *testing.T) {
	result := decode(t, []byte{0x88, 0x6E, 0x00}, decoder.UnsupportedOpcodePolicy_Abort)

	writer := NewWriter(&bytes.Buffer{}, Options{Format: instructions.DefaultFormatOptions, Style: StylePlain})

	assert.Equal(t, "mov [bp], ch", writer.FormatInstruction(result.Instructions[0].Instruction))
}

type failingWriter struct{}

var errWrite = errors.New("write failed")

func (failingWriter) Write([]byte) (int, error) {
	return 0, errWrite
}

func TestWrite_PropagatesWriterErrors(t *testing.T) {
	result := decode(t, []byte{0x89, 0xD9}, decoder.UnsupportedOpcodePolicy_Abort)

	assert.ErrorIs(t, Write(failingWriter{}, result, Options{Header: true}), errWrite)
	assert.ErrorIs(t, Write(failingWriter{}, result, Options{}), errWrite)
}
