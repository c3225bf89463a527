package decoder

import (
	"encoding/binary"

	"github.com/Manu343726/sim8086/pkg/utils"
)

// Read position over a byte buffer. The position only moves forward and never exceeds the buffer length
type ByteCursor struct {
	bytes    []byte
	position int
}

// Creates a cursor at the start of the buffer. The buffer is never modified
func NewByteCursor(bytes []byte) *ByteCursor {
	return &ByteCursor{
		bytes: bytes,
	}
}

// Returns the offset of the next byte to read
func (c *ByteCursor) Position() int {
	return c.position
}

// Returns the total buffer length
func (c *ByteCursor) Len() int {
	return len(c.bytes)
}

// Returns the number of bytes left to read
func (c *ByteCursor) Remaining() int {
	return len(c.bytes) - c.position
}

// Returns true if all bytes have been read
func (c *ByteCursor) Exhausted() bool {
	return c.position >= len(c.bytes)
}

// Returns the bytes in the range [from, current position)
func (c *ByteCursor) Since(from int) []byte {
	return c.bytes[from:c.position]
}

// Reads n bytes and advances the cursor. Fails without advancing if fewer than n bytes remain
func (c *ByteCursor) Read(n int) ([]byte, error) {
	if n > c.Remaining() {
		return nil, utils.MakeError(ErrTruncatedInput, "need %v bytes at offset %v, %v left", n, c.position, c.Remaining())
	}

	result := c.bytes[c.position : c.position+n]
	c.position += n
	return result, nil
}

// Reads one byte
func (c *ByteCursor) ReadByte() (byte, error) {
	b, err := c.Read(1)
	if err != nil {
		return 0, err
	}

	return b[0], nil
}

// Reads a little endian 16 bit value
func (c *ByteCursor) ReadUint16() (uint16, error) {
	b, err := c.Read(2)
	if err != nil {
		return 0, err
	}

	return binary.LittleEndian.Uint16(b), nil
}

// Advances the cursor n bytes, at most up to the end of the buffer
func (c *ByteCursor) Skip(n int) {
	c.position = min(c.position+n, len(c.bytes))
}
