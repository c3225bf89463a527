package decoder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestByteCursor_Read(t *testing.T) {
	c := NewByteCursor([]byte{0x8B, 0x1E, 0x34, 0x12})

	assert.Equal(t, 4, c.Len())
	assert.False(t, c.Exhausted())

	b, err := c.ReadByte()
	require.NoError(t, err)
	assert.Equal(t, byte(0x8B), b)

	bytes, err := c.Read(1)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x1E}, bytes)

	value, err := c.ReadUint16()
	require.NoError(t, err)
	assert.Equal(t, uint16(0x1234), value)

	assert.True(t, c.Exhausted())
	assert.Equal(t, 0, c.Remaining())
	assert.Equal(t, []byte{0x1E, 0x34, 0x12}, c.Since(1))
}

func TestByteCursor_ReadPastEnd(t *testing.T) {
	c := NewByteCursor([]byte{0x87})

	_, err := c.ReadUint16()
	assert.ErrorIs(t, err, ErrTruncatedInput)
	assert.Equal(t, 0, c.Position(), "failed reads must not advance the cursor")

	_, err = c.ReadByte()
	require.NoError(t, err)

	_, err = c.ReadByte()
	assert.ErrorIs(t, err, ErrTruncatedInput)
	assert.Equal(t, 1, c.Position())
}

func TestByteCursor_Skip(t *testing.T) {
	c := NewByteCursor([]byte{1, 2, 3})

	c.Skip(2)
	assert.Equal(t, 2, c.Position())

	c.Skip(5)
	assert.Equal(t, 3, c.Position())
	assert.True(t, c.Exhausted())
}
