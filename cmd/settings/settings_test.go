package settings

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/Manu343726/sim8086/pkg/hw/i8086/decoder"
	"github.com/Manu343726/sim8086/pkg/hw/i8086/listing"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newViper() *viper.Viper {
	v := viper.New()
	SetDefaults(v)
	return v
}

func TestLoad_Defaults(t *testing.T) {
	s, err := Load(newViper())
	require.NoError(t, err)

	assert.Equal(t, Settings{
		Signed:        true,
		OnUnsupported: decoder.UnsupportedOpcodePolicy_Abort,
		Header:        true,
		Addresses:     false,
		Color:         ColorMode_Auto,
		LogLevel:      slog.LevelWarn,
		LogFile:       "",
	}, s)
}

func TestLoad_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sim8086.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
decode:
  signed: false
  on-unsupported: skip
output:
  color: never
  addresses: true
log:
  level: debug
`), 0644))

	v := newViper()
	v.SetConfigFile(path)
	require.NoError(t, v.ReadInConfig())

	s, err := Load(v)
	require.NoError(t, err)

	assert.False(t, s.Signed)
	assert.Equal(t, decoder.UnsupportedOpcodePolicy_Skip, s.OnUnsupported)
	assert.Equal(t, ColorMode_Never, s.Color)
	assert.True(t, s.Addresses)
	assert.True(t, s.Header)
	assert.Equal(t, slog.LevelDebug, s.LogLevel)
}

func TestLoad_Environment(t *testing.T) {
	t.Setenv("SIM8086_DECODE_ON_UNSUPPORTED", "skip")
	t.Setenv("SIM8086_DECODE_SIGNED", "false")

	v := newViper()
	BindEnv(v)

	s, err := Load(v)
	require.NoError(t, err)

	assert.Equal(t, decoder.UnsupportedOpcodePolicy_Skip, s.OnUnsupported)
	assert.False(t, s.Signed)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		key   string
		value string
	}{
		{KeyOnUnsupported, "ignore"},
		{KeyColor, "sometimes"},
		{KeyLogLevel, "verbose"},
	}

	for _, test := range tests {
		t.Run(test.key, func(t *testing.T) {
			v := newViper()
			v.Set(test.key, test.value)

			_, err := Load(v)
			assert.ErrorIs(t, err, ErrInvalidSetting)
		})
	}
}

func TestListingOptions_Style(t *testing.T) {
	s := Settings{Color: ColorMode_Auto}
	assert.Equal(t, listing.StyleColored, s.ListingOptions(true).Style)
	assert.Equal(t, listing.StylePlain, s.ListingOptions(false).Style)

	s.Color = ColorMode_Always
	assert.Equal(t, listing.StyleColored, s.ListingOptions(false).Style)

	s.Color = ColorMode_Never
	assert.Equal(t, listing.StylePlain, s.ListingOptions(true).Style)
}

func TestDecoderOptions(t *testing.T) {
	s := Settings{OnUnsupported: decoder.UnsupportedOpcodePolicy_Skip, Signed: false}

	assert.Equal(t, decoder.UnsupportedOpcodePolicy_Skip, s.DecoderOptions(nil).OnUnsupported)
	assert.False(t, s.FormatOptions().Signed)
}
