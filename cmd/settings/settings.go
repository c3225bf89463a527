// Package settings resolves the CLI configuration from flags, environment and config file through viper
package settings

import (
	"errors"
	"log/slog"
	"strings"

	"github.com/Manu343726/sim8086/pkg/hw/i8086/decoder"
	"github.com/Manu343726/sim8086/pkg/hw/i8086/instructions"
	"github.com/Manu343726/sim8086/pkg/hw/i8086/listing"
	"github.com/Manu343726/sim8086/pkg/utils"
	"github.com/spf13/viper"
)

// Configuration keys
const (
	KeySigned        = "decode.signed"
	KeyOnUnsupported = "decode.on-unsupported"
	KeyHeader        = "decode.header"
	KeyAddresses     = "output.addresses"
	KeyColor         = "output.color"
	KeyLogLevel      = "log.level"
	KeyLogFile       = "log.file"
)

// Environment variables are SIM8086_<KEY>, with dots and dashes replaced by underscores
const EnvPrefix = "SIM8086"

// Sets the default value of every key
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeySigned, true)
	v.SetDefault(KeyOnUnsupported, decoder.UnsupportedOpcodePolicy_Abort.String())
	v.SetDefault(KeyHeader, true)
	v.SetDefault(KeyAddresses, false)
	v.SetDefault(KeyColor, ColorMode_Auto.String())
	v.SetDefault(KeyLogLevel, "warn")
	v.SetDefault(KeyLogFile, "")
}

// Enables SIM8086_ environment variables
func BindEnv(v *viper.Viper) {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
}

// When colored output is used
type ColorMode uint

const (
	// Colored only if the output is a terminal
	ColorMode_Auto ColorMode = iota
	ColorMode_Always
	ColorMode_Never
)

func (m ColorMode) String() string {
	switch m {
	case ColorMode_Auto:
		return "auto"
	case ColorMode_Always:
		return "always"
	case ColorMode_Never:
		return "never"
	}

	panic("unreachable")
}

var ErrInvalidSetting = errors.New("invalid setting")

func ParseColorMode(name string) (ColorMode, error) {
	for _, mode := range []ColorMode{ColorMode_Auto, ColorMode_Always, ColorMode_Never} {
		if strings.EqualFold(strings.TrimSpace(name), mode.String()) {
			return mode, nil
		}
	}

	return 0, utils.MakeError(ErrInvalidSetting, "%v: '%v', expected auto, always or never", KeyColor, name)
}

// Parses a slog level name (debug, info, warn, error)
func ParseLogLevel(name string) (slog.Level, error) {
	var level slog.Level

	if err := level.UnmarshalText([]byte(strings.TrimSpace(name))); err != nil {
		return 0, utils.MakeError(ErrInvalidSetting, "%v: %w", KeyLogLevel, err)
	}

	return level, nil
}

// Resolved configuration
type Settings struct {
	Signed        bool
	OnUnsupported decoder.UnsupportedOpcodePolicy
	Header        bool
	Addresses     bool
	Color         ColorMode
	LogLevel      slog.Level
	LogFile       string
}

// Reads and validates all settings
func Load(v *viper.Viper) (Settings, error) {
	policy, err := decoder.ParseUnsupportedOpcodePolicy(v.GetString(KeyOnUnsupported))
	if err != nil {
		return Settings{}, utils.MakeError(ErrInvalidSetting, "%v: %w", KeyOnUnsupported, err)
	}

	color, err := ParseColorMode(v.GetString(KeyColor))
	if err != nil {
		return Settings{}, err
	}

	level, err := ParseLogLevel(v.GetString(KeyLogLevel))
	if err != nil {
		return Settings{}, err
	}

	return Settings{
		Signed:        v.GetBool(KeySigned),
		OnUnsupported: policy,
		Header:        v.GetBool(KeyHeader),
		Addresses:     v.GetBool(KeyAddresses),
		Color:         color,
		LogLevel:      level,
		LogFile:       v.GetString(KeyLogFile),
	}, nil
}

// Literal rendering options
func (s Settings) FormatOptions() instructions.FormatOptions {
	return instructions.FormatOptions{Signed: s.Signed}
}

// Decoder options, logging through logger
func (s Settings) DecoderOptions(logger *slog.Logger) decoder.Options {
	return decoder.Options{
		OnUnsupported: s.OnUnsupported,
		Logger:        logger,
	}
}

// Listing options for an output that is a terminal or not
func (s Settings) ListingOptions(terminal bool) listing.Options {
	style := listing.StylePlain
	if s.Color == ColorMode_Always || (s.Color == ColorMode_Auto && terminal) {
		style = listing.StyleColored
	}

	return listing.Options{
		Format:    s.FormatOptions(),
		Header:    s.Header,
		Addresses: s.Addresses,
		Style:     style,
	}
}
