package decoder

import (
	"errors"
	"log/slog"
	"strings"

	"github.com/Manu343726/sim8086/pkg/utils"
)

// What the decoder does when an instruction starts with an unrecognized opcode byte
type UnsupportedOpcodePolicy uint

const (
	// Stop decoding and return a *DecodeError wrapping ErrUnsupportedOpcode
	UnsupportedOpcodePolicy_Abort UnsupportedOpcodePolicy = iota
	// Record the byte in Result.Skipped and continue decoding at the next byte
	UnsupportedOpcodePolicy_Skip
)

func (p UnsupportedOpcodePolicy) String() string {
	switch p {
	case UnsupportedOpcodePolicy_Abort:
		return "abort"
	case UnsupportedOpcodePolicy_Skip:
		return "skip"
	}

	panic("unreachable")
}

var ErrInvalidPolicy = errors.New("invalid unsupported opcode policy")

// Parses a policy name ("abort" or "skip")
func ParseUnsupportedOpcodePolicy(name string) (UnsupportedOpcodePolicy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "abort":
		return UnsupportedOpcodePolicy_Abort, nil
	case "skip":
		return UnsupportedOpcodePolicy_Skip, nil
	}

	return 0, utils.MakeError(ErrInvalidPolicy, "'%v', expected 'abort' or 'skip'", name)
}

// Decoder settings
type Options struct {
	// Defaults to UnsupportedOpcodePolicy_Abort
	OnUnsupported UnsupportedOpcodePolicy

	// Optional. Decoded instructions are logged at debug level, skipped bytes at warning level
	Logger *slog.Logger
}

func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}

	return slog.New(slog.DiscardHandler)
}
