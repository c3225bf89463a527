package decoder

import (
	"errors"
	"strconv"
	"strings"

	"github.com/Manu343726/sim8086/pkg/utils"
)

var ErrInvalidHex = errors.New("invalid hex bytes")

// Parses a textual byte listing such as "89 d9", "89d9" or "0x89, 0xd9".
// Tokens are separated by spaces or commas; a token without 0x prefix may hold several bytes.
func ParseHex(text string) ([]byte, error) {
	tokens := strings.FieldsFunc(text, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})

	result := []byte{}

	for _, token := range tokens {
		digits := strings.TrimPrefix(strings.TrimPrefix(token, "0x"), "0X")

		if len(digits) == 0 || len(digits)%2 != 0 {
			return nil, utils.MakeError(ErrInvalidHex, "'%v' must have an even, non zero number of hex digits", token)
		}

		if digits != token && len(digits) != 2 {
			return nil, utils.MakeError(ErrInvalidHex, "'%v' must be a single byte", token)
		}

		for i := 0; i < len(digits); i += 2 {
			value, err := strconv.ParseUint(digits[i:i+2], 16, 8)
			if err != nil {
				return nil, utils.MakeError(ErrInvalidHex, "'%v': %w", token, err)
			}

			result = append(result, byte(value))
		}
	}

	return result, nil
}
