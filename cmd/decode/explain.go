package decode

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/Manu343726/sim8086/cmd/settings"
	"github.com/Manu343726/sim8086/pkg/hw/i8086/decoder"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var ExplainCmd = &cobra.Command{
	Use:   "explain hex...",
	Short: "Show how machine code bytes are decoded",
	Long: `Decodes the given bytes and draws the opcode, fields, displacement and data bits
of every instruction, followed by the decoded instruction.

Bytes are given in hex, e.g. "sim8086 explain 89 d9" or "sim8086 explain 0x8a,0x80,0x87,0x13".`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := settings.Load(viper.GetViper())
		if err != nil {
			return err
		}

		input, err := decoder.ParseHex(strings.Join(args, " "))
		if err != nil {
			return err
		}

		return runExplain(s, input, cmd.OutOrStdout())
	},
}

// Writes the explanation of every instruction in input, stopping at the first decode error
func runExplain(s settings.Settings, input []byte, out io.Writer) error {
	d := decoder.NewDecoder(s.DecoderOptions(slog.Default()))
	first := true

	for decoded, err := range d.All(input) {
		if err != nil {
			if d.Skips(err) {
				fmt.Fprintf(out, "; %v\n\n", err)
				continue
			}

			return err
		}

		if !first {
			fmt.Fprintln(out)
		}
		first = false

		explanation, err := decoder.Explain(decoded, s.FormatOptions(), 2)
		if err != nil {
			return err
		}

		fmt.Fprintf(out, "offset %04x:\n%v", decoded.Offset, explanation)
	}

	return nil
}
