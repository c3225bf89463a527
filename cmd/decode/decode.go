package decode

import (
	"io"
	"log/slog"
	"os"

	"github.com/Manu343726/sim8086/cmd/settings"
	"github.com/Manu343726/sim8086/pkg/hw/i8086/decoder"
	"github.com/Manu343726/sim8086/pkg/hw/i8086/listing"
	"github.com/Manu343726/sim8086/pkg/utils"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
)

var DecodeCmd = &cobra.Command{
	Use:   "decode file",
	Short: "Decode an 8086 binary into an assembly listing",
	Long: `Decodes the machine code in the given file and prints the resulting listing.
Use "-" to read the machine code from stdin.

The listing is written to stdout unless the --output flag is given. If decoding
fails midway the instructions decoded so far are still written before the error is reported.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := settings.Load(viper.GetViper())
		if err != nil {
			return err
		}

		input, err := readInput(cmd, args[0])
		if err != nil {
			return err
		}

		out, terminal, closeOutput, err := openOutput(cmd)
		if err != nil {
			return err
		}
		defer closeOutput()

		return runDecode(s, input, out, terminal)
	},
}

func init() {
	DecodeCmd.Flags().StringP("output", "o", "", "Output file. If not specified, the listing is written to stdout.")
	DecodeCmd.Flags().Bool("header", true, "Start the listing with a \"bits 16\" directive")
	DecodeCmd.Flags().Bool("addresses", false, "Prefix each instruction with its offset and raw bytes")

	cobra.CheckErr(viper.BindPFlag(settings.KeyHeader, DecodeCmd.Flags().Lookup("header")))
	cobra.CheckErr(viper.BindPFlag(settings.KeyAddresses, DecodeCmd.Flags().Lookup("addresses")))
}

// Decodes input and writes the listing to out. The partial listing is written even when decoding fails.
func runDecode(s settings.Settings, input []byte, out io.Writer, terminal bool) error {
	result, decodeErr := decoder.NewDecoder(s.DecoderOptions(slog.Default())).Decode(input)

	if err := listing.Write(out, result, s.ListingOptions(terminal)); err != nil {
		return utils.MakeError(err, "writing listing")
	}

	return decodeErr
}

func readInput(cmd *cobra.Command, path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}

	return os.ReadFile(path)
}

// Returns the command output, whether it is a terminal, and a function that releases it
func openOutput(cmd *cobra.Command) (io.Writer, bool, func(), error) {
	outputFile, _ := cmd.Flags().GetString("output")
	if outputFile != "" {
		file, err := os.Create(outputFile)
		if err != nil {
			return nil, false, nil, utils.MakeError(err, "creating output file '%v'", outputFile)
		}

		return file, false, func() { file.Close() }, nil
	}

	out := cmd.OutOrStdout()
	return out, isTerminal(out), func() {}, nil
}

func isTerminal(w io.Writer) bool {
	file, ok := w.(*os.File)
	return ok && term.IsTerminal(int(file.Fd()))
}
