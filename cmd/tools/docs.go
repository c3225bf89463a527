package tools

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/Manu343726/sim8086/pkg/hw/i8086/instructions"
	"github.com/Manu343726/sim8086/pkg/hw/i8086/registers"
	"github.com/Manu343726/sim8086/pkg/utils"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var ErrUnsupportedFormat = errors.New("unsupported docs format")

type docsModule struct {
	text func() string
	data func() any
}

var supportedModules = map[string]docsModule{
	"i8086.instructions": {
		text: instructions.DocString,
		data: func() any { return instructions.Describe() },
	},
	"i8086.registers": {
		text: registersDocString,
		data: func() any {
			doc := instructions.Describe()
			return map[string]any{"registers": doc.Registers, "equations": doc.Equations}
		},
	},
}

var docsCmd = &cobra.Command{
	Use:   "docs module",
	Short: "Show sim8086 documentation",
	Long: `Dumps the documentation of the specified sim8086 module.
By default the tool dumps the documentation to stdout, but it can be redirected to a file using the --output flag.
Use --format yaml to get a machine readable dump.

Supported modules:
` + strings.Join(utils.Map(utils.SortedKeys(supportedModules), func(module string) string { return "  " + module }), "\n"),
	Args:      cobra.MatchAll(cobra.OnlyValidArgs, cobra.ExactArgs(1)),
	ValidArgs: utils.SortedKeys(supportedModules),
	RunE: func(cmd *cobra.Command, args []string) error {
		format, _ := cmd.Flags().GetString("format")
		outputFile, _ := cmd.Flags().GetString("output")

		if outputFile != "" {
			file, err := os.Create(outputFile)
			if err != nil {
				return utils.MakeError(err, "creating file '%v'", outputFile)
			}
			defer file.Close()

			return writeDocs(file, args[0], format)
		}

		return writeDocs(cmd.OutOrStdout(), args[0], format)
	},
}

func init() {
	ToolsCmd.AddCommand(docsCmd)
	docsCmd.Flags().StringP("output", "o", "", "Output file. If not specified, the documentation is dumped to stdout.")
	docsCmd.Flags().StringP("format", "f", "text", "Output format: text or yaml")
}

func writeDocs(out io.Writer, module string, format string) error {
	docs, ok := supportedModules[module]
	if !ok {
		return fmt.Errorf("unknown module '%v'", module)
	}

	switch format {
	case "text":
		_, err := fmt.Fprintln(out, docs.text())
		return err
	case "yaml":
		encoder := yaml.NewEncoder(out)
		encoder.SetIndent(2)
		if err := encoder.Encode(docs.data()); err != nil {
			return err
		}
		return encoder.Close()
	}

	return utils.MakeError(ErrUnsupportedFormat, "'%v', expected text or yaml", format)
}

func registersDocString() string {
	var builder strings.Builder

	builder.WriteString("8086 general purpose registers (reg and r/m fields)\n\n")
	fmt.Fprintf(&builder, "  %-5s  %-4s  %-4s  %v\n", "index", "w=0", "w=1", "description")

	for index := range registers.TotalRegisters {
		b := registers.Register(uint8(index), registers.Width_Byte)
		w := registers.Register(uint8(index), registers.Width_Word)
		fmt.Fprintf(&builder, "  %-5s  %-4s  %-4s  %v / %v\n", utils.FormatUintBinary(uint64(index), 3), b.Name, w.Name, b.Description, w.Description)
	}

	builder.WriteString("\nEffective address equations (mod != 11)\n\n")
	for _, eq := range registers.AllEquations() {
		fmt.Fprintf(&builder, "  r/m=%v  %v\n", utils.FormatUintBinary(uint64(eq.RM), 3), eq)
	}

	return builder.String()
}
