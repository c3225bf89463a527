package decode

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/Manu343726/sim8086/cmd/settings"
	"github.com/Manu343726/sim8086/pkg/hw/i8086/decoder"
	"github.com/Manu343726/sim8086/pkg/hw/i8086/listing"
	"github.com/fatih/color"
	"github.com/peterh/liner"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var ReplCmd = &cobra.Command{
	Use:   "repl",
	Short: "Interactive decoder",
	Long: `Starts an interactive session where hex bytes typed at the prompt are decoded immediately.

Type 'help' for the list of available commands.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := settings.Load(viper.GetViper())
		if err != nil {
			return err
		}

		runRepl(newReplSession(s, cmd.OutOrStdout(), isTerminal(cmd.OutOrStdout())))
		return nil
	},
}

var (
	colorError   = color.New(color.FgRed)
	colorSuccess = color.New(color.FgGreen)
	colorWarning = color.New(color.FgYellow)
)

var replCommands = []string{"help", "explain", "signed", "unsigned", "quit", "exit"}

const replHelp = `Commands:
  <hex bytes>          decode the bytes, e.g. "89 d9" or "b10c"
  explain <hex bytes>  draw the bits of every decoded instruction
  signed               render displacements and immediates as signed values
  unsigned             render displacements and immediates as unsigned values
  help                 show this help
  quit, exit           leave the session`

// Interactive decoding state, independent from the terminal line editor
type replSession struct {
	settings settings.Settings
	terminal bool
	out      io.Writer
}

func newReplSession(s settings.Settings, out io.Writer, terminal bool) *replSession {
	// Every line is decoded on its own, so addresses are always useful and the header never is
	s.Header = false
	s.Addresses = true

	return &replSession{
		settings: s,
		terminal: terminal,
		out:      out,
	}
}

// Runs one input line. Returns false when the session must end
func (r *replSession) execute(input string) bool {
	command, rest, _ := strings.Cut(strings.TrimSpace(input), " ")

	switch strings.ToLower(command) {
	case "":
	case "quit", "exit", "q":
		return false
	case "help", "h", "?":
		fmt.Fprintln(r.out, replHelp)
	case "signed":
		r.settings.Signed = true
		colorSuccess.Fprintln(r.out, "Rendering signed values.")
	case "unsigned":
		r.settings.Signed = false
		colorSuccess.Fprintln(r.out, "Rendering unsigned values.")
	case "explain", "x":
		input, err := decoder.ParseHex(rest)
		if err != nil {
			colorError.Fprintf(r.out, "Error: %v\n", err)
			break
		}
		if err := runExplain(r.settings, input, r.out); err != nil {
			colorError.Fprintf(r.out, "Error: %v\n", err)
		}
	default:
		r.decode(input)
	}

	return true
}

func (r *replSession) decode(text string) {
	input, err := decoder.ParseHex(text)
	if err != nil {
		colorError.Fprintf(r.out, "Error: %v\n", err)
		colorWarning.Fprintln(r.out, "Type 'help' for available commands.")
		return
	}

	result, decodeErr := decoder.NewDecoder(r.settings.DecoderOptions(slog.Default())).Decode(input)

	if err := listing.Write(r.out, result, r.settings.ListingOptions(r.terminal)); err != nil {
		colorError.Fprintf(r.out, "Error: %v\n", err)
		return
	}

	if decodeErr != nil {
		colorError.Fprintf(r.out, "Error: %v\n", decodeErr)
	}
}

func historyFilePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".sim8086_history"
	}
	return filepath.Join(home, ".sim8086_history")
}

func runRepl(session *replSession) {
	line := liner.NewLiner()
	defer line.Close()

	line.SetCtrlCAborts(true)
	line.SetCompleter(func(input string) []string {
		var completions []string
		for _, cmd := range replCommands {
			if strings.HasPrefix(cmd, strings.ToLower(input)) {
				completions = append(completions, cmd)
			}
		}
		return completions
	})

	historyFile := historyFilePath()
	if f, err := os.Open(historyFile); err == nil {
		line.ReadHistory(f)
		f.Close()
	}

	colorSuccess.Fprintln(session.out, "Type 'help' for available commands.")

	for {
		input, err := line.Prompt("(sim8086) ")
		if err != nil {
			if err == liner.ErrPromptAborted {
				colorWarning.Fprintln(session.out, "Use 'quit' or 'exit' to leave.")
				continue
			}
			if err != io.EOF {
				colorError.Fprintf(session.out, "Error reading input: %v\n", err)
			}
			break
		}

		if strings.TrimSpace(input) != "" {
			line.AppendHistory(input)
		}

		if !session.execute(input) {
			break
		}
	}

	if f, err := os.Create(historyFile); err == nil {
		line.WriteHistory(f)
		f.Close()
	}
}
