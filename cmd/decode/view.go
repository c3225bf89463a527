package decode

import (
	"fmt"
	"log/slog"

	"github.com/Manu343726/sim8086/cmd/settings"
	"github.com/Manu343726/sim8086/pkg/hw/i8086/decoder"
	"github.com/Manu343726/sim8086/pkg/hw/i8086/instructions"
	"github.com/Manu343726/sim8086/pkg/hw/i8086/listing"
	"github.com/Manu343726/sim8086/pkg/utils"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var ViewCmd = &cobra.Command{
	Use:   "view file",
	Short: "Browse the listing of an 8086 binary in the terminal",
	Long: `Decodes the given file and shows the listing in a scrollable table with the offset,
raw bytes and instruction text of every line. Press Esc or q to quit.`,
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

		// The UI owns the terminal, so decode warnings are not written to stderr
		result, decodeErr := decoder.NewDecoder(s.DecoderOptions(nil)).Decode(input)
		if decodeErr != nil {
			slog.Error("decode failed", slog.String("file", args[0]), slog.Any("error", decodeErr))
		}

		app := tview.NewApplication()
		table := buildTable(result, s.FormatOptions())
		status := tview.NewTextView().
			SetDynamicColors(false).
			SetText(statusLine(args[0], result, decodeErr))

		root := tview.NewFlex().
			SetDirection(tview.FlexRow).
			AddItem(table, 0, 1, true).
			AddItem(status, 1, 0, false)

		app.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
			if event.Key() == tcell.KeyEscape || event.Rune() == 'q' {
				app.Stop()
				return nil
			}
			return event
		})

		if err := app.SetRoot(root, true).Run(); err != nil {
			return err
		}

		return decodeErr
	},
}

var tableColumns = []string{"Offset", "Bytes", "Instruction"}

// Builds the listing table: a fixed header row followed by one row per instruction or skipped byte
func buildTable(result *decoder.Result, options instructions.FormatOptions) *tview.Table {
	table := tview.NewTable().
		SetFixed(1, 0).
		SetSelectable(true, false)

	for column, title := range tableColumns {
		table.SetCell(0, column, tview.NewTableCell(title).
			SetTextColor(tcell.ColorYellow).
			SetAttributes(tcell.AttrBold).
			SetSelectable(false))
	}

	row := 1
	setRow := func(offset int, bytes []byte, text string, textColor tcell.Color) {
		table.SetCell(row, 0, tview.NewTableCell(fmt.Sprintf("%04x", offset)).SetTextColor(tcell.ColorGray))
		table.SetCell(row, 1, tview.NewTableCell(utils.FormatBytesHex(bytes)).SetTextColor(tcell.ColorGray))
		table.SetCell(row, 2, tview.NewTableCell(tview.Escape(text)).SetTextColor(textColor).SetExpansion(1))
		row++
	}

	skipped := result.Skipped
	for _, decoded := range result.Instructions {
		for len(skipped) > 0 && skipped[0].Offset < decoded.Offset {
			setRow(skipped[0].Offset, []byte{skipped[0].Opcode}, listing.SkippedComment(skipped[0]), tcell.ColorRed)
			skipped = skipped[1:]
		}
		setRow(decoded.Offset, decoded.Bytes, decoded.Format(options), tcell.ColorWhite)
	}
	for _, s := range skipped {
		setRow(s.Offset, []byte{s.Opcode}, listing.SkippedComment(s), tcell.ColorRed)
	}

	return table
}

func statusLine(file string, result *decoder.Result, decodeErr error) string {
	text := fmt.Sprintf(" %v: %v instructions", file, len(result.Instructions))
	if len(result.Skipped) > 0 {
		text += fmt.Sprintf(", %v skipped", len(result.Skipped))
	}
	if decodeErr != nil {
		text += fmt.Sprintf(" | error: %v", decodeErr)
	}
	return text + " | Esc/q: quit"
}
