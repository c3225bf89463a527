package listing

import (
	"github.com/fatih/color"
)

type palette struct {
	mnemonic  *color.Color
	register  *color.Color
	immediate *color.Color
	memory    *color.Color
	address   *color.Color
	comment   *color.Color
}

func newPalette(style FormatStyle) palette {
	p := palette{
		mnemonic:  color.New(color.FgYellow, color.Bold),
		register:  color.New(color.FgGreen),
		immediate: color.New(color.FgCyan),
		memory:    color.New(color.FgMagenta),
		address:   color.New(color.FgHiBlack),
		comment:   color.New(color.FgHiBlack),
	}

	for _, c := range []*color.Color{p.mnemonic, p.register, p.immediate, p.memory, p.address, p.comment} {
		// Style overrides the terminal detection of the color package
		if style == StyleColored {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	return p
}
