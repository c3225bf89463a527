package instructions

// Controls how decoded instructions are rendered as text
type FormatOptions struct {
	// Render displacements and immediates as two's complement signed values (mov dx, -3948)
	// instead of raw unsigned values (mov dx, 61588). 8 bit values are sign extended.
	Signed bool
}

// Options used by String() methods: signed literals, matching nasm output
var DefaultFormatOptions = FormatOptions{
	Signed: true,
}
