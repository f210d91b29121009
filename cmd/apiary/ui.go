package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

var (
	titleColor   = color.New(color.FgCyan, color.Bold)
	successColor = color.New(color.FgGreen, color.Bold)
	warnColor    = color.New(color.FgYellow)
	dimColor     = color.New(color.Faint)
)

func printTitle(w io.Writer, format string, a ...interface{}) {
	titleColor.Fprintf(w, "\n"+format+"\n", a...)
}

func printSuccess(w io.Writer, format string, a ...interface{}) {
	successColor.Fprintf(w, "✓ "+format+"\n", a...)
}

func printWarning(w io.Writer, format string, a ...interface{}) {
	warnColor.Fprintf(w, "⚠ "+format+"\n", a...)
}

func printDim(w io.Writer, format string, a ...interface{}) {
	dimColor.Fprintf(w, format+"\n", a...)
}

// bar renders fraction (0..1) as a fixed-width text gauge
func bar(fraction float64, width int) string {
	if fraction < 0 {
		fraction = 0
	}
	if fraction > 1 {
		fraction = 1
	}
	filled := int(fraction*float64(width) + 0.5)
	out := make([]rune, width)
	for i := range out {
		if i < filled {
			out[i] = '█'
		} else {
			out[i] = '░'
		}
	}
	return fmt.Sprintf("%s %3.0f%%", string(out), fraction*100)
}
