package ui

import (
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/fatih/color"
	"golang.org/x/term"
)

// Color definitions for consistent styling across the UI.
var (
	// Field labels: bold
	colorHeader = color.New(color.Bold)

	// Derived values: green so computed output stands out
	colorDerived = color.New(color.FgGreen, color.Bold)

	// Rules: cyan
	colorRule = color.New(color.FgCyan)

	// Muted: for secondary information
	colorMuted = color.New(color.FgWhite, color.Faint)
)

// defaultWidth is used when w is not a terminal.
const defaultWidth = 80

// termWidth returns the width of the terminal behind w, or a default if w is
// not a terminal.
func termWidth(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok {
		return defaultWidth
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 {
		return defaultWidth
	}
	return width
}

// DisableColor disables all color output.
func DisableColor() {
	color.NoColor = true
}

// EnableColor enables color output (if terminal supports it).
func EnableColor() {
	color.NoColor = false
}

// formatHeader formats text as a header.
func formatHeader(s string) string {
	return colorHeader.Sprint(s)
}

// formatDerived formats a computed value.
func formatDerived(s string) string {
	return colorDerived.Sprint(s)
}

// formatRule formats a rule entry.
func formatRule(s string) string {
	return colorRule.Sprint(s)
}

// formatMuted formats text as secondary/muted.
func formatMuted(s string) string {
	return colorMuted.Sprint(s)
}

// wrapItems joins items with ", " and breaks lines so that no line exceeds
// width columns. Continuation lines start with indent spaces.
// Widths are display columns measured before coloring; format is applied per item.
func wrapItems(items []string, width, indent int, format func(string) string) []string {
	if len(items) == 0 {
		return nil
	}
	var (
		lines []string
		b     strings.Builder
		col   = indent
	)
	for i, item := range items {
		n := ansi.StringWidth(item)
		sep := ""
		if i < len(items)-1 {
			sep = ","
		}
		if b.Len() > 0 && col+1+n+len(sep) > width {
			lines = append(lines, b.String())
			b.Reset()
			col = indent
		}
		if b.Len() > 0 {
			b.WriteString(" ")
			col++
		}
		b.WriteString(format(item))
		b.WriteString(sep)
		col += n + len(sep)
	}
	lines = append(lines, b.String())
	return lines
}
