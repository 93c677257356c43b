package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	colorCyan  = lipgloss.Color("36")  // headings, counts
	colorGreen = lipgloss.Color("35")  // success
	colorDim   = lipgloss.Color("240") // identifiers
)

var (
	styleTitle  = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	styleNumber = lipgloss.NewStyle().Foreground(colorCyan)
	styleDim    = lipgloss.NewStyle().Foreground(colorDim)
	styleOK     = lipgloss.NewStyle().Foreground(colorGreen)
)

const (
	iconSuccess = "✓"
	iconArrow   = "→"
)

func printTitle(w io.Writer, title string) {
	fmt.Fprintln(w, styleTitle.Render(title))
}

func printSuccess(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "%s %s\n", styleOK.Render(iconSuccess), fmt.Sprintf(format, args...))
}

func printKV(w io.Writer, key string, value int) {
	fmt.Fprintf(w, "%s: %s\n", key, styleNumber.Render(fmt.Sprint(value)))
}
