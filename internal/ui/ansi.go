package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// DisableColor strips all color and attributes from rendered output, e.g. for
// --no-color or when output is piped.
func DisableColor() {
	lipgloss.SetColorProfile(termenv.Ascii)
}

// OK writes a success line to w.
func OK(w io.Writer, s Styles, msg string) {
	fmt.Fprintln(w, s.Success.Render(s.SymDone+" "+msg))
}

// Note writes a muted informational line to w.
func Note(w io.Writer, s Styles, msg string) {
	fmt.Fprintln(w, s.Muted.Render(msg))
}

// Fail writes an error line to w.
func Fail(w io.Writer, s Styles, msg string) {
	fmt.Fprintln(w, s.Error.Render("✖ "+msg))
}
