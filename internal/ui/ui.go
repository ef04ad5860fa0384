package ui

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// Brand colors
var (
	Brand  = color.New(color.FgHiYellow, color.Bold)
	Subtle = color.New(color.FgHiBlack)
	Info   = color.New(color.FgCyan)
	Good   = color.New(color.FgGreen)
	Bad    = color.New(color.FgRed)
)

// Banner prints the graphed banner.
func Banner(w io.Writer, subtitle string) {
	fmt.Fprintf(w, "%s - %s\n\n", Brand.Sprint("graphed"), subtitle)
}

// StatusIcon returns a status icon string.
func StatusIcon(ok bool) string {
	if ok {
		return Good.Sprint("✓")
	}
	return Bad.Sprint("✗")
}

// Status prints a single result line.
func Status(w io.Writer, ok bool, format string, args ...interface{}) {
	fmt.Fprintf(w, "  %s %s\n", StatusIcon(ok), fmt.Sprintf(format, args...))
}
