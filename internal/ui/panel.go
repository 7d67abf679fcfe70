package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/muesli/reflow/ansi"
)

// ProgressBar draws done/total with the theme's bar glyphs and a percentage.
func ProgressBar(t Theme, done, total, width int) string {
	if total <= 0 {
		total = 1
	}
	width = max(width, 5)
	filled := min(done*width/total, width)
	return fmt.Sprintf("%s%s %3d%%",
		strings.Repeat(t.BarFull, filled),
		strings.Repeat(t.BarEmpty, width-filled),
		done*100/total)
}

// Panel frames lines in t's border, padding each to the widest visible line.
func Panel(w io.Writer, t Theme, lines []string) {
	inner := 0
	for _, ln := range lines {
		inner = max(inner, ansi.PrintableRuneWidth(ln))
	}
	rule := strings.Repeat(t.H, inner+2)
	fmt.Fprintln(w, t.CornerTL+rule+t.CornerTR)
	for _, ln := range lines {
		gap := inner - ansi.PrintableRuneWidth(ln)
		fmt.Fprintf(w, "%s %s%s %s\n", t.V, ln, strings.Repeat(" ", gap), t.V)
	}
	fmt.Fprintln(w, t.CornerBL+rule+t.CornerBR)
}
