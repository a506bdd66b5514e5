// Package render provides text rendering helpers for the TUI screens.
package render

import (
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
)

// Sanitize drops control characters other than tab and turns non-breaking
// spaces into plain spaces. Catalog files are user supplied, so venue and
// track names go through here before reaching the terminal.
func Sanitize(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r == ' ':
			return ' '
		case r == unicode.ReplacementChar:
			return -1
		case r != '\t' && unicode.IsControl(r):
			return -1
		}
		return r
	}, strings.ToValidUTF8(s, ""))
}

// Truncate shortens plain text to maxWidth cells, ending with "..." when cut.
func Truncate(s string, maxWidth int) string {
	return runewidth.Truncate(Sanitize(s), maxWidth, "...")
}

// TruncateStyled shortens text that may already carry ANSI styling, ending
// with "…" when cut.
func TruncateStyled(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	return ansi.Truncate(s, maxWidth, "…")
}

// Pad fills s with spaces up to width cells.
func Pad(s string, width int) string {
	if w := lipgloss.Width(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}

// Fit truncates then pads so the result is exactly width cells.
func Fit(s string, width int) string {
	return Pad(TruncateStyled(s, width), width)
}

// Row places left and right at the edges of a width-cell line with at least
// one space between them.
func Row(left, right string, width int) string {
	gap := max(width-lipgloss.Width(left)-lipgloss.Width(right), 1)
	return left + strings.Repeat(" ", gap) + right
}

// Separator returns a horizontal rule.
func Separator(width int) string {
	return strings.Repeat("─", max(width, 0))
}

// Duration formats d as m:ss, or h:mm:ss from one hour up. Negative
// durations render as 0:00.
func Duration(d time.Duration) string {
	d = max(d, 0).Truncate(time.Second)
	h := int(d / time.Hour)
	m := int(d % time.Hour / time.Minute)
	s := int(d % time.Minute / time.Second)
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}

// Bar renders a width-cell bar filled to fraction, which is clamped to [0, 1].
func Bar(fraction float64, width int, fill, empty lipgloss.Style) string {
	if width <= 0 {
		return ""
	}
	fraction = max(0, min(1, fraction))
	n := int(fraction*float64(width) + 0.5)
	return fill.Render(strings.Repeat("━", n)) + empty.Render(strings.Repeat("─", width-n))
}
