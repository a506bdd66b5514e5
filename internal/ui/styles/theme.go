// Package styles holds the color palette and shared lipgloss styles.
package styles

import "github.com/charmbracelet/lipgloss"

// Theme defines the color palette and pre-built styles for the application.
type Theme struct {
	// Accents
	Primary   lipgloss.Color // teal - focus, active tab, progress fill
	Secondary lipgloss.Color // amber - highlights, badges

	// Text hierarchy (most to least prominent)
	FgBase   lipgloss.Color
	FgMuted  lipgloss.Color
	FgSubtle lipgloss.Color

	BgCursor lipgloss.Color

	Border      lipgloss.Color
	BorderFocus lipgloss.Color

	Success lipgloss.Color
	Error   lipgloss.Color
	Warning lipgloss.Color

	styles *Styles
}

// Styles contains pre-built lipgloss styles for common UI patterns.
type Styles struct {
	Base      lipgloss.Style
	Muted     lipgloss.Style
	Subtle    lipgloss.Style
	Title     lipgloss.Style
	Playing   lipgloss.Style // currently playing track
	Cursor    lipgloss.Style
	Highlight lipgloss.Style // jam highlight badge
	Key       lipgloss.Style // key names in help and hints
	Tab       lipgloss.Style
	TabActive lipgloss.Style
	Marked    lipgloss.Style // calendar days with a show
	Success   lipgloss.Style
	Error     lipgloss.Style
	Warning   lipgloss.Style
}

var defaultTheme = Theme{
	Primary:   lipgloss.Color("#2ec4b6"),
	Secondary: lipgloss.Color("#ff9f1c"),

	FgBase:   lipgloss.Color("#d0d0d0"),
	FgMuted:  lipgloss.Color("#8a8a8a"),
	FgSubtle: lipgloss.Color("#5f5f5f"),

	BgCursor: lipgloss.Color("#2a2f33"),

	Border:      lipgloss.Color("#5f5f5f"),
	BorderFocus: lipgloss.Color("#2ec4b6"),

	Success: lipgloss.Color("#52b788"),
	Error:   lipgloss.Color("#e63946"),
	Warning: lipgloss.Color("#ff9f1c"),
}

// T returns the default theme.
func T() *Theme {
	return &defaultTheme
}

// S returns the pre-built styles for this theme.
func (t *Theme) S() *Styles {
	if t.styles == nil {
		t.styles = t.buildStyles()
	}
	return t.styles
}

func (t *Theme) buildStyles() *Styles {
	base := lipgloss.NewStyle().Foreground(t.FgBase)

	return &Styles{
		Base:    base,
		Muted:   lipgloss.NewStyle().Foreground(t.FgMuted),
		Subtle:  lipgloss.NewStyle().Foreground(t.FgSubtle),
		Title:   base.Bold(true),
		Playing: lipgloss.NewStyle().Foreground(t.Primary).Bold(true),
		Cursor: lipgloss.NewStyle().
			Background(t.BgCursor).
			Foreground(t.FgBase),
		Highlight: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#1a1a1a")).
			Background(t.Secondary).
			Bold(true).
			Padding(0, 1),
		Key:       lipgloss.NewStyle().Foreground(t.Primary).Bold(true),
		Tab:       lipgloss.NewStyle().Foreground(t.FgMuted).Padding(0, 1),
		TabActive: lipgloss.NewStyle().Foreground(t.Primary).Bold(true).Underline(true).Padding(0, 1),
		Marked:    lipgloss.NewStyle().Foreground(t.Secondary).Bold(true),
		Success:   lipgloss.NewStyle().Foreground(t.Success),
		Error:     lipgloss.NewStyle().Foreground(t.Error),
		Warning:   lipgloss.NewStyle().Foreground(t.Warning),
	}
}
