package render

import (
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxWidth int
		want     string
	}{
		{"no truncation needed", "Tweezer", 10, "Tweezer"},
		{"exact fit", "Tweezer", 7, "Tweezer"},
		{"truncation with ellipsis", "Madison Square Garden", 10, "Madison..."},
		{"empty string", "", 10, ""},
		{"control characters dropped", "Ghost\x07\x1b", 10, "Ghost"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Truncate(tt.input, tt.maxWidth); got != tt.want {
				t.Errorf("Truncate(%q, %d) = %q, want %q", tt.input, tt.maxWidth, got, tt.want)
			}
		})
	}
}

func TestSanitize(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Reba", "Reba"},
		{"Red Rocks", "Red Rocks"},
		{"tab\tkept", "tab\tkept"},
		{"bad\xffbyte", "badbyte"},
		{"line\nbreak", "linebreak"},
	}
	for _, tt := range tests {
		if got := Sanitize(tt.input); got != tt.want {
			t.Errorf("Sanitize(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestTruncateStyled_KeepsWidth(t *testing.T) {
	styled := lipgloss.NewStyle().Bold(true).Render("You Enjoy Myself")
	got := TruncateStyled(styled, 8)
	if w := lipgloss.Width(got); w != 8 {
		t.Errorf("width = %d, want 8", w)
	}
	if plain := ansi.Strip(got); plain != "You Enj…" {
		t.Errorf("plain = %q, want %q", plain, "You Enj…")
	}
	if TruncateStyled(styled, 0) != "" {
		t.Error("zero width should be empty")
	}
}

func TestFit(t *testing.T) {
	for _, s := range []string{"", "Slave", "Harry Hood into Run Like an Antelope"} {
		if w := lipgloss.Width(Fit(s, 12)); w != 12 {
			t.Errorf("Fit(%q) width = %d, want 12", s, w)
		}
	}
}

func TestRow(t *testing.T) {
	got := Row("left", "right", 20)
	if lipgloss.Width(got) != 20 {
		t.Errorf("width = %d, want 20", lipgloss.Width(got))
	}
	if got := Row("left", "right", 5); got != "left right" {
		t.Errorf("narrow row = %q, want one space gap", got)
	}
}

func TestDuration(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "0:00"},
		{-5 * time.Second, "0:00"},
		{59*time.Second + 900*time.Millisecond, "0:59"},
		{5*time.Minute + 15*time.Second, "5:15"},
		{25 * time.Minute, "25:00"},
		{time.Hour + 2*time.Minute + 3*time.Second, "1:02:03"},
	}
	for _, tt := range tests {
		if got := Duration(tt.d); got != tt.want {
			t.Errorf("Duration(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}

func TestBar(t *testing.T) {
	plain := lipgloss.NewStyle()
	tests := []struct {
		fraction float64
		want     string
	}{
		{0, "──────────"},
		{0.5, "━━━━━─────"},
		{1, "━━━━━━━━━━"},
		{2, "━━━━━━━━━━"},
		{-1, "──────────"},
	}
	for _, tt := range tests {
		if got := ansi.Strip(Bar(tt.fraction, 10, plain, plain)); got != tt.want {
			t.Errorf("Bar(%v) = %q, want %q", tt.fraction, got, tt.want)
		}
	}
	if Bar(0.5, 0, plain, plain) != "" {
		t.Error("zero width bar should be empty")
	}
}

func TestSeparator(t *testing.T) {
	if got := Separator(3); got != "───" {
		t.Errorf("Separator(3) = %q", got)
	}
	if Separator(-1) != "" {
		t.Error("negative width should be empty")
	}
}
