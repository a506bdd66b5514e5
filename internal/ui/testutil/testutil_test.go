package testutil

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestStripANSI(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"no ansi codes", "Bathtub Gin", "Bathtub Gin"},
		{"with color codes", "\x1b[31mred\x1b[0m text", "red text"},
		{"with multiple codes", "\x1b[1;32mbold green\x1b[0m", "bold green"},
		{"empty string", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StripANSI(tt.input); got != tt.want {
				t.Errorf("StripANSI(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestLines_TrimsTrailingBlank(t *testing.T) {
	view := lipgloss.NewStyle().Bold(true).Render("one") + "\ntwo\n\n  \n"
	got := Lines(view)
	if len(got) != 2 || got[0] != "one" || got[1] != "two" {
		t.Errorf("Lines = %q", got)
	}
}

func TestFindLine(t *testing.T) {
	view := "Set I\n  1. Tweezer\n  2. Reba"
	if got := FindLine(view, "Reba"); got != "  2. Reba" {
		t.Errorf("FindLine = %q", got)
	}
	if ContainsLine(view, "Fluffhead") {
		t.Error("ContainsLine found a missing line")
	}
}

func TestKey_MatchesKeymapNames(t *testing.T) {
	for _, k := range []string{"enter", "esc", "tab", "up", "down", "left", "right", "home", "end", "delete", "ctrl+c", " ", "q", "G", "+", "["} {
		if got := Key(k).String(); got != k {
			t.Errorf("Key(%q).String() = %q", k, got)
		}
	}
}

func TestType(t *testing.T) {
	msgs := Type("NYE")
	if len(msgs) != 3 || msgs[2].String() != "E" {
		t.Errorf("Type = %v", msgs)
	}
}
