package styles

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

func TestGradient_KeepsText(t *testing.T) {
	for _, text := range []string{"", "s", "setbreak", "café ☮"} {
		got := ansi.Strip(Gradient(text, true, T().Primary, T().Secondary))
		if got != text {
			t.Errorf("Gradient(%q) stripped = %q", text, got)
		}
	}
}

func TestBlend_Endpoints(t *testing.T) {
	colors := blend(5, "#000000", "#ffffff")
	if len(colors) != 5 {
		t.Fatalf("len = %d, want 5", len(colors))
	}
	if colors[0].Hex() != "#000000" {
		t.Errorf("first = %s, want #000000", colors[0].Hex())
	}
	if colors[4].Hex() != "#ffffff" {
		t.Errorf("last = %s, want #ffffff", colors[4].Hex())
	}
}

func TestToColorful_ANSIFallsBackToGray(t *testing.T) {
	c := toColorful(lipgloss.Color("39"))
	r, g, b := c.RGB255()
	if r != g || g != b {
		t.Errorf("fallback = %d,%d,%d, want gray", r, g, b)
	}
}

func TestS_Cached(t *testing.T) {
	if T().S() != T().S() {
		t.Error("S() rebuilt styles")
	}
}

func TestBanner(t *testing.T) {
	if !strings.Contains(ansi.Strip(Banner("setbreak")), "setbreak") {
		t.Error("banner lost its text")
	}
}
