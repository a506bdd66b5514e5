//nolint:goconst // test cases intentionally repeat strings for readability
package keymap

import (
	"slices"
	"testing"
)

func TestNewResolver(t *testing.T) {
	bindings := []Binding{
		{ActionQuit, []string{"q", "ctrl+c"}, "Quit", ContextGlobal},
		{ActionPlayPause, []string{" "}, "Play/pause", ContextPlayback},
		{ActionMoveUp, []string{"k", "up"}, "Move up", ContextList},
	}

	r := NewResolver(bindings)

	if r == nil {
		t.Fatal("NewResolver returned nil")
	}
	if r.bindings == nil {
		t.Error("bindings map is nil")
	}
	if len(r.scoped) != 3 {
		t.Errorf("scoped has %d contexts, want 3", len(r.scoped))
	}
	if r.byAction == nil {
		t.Error("byAction map is nil")
	}
}

func TestResolver_ResolveChain_SingleContext(t *testing.T) {
	r := NewResolver(Bindings)

	tests := []struct {
		name     string
		context  string
		key      string
		expected Action
	}{
		{"calendar shadows seek", ContextCalendar, "left", ActionPrevDay},
		{"list falls back to seek", ContextList, "left", ActionSeekBack},
		{"list navigation", ContextList, "j", ActionMoveDown},
		{"calendar week", ContextCalendar, "j", ActionNextWeek},
		{"global from list", ContextList, "q", ActionQuit},
		{"playback from collections", ContextCollections, " ", ActionPlayPause},
		{"collections delete", ContextCollections, "d", ActionDelete},
		{"delete unbound elsewhere", ContextList, "d", ""},
		{"unknown context uses fallbacks", "unknown", "n", ActionNextTrack},
		{"unbound key", ContextList, "z", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.ResolveChain(tt.key, tt.context); got != tt.expected {
				t.Errorf("ResolveChain(%q, %q) = %q, want %q", tt.key, tt.context, got, tt.expected)
			}
		})
	}
}

func TestResolver_ResolveChain(t *testing.T) {
	r := NewResolver(Bindings)

	tests := []struct {
		key      string
		contexts []string
		expected Action
	}{
		{"d", []string{ContextCollections, ContextList}, ActionDelete},
		{"j", []string{ContextCollections, ContextList}, ActionMoveDown},
		{"enter", []string{ContextCollections, ContextList}, ActionSelect},
		{"n", []string{ContextCollections, ContextList}, ActionNextTrack},
		{"N", []string{ContextCollections, ContextList}, ActionNewCollection},
		{"left", []string{ContextCalendar, ContextList}, ActionPrevDay},
		{"left", nil, ActionSeekBack},
		{"/", []string{ContextCalendar}, ActionSearch},
		{"z", []string{ContextList}, ""},
	}

	for _, tt := range tests {
		if got := r.ResolveChain(tt.key, tt.contexts...); got != tt.expected {
			t.Errorf("ResolveChain(%q, %v) = %q, want %q", tt.key, tt.contexts, got, tt.expected)
		}
	}
}

func TestResolver_KeysFor(t *testing.T) {
	bindings := []Binding{
		{ActionQuit, []string{"q", "ctrl+c"}, "Quit", ContextGlobal},
		{ActionPlayPause, []string{" "}, "Play/pause", ContextPlayback},
		{ActionMoveUp, []string{"k", "up"}, "Move up", ContextList},
	}

	r := NewResolver(bindings)

	tests := []struct {
		action   Action
		expected []string
	}{
		{ActionQuit, []string{"q", "ctrl+c"}},
		{ActionPlayPause, []string{" "}},
		{ActionMoveUp, []string{"k", "up"}},
		{Action("unknown"), nil},
	}

	for _, tt := range tests {
		t.Run(string(tt.action), func(t *testing.T) {
			result := r.KeysFor(tt.action)

			if tt.expected == nil {
				if result != nil {
					t.Errorf("KeysFor(%q) = %v, want nil", tt.action, result)
				}
				return
			}

			if len(result) != len(tt.expected) {
				t.Errorf("KeysFor(%q) = %v, want %v", tt.action, result, tt.expected)
				return
			}

			for _, key := range tt.expected {
				if !slices.Contains(result, key) {
					t.Errorf("KeysFor(%q) missing key %q, got %v", tt.action, key, result)
				}
			}
		})
	}
}

func TestResolver_DeduplicatesKeys(t *testing.T) {
	// Same action defined in multiple contexts with overlapping keys
	r := NewResolver(Bindings)

	keys := r.KeysFor(ActionSelect)

	count := 0
	for _, k := range keys {
		if k == "enter" {
			count++
		}
	}

	if count != 1 {
		t.Errorf("expected 'enter' to appear once after deduplication, got %d times in %v", count, keys)
	}
}

func TestDedupe(t *testing.T) {
	tests := []struct {
		name     string
		input    []string
		expected []string
	}{
		{
			name:     "no duplicates",
			input:    []string{"a", "b", "c"},
			expected: []string{"a", "b", "c"},
		},
		{
			name:     "with duplicates",
			input:    []string{"a", "b", "a", "c", "b"},
			expected: []string{"a", "b", "c"},
		},
		{
			name:     "empty slice",
			input:    []string{},
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := dedupe(tt.input)
			if !slices.Equal(result, tt.expected) {
				t.Errorf("dedupe(%v) = %v, want %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestResolver_EmptyBindings(t *testing.T) {
	r := NewResolver([]Binding{})

	if action := r.ResolveChain("q", ContextList); action != "" {
		t.Errorf("ResolveChain on empty resolver should return empty, got %q", action)
	}
	if keys := r.KeysFor(ActionQuit); keys != nil {
		t.Errorf("KeysFor on empty resolver should return nil, got %v", keys)
	}
}
