package dialog

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/setbreak/internal/keymap"
	"github.com/llehouerou/setbreak/internal/ui/render"
	"github.com/llehouerou/setbreak/internal/ui/styles"
)

var contextLabels = map[string]string{
	keymap.ContextGlobal:      "Global",
	keymap.ContextPlayback:    "Playback",
	keymap.ContextList:        "Lists",
	keymap.ContextCalendar:    "Calendar",
	keymap.ContextCollections: "Collections",
	keymap.ContextHistory:     "History",
}

// Help lists the bindings of the given contexts, scrollable with j/k.
type Help struct {
	lines  []string
	height int
	offset int
}

// NewHelp builds the help for contexts in order. height is the number of
// binding lines shown at once.
func NewHelp(contexts []string, height int) *Help {
	st := styles.T().S()
	keyWidth := 0
	for _, ctx := range contexts {
		for _, b := range keymap.ByContext(ctx) {
			keyWidth = max(keyWidth, len(keyList(b)))
		}
	}

	var lines []string
	for _, ctx := range contexts {
		bindings := keymap.ByContext(ctx)
		if len(bindings) == 0 {
			continue
		}
		if len(lines) > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, st.Marked.Render(contextLabels[ctx]), st.Subtle.Render(render.Separator(keyWidth+24)))
		for _, b := range bindings {
			lines = append(lines, st.Key.Render(render.Pad(keyList(b), keyWidth))+"  "+st.Base.Render(b.Description))
		}
	}
	return &Help{lines: lines, height: max(height, 3)}
}

func keyList(b keymap.Binding) string {
	keys := make([]string, len(b.Keys))
	for i, k := range b.Keys {
		if k == " " {
			k = "space"
		}
		keys[i] = k
	}
	return strings.Join(keys, ", ")
}

func (h *Help) maxOffset() int {
	return max(len(h.lines)-h.height, 0)
}

// Update scrolls, and closes on ?, esc or q.
func (h *Help) Update(msg tea.KeyMsg) (Dialog, tea.Cmd) {
	switch msg.String() {
	case "?", "esc", "q":
		return h, closeCmd
	case "j", "down":
		h.offset = min(h.offset+1, h.maxOffset())
	case "k", "up":
		h.offset = max(h.offset-1, 0)
	}
	return h, nil
}

// View renders the visible part of the help.
func (h *Help) View() string {
	end := min(h.offset+h.height, len(h.lines))
	footer := "?/esc close"
	if h.maxOffset() > 0 {
		footer = "j/k scroll · " + footer
	}
	return Frame("Help", strings.Join(h.lines[h.offset:end], "\n"), footer, 0)
}
