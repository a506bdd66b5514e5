package search

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/setbreak/internal/ui/cursor"
	"github.com/llehouerou/setbreak/internal/ui/dialog"
	"github.com/llehouerou/setbreak/internal/ui/render"
	"github.com/llehouerou/setbreak/internal/ui/styles"
)

const (
	maxVisibleResults = 12
	minWidth          = 40
)

// ResultMsg is sent when an item is picked.
type ResultMsg struct {
	Item Item
}

// Model is the search dialog.
type Model struct {
	items   []Item
	matcher *Matcher
	matches []Match
	query   string
	cursor  cursor.Cursor
	width   int
	height  int
}

// New opens a search over items sized for a width by height screen.
func New(items []Item, width, height int) *Model {
	m := &Model{
		items:   items,
		matcher: NewMatcher(items),
		cursor:  cursor.New(1),
		width:   width,
		height:  height,
	}
	m.update()
	return m
}

// Query returns the typed text.
func (m *Model) Query() string {
	return m.query
}

// Matches returns the items matching the query, best first.
func (m *Model) Matches() []Item {
	out := make([]Item, len(m.matches))
	for i, match := range m.matches {
		out[i] = m.items[match.Index]
	}
	return out
}

// Selected returns the item under the cursor.
func (m *Model) Selected() (Item, bool) {
	if len(m.matches) == 0 {
		return nil, false
	}
	return m.items[m.matches[m.cursor.Pos()].Index], true
}

func (m *Model) update() {
	m.matches = m.matcher.Search(m.query)
	m.cursor.Reset()
}

func (m *Model) visible() int {
	return max(min(m.height/2-4, maxVisibleResults), 1)
}

// Update edits the query, moves through results and picks with enter.
// Esc closes the dialog.
func (m *Model) Update(msg tea.KeyMsg) (dialog.Dialog, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return m, func() tea.Msg { return dialog.Closed{} }
	case "enter":
		item, ok := m.Selected()
		if !ok {
			return m, nil
		}
		return m, func() tea.Msg { return ResultMsg{Item: item} }
	case "up", "ctrl+p":
		m.cursor.Move(-1, len(m.matches), m.visible())
	case "down", "ctrl+n":
		m.cursor.Move(1, len(m.matches), m.visible())
	case "backspace":
		if m.query != "" {
			r := []rune(m.query)
			m.query = string(r[:len(r)-1])
			m.update()
		}
	case "ctrl+u":
		m.query = ""
		m.update()
	default:
		if msg.Type == tea.KeyRunes || msg.Type == tea.KeySpace {
			m.query += string(msg.Runes)
			m.update()
		}
	}
	return m, nil
}

func (m *Model) boxWidth() int {
	return max(min(m.width*60/100, m.width-4), min(minWidth, m.width))
}

func formatLine(item Item, width int) string {
	two, ok := item.(TwoColumnItem)
	if !ok || two.RightColumn() == "" {
		return render.Truncate(item.DisplayText(), width)
	}
	right := styles.T().S().Subtle.Render(two.RightColumn())
	left := render.Truncate(two.LeftColumn(), max(width-lipgloss.Width(right)-2, 1))
	return render.Row(left, right, width)
}

// View renders the dialog.
func (m *Model) View() string {
	st := styles.T().S()
	inner := max(m.boxWidth()-4, 1)

	lines := []string{
		st.Base.Render("> " + m.query + "█"),
		st.Subtle.Render(render.Separator(inner)),
	}
	height := m.visible()
	if len(m.matches) == 0 {
		msg := "Type to search"
		if m.query != "" {
			msg = "No matches"
		}
		lines = append(lines, st.Muted.Render(msg))
	} else {
		start, end := m.cursor.VisibleRange(len(m.matches), height)
		for i := start; i < end; i++ {
			line := formatLine(m.items[m.matches[i].Index], inner-2)
			if i == m.cursor.Pos() {
				lines = append(lines, st.Cursor.Render("> "+line))
			} else {
				lines = append(lines, "  "+line)
			}
		}
	}
	for len(lines) < height+2 {
		lines = append(lines, "")
	}
	return dialog.Frame("Search", strings.Join(lines, "\n"), "enter play · esc close", m.boxWidth())
}
