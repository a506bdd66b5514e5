package app

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/llehouerou/setbreak/internal/app/handler"
	"github.com/llehouerou/setbreak/internal/catalog"
	"github.com/llehouerou/setbreak/internal/errmsg"
	"github.com/llehouerou/setbreak/internal/keymap"
	"github.com/llehouerou/setbreak/internal/ui"
	"github.com/llehouerou/setbreak/internal/ui/dialog"
	"github.com/llehouerou/setbreak/internal/ui/list"
	"github.com/llehouerou/setbreak/internal/ui/render"
	"github.com/llehouerou/setbreak/internal/ui/styles"
)

// historyLimit caps the rows loaded into the history screen.
const historyLimit = 100

type historyRow struct {
	show *catalog.Show
	when string // relative to the reload time
}

type historyScreen struct {
	ui.Base
	entries list.Model[historyRow]
}

func newHistoryScreen() historyScreen {
	return historyScreen{entries: list.New(renderHistoryRow, "Nothing played yet")}
}

func renderHistoryRow(r historyRow, selected bool, width int) string {
	right := styles.T().S().Muted.Render(r.when)
	left := renderShowRow(r.show, selected, max(width-lipgloss.Width(right)-1, 1))
	return render.Row(left, right, width)
}

func (s *historyScreen) SetSize(width, height int) {
	s.Base.SetSize(width, height)
	s.entries.SetSize(width, s.ListHeight(paneOverhead))
}

func (s historyScreen) View() string {
	st := styles.T().S()
	return st.Playing.Render("Recently played") + "\n" +
		st.Subtle.Render(render.Separator(s.Width())) + "\n" +
		s.entries.View()
}

func (m *Model) reloadHistory() {
	entries, err := m.store.History(historyLimit)
	if err != nil {
		m.fail(errmsg.OpHistoryLoad, "", err)
		return
	}
	now := m.now()
	rows := make([]historyRow, 0, len(entries))
	for _, e := range entries {
		show, ok := m.catalog.ByID(e.ShowID)
		if !ok {
			continue
		}
		rows = append(rows, historyRow{show: show, when: humanize.RelTime(e.PlayedAt, now, "ago", "from now")})
	}
	m.history.entries.SetItems(rows)
}

// clearHistory is the context of the clear confirmation.
type clearHistory struct{}

func (m *Model) handleHistoryAction(a keymap.Action) handler.Result {
	if a == keymap.ActionClearHistory {
		if m.history.entries.Len() == 0 {
			return handler.Handled(m.info("History is already empty"))
		}
		m.dialog = dialog.NewConfirm("Clear history",
			fmt.Sprintf("Forget %d played shows?", m.history.entries.Len()), clearHistory{})
		return handler.HandledNoCmd
	}
	r := m.history.entries.HandleAction(a)
	switch r.Action {
	case list.ActionMoved:
		return handler.HandledNoCmd
	case list.ActionActivate:
		row, _ := m.history.entries.Selected()
		return handler.Handled(m.playShow(row.show))
	case list.ActionNone, list.ActionDelete, list.ActionRemove:
	}
	return handler.NotHandled
}

func (m *Model) clearHistory() tea.Cmd {
	if err := m.store.ClearHistory(); err != nil {
		return m.fail(errmsg.OpHistoryClear, "", err)
	}
	m.reloadHistory()
	return m.info("History cleared")
}
