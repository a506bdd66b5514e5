// Package calendar renders a month grid date picker with marked days.
package calendar

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/setbreak/internal/keymap"
	"github.com/llehouerou/setbreak/internal/ui/styles"
)

const cellWidth = 4

var weekdays = []string{"Su", "Mo", "Tu", "We", "Th", "Fr", "Sa"}

// Model is a date picker positioned on one day. Days with a show are marked
// and can be jumped between.
type Model struct {
	selected time.Time
	marks    map[time.Time]bool
}

// New creates a picker on day, marking the given dates. All dates are
// truncated to midnight UTC.
func New(day time.Time, marked []time.Time) Model {
	m := Model{selected: dayOf(day), marks: make(map[time.Time]bool, len(marked))}
	for _, d := range marked {
		m.marks[dayOf(d)] = true
	}
	return m
}

func dayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Selected returns the selected day.
func (m Model) Selected() time.Time {
	return m.selected
}

// SetSelected moves the picker to day.
func (m *Model) SetSelected(day time.Time) {
	m.selected = dayOf(day)
}

// Marked reports whether day has a show.
func (m Model) Marked(day time.Time) bool {
	return m.marks[dayOf(day)]
}

// SelectedMarked reports whether the selected day has a show.
func (m Model) SelectedMarked() bool {
	return m.marks[m.selected]
}

// HandleAction moves the selection for calendar actions and reports whether
// the action was one. Month steps clamp to the last day of a shorter month.
func (m *Model) HandleAction(a keymap.Action) bool {
	switch a {
	case keymap.ActionPrevDay:
		m.selected = m.selected.AddDate(0, 0, -1)
	case keymap.ActionNextDay:
		m.selected = m.selected.AddDate(0, 0, 1)
	case keymap.ActionPrevWeek:
		m.selected = m.selected.AddDate(0, 0, -7)
	case keymap.ActionNextWeek:
		m.selected = m.selected.AddDate(0, 0, 7)
	case keymap.ActionPrevMonth:
		m.selected = addMonths(m.selected, -1)
	case keymap.ActionNextMonth:
		m.selected = addMonths(m.selected, 1)
	default:
		return false
	}
	return true
}

func addMonths(t time.Time, n int) time.Time {
	first := time.Date(t.Year(), t.Month()+time.Month(n), 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1).Day()
	return first.AddDate(0, 0, min(t.Day(), last)-1)
}

// View renders the month of the selected day.
func (m Model) View() string {
	st := styles.T().S()
	first := time.Date(m.selected.Year(), m.selected.Month(), 1, 0, 0, 0, 0, time.UTC)
	width := cellWidth * len(weekdays)

	var b strings.Builder
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, st.Title.Render(first.Format("January 2006"))))
	b.WriteString("\n")
	for _, wd := range weekdays {
		b.WriteString(st.Muted.Render(fmt.Sprintf("%*s", cellWidth-1, wd)) + " ")
	}

	col := int(first.Weekday())
	b.WriteString("\n" + strings.Repeat(" ", col*cellWidth))
	for d := first; d.Month() == first.Month(); d = d.AddDate(0, 0, 1) {
		if col == len(weekdays) {
			b.WriteString("\n")
			col = 0
		}
		b.WriteString(m.cell(d))
		col++
	}
	return b.String()
}

func (m Model) cell(d time.Time) string {
	st := styles.T().S()
	text := fmt.Sprintf("%3d", d.Day())
	style := st.Base
	if m.marks[d] {
		text = fmt.Sprintf("%2d•", d.Day())
		style = st.Marked
	}
	if d.Equal(m.selected) {
		style = style.Reverse(true)
	}
	return style.Render(text) + " "
}
