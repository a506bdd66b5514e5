// Package headerbar renders the screen tabs at the top of the window.
package headerbar

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/setbreak/internal/route"
	"github.com/llehouerou/setbreak/internal/ui"
	"github.com/llehouerou/setbreak/internal/ui/render"
	"github.com/llehouerou/setbreak/internal/ui/styles"
)

// Height is the tab row plus its separator.
const Height = ui.HeaderHeight

const title = "setbreak"

type tab struct {
	key    string
	screen route.Screen
}

// tabs follow the 1-5 screen keys.
var tabs = []tab{
	{"1", route.Welcome},
	{"2", route.Browse},
	{"3", route.Player},
	{"4", route.Collections},
	{"5", route.History},
}

// Render returns the header for the active screen. The tour detail screen
// lights up the Browse tab it was opened from.
func Render(active route.Screen, width int) string {
	if active == route.TourDetail {
		active = route.Browse
	}
	st := styles.T().S()

	parts := make([]string, 0, len(tabs))
	for _, t := range tabs {
		style := st.Tab
		if t.screen == active {
			style = st.TabActive
		}
		parts = append(parts, st.Subtle.Render(t.key)+style.Render(t.screen.String()))
	}
	row := render.Row(styles.Banner(title), strings.Join(parts, " "), width)
	if lipgloss.Width(row) > width {
		row = render.TruncateStyled(strings.Join(parts, " "), width)
	}
	return row + "\n" + st.Subtle.Render(render.Separator(width))
}
