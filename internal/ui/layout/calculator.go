// Package layout provides pure functions for screen dimension calculations.
package layout

import "github.com/llehouerou/setbreak/internal/ui"

// NarrowThreshold is the width below which side-by-side panes stack.
const NarrowThreshold = 90

// IsNarrow reports whether panes should stack vertically.
func IsNarrow(width int) bool {
	return width < NarrowThreshold
}

// ContentHeight is the window height left for a screen once the header,
// player bar and status line are drawn.
func ContentHeight(windowHeight int) int {
	return max(windowHeight-ui.ChromeHeight, 0)
}

// Split divides width into a left and right pane with a one cell gutter.
// The left pane gets num/den of the width.
func Split(width, num, den int) (left, right int) {
	if den <= 0 || width <= 1 {
		return max(width, 0), 0
	}
	left = (width - 1) * num / den
	return left, width - 1 - left
}

// BrowseWidths returns the tours, recent shows and calendar pane widths of
// the browse screen. The calendar keeps its fixed width; the rest is shared.
func BrowseWidths(width int) (tours, recent, calendar int) {
	calendar = ui.CalendarWidth + 2
	rest := max(width-calendar-1, 0)
	tours, recent = Split(rest, 1, 2)
	return tours, recent, calendar
}

// PlayerHeights returns the set list and card heights when the player
// screen is stacked.
func PlayerHeights(height, cardHeight int) (setlist, card int) {
	card = min(cardHeight, height)
	return max(height-card, 0), card
}
