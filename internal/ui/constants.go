// Package ui holds layout constants and the embeddable Base shared by the
// screen models.
package ui

const (
	// ScrollMargin is the number of rows kept visible above and below a list
	// cursor.
	ScrollMargin = 2

	// HeaderHeight is the screen tab bar plus its separator.
	HeaderHeight = 2

	// PlayerBarHeight is the persistent now-playing bar at the bottom.
	PlayerBarHeight = 3

	// StatusHeight is the status line under the player bar.
	StatusHeight = 1

	// ChromeHeight is everything that is not screen content.
	ChromeHeight = HeaderHeight + PlayerBarHeight + StatusHeight

	// MinProgressBarWidth is the narrowest progress bar worth drawing.
	MinProgressBarWidth = 5

	// CalendarWidth is the width of a rendered month grid.
	CalendarWidth = 7 * 4
)
