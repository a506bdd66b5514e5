// Package search provides the find-as-you-type dialog over shows and tours.
package search

// Item represents a searchable item.
type Item interface {
	// FilterValue returns the string to match against.
	FilterValue() string
	// DisplayText returns the string to display in results.
	DisplayText() string
}

// TwoColumnItem is an optional interface for items that want a right-aligned
// second column, such as a venue beside a date.
type TwoColumnItem interface {
	Item
	LeftColumn() string
	RightColumn() string
}
