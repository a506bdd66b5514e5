// Package route maps screen paths to screens.
package route

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ErrUnknownRoute is returned by Parse for paths outside the route table.
var ErrUnknownRoute = errors.New("unknown route")

// Screen identifies a top-level screen.
type Screen int

const (
	Welcome Screen = iota
	Player
	Browse
	Collections
	History
	TourDetail
)

// String returns the screen name.
func (s Screen) String() string {
	switch s {
	case Welcome:
		return "Welcome"
	case Player:
		return "Player"
	case Browse:
		return "Browse"
	case Collections:
		return "Collections"
	case History:
		return "History"
	case TourDetail:
		return "Tour"
	default:
		return "Unknown"
	}
}

const tourPrefix = "/tour/"

var staticRoutes = map[string]Screen{
	"/":            Welcome,
	"/player":      Player,
	"/browse":      Browse,
	"/collections": Collections,
	"/history":     History,
}

// Route is a resolved path.
type Route struct {
	Screen   Screen
	TourSlug string // set only for TourDetail
}

// Parse resolves a path against the route table. A trailing slash is
// ignored except on the root path.
func Parse(path string) (Route, error) {
	if path == "" {
		path = "/"
	}
	if len(path) > 1 {
		path = strings.TrimSuffix(path, "/")
	}
	if s, ok := staticRoutes[path]; ok {
		return Route{Screen: s}, nil
	}
	if slug, ok := strings.CutPrefix(path, tourPrefix); ok && slug != "" && !strings.Contains(slug, "/") {
		return Route{Screen: TourDetail, TourSlug: slug}, nil
	}
	return Route{}, fmt.Errorf("%w: %s", ErrUnknownRoute, path)
}

// Path returns the canonical path for the route.
func (r Route) Path() string {
	switch r.Screen {
	case Welcome:
		return "/"
	case Player:
		return "/player"
	case Browse:
		return "/browse"
	case Collections:
		return "/collections"
	case History:
		return "/history"
	case TourDetail:
		return tourPrefix + r.TourSlug
	default:
		return "/"
	}
}

// Tour returns the detail route for a tour display name.
func Tour(name string) Route {
	return Route{Screen: TourDetail, TourSlug: Slug(name)}
}

// Slug lowercases a tour name and joins its words with hyphens.
func Slug(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), "-")
}

// TourName reverses Slug: hyphens become spaces and each word is title
// cased. Punctuation and original casing are not recovered, so the result
// should be compared case-insensitively.
func TourName(slug string) string {
	return cases.Title(language.English).String(strings.ReplaceAll(slug, "-", " "))
}
