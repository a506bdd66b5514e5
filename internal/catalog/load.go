package catalog

import (
	_ "embed"
	"fmt"
	"time"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
)

//go:embed fixtures.toml
var defaultFixtures []byte

type fixtureFile struct {
	Shows []fixtureShow `koanf:"shows"`
}

type fixtureShow struct {
	ID       string         `koanf:"id"`
	Date     string         `koanf:"date"`
	Venue    string         `koanf:"venue"`
	Location string         `koanf:"location"`
	Tour     string         `koanf:"tour"`
	Rating   float64        `koanf:"rating"`
	Tags     []string       `koanf:"tags"`
	Source   string         `koanf:"source"`
	Tracks   []fixtureTrack `koanf:"tracks"`
}

type fixtureTrack struct {
	ID          string `koanf:"id"`
	Title       string `koanf:"title"`
	Duration    int    `koanf:"duration"`     // seconds
	Highlight   bool   `koanf:"highlight"`    // jam chart entry
	HighlightAt int    `koanf:"highlight_at"` // seconds into the track
}

// Default returns the catalog built from the embedded fixtures.
func Default() (*Catalog, error) {
	return load(rawbytes.Provider(defaultFixtures))
}

// LoadFile builds a catalog from a TOML fixture file.
func LoadFile(path string) (*Catalog, error) {
	c, err := load(file.Provider(path))
	if err != nil {
		return nil, fmt.Errorf("load catalog %s: %w", path, err)
	}
	return c, nil
}

// Load builds a catalog from TOML fixture bytes.
func Load(data []byte) (*Catalog, error) {
	return load(rawbytes.Provider(data))
}

func load(p koanf.Provider) (*Catalog, error) {
	k := koanf.New(".")
	if err := k.Load(p, toml.Parser()); err != nil {
		return nil, err
	}
	var f fixtureFile
	if err := k.Unmarshal("", &f); err != nil {
		return nil, err
	}
	shows := make([]Show, len(f.Shows))
	for i, fs := range f.Shows {
		shows[i] = fs.show()
	}
	return New(shows)
}

func (fs fixtureShow) show() Show {
	tracks := make([]Track, len(fs.Tracks))
	for i, ft := range fs.Tracks {
		tracks[i] = Track{
			ID:          ft.ID,
			Title:       ft.Title,
			Duration:    time.Duration(ft.Duration) * time.Second,
			Highlight:   ft.Highlight,
			HighlightAt: time.Duration(ft.HighlightAt) * time.Second,
		}
	}
	return Show{
		ID:       fs.ID,
		Date:     fs.Date,
		Venue:    fs.Venue,
		Location: fs.Location,
		Tour:     fs.Tour,
		Rating:   fs.Rating,
		Tags:     fs.Tags,
		Tracks:   tracks,
		Source:   fs.Source,
	}
}
