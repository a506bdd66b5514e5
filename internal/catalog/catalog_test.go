package catalog

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultCatalog(t *testing.T) *Catalog {
	t.Helper()
	c, err := Default()
	require.NoError(t, err)
	return c
}

func TestDefault_LoadsFixtures(t *testing.T) {
	c := defaultCatalog(t)

	require.Equal(t, 6, c.Len())
	nye, ok := c.ByID("1997-12-31")
	require.True(t, ok)
	assert.Equal(t, "Madison Square Garden", nye.Venue)
	assert.Equal(t, "Fall Tour 1997", nye.Tour)
	assert.InDelta(t, 4.8, nye.Rating, 1e-9)
	assert.Equal(t, []string{"NYE", "Epic"}, nye.Tags)
	require.Len(t, nye.Tracks, 8)
	assert.Equal(t, "AC/DC Bag", nye.Tracks[0].Title)
	assert.Equal(t, 315*time.Second, nye.Tracks[1].Duration)

	jim := nye.Tracks[2]
	assert.True(t, jim.HasHighlight())
	assert.Equal(t, 420*time.Second, jim.HighlightAt)
	assert.False(t, nye.Tracks[0].HasHighlight())
}

func TestAll_PreservesOrder(t *testing.T) {
	c := defaultCatalog(t)
	ids := make([]string, 0, c.Len())
	for _, s := range c.All() {
		ids = append(ids, s.ID)
	}
	assert.Equal(t, []string{
		"1997-12-31", "2023-04-15", "2022-08-05", "2024-07-21", "2019-12-30", "2021-10-30",
	}, ids)
}

func TestByID_Missing(t *testing.T) {
	c := defaultCatalog(t)
	s, ok := c.ByID("1900-01-01")
	assert.False(t, ok)
	assert.Nil(t, s)
}

func TestNew_CopiesInput(t *testing.T) {
	in := []Show{{ID: "a", Tags: []string{"x"}, Tracks: []Track{{ID: "t1", Title: "One"}}}}
	c, err := New(in)
	require.NoError(t, err)

	in[0].Tags[0] = "mutated"
	in[0].Tracks[0].Title = "mutated"

	s, _ := c.ByID("a")
	assert.Equal(t, "x", s.Tags[0])
	assert.Equal(t, "One", s.Tracks[0].Title)
}

func TestNew_Validation(t *testing.T) {
	tests := []struct {
		name  string
		shows []Show
		want  error
	}{
		{"empty show id", []Show{{}}, ErrEmptyID},
		{"duplicate show", []Show{{ID: "a"}, {ID: "a"}}, ErrDuplicateShow},
		{"empty track id", []Show{{ID: "a", Tracks: []Track{{}}}}, ErrEmptyID},
		{"duplicate track", []Show{{ID: "a", Tracks: []Track{{ID: "t"}, {ID: "t"}}}}, ErrDuplicateTrack},
		{"negative duration", []Show{{ID: "a", Tracks: []Track{{ID: "t", Duration: -time.Second}}}}, ErrNegativeDuration},
		{
			"highlight past end",
			[]Show{{ID: "a", Tracks: []Track{{ID: "t", Duration: time.Minute, Highlight: true, HighlightAt: 2 * time.Minute}}}},
			ErrInvalidHighlight,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.shows)
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestRecent(t *testing.T) {
	c := defaultCatalog(t)
	recent := c.Recent(3)
	require.Len(t, recent, 3)
	assert.Equal(t, "1997-12-31", recent[0].ID)
	assert.Equal(t, "2022-08-05", recent[2].ID)
	assert.Len(t, c.Recent(100), c.Len())
	assert.Empty(t, c.Recent(-1))
}

func TestRandom_IsUniformOverCatalog(t *testing.T) {
	c := defaultCatalog(t)
	r := rand.New(rand.NewPCG(1, 2)) //nolint:gosec // deterministic test source
	seen := make(map[string]int)
	for range 600 {
		s := c.Random(r)
		require.NotNil(t, s)
		seen[s.ID]++
	}
	assert.Len(t, seen, c.Len())
	for id, n := range seen {
		assert.Greater(t, n, 50, "show %s picked too rarely", id)
	}
}

func TestRandom_EmptyCatalog(t *testing.T) {
	c, err := New(nil)
	require.NoError(t, err)
	assert.Nil(t, c.Random(nil))
	assert.Nil(t, c.OnThisDay(time.Now()))
	assert.Nil(t, c.First())
}

func TestOnThisDay(t *testing.T) {
	c := defaultCatalog(t)

	// Year is ignored.
	s := c.OnThisDay(time.Date(2030, time.July, 21, 12, 0, 0, 0, time.UTC))
	require.NotNil(t, s)
	assert.Equal(t, "2024-07-21", s.ID)

	// No match falls back to the first show.
	s = c.OnThisDay(time.Date(2030, time.March, 3, 0, 0, 0, 0, time.UTC))
	require.NotNil(t, s)
	assert.Equal(t, "1997-12-31", s.ID)
}

func TestOnDate(t *testing.T) {
	c := defaultCatalog(t)

	s, ok := c.OnDate(time.Date(2019, time.December, 30, 0, 0, 0, 0, time.UTC))
	require.True(t, ok)
	assert.Equal(t, "2019-12-30", s.ID)

	_, ok = c.OnDate(time.Date(2018, time.December, 30, 0, 0, 0, 0, time.UTC))
	assert.False(t, ok)
}

func TestDates(t *testing.T) {
	c := defaultCatalog(t)
	dates := c.Dates()
	require.Len(t, dates, 6)
	assert.Equal(t, time.Date(1997, time.December, 31, 0, 0, 0, 0, time.UTC), dates[0])
}

func TestShowDate_FallsBackToID(t *testing.T) {
	d, err := ShowDate(&Show{ID: "2001-02-03", Date: "sometime"})
	require.NoError(t, err)
	assert.Equal(t, time.February, d.Month())

	_, err = ShowDate(&Show{ID: "x", Date: "y"})
	assert.Error(t, err)
}

func TestGroupByTour_Stable(t *testing.T) {
	c, err := New([]Show{
		{ID: "1", Tour: "B Tour"},
		{ID: "2", Tour: "A Tour"},
		{ID: "3", Tour: "B Tour"},
		{ID: "4", Tour: "A Tour"},
	})
	require.NoError(t, err)

	groups := c.GroupByTour()
	require.Len(t, groups, 2)
	assert.Equal(t, "B Tour", groups[0].Name)
	assert.Equal(t, "b-tour", groups[0].Slug)
	assert.Equal(t, "1", groups[0].Shows[0].ID)
	assert.Equal(t, "3", groups[0].Shows[1].ID)
	assert.Equal(t, "2", groups[1].Shows[0].ID)
	assert.Equal(t, "4", groups[1].Shows[1].ID)
}

func TestTours_YearRange(t *testing.T) {
	c, err := New([]Show{
		{ID: "2019-12-30", Tour: "Run"},
		{ID: "2023-01-01", Tour: "Run"},
		{ID: "2020-05-05", Tour: "Solo"},
	})
	require.NoError(t, err)

	tours := c.Tours()
	require.Len(t, tours, 2)
	assert.Equal(t, Tour{Name: "Run", Slug: "run", ShowCount: 2, YearRange: "2019-2023"}, tours[0])
	assert.Equal(t, "2020", tours[1].YearRange)
}

func TestTourBySlug(t *testing.T) {
	c := defaultCatalog(t)

	g, ok := c.TourBySlug("nye-run-2019")
	require.True(t, ok)
	assert.Equal(t, "NYE Run 2019", g.Name)
	require.Len(t, g.Shows, 1)

	_, ok = c.TourBySlug("winter-tour-1800")
	assert.False(t, ok)
}

func TestShow_TrackHelpers(t *testing.T) {
	c := defaultCatalog(t)
	s, _ := c.ByID("2022-08-05")

	assert.Equal(t, 2, s.TrackIndex("t3"))
	assert.Equal(t, -1, s.TrackIndex("t9"))
	assert.Equal(t, 1, s.IndexOf(s.Track(1)))
	assert.Equal(t, -1, s.IndexOf(&Track{ID: "t2"}))
	assert.Equal(t, -1, s.IndexOf(nil))
	assert.Nil(t, s.Track(4))
	assert.Equal(t, (342+876+754+698)*time.Second, s.TotalDuration())
}

func TestLoad_Bytes(t *testing.T) {
	c, err := Load([]byte(`
[[shows]]
id = "2000-01-01"
date = "January 1, 2000"
tour = "Millennium"

  [[shows.tracks]]
  id = "t1"
  title = "Auld Lang Syne"
  duration = 90
  highlight = true
  highlight_at = 30
`))
	require.NoError(t, err)
	s, ok := c.ByID("2000-01-01")
	require.True(t, ok)
	assert.Equal(t, 90*time.Second, s.Tracks[0].Duration)
	assert.Equal(t, 30*time.Second, s.Tracks[0].HighlightAt)
}

func TestLoad_RejectsBadHighlight(t *testing.T) {
	_, err := Load([]byte(`
[[shows]]
id = "a"
  [[shows.tracks]]
  id = "t1"
  duration = 10
  highlight = true
  highlight_at = 11
`))
	require.ErrorIs(t, err, ErrInvalidHighlight)
}
