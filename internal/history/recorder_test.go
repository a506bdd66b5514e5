package history

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/setbreak/internal/catalog"
	"github.com/llehouerou/setbreak/internal/playback"
	"github.com/llehouerou/setbreak/internal/state"
)

var fixedNow = time.Date(2024, time.July, 21, 21, 30, 0, 0, time.UTC)

func shows(t *testing.T) (*catalog.Show, *catalog.Show) {
	t.Helper()
	c, err := catalog.Default()
	require.NoError(t, err)
	a, _ := c.ByID("1997-12-31")
	b, _ := c.ByID("2019-12-30")
	return a, b
}

func TestRecorder_RecordsShowChanges(t *testing.T) {
	a, b := shows(t)
	store := state.NewMock()
	session := playback.NewSession()

	var saved []string
	r := Start(session, store,
		WithClock(func() time.Time { return fixedNow }),
		OnRecord(func(id string) { saved = append(saved, id) }),
	)
	defer r.Stop()

	session.SelectShow(a)
	session.SetPlaying(true)
	session.Next()
	session.SelectShow(b)
	session.SelectShow(b) // same show, no event
	session.Clear()

	hist, err := store.History(0)
	require.NoError(t, err)
	require.Len(t, hist, 2)
	assert.Equal(t, "2019-12-30", hist[0].ShowID)
	assert.Equal(t, "1997-12-31", hist[1].ShowID)
	assert.Equal(t, fixedNow, hist[0].PlayedAt)
	assert.Equal(t, []string{"1997-12-31", "2019-12-30"}, saved)
}

func TestRecorder_StopUnsubscribes(t *testing.T) {
	a, _ := shows(t)
	store := state.NewMock()
	session := playback.NewSession()

	r := Start(session, store)
	r.Stop()
	session.SelectShow(a)

	hist, _ := store.History(0)
	assert.Empty(t, hist)
}

func TestRecorder_LogsWriteFailures(t *testing.T) {
	a, _ := shows(t)
	store := state.NewMock()
	store.SetError(errors.New("disk on fire"))
	session := playback.NewSession()

	var buf bytes.Buffer
	called := false
	r := Start(session, store,
		WithLogger(zerolog.New(&buf)),
		OnRecord(func(string) { called = true }),
	)
	defer r.Stop()

	session.SelectShow(a)

	assert.False(t, called)
	assert.Contains(t, buf.String(), "record play failed")
	assert.Contains(t, buf.String(), "disk on fire")
}

func TestRecorder_WithSQLiteStore(t *testing.T) {
	a, _ := shows(t)
	store, err := state.Open()
	require.NoError(t, err)
	defer store.Close()

	session := playback.NewSession()
	r := Start(session, store, WithClock(func() time.Time { return fixedNow }))
	defer r.Stop()

	session.SelectShow(a)

	hist, err := store.History(10)
	require.NoError(t, err)
	require.Len(t, hist, 1)
	assert.Equal(t, a.ID, hist[0].ShowID)
	assert.True(t, hist[0].PlayedAt.Equal(fixedNow))
}
