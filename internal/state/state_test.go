package state

import (
	"errors"
	"slices"
	"testing"
	"time"
)

var testNow = time.Date(2024, time.July, 21, 20, 0, 0, 0, time.UTC)

// setupTestManager opens an in-memory manager with a fixed clock.
func setupTestManager(t *testing.T) *Manager {
	t.Helper()

	m, err := Open(WithClock(func() time.Time { return testNow }))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { m.Close() })
	return m
}

func TestOpen_Empty(t *testing.T) {
	m := setupTestManager(t)

	cols, err := m.ListCollections()
	if err != nil {
		t.Fatalf("ListCollections failed: %v", err)
	}
	if len(cols) != 0 {
		t.Errorf("expected no collections, got %d", len(cols))
	}

	hist, err := m.History(0)
	if err != nil {
		t.Fatalf("History failed: %v", err)
	}
	if len(hist) != 0 {
		t.Errorf("expected no history, got %d", len(hist))
	}
}

func TestOpen_IsolatedDatabases(t *testing.T) {
	a := setupTestManager(t)
	b := setupTestManager(t)

	if _, err := a.CreateCollection("Only In A"); err != nil {
		t.Fatalf("CreateCollection failed: %v", err)
	}
	cols, err := b.ListCollections()
	if err != nil {
		t.Fatalf("ListCollections failed: %v", err)
	}
	if len(cols) != 0 {
		t.Errorf("second manager sees %d collections, want 0", len(cols))
	}
}

func TestCreateCollection(t *testing.T) {
	m := setupTestManager(t)

	c, err := m.CreateCollection("  Summer Runs  ")
	if err != nil {
		t.Fatalf("CreateCollection failed: %v", err)
	}
	if c.Name != "Summer Runs" {
		t.Errorf("Name = %q, want trimmed name", c.Name)
	}
	if len(c.ID) != 36 {
		t.Errorf("ID = %q, want a UUID", c.ID)
	}
	if !c.CreatedAt.Equal(testNow) {
		t.Errorf("CreatedAt = %v, want %v", c.CreatedAt, testNow)
	}

	cols, _ := m.ListCollections()
	if len(cols) != 1 || cols[0].ID != c.ID {
		t.Errorf("ListCollections = %+v, want the new collection", cols)
	}
}

func TestCreateCollection_Errors(t *testing.T) {
	m := setupTestManager(t)

	if _, err := m.CreateCollection("   "); !errors.Is(err, ErrEmptyName) {
		t.Errorf("blank name: err = %v, want ErrEmptyName", err)
	}
	if _, err := m.CreateCollection("Keepers"); err != nil {
		t.Fatalf("CreateCollection failed: %v", err)
	}
	if _, err := m.CreateCollection("keepers"); !errors.Is(err, ErrDuplicateName) {
		t.Errorf("duplicate name: err = %v, want ErrDuplicateName", err)
	}
}

func TestDeleteCollection(t *testing.T) {
	m := setupTestManager(t)

	c, _ := m.CreateCollection("Temp")
	if err := m.AddToCollection(c.ID, "1997-12-31"); err != nil {
		t.Fatalf("AddToCollection failed: %v", err)
	}
	if err := m.DeleteCollection(c.ID); err != nil {
		t.Fatalf("DeleteCollection failed: %v", err)
	}
	if err := m.DeleteCollection(c.ID); !errors.Is(err, ErrCollectionNotFound) {
		t.Errorf("second delete: err = %v, want ErrCollectionNotFound", err)
	}

	// Entries cascade with the collection.
	var n int
	if err := m.DB().QueryRow(`SELECT COUNT(*) FROM collection_shows`).Scan(&n); err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if n != 0 {
		t.Errorf("collection_shows has %d rows after delete, want 0", n)
	}
}

func TestAddRemoveCollectionShows(t *testing.T) {
	m := setupTestManager(t)
	c, _ := m.CreateCollection("Mix")

	for _, id := range []string{"2019-12-30", "1997-12-31", "2019-12-30"} {
		if err := m.AddToCollection(c.ID, id); err != nil {
			t.Fatalf("AddToCollection(%s) failed: %v", id, err)
		}
	}
	ids, err := m.CollectionShows(c.ID)
	if err != nil {
		t.Fatalf("CollectionShows failed: %v", err)
	}
	if !slices.Equal(ids, []string{"2019-12-30", "1997-12-31"}) {
		t.Errorf("CollectionShows = %v", ids)
	}

	if err := m.RemoveFromCollection(c.ID, "2019-12-30"); err != nil {
		t.Fatalf("RemoveFromCollection failed: %v", err)
	}
	ids, _ = m.CollectionShows(c.ID)
	if !slices.Equal(ids, []string{"1997-12-31"}) {
		t.Errorf("after remove = %v", ids)
	}

	if err := m.AddToCollection("missing", "x"); !errors.Is(err, ErrCollectionNotFound) {
		t.Errorf("unknown collection: err = %v, want ErrCollectionNotFound", err)
	}
	if err := m.RemoveFromCollection("missing", "x"); !errors.Is(err, ErrCollectionNotFound) {
		t.Errorf("unknown collection: err = %v, want ErrCollectionNotFound", err)
	}
}

func TestToggleInCollection(t *testing.T) {
	m := setupTestManager(t)
	c, _ := m.CreateCollection("Toggle")

	added, err := m.ToggleInCollection(c.ID, "2022-08-05")
	if err != nil || !added {
		t.Fatalf("first toggle = %v, %v; want true, nil", added, err)
	}
	added, err = m.ToggleInCollection(c.ID, "2022-08-05")
	if err != nil || added {
		t.Fatalf("second toggle = %v, %v; want false, nil", added, err)
	}
	ids, _ := m.CollectionShows(c.ID)
	if len(ids) != 0 {
		t.Errorf("CollectionShows = %v, want empty", ids)
	}
}

func TestSeedDefaults(t *testing.T) {
	m := setupTestManager(t)

	if err := m.SeedDefaults(); err != nil {
		t.Fatalf("SeedDefaults failed: %v", err)
	}
	if err := m.SeedDefaults(); err != nil {
		t.Fatalf("second SeedDefaults failed: %v", err)
	}

	cols, err := m.ListCollections()
	if err != nil {
		t.Fatalf("ListCollections failed: %v", err)
	}
	if len(cols) != 2 {
		t.Fatalf("got %d collections, want 2", len(cols))
	}
	if cols[0].Name != FavoritesName || !slices.Equal(cols[0].ShowIDs, []string{"1997-12-31", "2024-07-21"}) {
		t.Errorf("favorites = %+v", cols[0])
	}
	if cols[1].Name != AttendedName || !slices.Equal(cols[1].ShowIDs, []string{"2023-04-15"}) {
		t.Errorf("attended = %+v", cols[1])
	}

	fav, err := m.CollectionByName("favorites")
	if err != nil || fav.ID != cols[0].ID {
		t.Errorf("CollectionByName = %+v, %v", fav, err)
	}
	if _, err := m.CollectionByName("nope"); !errors.Is(err, ErrCollectionNotFound) {
		t.Errorf("CollectionByName(nope) err = %v", err)
	}
}

func TestHistory_NewestFirst(t *testing.T) {
	m := setupTestManager(t)

	plays := []struct {
		show string
		at   time.Time
	}{
		{"1997-12-31", testNow.Add(-2 * time.Hour)},
		{"2023-04-15", testNow.Add(-time.Hour)},
		{"2019-12-30", testNow},
		{"1997-12-31", testNow},
	}
	for _, p := range plays {
		if err := m.RecordPlay(p.show, p.at); err != nil {
			t.Fatalf("RecordPlay failed: %v", err)
		}
	}

	hist, err := m.History(0)
	if err != nil {
		t.Fatalf("History failed: %v", err)
	}
	var got []string
	for _, e := range hist {
		got = append(got, e.ShowID)
	}
	want := []string{"1997-12-31", "2019-12-30", "2023-04-15", "1997-12-31"}
	if !slices.Equal(got, want) {
		t.Errorf("History = %v, want %v", got, want)
	}
	if !hist[2].PlayedAt.Equal(testNow.Add(-time.Hour)) {
		t.Errorf("PlayedAt = %v", hist[2].PlayedAt)
	}

	limited, _ := m.History(2)
	if len(limited) != 2 {
		t.Errorf("History(2) returned %d entries", len(limited))
	}

	if err := m.ClearHistory(); err != nil {
		t.Fatalf("ClearHistory failed: %v", err)
	}
	hist, _ = m.History(0)
	if len(hist) != 0 {
		t.Errorf("History after clear = %v", hist)
	}
}

func TestMock_MatchesManagerBehavior(t *testing.T) {
	impls := map[string]Interface{
		"manager": setupTestManager(t),
		"mock":    NewMock(),
	}
	for name, s := range impls {
		t.Run(name, func(t *testing.T) {
			c, err := s.CreateCollection("Faves")
			if err != nil {
				t.Fatalf("CreateCollection failed: %v", err)
			}
			if _, err := s.CreateCollection("faves"); !errors.Is(err, ErrDuplicateName) {
				t.Errorf("duplicate err = %v", err)
			}
			if added, _ := s.ToggleInCollection(c.ID, "a"); !added {
				t.Error("toggle did not add")
			}
			_ = s.AddToCollection(c.ID, "b")
			ids, _ := s.CollectionShows(c.ID)
			if !slices.Equal(ids, []string{"a", "b"}) {
				t.Errorf("CollectionShows = %v", ids)
			}

			_ = s.RecordPlay("a", testNow)
			_ = s.RecordPlay("b", testNow.Add(time.Minute))
			hist, _ := s.History(1)
			if len(hist) != 1 || hist[0].ShowID != "b" {
				t.Errorf("History(1) = %+v", hist)
			}
		})
	}
}
