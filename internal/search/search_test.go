package search

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/setbreak/internal/ui/dialog"
	"github.com/llehouerou/setbreak/internal/ui/testutil"
)

// testItem implements Item for testing.
type testItem struct {
	filter  string
	display string
}

func (t testItem) FilterValue() string { return t.filter }

func (t testItem) DisplayText() string { return t.display }

type twoCol struct {
	testItem
	right string
}

func (t twoCol) LeftColumn() string  { return t.display }
func (t twoCol) RightColumn() string { return t.right }

func venues() []Item {
	return []Item{
		testItem{"1997-12-31 Madison Square Garden New York", "MSG"},
		testItem{"2023-04-15 The Forum Inglewood", "Forum"},
		testItem{"2022-08-05 Dick's Sporting Goods Park Commerce City", "Dick's"},
		testItem{"2019-12-30 Madison Square Garden New York", "MSG 2019"},
		testItem{"1998-07-01 Café Rouge Montréal", "Café"},
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Hello", "hello"},
		{"MixedCase", "mixedcase"},
		{"", ""},
		{"Café", "cafe"},
		{"Montréal", "montreal"},
		{"Ñoño", "nono"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := normalize(tt.input); got != tt.expected {
				t.Errorf("normalize(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestTrigrams(t *testing.T) {
	got := trigrams("cat")
	for _, want := range []string{"  c", " ca", "cat", "at ", "t  "} {
		if _, ok := got[want]; !ok {
			t.Errorf("trigrams(cat) missing %q", want)
		}
	}
	if _, ok := got["   "]; ok {
		t.Error("all-space trigram included")
	}
	if trigrams("") != nil {
		t.Error("trigrams of empty string should be nil")
	}
}

func TestMatcher_EmptyQueryMatchesAll(t *testing.T) {
	m := NewMatcher(venues())
	got := m.Search("   ")
	if len(got) != m.Len() {
		t.Fatalf("got %d matches, want %d", len(got), m.Len())
	}
	for i, match := range got {
		if match.Index != i {
			t.Errorf("match %d index = %d", i, match.Index)
		}
	}
}

func TestMatcher_AllWordsMustMatch(t *testing.T) {
	m := NewMatcher(venues())

	got := m.Search("madison 2019")
	if len(got) != 1 || got[0].Index != 3 {
		t.Errorf("Search(madison 2019) = %+v, want only index 3", got)
	}

	got = m.Search("madison")
	if len(got) != 2 {
		t.Errorf("Search(madison) = %+v, want 2 matches", got)
	}

	if got := m.Search("zzzz"); len(got) != 0 {
		t.Errorf("Search(zzzz) = %+v, want none", got)
	}
}

func TestMatcher_Typos(t *testing.T) {
	m := NewMatcher(venues())
	got := m.Search("madisn")
	if len(got) == 0 {
		t.Fatal("no match for a typo")
	}
	if got[0].Index != 0 && got[0].Index != 3 {
		t.Errorf("best match = %d, want a Madison Square Garden show", got[0].Index)
	}
}

func TestMatcher_WholeWordRanksFirst(t *testing.T) {
	m := NewMatcher([]Item{
		testItem{"forums of old", "partial"},
		testItem{"the forum", "exact"},
	})
	got := m.Search("forum")
	if len(got) != 2 {
		t.Fatalf("got %d matches, want 2", len(got))
	}
	if got[0].Index != 1 {
		t.Errorf("order = %+v, want the whole word first", got)
	}

	got = m.Search("frum")
	if len(got) == 0 {
		t.Fatal("no match for frum")
	}
}

func TestMatcher_Diacritics(t *testing.T) {
	m := NewMatcher(venues())
	got := m.Search("cafe montreal")
	if len(got) != 1 || got[0].Index != 4 {
		t.Errorf("Search(cafe montreal) = %+v, want index 4", got)
	}
}

func typeQuery(m *Model, q string) {
	for _, k := range testutil.Type(q) {
		m.Update(k)
	}
}

func TestModel_TypingFilters(t *testing.T) {
	m := New(venues(), 100, 40)
	if len(m.Matches()) != 5 {
		t.Fatalf("initial matches = %d, want 5", len(m.Matches()))
	}

	typeQuery(m, "forum")
	if m.Query() != "forum" {
		t.Errorf("Query = %q", m.Query())
	}
	if got := m.Matches(); len(got) != 1 || got[0].DisplayText() != "Forum" {
		t.Errorf("Matches = %v", got)
	}

	m.Update(testutil.Key("backspace"))
	if m.Query() != "foru" {
		t.Errorf("Query after backspace = %q", m.Query())
	}

	m.Update(tea.KeyMsg{Type: tea.KeyCtrlU})
	if m.Query() != "" || len(m.Matches()) != 5 {
		t.Errorf("ctrl+u left %q with %d matches", m.Query(), len(m.Matches()))
	}
}

func TestModel_SpacesSeparateWords(t *testing.T) {
	m := New(venues(), 100, 40)
	typeQuery(m, "madison")
	m.Update(testutil.Key(" "))
	typeQuery(m, "2019")
	if got := m.Matches(); len(got) != 1 || got[0].DisplayText() != "MSG 2019" {
		t.Errorf("Matches = %v", got)
	}
}

func TestModel_EnterPicksSelected(t *testing.T) {
	m := New(venues(), 100, 40)
	typeQuery(m, "madison")
	m.Update(testutil.Key("down"))

	_, cmd := m.Update(testutil.Key("enter"))
	if cmd == nil {
		t.Fatal("enter returned no command")
	}
	res, ok := cmd().(ResultMsg)
	if !ok {
		t.Fatalf("msg = %T, want ResultMsg", cmd())
	}
	if res.Item.DisplayText() != "MSG 2019" {
		t.Errorf("picked %q, want second match", res.Item.DisplayText())
	}
}

func TestModel_EnterWithoutMatches(t *testing.T) {
	m := New(venues(), 100, 40)
	typeQuery(m, "zzzz")
	if _, cmd := m.Update(testutil.Key("enter")); cmd != nil {
		t.Error("enter with no matches returned a command")
	}
	if !strings.Contains(testutil.StripANSI(m.View()), "No matches") {
		t.Error("view missing empty message")
	}
}

func TestModel_EscCloses(t *testing.T) {
	m := New(venues(), 100, 40)
	_, cmd := m.Update(testutil.Key("esc"))
	if cmd == nil {
		t.Fatal("esc returned no command")
	}
	if _, ok := cmd().(dialog.Closed); !ok {
		t.Errorf("msg = %T, want dialog.Closed", cmd())
	}
}

func TestModel_View(t *testing.T) {
	items := []Item{twoCol{testItem{"the forum", "2023-04-15 The Forum"}, "Inglewood, CA"}}
	m := New(items, 100, 40)
	typeQuery(m, "for")
	view := testutil.StripANSI(m.View())
	if !strings.Contains(view, "> for") {
		t.Errorf("view missing query:\n%s", view)
	}
	line := testutil.FindLine(view, "The Forum")
	if !strings.Contains(line, "Inglewood, CA") {
		t.Errorf("result line = %q, want right column", line)
	}
}

func TestModel_ScrollsLongResults(t *testing.T) {
	items := make([]Item, 50)
	for i := range items {
		items[i] = testItem{"show", "show " + strings.Repeat("x", i%3)}
	}
	m := New(items, 100, 20)
	for range 30 {
		m.Update(testutil.Key("down"))
	}
	if _, ok := m.Selected(); !ok {
		t.Fatal("nothing selected")
	}
	if m.cursor.Pos() != 30 {
		t.Errorf("cursor = %d, want 30", m.cursor.Pos())
	}
	if lines := len(testutil.Lines(m.View())); lines > 20 {
		t.Errorf("view has %d lines for a 20 line screen", lines)
	}
}
