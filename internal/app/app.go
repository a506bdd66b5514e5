// Package app is the bubbletea root model. It routes between screens,
// dispatches key actions to the playback session and renders it.
package app

import (
	"math/rand/v2"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/llehouerou/setbreak/internal/catalog"
	"github.com/llehouerou/setbreak/internal/config"
	"github.com/llehouerou/setbreak/internal/keymap"
	"github.com/llehouerou/setbreak/internal/playback"
	"github.com/llehouerou/setbreak/internal/route"
	"github.com/llehouerou/setbreak/internal/search"
	"github.com/llehouerou/setbreak/internal/state"
	"github.com/llehouerou/setbreak/internal/ui/dialog"
)

// Deps are the collaborators the model is built from. Catalog, Session and
// State are required.
type Deps struct {
	Catalog *catalog.Catalog
	Session *playback.Session
	State   state.Interface
	Config  *config.Config
	Logger  zerolog.Logger
	Now     func() time.Time
	Rand    *rand.Rand
}

// Model is the root application model.
type Model struct {
	catalog *catalog.Catalog
	session *playback.Session
	store   state.Interface
	cfg     *config.Config
	log     zerolog.Logger
	keys    *keymap.Resolver
	feed    *playback.Feed
	now     func() time.Time
	rng     *rand.Rand

	searchItems []search.Item

	route         route.Route
	width, height int

	welcome     welcomeScreen
	browse      browseScreen
	tour        tourScreen
	player      playerScreen
	collections collectionsScreen
	history     historyScreen

	dialog dialog.Dialog
	status status
}

// New builds the model and subscribes it to the session. The start screen
// comes from the config; Close releases the subscription.
func New(d Deps) Model {
	if d.Config == nil {
		d.Config = &config.Config{}
	}
	if d.Now == nil {
		d.Now = time.Now
	}
	m := Model{
		catalog: d.Catalog,
		session: d.Session,
		store:   d.State,
		cfg:     d.Config,
		log:     d.Logger,
		keys:    keymap.NewResolver(keymap.Bindings),
		feed:    playback.NewFeed(d.Session),
		now:     d.Now,
		rng:     d.Rand,

		searchItems: searchItems(d.Catalog),
	}
	m.welcome = newWelcomeScreen(d.Catalog, d.Now())
	m.browse = newBrowseScreen(d.Catalog, d.Now())
	m.tour = newTourScreen()
	m.player = newPlayerScreen()
	m.player.setShow(d.Session.Snapshot())
	m.collections = newCollectionsScreen()
	m.history = newHistoryScreen()

	if err := m.Navigate(d.Config.GetStartScreen().Path()); err != nil {
		m.log.Warn().Err(err).Msg("start screen unavailable")
	}
	return m
}

// Init starts listening for session events.
func (m Model) Init() tea.Cmd {
	return tea.Batch(tea.SetWindowTitle("setbreak"), waitForEvent(m.feed))
}

// Close stops the session feed. Safe to call more than once.
func (m Model) Close() {
	m.feed.Close()
}

// Route returns the current route.
func (m Model) Route() route.Route {
	return m.route
}

// Status returns the status line text.
func (m Model) Status() string {
	return m.status.text
}
