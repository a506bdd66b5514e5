package main

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/llehouerou/setbreak/internal/app"
	"github.com/llehouerou/setbreak/internal/catalog"
	"github.com/llehouerou/setbreak/internal/config"
	"github.com/llehouerou/setbreak/internal/history"
	"github.com/llehouerou/setbreak/internal/logging"
	"github.com/llehouerou/setbreak/internal/playback"
	"github.com/llehouerou/setbreak/internal/state"
)

// env holds everything that has to be shut down on exit.
type env struct {
	model    app.Model
	clock    *playback.Clock
	recorder *history.Recorder
	store    *state.Manager
	logFile  io.Closer
	log      zerolog.Logger
}

func setup() (*env, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	log, logFile, err := logging.New(cfg.GetLogFile(), cfg.GetLogLevel())
	if err != nil {
		// Fall back to a no-op logger.
		log, logFile = zerolog.Nop(), nil
	}

	var cat *catalog.Catalog
	if cfg.HasCatalog() {
		cat, err = catalog.LoadFile(cfg.Catalog)
	} else {
		cat, err = catalog.Default()
	}
	if err != nil {
		closeQuietly(logFile)
		return nil, err
	}

	store, err := state.Open()
	if err != nil {
		closeQuietly(logFile)
		return nil, fmt.Errorf("open state: %w", err)
	}
	if err := store.SeedDefaults(); err != nil {
		log.Warn().Err(err).Msg("seed default collections")
	}

	session := playback.NewSession(playback.WithVolume(cfg.GetVolume()))
	clock := playback.NewClock(session, cfg.GetTickInterval())
	clock.Start()
	recorder := history.Start(session, store, history.WithLogger(log))

	log.Info().
		Int("shows", cat.Len()).
		Dur("tick", clock.Interval()).
		Msg("setbreak starting")

	return &env{
		model: app.New(app.Deps{
			Catalog: cat,
			Session: session,
			State:   store,
			Config:  cfg,
			Logger:  log,
		}),
		clock:    clock,
		recorder: recorder,
		store:    store,
		logFile:  logFile,
		log:      log,
	}, nil
}

func (r *env) close() {
	r.model.Close()
	r.clock.Stop()
	r.recorder.Stop()
	if err := r.store.Close(); err != nil {
		r.log.Warn().Err(err).Msg("close state")
	}
	r.log.Info().Msg("setbreak stopped")
	closeQuietly(r.logFile)
}

func closeQuietly(c io.Closer) {
	if c != nil {
		_ = c.Close()
	}
}

func main() {
	r, err := setup()
	if err != nil {
		fmt.Printf("Error initializing: %v\n", err)
		os.Exit(1)
	}

	p := tea.NewProgram(r.model, tea.WithAltScreen())
	_, err = p.Run()
	r.close()
	if err != nil {
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}
}
