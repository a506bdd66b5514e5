package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"
	"time"

	"github.com/spf13/cobra"

	"github.com/llehouerou/setbreak/internal/playback"
	"github.com/llehouerou/setbreak/internal/ui/render"
)

const (
	defaultSimTicks = 30
	defaultSimSpeed = 100 * time.Millisecond
)

func newSimulateCmd(o *options) *cobra.Command {
	var (
		ticks     int
		speed     time.Duration
		positions bool
	)
	cmd := &cobra.Command{
		Use:   "simulate <show-id>",
		Short: "Play a show on the simulated clock and print session events",
		Long: `simulate loads a show into a playback session, starts it and lets the
clock run for the given number of ticks. Each tick moves the position by one
second of show time; --speed sets how much wall time a tick takes.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if ticks <= 0 {
				return errors.New("--ticks must be positive")
			}
			s, err := o.show(args[0])
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			sim := &simulation{out: cmd.OutOrStdout(), verbose: positions || o.verbose}
			snap, err := sim.run(ctx, s.ID, func(session *playback.Session) {
				session.SelectShow(s)
				session.SetPlaying(true)
			}, ticks, speed, o.cfg.GetVolume())
			o.log.Debug().Str("show", s.ID).Int("ticks", sim.count()).Msg("simulation done")
			if err != nil {
				return err
			}
			if snap.Track == nil {
				fmt.Fprintln(cmd.OutOrStdout(), "stopped with nothing selected")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "stopped at track %d (%s) %s\n",
				snap.TrackIndex+1, snap.Track.Title, render.Duration(snap.Position))
			return nil
		},
	}
	cmd.Flags().IntVar(&ticks, "ticks", defaultSimTicks, "number of clock ticks to run")
	cmd.Flags().DurationVar(&speed, "speed", defaultSimSpeed, "wall time per tick")
	cmd.Flags().BoolVar(&positions, "positions", false, "also print every position change")
	return cmd
}

var errNothingToPlay = errors.New("nothing to play: the show has no tracks")

// simulation prints the events of one session while counting clock ticks.
type simulation struct {
	out     io.Writer
	verbose bool

	mu     sync.Mutex
	ticks  int
	target int
	done   chan struct{}
}

func (sim *simulation) count() int {
	sim.mu.Lock()
	defer sim.mu.Unlock()
	return sim.ticks
}

// run starts a clock on a new session, applies start and waits for target
// ticks or ctx to end. The session is paused once the target is reached.
func (sim *simulation) run(ctx context.Context, label string, start func(*playback.Session), target int, interval time.Duration, volume float64) (playback.Snapshot, error) {
	sim.target = target
	sim.done = make(chan struct{})

	session := playback.NewSession(playback.WithVolume(volume))
	sub := session.Subscribe(sim.handle)
	defer sub.Close()
	clock := playback.NewClock(session, interval, playback.OnTick(func(playback.TickResult) {
		sim.tick(session)
	}))
	clock.Start()
	defer clock.Stop()

	fmt.Fprintf(sim.out, "simulating %s, %d ticks every %s\n", label, target, clock.Interval())
	start(session)
	if !session.IsPlaying() {
		return session.Snapshot(), errNothingToPlay
	}

	select {
	case <-sim.done:
		return session.Snapshot(), nil
	case <-ctx.Done():
		return session.Snapshot(), ctx.Err()
	}
}

// tick counts one clock tick and pauses the session on the last one.
func (sim *simulation) tick(session *playback.Session) {
	sim.mu.Lock()
	if sim.ticks >= sim.target {
		sim.mu.Unlock()
		return
	}
	sim.ticks++
	last := sim.ticks == sim.target
	sim.mu.Unlock()

	if last {
		session.SetPlaying(false)
		close(sim.done)
	}
}

func (sim *simulation) handle(e playback.Event) {
	sim.mu.Lock()
	defer sim.mu.Unlock()

	switch e := e.(type) {
	case playback.ShowChange:
		if e.Current != nil {
			fmt.Fprintf(sim.out, "show     %s %s\n", e.Current.ID, e.Current.Venue)
		}
	case playback.TrackChange:
		if e.Current != nil {
			fmt.Fprintf(sim.out, "track    %d %s (%s)\n", e.Index+1, e.Current.Title, render.Duration(e.Current.Duration))
		}
	case playback.StateChange:
		fmt.Fprintf(sim.out, "state    %s -> %s\n", e.Previous, e.Current)
	case playback.PositionChange:
		if sim.verbose {
			fmt.Fprintf(sim.out, "position %s\n", render.Duration(e.Position))
		}
	case playback.VolumeChange:
	}
}
