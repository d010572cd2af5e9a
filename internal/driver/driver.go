// Package driver runs the frame loop around a game state: it feeds
// scheduled commands in, paces frames and steps the simulation every
// few unpaused frames.
package driver

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/napolitain/gatherers/internal/config"
	"github.com/napolitain/gatherers/internal/game"
	"github.com/napolitain/gatherers/internal/scenario"
)

// StopReason tells why a run ended
type StopReason int

const (
	StopMaxTicks StopReason = iota
	StopCancelled
	StopStalled // paused with no scheduled command left to resume
)

func (r StopReason) String() string {
	switch r {
	case StopMaxTicks:
		return "max ticks reached"
	case StopCancelled:
		return "cancelled"
	case StopStalled:
		return "stalled while paused"
	default:
		return "unknown"
	}
}

// Observer is called with the state after every tick
type Observer func(g *game.GameState)

// Result summarizes a finished run
type Result struct {
	RunID    uuid.UUID
	Ticks    uint64
	Frames   uint64
	Commands int
	Reason   StopReason
}

// Driver owns the frame loop for one run
type Driver struct {
	state    *game.GameState
	schedule *scenario.Schedule
	cfg      config.DriverConfig
	observer Observer
	logger   *slog.Logger
	runID    uuid.UUID
}

// Option configures a Driver
type Option func(*Driver)

// WithObserver registers a callback run after every tick
func WithObserver(o Observer) Option {
	return func(d *Driver) {
		d.observer = o
	}
}

// WithLogger overrides the logger
func WithLogger(l *slog.Logger) Option {
	return func(d *Driver) {
		if l != nil {
			d.logger = l
		}
	}
}

// WithRunID fixes the run id instead of generating one
func WithRunID(id uuid.UUID) Option {
	return func(d *Driver) {
		d.runID = id
	}
}

// New creates a driver. A nil schedule runs with no scripted commands.
func New(state *game.GameState, schedule *scenario.Schedule, cfg config.DriverConfig, opts ...Option) *Driver {
	if schedule == nil {
		schedule = scenario.NewSchedule()
	}
	if cfg.FramesPerTick < 1 {
		cfg.FramesPerTick = 1
	}
	d := &Driver{
		state:    state,
		schedule: schedule,
		cfg:      cfg,
		logger:   slog.Default(),
		runID:    uuid.New(),
	}
	for _, opt := range opts {
		opt(d)
	}
	d.logger = d.logger.With("run_id", d.runID.String())
	return d
}

// RunID returns the id attached to this run's logs
func (d *Driver) RunID() uuid.UUID {
	return d.runID
}

// Run drives frames until MaxTicks ticks have elapsed, ctx is cancelled,
// or the game is paused with nothing left to unpause it. With MaxTicks
// zero and no pause, only ctx ends the run.
func (d *Driver) Run(ctx context.Context) Result {
	var limiter *rate.Limiter
	if d.cfg.FrameInterval > 0 {
		limiter = rate.NewLimiter(rate.Every(d.cfg.FrameInterval), 1)
	}

	res := Result{RunID: d.runID}
	d.logger.Info("run started",
		"frame_interval", d.cfg.FrameInterval,
		"frames_per_tick", d.cfg.FramesPerTick,
		"max_ticks", d.cfg.MaxTicks,
		"scheduled", d.schedule.Len(),
	)

	counter := 0
	for {
		if d.cfg.MaxTicks > 0 && d.state.Tick() >= uint64(d.cfg.MaxTicks) {
			res.Reason = StopMaxTicks
			break
		}
		if ctx.Err() != nil {
			res.Reason = StopCancelled
			break
		}
		if limiter != nil {
			if err := limiter.Wait(ctx); err != nil {
				res.Reason = StopCancelled
				break
			}
		}
		res.Frames++

		res.Commands += d.submitDue()

		if d.state.IsPaused() {
			if d.stalled() {
				res.Reason = StopStalled
				break
			}
			continue
		}

		counter = (counter + 1) % d.cfg.FramesPerTick
		if counter == 0 {
			d.state.Step()
			if d.observer != nil {
				d.observer(d.state)
			}
		}
	}

	res.Ticks = d.state.Tick()
	d.logger.Info("run stopped",
		"reason", res.Reason.String(),
		"ticks", res.Ticks,
		"frames", res.Frames,
		"commands", res.Commands,
	)
	return res
}

// submitDue hands every command due at the current tick to the game
func (d *Driver) submitDue() int {
	tick := d.state.Tick()
	n := 0
	for _, c := range d.schedule.Due(tick) {
		action, err := c.GameAction()
		if err != nil {
			d.logger.Warn("skipping command", "tick", tick, "action", c.Action, "error", err)
			continue
		}
		d.logger.Debug("submit", "tick", tick, "action", action.String())
		d.state.HandleAction(action)
		n++
	}
	return n
}

// stalled reports whether no pending command can run while ticks are frozen
func (d *Driver) stalled() bool {
	next, ok := d.schedule.Peek()
	return !ok || next.At > d.state.Tick()
}
