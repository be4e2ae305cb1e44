package replay

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/dshills/railcab/internal/cmdlog"
)

// State is the engine lifecycle state.
type State uint8

// Engine states.
const (
	StateIdle State = iota
	StateReplaying
	StatePaused
	StateFinished
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateReplaying:
		return "replaying"
	case StatePaused:
		return "paused"
	case StateFinished:
		return "finished"
	default:
		return fmt.Sprintf("State(%d)", uint8(s))
	}
}

// Engine replays a recorded log against bound receivers. Entries are
// dispatched strictly in append order on the goroutine that calls Run;
// timestamps pace dispatch but never reorder it, so an entry whose
// time is already in the past fires immediately. Pause and Resume may
// be called from other goroutines.
type Engine struct {
	entries   []cmdlog.Entry
	receivers *Receivers
	logger    *slog.Logger
	now       func() time.Time

	mu        sync.Mutex
	state     State
	started   time.Time
	pausedAt  time.Time
	pausedFor time.Duration
	resumed   chan struct{}
}

// NewEngine builds an engine over a copy of entries. logger may be
// nil, which uses slog.Default().
func NewEngine(entries []cmdlog.Entry, receivers *Receivers, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{
		entries:   append([]cmdlog.Entry(nil), entries...),
		receivers: receivers,
		logger:    logger,
		now:       time.Now,
	}
}

// State returns the current lifecycle state.
func (e *Engine) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

// Pause suspends pacing after the current dispatch, if any. A no-op
// unless the engine is replaying.
func (e *Engine) Pause() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.state != StateReplaying {
		return
	}
	e.state = StatePaused
	e.pausedAt = e.now()
	e.resumed = make(chan struct{})
}

// Resume continues a paused replay. Time spent paused does not count
// toward entry timestamps. A no-op unless the engine is paused.
func (e *Engine) Resume() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.state != StatePaused {
		return
	}
	e.pausedFor += e.now().Sub(e.pausedAt)
	e.state = StateReplaying
	close(e.resumed)
}

// Run replays every entry and blocks until the log is exhausted or ctx
// is cancelled. All required receiver roles are validated up front;
// an unbound role fails the run before anything is dispatched.
// Cancellation stops the loop before the next dispatch and leaves
// already-dispatched effects in place.
func (e *Engine) Run(ctx context.Context) error {
	if err := e.receivers.Complete(e.entries); err != nil {
		return err
	}

	e.mu.Lock()
	if e.state != StateIdle {
		e.mu.Unlock()
		return ErrAlreadyRan
	}
	e.state = StateReplaying
	e.started = e.now()
	e.mu.Unlock()

	e.logger.Info("replay started", "entries", len(e.entries))

	for i, entry := range e.entries {
		if err := e.wait(ctx, entry.Time); err != nil {
			e.finish()
			return fmt.Errorf("replay stopped before entry %d: %w", i, err)
		}
		e.receivers.dispatch(entry)
		e.logger.Debug("dispatched", "entry", entry.Describe(), "role", entry.Role())
	}

	e.finish()
	e.logger.Info("replay finished")
	return nil
}

// wait blocks until the engine-relative clock, which excludes paused
// spans, reaches at seconds. A target already in the past returns
// immediately. Pausing during the wait pushes the target out by the
// paused duration, so the loop recomputes it after every wakeup.
func (e *Engine) wait(ctx context.Context, at float64) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	for {
		e.mu.Lock()
		if e.state == StatePaused {
			resumed := e.resumed
			e.mu.Unlock()
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-resumed:
				continue
			}
		}
		target := e.started.Add(e.pausedFor + time.Duration(at*float64(time.Second)))
		e.mu.Unlock()

		delay := target.Sub(e.now())
		if delay <= 0 {
			return nil
		}

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}
}

func (e *Engine) finish() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.state = StateFinished
}
