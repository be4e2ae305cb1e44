// Package capture reads live keyboard input from a terminal and
// reconstructs momentary keyboard snapshots for recording.
package capture

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/railcab/internal/chord"
)

// Key-state reconstruction pacing.
const (
	// defaultHold is how long a key stays pressed after its event.
	// Terminals report presses but never releases; auto-repeat events
	// keep a genuinely held key inside the window.
	defaultHold = 500 * time.Millisecond

	// tickInterval paces release sweeps and status redraws.
	tickInterval = 25 * time.Millisecond
)

// TickFunc receives the reconstructed keyboard state once per event
// and once per sweep. The recording controller's Tick method satisfies
// it.
type TickFunc func(at time.Time, kb *chord.Snapshot)

// Terminal captures keyboard input from a tcell screen. Each key event
// presses its translated keys for a hold window; a key whose window
// lapses without a repeat is released on the next sweep. Escape ends
// the capture and is therefore not bindable while recording.
type Terminal struct {
	screen tcell.Screen
	logger *slog.Logger
	hold   time.Duration
	status func() string
}

// New creates a capture terminal on the default screen.
func New(logger *slog.Logger) (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("opening screen: %w", err)
	}
	return NewWithScreen(screen, logger), nil
}

// NewWithScreen creates a capture terminal on the given screen. A nil
// logger falls back to slog.Default().
func NewWithScreen(screen tcell.Screen, logger *slog.Logger) *Terminal {
	if logger == nil {
		logger = slog.Default()
	}
	return &Terminal{screen: screen, logger: logger, hold: defaultHold}
}

// SetHold overrides the key hold window. Values <= 0 keep the default.
func (t *Terminal) SetHold(d time.Duration) {
	if d > 0 {
		t.hold = d
	}
}

// SetStatus installs a status line redrawn on every sweep.
func (t *Terminal) SetStatus(fn func() string) {
	t.status = fn
}

// Run captures input until Escape is pressed or ctx is cancelled, and
// returns ctx.Err() in the latter case. tick runs on Run's goroutine.
// A final tick with an empty snapshot releases everything still held
// before Run returns.
func (t *Terminal) Run(ctx context.Context, tick TickFunc) error {
	if err := t.screen.Init(); err != nil {
		return fmt.Errorf("initializing screen: %w", err)
	}
	defer t.screen.Fini()

	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	defer close(quit)
	go t.screen.ChannelEvents(events, quit)

	ticker := time.NewTicker(tickInterval)
	defer ticker.Stop()

	deadlines := make(map[chord.Key]time.Time)
	kb := chord.NewSnapshot()
	finish := func(at time.Time) {
		empty := chord.NewSnapshot()
		tick(at, &empty)
	}

	t.draw()
	for {
		select {
		case <-ctx.Done():
			finish(time.Now())
			return ctx.Err()

		case ev := <-events:
			key, isKey := ev.(*tcell.EventKey)
			if !isKey {
				if _, resized := ev.(*tcell.EventResize); resized {
					t.screen.Sync()
				}
				continue
			}
			if key.Key() == tcell.KeyEscape {
				finish(time.Now())
				return nil
			}
			pressed, ok := Translate(key)
			if !ok {
				t.logger.Debug("unmapped key event", "event", key.Name())
				continue
			}
			now := time.Now()
			for _, k := range pressed {
				deadlines[k] = now.Add(t.hold)
				kb.Press(k)
			}
			tick(now, &kb)

		case now := <-ticker.C:
			for k, deadline := range deadlines {
				if now.After(deadline) {
					delete(deadlines, k)
					kb.Release(k)
				}
			}
			tick(now, &kb)
			t.draw()
		}
	}
}

// draw paints the status line, if one is installed.
func (t *Terminal) draw() {
	if t.status == nil {
		return
	}
	t.screen.Clear()
	width, _ := t.screen.Size()
	col := 0
	for _, r := range t.status() {
		if col >= width {
			break
		}
		t.screen.SetContent(col, 0, r, nil, tcell.StyleDefault)
		col++
	}
	t.screen.Show()
}
