package replay

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"reflect"
	"testing"
	"time"

	"github.com/dshills/railcab/internal/cmdlog"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatal("condition not reached in time")
}

func TestRunHonorsAppendOrder(t *testing.T) {
	s := &scripted{}
	entries := []cmdlog.Entry{
		{Kind: cmdlog.KindHorn, Time: 0.05, On: true},
		{Kind: cmdlog.KindThrottle, Time: 0.03, Target: 0.5}, // backdated
		{Kind: cmdlog.KindHorn, Time: 0.07},
	}

	eng := NewEngine(entries, bindAll(s), quietLogger())
	start := time.Now()
	if err := eng.Run(context.Background()); err != nil {
		t.Fatalf("Run error = %v", err)
	}
	elapsed := time.Since(start)

	want := []string{"horn true", "throttle 0.50", "horn false"}
	if got := s.snapshot(); !reflect.DeepEqual(got, want) {
		t.Errorf("dispatch order = %v, want %v", got, want)
	}
	if eng.State() != StateFinished {
		t.Errorf("State = %v after Run, want finished", eng.State())
	}
	if elapsed < 60*time.Millisecond {
		t.Errorf("Run finished in %v, want at least the span of the log", elapsed)
	}
}

func TestRunUnboundReceiver(t *testing.T) {
	s := &scripted{}
	entries := []cmdlog.Entry{
		{Kind: cmdlog.KindHorn, On: true},
		{Kind: cmdlog.KindSave, Time: 0.01},
	}

	var r Receivers
	r.BindLocomotive(s)

	eng := NewEngine(entries, &r, quietLogger())
	if err := eng.Run(context.Background()); !errors.Is(err, ErrUnboundReceiver) {
		t.Fatalf("Run error = %v, want %v", err, ErrUnboundReceiver)
	}
	if calls := s.snapshot(); len(calls) != 0 {
		t.Errorf("dispatched %v before failing, want nothing", calls)
	}
	if eng.State() != StateIdle {
		t.Errorf("State = %v, want idle", eng.State())
	}
}

func TestRunTwice(t *testing.T) {
	eng := NewEngine(nil, &Receivers{}, quietLogger())
	if err := eng.Run(context.Background()); err != nil {
		t.Fatalf("first Run error = %v", err)
	}
	if err := eng.Run(context.Background()); !errors.Is(err, ErrAlreadyRan) {
		t.Errorf("second Run error = %v, want %v", err, ErrAlreadyRan)
	}
}

func TestCancelledContextDispatchesNothing(t *testing.T) {
	s := &scripted{}
	entries := []cmdlog.Entry{{Kind: cmdlog.KindHorn, On: true}}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	eng := NewEngine(entries, bindAll(s), quietLogger())
	if err := eng.Run(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("Run error = %v, want context.Canceled", err)
	}
	if calls := s.snapshot(); len(calls) != 0 {
		t.Errorf("dispatched %v with cancelled context, want nothing", calls)
	}
}

func TestCancelStopsBeforeNextDispatch(t *testing.T) {
	s := &scripted{}
	entries := []cmdlog.Entry{
		{Kind: cmdlog.KindHorn, Time: 0, On: true},
		{Kind: cmdlog.KindBell, Time: 30, On: true},
	}

	ctx, cancel := context.WithCancel(context.Background())
	eng := NewEngine(entries, bindAll(s), quietLogger())

	done := make(chan error, 1)
	go func() { done <- eng.Run(ctx) }()

	waitFor(t, func() bool { return len(s.snapshot()) == 1 })
	cancel()

	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Run error = %v, want context.Canceled", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancel")
	}

	if got := s.snapshot(); !reflect.DeepEqual(got, []string{"horn true"}) {
		t.Errorf("calls = %v, want only the first entry", got)
	}
	if eng.State() != StateFinished {
		t.Errorf("State = %v, want finished", eng.State())
	}
}

func TestPauseExtendsPacing(t *testing.T) {
	s := &scripted{}
	entries := []cmdlog.Entry{
		{Kind: cmdlog.KindHorn, Time: 0, On: true},
		{Kind: cmdlog.KindBell, Time: 0.2, On: true},
	}

	eng := NewEngine(entries, bindAll(s), quietLogger())
	done := make(chan error, 1)
	go func() { done <- eng.Run(context.Background()) }()

	waitFor(t, func() bool { return len(s.snapshot()) == 1 })
	eng.Pause()
	if eng.State() != StatePaused {
		t.Errorf("State = %v after Pause, want paused", eng.State())
	}

	// The second entry is due 200ms in; well past that, it must still
	// be held back.
	time.Sleep(300 * time.Millisecond)
	if got := s.snapshot(); len(got) != 1 {
		t.Errorf("calls while paused = %v, want only the first entry", got)
	}

	eng.Resume()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run error = %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not finish after Resume")
	}

	if got := s.snapshot(); !reflect.DeepEqual(got, []string{"horn true", "bell true"}) {
		t.Errorf("calls = %v, want both entries after resume", got)
	}
	if eng.State() != StateFinished {
		t.Errorf("State = %v, want finished", eng.State())
	}
}

func TestPauseResumeOutsideReplayAreNoOps(t *testing.T) {
	eng := NewEngine(nil, &Receivers{}, quietLogger())

	eng.Pause()
	if eng.State() != StateIdle {
		t.Errorf("State = %v after Pause on idle engine, want idle", eng.State())
	}
	eng.Resume()
	if eng.State() != StateIdle {
		t.Errorf("State = %v after Resume on idle engine, want idle", eng.State())
	}
}

func TestStateString(t *testing.T) {
	tests := []struct {
		state State
		want  string
	}{
		{StateIdle, "idle"},
		{StateReplaying, "replaying"},
		{StatePaused, "paused"},
		{StateFinished, "finished"},
		{State(9), "State(9)"},
	}

	for _, tt := range tests {
		if got := tt.state.String(); got != tt.want {
			t.Errorf("State.String() = %q, want %q", got, tt.want)
		}
	}
}
