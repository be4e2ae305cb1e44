package session

import (
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dshills/railcab/internal/cmdlog"
)

// Recorder owns one recording session: its identity, its live log and
// the file the log lands in. An optional autosave goroutine snapshots
// the log on an interval so a crash loses at most one interval of
// input.
type Recorder struct {
	id     uuid.UUID
	log    *cmdlog.Log
	path   string
	logger *slog.Logger

	done      chan struct{}
	wg        sync.WaitGroup
	closeOnce sync.Once
	closeErr  error
}

// NewRecorder starts a session writing to session-<id>.jsonl under
// dir. An interval > 0 enables background autosave. A nil logger falls
// back to slog.Default().
func NewRecorder(dir string, interval time.Duration, logger *slog.Logger) *Recorder {
	if logger == nil {
		logger = slog.Default()
	}
	id := uuid.New()
	r := &Recorder{
		id:     id,
		log:    cmdlog.NewLog(),
		path:   filepath.Join(dir, "session-"+id.String()+".jsonl"),
		logger: logger,
		done:   make(chan struct{}),
	}
	r.logger.Info("session started", "id", id.String(), "path", r.path)
	if interval > 0 {
		r.wg.Add(1)
		go r.autosave(interval)
	}
	return r
}

// ID returns the session identifier.
func (r *Recorder) ID() uuid.UUID { return r.id }

// Path returns the session log file path.
func (r *Recorder) Path() string { return r.path }

// Log returns the live log the session appends to.
func (r *Recorder) Log() *cmdlog.Log { return r.log }

// Save writes a snapshot of the log to the session file.
func (r *Recorder) Save() error {
	return cmdlog.WriteFile(r.path, r.log.Snapshot())
}

// Close stops autosave and writes the final state of the log. It is
// safe to call more than once; later calls return the first result.
func (r *Recorder) Close() error {
	r.closeOnce.Do(func() {
		close(r.done)
		r.wg.Wait()
		r.closeErr = r.Save()
		if r.closeErr == nil {
			r.logger.Info("session log written", "path", r.path, "entries", r.log.Len())
		}
	})
	return r.closeErr
}

func (r *Recorder) autosave(interval time.Duration) {
	defer r.wg.Done()
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-r.done:
			return
		case <-ticker.C:
			if err := r.Save(); err != nil {
				r.logger.Warn("session autosave failed", "path", r.path, "error", err)
				continue
			}
			r.logger.Debug("session autosaved", "path", r.path, "entries", r.log.Len())
		}
	}
}
