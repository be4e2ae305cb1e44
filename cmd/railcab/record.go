package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/dshills/railcab/internal/binding"
	"github.com/dshills/railcab/internal/capture"
	"github.com/dshills/railcab/internal/profile"
	"github.com/dshills/railcab/internal/session"
)

var (
	recordBind []string
)

var recordCmd = &cobra.Command{
	Use:   "record",
	Short: "Record a driving session from the keyboard",
	Long: `Record captures keyboard input in the terminal, matches it against
the resolved bindings and writes a session log. Esc or Ctrl-C ends
the session; the log is written either way.`,
	Run: func(cmd *cobra.Command, args []string) {
		p := loadProfile()

		db := openStore(p)
		if db != nil {
			defer db.Close()
		}

		table, warnings := resolveTable(p, db, recordBind)
		reportWarnings(warnings)

		wl := loadWhitelist(p)
		reportWarnings(binding.Validate(table, binding.ValidateOptions{
			IncludeNoisy: p.Conflicts.IncludeDebug,
			Whitelist:    wl,
		}))

		recorder := session.NewRecorder(p.Session.LogDir, p.Session.AutosaveInterval.Std(), slog.Default())
		controller := session.NewController(table, recorder.Log(), p.Controls, slog.Default())

		if w := watchConfig(p, table); w != nil {
			defer w.Close()
		}

		term, err := capture.New(slog.Default())
		if err != nil {
			recorder.Close()
			fatal("Failed to open terminal", err)
		}
		term.SetStatus(func() string {
			return fmt.Sprintf("railcab session %s | %d entries | throttle %.2f brake %.2f | Esc ends",
				recorder.ID(), recorder.Log().Len(), controller.Throttle(), controller.TrainBrake())
		})

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		runErr := term.Run(ctx, controller.Tick)

		if err := recorder.Close(); err != nil {
			fatal("Failed to write session log", err)
		}
		fmt.Printf("Session log written to %s (%d entries)\n", recorder.Path(), recorder.Log().Len())

		if runErr != nil && !errors.Is(runErr, context.Canceled) {
			fatal("Session ended abnormally", runErr)
		}
	},
}

// watchConfig re-validates conflicts when the profile or whitelist
// changes during a session. The table itself is fixed for the session;
// only the conflict report refreshes. Watch failures are tolerated,
// recording works without live re-validation.
func watchConfig(p profile.Profile, table *binding.Table) *profile.Watcher {
	revalidate := func(changed string) {
		slog.Info("configuration changed", "path", changed)
		cur, err := profile.Load(profilePath)
		if err != nil {
			slog.Warn("profile reload failed", "error", err)
			return
		}
		var wl *profile.Whitelist
		if cur.Conflicts.Whitelist != "" {
			var skipped []string
			wl, skipped, err = profile.LoadWhitelist(cur.Conflicts.Whitelist)
			if err != nil {
				slog.Warn("whitelist reload failed", "error", err)
				return
			}
			for _, s := range skipped {
				slog.Warn("whitelist entry skipped", "detail", s)
			}
		}
		conflicts := binding.Validate(table, binding.ValidateOptions{
			IncludeNoisy: cur.Conflicts.IncludeDebug,
			Whitelist:    wl,
		})
		for _, c := range conflicts {
			slog.Warn("binding conflict", "detail", c.String())
		}
		slog.Info("bindings revalidated", "conflicts", len(conflicts))
	}

	watcher, err := profile.NewWatcher(0, revalidate, slog.Default())
	if err != nil {
		slog.Warn("configuration watch unavailable", "error", err)
		return nil
	}
	for _, path := range []string{profilePath, p.Conflicts.Whitelist} {
		if path == "" {
			continue
		}
		if err := watcher.Watch(path); err != nil {
			slog.Debug("not watching", "path", path, "error", err)
		}
	}
	return watcher
}

func init() {
	rootCmd.AddCommand(recordCmd)
	recordCmd.Flags().StringArrayVar(&recordBind, "bind", nil, "Override a binding for this session (command=chord, repeatable)")
}
