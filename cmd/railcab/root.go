package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/dshills/railcab/internal/binding"
	"github.com/dshills/railcab/internal/profile"
	"github.com/dshills/railcab/internal/store"
)

var (
	profilePath string
	verbose     bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "railcab",
	Short: "Record, replay and rebind train driving input",
	Long: `Railcab turns keyboard input into a replayable driving log.
It resolves key bindings from defaults, a persisted store and
command-line overrides, records sessions as JSONL command logs,
and replays them against receiver roles with original pacing.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}

		opts := &slog.HandlerOptions{
			Level: level,
		}
		logger := slog.New(slog.NewTextHandler(os.Stderr, opts))
		slog.SetDefault(logger)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&profilePath, "profile", "railcab.toml", "Path to the profile file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
}

// loadProfile reads the configured profile, falling back to defaults
// when the file does not exist.
func loadProfile() profile.Profile {
	p, err := profile.Load(profilePath)
	if err != nil {
		fatal("Failed to load profile", err)
	}
	return p
}

// openStore opens the profile's binding store. An unusable store is a
// warning, not a failure: resolution runs with defaults only.
func openStore(p profile.Profile) *store.DB {
	db, err := store.Open(p.Store.Path)
	if err != nil {
		slog.Warn("binding store unavailable", "path", p.Store.Path, "error", err)
		return nil
	}
	return db
}

// resolveTable builds the binding table from defaults, the store and
// any --bind overrides, in that order.
func resolveTable(p profile.Profile, db *store.DB, overrides []string) (*binding.Table, []binding.Warning) {
	opts := binding.Options{
		DisableStore: p.Store.DisableReads,
		Overrides:    binding.ParseOverrides(overrides),
	}
	if db != nil {
		opts.Store = db
	}
	return binding.Resolve(binding.Defaults(), opts)
}

// loadWhitelist reads the profile's conflict whitelist, printing
// per-entry warnings. No configured path means an empty whitelist.
func loadWhitelist(p profile.Profile) *profile.Whitelist {
	if p.Conflicts.Whitelist == "" {
		return &profile.Whitelist{}
	}
	wl, warnings, err := profile.LoadWhitelist(p.Conflicts.Whitelist)
	if err != nil {
		fatal("Failed to load conflict whitelist", err)
	}
	for _, w := range warnings {
		fmt.Fprintln(os.Stderr, w)
	}
	return wl
}

func reportWarnings(warnings []binding.Warning) {
	if len(warnings) == 0 {
		return
	}
	fmt.Fprintln(os.Stderr, binding.FormatWarnings(warnings))
}
