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

	"github.com/dshills/railcab/internal/cmdlog"
	"github.com/dshills/railcab/internal/replay"
)

var replayCmd = &cobra.Command{
	Use:   "replay [log-file]",
	Short: "Replay a recorded session log",
	Long: `Replay reads a session log and dispatches its entries with the
original pacing. Receivers here narrate each entry instead of
driving a simulator; undecodable records are skipped with a note.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		entries, warnings, err := cmdlog.ReadFile(args[0])
		if err != nil {
			fatal("Failed to read session log", err)
		}
		for _, w := range warnings {
			fmt.Fprintf(os.Stderr, "Skipped %s\n", w)
		}

		echo := &echoReceivers{logger: slog.Default()}
		var recv replay.Receivers
		recv.BindLocomotive(echo)
		recv.BindTrain(echo)
		recv.BindSimulator(echo)

		engine := replay.NewEngine(entries, &recv, slog.Default())

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		if err := engine.Run(ctx); err != nil {
			if errors.Is(err, context.Canceled) {
				fmt.Fprintln(os.Stderr, "Replay interrupted")
				os.Exit(1)
			}
			fatal("Replay failed", err)
		}
		fmt.Printf("Replayed %d entries\n", len(entries))
	},
}

// echoReceivers narrates replayed entries. It stands in for a live
// locomotive, train and simulator session.
type echoReceivers struct {
	logger *slog.Logger
}

func (e *echoReceivers) SetHorn(on bool)            { e.logger.Info("horn", "on", on) }
func (e *echoReceivers) SetBell(on bool)            { e.logger.Info("bell", "on", on) }
func (e *echoReceivers) SetSander(on bool)          { e.logger.Info("sander", "on", on) }
func (e *echoReceivers) SetWiper(on bool)           { e.logger.Info("wiper", "on", on) }
func (e *echoReceivers) SetHeadlight(on bool)       { e.logger.Info("headlight", "on", on) }
func (e *echoReceivers) SetPantograph(on bool)      { e.logger.Info("pantograph", "on", on) }
func (e *echoReceivers) SetThrottle(target float64) { e.logger.Info("throttle", "target", target) }
func (e *echoReceivers) SetReverser(target float64) { e.logger.Info("reverser", "target", target) }
func (e *echoReceivers) ResetAlerter()              { e.logger.Info("alerter reset") }
func (e *echoReceivers) SetBrake(target float64)    { e.logger.Info("train brake", "target", target) }
func (e *echoReceivers) SetEmergencyBrake(on bool)  { e.logger.Info("emergency brake", "on", on) }
func (e *echoReceivers) SetPaused(on bool)          { e.logger.Info("pause", "on", on) }
func (e *echoReceivers) Save()                      { e.logger.Info("save") }
func (e *echoReceivers) ThrowSwitchAhead()          { e.logger.Info("switch ahead thrown") }
func (e *echoReceivers) ThrowSwitchBehind()         { e.logger.Info("switch behind thrown") }

func init() {
	rootCmd.AddCommand(replayCmd)
}
