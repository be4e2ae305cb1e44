package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/dshills/railcab/internal/cmdlog"
)

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "Work with recorded session logs",
}

var logShowCmd = &cobra.Command{
	Use:   "show [log-file]",
	Short: "Print a session log in human form",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		f, err := os.Open(args[0])
		if err != nil {
			fatal("Failed to open session log", err)
		}
		defer f.Close()

		r := cmdlog.NewReader(f)
		for {
			e, err := r.Read()
			if errors.Is(err, io.EOF) {
				break
			}
			if err != nil {
				fatal("Failed to read session log", err)
			}
			fmt.Println(e.Describe())
		}
		for _, w := range r.Warnings() {
			fmt.Fprintf(os.Stderr, "Skipped %s\n", w)
		}
	},
}

func init() {
	rootCmd.AddCommand(logCmd)
	logCmd.AddCommand(logShowCmd)
}
