package main

import (
	"github.com/spf13/cobra"
)

var bindingsCmd = &cobra.Command{
	Use:   "bindings",
	Short: "Inspect and change input bindings",
}

func init() {
	rootCmd.AddCommand(bindingsCmd)
}
