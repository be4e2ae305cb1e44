package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	listBind []string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the resolved binding for every command",
	Long:  `List prints every command with its chord and the source that supplied it.`,
	Run: func(cmd *cobra.Command, args []string) {
		p := loadProfile()

		db := openStore(p)
		if db != nil {
			defer db.Close()
		}

		table, warnings := resolveTable(p, db, listBind)
		reportWarnings(warnings)

		for _, e := range table.Entries() {
			fmt.Printf("%-24s %-13s %s\n", e.Command, e.Source, e.Chord)
		}
	},
}

func init() {
	bindingsCmd.AddCommand(listCmd)
	listCmd.Flags().StringArrayVar(&listBind, "bind", nil, "Override a binding for this run (command=chord, repeatable)")
}
