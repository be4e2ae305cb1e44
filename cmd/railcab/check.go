package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dshills/railcab/internal/binding"
	"github.com/dshills/railcab/internal/catalog"
)

var (
	checkStrict bool
	checkAll    bool
	checkBind   []string
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate bindings for conflicts",
	Long: `Check resolves the binding table and reports commands that share a
trigger surface, plus stored bindings naming unknown commands.
With --strict any finding exits non-zero, for use in CI.`,
	Run: func(cmd *cobra.Command, args []string) {
		p := loadProfile()

		db := openStore(p)
		if db != nil {
			defer db.Close()
		}

		table, warnings := resolveTable(p, db, checkBind)
		reportWarnings(warnings)

		wl := loadWhitelist(p)
		conflicts := binding.Validate(table, binding.ValidateOptions{
			IncludeNoisy: checkAll || p.Conflicts.IncludeDebug,
			Whitelist:    wl,
		})
		if len(conflicts) > 0 {
			fmt.Println(binding.FormatWarnings(conflicts))
		}

		stale := 0
		if db != nil {
			rows, err := db.List()
			if err != nil {
				fatal("Failed to list stored bindings", err)
			}
			for _, row := range rows {
				if _, ok := catalog.FromName(row.Command); ok {
					continue
				}
				stale++
				msg := fmt.Sprintf("store: unknown command %q", row.Command)
				if suggestion, ok := binding.SuggestCommand(row.Command); ok {
					msg += fmt.Sprintf(" (did you mean %s?)", suggestion)
				}
				fmt.Println(msg)
			}
		}

		fmt.Printf("%d conflicts, %d stale store rows\n", len(conflicts), stale)
		if checkStrict && (len(conflicts) > 0 || stale > 0) {
			os.Exit(1)
		}
	},
}

func init() {
	bindingsCmd.AddCommand(checkCmd)
	checkCmd.Flags().BoolVar(&checkStrict, "strict", false, "Exit non-zero when conflicts or stale rows exist")
	checkCmd.Flags().BoolVar(&checkAll, "all", false, "Include noisy and default-vs-default pairs")
	checkCmd.Flags().StringArrayVar(&checkBind, "bind", nil, "Override a binding for this run (command=chord, repeatable)")
}
