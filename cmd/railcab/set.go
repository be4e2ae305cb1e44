package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dshills/railcab/internal/binding"
	"github.com/dshills/railcab/internal/catalog"
	"github.com/dshills/railcab/internal/chord"
	"github.com/dshills/railcab/internal/store"
)

var setCmd = &cobra.Command{
	Use:   "set [command] [chord]",
	Short: "Rebind a command and persist it",
	Long: `Set binds a command to a chord and writes it to the store. The chord
is a name like "Ctrl+B" or "F5", or the serialized field form the
store uses; fields omitted from the serialized form keep the
command's current values.`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		p := loadProfile()

		target := mustCommand(args[0])

		db, err := store.Open(p.Store.Path)
		if err != nil {
			fatal("Failed to open binding store", err)
		}
		defer db.Close()

		table, warnings := resolveTable(p, db, nil)
		reportWarnings(warnings)

		var spec chord.Spec
		if named, nameErr := chord.ParseName(args[1]); nameErr == nil {
			spec = named
		} else {
			merged := table.Chord(target).Clone()
			if err := merged.Decode(args[1]); err != nil {
				fatal("Failed to parse chord", nameErr)
			}
			spec = merged
		}

		if err := table.Rebind(target, spec, db); err != nil {
			fatal("Failed to save binding", err)
		}
		fmt.Printf("%s is now bound to %s\n", target, spec)
	},
}

// mustCommand resolves a command name or exits with a suggestion.
func mustCommand(name string) catalog.Command {
	target, ok := catalog.FromName(name)
	if ok {
		return target
	}
	msg := fmt.Sprintf("unknown command %q", name)
	if suggestion, ok := binding.SuggestCommand(name); ok {
		msg += fmt.Sprintf(" (did you mean %s?)", suggestion)
	}
	fmt.Fprintln(os.Stderr, msg)
	os.Exit(1)
	return 0
}

func init() {
	bindingsCmd.AddCommand(setCmd)
}
