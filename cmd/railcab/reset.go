package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dshills/railcab/internal/store"
)

var resetAll bool

var resetCmd = &cobra.Command{
	Use:   "reset [command]",
	Short: "Remove the persisted rebind for a command",
	Args: func(cmd *cobra.Command, args []string) error {
		if resetAll {
			if len(args) != 0 {
				return fmt.Errorf("--all takes no command argument")
			}
			return nil
		}
		return cobra.ExactArgs(1)(cmd, args)
	},
	Run: func(cmd *cobra.Command, args []string) {
		p := loadProfile()

		db, err := store.Open(p.Store.Path)
		if err != nil {
			fatal("Failed to open binding store", err)
		}
		defer db.Close()

		if resetAll {
			if err := db.Clear(); err != nil {
				fatal("Failed to clear bindings", err)
			}
			fmt.Println("All saved rebinds removed")
			return
		}

		target := mustCommand(args[0])

		removed, err := db.Delete(target.String())
		if err != nil {
			fatal("Failed to delete binding", err)
		}
		if removed {
			fmt.Printf("%s reset to default\n", target)
		} else {
			fmt.Printf("%s had no saved rebind\n", target)
		}
	},
}

func init() {
	bindingsCmd.AddCommand(resetCmd)
	resetCmd.Flags().BoolVar(&resetAll, "all", false, "Remove every saved rebind")
}
