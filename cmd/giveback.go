package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var givebackCmd = &cobra.Command{
	Use:     "return <id>",
	Aliases: []string{"giveback"},
	Short:   "Return a borrowed resource",
	Long:    `Mark a taken resource available again and persist the change.`,
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}

		id := args[0]
		if err := a.ledger.GiveBack(id); err != nil {
			return err
		}
		if err := a.saveLedger(); err != nil {
			return err
		}

		r, _ := a.ledger.FindByID(id)
		fmt.Fprintf(cmd.OutOrStdout(), "Returned %s (%s)\n", r.Name, id)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(givebackCmd)
}
