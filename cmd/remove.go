package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var removeCmd = &cobra.Command{
	Use:     "remove <id>",
	Aliases: []string{"delete"},
	Short:   "Delete a resource (admin only)",
	Long: `Permanently remove a resource from the ledger. Only identities on the
admin allow-list may delete.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}

		if !a.session.Admin {
			return fmt.Errorf("permission denied: only admins can delete resources")
		}

		id := args[0]
		r, _ := a.ledger.FindByID(id)
		if err := a.ledger.Remove(id); err != nil {
			return err
		}
		if err := a.saveLedger(); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s (%s)\n", r.Name, id)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(removeCmd)
}
