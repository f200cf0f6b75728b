package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	addName    string
	addOwner   string
	addContact string
	addEmail   string
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "List a new shareable resource",
	Long: `Add a resource to the ledger and persist it.

The owner email is optional; without it, chat with the owner is unavailable
for this resource.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}

		r, err := a.ledger.Add(addName, addOwner, addContact, addEmail)
		if err != nil {
			return err
		}
		if err := a.saveLedger(); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Added resource %s: %s\n", r.ID, r.Name)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(addCmd)
	addCmd.Flags().StringVar(&addName, "name", "", "Resource name (required)")
	addCmd.Flags().StringVar(&addOwner, "owner", "", "Owner display name (required)")
	addCmd.Flags().StringVar(&addContact, "contact", "", "Owner phone contact (required)")
	addCmd.Flags().StringVar(&addEmail, "email", "", "Owner email, enables chat (optional)")
	_ = addCmd.MarkFlagRequired("name")
	_ = addCmd.MarkFlagRequired("owner")
	_ = addCmd.MarkFlagRequired("contact")
}
