package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	borrowAmount float64
	borrowNote   string
)

var borrowCmd = &cobra.Command{
	Use:   "borrow <id>",
	Short: "Borrow an available resource",
	Long: `Request a resource. Borrowing requires a logged-in identity (--as) and a
confirmed payment; a declined payment leaves the resource untouched.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}

		id := args[0]
		amount := borrowAmount
		if amount == 0 {
			amount = a.cfg.DefaultFee
		}
		note := borrowNote
		if note == "" {
			if r, ok := a.ledger.FindByID(id); ok {
				note = "Borrow fee for " + r.Name
			}
		}

		if err := a.ledger.Borrow(id, a.session.Email, amount, note); err != nil {
			return err
		}
		if err := a.saveLedger(); err != nil {
			return err
		}

		r, _ := a.ledger.FindByID(id)
		fmt.Fprintf(cmd.OutOrStdout(), "Borrowed %s (%s) as %s\n", r.Name, id, a.session.Email)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(borrowCmd)
	borrowCmd.Flags().Float64Var(&borrowAmount, "amount", 0, "Borrow fee (default from configuration)")
	borrowCmd.Flags().StringVar(&borrowNote, "note", "", "Payment note")
}
