package cmd

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/njoroge/campus-share/internal"
	"github.com/spf13/cobra"
)

var (
	// Styles
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("62")).
			Padding(0, 1)

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212"))

	idStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("240")).
		Italic(true)

	availableStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)

	takenStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("203")).
			Bold(true)

	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243"))
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List resources in the ledger",
	Long:  `List every resource with its owner, contact and availability.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}

		displayResources(a.ledger.Resources())
		return nil
	},
}

func displayResources(resources []internal.Resource) {
	if len(resources) == 0 {
		fmt.Println(headerStyle.Render("No resources listed"))
		return
	}

	fmt.Println(headerStyle.Render(fmt.Sprintf("Found %d resource(s)", len(resources))))
	fmt.Println()

	w := tabwriter.NewWriter(lipgloss.DefaultRenderer().Output(), 0, 0, 3, ' ', 0)

	_, _ = fmt.Fprintln(w, titleStyle.Render("ID")+"\t"+titleStyle.Render("Name")+"\t"+titleStyle.Render("Owner")+"\t"+titleStyle.Render("Contact")+"\t"+titleStyle.Render("Email")+"\t"+titleStyle.Render("Status")+"\t")
	_, _ = fmt.Fprintln(w, strings.Repeat("─", 100))

	for _, r := range resources {
		email := r.OwnerEmail
		if email == "" {
			email = mutedStyle.Render("—")
		}

		status := takenStyle.Render("Taken")
		if r.Available {
			status = availableStyle.Render("Available")
		}

		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t\n",
			idStyle.Render(r.ID), r.Name, r.OwnerName, r.OwnerContact, email, status)
	}

	_ = w.Flush()
}

func init() {
	rootCmd.AddCommand(listCmd)
}
