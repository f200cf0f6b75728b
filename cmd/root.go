package cmd

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/njoroge/campus-share/internal"
	"github.com/spf13/cobra"
)

var (
	verbose bool
	dataDir string
	asEmail string
	version string = "dev"
	commit  string = "unknown"
	date    string = "unknown"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "campus-share",
	Short: "Share, borrow and return campus resources",
	Long: `A local campus resource-sharing ledger with owner chat.

List shareable resources, borrow and return them under a simple
available/taken model, and exchange direct messages with resource owners.
All state is kept in local SQLite files and survives restarts.

Quick Start:
  campus-share add --name "Drill" --owner "Alice" --contact 9999999999
  campus-share list
  campus-share borrow 1000 --as you@campus.edu
  campus-share chat send alice@campus.edu "hi" --as you@campus.edu

Identity is supplied with --as <verified-email> (or CAMPUS_SHARE_EMAIL);
admin rights come from the admin allow-list in the configuration.`,
	Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		internal.SetVerbose(verbose)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	// A .env next to the binary may carry CAMPUS_SHARE_* overrides
	_ = godotenv.Load()

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data", "", "Data directory (default ~/.campus-share)")
	rootCmd.PersistentFlags().StringVar(&asEmail, "as", "", "Verified email to act as (or CAMPUS_SHARE_EMAIL)")

	rootCmd.SetVersionTemplate(`{{printf "%s\n" .Version}}`)
}
