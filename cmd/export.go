package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/njoroge/campus-share/internal"
	"github.com/njoroge/campus-share/internal/export"
	"github.com/spf13/cobra"
)

var (
	exportFormat string
	exportOutput string
)

var exportCmd = &cobra.Command{
	Use:   "export <email>",
	Short: "Export a conversation",
	Long:  `Write the conversation with one counterpart to stdout or a file in json, jsonl, yaml or markdown.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		if !a.session.LoggedIn() {
			return &internal.AuthRequiredError{Op: "chat"}
		}

		other := strings.ToLower(args[0])
		conv, ok := a.chats.Snapshot(a.session.Email, other)
		if !ok {
			return &internal.ValidationError{Field: "email", Reason: "must not be empty"}
		}

		exporter, err := export.NewExporter(exportFormat)
		if err != nil {
			return err
		}

		w := cmd.OutOrStdout()
		if exportOutput != "" {
			f, err := os.Create(exportOutput)
			if err != nil {
				return fmt.Errorf("failed to create output file: %w", err)
			}
			defer f.Close()
			w = f
		}

		if err := exporter.Export(conv, w); err != nil {
			return fmt.Errorf("failed to export conversation: %w", err)
		}
		if exportOutput != "" {
			internal.LogInfo("exported %d message(s) to %s", len(conv.Messages), exportOutput)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "json", "Export format: json, jsonl, yaml, md")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Output file (default stdout)")
}
