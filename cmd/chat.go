package cmd

import (
	"fmt"
	"strings"

	"github.com/njoroge/campus-share/internal"
	"github.com/spf13/cobra"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Message resource owners",
	Long:  `Send direct messages to resource owners and read conversation history.`,
}

var chatSendCmd = &cobra.Command{
	Use:   "send <email> <text>...",
	Short: "Send a message",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		if !a.session.LoggedIn() {
			return &internal.AuthRequiredError{Op: "chat"}
		}

		other := strings.ToLower(args[0])
		if !internal.IsPlausibleEmail(other) {
			return &internal.ValidationError{Field: "email", Reason: "does not look like an email address"}
		}
		text := strings.Join(args[1:], " ")

		m := internal.NewChatMessage(a.session.Email, other, text)
		if err := a.chats.AppendMessage(m); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Sent to %s\n", other)
		return nil
	},
}

var chatHistoryCmd = &cobra.Command{
	Use:   "history <email>",
	Short: "Show the conversation with one counterpart",
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
		msgs := a.chats.GetConversation(a.session.Email, other)
		if len(msgs) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No messages yet.")
			return nil
		}

		for _, m := range msgs {
			who := m.FromEmail
			if strings.EqualFold(who, a.session.Email) {
				who = "You"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s [%s]: %s\n", who, m.Time().Format("02-Jan 15:04"), m.Text)
		}
		return nil
	},
}

var chatWithCmd = &cobra.Command{
	Use:   "with",
	Short: "List conversation counterparts",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		if !a.session.LoggedIn() {
			return &internal.AuthRequiredError{Op: "chat"}
		}

		others := a.chats.ListConversationsFor(a.session.Email)
		if len(others) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No conversations yet.")
			return nil
		}
		for _, other := range others {
			fmt.Fprintln(cmd.OutOrStdout(), other)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(chatCmd)
	chatCmd.AddCommand(chatSendCmd)
	chatCmd.AddCommand(chatHistoryCmd)
	chatCmd.AddCommand(chatWithCmd)
}
