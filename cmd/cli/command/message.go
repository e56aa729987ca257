package command

import (
	"fmt"
	"strings"

	"justco/internal/microservices/http-api/dto"

	"github.com/spf13/cobra"
)

var messageCmd = &cobra.Command{
	Use:   "message",
	Short: "Chat message commands",
	Long:  `Post messages to a room and read its history`,
}

var postMessageCmd = &cobra.Command{
	Use:   "post [secret-code] [text]",
	Short: "Post a message to a room",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		userName, _ := cmd.Flags().GetString("user")
		userLogo, _ := cmd.Flags().GetString("logo")

		_, err := GetClient().PostMessage(&dto.PostMessageRequest{
			SecretCode: args[0],
			UserName:   userName,
			UserLogo:   userLogo,
			Text:       strings.Join(args[1:], " "),
		})
		if err != nil {
			return fmt.Errorf("failed to post message: %w", err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), "✓ Message saved")
		return nil
	},
}

var listMessagesCmd = &cobra.Command{
	Use:   "list [secret-code]",
	Short: "Show a room's messages, oldest first",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		msgs, err := GetClient().GetMessages(args[0])
		if err != nil {
			return fmt.Errorf("failed to get messages: %w", err)
		}

		if len(msgs) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No messages.")
			return nil
		}
		for _, m := range msgs {
			fmt.Fprintf(cmd.OutOrStdout(), "[%s] %s: %s\n", m.CreatedAt.Format("2006-01-02 15:04:05"), m.UserName, m.Text)
		}
		return nil
	},
}

func init() {
	messageCmd.AddCommand(postMessageCmd, listMessagesCmd)
	rootCmd.AddCommand(messageCmd)

	postMessageCmd.Flags().StringP("user", "u", "", "display name of the author (required)")
	postMessageCmd.Flags().String("logo", "", "avatar URL of the author")
	postMessageCmd.MarkFlagRequired("user")
}
