package command

import (
	"fmt"

	"justco/internal/microservices/http-api/dto"

	"github.com/spf13/cobra"
)

var roomCmd = &cobra.Command{
	Use:   "room",
	Short: "Chat room commands",
	Long:  `Manage chat rooms: create, join, list and delete rooms`,
}

var createRoomCmd = &cobra.Command{
	Use:   "create [chat-name] [secret-code]",
	Short: "Create a chat room",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		roomType, _ := cmd.Flags().GetString("type")

		_, err := GetClient().CreateRoom(&dto.CreateRoomRequest{
			ChatName:   args[0],
			SecretCode: args[1],
			Type:       roomType,
		})
		if err != nil {
			return fmt.Errorf("failed to create room: %w", err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), "✓ Room created successfully!")
		fmt.Fprintf(cmd.OutOrStdout(), "Name: %s\n", args[0])
		fmt.Fprintf(cmd.OutOrStdout(), "Secret code: %s\n", args[1])
		return nil
	},
}

var joinRoomCmd = &cobra.Command{
	Use:   "join [secret-code]",
	Short: "Look up a room by its secret code",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := GetClient().JoinRoom(args[0])
		if err != nil {
			return fmt.Errorf("failed to join room: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "✓ Joined %q\n", result.ChatName)
		return nil
	},
}

var listRoomsCmd = &cobra.Command{
	Use:   "list",
	Short: "List all rooms",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		rooms, err := GetClient().ListRooms()
		if err != nil {
			return fmt.Errorf("failed to list rooms: %w", err)
		}

		if len(rooms) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No rooms yet.")
			return nil
		}
		for _, r := range rooms {
			fmt.Fprintf(cmd.OutOrStdout(), "%-24s %-16s %s\n", r.ChatName, r.SecretCode, r.Type)
		}
		return nil
	},
}

var deleteRoomCmd = &cobra.Command{
	Use:   "delete [secret-code]",
	Short: "Delete a room and its messages (admin)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if adminToken == "" {
			return fmt.Errorf("--token is required, mint one with 'justco admin token'")
		}

		if err := GetClient().DeleteRoom(args[0]); err != nil {
			return fmt.Errorf("failed to delete room: %w", err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), "✓ Room deleted")
		return nil
	},
}

func init() {
	roomCmd.AddCommand(createRoomCmd, joinRoomCmd, listRoomsCmd, deleteRoomCmd)
	rootCmd.AddCommand(roomCmd)

	createRoomCmd.Flags().String("type", "", "room type (defaults to public)")
}
