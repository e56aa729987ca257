package command

import (
	"fmt"
	"os"
	"time"

	adminjwt "justco/pkg/jwt"

	"github.com/spf13/cobra"
)

var adminCmd = &cobra.Command{
	Use:   "admin",
	Short: "Administrative helpers",
}

var adminTokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Mint an admin token signed with ADMIN_JWT_SECRET",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		secret, _ := cmd.Flags().GetString("secret")
		subject, _ := cmd.Flags().GetString("subject")
		ttl, _ := cmd.Flags().GetDuration("ttl")

		if secret == "" {
			return fmt.Errorf("--secret or ADMIN_JWT_SECRET is required")
		}

		token, err := adminjwt.GenerateAdminToken(secret, subject, ttl)
		if err != nil {
			return fmt.Errorf("failed to mint token: %w", err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), token)
		return nil
	},
}

func init() {
	adminCmd.AddCommand(adminTokenCmd)
	rootCmd.AddCommand(adminCmd)

	adminTokenCmd.Flags().String("secret", os.Getenv("ADMIN_JWT_SECRET"), "HS256 signing secret")
	adminTokenCmd.Flags().String("subject", "cli", "token subject")
	adminTokenCmd.Flags().Duration("ttl", time.Hour, "token lifetime")
}
