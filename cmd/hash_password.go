package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hrops/hr-dashboard/internal/auth"
)

var hashPasswordCmd = &cobra.Command{
	Use:   "hash-password [password]",
	Short: "Hash a password for the demo credential config",
	Long:  `Produce the bcrypt hash to set as auth.demo_password_hash in config.yml`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		hash, err := auth.HashPassword(args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to hash password: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(hash)
	},
}
