package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"credstore/internal/domain"
)

// add <username> <password> <email>: create or overwrite the user's entry.
func addCmd() *cobra.Command {
	var admin bool
	cmd := &cobra.Command{
		Use:   "add <username> <password> <email>",
		Short: "Add a user or overwrite an existing one",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			username := domain.Username(args[0])
			password, err := newPrompter(cmd).resolve(args[1], "Password: ")
			if err != nil {
				return err
			}

			if _, err := appCtx.Credentials.UpsertUser(username, password, args[2], admin); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "User '%s' saved to %s\n", username, appCtx.Store.Path())
			return nil
		},
	}
	cmd.Flags().BoolVar(&admin, "admin", false, "mark the user as an administrator")
	return cmd
}
