package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"credstore/internal/domain"
)

func removeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <username>",
		Short: "Remove a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			username := domain.Username(args[0])
			if err := appCtx.Credentials.RemoveUser(username); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "User '%s' removed from %s\n", username, appCtx.Store.Path())
			return nil
		},
	}
}
