package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"credstore/internal/domain"
)

func passwdCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "passwd <username> <old-password> <new-password>",
		Short: "Change a user's password",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			p := newPrompter(cmd)
			oldPassword, err := p.resolve(args[1], "Current password: ")
			if err != nil {
				return err
			}
			newPassword, err := p.resolve(args[2], "New password: ")
			if err != nil {
				return err
			}

			username := domain.Username(args[0])
			if err := appCtx.Credentials.ResetPassword(username, oldPassword, newPassword); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Password for '%s' updated\n", username)
			return nil
		},
	}
}
