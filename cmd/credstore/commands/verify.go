package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"credstore/internal/domain"
)

func verifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "verify <username> <password>",
		Short: "Check a password against the stored hash",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			password, err := newPrompter(cmd).resolve(args[1], "Password: ")
			if err != nil {
				return err
			}
			if err := appCtx.Credentials.Verify(domain.Username(args[0]), password); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "ok")
			return nil
		},
	}
}
