package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"credstore/internal/domain"
)

func listCmd() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List users (hashes are never printed)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			users, err := appCtx.Credentials.ListUsers()
			if err != nil {
				return err
			}
			return printUsers(cmd.OutOrStdout(), format, users)
		},
	}
	cmd.Flags().StringVarP(&format, "format", "o", "table", "output format: table, json or yaml")
	return cmd
}

func printUsers(w io.Writer, format string, users []domain.UserSummary) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(users)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(users); err != nil {
			return err
		}
		return enc.Close()
	case "table":
		if len(users) == 0 {
			_, err := fmt.Fprintln(w, "No users found.")
			return err
		}
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "USERNAME\tEMAIL\tADMIN\tLAST MODIFIED")
		for _, u := range users {
			fmt.Fprintf(tw, "%s\t%s\t%t\t%s\n", u.Username, u.Email, u.IsAdmin, u.LastModified)
		}
		return tw.Flush()
	default:
		return fmt.Errorf("unknown format %q (want table, json or yaml)", format)
	}
}
