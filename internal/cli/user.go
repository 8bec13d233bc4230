package cli

import (
	"context"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/Kamegrueon/household-task-manager/internal/model"
)

var userCmd = &cobra.Command{
	Use:   "user",
	Short: "Browse registered users",
}

var userEmail string

func renderUsers(cmd *cobra.Command, users []model.UserResponse) {
	tw := newTableWriter()
	tw.AppendHeader(table.Row{"ID", "USERNAME", "EMAIL"})
	for _, user := range users {
		tw.AppendRow(table.Row{user.ID, user.Username, user.Email})
	}
	cmd.Printf("%s\n", tw.Render())
}

func newUserListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ls",
		Short: "List users",
		RunE: func(cmd *cobra.Command, args []string) error {
			cli, err := newClient()
			if err != nil {
				return err
			}

			users, err := cli.ListUsers(context.Background())
			if err != nil {
				return err
			}

			renderUsers(cmd, users)
			return nil
		},
	}
}

func newUserSearchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search",
		Short: "Search users by partial email",
		RunE: func(cmd *cobra.Command, args []string) error {
			cli, err := newClient()
			if err != nil {
				return err
			}

			users, err := cli.SearchUsersByEmail(context.Background(), userEmail)
			if err != nil {
				return err
			}

			renderUsers(cmd, users)
			return nil
		},
	}
	cmd.Flags().StringVarP(&userEmail, "email", "e", "", "Email to match")
	_ = cmd.MarkFlagRequired("email")
	return cmd
}

func init() {
	userCmd.AddCommand(newUserListCmd())
	userCmd.AddCommand(newUserSearchCmd())
	rootCmd.AddCommand(userCmd)
}
