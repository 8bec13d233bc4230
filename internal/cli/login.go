package cli

import (
	"context"

	"github.com/spf13/cobra"
)

var (
	loginUsername string
	loginPassword string
)

func newLoginCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "login",
		Short: "Log in to the task-manager backend",
		RunE: func(cmd *cobra.Command, args []string) error {
			cli, err := newClient()
			if err != nil {
				return err
			}

			if _, err := cli.Login(context.Background(), loginUsername, loginPassword); err != nil {
				return err
			}

			cmd.Println("logged in")
			return nil
		},
	}
}

func init() {
	cmd := newLoginCmd()
	cmd.Flags().StringVarP(&loginUsername, "username", "u", "", "Username")
	cmd.Flags().StringVarP(&loginPassword, "password", "p", "", "Password")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("password")
	rootCmd.AddCommand(cmd)
}
