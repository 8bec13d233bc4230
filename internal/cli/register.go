package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/Kamegrueon/household-task-manager/internal/model"
)

var (
	registerUsername string
	registerEmail    string
	registerPassword string
)

func newRegisterCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "register",
		Short: "Create a new account",
		RunE: func(cmd *cobra.Command, args []string) error {
			cli, err := newClient()
			if err != nil {
				return err
			}

			user, err := cli.Register(context.Background(), model.UserCreateParams{
				Username: registerUsername,
				Email:    registerEmail,
				Password: registerPassword,
			})
			if err != nil {
				return err
			}

			cmd.Printf("registered %s (id %d), run `taskman login` to sign in\n", user.Username, user.ID)
			return nil
		},
	}
}

func init() {
	cmd := newRegisterCmd()
	cmd.Flags().StringVarP(&registerUsername, "username", "u", "", "Username")
	cmd.Flags().StringVarP(&registerEmail, "email", "e", "", "Email address")
	cmd.Flags().StringVarP(&registerPassword, "password", "p", "", "Password")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	rootCmd.AddCommand(cmd)
}
