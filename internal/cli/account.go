package cli

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/Kamegrueon/household-task-manager/internal/auth"
	"github.com/Kamegrueon/household-task-manager/internal/model"
)

var accountCmd = &cobra.Command{
	Use:   "account",
	Short: "Inspect and update the signed-in account",
}

var (
	updateUsername  string
	updateEmail     string
	currentPassword string
	newPassword     string
)

func newWhoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in user",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := newTokenStore()
			if err != nil {
				return err
			}
			if !auth.IsAuthenticated(store) {
				return errors.New("not logged in")
			}

			cli, err := newClient()
			if err != nil {
				return err
			}

			user, err := cli.Me(context.Background())
			if err != nil {
				return err
			}

			cmd.Printf("%s <%s>\n", user.Username, user.Email)
			return nil
		},
	}
}

func newAccountUpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update",
		Short: "Update username and/or email",
		RunE: func(cmd *cobra.Command, args []string) error {
			if updateUsername == "" && updateEmail == "" {
				return errors.New("nothing to update: pass --username and/or --email")
			}

			cli, err := newClient()
			if err != nil {
				return err
			}

			err = cli.UpdateProfile(context.Background(), model.UserUpdateParams{
				Username: updateUsername,
				Email:    updateEmail,
			})
			if err != nil {
				return err
			}

			cmd.Println("profile updated")
			return nil
		},
	}
	cmd.Flags().StringVar(&updateUsername, "username", "", "New username")
	cmd.Flags().StringVar(&updateEmail, "email", "", "New email address")
	return cmd
}

func newAccountPasswdCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "passwd",
		Short: "Change the account password",
		RunE: func(cmd *cobra.Command, args []string) error {
			cli, err := newClient()
			if err != nil {
				return err
			}

			err = cli.ChangePassword(context.Background(), model.PasswordChangeParams{
				CurrentPassword: currentPassword,
				NewPassword:     newPassword,
			})
			if err != nil {
				return err
			}

			cmd.Println("password changed")
			return nil
		},
	}
	cmd.Flags().StringVar(&currentPassword, "current", "", "Current password")
	cmd.Flags().StringVar(&newPassword, "new", "", "New password")
	_ = cmd.MarkFlagRequired("current")
	_ = cmd.MarkFlagRequired("new")
	return cmd
}

func init() {
	accountCmd.AddCommand(newAccountUpdateCmd())
	accountCmd.AddCommand(newAccountPasswdCmd())
	rootCmd.AddCommand(accountCmd)
	rootCmd.AddCommand(newWhoamiCmd())
}
