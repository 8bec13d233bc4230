package cli

import (
	"github.com/spf13/cobra"
)

func newLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Drop the stored session tokens",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := newTokenStore()
			if err != nil {
				return err
			}

			if err := store.Clear(); err != nil {
				return err
			}

			cmd.Println("logged out")
			return nil
		},
	}
}

func init() {
	rootCmd.AddCommand(newLogoutCmd())
}
