// Package cli is the command-line front end of the task-manager client.
package cli

import (
	"fmt"
	"os"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/Kamegrueon/household-task-manager/internal/auth"
	"github.com/Kamegrueon/household-task-manager/internal/client"
	"github.com/Kamegrueon/household-task-manager/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "taskman",
	Short: "Manage recurring household tasks across shared projects",
}

// Run executes the CLI.
func Run() int {
	if err := rootCmd.Execute(); err != nil {
		return 1
	}
	return 0
}

// newClient wires the configured token store into an API client. Session
// expiry prints a hint instead of a browser redirect.
func newClient() (*client.Client, error) {
	cfg := config.Load()

	store, err := auth.NewFileStore(cfg.Credentials.Path)
	if err != nil {
		return nil, err
	}

	cli := client.New(cfg.API, store)
	cli.OnSessionExpired(func() {
		fmt.Fprintln(os.Stderr, "session expired: run `taskman login` to sign in again")
	})
	return cli, nil
}

func newTokenStore() (auth.Store, error) {
	cfg := config.Load()
	return auth.NewFileStore(cfg.Credentials.Path)
}

func parseID(arg, name string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %q", name, arg)
	}
	return id, nil
}

func newTableWriter() table.Writer {
	tw := table.NewWriter()
	tw.Style().Options.DrawBorder = false
	tw.Style().Options.SeparateColumns = false
	tw.Style().Options.SeparateFooter = false
	tw.Style().Options.SeparateHeader = false
	tw.Style().Options.SeparateRows = false
	return tw
}
