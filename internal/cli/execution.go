package cli

import (
	"context"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/Kamegrueon/household-task-manager/internal/model"
	"github.com/Kamegrueon/household-task-manager/internal/stats"
	"github.com/Kamegrueon/household-task-manager/internal/timeutil"
)

var executionCmd = &cobra.Command{
	Use:   "exec",
	Short: "Record and browse task executions",
}

var (
	executionDate string
	executionUser int
	statsFrom     string
	statsTo       string
)

func newExecutionListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ls [project-id]",
		Short: "List execution history",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			projectID, err := parseID(args[0], "project id")
			if err != nil {
				return err
			}

			cli, err := newClient()
			if err != nil {
				return err
			}

			executions, err := cli.ListExecutions(context.Background(), projectID)
			if err != nil {
				return err
			}

			tw := newTableWriter()
			tw.AppendHeader(table.Row{"ID", "CATEGORY", "TASK", "BY", "EXECUTED AT (JST)"})
			for _, e := range executions {
				executedAt, err := timeutil.ToLocalEditable(e.ExecutionDate)
				if err != nil {
					executedAt = e.ExecutionDate
				}
				tw.AppendRow(table.Row{e.ID, e.Category, e.TaskName, e.UserName, executedAt})
			}
			cmd.Printf("%s\n", tw.Render())
			return nil
		},
	}
}

func newExecutionAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add [project-id] [task-id]",
		Short: "Record that a task was carried out",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			projectID, err := parseID(args[0], "project id")
			if err != nil {
				return err
			}
			taskID, err := parseID(args[1], "task id")
			if err != nil {
				return err
			}

			params := model.TaskExecutionCreate{}
			if executionDate != "" {
				utcISO, err := timeutil.ToUTCISO(executionDate)
				if err != nil {
					return err
				}
				params.ExecutionDate = utcISO
			}

			cli, err := newClient()
			if err != nil {
				return err
			}

			execution, err := cli.CreateExecution(context.Background(), projectID, taskID, params)
			if err != nil {
				return err
			}

			cmd.Printf("recorded execution %d of %q\n", execution.ID, execution.TaskName)
			return nil
		},
	}
	cmd.Flags().StringVarP(&executionDate, "date", "d", "", "Execution time as JST wall clock (YYYY-MM-DDTHH:MM); defaults to now")
	return cmd
}

func newExecutionEditCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit [project-id] [execution-id]",
		Short: "Reassign an execution or move its timestamp",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			projectID, err := parseID(args[0], "project id")
			if err != nil {
				return err
			}
			executionID, err := parseID(args[1], "execution id")
			if err != nil {
				return err
			}

			params := model.TaskExecutionUpdate{UserID: executionUser}
			if executionDate != "" {
				utcISO, err := timeutil.ToUTCISO(executionDate)
				if err != nil {
					return err
				}
				params.ExecutionDate = utcISO
			}

			cli, err := newClient()
			if err != nil {
				return err
			}

			execution, err := cli.UpdateExecution(context.Background(), projectID, executionID, params)
			if err != nil {
				return err
			}

			cmd.Printf("updated execution %d\n", execution.ID)
			return nil
		},
	}
	cmd.Flags().IntVarP(&executionUser, "user", "u", 0, "User ID who carried out the task")
	cmd.Flags().StringVarP(&executionDate, "date", "d", "", "Execution time as JST wall clock (YYYY-MM-DDTHH:MM)")
	_ = cmd.MarkFlagRequired("user")
	return cmd
}

func newExecutionStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats [project-id]",
		Short: "Count executions per user over a period",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			projectID, err := parseID(args[0], "project id")
			if err != nil {
				return err
			}

			// Same default window the project dashboard uses.
			if statsFrom == "" && statsTo == "" {
				now := time.Now()
				statsFrom = now.AddDate(0, 0, -7).Format("2006-01-02")
				statsTo = now.Format("2006-01-02")
			}

			start, end, err := timeutil.DayRange(statsFrom, statsTo)
			if err != nil {
				return err
			}

			cli, err := newClient()
			if err != nil {
				return err
			}

			executions, err := cli.ListExecutions(context.Background(), projectID)
			if err != nil {
				return err
			}

			tw := newTableWriter()
			tw.AppendHeader(table.Row{"USER", "EXECUTIONS"})
			for _, count := range stats.ExecutionsPerUser(executions, start, end) {
				tw.AppendRow(table.Row{count.UserName, count.Executions})
			}
			cmd.Printf("%s to %s\n%s\n", statsFrom, statsTo, tw.Render())
			return nil
		},
	}
	cmd.Flags().StringVar(&statsFrom, "from", "", "First JST day to include (YYYY-MM-DD); defaults to a week ago")
	cmd.Flags().StringVar(&statsTo, "to", "", "Last JST day to include (YYYY-MM-DD); defaults to today")
	return cmd
}

func newExecutionRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm [project-id] [execution-id]",
		Short: "Delete an execution record",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			projectID, err := parseID(args[0], "project id")
			if err != nil {
				return err
			}
			executionID, err := parseID(args[1], "execution id")
			if err != nil {
				return err
			}

			cli, err := newClient()
			if err != nil {
				return err
			}

			if err := cli.DeleteExecution(context.Background(), projectID, executionID); err != nil {
				return err
			}

			cmd.Printf("deleted execution %d\n", executionID)
			return nil
		},
	}
}

func init() {
	executionCmd.AddCommand(newExecutionListCmd())
	executionCmd.AddCommand(newExecutionAddCmd())
	executionCmd.AddCommand(newExecutionEditCmd())
	executionCmd.AddCommand(newExecutionStatsCmd())
	executionCmd.AddCommand(newExecutionRemoveCmd())
	rootCmd.AddCommand(executionCmd)
}
