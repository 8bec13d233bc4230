package cli

import (
	"context"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/Kamegrueon/household-task-manager/internal/model"
)

var taskCmd = &cobra.Command{
	Use:   "task",
	Short: "Manage recurring tasks",
}

var (
	taskCategory  string
	taskName      string
	taskFrequency int
	dueFilter     string
)

func renderTasks(cmd *cobra.Command, tasks []model.Task) {
	tw := newTableWriter()
	tw.AppendHeader(table.Row{"ID", "CATEGORY", "NAME", "FREQUENCY (DAYS)"})
	for _, task := range tasks {
		tw.AppendRow(table.Row{task.ID, task.Category, task.TaskName, task.Frequency})
	}
	cmd.Printf("%s\n", tw.Render())
}

func newTaskListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ls [project-id]",
		Short: "List tasks in a project",
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

			tasks, err := cli.ListTasks(context.Background(), projectID)
			if err != nil {
				return err
			}

			renderTasks(cmd, tasks)
			return nil
		},
	}
}

func newTaskCreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create [project-id]",
		Short: "Create a task",
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

			task, err := cli.CreateTask(context.Background(), projectID, model.TaskCreateParams{
				Category:  taskCategory,
				TaskName:  taskName,
				Frequency: taskFrequency,
			})
			if err != nil {
				return err
			}

			cmd.Printf("created task %q (id %d)\n", task.TaskName, task.ID)
			return nil
		},
	}
	cmd.Flags().StringVarP(&taskCategory, "category", "c", "", "Task category")
	cmd.Flags().StringVarP(&taskName, "name", "n", "", "Task name")
	cmd.Flags().IntVarP(&taskFrequency, "frequency", "f", 7, "Frequency in days")
	_ = cmd.MarkFlagRequired("category")
	_ = cmd.MarkFlagRequired("name")
	return cmd
}

func newTaskUpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update [project-id] [task-id]",
		Short: "Update a task",
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

			cli, err := newClient()
			if err != nil {
				return err
			}

			task, err := cli.UpdateTask(context.Background(), projectID, taskID, model.TaskCreateParams{
				Category:  taskCategory,
				TaskName:  taskName,
				Frequency: taskFrequency,
			})
			if err != nil {
				return err
			}

			cmd.Printf("updated task %q\n", task.TaskName)
			return nil
		},
	}
	cmd.Flags().StringVarP(&taskCategory, "category", "c", "", "Task category")
	cmd.Flags().StringVarP(&taskName, "name", "n", "", "Task name")
	cmd.Flags().IntVarP(&taskFrequency, "frequency", "f", 7, "Frequency in days")
	_ = cmd.MarkFlagRequired("category")
	_ = cmd.MarkFlagRequired("name")
	return cmd
}

func newTaskRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm [project-id] [task-id]",
		Short: "Delete a task",
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

			cli, err := newClient()
			if err != nil {
				return err
			}

			if err := cli.DeleteTask(context.Background(), projectID, taskID); err != nil {
				return err
			}

			cmd.Printf("deleted task %d\n", taskID)
			return nil
		},
	}
}

func newTaskDueCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "due [project-id]",
		Short: "List tasks due within a horizon",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			projectID, err := parseID(args[0], "project id")
			if err != nil {
				return err
			}

			filter, err := model.ParseDueFilter(dueFilter)
			if err != nil {
				return err
			}

			cli, err := newClient()
			if err != nil {
				return err
			}

			tasks, err := cli.DueTasks(context.Background(), projectID, filter)
			if err != nil {
				return err
			}

			renderTasks(cmd, tasks)
			return nil
		},
	}
	cmd.Flags().StringVarP(&dueFilter, "filter", "F", "today", "Horizon: today, tomorrow, week or month")
	return cmd
}

func newTaskUploadCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "upload [project-id] [csv-file]",
		Short: "Bulk-create tasks from a CSV file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			projectID, err := parseID(args[0], "project id")
			if err != nil {
				return err
			}

			file, err := os.Open(args[1])
			if err != nil {
				return err
			}
			defer file.Close()

			cli, err := newClient()
			if err != nil {
				return err
			}

			if err := cli.UploadTasksCSV(context.Background(), projectID, args[1], file); err != nil {
				return err
			}

			cmd.Println("tasks uploaded")
			return nil
		},
	}
}

func init() {
	taskCmd.AddCommand(newTaskListCmd())
	taskCmd.AddCommand(newTaskCreateCmd())
	taskCmd.AddCommand(newTaskUpdateCmd())
	taskCmd.AddCommand(newTaskRemoveCmd())
	taskCmd.AddCommand(newTaskDueCmd())
	taskCmd.AddCommand(newTaskUploadCmd())
	rootCmd.AddCommand(taskCmd)
}
