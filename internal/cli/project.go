package cli

import (
	"context"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/Kamegrueon/household-task-manager/internal/model"
)

var projectCmd = &cobra.Command{
	Use:   "project",
	Short: "Manage projects",
}

var (
	projectName        string
	projectDescription string
)

func newProjectListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ls",
		Short: "List projects",
		RunE: func(cmd *cobra.Command, args []string) error {
			cli, err := newClient()
			if err != nil {
				return err
			}

			projects, err := cli.ListProjects(context.Background())
			if err != nil {
				return err
			}

			tw := newTableWriter()
			tw.AppendHeader(table.Row{"ID", "NAME", "DESCRIPTION"})
			for _, project := range projects {
				tw.AppendRow(table.Row{project.ID, project.Name, project.Description})
			}
			cmd.Printf("%s\n", tw.Render())
			return nil
		},
	}
}

func newProjectCreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a project",
		RunE: func(cmd *cobra.Command, args []string) error {
			cli, err := newClient()
			if err != nil {
				return err
			}

			project, err := cli.CreateProject(context.Background(), model.ProjectCreateParams{
				Name:        projectName,
				Description: projectDescription,
			})
			if err != nil {
				return err
			}

			cmd.Printf("created project %q (id %d)\n", project.Name, project.ID)
			return nil
		},
	}
	cmd.Flags().StringVarP(&projectName, "name", "n", "", "Project name")
	cmd.Flags().StringVarP(&projectDescription, "description", "d", "", "Project description")
	_ = cmd.MarkFlagRequired("name")
	return cmd
}

func newProjectGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get [project-id]",
		Short: "Show a project",
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

			project, err := cli.GetProject(context.Background(), projectID)
			if err != nil {
				return err
			}

			tw := newTableWriter()
			tw.AppendHeader(table.Row{"ID", "NAME", "DESCRIPTION"})
			tw.AppendRow(table.Row{project.ID, project.Name, project.Description})
			cmd.Printf("%s\n", tw.Render())
			return nil
		},
	}
}

func newProjectUpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update [project-id]",
		Short: "Update a project",
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

			project, err := cli.UpdateProject(context.Background(), projectID, model.ProjectCreateParams{
				Name:        projectName,
				Description: projectDescription,
			})
			if err != nil {
				return err
			}

			cmd.Printf("updated project %q\n", project.Name)
			return nil
		},
	}
	cmd.Flags().StringVarP(&projectName, "name", "n", "", "Project name")
	cmd.Flags().StringVarP(&projectDescription, "description", "d", "", "Project description")
	_ = cmd.MarkFlagRequired("name")
	return cmd
}

func newProjectRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm [project-id]",
		Short: "Delete a project",
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

			if err := cli.DeleteProject(context.Background(), projectID); err != nil {
				return err
			}

			cmd.Printf("deleted project %d\n", projectID)
			return nil
		},
	}
}

func init() {
	projectCmd.AddCommand(newProjectListCmd())
	projectCmd.AddCommand(newProjectCreateCmd())
	projectCmd.AddCommand(newProjectGetCmd())
	projectCmd.AddCommand(newProjectUpdateCmd())
	projectCmd.AddCommand(newProjectRemoveCmd())
	rootCmd.AddCommand(projectCmd)
}
