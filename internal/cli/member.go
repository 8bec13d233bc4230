package cli

import (
	"context"
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/Kamegrueon/household-task-manager/internal/member"
	"github.com/Kamegrueon/household-task-manager/internal/model"
)

var memberCmd = &cobra.Command{
	Use:   "member",
	Short: "Manage project members",
}

var (
	memberUserID int
	memberRole   string
)

func guardMessage(reason member.Reason) string {
	switch reason {
	case member.ReasonLastMember:
		return "a project needs at least one member"
	case member.ReasonLastAdmin:
		return "a project needs at least one Admin"
	case member.ReasonAlreadyMember:
		return "the user is already a member of this project"
	case member.ReasonNotFound:
		return "member not found"
	default:
		return string(reason)
	}
}

func newMemberListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ls [project-id]",
		Short: "List project members",
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

			members, err := cli.ListMembers(context.Background(), projectID)
			if err != nil {
				return err
			}

			tw := newTableWriter()
			tw.AppendHeader(table.Row{"ID", "USERNAME", "EMAIL", "ROLE"})
			for _, m := range members {
				tw.AppendRow(table.Row{m.ID, m.User.Username, m.User.Email, m.Role})
			}
			cmd.Printf("%s\n", tw.Render())
			return nil
		},
	}
}

func newMemberAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add [project-id]",
		Short: "Add a user to a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			projectID, err := parseID(args[0], "project id")
			if err != nil {
				return err
			}

			role, err := model.ParseRole(memberRole)
			if err != nil {
				return err
			}

			cli, err := newClient()
			if err != nil {
				return err
			}

			ctx := context.Background()
			members, err := cli.ListMembers(ctx, projectID)
			if err != nil {
				return err
			}

			if decision := member.CanAdd(members, memberUserID); !decision.Allowed {
				return fmt.Errorf("cannot add member: %s", guardMessage(decision.Reason))
			}

			added, err := cli.AddMember(ctx, projectID, model.ProjectMemberCreate{
				UserID: memberUserID,
				Role:   role,
			})
			if err != nil {
				return err
			}

			cmd.Printf("added %s as %s\n", added.User.Username, added.Role)
			return nil
		},
	}
	cmd.Flags().IntVarP(&memberUserID, "user", "u", 0, "User ID to add")
	cmd.Flags().StringVarP(&memberRole, "role", "r", "Member", "Role (Member, Admin, Viewer)")
	_ = cmd.MarkFlagRequired("user")
	return cmd
}

func newMemberRoleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "role [project-id] [member-id]",
		Short: "Change a member's role",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			projectID, err := parseID(args[0], "project id")
			if err != nil {
				return err
			}
			memberID, err := parseID(args[1], "member id")
			if err != nil {
				return err
			}

			role, err := model.ParseRole(memberRole)
			if err != nil {
				return err
			}

			cli, err := newClient()
			if err != nil {
				return err
			}

			ctx := context.Background()
			members, err := cli.ListMembers(ctx, projectID)
			if err != nil {
				return err
			}

			decision := member.CanChangeRole(members, memberID, role)
			if !decision.Allowed {
				if decision.Reason == member.ReasonNoOp {
					cmd.Printf("member %d already has role %s\n", memberID, role)
					return nil
				}
				return fmt.Errorf("cannot change role: %s", guardMessage(decision.Reason))
			}

			updated, err := cli.UpdateMemberRole(ctx, projectID, memberID, role)
			if err != nil {
				return err
			}

			cmd.Printf("%s is now %s\n", updated.User.Username, updated.Role)
			return nil
		},
	}
	cmd.Flags().StringVarP(&memberRole, "role", "r", "", "New role (Member, Admin, Viewer)")
	_ = cmd.MarkFlagRequired("role")
	return cmd
}

func newMemberRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm [project-id] [member-id]",
		Short: "Remove a member from a project",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			projectID, err := parseID(args[0], "project id")
			if err != nil {
				return err
			}
			memberID, err := parseID(args[1], "member id")
			if err != nil {
				return err
			}

			cli, err := newClient()
			if err != nil {
				return err
			}

			ctx := context.Background()
			members, err := cli.ListMembers(ctx, projectID)
			if err != nil {
				return err
			}

			if decision := member.CanDelete(members, memberID); !decision.Allowed {
				return fmt.Errorf("cannot remove member: %s", guardMessage(decision.Reason))
			}

			if err := cli.RemoveMember(ctx, projectID, memberID); err != nil {
				return err
			}

			cmd.Printf("removed member %d\n", memberID)
			return nil
		},
	}
}

func init() {
	memberCmd.AddCommand(newMemberListCmd())
	memberCmd.AddCommand(newMemberAddCmd())
	memberCmd.AddCommand(newMemberRoleCmd())
	memberCmd.AddCommand(newMemberRemoveCmd())
	rootCmd.AddCommand(memberCmd)
}
