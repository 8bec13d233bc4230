package member

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Kamegrueon/household-task-manager/internal/model"
)

func makeMember(id, userID int, role model.Role) model.ProjectMember {
	return model.ProjectMember{
		ID:        id,
		ProjectID: 1,
		User:      model.UserResponse{ID: userID, Username: "user", Email: "user@example.com"},
		Role:      role,
	}
}

func TestCanDelete(t *testing.T) {
	tests := []struct {
		name     string
		members  []model.ProjectMember
		targetID int
		allowed  bool
		reason   Reason
	}{
		{
			name:     "sole member denied regardless of role",
			members:  []model.ProjectMember{makeMember(1, 10, model.RoleViewer)},
			targetID: 1,
			reason:   ReasonLastMember,
		},
		{
			name:     "sole admin member denied as last member",
			members:  []model.ProjectMember{makeMember(1, 10, model.RoleAdmin)},
			targetID: 1,
			reason:   ReasonLastMember,
		},
		{
			name: "only admin among several denied as last admin",
			members: []model.ProjectMember{
				makeMember(1, 10, model.RoleAdmin),
				makeMember(2, 11, model.RoleMember),
				makeMember(3, 12, model.RoleViewer),
			},
			targetID: 1,
			reason:   ReasonLastAdmin,
		},
		{
			name: "non-admin deletable while an admin remains",
			members: []model.ProjectMember{
				makeMember(1, 10, model.RoleAdmin),
				makeMember(2, 11, model.RoleMember),
			},
			targetID: 2,
			allowed:  true,
		},
		{
			name: "admin deletable when another admin exists",
			members: []model.ProjectMember{
				makeMember(1, 10, model.RoleAdmin),
				makeMember(2, 11, model.RoleAdmin),
			},
			targetID: 1,
			allowed:  true,
		},
		{
			name: "unknown member id denied",
			members: []model.ProjectMember{
				makeMember(1, 10, model.RoleAdmin),
				makeMember(2, 11, model.RoleMember),
			},
			targetID: 99,
			reason:   ReasonNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CanDelete(tt.members, tt.targetID)
			assert.Equal(t, tt.allowed, got.Allowed)
			assert.Equal(t, tt.reason, got.Reason)
		})
	}
}

func TestCanChangeRole(t *testing.T) {
	tests := []struct {
		name     string
		members  []model.ProjectMember
		targetID int
		newRole  model.Role
		allowed  bool
		reason   Reason
	}{
		{
			name: "demoting the only admin denied",
			members: []model.ProjectMember{
				makeMember(1, 10, model.RoleAdmin),
				makeMember(2, 11, model.RoleMember),
			},
			targetID: 1,
			newRole:  model.RoleMember,
			reason:   ReasonLastAdmin,
		},
		{
			name: "demoting the only admin to viewer denied",
			members: []model.ProjectMember{
				makeMember(1, 10, model.RoleAdmin),
				makeMember(2, 11, model.RoleMember),
			},
			targetID: 1,
			newRole:  model.RoleViewer,
			reason:   ReasonLastAdmin,
		},
		{
			name: "demoting one of two admins allowed",
			members: []model.ProjectMember{
				makeMember(1, 10, model.RoleAdmin),
				makeMember(2, 11, model.RoleAdmin),
			},
			targetID: 1,
			newRole:  model.RoleMember,
			allowed:  true,
		},
		{
			name: "same role is a no-op",
			members: []model.ProjectMember{
				makeMember(1, 10, model.RoleAdmin),
				makeMember(2, 11, model.RoleMember),
			},
			targetID: 2,
			newRole:  model.RoleMember,
			reason:   ReasonNoOp,
		},
		{
			name: "admin to admin is a no-op even when last admin",
			members: []model.ProjectMember{
				makeMember(1, 10, model.RoleAdmin),
				makeMember(2, 11, model.RoleMember),
			},
			targetID: 1,
			newRole:  model.RoleAdmin,
			reason:   ReasonNoOp,
		},
		{
			name: "promoting a member allowed",
			members: []model.ProjectMember{
				makeMember(1, 10, model.RoleAdmin),
				makeMember(2, 11, model.RoleMember),
			},
			targetID: 2,
			newRole:  model.RoleAdmin,
			allowed:  true,
		},
		{
			name: "unknown member id denied",
			members: []model.ProjectMember{
				makeMember(1, 10, model.RoleAdmin),
			},
			targetID: 42,
			newRole:  model.RoleMember,
			reason:   ReasonNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CanChangeRole(tt.members, tt.targetID, tt.newRole)
			assert.Equal(t, tt.allowed, got.Allowed)
			assert.Equal(t, tt.reason, got.Reason)
		})
	}
}

func TestCanAdd(t *testing.T) {
	members := []model.ProjectMember{
		makeMember(1, 10, model.RoleAdmin),
		makeMember(2, 11, model.RoleMember),
	}

	t.Run("existing user denied", func(t *testing.T) {
		got := CanAdd(members, 11)
		assert.False(t, got.Allowed)
		assert.Equal(t, ReasonAlreadyMember, got.Reason)
	})

	t.Run("new user allowed", func(t *testing.T) {
		got := CanAdd(members, 12)
		assert.True(t, got.Allowed)
	})
}

func TestGuardDoesNotMutateInput(t *testing.T) {
	members := []model.ProjectMember{
		makeMember(1, 10, model.RoleAdmin),
		makeMember(2, 11, model.RoleMember),
	}

	CanDelete(members, 1)
	CanChangeRole(members, 1, model.RoleMember)
	CanAdd(members, 11)

	assert.Equal(t, model.RoleAdmin, members[0].Role)
	assert.Equal(t, model.RoleMember, members[1].Role)
	assert.Len(t, members, 2)
}
