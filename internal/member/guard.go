// Package member holds the local guard rules for project membership
// mutations. Every project must keep at least one member and at least one
// Admin; the guard rejects a mutation locally before any request is sent.
// The backend re-validates the same rules and stays authoritative.
package member

import (
	"github.com/Kamegrueon/household-task-manager/internal/model"
)

// Reason explains why a mutation was denied.
type Reason string

const (
	ReasonNotFound      Reason = "NotFound"
	ReasonLastMember    Reason = "LastMember"
	ReasonLastAdmin     Reason = "LastAdmin"
	ReasonNoOp          Reason = "NoOp"
	ReasonAlreadyMember Reason = "AlreadyMember"
)

// Decision is the outcome of a guard check. Reason is set only when the
// mutation is denied.
type Decision struct {
	Allowed bool
	Reason  Reason
}

func allow() Decision {
	return Decision{Allowed: true}
}

func deny(reason Reason) Decision {
	return Decision{Reason: reason}
}

// CanDelete reports whether the member with targetID may be removed without
// leaving the project memberless or adminless.
func CanDelete(members []model.ProjectMember, targetID int) Decision {
	target, ok := find(members, targetID)
	if !ok {
		return deny(ReasonNotFound)
	}

	if len(members) <= 1 {
		return deny(ReasonLastMember)
	}

	if target.Role == model.RoleAdmin && adminCount(members) <= 1 {
		return deny(ReasonLastAdmin)
	}

	return allow()
}

// CanChangeRole reports whether the member with targetID may take newRole.
// A NoOp denial means the caller should skip the network call entirely.
func CanChangeRole(members []model.ProjectMember, targetID int, newRole model.Role) Decision {
	target, ok := find(members, targetID)
	if !ok {
		return deny(ReasonNotFound)
	}

	if target.Role == model.RoleAdmin && newRole != model.RoleAdmin && adminCount(members) <= 1 {
		return deny(ReasonLastAdmin)
	}

	if newRole == target.Role {
		return deny(ReasonNoOp)
	}

	return allow()
}

// CanAdd reports whether the user with candidateUserID may be added, which
// it may unless already present in the member list.
func CanAdd(members []model.ProjectMember, candidateUserID int) Decision {
	for _, m := range members {
		if m.User.ID == candidateUserID {
			return deny(ReasonAlreadyMember)
		}
	}
	return allow()
}

func find(members []model.ProjectMember, targetID int) (model.ProjectMember, bool) {
	for _, m := range members {
		if m.ID == targetID {
			return m, true
		}
	}
	return model.ProjectMember{}, false
}

func adminCount(members []model.ProjectMember) int {
	count := 0
	for _, m := range members {
		if m.Role == model.RoleAdmin {
			count++
		}
	}
	return count
}
