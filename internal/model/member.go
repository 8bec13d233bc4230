package model

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// Role is the closed set of project member roles. The backend compares role
// strings case-insensitively, so incoming values are normalized once here
// and every later comparison is a plain equality check.
type Role string

const (
	RoleMember Role = "Member"
	RoleAdmin  Role = "Admin"
	RoleViewer Role = "Viewer"
)

var ErrUnknownRole = errors.New("unknown role")

func ParseRole(s string) (Role, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "member":
		return RoleMember, nil
	case "admin":
		return RoleAdmin, nil
	case "viewer":
		return RoleViewer, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownRole, s)
	}
}

func (r Role) String() string {
	return string(r)
}

func (r *Role) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	parsed, err := ParseRole(raw)
	if err != nil {
		// The server is authoritative; keep an unknown role verbatim rather
		// than failing the whole response decode.
		*r = Role(raw)
		return nil
	}
	*r = parsed
	return nil
}

type ProjectMemberCreate struct {
	UserID int  `json:"user_id"`
	Role   Role `json:"role"`
}

type ProjectMemberUpdate struct {
	Role Role `json:"role"`
}

type ProjectMember struct {
	ID        int          `json:"id"`
	ProjectID int          `json:"project_id"`
	User      UserResponse `json:"user"`
	Role      Role         `json:"role"`
}
