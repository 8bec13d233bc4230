package client

import (
	"context"
	"fmt"

	"github.com/Kamegrueon/household-task-manager/internal/model"
)

func (c *Client) ListMembers(ctx context.Context, projectID int) ([]model.ProjectMember, error) {
	var members []model.ProjectMember
	if err := c.getJSON(ctx, fmt.Sprintf("/projects/%d/members/", projectID), nil, &members); err != nil {
		return nil, err
	}
	return members, nil
}

func (c *Client) AddMember(ctx context.Context, projectID int, params model.ProjectMemberCreate) (*model.ProjectMember, error) {
	var added model.ProjectMember
	if err := c.postJSON(ctx, fmt.Sprintf("/projects/%d/members/", projectID), params, &added); err != nil {
		return nil, err
	}
	return &added, nil
}

func (c *Client) UpdateMemberRole(ctx context.Context, projectID, memberID int, role model.Role) (*model.ProjectMember, error) {
	var updated model.ProjectMember
	params := model.ProjectMemberUpdate{Role: role}
	if err := c.putJSON(ctx, fmt.Sprintf("/projects/%d/members/%d", projectID, memberID), params, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *Client) RemoveMember(ctx context.Context, projectID, memberID int) error {
	return c.deleteRequest(ctx, fmt.Sprintf("/projects/%d/members/%d", projectID, memberID))
}
