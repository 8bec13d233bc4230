package client

import (
	"context"
	"fmt"

	"github.com/Kamegrueon/household-task-manager/internal/model"
)

func (c *Client) ListProjects(ctx context.Context) ([]model.ProjectResponse, error) {
	var projects []model.ProjectResponse
	if err := c.getJSON(ctx, "/projects/", nil, &projects); err != nil {
		return nil, err
	}
	return projects, nil
}

func (c *Client) CreateProject(ctx context.Context, params model.ProjectCreateParams) (*model.ProjectResponse, error) {
	var project model.ProjectResponse
	if err := c.postJSON(ctx, "/projects/", params, &project); err != nil {
		return nil, err
	}
	return &project, nil
}

func (c *Client) GetProject(ctx context.Context, projectID int) (*model.ProjectResponse, error) {
	var project model.ProjectResponse
	if err := c.getJSON(ctx, fmt.Sprintf("/projects/%d", projectID), nil, &project); err != nil {
		return nil, err
	}
	return &project, nil
}

func (c *Client) UpdateProject(ctx context.Context, projectID int, params model.ProjectCreateParams) (*model.ProjectResponse, error) {
	var project model.ProjectResponse
	if err := c.putJSON(ctx, fmt.Sprintf("/projects/%d", projectID), params, &project); err != nil {
		return nil, err
	}
	return &project, nil
}

func (c *Client) DeleteProject(ctx context.Context, projectID int) error {
	return c.deleteRequest(ctx, fmt.Sprintf("/projects/%d", projectID))
}
