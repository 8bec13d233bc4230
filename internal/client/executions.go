package client

import (
	"context"
	"fmt"

	"github.com/Kamegrueon/household-task-manager/internal/model"
)

func (c *Client) ListExecutions(ctx context.Context, projectID int) ([]model.TaskExecution, error) {
	var executions []model.TaskExecution
	if err := c.getJSON(ctx, fmt.Sprintf("/projects/%d/executions/", projectID), nil, &executions); err != nil {
		return nil, err
	}
	return executions, nil
}

// CreateExecution records that taskID was carried out. The execution date is
// optional; the backend defaults it to now.
func (c *Client) CreateExecution(ctx context.Context, projectID, taskID int, params model.TaskExecutionCreate) (*model.TaskExecution, error) {
	var execution model.TaskExecution
	if err := c.postJSON(ctx, fmt.Sprintf("/projects/%d/executions/%d", projectID, taskID), params, &execution); err != nil {
		return nil, err
	}
	return &execution, nil
}

func (c *Client) GetExecution(ctx context.Context, projectID, executionID int) (*model.TaskExecution, error) {
	var execution model.TaskExecution
	if err := c.getJSON(ctx, fmt.Sprintf("/projects/%d/executions/%d", projectID, executionID), nil, &execution); err != nil {
		return nil, err
	}
	return &execution, nil
}

func (c *Client) UpdateExecution(ctx context.Context, projectID, executionID int, params model.TaskExecutionUpdate) (*model.TaskExecution, error) {
	var execution model.TaskExecution
	if err := c.putJSON(ctx, fmt.Sprintf("/projects/%d/executions/%d", projectID, executionID), params, &execution); err != nil {
		return nil, err
	}
	return &execution, nil
}

func (c *Client) DeleteExecution(ctx context.Context, projectID, executionID int) error {
	return c.deleteRequest(ctx, fmt.Sprintf("/projects/%d/executions/%d", projectID, executionID))
}
