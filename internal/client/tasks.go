package client

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"net/url"
	"path/filepath"

	"github.com/Kamegrueon/household-task-manager/internal/model"
)

func (c *Client) ListTasks(ctx context.Context, projectID int) ([]model.Task, error) {
	var tasks []model.Task
	if err := c.getJSON(ctx, fmt.Sprintf("/projects/%d/tasks/", projectID), nil, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

func (c *Client) CreateTask(ctx context.Context, projectID int, params model.TaskCreateParams) (*model.Task, error) {
	var task model.Task
	if err := c.postJSON(ctx, fmt.Sprintf("/projects/%d/tasks/", projectID), params, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

func (c *Client) GetTask(ctx context.Context, projectID, taskID int) (*model.Task, error) {
	var task model.Task
	if err := c.getJSON(ctx, fmt.Sprintf("/projects/%d/tasks/%d", projectID, taskID), nil, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

func (c *Client) UpdateTask(ctx context.Context, projectID, taskID int, params model.TaskCreateParams) (*model.Task, error) {
	var task model.Task
	if err := c.putJSON(ctx, fmt.Sprintf("/projects/%d/tasks/%d", projectID, taskID), params, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

func (c *Client) DeleteTask(ctx context.Context, projectID, taskID int) error {
	return c.deleteRequest(ctx, fmt.Sprintf("/projects/%d/tasks/%d", projectID, taskID))
}

// DueTasks lists the tasks whose last execution plus frequency falls within
// the given horizon.
func (c *Client) DueTasks(ctx context.Context, projectID int, filter model.DueFilter) ([]model.Task, error) {
	query := url.Values{}
	if filter != "" {
		query.Set("filter_type", string(filter))
	}

	var tasks []model.Task
	if err := c.getJSON(ctx, fmt.Sprintf("/projects/%d/tasks/due/", projectID), query, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

// UploadTasksCSV sends a CSV of task definitions as a multipart form.
func (c *Client) UploadTasksCSV(ctx context.Context, projectID int, filename string, csv io.Reader) error {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile("file", filepath.Base(filename))
	if err != nil {
		return fmt.Errorf("create form file: %w", err)
	}
	if _, err := io.Copy(part, csv); err != nil {
		return fmt.Errorf("copy csv: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("close multipart writer: %w", err)
	}

	_, err = c.do(ctx, apiRequest{
		method:      http.MethodPost,
		path:        fmt.Sprintf("/projects/%d/tasks/upload", projectID),
		body:        buf.Bytes(),
		contentType: writer.FormDataContentType(),
	})
	if err != nil {
		return err
	}

	log.Printf("[Client] uploaded tasks CSV %s", filepath.Base(filename))
	return nil
}
