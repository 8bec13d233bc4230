package client

import (
	"context"
	"fmt"
	"net/url"

	"github.com/Kamegrueon/household-task-manager/internal/model"
)

func (c *Client) ListUsers(ctx context.Context) ([]model.UserResponse, error) {
	var users []model.UserResponse
	if err := c.getJSON(ctx, "/users/", nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// SearchUsersByEmail matches users by partial email.
func (c *Client) SearchUsersByEmail(ctx context.Context, email string) ([]model.UserResponse, error) {
	query := url.Values{}
	query.Set("email", email)

	var users []model.UserResponse
	if err := c.getJSON(ctx, "/users/", query, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (c *Client) GetUser(ctx context.Context, userID int) (*model.UserResponse, error) {
	var user model.UserResponse
	if err := c.getJSON(ctx, fmt.Sprintf("/users/%d", userID), nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}
