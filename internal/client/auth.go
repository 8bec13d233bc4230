package client

import (
	"context"
	"net/url"

	"github.com/Kamegrueon/household-task-manager/internal/model"
)

// Login authenticates with a form-encoded username/password pair and stores
// the returned token pair.
func (c *Client) Login(ctx context.Context, username, password string) (*model.TokenResponse, error) {
	form := url.Values{}
	form.Set("username", username)
	form.Set("password", password)

	var tokens model.TokenResponse
	if err := c.postForm(ctx, "/auth/login/", form, &tokens); err != nil {
		return nil, err
	}

	if err := c.tokens.SetAccess(tokens.AccessToken); err != nil {
		return nil, err
	}
	if err := c.tokens.SetRefresh(tokens.RefreshToken); err != nil {
		return nil, err
	}
	return &tokens, nil
}

func (c *Client) Register(ctx context.Context, params model.UserCreateParams) (*model.UserResponse, error) {
	var user model.UserResponse
	if err := c.postJSON(ctx, "/auth/register/", params, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Me returns the profile of the authenticated user.
func (c *Client) Me(ctx context.Context) (*model.UserResponse, error) {
	var user model.UserResponse
	if err := c.getJSON(ctx, "/auth/me", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *Client) UpdateProfile(ctx context.Context, params model.UserUpdateParams) error {
	return c.putJSON(ctx, "/auth/update-profile", params, nil)
}

func (c *Client) ChangePassword(ctx context.Context, params model.PasswordChangeParams) error {
	return c.putJSON(ctx, "/auth/change-password", params, nil)
}

// Logout drops the stored token pair. The backend keeps no client session
// state beyond the refresh token, which simply stops being used.
func (c *Client) Logout() error {
	return c.tokens.Clear()
}
