package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/ogiraldo/inkflow/internal/model"
)

// GetAllUsers fetches every user visible to the caller.
func (c *Client) GetAllUsers(ctx context.Context) ([]model.User, error) {
	var users []model.User
	if err := c.do(ctx, http.MethodGet, "/users", nil, nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// GetUser fetches one user in detail.
func (c *Client) GetUser(ctx context.Context, userID int64) (*model.User, error) {
	var user model.User
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/users/%d", userID), nil, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// CreateUser registers a new user.
func (c *Client) CreateUser(ctx context.Context, input model.UserInput) (*model.User, error) {
	var user model.User
	if err := c.do(ctx, http.MethodPost, "/users", nil, input, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateUser overwrites an existing user.
func (c *Client) UpdateUser(ctx context.Context, userID int64, input model.UserInput) (*model.User, error) {
	var user model.User
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/users/%d", userID), nil, input, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// ActivateUser turns a deactivated user back on.
func (c *Client) ActivateUser(ctx context.Context, userID int64) error {
	return c.do(ctx, http.MethodPost, fmt.Sprintf("/users/%d/activation", userID), nil, nil, nil)
}

// DeactivateUser disables an active user.
func (c *Client) DeactivateUser(ctx context.Context, userID int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/users/%d/activation", userID), nil, nil, nil)
}
