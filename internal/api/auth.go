package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/golang-jwt/jwt/v5"
	"github.com/ogiraldo/inkflow/internal/model"
)

// Me fetches the authenticated user's own profile.
func (c *Client) Me(ctx context.Context) (*model.User, error) {
	var user model.User
	if err := c.do(ctx, http.MethodGet, "/users/me", nil, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// TokenClaims are the profile hints embedded in the access token.
type TokenClaims struct {
	Name   string     `json:"name"`
	Role   model.Role `json:"role"`
	UserID int64      `json:"uid"`
}

// ParseTokenClaims extracts the profile hints from an access token without
// verifying its signature. The API verifies tokens on every call; these
// claims exist only so the UI can pick privilege hints (e.g. disabling the
// manager role option) before the profile fetch resolves.
func ParseTokenClaims(accessToken string) (*TokenClaims, error) {
	parser := jwt.NewParser()

	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(accessToken, claims); err != nil {
		return nil, fmt.Errorf("failed to parse access token: %w", err)
	}

	parsed := &TokenClaims{}
	if name, ok := claims["name"].(string); ok {
		parsed.Name = name
	}
	if role, ok := claims["role"].(string); ok {
		parsed.Role = model.Role(role)
	}
	if uid, ok := claims["uid"].(float64); ok {
		parsed.UserID = int64(uid)
	}

	return parsed, nil
}
