package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/ogiraldo/inkflow/internal/model"
)

// GetLatestPosts fetches the most recently created posts.
func (c *Client) GetLatestPosts(ctx context.Context) ([]model.Post, error) {
	var posts []model.Post
	if err := c.do(ctx, http.MethodGet, "/posts/latest", nil, nil, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

// GetUserPosts fetches one page of an editor's posts.
func (c *Client) GetUserPosts(ctx context.Context, editorID int64, page int) (model.Page[model.Post], error) {
	query := url.Values{}
	query.Set("page", strconv.Itoa(page))
	query.Set("size", "10")

	var result model.Page[model.Post]
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/users/%d/posts", editorID), query, nil, &result); err != nil {
		return model.Page[model.Post]{}, err
	}
	return result, nil
}

// PublishPost makes a post publicly visible.
func (c *Client) PublishPost(ctx context.Context, postID int64) error {
	return c.do(ctx, http.MethodPost, fmt.Sprintf("/posts/%d/publication", postID), nil, nil, nil)
}

// UnpublishPost hides a published post.
func (c *Client) UnpublishPost(ctx context.Context, postID int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/posts/%d/publication", postID), nil, nil, nil)
}
