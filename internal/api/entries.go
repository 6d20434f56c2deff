package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/ogiraldo/inkflow/internal/model"
)

// GetEntries fetches one page of cash-flow entries matching the query.
func (c *Client) GetEntries(ctx context.Context, q model.EntryQuery) (model.Page[model.Entry], error) {
	query := url.Values{}
	query.Set("type", string(q.Type))
	query.Set("page", strconv.Itoa(q.Page))
	if q.Size > 0 {
		query.Set("size", strconv.Itoa(q.Size))
	}
	if q.YearMonth != "" {
		query.Set("yearMonth", q.YearMonth)
	}
	for _, s := range q.Sort {
		query.Add("sort", s)
	}

	var page model.Page[model.Entry]
	if err := c.do(ctx, http.MethodGet, "/cash-flow/entries", query, nil, &page); err != nil {
		return model.Page[model.Entry]{}, err
	}
	return page, nil
}

// GetEntry fetches a single existing entry, typically to pre-populate an
// edit form.
func (c *Client) GetEntry(ctx context.Context, entryID int64) (*model.Entry, error) {
	var entry model.Entry
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/cash-flow/entries/%d", entryID), nil, nil, &entry); err != nil {
		return nil, err
	}
	return &entry, nil
}

// CreateEntry creates a new cash-flow entry.
func (c *Client) CreateEntry(ctx context.Context, input model.EntryInput) (*model.Entry, error) {
	var entry model.Entry
	if err := c.do(ctx, http.MethodPost, "/cash-flow/entries", nil, input, &entry); err != nil {
		return nil, err
	}
	return &entry, nil
}

// UpdateEntry overwrites an existing cash-flow entry.
func (c *Client) UpdateEntry(ctx context.Context, entryID int64, input model.EntryInput) (*model.Entry, error) {
	var entry model.Entry
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/cash-flow/entries/%d", entryID), nil, input, &entry); err != nil {
		return nil, err
	}
	return &entry, nil
}

// RemoveEntriesInBatch deletes several entries in a single call.
func (c *Client) RemoveEntriesInBatch(ctx context.Context, entryIDs []int64) error {
	if len(entryIDs) == 0 {
		return nil
	}

	ids := make([]string, 0, len(entryIDs))
	for _, id := range entryIDs {
		ids = append(ids, strconv.FormatInt(id, 10))
	}

	query := url.Values{}
	query.Set("ids", strings.Join(ids, ","))

	return c.do(ctx, http.MethodDelete, "/cash-flow/entries", query, nil, nil)
}

// GetAllCategories fetches the full category list. The API has no
// type-scoped retrieval; callers partition the result themselves.
func (c *Client) GetAllCategories(ctx context.Context, sort []string) ([]model.CategorySummary, error) {
	query := url.Values{}
	for _, s := range sort {
		query.Add("sort", s)
	}

	var categories []model.CategorySummary
	if err := c.do(ctx, http.MethodGet, "/cash-flow/categories", query, nil, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

// CreateCategory creates a new cash-flow category.
func (c *Client) CreateCategory(ctx context.Context, input model.CategoryInput) (*model.CategorySummary, error) {
	var category model.CategorySummary
	if err := c.do(ctx, http.MethodPost, "/cash-flow/categories", nil, input, &category); err != nil {
		return nil, err
	}
	return &category, nil
}

// DeleteCategory removes a category.
func (c *Client) DeleteCategory(ctx context.Context, categoryID int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/cash-flow/categories/%d", categoryID), nil, nil, nil)
}
