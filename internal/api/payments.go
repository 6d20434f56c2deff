package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/ogiraldo/inkflow/internal/model"
)

// GetAllPayments fetches one page of scheduled payments.
func (c *Client) GetAllPayments(ctx context.Context, q model.PaymentQuery) (model.Page[model.Payment], error) {
	query := url.Values{}
	query.Set("page", strconv.Itoa(q.Page))
	if q.Size > 0 {
		query.Set("size", strconv.Itoa(q.Size))
	}
	for _, s := range q.Sort {
		query.Add("sort", s)
	}

	var page model.Page[model.Payment]
	if err := c.do(ctx, http.MethodGet, "/payments", query, nil, &page); err != nil {
		return model.Page[model.Payment]{}, err
	}
	return page, nil
}

// GetPayment fetches one payment in detail.
func (c *Client) GetPayment(ctx context.Context, paymentID int64) (*model.Payment, error) {
	var payment model.Payment
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/payments/%d", paymentID), nil, nil, &payment); err != nil {
		return nil, err
	}
	return &payment, nil
}

// GetPaymentPosts fetches the posts whose earnings compose a payment.
func (c *Client) GetPaymentPosts(ctx context.Context, paymentID int64) ([]model.Post, error) {
	var posts []model.Post
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/payments/%d/posts", paymentID), nil, nil, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

// ApprovePayment approves a scheduled payment. Approval is irreversible:
// there is no corresponding unapprove operation.
func (c *Client) ApprovePayment(ctx context.Context, paymentID int64) error {
	return c.do(ctx, http.MethodPost, fmt.Sprintf("/payments/%d/approval", paymentID), nil, nil, nil)
}
