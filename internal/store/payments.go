package store

import (
	"context"

	"github.com/ogiraldo/inkflow/internal/api"
	"github.com/ogiraldo/inkflow/internal/model"
)

// paymentsState tracks the payment list and the detail view's subject,
// including the posts billed by the payment on display.
type paymentsState struct {
	query    model.PaymentQuery
	page     model.Page[model.Payment]
	fetching bool
	fetchSeq int64

	detail         *model.Payment
	detailPosts    []model.Post
	detailLoading  bool
	detailNotFound bool

	approving bool
}

// FetchAllPayments loads the current page of payments. List failures raise
// no notification; the list view shows its own error state.
func (s *Store) FetchAllPayments(ctx context.Context) error {
	op := operation{name: "fetch payments", silent: true}

	s.mu.Lock()
	s.payments.fetchSeq++
	seq := s.payments.fetchSeq
	s.payments.fetching = true
	q := s.payments.query
	s.mu.Unlock()

	page, err := s.client.GetAllPayments(ctx, q)

	s.mu.Lock()
	defer s.mu.Unlock()
	if seq != s.payments.fetchSeq {
		s.logger.Debug("discarding stale fetch", "operation", op.name, "seq", seq)
		return nil
	}
	s.payments.fetching = false
	if err != nil {
		return s.fail(op, err)
	}
	s.payments.page = page
	return nil
}

// SetPaymentPage moves the payment list to the given page number.
func (s *Store) SetPaymentPage(page int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if page < 0 {
		page = 0
	}
	s.payments.query.Page = page
}

// Payments returns a copy of the current payment page content.
func (s *Store) Payments() []model.Payment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.Payment(nil), s.payments.page.Content...)
}

// PaymentPage returns the pagination metadata of the payment list.
func (s *Store) PaymentPage() model.Page[model.Payment] {
	s.mu.RLock()
	defer s.mu.RUnlock()
	page := s.payments.page
	page.Content = append([]model.Payment(nil), page.Content...)
	return page
}

// PaymentsFetching reports whether a payment list fetch is in flight.
func (s *Store) PaymentsFetching() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.payments.fetching
}

// FetchPayment loads one payment and the posts it bills. As with users, a
// 404 renders as a not-found state rather than a toast.
func (s *Store) FetchPayment(ctx context.Context, paymentID int64) error {
	op := operation{name: "fetch payment"}

	s.mu.Lock()
	s.payments.detail = nil
	s.payments.detailPosts = nil
	s.payments.detailLoading = true
	s.payments.detailNotFound = false
	s.mu.Unlock()

	payment, err := s.client.GetPayment(ctx, paymentID)

	s.mu.Lock()
	s.payments.detailLoading = false
	if err != nil {
		defer s.mu.Unlock()
		if api.IsNotFound(err) {
			s.payments.detailNotFound = true
			s.logger.Warn("operation failed", "operation", op.name, "error", err)
			return err
		}
		return s.fail(op, err)
	}
	s.payments.detail = payment
	s.mu.Unlock()

	return s.FetchPaymentPosts(ctx, paymentID)
}

// FetchPaymentPosts loads the posts billed by the payment. The posts panel
// degrades to an empty table on failure, so the fetch is silent.
func (s *Store) FetchPaymentPosts(ctx context.Context, paymentID int64) error {
	op := operation{name: "fetch payment posts", silent: true}

	posts, err := s.client.GetPaymentPosts(ctx, paymentID)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		return s.fail(op, err)
	}
	if s.payments.detail == nil || s.payments.detail.ID != paymentID {
		return nil
	}
	s.payments.detailPosts = posts
	return nil
}

// PaymentDetail returns the detail subject, its posts, whether it is
// loading, and whether the last fetch came back not found.
func (s *Store) PaymentDetail() (payment *model.Payment, posts []model.Post, loading, notFound bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.payments.detail != nil {
		p := *s.payments.detail
		payment = &p
	}
	posts = append([]model.Post(nil), s.payments.detailPosts...)
	return payment, posts, s.payments.detailLoading, s.payments.detailNotFound
}

// ApprovePayment approves the payment and reloads it so the approval
// timestamp and capability flags reflect the server's view. The payment
// must still be approvable (see Payment.Approvable).
func (s *Store) ApprovePayment(ctx context.Context, payment model.Payment) error {
	op := operation{name: "approve payment"}

	if !payment.Approvable() {
		s.logger.Warn("payment not approvable", "payment", payment.ID)
		return nil
	}

	s.mu.Lock()
	s.payments.approving = true
	s.mu.Unlock()
	defer func() {
		s.mu.Lock()
		s.payments.approving = false
		s.mu.Unlock()
	}()

	if err := s.client.ApprovePayment(ctx, payment.ID); err != nil {
		return s.fail(op, err)
	}

	s.notifier.Success("payment approved")
	return s.FetchPayment(ctx, payment.ID)
}

// PaymentApproving reports whether an approval is in flight.
func (s *Store) PaymentApproving() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.payments.approving
}
