package store

import (
	"context"

	"github.com/ogiraldo/inkflow/internal/model"
)

// categoriesState holds the cash-flow categories, already partitioned by
// entry type so the forms can fill their pickers without filtering.
type categoriesState struct {
	expenses []model.CategorySummary
	revenues []model.CategorySummary
	fetching bool
	fetchSeq int64
}

// FetchCategories loads every category and partitions it into the expense
// and revenue sets. Newest first, so a just-created category shows on top
// of its picker. Failures raise no notification; the form reacts to the
// error itself (a 403 means the caller cannot manage categories at all).
func (s *Store) FetchCategories(ctx context.Context) error {
	op := operation{name: "fetch categories", silent: true}

	s.mu.Lock()
	s.categories.fetchSeq++
	seq := s.categories.fetchSeq
	s.categories.fetching = true
	s.mu.Unlock()

	all, err := s.client.GetAllCategories(ctx, []string{"id,desc"})

	s.mu.Lock()
	defer s.mu.Unlock()
	if seq != s.categories.fetchSeq {
		s.logger.Debug("discarding stale fetch", "operation", op.name, "seq", seq)
		return nil
	}
	s.categories.fetching = false
	if err != nil {
		return s.fail(op, err)
	}
	s.categories.expenses, s.categories.revenues = partitionCategories(all)
	return nil
}

// partitionCategories splits categories into the expense and revenue sets.
// The two sets are disjoint; order within each set is preserved.
func partitionCategories(all []model.CategorySummary) (expenses, revenues []model.CategorySummary) {
	for _, c := range all {
		if c.Type == model.EntryTypeRevenue {
			revenues = append(revenues, c)
		} else {
			expenses = append(expenses, c)
		}
	}
	return expenses, revenues
}

// Categories returns a copy of the category set for the given entry type.
func (s *Store) Categories(t model.EntryType) []model.CategorySummary {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if t == model.EntryTypeRevenue {
		return append([]model.CategorySummary(nil), s.categories.revenues...)
	}
	return append([]model.CategorySummary(nil), s.categories.expenses...)
}

// CategoriesFetching reports whether a category fetch is in flight.
func (s *Store) CategoriesFetching() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.categories.fetching
}

// CreateCategory adds a category and returns it so the caller can select
// it immediately. The sets are refreshed by the caller. Failures raise no
// notification; the inline editor shows them in place.
func (s *Store) CreateCategory(ctx context.Context, input model.CategoryInput) (*model.CategorySummary, error) {
	op := operation{name: "create category", silent: true}
	created, err := s.client.CreateCategory(ctx, input)
	if err != nil {
		return nil, s.fail(op, err)
	}
	return created, nil
}

// DeleteCategory removes a category. The server rejects deleting one that
// still has entries; that rejection surfaces in the picker, not as a toast.
func (s *Store) DeleteCategory(ctx context.Context, categoryID int64) error {
	op := operation{name: "delete category", silent: true}
	if err := s.client.DeleteCategory(ctx, categoryID); err != nil {
		return s.fail(op, err)
	}
	return nil
}
