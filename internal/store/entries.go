package store

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/ogiraldo/inkflow/internal/model"
)

// entriesState tracks one cash-flow ledger (expenses or revenues). Each
// ledger keeps its own query, page, selection and in-flight fetch fence.
type entriesState struct {
	query    model.EntryQuery
	page     model.Page[model.Entry]
	selected map[int64]bool
	fetching bool

	// fetchSeq fences concurrent fetches: only the response matching the
	// latest sequence number may write the page.
	fetchSeq int64
}

func newEntriesState(t model.EntryType) entriesState {
	return entriesState{
		query: model.EntryQuery{
			Type: t,
			Sort: []string{"transactedOn,desc"},
			Page: 0,
			Size: 20,
		},
		selected: make(map[int64]bool),
	}
}

func (s *Store) entriesFor(t model.EntryType) *entriesState {
	if t == model.EntryTypeRevenue {
		return &s.revenues
	}
	return &s.expenses
}

// FetchEntries loads the current page of the given ledger. Responses that
// arrive after a newer fetch has started are discarded, so the page always
// reflects the most recent query. Failures never raise a notification; the
// list view shows its own error state.
func (s *Store) FetchEntries(ctx context.Context, t model.EntryType) error {
	op := operation{name: "fetch " + ledgerName(t) + " entries", silent: true}

	s.mu.Lock()
	st := s.entriesFor(t)
	st.fetchSeq++
	seq := st.fetchSeq
	st.fetching = true
	q := st.query
	s.mu.Unlock()

	page, err := s.client.GetEntries(ctx, q)

	s.mu.Lock()
	defer s.mu.Unlock()
	st = s.entriesFor(t)
	if seq != st.fetchSeq {
		s.logger.Debug("discarding stale fetch", "operation", op.name, "seq", seq)
		return nil
	}
	st.fetching = false
	if err != nil {
		return s.fail(op, err)
	}
	st.page = page

	// Selection survives a refresh only for rows still on the page.
	present := make(map[int64]bool, len(page.Content))
	for _, e := range page.Content {
		present[e.ID] = true
	}
	for id := range st.selected {
		if !present[id] {
			delete(st.selected, id)
		}
	}
	return nil
}

// SetEntryQuery merges the patch into the ledger's query. Only the fields
// the patch carries change; the ledger's entry type is fixed for life.
func (s *Store) SetEntryQuery(t model.EntryType, patch model.EntryQueryPatch) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entriesFor(t).query.Apply(patch)
}

// EntryQueryFor returns a copy of the ledger's current query.
func (s *Store) EntryQueryFor(t model.EntryType) model.EntryQuery {
	s.mu.RLock()
	defer s.mu.RUnlock()
	q := s.entriesFor(t).query
	q.Sort = append([]string(nil), q.Sort...)
	return q
}

// Entries returns a copy of the ledger's current page content.
func (s *Store) Entries(t model.EntryType) []model.Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.Entry(nil), s.entriesFor(t).page.Content...)
}

// EntryPage returns the pagination metadata of the ledger's current page.
func (s *Store) EntryPage(t model.EntryType) model.Page[model.Entry] {
	s.mu.RLock()
	defer s.mu.RUnlock()
	page := s.entriesFor(t).page
	page.Content = append([]model.Entry(nil), page.Content...)
	return page
}

// EntriesFetching reports whether a fetch is in flight for the ledger.
func (s *Store) EntriesFetching(t model.EntryType) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.entriesFor(t).fetching
}

// ToggleEntrySelected flips the selection mark on one row.
func (s *Store) ToggleEntrySelected(t model.EntryType, entryID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := s.entriesFor(t)
	if st.selected[entryID] {
		delete(st.selected, entryID)
	} else {
		st.selected[entryID] = true
	}
}

// ClearEntrySelection drops every selection mark on the ledger.
func (s *Store) ClearEntrySelection(t model.EntryType) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entriesFor(t).selected = make(map[int64]bool)
}

// SelectedEntryIDs returns the selected row ids in ascending order.
func (s *Store) SelectedEntryIDs(t model.EntryType) []int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	st := s.entriesFor(t)
	ids := make([]int64, 0, len(st.selected))
	for id := range st.selected {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// FetchEntry loads one entry by id for the editor. The list row may be
// stale, so editing always starts from the server's copy. Failures are
// silent; the editor shows its own error state.
func (s *Store) FetchEntry(ctx context.Context, t model.EntryType, entryID int64) (*model.Entry, error) {
	op := operation{name: "fetch " + ledgerName(t) + " entry", silent: true}
	entry, err := s.client.GetEntry(ctx, entryID)
	if err != nil {
		return nil, s.fail(op, err)
	}
	return entry, nil
}

// CreateEntry submits a new cash-flow entry. The list is not touched; the
// caller refreshes it after a successful create. Failures are surfaced by
// the form, not by a notification.
func (s *Store) CreateEntry(ctx context.Context, input model.EntryInput) error {
	op := operation{name: "create " + ledgerName(input.Type) + " entry", silent: true}
	if _, err := s.client.CreateEntry(ctx, input); err != nil {
		return s.fail(op, err)
	}
	s.notifier.Success(ledgerName(input.Type) + " created")
	return nil
}

// UpdateEntry submits changes to an existing cash-flow entry.
func (s *Store) UpdateEntry(ctx context.Context, entryID int64, input model.EntryInput) error {
	op := operation{name: "update " + ledgerName(input.Type) + " entry"}
	if _, err := s.client.UpdateEntry(ctx, entryID, input); err != nil {
		return s.fail(op, err)
	}
	s.notifier.Success(ledgerName(input.Type) + " updated")
	return nil
}

// RemoveSelectedEntries deletes every selected row of the ledger in one
// call, then clears the selection. The caller refreshes the list.
func (s *Store) RemoveSelectedEntries(ctx context.Context, t model.EntryType) error {
	op := operation{name: "remove " + ledgerName(t) + " entries"}

	ids := s.SelectedEntryIDs(t)
	if len(ids) == 0 {
		return nil
	}

	if err := s.client.RemoveEntriesInBatch(ctx, ids); err != nil {
		return s.fail(op, err)
	}

	s.ClearEntrySelection(t)
	s.notifier.Success(fmt.Sprintf("%d %s", len(ids), pluralize("entry removed", "entries removed", len(ids))))
	return nil
}

func ledgerName(t model.EntryType) string {
	return strings.ToLower(string(t))
}

func pluralize(singular, plural string, n int) string {
	if n == 1 {
		return singular
	}
	return plural
}
