package store

import (
	"context"

	"github.com/ogiraldo/inkflow/internal/model"
)

// postsState tracks the dashboard's latest-posts panel and the per-editor
// post listing shown on the user detail view.
type postsState struct {
	latest         []model.Post
	latestFetching bool
	latestSeq      int64

	editorID   int64
	editorPage model.Page[model.Post]
	editorSeq  int64

	// togglingID is the post whose publication flip is in flight, zero
	// when none is.
	togglingID int64
}

// FetchLatestPosts loads the most recent posts across all editors.
func (s *Store) FetchLatestPosts(ctx context.Context) error {
	op := operation{name: "fetch latest posts", silent: true}

	s.mu.Lock()
	s.posts.latestSeq++
	seq := s.posts.latestSeq
	s.posts.latestFetching = true
	s.mu.Unlock()

	latest, err := s.client.GetLatestPosts(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	if seq != s.posts.latestSeq {
		s.logger.Debug("discarding stale fetch", "operation", op.name, "seq", seq)
		return nil
	}
	s.posts.latestFetching = false
	if err != nil {
		return s.fail(op, err)
	}
	s.posts.latest = latest
	return nil
}

// LatestPosts returns a copy of the latest-posts panel content.
func (s *Store) LatestPosts() []model.Post {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.Post(nil), s.posts.latest...)
}

// LatestPostsFetching reports whether the panel fetch is in flight.
func (s *Store) LatestPostsFetching() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.posts.latestFetching
}

// FetchUserPosts loads one page of an editor's posts.
func (s *Store) FetchUserPosts(ctx context.Context, editorID int64, page int) error {
	op := operation{name: "fetch user posts", silent: true}

	s.mu.Lock()
	s.posts.editorSeq++
	seq := s.posts.editorSeq
	s.posts.editorID = editorID
	s.mu.Unlock()

	result, err := s.client.GetUserPosts(ctx, editorID, page)

	s.mu.Lock()
	defer s.mu.Unlock()
	if seq != s.posts.editorSeq {
		s.logger.Debug("discarding stale fetch", "operation", op.name, "seq", seq)
		return nil
	}
	if err != nil {
		return s.fail(op, err)
	}
	s.posts.editorPage = result
	return nil
}

// UserPosts returns the current page of the editor's posts along with the
// editor it belongs to.
func (s *Store) UserPosts() (editorID int64, page model.Page[model.Post]) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	page = s.posts.editorPage
	page.Content = append([]model.Post(nil), page.Content...)
	return s.posts.editorID, page
}

// TogglePostStatus publishes an unpublished post or unpublishes a
// published one, then reloads the page it came from so the table reflects
// the server's view.
func (s *Store) TogglePostStatus(ctx context.Context, post model.Post) error {
	op := operation{name: "toggle post publication"}

	s.mu.Lock()
	s.posts.togglingID = post.ID
	editorID := s.posts.editorID
	page := s.posts.editorPage.Number
	s.mu.Unlock()
	defer func() {
		s.mu.Lock()
		s.posts.togglingID = 0
		s.mu.Unlock()
	}()

	var err error
	if post.Published {
		err = s.client.UnpublishPost(ctx, post.ID)
	} else {
		err = s.client.PublishPost(ctx, post.ID)
	}
	if err != nil {
		return s.fail(op, err)
	}

	if post.Published {
		s.notifier.Success("post unpublished")
	} else {
		s.notifier.Success("post published")
	}

	return s.FetchUserPosts(ctx, editorID, page)
}

// PostToggling returns the id of the post whose publication flip is in
// flight, or zero when none is.
func (s *Store) PostToggling() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.posts.togglingID
}
