package tui

import "github.com/ogiraldo/inkflow/internal/model"

// Refresh messages: a store operation finished and the affected view
// should re-read its slice of state. The error is carried for views that
// render failure states (not-found, forbidden); notifications were already
// emitted by the store.
type entriesRefreshedMsg struct {
	err       error
	entryType model.EntryType
}

type categoriesRefreshedMsg struct {
	err error
}

type usersRefreshedMsg struct {
	err error
}

type userRefreshedMsg struct {
	err    error
	userID int64
}

type paymentsRefreshedMsg struct {
	err error
}

type paymentRefreshedMsg struct {
	err       error
	paymentID int64
}

type latestPostsRefreshedMsg struct {
	err error
}

type userPostsRefreshedMsg struct {
	err      error
	editorID int64
}

type profileRefreshedMsg struct {
	err error
}

// entryLoadedMsg carries the server copy of an entry opened for editing.
type entryLoadedMsg struct {
	err   error
	entry *model.Entry
}

// Mutation outcomes that change what view is shown.
type entrySavedMsg struct {
	err       error
	entryType model.EntryType
}

type categorySavedMsg struct {
	err      error
	category *model.CategorySummary
}

type userSavedMsg struct {
	err  error
	user *model.User
}

// notificationMsg is a toast raised by the store's notifier.
type notificationMsg struct {
	text    string
	isError bool
}

// clearNotificationMsg hides the toast after its display window.
type clearNotificationMsg struct {
	seq int64
}
