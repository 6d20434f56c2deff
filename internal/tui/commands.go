package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ogiraldo/inkflow/internal/model"
)

// Every command runs one store operation with a bounded context and
// reports back with a refresh message. Error notifications are the store's
// job; the messages only carry the error for view-state decisions.

func (m Model) withTimeout(fn func(ctx context.Context) tea.Msg) tea.Cmd {
	timeout := m.config.RequestTimeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		return fn(ctx)
	}
}

func (m Model) fetchEntries(t model.EntryType) tea.Cmd {
	return m.withTimeout(func(ctx context.Context) tea.Msg {
		err := m.store.FetchEntries(ctx, t)
		return entriesRefreshedMsg{entryType: t, err: err}
	})
}

func (m Model) fetchCategories() tea.Cmd {
	return m.withTimeout(func(ctx context.Context) tea.Msg {
		return categoriesRefreshedMsg{err: m.store.FetchCategories(ctx)}
	})
}

func (m Model) fetchEntryForEdit(t model.EntryType, entryID int64) tea.Cmd {
	return m.withTimeout(func(ctx context.Context) tea.Msg {
		entry, err := m.store.FetchEntry(ctx, t, entryID)
		return entryLoadedMsg{entry: entry, err: err}
	})
}

func (m Model) createEntry(input model.EntryInput) tea.Cmd {
	return m.withTimeout(func(ctx context.Context) tea.Msg {
		err := m.store.CreateEntry(ctx, input)
		return entrySavedMsg{entryType: input.Type, err: err}
	})
}

func (m Model) updateEntry(entryID int64, input model.EntryInput) tea.Cmd {
	return m.withTimeout(func(ctx context.Context) tea.Msg {
		err := m.store.UpdateEntry(ctx, entryID, input)
		return entrySavedMsg{entryType: input.Type, err: err}
	})
}

func (m Model) removeSelectedEntries(t model.EntryType) tea.Cmd {
	return m.withTimeout(func(ctx context.Context) tea.Msg {
		err := m.store.RemoveSelectedEntries(ctx, t)
		if err != nil {
			return entriesRefreshedMsg{entryType: t, err: err}
		}
		err = m.store.FetchEntries(ctx, t)
		return entriesRefreshedMsg{entryType: t, err: err}
	})
}

func (m Model) createCategory(input model.CategoryInput) tea.Cmd {
	return m.withTimeout(func(ctx context.Context) tea.Msg {
		created, err := m.store.CreateCategory(ctx, input)
		if err != nil {
			return categorySavedMsg{err: err}
		}
		if err := m.store.FetchCategories(ctx); err != nil {
			return categorySavedMsg{category: created, err: err}
		}
		return categorySavedMsg{category: created}
	})
}

func (m Model) deleteCategory(categoryID int64) tea.Cmd {
	return m.withTimeout(func(ctx context.Context) tea.Msg {
		if err := m.store.DeleteCategory(ctx, categoryID); err != nil {
			return categoriesRefreshedMsg{err: err}
		}
		return categoriesRefreshedMsg{err: m.store.FetchCategories(ctx)}
	})
}

func (m Model) fetchUsers() tea.Cmd {
	return m.withTimeout(func(ctx context.Context) tea.Msg {
		return usersRefreshedMsg{err: m.store.FetchAllUsers(ctx)}
	})
}

func (m Model) fetchUser(userID int64) tea.Cmd {
	return m.withTimeout(func(ctx context.Context) tea.Msg {
		err := m.store.FetchUser(ctx, userID)
		return userRefreshedMsg{userID: userID, err: err}
	})
}

func (m Model) saveUser(userID *int64, input model.UserInput) tea.Cmd {
	return m.withTimeout(func(ctx context.Context) tea.Msg {
		var user *model.User
		var err error
		if userID == nil {
			user, err = m.store.CreateUser(ctx, input)
		} else {
			user, err = m.store.UpdateUser(ctx, *userID, input)
		}
		return userSavedMsg{user: user, err: err}
	})
}

func (m Model) toggleUserStatus(user model.User) tea.Cmd {
	return m.withTimeout(func(ctx context.Context) tea.Msg {
		err := m.store.ToggleUserStatus(ctx, user)
		return userRefreshedMsg{userID: user.ID, err: err}
	})
}

func (m Model) fetchUserPosts(editorID int64, page int) tea.Cmd {
	return m.withTimeout(func(ctx context.Context) tea.Msg {
		err := m.store.FetchUserPosts(ctx, editorID, page)
		return userPostsRefreshedMsg{editorID: editorID, err: err}
	})
}

func (m Model) togglePost(post model.Post) tea.Cmd {
	return m.withTimeout(func(ctx context.Context) tea.Msg {
		err := m.store.TogglePostStatus(ctx, post)
		return userPostsRefreshedMsg{editorID: post.Editor.ID, err: err}
	})
}

func (m Model) fetchPayments() tea.Cmd {
	return m.withTimeout(func(ctx context.Context) tea.Msg {
		return paymentsRefreshedMsg{err: m.store.FetchAllPayments(ctx)}
	})
}

func (m Model) fetchPayment(paymentID int64) tea.Cmd {
	return m.withTimeout(func(ctx context.Context) tea.Msg {
		err := m.store.FetchPayment(ctx, paymentID)
		return paymentRefreshedMsg{paymentID: paymentID, err: err}
	})
}

func (m Model) approvePayment(payment model.Payment) tea.Cmd {
	return m.withTimeout(func(ctx context.Context) tea.Msg {
		err := m.store.ApprovePayment(ctx, payment)
		return paymentRefreshedMsg{paymentID: payment.ID, err: err}
	})
}

func (m Model) fetchLatestPosts() tea.Cmd {
	return m.withTimeout(func(ctx context.Context) tea.Msg {
		return latestPostsRefreshedMsg{err: m.store.FetchLatestPosts(ctx)}
	})
}

func (m Model) fetchProfile() tea.Cmd {
	return m.withTimeout(func(ctx context.Context) tea.Msg {
		return profileRefreshedMsg{err: m.store.FetchProfile(ctx)}
	})
}
