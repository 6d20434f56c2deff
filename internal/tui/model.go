package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ogiraldo/inkflow/internal/api"
	"github.com/ogiraldo/inkflow/internal/model"
	"github.com/ogiraldo/inkflow/internal/store"
	"github.com/ogiraldo/inkflow/internal/tui/components"
	"github.com/ogiraldo/inkflow/internal/tui/themes"
)

// View represents the current screen.
type View int

const (
	ViewDashboard View = iota
	ViewExpenses
	ViewRevenues
	ViewUsers
	ViewUserDetail
	ViewUserForm
	ViewPayments
	ViewPaymentDetail
	ViewEntryForm
	ViewHelp
)

// notificationTTL is how long a toast stays on screen.
const notificationTTL = 4 * time.Second

// Model is the root bubbletea model. It owns the screen routing, feeds
// store state into the active component, and turns component messages into
// store commands.
type Model struct {
	config Config
	store  *store.Store
	theme  themes.Theme
	keymap KeyMap

	view       View
	returnView View

	latestPosts   components.LatestPostsModel
	expenses      components.EntryListModel
	revenues      components.EntryListModel
	users         components.UserListModel
	userDetail    components.UserDetailModel
	userForm      components.UserFormModel
	payments      components.PaymentListModel
	paymentDetail components.PaymentDetailModel
	entryForm     components.EntryFormModel

	notification      string
	notificationError bool
	notificationSeq   int64

	width    int
	height   int
	quitting bool
}

// newModel creates a new model with the given configuration.
func newModel(cfg Config) Model {
	return Model{
		config:      cfg,
		store:       cfg.Store,
		theme:       cfg.Theme,
		keymap:      DefaultKeyMap(),
		view:        ViewDashboard,
		returnView:  ViewDashboard,
		latestPosts: components.NewLatestPosts(cfg.Theme),
		expenses:    components.NewEntryList(model.EntryTypeExpense, cfg.Theme),
		revenues:    components.NewEntryList(model.EntryTypeRevenue, cfg.Theme),
		users:       components.NewUserList(cfg.Theme),
		payments:    components.NewPaymentList(cfg.Theme),
		width:       cfg.Width,
		height:      cfg.Height,
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		m.fetchProfile(),
		m.fetchLatestPosts(),
	)
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if cmd, handled := m.handleGlobalKeys(msg); handled {
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.expenses.Resize(msg.Width, msg.Height)
		m.revenues.Resize(msg.Width, msg.Height)
		m.users.Resize(msg.Width, msg.Height)
		m.payments.Resize(msg.Width, msg.Height)

	case notificationMsg:
		m.notification = msg.text
		m.notificationError = msg.isError
		m.notificationSeq++
		seq := m.notificationSeq
		return m, tea.Tick(notificationTTL, func(time.Time) tea.Msg {
			return clearNotificationMsg{seq: seq}
		})

	case clearNotificationMsg:
		if msg.seq == m.notificationSeq {
			m.notification = ""
		}
		return m, nil
	}

	if updated, cmd, handled := m.handleRefresh(msg); handled {
		return updated, cmd
	}
	if updated, cmd, handled := m.handleComponentMsg(msg); handled {
		return updated, cmd
	}

	return m.updateActiveComponent(msg)
}

// handleGlobalKeys handles keys that work on any screen. Forms and the
// month filter capture all typing, so only force-quit reaches through them.
func (m *Model) handleGlobalKeys(msg tea.KeyMsg) (tea.Cmd, bool) {
	if key.Matches(msg, m.keymap.ForceQuit) {
		m.quitting = true
		return tea.Quit, true
	}

	if m.typingCapturesKeys() {
		return nil, false
	}

	switch {
	case key.Matches(msg, m.keymap.Quit):
		m.quitting = true
		return tea.Quit, true

	case key.Matches(msg, m.keymap.Help):
		if m.view == ViewHelp {
			m.view = m.returnView
		} else {
			m.returnView = m.view
			m.view = ViewHelp
		}
		return nil, true

	case key.Matches(msg, m.keymap.ClearScreen):
		return tea.ClearScreen, true

	case key.Matches(msg, m.keymap.Dashboard):
		return m.switchView(ViewDashboard), true

	case key.Matches(msg, m.keymap.Expenses):
		return m.switchView(ViewExpenses), true

	case key.Matches(msg, m.keymap.Revenues):
		return m.switchView(ViewRevenues), true

	case key.Matches(msg, m.keymap.Users):
		return m.switchView(ViewUsers), true

	case key.Matches(msg, m.keymap.Payments):
		return m.switchView(ViewPayments), true

	case key.Matches(msg, m.keymap.Refresh):
		return m.refreshCurrentView(), true
	}

	return nil, false
}

func (m Model) typingCapturesKeys() bool {
	switch m.view {
	case ViewEntryForm, ViewUserForm:
		return true
	case ViewExpenses:
		return m.expenses.Filtering()
	case ViewRevenues:
		return m.revenues.Filtering()
	}
	return false
}

// switchView moves to a top-level screen and kicks off its fetch.
func (m *Model) switchView(view View) tea.Cmd {
	m.view = view
	m.returnView = view
	m.syncBreadcrumb()
	return m.refreshCurrentView()
}

func (m Model) refreshCurrentView() tea.Cmd {
	var cmd tea.Cmd
	switch m.view {
	case ViewDashboard:
		cmd = tea.Batch(m.fetchLatestPosts(), m.fetchProfile())
	case ViewExpenses:
		cmd = m.fetchEntries(model.EntryTypeExpense)
	case ViewRevenues:
		cmd = m.fetchEntries(model.EntryTypeRevenue)
	case ViewUsers:
		cmd = m.fetchUsers()
	case ViewPayments:
		cmd = m.fetchPayments()
	}
	if cmd != nil {
		m.store.SetStatus("loading…")
	}
	return cmd
}

func (m *Model) syncBreadcrumb() {
	switch m.view {
	case ViewDashboard:
		m.store.SetBreadcrumb("Dashboard")
	case ViewExpenses:
		m.store.SetBreadcrumb("Cash flow", "Expenses")
	case ViewRevenues:
		m.store.SetBreadcrumb("Cash flow", "Revenues")
	case ViewUsers:
		m.store.SetBreadcrumb("Users")
	case ViewUserDetail:
		m.store.SetBreadcrumb("Users", "Detail")
	case ViewUserForm:
		m.store.SetBreadcrumb("Users", "Editor")
	case ViewPayments:
		m.store.SetBreadcrumb("Payments")
	case ViewPaymentDetail:
		m.store.SetBreadcrumb("Payments", "Detail")
	case ViewEntryForm:
		m.store.SetBreadcrumb("Cash flow", "Editor")
	}
}

// handleRefresh applies store state to components after an operation and
// clears the transient status line once a response lands.
func (m Model) handleRefresh(msg tea.Msg) (Model, tea.Cmd, bool) {
	updated, cmd, handled := m.applyRefresh(msg)
	if handled {
		updated.store.SetStatus("")
	}
	return updated, cmd, handled
}

func (m Model) applyRefresh(msg tea.Msg) (Model, tea.Cmd, bool) {
	switch msg := msg.(type) {
	case entriesRefreshedMsg:
		list := &m.expenses
		if msg.entryType == model.EntryTypeRevenue {
			list = &m.revenues
		}
		list.SetData(
			m.store.EntryPage(msg.entryType),
			m.store.SelectedEntryIDs(msg.entryType),
			m.store.EntriesFetching(msg.entryType),
		)
		return m, nil, true

	case categoriesRefreshedMsg:
		if api.IsForbidden(msg.err) {
			m.entryForm.SetForbidden(true)
		} else if msg.err == nil {
			m.entryForm.SetCategories(m.store.Categories(m.entryFormType()))
		}
		return m, nil, true

	case categorySavedMsg:
		if msg.err == nil {
			m.entryForm.SetCategories(m.store.Categories(m.entryFormType()))
			if msg.category != nil {
				m.entryForm.SelectCategory(msg.category.ID)
			}
		}
		return m, nil, true

	case entryLoadedMsg:
		if msg.err != nil || msg.entry == nil || m.view != ViewEntryForm {
			return m, nil, true
		}
		if id := m.entryForm.EntryID(); id == nil || *id != msg.entry.ID {
			return m, nil, true
		}
		m.entryForm = components.NewEntryForm(msg.entry, msg.entry.Type, m.theme)
		m.entryForm.SetCategories(m.store.Categories(msg.entry.Type))
		return m, nil, true

	case entrySavedMsg:
		if msg.err != nil {
			m.entryForm.SetServerError(store.UserMessage(msg.err))
			return m, nil, true
		}
		if msg.entryType == model.EntryTypeRevenue {
			m.view = ViewRevenues
		} else {
			m.view = ViewExpenses
		}
		m.returnView = m.view
		m.syncBreadcrumb()
		return m, m.fetchEntries(msg.entryType), true

	case usersRefreshedMsg:
		m.users.SetData(m.store.Users(), m.store.UsersFetching())
		return m, nil, true

	case userRefreshedMsg:
		user, loading, notFound := m.store.UserDetail()
		m.userDetail.SetData(user, loading, notFound)
		if user != nil && user.IsEditor() {
			return m, m.fetchUserPosts(user.ID, 0), true
		}
		return m, nil, true

	case userSavedMsg:
		return m.handleUserSaved(msg)

	case userPostsRefreshedMsg:
		_, page := m.store.UserPosts()
		m.userDetail.SetPosts(page, m.store.PostToggling())
		return m, nil, true

	case paymentsRefreshedMsg:
		m.payments.SetData(m.store.PaymentPage(), m.store.PaymentsFetching())
		return m, nil, true

	case paymentRefreshedMsg:
		payment, posts, loading, notFound := m.store.PaymentDetail()
		m.paymentDetail.SetData(payment, posts, loading, notFound, m.store.PaymentApproving())
		return m, nil, true

	case latestPostsRefreshedMsg:
		m.latestPosts.SetData(m.store.LatestPosts(), m.store.LatestPostsFetching())
		return m, nil, true

	case profileRefreshedMsg:
		return m, nil, true
	}

	return m, nil, false
}

func (m Model) handleUserSaved(msg userSavedMsg) (Model, tea.Cmd, bool) {
	if msg.err != nil {
		if reqErr, ok := api.AsRequestError(msg.err); ok && api.IsValidation(msg.err) {
			m.userForm.SetViolations(reqErr.Objects)
		} else {
			m.userForm.SetGlobalError(store.UserMessage(msg.err))
		}
		return m, nil, true
	}

	m.view = ViewUserDetail
	m.syncBreadcrumb()
	m.userDetail = components.NewUserDetail(m.theme)
	return m, m.fetchUser(msg.user.ID), true
}

// entryFormType returns the ledger the open entry editor belongs to.
func (m Model) entryFormType() model.EntryType {
	if m.returnView == ViewRevenues {
		return model.EntryTypeRevenue
	}
	return model.EntryTypeExpense
}

// handleComponentMsg turns component requests into store commands and
// view transitions.
func (m Model) handleComponentMsg(msg tea.Msg) (Model, tea.Cmd, bool) {
	switch msg := msg.(type) {
	case components.EntrySelectedMsg:
		m.store.ToggleEntrySelected(msg.Type, msg.EntryID)
		list := &m.expenses
		if msg.Type == model.EntryTypeRevenue {
			list = &m.revenues
		}
		list.SetData(m.store.EntryPage(msg.Type), m.store.SelectedEntryIDs(msg.Type), m.store.EntriesFetching(msg.Type))
		return m, nil, true

	case components.EntryPageMsg:
		page := msg.Page
		m.store.SetEntryQuery(msg.Type, model.EntryQueryPatch{Page: &page})
		return m, m.fetchEntries(msg.Type), true

	case components.EntryFilterMsg:
		page := 0
		yearMonth := msg.YearMonth
		m.store.SetEntryQuery(msg.Type, model.EntryQueryPatch{YearMonth: &yearMonth, Page: &page})
		return m, m.fetchEntries(msg.Type), true

	case components.EntryCreateMsg:
		m.entryForm = components.NewEntryForm(nil, msg.Type, m.theme)
		m.view = ViewEntryForm
		m.syncBreadcrumb()
		m.entryForm.SetCategories(m.store.Categories(msg.Type))
		return m, m.fetchCategories(), true

	case components.EntryEditMsg:
		// Open with the list row for an instant paint; the server copy
		// replaces it when the dedicated fetch lands.
		entry := msg.Entry
		m.entryForm = components.NewEntryForm(&entry, entry.Type, m.theme)
		m.view = ViewEntryForm
		m.syncBreadcrumb()
		m.entryForm.SetCategories(m.store.Categories(entry.Type))
		return m, tea.Batch(m.fetchEntryForEdit(entry.Type, entry.ID), m.fetchCategories()), true

	case components.EntryRemoveMsg:
		return m, m.removeSelectedEntries(msg.Type), true

	case components.EntryFormSubmitMsg:
		if msg.EntryID != nil {
			return m, m.updateEntry(*msg.EntryID, msg.Input), true
		}
		return m, m.createEntry(msg.Input), true

	case components.CategoryCreateMsg:
		return m, m.createCategory(msg.Input), true

	case components.CategoryDeleteMsg:
		return m, m.deleteCategory(msg.CategoryID), true

	case components.UserSelectedMsg:
		m.userDetail = components.NewUserDetail(m.theme)
		m.view = ViewUserDetail
		m.syncBreadcrumb()
		return m, m.fetchUser(msg.UserID), true

	case components.UserCreateMsg:
		m.userForm = components.NewUserForm(nil, m.store.IsManager(), m.theme)
		m.view = ViewUserForm
		m.syncBreadcrumb()
		return m, nil, true

	case components.UserEditMsg:
		user := msg.User
		m.userForm = components.NewUserForm(&user, m.store.IsManager(), m.theme)
		m.view = ViewUserForm
		m.syncBreadcrumb()
		return m, nil, true

	case components.UserFormSubmitMsg:
		return m, m.saveUser(msg.UserID, msg.Input), true

	case components.UserStatusToggleMsg:
		return m, m.toggleUserStatus(msg.User), true

	case components.UserPostsPageMsg:
		return m, m.fetchUserPosts(msg.EditorID, msg.Page), true

	case components.PostToggleMsg:
		return m, m.togglePost(msg.Post), true

	case components.PaymentSelectedMsg:
		m.paymentDetail = components.NewPaymentDetail(m.theme)
		m.view = ViewPaymentDetail
		m.syncBreadcrumb()
		return m, m.fetchPayment(msg.PaymentID), true

	case components.PaymentPageMsg:
		m.store.SetPaymentPage(msg.Page)
		return m, m.fetchPayments(), true

	case components.PaymentApproveMsg:
		return m, m.approvePayment(msg.Payment), true

	case components.BackMsg:
		return m.handleBack()
	}

	return m, nil, false
}

// handleBack returns from a form or detail screen to its parent list.
func (m Model) handleBack() (Model, tea.Cmd, bool) {
	switch m.view {
	case ViewEntryForm:
		m.view = m.returnView
	case ViewUserForm:
		m.view = ViewUsers
		m.returnView = ViewUsers
	case ViewUserDetail:
		m.view = ViewUsers
		m.returnView = ViewUsers
	case ViewPaymentDetail:
		m.view = ViewPayments
		m.returnView = ViewPayments
	default:
		m.view = ViewDashboard
		m.returnView = ViewDashboard
	}
	m.syncBreadcrumb()
	return m, m.refreshCurrentView(), true
}

// updateActiveComponent delegates the message to the visible component.
func (m Model) updateActiveComponent(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.view {
	case ViewDashboard:
		m.latestPosts, cmd = m.latestPosts.Update(msg)
	case ViewExpenses:
		m.expenses, cmd = m.expenses.Update(msg)
	case ViewRevenues:
		m.revenues, cmd = m.revenues.Update(msg)
	case ViewUsers:
		m.users, cmd = m.users.Update(msg)
	case ViewUserDetail:
		m.userDetail, cmd = m.userDetail.Update(msg)
	case ViewUserForm:
		m.userForm, cmd = m.userForm.Update(msg)
	case ViewPayments:
		m.payments, cmd = m.payments.Update(msg)
	case ViewPaymentDetail:
		m.paymentDetail, cmd = m.paymentDetail.Update(msg)
	case ViewEntryForm:
		m.entryForm, cmd = m.entryForm.Update(msg)
	}
	return m, cmd
}
