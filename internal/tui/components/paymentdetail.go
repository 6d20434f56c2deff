package components

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ogiraldo/inkflow/internal/format"
	"github.com/ogiraldo/inkflow/internal/model"
	"github.com/ogiraldo/inkflow/internal/tui/themes"
)

// PaymentDetailModel shows one payment: payee, accounting period, earnings
// breakdown, bonuses, and the posts it bills. Approval is double-confirmed
// and offered only while the server says the payment can be approved.
type PaymentDetailModel struct {
	theme themes.Theme

	payment   *model.Payment
	posts     []model.Post
	confirm   DoubleConfirm
	loading   bool
	notFound  bool
	approving bool
	width     int
	height    int
}

// NewPaymentDetail creates the detail view in its loading state.
func NewPaymentDetail(theme themes.Theme) PaymentDetailModel {
	return PaymentDetailModel{
		theme:   theme,
		confirm: NewDoubleConfirm("approve this payment? this cannot be undone", theme),
		loading: true,
		width:   80,
		height:  24,
	}
}

// SetData replaces the view content after a store refresh.
func (m *PaymentDetailModel) SetData(payment *model.Payment, posts []model.Post, loading, notFound, approving bool) {
	m.payment = payment
	m.posts = posts
	m.loading = loading
	m.notFound = notFound
	m.approving = approving
	if payment == nil || !payment.Approvable() {
		m.confirm.Disarm()
	}
}

// Update handles messages.
func (m PaymentDetailModel) Update(msg tea.Msg) (PaymentDetailModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if size, isSize := msg.(tea.WindowSizeMsg); isSize {
			m.width = size.Width
			m.height = size.Height
		}
		return m, nil
	}

	switch keyMsg.String() {
	case "esc":
		m.confirm.Disarm()
		return m, func() tea.Msg { return BackMsg{} }

	case "a":
		if m.payment != nil && m.payment.Approvable() && !m.approving {
			if m.confirm.Press() {
				payment := *m.payment
				return m, func() tea.Msg { return PaymentApproveMsg{Payment: payment} }
			}
		}

	default:
		m.confirm.Disarm()
	}

	return m, nil
}

// View renders the payment detail.
func (m PaymentDetailModel) View() string {
	if m.loading {
		return m.theme.StatusPending.Render("loading payment…")
	}
	if m.notFound {
		return m.theme.Box.Render(lipgloss.JoinVertical(
			lipgloss.Left,
			m.theme.Title.Render("Payment not found"),
			m.theme.Subtitle.Render("the payment does not exist or was removed"),
			lipgloss.NewStyle().Foreground(m.theme.Muted).Render("[Esc] Back"),
		))
	}
	if m.payment == nil {
		return ""
	}

	sections := []string{
		m.renderHeader(),
		m.renderEarnings(),
	}
	if len(m.payment.Bonuses) > 0 {
		sections = append(sections, m.renderBonuses())
	}
	sections = append(sections, m.renderPosts())
	if confirm := m.confirm.View(); confirm != "" {
		sections = append(sections, confirm)
	}
	sections = append(sections, m.renderFooter())

	return m.theme.Box.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func (m PaymentDetailModel) renderHeader() string {
	p := m.payment

	status := m.theme.StatusWarning.Render("pending approval")
	if p.ApprovedAt != nil {
		status = m.theme.StatusSuccess.Render("approved at " + p.ApprovedAt.Format("02/01/2006 15:04"))
	} else if m.approving {
		status = m.theme.StatusPending.Render("approving…")
	}

	period := format.Date(p.AccountingPeriod.StartsOn) + " - " + format.Date(p.AccountingPeriod.EndsOn)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.theme.Title.Render("Payment to "+p.Payee.Name)+"  "+status,
		m.theme.Label.Render("Period: ")+m.theme.Normal.Render(period),
		m.theme.Label.Render("Grand total: ")+m.theme.Bold.Render(format.Money(p.GrandTotalAmount)),
	)
}

func (m PaymentDetailModel) renderEarnings() string {
	e := m.payment.Earnings
	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.theme.Subtitle.Render("Earnings"),
		fmt.Sprintf("%d words at %s per word: %s", e.Words, format.Money(e.PricePerWord), format.Money(e.TotalAmount)),
	)
}

func (m PaymentDetailModel) renderBonuses() string {
	lines := []string{m.theme.Subtitle.Render("Bonuses")}
	for _, b := range m.payment.Bonuses {
		lines = append(lines, fmt.Sprintf("%-40s %s", truncate(b.Title, 40), format.Money(b.Amount)))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m PaymentDetailModel) renderPosts() string {
	lines := []string{m.theme.Subtitle.Render(fmt.Sprintf("Posts billed (%d)", len(m.posts)))}
	if len(m.posts) == 0 {
		lines = append(lines, m.theme.StatusPending.Render("no posts in this payment"))
	}
	for _, p := range m.posts {
		lines = append(lines, truncate(p.Title, 60))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m PaymentDetailModel) renderFooter() string {
	hints := []string{"[Esc] Back"}
	if m.payment.Approvable() && !m.approving {
		hints = append([]string{"[a] Approve"}, hints...)
	}
	return lipgloss.NewStyle().Foreground(m.theme.Muted).Render(strings.Join(hints, "  "))
}
