package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/ogiraldo/inkflow/internal/tui/themes"
)

// DoubleConfirm guards destructive and irreversible actions behind two
// confirmations: the triggering key arms it, a second press confirms, and
// anything else disarms. Approving a payment and deactivating a user both
// go through it.
type DoubleConfirm struct {
	theme    themes.Theme
	question string
	armed    bool
}

// NewDoubleConfirm creates a guard that shows the given question once armed.
func NewDoubleConfirm(question string, theme themes.Theme) DoubleConfirm {
	return DoubleConfirm{theme: theme, question: question}
}

// Armed reports whether the first confirmation has happened.
func (c *DoubleConfirm) Armed() bool {
	return c.armed
}

// Press advances the guard. It returns true only on the second press.
func (c *DoubleConfirm) Press() bool {
	if c.armed {
		c.armed = false
		return true
	}
	c.armed = true
	return false
}

// Disarm resets the guard without confirming.
func (c *DoubleConfirm) Disarm() {
	c.armed = false
}

// View renders the confirmation prompt, or nothing when disarmed.
func (c *DoubleConfirm) View() string {
	if !c.armed {
		return ""
	}
	prompt := c.theme.StatusWarning.Render(c.question)
	hint := lipgloss.NewStyle().Foreground(c.theme.Muted).Render("press again to confirm, any other key to cancel")
	return lipgloss.JoinVertical(lipgloss.Left, prompt, hint)
}
