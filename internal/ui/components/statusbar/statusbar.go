// Package statusbar provides the status bar UI component.
package statusbar

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/lazyvibe/proxyrun/internal/ui/styles"
)

// Model is the status bar component.
type Model struct {
	width    int
	message  string
	isError  bool
	proxyURL string
}

// New creates a new status bar component.
func New() Model {
	return Model{}
}

// SetWidth updates the status bar width.
func (m *Model) SetWidth(width int) {
	m.width = width
}

// SetMessage replaces the status message. Only the latest outcome is shown.
func (m *Model) SetMessage(msg string, isError bool) {
	m.message = msg
	m.isError = isError
}

// SetProxyURL sets the current endpoint preview, or empty to hide it.
func (m *Model) SetProxyURL(url string) {
	m.proxyURL = url
}

// View renders the status bar.
func (m Model) View() string {
	brand := lipgloss.NewStyle().
		Foreground(styles.Primary).
		Bold(true).
		Render(" ProxyRun ")

	proxyBadge := ""
	if m.proxyURL != "" {
		proxyBadge = lipgloss.NewStyle().
			Foreground(styles.Base).
			Background(styles.Accent).
			Bold(true).
			Padding(0, 1).
			Render(m.proxyURL)
	}

	helpItems := []string{
		m.renderKey("Tab", "pane"),
		m.renderKey("Enter", "select/load"),
		m.renderKey("L", "launch"),
		m.renderKey("r", "refresh"),
		m.renderKey("e", "endpoint"),
		m.renderKey("a", "add"),
		m.renderKey("u", "update"),
		m.renderKey("d", "delete"),
		m.renderKey("q", "quit"),
	}
	help := strings.Join(helpItems, " ")

	var msgArea string
	if m.message != "" {
		msgStyle := lipgloss.NewStyle().Foreground(styles.TextMuted)
		if m.isError {
			msgStyle = lipgloss.NewStyle().Foreground(styles.Danger).Bold(true)
		}
		msgArea = msgStyle.Render(" " + m.message + " ")
	}

	leftContent := brand + proxyBadge
	rightContent := help
	middleContent := msgArea

	leftWidth := lipgloss.Width(leftContent)
	rightWidth := lipgloss.Width(rightContent)
	middleWidth := lipgloss.Width(middleContent)

	totalUsed := leftWidth + rightWidth + middleWidth
	padding := m.width - totalUsed
	if padding < 0 {
		padding = 0
	}

	leftPad := padding / 2
	rightPad := padding - leftPad

	content := leftContent +
		strings.Repeat(" ", leftPad) +
		middleContent +
		strings.Repeat(" ", rightPad) +
		rightContent

	return lipgloss.NewStyle().
		Background(styles.Mantle).
		Foreground(styles.TextMuted).
		Width(m.width).
		Render(content)
}

// renderKey renders a key binding hint.
func (m Model) renderKey(key, desc string) string {
	keyStyle := lipgloss.NewStyle().
		Foreground(styles.Accent).
		Bold(true)
	descStyle := lipgloss.NewStyle().
		Foreground(styles.Muted)
	return keyStyle.Render(key) + descStyle.Render(":"+desc)
}
