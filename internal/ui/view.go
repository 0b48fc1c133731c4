package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/lazyvibe/proxyrun/internal/ui/styles"
	"github.com/lazyvibe/proxyrun/pkg/utils"
)

// View renders the entire application.
func (a App) View() string {
	if a.quitting {
		bye := lipgloss.NewStyle().
			Bold(true).
			Foreground(styles.Primary).
			Render("Goodbye from ProxyRun!")
		return lipgloss.NewStyle().
			Width(a.width).
			Height(a.height).
			Align(lipgloss.Center, lipgloss.Center).
			Render(bye)
	}

	if !a.ready {
		loading := lipgloss.NewStyle().
			Bold(true).
			Foreground(styles.Accent).
			Render("Loading ProxyRun...")
		return lipgloss.NewStyle().
			Width(a.width).
			Height(a.height).
			Align(lipgloss.Center, lipgloss.Center).
			Render(loading)
	}

	if a.windowTooSmall() {
		msg := fmt.Sprintf("Window too small, need at least %dx%d (current %dx%d)",
			minAppWidth, minAppHeight, a.width, a.height)
		notice := lipgloss.NewStyle().
			Bold(true).
			Foreground(styles.Accent).
			Render(msg)
		return lipgloss.NewStyle().
			Width(a.width).
			Height(a.height).
			Align(lipgloss.Center, lipgloss.Center).
			Render(notice)
	}

	if a.dialogMode == DialogEndpoint {
		return a.endpointDialog.View()
	}

	listHeight := a.height - 1
	leftWidth := a.width * 55 / 100
	if leftWidth < 30 {
		leftWidth = 30
	}
	rightWidth := a.width - leftWidth

	leftPanel := a.processList.View()

	rightPanel := lipgloss.JoinVertical(
		lipgloss.Left,
		a.profileList.View(),
		a.renderHistory(rightWidth, listHeight-listHeight/2),
	)

	mainContent := lipgloss.JoinHorizontal(
		lipgloss.Top,
		leftPanel,
		rightPanel,
	)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		mainContent,
		a.statusBar.View(),
	)
}

// renderHistory renders this session's launches, most recent first.
func (a App) renderHistory(width, height int) string {
	innerWidth := width - 4

	icon := styles.PanelTitleIcon.Render(styles.IconLaunch)
	header := icon + styles.PanelTitle.Render("Launches") +
		" " + styles.ListItemDim.Render(fmt.Sprintf("(%d)", len(a.history)))

	var rows []string
	if len(a.history) == 0 {
		rows = append(rows, "", styles.Placeholder.Render("Nothing launched yet"))
	} else {
		visibleRows := height - 6
		if visibleRows < 1 {
			visibleRows = 1
		}
		for i, res := range a.history {
			if i >= visibleRows {
				break
			}
			line := fmt.Sprintf("%s %s pid=%d %s",
				res.Time.Format("15:04:05"), res.ProcessName, res.PID, res.ProxyURL)
			rows = append(rows, styles.ListItem.Render(utils.TruncateWithEllipsis(line, innerWidth-2)))
		}
	}

	content := lipgloss.JoinVertical(lipgloss.Left, rows...)

	return styles.BorderStyle.
		Width(width - 2).
		Height(height - 2).
		Render(lipgloss.JoinVertical(
			lipgloss.Left,
			header,
			strings.Repeat("─", max(innerWidth, 0)),
			content,
		))
}
