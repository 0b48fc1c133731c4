// Package processlist provides the running-process list UI component.
package processlist

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/lazyvibe/proxyrun/internal/proc"
	"github.com/lazyvibe/proxyrun/internal/ui/styles"
	"github.com/lazyvibe/proxyrun/pkg/utils"
)

// NoSelection marks the absence of a selected process.
const NoSelection = -1

// Model is the process list component.
type Model struct {
	records  []proc.Record
	cursor   int
	selected int
	focused  bool
	width    int
	height   int
	offset   int
}

// New creates a new process list component.
func New() Model {
	return Model{
		records:  []proc.Record{},
		selected: NoSelection,
	}
}

// SetSize updates the component dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// SetFocused updates the focus state.
func (m *Model) SetFocused(focused bool) {
	m.focused = focused
}

// SetRecords replaces the list with a fresh snapshot. The selection survives
// only if its index is still in range; indexes carry no identity across
// snapshots, so a surviving selection may point at a different process.
func (m *Model) SetRecords(records []proc.Record) {
	m.records = records
	if m.selected >= len(m.records) {
		m.selected = NoSelection
	}
	if m.cursor >= len(m.records) && len(m.records) > 0 {
		m.cursor = len(m.records) - 1
	}
	if m.cursor < 0 || len(m.records) == 0 {
		m.cursor = 0
	}
	m.ensureVisible()
}

// Select marks the process under the cursor as the launch target.
func (m *Model) Select() {
	if m.cursor >= 0 && m.cursor < len(m.records) {
		m.selected = m.cursor
	}
}

// SelectedRecord returns the selected process, or nil when none is selected.
func (m Model) SelectedRecord() *proc.Record {
	if m.selected >= 0 && m.selected < len(m.records) {
		r := m.records[m.selected]
		return &r
	}
	return nil
}

// SelectedIndex returns the selected index, or NoSelection.
func (m Model) SelectedIndex() int {
	if m.selected >= 0 && m.selected < len(m.records) {
		return m.selected
	}
	return NoSelection
}

// Count returns the number of listed processes.
func (m Model) Count() int {
	return len(m.records)
}

// HandleKey processes a key event.
func (m *Model) HandleKey(key string) bool {
	switch key {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
			m.ensureVisible()
		}
		return true
	case "down", "j":
		if m.cursor < len(m.records)-1 {
			m.cursor++
			m.ensureVisible()
		}
		return true
	case "home", "g":
		m.cursor = 0
		m.offset = 0
		return true
	case "end", "G":
		if len(m.records) > 0 {
			m.cursor = len(m.records) - 1
			m.ensureVisible()
		}
		return true
	}
	return false
}

// View renders the process list.
func (m Model) View() string {
	innerWidth := m.width - 4
	innerHeight := m.height - 4

	icon := styles.PanelTitleIcon.Render(styles.IconProcess)
	title := "Processes"
	if m.focused {
		title = styles.PanelTitleFocused.Render(title)
	} else {
		title = styles.PanelTitle.Render(title)
	}
	countStr := styles.ListItemDim.Render(fmt.Sprintf("(%d)", len(m.records)))
	header := icon + title + " " + countStr

	var rows []string
	if len(m.records) == 0 {
		emptyMsg := styles.Placeholder.Render("No processes available")
		hint := styles.ListItemDim.Render("Press 'r' to refresh")
		rows = append(rows, "", emptyMsg, hint)
	} else {
		visibleRows := innerHeight - 2
		if visibleRows < 1 {
			visibleRows = 1
		}

		endIdx := m.offset + visibleRows
		if endIdx > len(m.records) {
			endIdx = len(m.records)
		}

		for i := m.offset; i < endIdx; i++ {
			row := m.renderItem(i, innerWidth-2)
			rows = append(rows, row)
		}

		if len(m.records) > visibleRows {
			scrollInfo := fmt.Sprintf(" %d/%d ", m.cursor+1, len(m.records))
			rows = append(rows, styles.ListItemDim.Render(scrollInfo))
		}
	}

	help := styles.ListItemDim.Render("Enter: select - L: launch - r: refresh")
	contentRows := append(rows, "", help)

	content := lipgloss.JoinVertical(
		lipgloss.Left,
		contentRows...,
	)

	var borderStyle lipgloss.Style
	if m.focused {
		borderStyle = styles.FocusedBorderStyle
	} else {
		borderStyle = styles.BorderStyle
	}

	return borderStyle.
		Width(m.width - 2).
		Height(m.height - 2).
		Render(lipgloss.JoinVertical(
			lipgloss.Left,
			header,
			strings.Repeat("─", max(innerWidth, 0)),
			content,
		))
}

func (m Model) renderItem(i, maxWidth int) string {
	mark := styles.IconDotEmpty
	if i == m.selected {
		mark = styles.IconDot
	}
	content := mark + " " + m.records[i].DisplayText()
	content = utils.TruncateWithEllipsis(content, maxWidth)

	if i == m.cursor {
		return styles.ListItemSelected.Render(content)
	}
	return styles.ListItem.Render(content)
}

func (m *Model) ensureVisible() {
	visibleRows := m.height - 6
	if visibleRows < 1 {
		visibleRows = 1
	}

	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+visibleRows {
		m.offset = m.cursor - visibleRows + 1
	}
}
