// Package profilelist provides the saved-profile list UI component.
package profilelist

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/lazyvibe/proxyrun/internal/model"
	"github.com/lazyvibe/proxyrun/internal/ui/styles"
	"github.com/lazyvibe/proxyrun/pkg/utils"
)

// NoSelection marks the absence of a profile selection.
const NoSelection = -1

// Model is the profile list component.
type Model struct {
	profiles []model.Profile
	cursor   int
	focused  bool
	width    int
	height   int
	offset   int
}

// New creates a new profile list component.
func New() Model {
	return Model{
		profiles: []model.Profile{},
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

// SetProfiles replaces the profile list, clamping the cursor.
func (m *Model) SetProfiles(profiles []model.Profile) {
	m.profiles = profiles
	if m.cursor >= len(m.profiles) && len(m.profiles) > 0 {
		m.cursor = len(m.profiles) - 1
	}
	if m.cursor < 0 || len(m.profiles) == 0 {
		m.cursor = 0
	}
	m.ensureVisible()
}

// SelectedIndex returns the cursor position, or NoSelection when the list is
// empty. Profile identity is positional, so this index is what store
// mutations operate on.
func (m Model) SelectedIndex() int {
	if m.cursor >= 0 && m.cursor < len(m.profiles) {
		return m.cursor
	}
	return NoSelection
}

// SelectedProfile returns the profile under the cursor, or nil.
func (m Model) SelectedProfile() *model.Profile {
	if m.cursor >= 0 && m.cursor < len(m.profiles) {
		p := m.profiles[m.cursor]
		return &p
	}
	return nil
}

// ClearSelection resets the cursor after a delete.
func (m *Model) ClearSelection() {
	m.cursor = 0
	m.offset = 0
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
		if m.cursor < len(m.profiles)-1 {
			m.cursor++
			m.ensureVisible()
		}
		return true
	case "home", "g":
		m.cursor = 0
		m.offset = 0
		return true
	case "end", "G":
		if len(m.profiles) > 0 {
			m.cursor = len(m.profiles) - 1
			m.ensureVisible()
		}
		return true
	}
	return false
}

// View renders the profile list.
func (m Model) View() string {
	innerWidth := m.width - 4
	innerHeight := m.height - 4

	icon := styles.PanelTitleIcon.Render(styles.IconProfile)
	title := "Profiles"
	if m.focused {
		title = styles.PanelTitleFocused.Render(title)
	} else {
		title = styles.PanelTitle.Render(title)
	}
	countStr := styles.ListItemDim.Render(fmt.Sprintf("(%d)", len(m.profiles)))
	header := icon + title + " " + countStr

	var rows []string
	if len(m.profiles) == 0 {
		emptyMsg := styles.Placeholder.Render("No saved profiles")
		hint := styles.ListItemDim.Render("Press 'a' to save the current endpoint")
		rows = append(rows, "", emptyMsg, hint)
	} else {
		visibleRows := innerHeight - 2
		if visibleRows < 1 {
			visibleRows = 1
		}

		endIdx := m.offset + visibleRows
		if endIdx > len(m.profiles) {
			endIdx = len(m.profiles)
		}

		for i := m.offset; i < endIdx; i++ {
			row := m.renderItem(m.profiles[i], i == m.cursor, innerWidth-2)
			rows = append(rows, row)
		}

		if len(m.profiles) > visibleRows {
			scrollInfo := fmt.Sprintf(" %d/%d ", m.cursor+1, len(m.profiles))
			rows = append(rows, styles.ListItemDim.Render(scrollInfo))
		}
	}

	help := styles.ListItemDim.Render("Enter: load - a: add - u: update - d: delete")
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

func (m Model) renderItem(p model.Profile, selected bool, maxWidth int) string {
	content := fmt.Sprintf("%s - %s://%s:%s", p.Name, p.Protocol.Scheme(), p.IP, p.Port)
	content = utils.TruncateWithEllipsis(content, maxWidth)

	if selected {
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
