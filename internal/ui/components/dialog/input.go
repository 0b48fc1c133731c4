// Package dialog provides modal dialog components for ProxyRun.
package dialog

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// InputField represents a single input field in the dialog.
type InputField struct {
	Label       string
	Placeholder string
	Value       string
	// Choices turns the field into a fixed selector cycled with ←/→
	// instead of free text.
	Choices []string
}

// InputDialog is a modal dialog for text input.
type InputDialog struct {
	title       string
	inputs      []textinput.Model
	labels      []string
	choices     [][]string
	choiceIndex []int
	focusIndex  int
	width       int
	height      int
	submitted   bool
	cancelled   bool
	styles      InputStyles
}

// InputStyles defines the visual appearance of the dialog.
type InputStyles struct {
	Box          lipgloss.Style
	Title        lipgloss.Style
	Label        lipgloss.Style
	LabelFocused lipgloss.Style
	Input        lipgloss.Style
	InputFocused lipgloss.Style
	Choice       lipgloss.Style
	Help         lipgloss.Style
}

// DefaultInputStyles returns the dialog styles.
func DefaultInputStyles() InputStyles {
	purple := lipgloss.Color("#7C3AED")
	cyan := lipgloss.Color("#06B6D4")
	pink := lipgloss.Color("#EC4899")
	surface := lipgloss.Color("#1E1E2E")
	surfaceLight := lipgloss.Color("#313244")
	text := lipgloss.Color("#CDD6F4")
	textMuted := lipgloss.Color("#6C7086")

	return InputStyles{
		Box: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(purple).
			Background(surface).
			Padding(1, 2),

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(cyan).
			Background(surface).
			Padding(0, 1).
			MarginBottom(1),

		Label: lipgloss.NewStyle().
			Foreground(textMuted),

		LabelFocused: lipgloss.NewStyle().
			Foreground(pink).
			Bold(true),

		Input: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(surfaceLight).
			Padding(0, 1).
			MarginBottom(1),

		InputFocused: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(purple).
			Padding(0, 1).
			MarginBottom(1),

		Choice: lipgloss.NewStyle().
			Foreground(text).
			Bold(true),

		Help: lipgloss.NewStyle().
			Foreground(textMuted).
			MarginTop(1),
	}
}

// NewInputDialog creates a new input dialog.
func NewInputDialog(title string, fields []InputField) InputDialog {
	inputs := make([]textinput.Model, len(fields))
	labels := make([]string, len(fields))
	choices := make([][]string, len(fields))
	choiceIndex := make([]int, len(fields))

	for i, f := range fields {
		ti := textinput.New()
		ti.Placeholder = f.Placeholder
		ti.SetValue(f.Value)
		ti.CharLimit = 256
		ti.Width = 40

		if i == 0 {
			ti.Focus()
		}

		inputs[i] = ti
		labels[i] = f.Label
		if len(f.Choices) > 0 {
			choices[i] = append([]string{}, f.Choices...)
			for j, c := range f.Choices {
				if c == f.Value {
					choiceIndex[i] = j
					break
				}
			}
		}
	}

	return InputDialog{
		title:       title,
		inputs:      inputs,
		labels:      labels,
		choices:     choices,
		choiceIndex: choiceIndex,
		styles:      DefaultInputStyles(),
	}
}

// SetSize updates the dialog dimensions.
func (d *InputDialog) SetSize(width, height int) {
	d.width = width
	d.height = height
}

// Update handles input dialog messages.
func (d InputDialog) Update(msg tea.Msg) (InputDialog, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "tab", "down":
			d.focusIndex++
			if d.focusIndex >= len(d.inputs) {
				d.focusIndex = 0
			}
			return d, d.updateFocus()

		case "shift+tab", "up":
			d.focusIndex--
			if d.focusIndex < 0 {
				d.focusIndex = len(d.inputs) - 1
			}
			return d, d.updateFocus()

		case "left":
			if d.isChoiceField() {
				n := len(d.choices[d.focusIndex])
				d.choiceIndex[d.focusIndex] = (d.choiceIndex[d.focusIndex] + n - 1) % n
				return d, nil
			}

		case "right":
			if d.isChoiceField() {
				n := len(d.choices[d.focusIndex])
				d.choiceIndex[d.focusIndex] = (d.choiceIndex[d.focusIndex] + 1) % n
				return d, nil
			}

		case "enter":
			d.submitted = true
			return d, nil

		case "esc":
			d.cancelled = true
			return d, nil
		}
	}

	if d.isChoiceField() {
		return d, nil
	}

	var cmd tea.Cmd
	d.inputs[d.focusIndex], cmd = d.inputs[d.focusIndex].Update(msg)
	return d, cmd
}

// updateFocus sets focus to the correct input.
func (d *InputDialog) updateFocus() tea.Cmd {
	cmds := make([]tea.Cmd, len(d.inputs))
	for i := range d.inputs {
		if i == d.focusIndex && len(d.choices[i]) == 0 {
			cmds[i] = d.inputs[i].Focus()
		} else {
			d.inputs[i].Blur()
		}
	}
	return tea.Batch(cmds...)
}

// View renders the dialog.
func (d InputDialog) View() string {
	var b strings.Builder

	b.WriteString(d.styles.Title.Render("✨ " + d.title))
	b.WriteString("\n\n")

	for i, input := range d.inputs {
		labelStyle := d.styles.Label
		inputStyle := d.styles.Input
		if i == d.focusIndex {
			labelStyle = d.styles.LabelFocused
			inputStyle = d.styles.InputFocused
		}

		b.WriteString(labelStyle.Render(d.labels[i]))
		b.WriteString("\n")

		if len(d.choices[i]) > 0 {
			choice := d.styles.Choice.Render("◀ " + d.choices[i][d.choiceIndex[i]] + " ▶")
			b.WriteString(inputStyle.Render(choice))
		} else {
			b.WriteString(inputStyle.Render(input.View()))
		}
		b.WriteString("\n")
	}

	helpText := "Tab: Next field • ←/→: Cycle choice • Enter: Confirm • Esc: Cancel"
	b.WriteString(d.styles.Help.Render(helpText))

	content := d.styles.Box.Render(b.String())

	// Center in screen
	if d.width > 0 && d.height > 0 {
		boxWidth := lipgloss.Width(content)
		boxHeight := lipgloss.Height(content)
		padX := (d.width - boxWidth) / 2
		padY := (d.height - boxHeight) / 2

		if padX < 0 {
			padX = 0
		}
		if padY < 0 {
			padY = 0
		}

		content = lipgloss.NewStyle().
			MarginLeft(padX).
			MarginTop(padY).
			Render(content)
	}

	return content
}

// IsSubmitted returns true if the user submitted the dialog.
func (d InputDialog) IsSubmitted() bool {
	return d.submitted
}

// IsCancelled returns true if the user cancelled the dialog.
func (d InputDialog) IsCancelled() bool {
	return d.cancelled
}

// Value returns the value of the field at the given index. For choice fields
// this is the currently cycled choice.
func (d InputDialog) Value(index int) string {
	if index < 0 || index >= len(d.inputs) {
		return ""
	}
	if len(d.choices[index]) > 0 {
		return d.choices[index][d.choiceIndex[index]]
	}
	return d.inputs[index].Value()
}

// Values returns all field values.
func (d InputDialog) Values() []string {
	values := make([]string, len(d.inputs))
	for i := range d.inputs {
		values[i] = d.Value(i)
	}
	return values
}

func (d InputDialog) isChoiceField() bool {
	return d.focusIndex >= 0 && d.focusIndex < len(d.choices) && len(d.choices[d.focusIndex]) > 0
}
