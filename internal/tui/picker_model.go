package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// PickerModel lets the user choose a subject before starting the timer.
// With free-text mode enabled, "/" switches to a text input so subjects
// outside the vocabulary can be entered.
type PickerModel struct {
	width  int
	height int

	subjects []string
	cursor   int

	freeText bool
	typing   bool
	input    textinput.Model

	choice    string
	cancelled bool
}

// NewPickerModel creates a subject picker over the given vocabulary
func NewPickerModel(subjects []string, freeText bool) PickerModel {
	input := textinput.New()
	input.Placeholder = "Type a subject..."
	input.CharLimit = 60
	input.Width = 40
	input.TextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPrimaryText))
	input.PlaceholderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSecondaryText))
	input.Cursor.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccentBright))

	return PickerModel{
		subjects: subjects,
		freeText: freeText,
		input:    input,
	}
}

// Init does nothing; the picker waits for input
func (m PickerModel) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m PickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if m.typing {
			return m.updateTyping(msg)
		}

		switch msg.String() {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.subjects)-1 {
				m.cursor++
			}
		case "enter":
			if len(m.subjects) > 0 {
				m.choice = m.subjects[m.cursor]
				return m, tea.Quit
			}
		case "/":
			if m.freeText {
				m.typing = true
				return m, m.input.Focus()
			}
		case "ctrl+c", "esc", "q":
			m.cancelled = true
			return m, tea.Quit
		}
	}

	return m, nil
}

func (m PickerModel) updateTyping(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		value := strings.TrimSpace(m.input.Value())
		if value != "" {
			m.choice = value
			return m, tea.Quit
		}
		return m, nil
	case "esc":
		m.typing = false
		m.input.Blur()
		m.input.SetValue("")
		return m, nil
	case "ctrl+c":
		m.cancelled = true
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// Choice returns the picked subject, empty when cancelled
func (m PickerModel) Choice() string {
	if m.cancelled {
		return ""
	}
	return m.choice
}

// View renders the picker
func (m PickerModel) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccentMain)).
		Bold(true)
	b.WriteString(titleStyle.Render("What are you studying?"))
	b.WriteString("\n\n")

	if m.typing {
		b.WriteString(m.input.View())
		b.WriteString("\n")
	} else {
		for i, subject := range m.subjects {
			if i == m.cursor {
				line := lipgloss.NewStyle().
					Foreground(lipgloss.Color(ColorAccentBright)).
					Bold(true).
					Render(fmt.Sprintf("› %s", subject))
				b.WriteString(line)
			} else {
				line := lipgloss.NewStyle().
					Foreground(lipgloss.Color(ColorSecondaryText)).
					Render(fmt.Sprintf("  %s", subject))
				b.WriteString(line)
			}
			b.WriteString("\n")
		}
	}

	content := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorBorder)).
		Padding(1, 3).
		Render(b.String())

	help := "↑/↓ select · enter start"
	if m.freeText {
		help += " · / type a subject"
	}
	if m.typing {
		help = "enter start · esc back to list"
	}
	help += " · q cancel"

	helpBar := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHelpText)).
		Italic(true).
		Align(lipgloss.Center).
		Width(m.width).
		Render(help)

	layout := lipgloss.NewStyle().
		Width(m.width).
		Height(m.height - 2).
		Align(lipgloss.Center, lipgloss.Center)

	return lipgloss.JoinVertical(lipgloss.Left, layout.Render(content), helpBar)
}
