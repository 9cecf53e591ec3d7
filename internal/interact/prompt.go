package interact

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	promptLabelStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	promptHintStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// namePromptModel asks for a single name, pre-filled with a default.
type namePromptModel struct {
	label     string
	input     textinput.Model
	value     string
	cancelled bool
}

func newNamePromptModel(label, defaultName string) namePromptModel {
	ti := textinput.New()
	ti.Placeholder = defaultName
	ti.CharLimit = 128
	ti.Width = 40
	ti.SetValue(defaultName)
	ti.CursorEnd()
	ti.Focus()

	return namePromptModel{label: label, input: ti}
}

func (m namePromptModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m namePromptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "ctrl+c", "esc":
			m.cancelled = true
			return m, tea.Quit
		case "enter":
			m.value = m.input.Value()
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m namePromptModel) View() string {
	if m.cancelled || m.value != "" {
		return ""
	}
	var sb strings.Builder
	sb.WriteString(promptLabelStyle.Render(m.label) + " " + m.input.View() + "\n")
	sb.WriteString(promptHintStyle.Render("enter: confirm • esc: cancel") + "\n")
	return sb.String()
}
