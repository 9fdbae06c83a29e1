package styles

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// MessageModel is a modal error box with a single OK button.
type MessageModel struct {
	Title     string
	Message   string
	Dismissed bool
	theme     *Theme
}

// MessageKeyMap defines keybindings for the message box.
type MessageKeyMap struct {
	Dismiss key.Binding
}

// DefaultMessageKeyMap returns the default keybindings.
func DefaultMessageKeyMap() MessageKeyMap {
	return MessageKeyMap{
		Dismiss: key.NewBinding(key.WithKeys("enter", "esc"), key.WithHelp("enter", "ok")),
	}
}

// NewMessage creates a message box.
func NewMessage(theme *Theme, title, message string) MessageModel {
	return MessageModel{Title: title, Message: message, theme: theme}
}

// Update handles the dismiss keys.
func (m MessageModel) Update(msg tea.Msg) (MessageModel, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && key.Matches(keyMsg, DefaultMessageKeyMap().Dismiss) {
		m.Dismissed = true
	}
	return m, nil
}

// View renders the box.
func (m MessageModel) View() string {
	t := m.theme
	content := lipgloss.JoinVertical(
		lipgloss.Center,
		t.ErrorStyle.Bold(true).Render(IconWarning+" "+m.Title),
		"",
		t.Normal.Render(m.Message),
		"",
		t.ActiveTab.Render(" OK "),
	)
	return t.ErrorBox.Render(content)
}
