package model

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/bnema/keyedit/internal/application/port"
	"github.com/bnema/keyedit/internal/cli/styles"
)

// KeysetModel lets the user pick an action of a keyset to edit.
type KeysetModel struct {
	list  list.Model
	help  help.Model
	keys  styles.KeysetKeyMap
	theme *styles.Theme

	selected string
}

// NewKeysetModel creates the action picker for a keyset.
func NewKeysetModel(theme *styles.Theme, view port.KeysetView) KeysetModel {
	items := make([]list.Item, len(view.Bindings))
	for i, e := range view.Bindings {
		items[i] = styles.BindingItem{
			Action:    e.Action,
			Sequences: strings.Join(e.Sequences, " "),
			Shared:    e.Shared,
		}
	}

	l := list.New(items, styles.BindingDelegate{Theme: theme}, 80, 20)
	l.Title = "Keyset " + view.Name
	l.Styles.Title = theme.Title
	l.SetShowHelp(false)
	l.DisableQuitKeybindings()

	return KeysetModel{
		list:  l,
		help:  styles.NewStyledHelp(theme),
		keys:  styles.DefaultKeysetKeyMap(),
		theme: theme,
	}
}

// Selected returns the chosen action, or "" when the picker was quit.
func (m KeysetModel) Selected() string {
	return m.selected
}

// Init implements tea.Model.
func (m KeysetModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m KeysetModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetSize(msg.Width, msg.Height-2)
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Edit):
			if item, ok := m.list.SelectedItem().(styles.BindingItem); ok {
				m.selected = item.Action
			}
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m KeysetModel) View() string {
	return m.list.View() + "\n" + m.help.View(m.keys)
}
