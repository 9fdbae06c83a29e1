package model

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/bnema/keyedit/internal/cli/styles"
	"github.com/bnema/keyedit/internal/domain/entity"
)

const historyTableHeight = 15

// HistoryModel shows recorded binding changes in a table.
type HistoryModel struct {
	table table.Model
	theme *styles.Theme
	quit  key.Binding
}

// NewHistoryModel creates the history table.
func NewHistoryModel(theme *styles.Theme, changes []*entity.BindingChange) HistoryModel {
	rows := make([]table.Row, len(changes))
	for i, c := range changes {
		rows[i] = styles.HistoryRow(c)
	}
	return HistoryModel{
		table: styles.NewStyledTable(theme, styles.HistoryTableColumns(), rows, 130, historyTableHeight),
		theme: theme,
		quit:  key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// Init implements tea.Model.
func (m HistoryModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m HistoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.table.SetWidth(msg.Width)
		m.table.SetHeight(min(msg.Height-4, historyTableHeight))
		return m, nil
	case tea.KeyMsg:
		if key.Matches(msg, m.quit) {
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m HistoryModel) View() string {
	return m.theme.Box.Render(m.table.View()) + "\n" + m.theme.Subtle.Render("↑/↓ scroll • q quit")
}
