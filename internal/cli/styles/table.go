package styles

import (
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/keyedit/internal/domain/entity"
)

// NewStyledTable creates a themed table model.
func NewStyledTable(theme *Theme, columns []table.Column, rows []table.Row, width, height int) table.Model {
	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(height),
		table.WithWidth(width),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(theme.Border).
		BorderBottom(true).
		Foreground(theme.Accent).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(theme.Text).
		Background(theme.SurfaceVariant).
		Bold(true)
	s.Cell = s.Cell.
		Foreground(theme.Text)

	t.SetStyles(s)
	return t
}

// HistoryTableColumns returns columns for the change history table.
func HistoryTableColumns() []table.Column {
	return []table.Column{
		{Title: "When", Width: 10},
		{Title: "Keyset", Width: 14},
		{Title: "Action", Width: 24},
		{Title: "Old", Width: 30},
		{Title: "New", Width: 30},
		{Title: "Mode", Width: 9},
	}
}

// HistoryRow converts a binding change to a table row.
func HistoryRow(c *entity.BindingChange) table.Row {
	return table.Row{
		RelativeTime(c.CreatedAt),
		c.Keyset,
		c.Action,
		strings.Join(c.OldKeys, " "),
		strings.Join(c.NewKeys, " "),
		c.Mode.String(),
	}
}
