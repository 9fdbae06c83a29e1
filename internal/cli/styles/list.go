package styles

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/keyedit/internal/domain/entity"
)

// FinalKeyItem wraps a catalog key for list display.
type FinalKeyItem struct {
	Key entity.FinalKey
}

// FilterValue implements list.Item.
func (i FinalKeyItem) FilterValue() string {
	return i.Key.Name
}

// FinalKeyDelegate renders final keys on one line with their category.
type FinalKeyDelegate struct {
	Theme *Theme
}

// Height returns the height of each item.
func (d FinalKeyDelegate) Height() int { return 1 }

// Spacing returns the spacing between items.
func (d FinalKeyDelegate) Spacing() int { return 0 }

// Update handles item-level events.
func (d FinalKeyDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

// Render renders a single list item.
func (d FinalKeyDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	fk, ok := item.(FinalKeyItem)
	if !ok {
		return
	}

	t := d.Theme
	cursor := cursorEmpty
	style := t.ListItem
	if index == m.Index() {
		cursor = cursorSelected
		style = t.ListItemSelected
	}

	line := lipgloss.JoinHorizontal(
		lipgloss.Left,
		t.Highlight.Render(cursor),
		style.Width(14).Render(fk.Key.Name),
		t.Subtle.Render(fk.Key.Category.String()),
	)
	_, _ = fmt.Fprint(w, line)
}

// NewFinalKeyList creates the final key picker.
func NewFinalKeyList(theme *Theme, keys []entity.FinalKey, width, height int) list.Model {
	items := make([]list.Item, len(keys))
	for i, k := range keys {
		items[i] = FinalKeyItem{Key: k}
	}

	l := list.New(items, FinalKeyDelegate{Theme: theme}, width, height)
	l.Title = "Final Key"
	l.Styles.Title = theme.Subtitle
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	l.SetFilteringEnabled(true)
	l.DisableQuitKeybindings()
	return l
}

// BindingItem is one action of a keyset.
type BindingItem struct {
	Action    string
	Sequences string
	Shared    bool
}

// FilterValue implements list.Item.
func (i BindingItem) FilterValue() string {
	return i.Action + " " + i.Sequences
}

// BindingDelegate renders keyset actions.
type BindingDelegate struct {
	Theme *Theme
}

// Height returns the height of each item.
func (d BindingDelegate) Height() int { return 1 }

// Spacing returns the spacing between items.
func (d BindingDelegate) Spacing() int { return 0 }

// Update handles item-level events.
func (d BindingDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

// Render renders a single list item.
func (d BindingDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	bi, ok := item.(BindingItem)
	if !ok {
		return
	}

	t := d.Theme
	cursor := cursorEmpty
	style := t.ListItem
	if index == m.Index() {
		cursor = cursorSelected
		style = t.ListItemSelected
	}

	shared := "  "
	if bi.Shared {
		shared = t.WarningStyle.Render(IconLink) + " "
	}

	line := lipgloss.JoinHorizontal(
		lipgloss.Left,
		t.Highlight.Render(cursor),
		style.Width(28).Render(bi.Action),
		shared,
		t.Subtle.Render(bi.Sequences),
	)
	_, _ = fmt.Fprint(w, line)
}
