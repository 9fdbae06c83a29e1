package model

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/keyedit/internal/application/usecase"
	"github.com/bnema/keyedit/internal/cli/styles"
	"github.com/bnema/keyedit/internal/domain/entity"
	"github.com/bnema/keyedit/internal/domain/validation"
	"github.com/bnema/keyedit/internal/logging"
)

const (
	basicHelp = "Select the desired modifier keys above, and the final key\n" +
		"from the list on the right.\n\n" +
		"Use upper case Symbols when using the Shift modifier.\n" +
		"(Letters will be converted automatically.)"

	advancedHelp = "Key bindings are specified using Tk keysyms as in these\n" +
		"samples: <Control-f>, <Shift-F2>, <F12>, <Control-space>,\n" +
		"<Meta-less>, <Control-Alt-Shift-X>.\n" +
		"Upper case is used when the Shift modifier is present!\n\n" +
		"'Emacs style' multi-keystroke bindings are specified as\n" +
		"follows: <Control-x><Control-y>, where the first key\n" +
		"is the 'do-nothing' keybinding.\n\n" +
		"Multiple separate bindings for one action should be\n" +
		"separated by a space, eg., <Alt-v> <Meta-v>."

	finalKeyListHeight = 12
)

type dialogFocus int

const (
	focusModifiers dialogFocus = iota
	focusFinalKeys
)

// KeyBindingDialogModel renders a KeyBindingEditor and feeds it user input.
type KeyBindingDialogModel struct {
	ctx    context.Context
	editor *usecase.KeyBindingEditor
	theme  *styles.Theme

	keysList list.Model
	input    textinput.Model
	help     help.Model
	keys     styles.DialogKeyMap
	message  *styles.MessageModel

	focus       dialogFocus
	modifierIdx int
	width       int
	height      int
}

// NewKeyBindingDialogModel creates the dialog for an open editor.
func NewKeyBindingDialogModel(ctx context.Context, theme *styles.Theme, editor *usecase.KeyBindingEditor) KeyBindingDialogModel {
	return KeyBindingDialogModel{
		ctx:      ctx,
		editor:   editor,
		theme:    theme,
		keysList: styles.NewFinalKeyList(theme, editor.Catalog().Keys(), 30, finalKeyListHeight),
		input:    styles.NewSequenceInput(theme),
		help:     styles.NewStyledHelp(theme),
		keys:     styles.DefaultDialogKeyMap(),
		width:    80,
		height:   24,
	}
}

// Editor returns the underlying editor.
func (m KeyBindingDialogModel) Editor() *usecase.KeyBindingEditor {
	return m.editor
}

// Init implements tea.Model.
func (m KeyBindingDialogModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m KeyBindingDialogModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.message != nil {
		msgBox, cmd := m.message.Update(msg)
		if msgBox.Dismissed {
			m.message = nil
		} else {
			m.message = &msgBox
		}
		return m, cmd
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.input.Width = max(msg.Width-12, 20)
		return m, nil

	case tea.KeyMsg:
		if m.editor.Mode() == entity.EntryModeBasic && m.keysList.FilterState() == list.Filtering {
			return m.updateFinalKeys(msg)
		}

		switch {
		case key.Matches(msg, m.keys.Cancel):
			m.editor.Cancel()
			return m, tea.Quit
		case key.Matches(msg, m.keys.OK):
			return m.submit()
		case key.Matches(msg, m.keys.Level):
			m.editor.ToggleLevel()
			return m.resetControls()
		case key.Matches(msg, m.keys.Clear):
			m.editor.Clear()
			return m.resetControls()
		}

		if m.editor.Mode() == entity.EntryModeAdvanced {
			return m.updateAdvanced(msg)
		}
		return m.updateBasic(msg)
	}

	return m, nil
}

func (m KeyBindingDialogModel) submit() (tea.Model, tea.Cmd) {
	if err := m.editor.OK(m.ctx); err != nil {
		msgBox := styles.NewMessage(m.theme, validation.ErrorTitle, validation.Message(err))
		m.message = &msgBox
		return m, nil
	}
	return m, tea.Quit
}

func (m KeyBindingDialogModel) resetControls() (tea.Model, tea.Cmd) {
	m.input.SetValue("")
	m.keysList.ResetFilter()
	m.keysList.Select(0)
	m.focus = focusModifiers
	m.modifierIdx = 0

	if m.editor.Mode() == entity.EntryModeAdvanced {
		return m, m.input.Focus()
	}
	m.input.Blur()
	return m, nil
}

func (m KeyBindingDialogModel) updateAdvanced(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if err := m.editor.SetKeyString(m.input.Value()); err != nil {
		logging.FromContext(m.ctx).Debug().Err(err).Msg("advanced input ignored")
	}
	return m, cmd
}

func (m KeyBindingDialogModel) updateBasic(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.NextField), key.Matches(msg, m.keys.PrevField):
		if m.focus == focusModifiers {
			m.focus = focusFinalKeys
		} else {
			m.focus = focusModifiers
		}
		return m, nil
	}

	if m.focus == focusFinalKeys {
		return m.updateFinalKeys(msg)
	}

	mods := m.editor.Modifiers()
	switch msg.String() {
	case "left", "up", "h":
		m.modifierIdx = (m.modifierIdx - 1 + len(mods)) % len(mods)
	case "right", "down", "l":
		m.modifierIdx = (m.modifierIdx + 1) % len(mods)
	default:
		if key.Matches(msg, m.keys.Toggle) {
			m.toggleModifier(mods[m.modifierIdx])
		}
	}
	return m, nil
}

func (m KeyBindingDialogModel) updateFinalKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keysList.FilterState() != list.Filtering && key.Matches(msg, m.keys.Toggle) {
		if item, ok := m.keysList.SelectedItem().(styles.FinalKeyItem); ok {
			if err := m.editor.SelectFinalKey(item.Key.Name); err != nil {
				logging.FromContext(m.ctx).Debug().Err(err).Str("key", item.Key.Name).Msg("final key ignored")
			}
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.keysList, cmd = m.keysList.Update(msg)
	return m, cmd
}

func (m *KeyBindingDialogModel) toggleModifier(name string) {
	if err := m.editor.ToggleModifier(name); err != nil {
		logging.FromContext(m.ctx).Debug().Err(err).Str("modifier", name).Msg("modifier ignored")
	}
}

// View implements tea.Model.
func (m KeyBindingDialogModel) View() string {
	if m.message != nil {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, m.message.View())
	}

	t := m.theme
	var sections []string

	sections = append(sections, t.BoxHeader.Render(m.editor.Title()), m.renderModeTabs(), "")

	if m.editor.Mode() == entity.EntryModeAdvanced {
		sections = append(sections,
			t.Normal.Render(fmt.Sprintf("Enter new binding(s) for '%s' :", m.editor.Action())),
			t.Subtle.Render("(These bindings will not be checked for validity!)"),
			t.InputBox(m.input.View(), true),
			"",
			t.Subtle.Render(advancedHelp),
		)
	} else {
		sections = append(sections,
			t.Normal.Render(fmt.Sprintf("New keys for '%s' :", m.editor.Action())),
			t.InputBox(m.renderKeyString(), false),
			"",
			lipgloss.JoinHorizontal(lipgloss.Top, m.renderBasicLeft(), "  ", m.renderFinalKeys()),
		)
	}

	sections = append(sections, "", m.help.View(m.keys))
	return t.Box.Render(strings.Join(sections, "\n"))
}

func (m KeyBindingDialogModel) renderModeTabs() string {
	basic, advanced := m.theme.ActiveTab, m.theme.InactiveTab
	if m.editor.Mode() == entity.EntryModeAdvanced {
		basic, advanced = advanced, basic
	}
	return lipgloss.JoinHorizontal(lipgloss.Left, basic.Render("Basic"), " ", advanced.Render("Advanced"))
}

func (m KeyBindingDialogModel) renderKeyString() string {
	if ks := m.editor.KeyString(); ks != "" {
		return m.theme.Highlight.Render(ks)
	}
	return m.theme.Subtle.Render("(none)")
}

func (m KeyBindingDialogModel) renderBasicLeft() string {
	t := m.theme
	mods := m.editor.Modifiers()
	parts := make([]string, 0, len(mods))
	for i, mod := range mods {
		box := styles.IconCheckboxEmpty
		style := t.Normal
		if m.editor.IsModifierSelected(mod) {
			box = styles.IconCheckboxChecked
			style = t.Highlight
		}
		label := style.Render(box + " " + entity.ModifierLabel(mod))
		if m.focus == focusModifiers && i == m.modifierIdx {
			label = t.ListItemSelected.Render(box + " " + entity.ModifierLabel(mod))
		}
		parts = append(parts, label)
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		strings.Join(parts, "  "),
		"",
		t.Subtle.Render(basicHelp),
	)
}

func (m KeyBindingDialogModel) renderFinalKeys() string {
	style := m.theme.Input
	if m.focus == focusFinalKeys {
		style = m.theme.InputFocused
	}
	return style.Render(m.keysList.View())
}
