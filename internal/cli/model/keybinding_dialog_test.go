package model

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/keyedit/internal/application/port"
	"github.com/bnema/keyedit/internal/application/usecase"
	"github.com/bnema/keyedit/internal/cli/styles"
	"github.com/bnema/keyedit/internal/domain/entity"
	"github.com/bnema/keyedit/internal/infrastructure/config"
	"github.com/bnema/keyedit/internal/infrastructure/tkengine"
)

func newTestDialog(existing entity.ExistingBindings) KeyBindingDialogModel {
	editor := usecase.NewKeyBindingEditor("Key Sequences for 'copy'", "copy", existing,
		usecase.WithPlatform(entity.PlatformLinux),
		usecase.WithHostValidator(tkengine.New(entity.PlatformLinux)),
	)
	return NewKeyBindingDialogModel(context.Background(), styles.NewTheme(config.DefaultConfig()), editor)
}

func press(t *testing.T, m KeyBindingDialogModel, msgs ...tea.KeyMsg) (KeyBindingDialogModel, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, msg := range msgs {
		var next tea.Model
		next, cmd = m.Update(msg)
		var ok bool
		m, ok = next.(KeyBindingDialogModel)
		require.True(t, ok)
	}
	return m, cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestKeyBindingDialog_BasicAccept(t *testing.T) {
	m := newTestDialog(nil)

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeySpace})
	assert.True(t, m.Editor().IsModifierSelected("Control"))

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyTab}, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, "a", m.Editor().FinalKey())
	assert.Equal(t, "<Control-Key-a>", m.Editor().KeyString())
	assert.Contains(t, m.View(), "<Control-Key-a>")

	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	require.NotNil(t, cmd)
	assert.True(t, m.Editor().Closed())
	assert.Equal(t, "<Control-Key-a>", m.Editor().Result())
}

func TestKeyBindingDialog_RejectionShowsMessage(t *testing.T) {
	m := newTestDialog(nil)

	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	assert.Nil(t, cmd)
	require.NotNil(t, m.message)
	assert.Contains(t, m.View(), "Key Sequence Error")
	assert.Contains(t, m.View(), "No key specified.")
	assert.False(t, m.Editor().Closed())

	// Keys go to the message box until it is dismissed.
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeySpace})
	require.NotNil(t, m.message)
	assert.False(t, m.Editor().IsModifierSelected("Control"))

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, m.message)
}

func TestKeyBindingDialog_ShiftOnlyRejected(t *testing.T) {
	m := newTestDialog(nil)

	// Move to Shift, the third linux modifier.
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyRight}, tea.KeyMsg{Type: tea.KeyRight}, tea.KeyMsg{Type: tea.KeySpace})
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyTab}, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, "<Shift-Key-A>", m.Editor().KeyString())

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	require.NotNil(t, m.message)
	assert.Contains(t, m.message.Message, "shift modifier by itself")
}

func TestKeyBindingDialog_Advanced(t *testing.T) {
	m := newTestDialog(entity.ExistingBindings{{"<Key-F9>"}})

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlT})
	assert.Equal(t, entity.EntryModeAdvanced, m.Editor().Mode())
	assert.Contains(t, m.View(), "will not be checked for validity")

	m, _ = press(t, m, runes("<Key-F9>"))
	assert.Equal(t, "<Key-F9>", m.Editor().KeyString())

	// Advanced mode skips the duplicate rule; the engine accepts it.
	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	require.NotNil(t, cmd)
	assert.Equal(t, "<Key-F9>", m.Editor().Result())
}

func TestKeyBindingDialog_AdvancedEngineRejection(t *testing.T) {
	m := newTestDialog(nil)

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlT}, runes("<Hyper-x>"))
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	require.NotNil(t, m.message)
	assert.Contains(t, m.message.Message, "The entered key sequence is not accepted.")
	assert.Contains(t, m.message.Message, `bad event type or keysym "Hyper"`)
}

func TestKeyBindingDialog_ToggleLevelClears(t *testing.T) {
	m := newTestDialog(nil)

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeySpace}, tea.KeyMsg{Type: tea.KeyCtrlT}, tea.KeyMsg{Type: tea.KeyCtrlT})
	assert.Equal(t, entity.EntryModeBasic, m.Editor().Mode())
	assert.Empty(t, m.Editor().SelectedModifiers())
	assert.Empty(t, m.Editor().KeyString())
}

func TestKeyBindingDialog_Cancel(t *testing.T) {
	m := newTestDialog(nil)

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeySpace})
	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.True(t, m.Editor().Closed())
	assert.Empty(t, m.Editor().Result())
}

func TestKeysetModel_SelectsAction(t *testing.T) {
	theme := styles.NewTheme(config.DefaultConfig())
	m := NewKeysetModel(theme, port.KeysetView{
		Name: "classic",
		Bindings: []port.KeybindingEntry{
			{Action: "copy", Sequences: []string{"<Control-Key-c>"}},
			{Action: "paste", Sequences: []string{"<Control-Key-v>"}},
		},
	})

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = next.(KeysetModel)
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(KeysetModel)

	require.NotNil(t, cmd)
	assert.Equal(t, "paste", m.Selected())
	assert.Contains(t, m.View(), "classic")
}
