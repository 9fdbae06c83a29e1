// Package styles provides reusable lipgloss-based TUI components.
package styles

// Nerd Font icons (requires a Nerd Font to display correctly)
const (
	IconKeyboard = "\uf11c" // keyboard
	IconCheck    = "\uf00c" // check
	IconX        = "\uf00d" // x
	IconWarning  = "\uf071" // warning
	IconInfo     = "\uf05a" // info
	IconConfig   = "\ue615" // config
	IconDatabase = "\uf1c0" // database
	IconClock    = "\uf017" // clock
	IconLink     = "\uf0c1" // link
	IconArrow    = "\uf061" // arrow right

	// Checkboxes
	IconCheckboxEmpty   = "\uf096" // unchecked
	IconCheckboxChecked = "\uf046" // checked

	// UI
	IconCursor = "\uf054" // chevron-right
)

const (
	cursorSelected = IconCursor + " "
	cursorEmpty    = "  "
)
