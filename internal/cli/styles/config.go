package styles

import (
	"fmt"
)

// ConfigRenderer renders config status messages with styled output.
type ConfigRenderer struct {
	theme *Theme
}

// NewConfigRenderer creates a new config renderer with the given theme.
func NewConfigRenderer(theme *Theme) *ConfigRenderer {
	return &ConfigRenderer{theme: theme}
}

// RenderPath renders the config file location.
func (r *ConfigRenderer) RenderPath(path string) string {
	return fmt.Sprintf("%s Config %s", r.theme.Highlight.Render(IconConfig), r.theme.Subtle.Render(path))
}

// RenderSchemaWritten renders the result of writing the JSON schema.
func (r *ConfigRenderer) RenderSchemaWritten(path string) string {
	return fmt.Sprintf("%s Schema written to %s", r.theme.SuccessStyle.Render(IconCheck), r.theme.Subtle.Render(path))
}

// RenderReloaded renders a config reload notice for watch mode.
func (r *ConfigRenderer) RenderReloaded(path string) string {
	return fmt.Sprintf("%s Reloaded %s", r.theme.Highlight.Render(IconInfo), r.theme.Subtle.Render(path))
}
