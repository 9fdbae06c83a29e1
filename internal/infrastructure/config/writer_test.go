package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteConfigOrdered(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.toml")

	require.NoError(t, WriteConfigOrdered(DefaultConfig(), configPath))

	content, err := os.ReadFile(configPath)
	require.NoError(t, err)

	var sections []string
	for _, line := range strings.Split(string(content), "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "[") && strings.HasSuffix(trimmed, "]") {
			sections = append(sections, strings.Trim(trimmed, "[]"))
		}
	}
	require.NotEmpty(t, sections)
	for i := 1; i < len(sections); i++ {
		assert.LessOrEqual(t, sections[i-1], sections[i], "sections not sorted")
	}
	assert.Contains(t, sections, "appearance.dark_palette")
	assert.Contains(t, sections, "keys.classic-mac")
	assert.Contains(t, string(content), "<Control-Key-c>")

	assert.Error(t, WriteConfigOrdered(nil, configPath))
}

func TestSortTOMLSections(t *testing.T) {
	input := `title = 'x'

[logging]
level = 'info'

[editor]
engine = 'tk'
`
	want := `title = 'x'

[editor]
engine = 'tk'

[logging]
level = 'info'
`
	assert.Equal(t, want, sortTOMLSections(input))
}

func TestSortTOMLSections_ParentBeforeSubtables(t *testing.T) {
	input := `[keys.classic-mac]
copy = ['<Command-Key-c>']

[keys.classic]
copy = ['<Control-Key-c>']

[appearance.dark_palette]
text = '#ffffff'

[appearance]
color_scheme = 'default'
`
	want := `[appearance]
color_scheme = 'default'

[appearance.dark_palette]
text = '#ffffff'

[keys.classic]
copy = ['<Control-Key-c>']

[keys.classic-mac]
copy = ['<Command-Key-c>']
`
	assert.Equal(t, want, sortTOMLSections(input))
}
