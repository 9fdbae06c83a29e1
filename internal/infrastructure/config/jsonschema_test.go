package config

import (
	"encoding/json"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchemaJSON(t *testing.T) {
	data, err := SchemaJSON()
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Equal(t, "keyedit configuration", doc["title"])
	assert.Contains(t, string(data), "verify_concurrency")
	assert.Contains(t, string(data), `"gtk"`)
}

func TestGenerateSchemaFile(t *testing.T) {
	dir := t.TempDir()
	path, err := GenerateSchemaFile(dir)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, json.Valid(data))
}
