package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "answering.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadAnswering(t *testing.T) {
	path := writeConfig(t, `
aliases:
  - alias: the hub
    stop_id_padded: "0800"
    stop_name: Transfer Center
  - alias: uni
    stop_id_padded: "1492"
    stop_name: University Commons
`)

	cfg, err := LoadAnswering(path)
	require.NoError(t, err)
	require.Len(t, cfg.Aliases, 2)

	// File order is preserved: the resolver depends on it.
	assert.Equal(t, AliasEntry{Alias: "the hub", StopIDPadded: "0800", StopName: "Transfer Center"}, cfg.Aliases[0])
	assert.Equal(t, "uni", cfg.Aliases[1].Alias)
}

func TestLoadAnsweringMissingFile(t *testing.T) {
	cfg, err := LoadAnswering(filepath.Join(t.TempDir(), "does-not-exist.yml"))
	require.NoError(t, err)
	assert.Empty(t, cfg.Aliases)
}

func TestLoadAnsweringInvalidYAML(t *testing.T) {
	path := writeConfig(t, "aliases: [not, closed")
	_, err := LoadAnswering(path)
	assert.Error(t, err)
}

func TestLoadAnsweringMissingFields(t *testing.T) {
	path := writeConfig(t, `
aliases:
  - alias: the hub
    stop_name: Transfer Center
`)
	_, err := LoadAnswering(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid alias entry 0")
}
