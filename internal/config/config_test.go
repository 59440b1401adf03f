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
	path := filepath.Join(t.TempDir(), "site.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadValidConfig(t *testing.T) {
	path := writeConfig(t, `
title: Sloth Docs
theme_color: "#1e90ff"
extra_stylesheets:
  - custom.css
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Sloth Docs", cfg.Title)
	assert.Equal(t, "#1e90ff", cfg.ThemeColor)
	assert.Equal(t, []string{"custom.css"}, cfg.ExtraStylesheets)
}

func TestLoadAppliesDefaults(t *testing.T) {
	path := writeConfig(t, `theme_color: "#fff"`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Documentation", cfg.Title)
}

func TestLoadRejectsBadThemeColor(t *testing.T) {
	path := writeConfig(t, `theme_color: "blue"`)

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "theme_color")
}

func TestLoadRejectsEmptyStylesheetEntry(t *testing.T) {
	path := writeConfig(t, "extra_stylesheets:\n  - \"\"\n")

	_, err := Load(path)
	require.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}
