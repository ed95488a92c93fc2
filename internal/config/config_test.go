package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Zachacious/go-fetchlint/internal/model"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, ".fetchlint.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return dir
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "fetch", cfg.Target)
	assert.True(t, cfg.RequireQueryBuilder)
	assert.Empty(t, cfg.Rules)
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_File(t *testing.T) {
	dir := writeConfig(t, `
target: request
requireQueryBuilder: false
rules:
  - missingTimeout
  - preferAsyncAwait
`)
	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "request", cfg.Target)
	assert.False(t, cfg.RequireQueryBuilder)
	assert.Equal(t, []model.RuleKind{model.MissingTimeout, model.PreferAsyncAwait}, cfg.Rules)
}

func TestLoad_EmptyTargetFallsBack(t *testing.T) {
	dir := writeConfig(t, `target: ""`)
	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "fetch", cfg.Target)
}

func TestLoad_UnknownRule(t *testing.T) {
	dir := writeConfig(t, `
rules:
  - noSuchRule
`)
	_, err := Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "noSuchRule")
}

func TestLoad_MalformedYAML(t *testing.T) {
	dir := writeConfig(t, "rules: [unterminated")
	_, err := Load(dir)
	require.Error(t, err)
}

func TestEnabled(t *testing.T) {
	cfg := Default()
	for _, kind := range model.AllRules {
		assert.True(t, cfg.Enabled(kind), "empty rule set must enable %s", kind)
	}

	cfg.Rules = []model.RuleKind{model.MissingTimeout}
	assert.True(t, cfg.Enabled(model.MissingTimeout))
	assert.False(t, cfg.Enabled(model.MissingStatusCheck))
}
