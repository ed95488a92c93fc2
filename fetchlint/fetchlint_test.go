package fetchlint

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyzeSource(t *testing.T) {
	src := []byte(`fetch('/api', { method: 'POST', body: JSON.stringify(data) });`)

	cfg := DefaultConfig()
	cfg.Rules = []RuleKind{MissingContentType}

	diags, err := AnalyzeSource(context.Background(), src, cfg)
	require.NoError(t, err)
	require.Len(t, diags, 1)
	assert.Equal(t, MissingContentType, diags[0].Rule)
	assert.NotNil(t, diags[0].Fix)
}

func TestAnalyzeSource_NilConfigUsesDefaults(t *testing.T) {
	diags, err := AnalyzeSource(context.Background(), []byte(`fetch('/api');`), nil)
	require.NoError(t, err)
	assert.NotEmpty(t, diags)
}

func TestAnalyzeSource_InvalidUTF8(t *testing.T) {
	_, err := AnalyzeSource(context.Background(), []byte{0xff, 0xfe, 0xfd}, nil)
	assert.ErrorIs(t, err, ErrInvalidContent)
}

func TestAnalyzeSource_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := AnalyzeSource(ctx, []byte(`fetch('/api');`), nil)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestAnalyzeFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "api.js")
	require.NoError(t, os.WriteFile(path, []byte(`fetch('/api');`), 0o644))

	cfg := DefaultConfig()
	cfg.Rules = []RuleKind{MissingTimeout}

	diags, err := AnalyzeFile(context.Background(), path, cfg)
	require.NoError(t, err)
	require.Len(t, diags, 1)
	assert.Equal(t, MissingTimeout, diags[0].Rule)
}

func TestAnalyzeFile_Missing(t *testing.T) {
	_, err := AnalyzeFile(context.Background(), filepath.Join(t.TempDir(), "absent.js"), nil)
	assert.Error(t, err)
}
