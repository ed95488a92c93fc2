// Package fetchlint is the public entry point for the fetch contract
// linter. It parses JavaScript source with tree-sitter and runs the
// analysis engine over the resulting tree, one unit at a time. Units are
// fully independent; callers may analyze many files concurrently.
package fetchlint

import (
	"context"
	"errors"
	"fmt"
	"os"
	"unicode/utf8"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/javascript"

	"github.com/Zachacious/go-fetchlint/internal/analyzer"
	"github.com/Zachacious/go-fetchlint/internal/config"
	"github.com/Zachacious/go-fetchlint/internal/model"
)

// MaxFileSize is the largest source unit the facade will parse.
const MaxFileSize = 10 * 1024 * 1024 // 10MB

var (
	// ErrFileTooLarge is returned for units above MaxFileSize.
	ErrFileTooLarge = errors.New("fetchlint: file exceeds maximum size")
	// ErrInvalidContent is returned for non-UTF-8 input.
	ErrInvalidContent = errors.New("fetchlint: content is not valid UTF-8")
)

// Re-exported engine types, so hosts never import internal packages.
type (
	Diagnostic = model.Diagnostic
	Fix        = model.Fix
	Position   = model.Position
	RuleKind   = model.RuleKind
	Config     = config.Config
)

// Rule kinds.
const (
	MissingErrorHandling    = model.MissingErrorHandling
	MissingStatusCheck      = model.MissingStatusCheck
	MissingContentType      = model.MissingContentType
	IncorrectContentType    = model.IncorrectContentType
	MissingContentTypeCheck = model.MissingContentTypeCheck
	MissingTimeout          = model.MissingTimeout
	PreferAsyncAwait        = model.PreferAsyncAwait
	JSONInGetRequest        = model.JSONInGetRequest
	UnsafeQueryParam        = model.UnsafeQueryParam
	PreferURLSearchParams   = model.PreferURLSearchParams
)

// DefaultConfig returns the default engine configuration.
func DefaultConfig() *Config { return config.Default() }

// LoadConfig reads .fetchlint.yaml from projectPath, falling back to the
// defaults when the file does not exist.
func LoadConfig(projectPath string) (*Config, error) { return config.Load(projectPath) }

// AnalyzeSource parses one JavaScript unit and returns its diagnostics.
// A nil cfg selects the defaults.
func AnalyzeSource(ctx context.Context, src []byte, cfg *Config) ([]Diagnostic, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("analysis canceled before start: %w", err)
	}
	if len(src) > MaxFileSize {
		return nil, ErrFileTooLarge
	}
	if !utf8.Valid(src) {
		return nil, ErrInvalidContent
	}

	parser := sitter.NewParser()
	parser.SetLanguage(javascript.GetLanguage())

	tree, err := parser.ParseCtx(ctx, nil, src)
	if err != nil {
		return nil, fmt.Errorf("tree-sitter parse failed: %w", err)
	}
	defer tree.Close()

	return analyzer.New(cfg).AnalyzeTree(tree.RootNode(), src), nil
}

// AnalyzeFile reads and analyzes one file.
func AnalyzeFile(ctx context.Context, path string, cfg *Config) ([]Diagnostic, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	diags, err := AnalyzeSource(ctx, src, cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return diags, nil
}
