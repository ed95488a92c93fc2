package main

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/Zachacious/go-fetchlint/fetchlint"
	"github.com/Zachacious/go-fetchlint/internal/report"
)

var jsExtensions = map[string]bool{
	".js":  true,
	".mjs": true,
	".cjs": true,
	".jsx": true,
}

func main() {
	var (
		format      string
		applyFixes  bool
		target      string
		strictQuery bool
		verbose     bool
	)

	rootCmd := &cobra.Command{
		Use:   "fetchlint [path]",
		Short: "fetchlint checks fetch call sites for contract violations.",
		Long: `fetchlint statically analyzes JavaScript sources and verifies, per fetch
call site, that errors are handled, the response status is checked,
content types are negotiated, a timeout is configured, query parameters
are encoded, and bodies match their HTTP method. Behavior is configured
through a .fetchlint.yaml file at the project root.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root := args[0]
			if verbose {
				slog.SetLogLoggerLevel(slog.LevelDebug)
			}

			cfg, err := fetchlint.LoadConfig(root)
			if err != nil {
				return fmt.Errorf("loading configuration: %w", err)
			}
			if cmd.Flags().Changed("target") {
				cfg.Target = target
			}
			if cmd.Flags().Changed("strict-query") {
				cfg.RequireQueryBuilder = strictQuery
			}

			files, err := collectFiles(root)
			if err != nil {
				return err
			}
			slog.Debug("collected source files", "count", len(files))

			reports, err := analyzeAll(cmd.Context(), files, cfg, applyFixes)
			if err != nil {
				return err
			}

			if err := report.Write(os.Stdout, reports, report.Format(format)); err != nil {
				return err
			}
			for _, r := range reports {
				if len(r.Diagnostics) > 0 {
					os.Exit(1)
				}
			}
			return nil
		},
	}

	rootCmd.Flags().StringVarP(&format, "format", "f", "text", "Output format: text, json or yaml")
	rootCmd.Flags().BoolVar(&applyFixes, "fix", false, "Apply suggested fixes in place")
	rootCmd.Flags().StringVar(&target, "target", "fetch", "Name of the request function to analyze")
	rootCmd.Flags().BoolVar(&strictQuery, "strict-query", true, "Require a query-string builder over manual encoding")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// collectFiles gathers the JavaScript sources under root, or root itself
// when it is a single file.
func collectFiles(root string) ([]string, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return []string{root}, nil
	}

	var files []string
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if name := d.Name(); name == "node_modules" || strings.HasPrefix(name, ".") && path != root {
				return filepath.SkipDir
			}
			return nil
		}
		if jsExtensions[filepath.Ext(path)] {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}

// analyzeAll runs the engine over every file. Units are independent, so
// they are analyzed concurrently; the engine itself never shares state
// across units.
func analyzeAll(ctx context.Context, files []string, cfg *fetchlint.Config, applyFixes bool) ([]report.FileReport, error) {
	reports := make([]report.FileReport, len(files))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	for i, path := range files {
		g.Go(func() error {
			diags, err := fetchlint.AnalyzeFile(ctx, path, cfg)
			if err != nil {
				return err
			}

			if applyFixes {
				src, readErr := os.ReadFile(path)
				if readErr != nil {
					return readErr
				}
				fixed, n := report.ApplyFixes(src, diags)
				if n > 0 {
					if writeErr := os.WriteFile(path, fixed, 0o644); writeErr != nil {
						return writeErr
					}
					slog.Debug("applied fixes", "path", path, "count", n)
					// Re-analyze so resolved findings disappear from the report.
					diags, err = fetchlint.AnalyzeSource(ctx, fixed, cfg)
					if err != nil {
						return err
					}
				}
			}

			// Each goroutine owns its own slot.
			reports[i] = report.FileReport{Path: path, Diagnostics: diags}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return reports, nil
}
