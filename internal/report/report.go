// Package report renders per-file diagnostics for the CLI and applies
// suggested fixes. The engine emits diagnostics in traversal-completion
// order; sorting by source position happens here, at the presentation
// layer.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"github.com/fatih/color"
	"gopkg.in/yaml.v3"

	"github.com/Zachacious/go-fetchlint/internal/model"
)

// Format selects the output encoding.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FileReport is the diagnostics for one analyzed unit.
type FileReport struct {
	Path        string             `json:"path" yaml:"path"`
	Diagnostics []model.Diagnostic `json:"diagnostics" yaml:"diagnostics"`
}

// Sort orders diagnostics by source position, then rule kind.
func (r *FileReport) Sort() {
	sort.SliceStable(r.Diagnostics, func(i, j int) bool {
		a, b := r.Diagnostics[i], r.Diagnostics[j]
		if a.Pos.Offset != b.Pos.Offset {
			return a.Pos.Offset < b.Pos.Offset
		}
		return a.Rule < b.Rule
	})
}

var (
	pathColor = color.New(color.FgCyan, color.Bold)
	ruleColor = color.New(color.FgYellow)
	fixColor  = color.New(color.FgGreen)
)

// Write renders the reports in the requested format. Reports are sorted
// in place first.
func Write(w io.Writer, reports []FileReport, format Format) error {
	for i := range reports {
		reports[i].Sort()
	}

	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(reports)
	case FormatYAML:
		return yaml.NewEncoder(w).Encode(reports)
	default:
		return writeText(w, reports)
	}
}

func writeText(w io.Writer, reports []FileReport) error {
	total := 0
	for _, r := range reports {
		if len(r.Diagnostics) == 0 {
			continue
		}
		for _, d := range r.Diagnostics {
			total++
			if _, err := fmt.Fprintf(w, "%s:%d:%d: %s %s",
				pathColor.Sprint(r.Path), d.Pos.Line, d.Pos.Col,
				ruleColor.Sprintf("[%s]", d.Rule), d.Message); err != nil {
				return err
			}
			if d.Fix != nil {
				if _, err := fmt.Fprintf(w, " %s", fixColor.Sprint("(fixable)")); err != nil {
					return err
				}
			}
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
	}
	_, err := fmt.Fprintf(w, "\n%d problem(s) found\n", total)
	return err
}

// ApplyFixes splices every fix carried by the diagnostics into src,
// highest offset first so earlier offsets stay valid. Fixes from one
// pass never overlap. It returns the rewritten source and the number of
// fixes applied.
func ApplyFixes(src []byte, diags []model.Diagnostic) ([]byte, int) {
	var fixes []model.Fix
	for _, d := range diags {
		if d.Fix != nil {
			fixes = append(fixes, *d.Fix)
		}
	}
	sort.Slice(fixes, func(i, j int) bool { return fixes[i].Start > fixes[j].Start })

	for _, f := range fixes {
		src = f.Apply(src)
	}
	return src, len(fixes)
}
