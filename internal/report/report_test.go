package report

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Zachacious/go-fetchlint/internal/model"
)

func diag(offset uint32, rule model.RuleKind, fix *model.Fix) model.Diagnostic {
	return model.Diagnostic{
		Pos:     model.Position{Line: 1, Col: int(offset), Offset: offset},
		Rule:    rule,
		Message: model.Message(rule),
		Fix:     fix,
	}
}

func TestFileReport_Sort(t *testing.T) {
	r := FileReport{
		Path: "a.js",
		Diagnostics: []model.Diagnostic{
			diag(40, model.MissingTimeout, nil),
			diag(10, model.MissingTimeout, nil),
			diag(10, model.MissingErrorHandling, nil),
		},
	}
	r.Sort()

	assert.Equal(t, uint32(10), r.Diagnostics[0].Pos.Offset)
	assert.Equal(t, model.MissingErrorHandling, r.Diagnostics[0].Rule)
	assert.Equal(t, model.MissingTimeout, r.Diagnostics[1].Rule)
	assert.Equal(t, uint32(40), r.Diagnostics[2].Pos.Offset)
}

func TestWrite_Text(t *testing.T) {
	var buf bytes.Buffer
	reports := []FileReport{{
		Path: "src/api.js",
		Diagnostics: []model.Diagnostic{
			diag(0, model.MissingTimeout, nil),
			diag(5, model.MissingContentType, &model.Fix{Start: 5, End: 5, NewText: "x"}),
		},
	}}
	require.NoError(t, Write(&buf, reports, FormatText))

	out := buf.String()
	assert.Contains(t, out, "src/api.js:1:0:")
	assert.Contains(t, out, "[missingTimeout]")
	assert.Contains(t, out, "(fixable)")
	assert.Contains(t, out, "2 problem(s) found")
}

func TestWrite_JSON(t *testing.T) {
	var buf bytes.Buffer
	reports := []FileReport{{
		Path:        "src/api.js",
		Diagnostics: []model.Diagnostic{diag(0, model.MissingTimeout, nil)},
	}}
	require.NoError(t, Write(&buf, reports, FormatJSON))

	var decoded []FileReport
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 1)
	assert.Equal(t, "src/api.js", decoded[0].Path)
	require.Len(t, decoded[0].Diagnostics, 1)
	assert.Equal(t, model.MissingTimeout, decoded[0].Diagnostics[0].Rule)
}

func TestApplyFixes_HighestOffsetFirst(t *testing.T) {
	src := []byte("aa bb cc")
	diags := []model.Diagnostic{
		{Fix: &model.Fix{Start: 0, End: 2, NewText: "AAAA"}},
		{Rule: model.MissingStatusCheck}, // no fix, must be skipped
		{Fix: &model.Fix{Start: 6, End: 8, NewText: "CCCC"}},
	}

	out, n := ApplyFixes(src, diags)
	assert.Equal(t, 2, n)
	assert.Equal(t, "AAAA bb CCCC", string(out))
}

func TestApplyFixes_NoFixes(t *testing.T) {
	src := []byte("unchanged")
	out, n := ApplyFixes(src, []model.Diagnostic{diag(0, model.MissingTimeout, nil)})
	assert.Zero(t, n)
	assert.Equal(t, src, out)
}
