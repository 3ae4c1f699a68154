package reporter_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/texcalc/pkg/buffer"
	"github.com/yaklabco/texcalc/pkg/calc"
	"github.com/yaklabco/texcalc/pkg/reporter"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    reporter.Format
		wantErr bool
	}{
		{name: "empty defaults to text", input: "", want: reporter.FormatText},
		{name: "text", input: "text", want: reporter.FormatText},
		{name: "json", input: "json", want: reporter.FormatJSON},
		{name: "diff", input: "diff", want: reporter.FormatDiff},
		{name: "unknown format", input: "xml", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := reporter.ParseFormat(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormat_IsValid(t *testing.T) {
	tests := []struct {
		format reporter.Format
		want   bool
	}{
		{reporter.FormatText, true},
		{reporter.FormatJSON, true},
		{reporter.FormatDiff, true},
		{reporter.Format("unknown"), false},
		{reporter.Format(""), false},
	}

	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.format.IsValid())
		})
	}
}

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		format  reporter.Format
		wantErr bool
	}{
		{name: "text reporter", format: reporter.FormatText},
		{name: "json reporter", format: reporter.FormatJSON},
		{name: "diff reporter", format: reporter.FormatDiff},
		{name: "empty defaults to text", format: ""},
		{name: "unknown format", format: "xml", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rep, err := reporter.New(reporter.Options{Writer: &bytes.Buffer{}, Format: tt.format})
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, rep)
		})
	}
}

// sampleResult runs the pipeline over a two-line document with one good
// caret and one failing caret.
func sampleResult(t *testing.T) *reporter.Result {
	t.Helper()

	original := "Sum $1 + 2$ here\nBad $1/0 = $\n"
	buf := buffer.WithCarets(original, 6, 22)
	reps, err := calc.Run(context.Background(), buf)
	require.NoError(t, err)

	return &reporter.Result{Files: []reporter.FileResult{{
		Path:         "notes.tex",
		Original:     original,
		Updated:      buf.Text(),
		Replacements: reps,
	}}}
}

func TestTextReporter(t *testing.T) {
	var out bytes.Buffer
	r := reporter.NewTextReporter(reporter.Options{Writer: &out, Color: "never", ShowSummary: true})

	failures, err := r.Report(context.Background(), sampleResult(t))
	require.NoError(t, err)
	assert.Equal(t, 1, failures)

	got := out.String()
	assert.Contains(t, got, "notes.tex:1:7  1 + 2  = 3\n")
	assert.Contains(t, got, "notes.tex:2:6  1/0  no answer\n")
	assert.True(t, strings.HasSuffix(got, "1 answer, 1 failed\n"), "summary line missing: %q", got)
}

func TestTextReporter_ShowExprAndContext(t *testing.T) {
	var out bytes.Buffer
	r := reporter.NewTextReporter(reporter.Options{Writer: &out, Color: "never", ShowExpr: true, ShowContext: true})

	_, err := r.Report(context.Background(), sampleResult(t))
	require.NoError(t, err)

	got := out.String()
	assert.Contains(t, got, "    Expression: 1 + 2\n")
	assert.Contains(t, got, "        Sum $1 + 2$ here\n              ^\n")
	assert.NotContains(t, got, "answer,")
}

func TestTextReporter_FileError(t *testing.T) {
	var out bytes.Buffer
	r := reporter.NewTextReporter(reporter.Options{Writer: &out, Color: "never"})

	result := &reporter.Result{Files: []reporter.FileResult{{Path: "gone.tex", Error: errors.New("file not found")}}}
	failures, err := r.Report(context.Background(), result)
	require.NoError(t, err)
	assert.Equal(t, 0, failures)
	assert.Equal(t, "gone.tex: error: file not found\n", out.String())
}

func TestJSONReporter(t *testing.T) {
	var out bytes.Buffer
	r := reporter.NewJSONReporter(reporter.Options{Writer: &out})

	failures, err := r.Report(context.Background(), sampleResult(t))
	require.NoError(t, err)
	assert.Equal(t, 1, failures)

	var decoded reporter.JSONOutput
	require.NoError(t, json.Unmarshal(out.Bytes(), &decoded))

	assert.Equal(t, "1.0.0", decoded.Version)
	assert.Equal(t, reporter.JSONSummary{Files: 1, Answered: 1, Failed: 1}, decoded.Summary)
	require.Len(t, decoded.Files, 1)
	require.Len(t, decoded.Files[0].Replacements, 2)

	first := decoded.Files[0].Replacements[0]
	assert.Equal(t, 1, first.Line)
	assert.Equal(t, 7, first.Column)
	assert.Equal(t, reporter.JSONSpan{Begin: 5, End: 10}, first.Math)
	assert.Equal(t, "3", first.Result)
	assert.Equal(t, " = 3", first.Replacement)
	assert.Empty(t, first.Error)

	second := decoded.Files[0].Replacements[1]
	assert.Equal(t, 2, second.Line)
	assert.Empty(t, second.Result)
	assert.Contains(t, second.Error, "no answer")
}

func TestJSONReporter_Compact(t *testing.T) {
	var out bytes.Buffer
	r := reporter.NewJSONReporter(reporter.Options{Writer: &out, Compact: true})

	_, err := r.Report(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, `{"version":"1.0.0","files":[],"summary":{"files":0,"answered":0,"failed":0,"skipped":0}}`+"\n", out.String())
}

func TestDiffReporter(t *testing.T) {
	var out bytes.Buffer
	r := reporter.NewDiffReporter(reporter.Options{Writer: &out, Color: "never", ShowSummary: true})

	failures, err := r.Report(context.Background(), sampleResult(t))
	require.NoError(t, err)
	assert.Equal(t, 1, failures)

	want := strings.Join([]string{
		"--- a/notes.tex",
		"+++ b/notes.tex",
		"@@ -1 +1 @@",
		"-Sum $1 + 2$ here",
		"+Sum $1 + 2 = 3$ here",
		"",
		"1 file changed, 1 line",
		"",
	}, "\n")
	assert.Equal(t, want, out.String())
}

func TestDiffReporter_NoChanges(t *testing.T) {
	var out bytes.Buffer
	r := reporter.NewDiffReporter(reporter.Options{Writer: &out, Color: "never", ShowSummary: true})

	result := &reporter.Result{Files: []reporter.FileResult{{Path: "a.tex", Original: "x", Updated: "x"}}}
	_, err := r.Report(context.Background(), result)
	require.NoError(t, err)
	assert.Empty(t, out.String())
}
