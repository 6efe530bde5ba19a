package twconfig

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildCaretIndicator(t *testing.T) {
	reporter := &Reporter{}

	tests := []struct {
		name       string
		sourceLine string
		column     int
		want       string
	}{
		{
			name:       "spaces only",
			sourceLine: "    content: [],",
			column:     5,
			want:       "    ^",
		},
		{
			name:       "tabs",
			sourceLine: "\t\t'./templates/**/*.html',",
			column:     4,
			want:       "\t\t ^",
		},
		{
			name:       "column 0 fallback",
			sourceLine: "content: []",
			column:     0,
			want:       "^",
		},
		{
			name:       "column beyond line length",
			sourceLine: "abc",
			column:     50,
			want:       "   ^",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, reporter.buildCaretIndicator(tt.sourceLine, tt.column))
		})
	}
}

func sampleResult() *LintResult {
	return &LintResult{
		Source: "tailwind.config.js",
		Issues: []Issue{
			{
				FromLinter:  LinterName,
				Rule:        RuleRedundantCorePlugin,
				Text:        `core plugin "container" is enabled by default, the override has no effect`,
				Severity:    SeverityInfo,
				SourceLines: []string{"    container: true,"},
				Pos:         IssuePos{Filename: "tailwind.config.js", Line: 9, Column: 5},
			},
			{
				FromLinter:  LinterName,
				Rule:        RuleUnmatchedContent,
				Text:        `content glob "./missing/*.html" matches no files`,
				Severity:    SeverityWarning,
				SourceLines: []string{"    './missing/*.html',"},
				Pos:         IssuePos{Filename: "tailwind.config.js", Line: 3, Column: 6},
			},
		},
		FilesMatched: map[string]int{"./missing/*.html": 0, "./templates/**/*.html": 2},
		FilesTotal:   2,
		WarningCount: 1,
	}
}

func TestReporterPrintIssues(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	var buf bytes.Buffer
	result := sampleResult()
	reporter := NewReporter(&buf, ReportConfig{PrintIssuedLines: true, PrintLinterName: true})
	require.False(t, reporter.UseColors())

	reporter.PrintIssues(result.Issues)
	reporter.PrintSummary(*result)

	want := `tailwind.config.js:3:6: warning: content glob "./missing/*.html" matches no files (twconfig/unmatched-content)
	    './missing/*.html',
	     ^
tailwind.config.js:9:5: core plugin "container" is enabled by default, the override has no effect (twconfig/redundant-core-plugin)
	    container: true,
	    ^

2 issues (0 errors, 1 warning):
* redundant-core-plugin: 1
* unmatched-content: 1
`
	assert.Equal(t, want, buf.String())
}

func TestReporterCompact(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	var buf bytes.Buffer
	reporter := NewReporter(&buf, ReportConfig{})
	reporter.PrintIssues([]Issue{{
		FromLinter: LinterName,
		Rule:       RuleEmptyContent,
		Text:       IssueEmptyContent,
		Severity:   SeverityWarning,
		Pos:        IssuePos{Filename: "c.yaml"},
	}})

	assert.Equal(t, "c.yaml: warning: "+IssueEmptyContent+"\n", buf.String())
}

func TestShouldUseColors(t *testing.T) {
	t.Setenv("NO_COLOR", "")
	t.Setenv("FORCE_COLOR", "1")
	assert.True(t, ShouldUseColors(false))

	t.Setenv("NO_COLOR", "1")
	assert.False(t, ShouldUseColors(false))
	assert.True(t, ShouldUseColors(true))
}

func TestDetermineOutputFormat(t *testing.T) {
	tests := map[string]OutputFormat{
		"":         OutputIssues,
		"issues":   OutputIssues,
		"JSON":     OutputJSON,
		"markdown": OutputMarkdown,
		"md":       OutputMarkdown,
		"sarif":    OutputIssues,
	}
	for flag, want := range tests {
		assert.Equal(t, want, DetermineOutputFormat(flag), flag)
	}
}

func TestBuildJSONOutput(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	out := buildJSONOutput(sampleResult(), now)

	assert.Equal(t, "2024-05-01T12:00:00Z", out.Timestamp)
	assert.Equal(t, "2", out.Version)
	assert.Equal(t, JSONSummary{Issues: 2, Warnings: 1, FilesMatched: 2}, out.Summary)
	require.Len(t, out.Issues, 2)
	assert.Equal(t, "info", out.Issues[0].Severity)
	assert.Equal(t, []string{"    container: true,"}, out.Issues[0].SourceLines)
	assert.Equal(t, "warning", out.Issues[1].Severity)
	assert.Equal(t, 3, out.Issues[1].Pos.Line)

	var buf bytes.Buffer
	require.NoError(t, WriteOutput(&buf, sampleResult(), OutputJSON, ReportConfig{}))

	var decoded JSONOutput
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "tailwind.config.js", decoded.Source)
	assert.Equal(t, 2, decoded.Content["./templates/**/*.html"])
}

func TestWriteMarkdown(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteOutput(&buf, sampleResult(), OutputMarkdown, ReportConfig{}))

	out := buf.String()
	assert.Contains(t, out, "| Location | Severity | Rule | Message |")
	assert.Contains(t, out, "| `tailwind.config.js:3` | warning | unmatched-content |")
	assert.Contains(t, out, "| `tailwind.config.js:9` | info | redundant-core-plugin |")
	assert.Contains(t, out, "2 issues, 0 errors, 1 warning.")

	buf.Reset()
	require.NoError(t, WriteMarkdown(&buf, &LintResult{}))
	assert.Equal(t, "## twconfig lint\n\nNo issues found.\n", buf.String())
}

func TestCombineResults(t *testing.T) {
	other := &LintResult{
		Source: "tailwind.footer.config.js",
		Issues: []Issue{{
			Rule:     RuleEmptyContent,
			Severity: SeverityWarning,
			Pos:      IssuePos{Filename: "tailwind.footer.config.js", Line: 2},
		}},
		FilesMatched: map[string]int{},
		WarningCount: 1,
	}

	combined := CombineResults(sampleResult(), nil, other)
	assert.Equal(t, "tailwind.config.js, tailwind.footer.config.js", combined.Source)
	assert.Len(t, combined.Issues, 3)
	assert.Equal(t, "tailwind.config.js", combined.Issues[0].Pos.Filename)
	assert.Equal(t, 3, combined.Issues[0].Pos.Line)
	assert.Equal(t, "tailwind.footer.config.js", combined.Issues[2].Pos.Filename)
	assert.Equal(t, 2, combined.WarningCount)
	assert.Equal(t, 2, combined.FilesTotal)
}
