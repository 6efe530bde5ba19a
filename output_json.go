package twconfig

import (
	"encoding/json"
	"io"
	"time"
)

// jsonReportVersion is bumped when the report layout changes.
const jsonReportVersion = "2"

// JSONOutput is the machine readable lint report. Issues keep the
// golangci-lint shape so existing annotators can consume them.
type JSONOutput struct {
	Version   string         `json:"version"`
	Timestamp string         `json:"timestamp"`
	Source    string         `json:"source,omitempty"`
	Summary   JSONSummary    `json:"summary"`
	Content   map[string]int `json:"content"`
	Issues    []JSONIssue    `json:"issues"`
}

// JSONSummary contains the issue counts and the number of matched content files
type JSONSummary struct {
	Issues       int `json:"issues"`
	Errors       int `json:"errors"`
	Warnings     int `json:"warnings"`
	FilesMatched int `json:"files_matched"`
}

// JSONIssue is one lint issue in golangci-lint's JSON layout
type JSONIssue struct {
	FromLinter  string   `json:"FromLinter"`
	Rule        string   `json:"Rule"`
	Text        string   `json:"Text"`
	Severity    string   `json:"Severity"`
	SourceLines []string `json:"SourceLines,omitempty"`
	Pos         IssuePos `json:"Pos"`
}

// WriteJSON encodes result as an indented JSONOutput.
func WriteJSON(w io.Writer, result *LintResult) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(buildJSONOutput(result, time.Now()))
}

func buildJSONOutput(result *LintResult, now time.Time) JSONOutput {
	out := JSONOutput{
		Version:   jsonReportVersion,
		Timestamp: now.UTC().Format(time.RFC3339),
		Source:    result.Source,
		Summary: JSONSummary{
			Issues:       len(result.Issues),
			Errors:       result.ErrorCount,
			Warnings:     result.WarningCount,
			FilesMatched: result.FilesTotal,
		},
		Content: map[string]int{},
		Issues:  make([]JSONIssue, 0, len(result.Issues)),
	}
	for glob, n := range result.FilesMatched {
		out.Content[glob] = n
	}

	for _, issue := range result.Issues {
		sev := issue.Severity
		if sev == SeverityInfo {
			sev = "info"
		}
		out.Issues = append(out.Issues, JSONIssue{
			FromLinter:  issue.FromLinter,
			Rule:        issue.Rule,
			Text:        issue.Text,
			Severity:    sev,
			SourceLines: issue.SourceLines,
			Pos:         issue.Pos,
		})
	}
	return out
}
