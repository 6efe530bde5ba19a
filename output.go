package twconfig

import (
	"fmt"
	"io"
	"strings"
)

// OutputFormat represents the lint output format
type OutputFormat string

const (
	// OutputIssues shows issues in golangci-lint format followed by a summary
	OutputIssues OutputFormat = "issues"
	// OutputJSON exports structured data for tooling
	OutputJSON OutputFormat = "json"
	// OutputMarkdown renders a table for pull request comments
	OutputMarkdown OutputFormat = "markdown"
)

// DetermineOutputFormat maps a flag value to an output format. Unknown values
// fall back to OutputIssues.
func DetermineOutputFormat(formatFlag string) OutputFormat {
	switch strings.ToLower(formatFlag) {
	case "json":
		return OutputJSON
	case "markdown", "md":
		return OutputMarkdown
	}
	return OutputIssues
}

// CombineResults folds results of several config files into one.
func CombineResults(results ...*LintResult) *LintResult {
	combined := &LintResult{Issues: []Issue{}, FilesMatched: map[string]int{}}
	sources := make([]string, 0, len(results))
	for _, r := range results {
		if r == nil {
			continue
		}
		if r.Source != "" {
			sources = append(sources, r.Source)
		}
		combined.Issues = append(combined.Issues, r.Issues...)
		for glob, n := range r.FilesMatched {
			combined.FilesMatched[glob] = n
		}
		combined.FilesTotal += r.FilesTotal
		combined.ErrorCount += r.ErrorCount
		combined.WarningCount += r.WarningCount
	}
	combined.Source = strings.Join(sources, ", ")
	SortIssues(combined.Issues)
	return combined
}

// WriteOutput writes the lint result in the specified format
func WriteOutput(w io.Writer, result *LintResult, format OutputFormat, config ReportConfig) error {
	switch format {
	case OutputJSON:
		return WriteJSON(w, result)
	case OutputMarkdown:
		return WriteMarkdown(w, result)
	}

	reporter := NewReporter(w, config)
	reporter.PrintIssues(result.Issues)
	reporter.PrintSummary(*result)
	return nil
}

// WriteMarkdown renders the issues as a Markdown table
func WriteMarkdown(w io.Writer, result *LintResult) error {
	var sb strings.Builder
	sb.WriteString("## twconfig lint\n\n")

	if len(result.Issues) == 0 {
		sb.WriteString("No issues found.\n")
		_, err := io.WriteString(w, sb.String())
		return err
	}

	sb.WriteString("| Location | Severity | Rule | Message |\n")
	sb.WriteString("|---|---|---|---|\n")
	for _, issue := range result.Issues {
		location := issue.Pos.Filename
		if issue.Pos.Line > 0 {
			location = fmt.Sprintf("%s:%d", issue.Pos.Filename, issue.Pos.Line)
		}
		severity := issue.Severity
		if severity == SeverityInfo {
			severity = "info"
		}
		fmt.Fprintf(&sb, "| `%s` | %s | %s | %s |\n",
			location, severity, issue.Rule, strings.ReplaceAll(issue.Text, "|", `\|`))
	}
	fmt.Fprintf(&sb, "\n%s, %s, %s.\n",
		pluralizeCount(len(result.Issues), "issue", "issues"),
		pluralizeCount(result.ErrorCount, "error", "errors"),
		pluralizeCount(result.WarningCount, "warning", "warnings"))

	_, err := io.WriteString(w, sb.String())
	return err
}
