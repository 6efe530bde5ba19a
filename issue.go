package twconfig

// Issue represents a single lint finding in golangci-lint format
type Issue struct {
	FromLinter  string   `json:"FromLinter"`  // "twconfig"
	Rule        string   `json:"Rule"`        // "unmatched-content"
	Text        string   `json:"Text"`        // "content glob \"./views/**/*.html\" matches no files"
	Severity    string   `json:"Severity"`    // "", "warning", "error"
	SourceLines []string `json:"SourceLines"` // Lines of the config file with the issue
	Pos         IssuePos `json:"Pos"`         // File location
}

// IssuePos specifies the exact location of an issue
type IssuePos struct {
	Filename string `json:"Filename"` // "tailwind.config.js"
	Line     int    `json:"Line"`     // 7, 0 when unknown
	Column   int    `json:"Column"`   // 10 (1-based)
}

// IssueSeverity constants
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
	SeverityInfo    = ""
)

// LinterName is reported in Issue.FromLinter.
const LinterName = "twconfig"

// Lint rules
const (
	RuleEmptyContent        = "empty-content"
	RuleUnmatchedContent    = "unmatched-content"
	RuleDuplicateContent    = "duplicate-content"
	RuleEscapingContent     = "escaping-content"
	RuleRedundantCorePlugin = "redundant-core-plugin"
	RuleClasslessContent    = "classless-content"
	RuleUnusedPrefix        = "unused-prefix"
)

// Issue texts
const (
	IssueEmptyContent        = "content is empty, no utility classes will be generated"
	IssueUnmatchedContent    = "content glob %q matches no files"
	IssueDuplicateContent    = "content glob %q is listed more than once"
	IssueEscapingContent     = "content glob %q reaches outside the project root"
	IssueRedundantCorePlugin = "core plugin %q is enabled by default, the override has no effect"
	IssueClasslessContent    = "content glob %q matches %d files without class attributes"
	IssueUnusedPrefix        = "prefix %q is used by none of the %d classes in content files"
)
