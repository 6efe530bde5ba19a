package twconfig

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	ignore "github.com/sabhiram/go-gitignore"
)

// LintOptions configures Lint.
type LintOptions struct {
	Root   string // project root content globs are relative to (default: ".")
	Source string // config file used to locate issues, optional
}

// LintResult contains lint findings for one configuration
type LintResult struct {
	Source       string
	Issues       []Issue
	FilesMatched map[string]int // files matched per content glob
	FilesTotal   int            // distinct files matched by all globs
	ErrorCount   int
	WarningCount int
}

// linter carries the state of one Lint call
type linter struct {
	root      string
	source    string
	lines     []string
	gitIgnore *ignore.GitIgnore
	matched   map[string][]string // content glob -> files
	result    *LintResult
}

// Lint reports configurations that load fine but will not behave as intended.
// It never fails: unreadable sources only lose issue positions.
func Lint(cfg *BuildConfiguration, opts LintOptions) *LintResult {
	l := &linter{
		root:    opts.Root,
		source:  opts.Source,
		matched: make(map[string][]string, len(cfg.ContentGlobs)),
		result: &LintResult{
			Source:       opts.Source,
			Issues:       []Issue{},
			FilesMatched: make(map[string]int, len(cfg.ContentGlobs)),
		},
	}
	if l.root == "" {
		l.root = "."
	}
	if opts.Source != "" {
		// #nosec G304 - path comes from trusted configuration
		if data, err := os.ReadFile(opts.Source); err == nil {
			l.lines = strings.Split(string(data), "\n")
		}
	}
	if gi, err := ignore.CompileIgnoreFile(filepath.Join(l.root, ".gitignore")); err == nil {
		l.gitIgnore = gi
	}

	l.checkContent(cfg.ContentGlobs)
	l.checkClasses(cfg.ContentGlobs, cfg.ClassPrefix)
	l.checkCorePlugins(cfg.CorePluginOverrides)

	SortIssues(l.result.Issues)
	for _, issue := range l.result.Issues {
		switch issue.Severity {
		case SeverityError:
			l.result.ErrorCount++
		case SeverityWarning:
			l.result.WarningCount++
		}
	}
	return l.result
}

func (l *linter) checkContent(globs []string) {
	if len(globs) == 0 {
		l.report(RuleEmptyContent, SeverityWarning, IssueEmptyContent, "content", 0)
		return
	}

	files := make(map[string]bool)
	lastLine := make(map[string]int)
	for _, glob := range globs {
		if line, seen := lastLine[glob]; seen {
			lastLine[glob] = l.report(RuleDuplicateContent, SeverityInfo,
				fmt.Sprintf(IssueDuplicateContent, glob), glob, line+1)
			continue
		}
		lastLine[glob] = l.report("", "", "", glob, 0)

		pattern, negated := strings.CutPrefix(glob, "!")
		if escapesRoot(pattern) {
			l.report(RuleEscapingContent, SeverityWarning, fmt.Sprintf(IssueEscapingContent, glob), glob, 0)
		}
		if negated {
			continue
		}

		matches := l.match(pattern)
		l.matched[glob] = matches
		l.result.FilesMatched[glob] = len(matches)
		for _, m := range matches {
			files[m] = true
		}
		if len(matches) == 0 {
			l.report(RuleUnmatchedContent, SeverityWarning, fmt.Sprintf(IssueUnmatchedContent, glob), glob, 0)
		}
	}
	l.result.FilesTotal = len(files)
}

// checkClasses scans the matched files for class attributes. Globs whose files
// have none are reported, and so is a prefix no class uses.
func (l *linter) checkClasses(globs []string, prefix string) {
	classes := make(map[string][]classRef, len(l.result.FilesMatched))
	scan := func(file string) []classRef {
		refs, seen := classes[file]
		if !seen {
			refs, _ = scanClasses(file)
			classes[file] = refs
		}
		return refs
	}

	reported := make(map[string]bool)
	for _, glob := range globs {
		files := l.matched[glob]
		if len(files) == 0 || reported[glob] {
			continue
		}
		reported[glob] = true

		found := false
		for _, f := range files {
			if len(scan(f)) > 0 {
				found = true
			}
		}
		if !found {
			l.report(RuleClasslessContent, SeverityInfo,
				fmt.Sprintf(IssueClasslessContent, glob, len(files)), glob, 0)
		}
	}

	if prefix == "" {
		return
	}
	total := 0
	for _, refs := range classes {
		for _, ref := range refs {
			for _, class := range strings.Fields(ref.Value) {
				total++
				if hasPrefix(class, prefix) {
					return
				}
			}
		}
	}
	if total > 0 {
		l.report(RuleUnusedPrefix, SeverityWarning,
			fmt.Sprintf(IssueUnusedPrefix, prefix, total), "prefix", 0)
	}
}

func (l *linter) checkCorePlugins(overrides map[string]bool) {
	keys := make([]string, 0, len(overrides))
	for k := range overrides {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		if overrides[k] {
			l.report(RuleRedundantCorePlugin, SeverityInfo, fmt.Sprintf(IssueRedundantCorePlugin, k), k, 0)
		}
	}
}

// match expands a content glob relative to the root, dropping gitignored files.
func (l *linter) match(pattern string) []string {
	full := pattern
	if !filepath.IsAbs(pattern) {
		full = filepath.Join(l.root, filepath.FromSlash(pattern))
	}

	matches, err := doublestar.FilepathGlob(full, doublestar.WithFilesOnly())
	if err != nil {
		return nil
	}

	kept := make([]string, 0, len(matches))
	for _, m := range matches {
		if l.gitIgnore != nil {
			if rel, err := filepath.Rel(l.root, m); err == nil && l.gitIgnore.MatchesPath(filepath.ToSlash(rel)) {
				continue
			}
		}
		kept = append(kept, m)
	}
	return kept
}

// report records an issue positioned at the first occurrence of needle at or
// after fromLine (1-based) and returns the line it was found on. An empty rule
// only locates the needle.
func (l *linter) report(rule, severity, text, needle string, fromLine int) int {
	line, col, sourceLine := l.locate(needle, fromLine)
	if rule == "" {
		return line
	}

	issue := Issue{
		FromLinter: LinterName,
		Rule:       rule,
		Text:       text,
		Severity:   severity,
		Pos: IssuePos{
			Filename: l.source,
			Line:     line,
			Column:   col,
		},
	}
	if sourceLine != "" {
		issue.SourceLines = []string{sourceLine}
	}
	l.result.Issues = append(l.result.Issues, issue)
	return line
}

func (l *linter) locate(needle string, fromLine int) (line, col int, text string) {
	if needle == "" {
		return 0, 0, ""
	}
	start := fromLine - 1
	if start < 0 {
		start = 0
	}
	for i := start; i < len(l.lines); i++ {
		if idx := strings.Index(l.lines[i], needle); idx >= 0 {
			return i + 1, idx + 1, strings.TrimRight(l.lines[i], "\r")
		}
	}
	return 0, 0, ""
}

// escapesRoot reports whether a relative pattern climbs above the root.
func escapesRoot(pattern string) bool {
	if filepath.IsAbs(pattern) {
		return false
	}
	cleaned := path.Clean(filepath.ToSlash(pattern))
	return cleaned == ".." || strings.HasPrefix(cleaned, "../")
}
