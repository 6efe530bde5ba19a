package twconfig

import (
	"bufio"
	"os"
	"regexp"
	"strings"
)

// classRef is a class attribute value found in a content file
type classRef struct {
	File   string
	Line   int
	Column int    // 1-based column of the first class
	Value  string // "tw-flex hover:tw-underline"
}

// classPatterns find class lists in templates, ordered from most to least
// specific. The first submatch is the class list.
var classPatterns = []*regexp.Regexp{
	regexp.MustCompile(`class(?:Name)?=\{\s*"([^"]*)"`),           // templ/JSX: class={ "..." }
	regexp.MustCompile(`class(?:Name)?=\{\s*` + "`([^`]*)`"),      // JSX template literal
	regexp.MustCompile(`(?:^|[\s<])class(?:Name)?="([^"]*)"`),     // class="..."
	regexp.MustCompile(`(?:^|[\s<])class(?:Name)?='([^']*)'`),     // class='...'
	regexp.MustCompile(`templ\.Classes\(\s*"([^"]*)"`),            // templ.Classes("...")
	regexp.MustCompile(`(?:clsx|classNames|cn)\(\s*["']([^"']*)`), // clsx("...")
}

// maxScanLine bounds a single line of a content file; minified bundles are
// usually matched by accident and longer lines are skipped.
const maxScanLine = 1 << 20

// scanClasses returns the class attribute values of a content file.
func scanClasses(path string) ([]classRef, error) {
	// #nosec G304 - path comes from the configuration's own content globs
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var refs []classRef
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), maxScanLine)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		refs = append(refs, extractClasses(scanner.Text(), lineNum, path)...)
	}
	if err := scanner.Err(); err != nil {
		return refs, err
	}
	return refs, nil
}

// extractClasses finds every class list on a line. A list matched by a more
// specific pattern is not reported again by a later one.
func extractClasses(line string, lineNum int, file string) []classRef {
	var refs []classRef
	taken := make(map[int]bool)

	for _, re := range classPatterns {
		for _, m := range re.FindAllStringSubmatchIndex(line, -1) {
			start, end := m[2], m[3]
			if taken[start] {
				continue
			}
			taken[start] = true

			value := line[start:end]
			if strings.TrimSpace(value) == "" {
				continue
			}
			refs = append(refs, classRef{
				File:   file,
				Line:   lineNum,
				Column: findClassColumn(line, start, value),
				Value:  value,
			})
		}
	}
	return refs
}

// findClassColumn returns the 1-based column of the first class of a list that
// starts at offset start within line.
func findClassColumn(line string, start int, value string) int {
	tokens := strings.Fields(value)
	if len(tokens) == 0 {
		return start + 1
	}
	if idx := strings.Index(line[start:], tokens[0]); idx >= 0 {
		return start + idx + 1
	}
	return start + 1
}

// hasPrefix reports whether a utility class carries the configured prefix.
// Variants ("hover:", "md:") come before the prefix, important ("!") and
// negative ("-") markers before the prefix as well.
func hasPrefix(class, prefix string) bool {
	if i := strings.LastIndex(class, ":"); i >= 0 {
		class = class[i+1:]
	}
	class = strings.TrimPrefix(class, "!")
	class = strings.TrimPrefix(class, "-")
	return strings.HasPrefix(class, prefix)
}
