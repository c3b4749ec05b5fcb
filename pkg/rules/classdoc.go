package rules

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/dkoosis/checkup/pkg/scan"
)

var declPattern = regexp.MustCompile(`^\s*(?:class|struct)\s+(\w+)`)

const docLookback = 5

// ClassDocRule checks that every class or struct declared in a header has a
// documentation comment within the five preceding lines. This is a pattern
// rule over unstructured text, not semantic analysis: a line that merely
// looks like a declaration is treated as one.
func ClassDocRule() Rule {
	return Rule{
		ID:       "class-doc",
		Scope:    ScopeFile,
		Severity: SeverityWarning,
		Match:    isHeaderFile,
		CheckFile: func(f scan.FileInfo, content []byte) []Issue {
			var issues []Issue
			lines := splitLines(content)
			for i, line := range lines {
				m := declPattern.FindStringSubmatch(line)
				if m == nil {
					continue
				}
				if hasDocComment(lines, i) {
					continue
				}
				issues = append(issues, Issue{
					Path:        f.Path,
					Line:        i + 1,
					Category:    CategoryDocumentation,
					Severity:    SeverityWarning,
					Description: fmt.Sprintf("%s lacks a documentation comment", m[1]),
				})
			}
			return issues
		},
	}
}

func hasDocComment(lines []string, decl int) bool {
	start := decl - docLookback
	if start < 0 {
		start = 0
	}
	for _, line := range lines[start:decl] {
		if strings.Contains(line, "/**") || strings.Contains(line, "@brief") {
			return true
		}
	}
	return false
}
