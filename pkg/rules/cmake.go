package rules

import (
	"regexp"
	"strings"

	"github.com/dkoosis/checkup/pkg/scan"
)

var upperCommandPattern = regexp.MustCompile(`^\s*[A-Z_]+\s*\(`)

// CMakeStyleRule checks CMakeLists.txt files for indentation that is not a
// multiple of four spaces and for all-uppercase commands.
func CMakeStyleRule() Rule {
	return Rule{
		ID:       "cmake-style",
		Scope:    ScopeFile,
		Severity: SeverityInfo,
		Match:    isCMakeFile,
		CheckFile: func(f scan.FileInfo, content []byte) []Issue {
			var issues []Issue
			for i, line := range splitLines(content) {
				trimmed := strings.TrimSpace(line)
				if trimmed == "" || strings.HasPrefix(trimmed, "#") {
					continue
				}

				if strings.HasPrefix(line, " ") {
					indent := len(line) - len(strings.TrimLeft(line, " "))
					if indent%4 != 0 {
						issues = append(issues, Issue{
							Path:        f.Path,
							Line:        i + 1,
							Category:    CategoryStyle,
							Severity:    SeverityInfo,
							Description: "indentation should be a multiple of 4 spaces",
						})
					}
				}

				if upperCommandPattern.MatchString(line) {
					issues = append(issues, Issue{
						Path:        f.Path,
						Line:        i + 1,
						Category:    CategoryStyle,
						Severity:    SeverityInfo,
						Description: "command should be lowercase",
					})
				}
			}
			return issues
		},
	}
}
