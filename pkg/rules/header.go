package rules

import (
	"strings"

	"github.com/dkoosis/checkup/pkg/scan"
)

const headerWindow = 10

// FileHeaderRule checks that a comment appears near the top of every source
// and header file. Any line in the first ten that starts with // or /* after
// trimming leading whitespace counts.
func FileHeaderRule() Rule {
	return Rule{
		ID:       "file-header",
		Scope:    ScopeFile,
		Severity: SeverityWarning,
		Match:    isCppFile,
		CheckFile: func(f scan.FileInfo, content []byte) []Issue {
			lines := splitLines(content)
			if len(lines) > headerWindow {
				lines = lines[:headerWindow]
			}
			for _, line := range lines {
				trimmed := strings.TrimLeft(line, " \t")
				if strings.HasPrefix(trimmed, "//") || strings.HasPrefix(trimmed, "/*") {
					return nil
				}
			}
			return []Issue{{
				Path:        f.Path,
				Line:        1,
				Category:    CategoryDocumentation,
				Severity:    SeverityWarning,
				Description: "missing file header comment",
			}}
		},
	}
}

func splitLines(content []byte) []string {
	return strings.Split(string(content), "\n")
}
