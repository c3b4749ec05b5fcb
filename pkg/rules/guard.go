package rules

import (
	"strings"

	"github.com/dkoosis/checkup/pkg/scan"
)

// IncludeGuardRule checks that a header's first non-blank line starts an
// include guard. This is the only catalogue rule that reports at error
// severity: an unguarded header breaks builds, not just style.
func IncludeGuardRule() Rule {
	return Rule{
		ID:       "include-guard",
		Scope:    ScopeFile,
		Severity: SeverityError,
		Match:    isHeaderFile,
		CheckFile: func(f scan.FileInfo, content []byte) []Issue {
			for _, line := range splitLines(content) {
				trimmed := strings.TrimSpace(line)
				if trimmed == "" {
					continue
				}
				if strings.HasPrefix(trimmed, "#ifndef") || strings.HasPrefix(trimmed, "#pragma once") {
					return nil
				}
				break
			}
			return []Issue{{
				Path:        f.Path,
				Line:        1,
				Category:    CategoryIncludeGuard,
				Severity:    SeverityError,
				Description: "header lacks an include guard (#ifndef or #pragma once)",
			}}
		},
	}
}
