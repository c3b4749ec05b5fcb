package rules

import (
	"fmt"
	"regexp"

	"github.com/dkoosis/checkup/pkg/scan"
)

var stemPattern = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)

// NamingRule checks that source and header file stems are lowercase
// snake_case: a letter followed by letters, digits, or underscores.
func NamingRule() Rule {
	return Rule{
		ID:       "naming",
		Scope:    ScopeFile,
		Severity: SeverityWarning,
		Match:    isCppFile,
		CheckFile: func(f scan.FileInfo, _ []byte) []Issue {
			if stemPattern.MatchString(f.Stem()) {
				return nil
			}
			return []Issue{{
				Path:        f.Path,
				Category:    CategoryNaming,
				Severity:    SeverityWarning,
				Description: fmt.Sprintf("file name %s does not follow lower_snake_case", f.Base()),
			}}
		},
	}
}
