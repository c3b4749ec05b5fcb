// Package verify implements the one-time migration check: required paths
// must exist and deprecated patterns must be gone. Unlike lint mode, any
// issue at all fails the run.
package verify

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dkoosis/checkup/pkg/engine"
	"github.com/dkoosis/checkup/pkg/report"
	"github.com/dkoosis/checkup/pkg/rules"
	"github.com/dkoosis/checkup/pkg/scan"
)

// Rules returns the verifier's whole-project rules, both error severity.
func Rules(cfg Config) []rules.Rule {
	return []rules.Rule{
		StructuralExistenceRule(cfg.ExpectedPaths),
		ContentPatternRule(cfg.DeprecatedPatterns),
	}
}

// StructuralExistenceRule asserts that each manifest path exists relative to
// the root; each missing entry is one structure error.
func StructuralExistenceRule(expected []string) rules.Rule {
	return rules.Rule{
		ID:       "structural-existence",
		Scope:    rules.ScopeProject,
		Severity: rules.SeverityError,
		CheckProject: func(p *rules.Project) []rules.Issue {
			var issues []rules.Issue
			for _, rel := range expected {
				if _, err := os.Stat(filepath.Join(p.Root, filepath.FromSlash(rel))); err != nil {
					issues = append(issues, rules.Issue{
						Path:        rel,
						Category:    rules.CategoryStructure,
						Severity:    rules.SeverityError,
						Description: fmt.Sprintf("required path %s is missing", rel),
					})
				}
			}
			return issues
		},
	}
}

// ContentPatternRule flags files containing deprecated substrings: exactly
// one error per (file, pattern) pair, no matter how often the pattern
// occurs within the file.
func ContentPatternRule(patterns []string) rules.Rule {
	return rules.Rule{
		ID:       "content-pattern",
		Scope:    rules.ScopeProject,
		Severity: rules.SeverityError,
		CheckProject: func(p *rules.Project) []rules.Issue {
			var issues []rules.Issue
			for _, f := range p.Files {
				content, err := p.Content(f)
				if err != nil {
					continue
				}
				for _, pat := range patterns {
					if bytes.Contains(content, []byte(pat)) {
						issues = append(issues, rules.Issue{
							Path:        f.Path,
							Category:    rules.CategoryContentPattern,
							Severity:    rules.SeverityError,
							Description: fmt.Sprintf("deprecated pattern %q found", pat),
						})
					}
				}
			}
			return issues
		},
	}
}

// Run executes the migration verification over root.
func Run(ctx context.Context, root string, cfg Config) (report.Report, error) {
	eng := engine.New(Rules(cfg))
	_, issues, err := eng.Run(ctx, scan.New(root))
	if err != nil {
		return report.Report{}, err
	}
	return report.Verify(issues), nil
}
