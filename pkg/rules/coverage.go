package rules

import (
	"fmt"
	"sort"
	"strings"
)

// CoverageSummary describes test coverage by naming convention: a source
// module counts as tested when a test_<stem> file exists under the test
// root.
type CoverageSummary struct {
	SourceModules int
	TestedModules int
	Missing       []string // sorted stems with no matching test
	Threshold     float64  // percent
}

// Ratio is the covered fraction, 1.0 when there are no source modules.
func (c CoverageSummary) Ratio() float64 {
	if c.SourceModules == 0 {
		return 1.0
	}
	return float64(c.TestedModules) / float64(c.SourceModules)
}

// Percent is Ratio scaled to 0-100.
func (c CoverageSummary) Percent() float64 {
	return c.Ratio() * 100
}

// Pass reports whether coverage meets the threshold. This gates the lint
// verdict independently of the per-module warnings.
func (c CoverageSummary) Pass() bool {
	return c.Percent() >= c.Threshold
}

// MeasureCoverage computes the summary for the inventory. It is pure: the
// coverage rule and the verdict both derive from the same computation.
func MeasureCoverage(p *Project, opts Options) CoverageSummary {
	opts = opts.withDefaults()

	source := map[string]bool{}
	tested := map[string]bool{}
	srcPrefix := opts.SourceRoot + "/"
	testPrefix := opts.TestRoot + "/"

	for _, f := range p.Files {
		switch f.Ext {
		case ".cpp", ".cc":
		default:
			continue
		}
		stem := f.Stem()
		if strings.HasPrefix(f.Path, srcPrefix) && stem != opts.EntryPoint {
			source[stem] = true
		}
		if strings.HasPrefix(f.Path, testPrefix) && strings.HasPrefix(stem, "test_") {
			tested[strings.TrimPrefix(stem, "test_")] = true
		}
	}

	sum := CoverageSummary{SourceModules: len(source), Threshold: opts.CoverageThreshold}
	for stem := range source {
		if tested[stem] {
			sum.TestedModules++
		} else {
			sum.Missing = append(sum.Missing, stem)
		}
	}
	sort.Strings(sum.Missing)
	return sum
}

// CoverageRule emits one warning per source module with no matching test
// file.
func CoverageRule(opts Options) Rule {
	return Rule{
		ID:       "test-coverage",
		Scope:    ScopeProject,
		Severity: SeverityWarning,
		CheckProject: func(p *Project) []Issue {
			sum := MeasureCoverage(p, opts)
			issues := make([]Issue, 0, len(sum.Missing))
			for _, stem := range sum.Missing {
				issues = append(issues, Issue{
					Path:        opts.withDefaults().SourceRoot + "/" + stem,
					Category:    CategoryTesting,
					Severity:    SeverityWarning,
					Description: fmt.Sprintf("module %s has no unit test", stem),
				})
			}
			return issues
		},
	}
}
