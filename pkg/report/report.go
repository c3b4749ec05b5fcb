// Package report aggregates issues into a rendered compliance report with a
// pass/fail verdict.
package report

import (
	"fmt"
	"io"
	"sort"

	"github.com/fatih/color"

	"github.com/dkoosis/checkup/pkg/rules"
)

// previewLimit bounds how many issues are listed per severity; the total
// count is always printed.
const previewLimit = 5

// Report is derived fresh from one run's issues; it is never partially
// updated.
type Report struct {
	Issues     []rules.Issue // sorted by (path, category, line, description)
	BySeverity map[rules.Severity]int
	ByCategory map[rules.Category]int

	// Coverage is set in lint mode only.
	Coverage *rules.CoverageSummary

	Pass bool
}

// Lint builds a lint-mode report: pass means no error-severity issues and
// coverage at or above threshold.
func Lint(issues []rules.Issue, coverage rules.CoverageSummary) Report {
	r := aggregate(issues)
	r.Coverage = &coverage
	r.Pass = r.BySeverity[rules.SeverityError] == 0 && coverage.Pass()
	return r
}

// Verify builds a verify-mode report with the stricter criterion: pass means
// zero issues of any severity.
func Verify(issues []rules.Issue) Report {
	r := aggregate(issues)
	r.Pass = len(r.Issues) == 0
	return r
}

func aggregate(issues []rules.Issue) Report {
	sorted := make([]rules.Issue, len(issues))
	copy(sorted, issues)
	sort.Slice(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if a.Path != b.Path {
			return a.Path < b.Path
		}
		if a.Category != b.Category {
			return a.Category < b.Category
		}
		if a.Line != b.Line {
			return a.Line < b.Line
		}
		return a.Description < b.Description
	})

	r := Report{
		Issues:     sorted,
		BySeverity: map[rules.Severity]int{},
		ByCategory: map[rules.Category]int{},
	}
	for _, is := range sorted {
		r.BySeverity[is.Severity]++
		r.ByCategory[is.Category]++
	}
	return r
}

var severityOrder = []rules.Severity{
	rules.SeverityError,
	rules.SeverityWarning,
	rules.SeverityInfo,
}

var (
	errorColor   = color.New(color.FgRed)
	warningColor = color.New(color.FgYellow)
	infoColor    = color.New(color.FgCyan)
	passColor    = color.New(color.FgGreen, color.Bold)
	failColor    = color.New(color.FgRed, color.Bold)
)

func severityColor(s rules.Severity) *color.Color {
	switch s {
	case rules.SeverityError:
		return errorColor
	case rules.SeverityWarning:
		return warningColor
	}
	return infoColor
}

func severityLabel(s rules.Severity) string {
	switch s {
	case rules.SeverityError:
		return "errors"
	case rules.SeverityWarning:
		return "warnings"
	}
	return "info"
}

// Render writes the human-readable report. Output is order-stable: two runs
// over an unchanged tree render identically.
func (r Report) Render(w io.Writer) {
	fmt.Fprintln(w, "compliance report")
	fmt.Fprintln(w, "=================")

	if len(r.Issues) == 0 {
		passColor.Fprintln(w, "no issues found")
	} else {
		for _, sev := range severityOrder {
			count := r.BySeverity[sev]
			if count == 0 {
				continue
			}
			severityColor(sev).Fprintf(w, "%s: %d\n", severityLabel(sev), count)

			shown := 0
			for _, is := range r.Issues {
				if is.Severity != sev {
					continue
				}
				fmt.Fprintf(w, "  %s  [%s] %s\n", formatLocation(is), is.Category, is.Description)
				shown++
				if shown == previewLimit {
					break
				}
			}
			if count > previewLimit {
				fmt.Fprintf(w, "  ... and %d more\n", count-previewLimit)
			}
		}

		fmt.Fprintf(w, "by category:%s\n", categoryCounts(r.ByCategory))
		fmt.Fprintf(w, "total: %d issue(s)\n", len(r.Issues))
	}

	if r.Coverage != nil {
		c := r.Coverage
		fmt.Fprintf(w, "test coverage: %.1f%% (%d/%d modules), threshold %.0f%%\n",
			c.Percent(), c.TestedModules, c.SourceModules, c.Threshold)
	}

	if r.Pass {
		passColor.Fprintln(w, "PASS")
	} else {
		failColor.Fprintln(w, "FAIL")
	}
}

func formatLocation(is rules.Issue) string {
	if is.Line > 0 {
		return fmt.Sprintf("%s:%d", is.Path, is.Line)
	}
	return is.Path
}

func categoryCounts(counts map[rules.Category]int) string {
	keys := make([]string, 0, len(counts))
	for c := range counts {
		keys = append(keys, string(c))
	}
	sort.Strings(keys)

	out := ""
	for _, k := range keys {
		out += fmt.Sprintf(" %s=%d", k, counts[rules.Category(k)])
	}
	return out
}
