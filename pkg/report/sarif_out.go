package report

import (
	"github.com/dkoosis/checkup/pkg/rules"
	"github.com/dkoosis/checkup/pkg/sarif"
)

// ToSARIF converts the report into a SARIF log. Issue order is preserved
// from the sorted report, so SARIF output is as stable as the text form.
func (r Report) ToSARIF(tool string) *sarif.Log {
	run := sarif.Run{Tool: sarif.Tool{Driver: sarif.Driver{Name: tool}}}
	for _, is := range r.Issues {
		run.Results = append(run.Results, sarif.Result{
			RuleID:    string(is.Category),
			Level:     sarifLevel(is.Severity),
			Message:   sarif.Message{Text: is.Description},
			Locations: []sarif.Location{sarif.FileLocation(is.Path, is.Line)},
		})
	}

	log := sarif.NewLog()
	log.Runs = append(log.Runs, run)
	return log
}

func sarifLevel(s rules.Severity) string {
	switch s {
	case rules.SeverityError:
		return "error"
	case rules.SeverityWarning:
		return "warning"
	}
	return "note"
}
