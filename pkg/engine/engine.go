// Package engine runs the rule catalogue over a scanned tree.
//
// Per-file rules are pure functions of file content, so they run in a
// bounded worker pool. Whole-project rules run strictly after the scan and
// all per-file work complete; their correctness depends on seeing the full
// inventory, never a partial one.
package engine

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/dkoosis/checkup/pkg/rules"
	"github.com/dkoosis/checkup/pkg/scan"
)

// Engine dispatches each rule to its required scope and isolates rule
// failures: a single malformed file or panicking rule never aborts the run.
type Engine struct {
	Rules []rules.Rule
	// Workers bounds per-file concurrency. Zero means GOMAXPROCS.
	Workers int
}

// New creates an engine for the given catalogue.
func New(catalogue []rules.Rule) *Engine {
	return &Engine{Rules: catalogue}
}

// Run scans the tree and evaluates every rule, returning the complete
// inventory and the accumulated issues. The only fatal failure is a missing
// or unreadable root; unreadable files are silently excluded.
func (e *Engine) Run(ctx context.Context, sc *scan.Scanner) (*rules.Project, []rules.Issue, error) {
	col := newCollector()

	workers := e.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	var files []scan.FileInfo
	var fatal error
	pool, pctx := errgroup.WithContext(ctx)
	pool.SetLimit(workers)
	for f, err := range sc.Files() {
		if err != nil {
			fatal = err
			break
		}
		files = append(files, f)
		pool.Go(func() error {
			if pctx.Err() != nil {
				return pctx.Err()
			}
			e.checkFile(sc, f, col)
			return nil
		})
	}
	if err := pool.Wait(); err != nil && fatal == nil {
		fatal = err
	}
	if fatal != nil {
		return nil, nil, fatal
	}

	// Barrier: the inventory is now complete and final.
	project := rules.NewProject(sc.Root, files, sc.ReadText)
	for _, r := range e.Rules {
		if r.Scope != rules.ScopeProject {
			continue
		}
		col.Add(evalProject(r, project)...)
	}

	return project, col.Issues(), nil
}

func (e *Engine) checkFile(sc *scan.Scanner, f scan.FileInfo, col *collector) {
	content, err := sc.ReadText(f)
	if err != nil {
		// Unreadable or binary: excluded from all rule evaluation.
		return
	}
	for _, r := range e.Rules {
		if r.Scope != rules.ScopeFile {
			continue
		}
		if r.Match != nil && !r.Match(f) {
			continue
		}
		col.Add(evalFile(r, f, content)...)
	}
}

// evalFile isolates a panicking rule to a single rule-failure issue for the
// (rule, file) pair.
func evalFile(r rules.Rule, f scan.FileInfo, content []byte) (issues []rules.Issue) {
	defer func() {
		if rec := recover(); rec != nil {
			issues = []rules.Issue{ruleFailure(r.ID, f.Path, rec)}
		}
	}()
	return r.CheckFile(f, content)
}

func evalProject(r rules.Rule, p *rules.Project) (issues []rules.Issue) {
	defer func() {
		if rec := recover(); rec != nil {
			issues = []rules.Issue{ruleFailure(r.ID, ".", rec)}
		}
	}()
	return r.CheckProject(p)
}

func ruleFailure(ruleID, path string, rec any) rules.Issue {
	return rules.Issue{
		Path:        path,
		Category:    rules.CategoryRuleFailure,
		Severity:    rules.SeverityInfo,
		Description: fmt.Sprintf("rule %s failed: %v", ruleID, rec),
	}
}
