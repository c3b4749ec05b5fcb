package engine

import (
	"sync"

	"github.com/dkoosis/checkup/pkg/rules"
)

// collector accumulates issues from concurrent rule invocations. It is the
// only shared mutable state in a run and is created fresh per run; nothing
// persists between runs.
type collector struct {
	mu     sync.Mutex
	issues []rules.Issue
}

func newCollector() *collector {
	return &collector{}
}

func (c *collector) Add(issues ...rules.Issue) {
	if len(issues) == 0 {
		return
	}
	c.mu.Lock()
	c.issues = append(c.issues, issues...)
	c.mu.Unlock()
}

func (c *collector) Issues() []rules.Issue {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.issues
}
