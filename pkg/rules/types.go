// Package rules defines the issue model and the compliance rule catalogue.
//
// A rule is a value, not a subclass: a record holding a scope tag, a default
// severity, and evaluation functions. Rules are pure and stateless; every
// invocation is self-contained and safe to run concurrently with others.
package rules

import (
	"github.com/dkoosis/checkup/pkg/scan"
)

// Severity classifies how serious an issue is.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// Rank orders severities from most to least severe. Unknown severities sort
// last.
func (s Severity) Rank() int {
	switch s {
	case SeverityError:
		return 0
	case SeverityWarning:
		return 1
	case SeverityInfo:
		return 2
	}
	return 3
}

// Category identifies the kind of violation an issue records.
type Category string

const (
	CategoryNaming         Category = "naming"
	CategoryDocumentation  Category = "documentation"
	CategoryTesting        Category = "testing"
	CategoryStyle          Category = "style"
	CategoryIncludeGuard   Category = "include-guard"
	CategoryStructure      Category = "structure"
	CategoryContentPattern Category = "content-pattern"
	CategoryRuleFailure    Category = "rule-failure"
)

// Issue is a single recorded rule violation. It is a value: created once per
// violation and never mutated. Identity is (Path, Line, Category,
// Description); rules must not emit duplicates within one run.
type Issue struct {
	Path        string
	Line        int // 0 means the whole file
	Category    Category
	Description string
	Severity    Severity
}

// Scope tells the engine what input a rule needs.
type Scope int

const (
	// ScopeFile rules run once per successfully read file.
	ScopeFile Scope = iota
	// ScopeProject rules run exactly once, after the complete inventory is
	// available.
	ScopeProject
)

// Rule is a named, pure check producing zero or more issues.
type Rule struct {
	ID       string
	Scope    Scope
	Severity Severity

	// Match restricts which files a ScopeFile rule sees. Nil means every
	// scanned file.
	Match func(f scan.FileInfo) bool

	// Exactly one of CheckFile / CheckProject is set, per Scope.
	CheckFile    func(f scan.FileInfo, content []byte) []Issue
	CheckProject func(p *Project) []Issue
}

func isCppFile(f scan.FileInfo) bool {
	switch f.Ext {
	case ".cpp", ".cc", ".h", ".hpp":
		return true
	}
	return false
}

func isHeaderFile(f scan.FileInfo) bool {
	return f.Ext == ".h" || f.Ext == ".hpp"
}

func isCMakeFile(f scan.FileInfo) bool {
	return f.Base() == "CMakeLists.txt"
}
