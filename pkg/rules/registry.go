package rules

// Options configures the conventions the catalogue checks against.
type Options struct {
	SourceRoot        string  // source module root, default "src"
	TestRoot          string  // unit test root, default "tests/unit"
	EntryPoint        string  // stem excluded from coverage, default "main"
	CoverageThreshold float64 // percent, default 70
}

func (o Options) withDefaults() Options {
	if o.SourceRoot == "" {
		o.SourceRoot = "src"
	}
	if o.TestRoot == "" {
		o.TestRoot = "tests/unit"
	}
	if o.EntryPoint == "" {
		o.EntryPoint = "main"
	}
	if o.CoverageThreshold == 0 {
		o.CoverageThreshold = 70
	}
	return o
}

// Catalogue returns the lint-mode rules in evaluation order.
func Catalogue(opts Options) []Rule {
	return []Rule{
		NamingRule(),
		FileHeaderRule(),
		ClassDocRule(),
		CoverageRule(opts),
		CMakeStyleRule(),
		IncludeGuardRule(),
	}
}
