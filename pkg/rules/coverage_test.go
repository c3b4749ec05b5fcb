package rules_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkoosis/checkup/pkg/rules"
	"github.com/dkoosis/checkup/pkg/scan"
)

func project(paths ...string) *rules.Project {
	files := make([]scan.FileInfo, 0, len(paths))
	for _, p := range paths {
		files = append(files, file(p))
	}
	return rules.NewProject("/project", files, func(scan.FileInfo) ([]byte, error) {
		return nil, nil
	})
}

func TestMeasureCoverage_ComputesRatioByNamingConvention(t *testing.T) {
	t.Parallel()

	t.Run("one of three modules tested, entry point excluded", func(t *testing.T) {
		t.Parallel()

		p := project(
			"src/a.cpp",
			"src/b.cpp",
			"src/c.cpp",
			"src/main.cpp",
			"tests/unit/test_a.cpp",
		)

		sum := rules.MeasureCoverage(p, rules.Options{})

		assert.Equal(t, 3, sum.SourceModules)
		assert.Equal(t, 1, sum.TestedModules)
		assert.InDelta(t, 33.3, sum.Percent(), 0.1)
		assert.Equal(t, []string{"b", "c"}, sum.Missing)
		assert.False(t, sum.Pass())
	})

	t.Run("empty source set counts as full coverage", func(t *testing.T) {
		t.Parallel()

		sum := rules.MeasureCoverage(project("docs/CMakeLists.txt"), rules.Options{})

		assert.Equal(t, 0, sum.SourceModules)
		assert.Equal(t, 100.0, sum.Percent())
		assert.True(t, sum.Pass())
	})

	t.Run("test files outside the test root do not count", func(t *testing.T) {
		t.Parallel()

		sum := rules.MeasureCoverage(project("src/a.cpp", "src/test_a.cpp"), rules.Options{})

		// src/test_a.cpp is a source module named test_a, not a test.
		assert.Equal(t, 2, sum.SourceModules)
		assert.Equal(t, 0, sum.TestedModules)
	})

	t.Run("nested test directories are included", func(t *testing.T) {
		t.Parallel()

		sum := rules.MeasureCoverage(project("src/encoder/encoder.cpp", "tests/unit/encoder/test_encoder.cpp"), rules.Options{})

		assert.Equal(t, 1, sum.TestedModules)
		assert.True(t, sum.Pass())
	})
}

func TestCoverageRule_EmitsOneWarningPerMissingModule(t *testing.T) {
	t.Parallel()

	rule := rules.CoverageRule(rules.Options{})
	p := project("src/a.cpp", "src/b.cpp", "src/c.cpp", "tests/unit/test_a.cpp")

	issues := rule.CheckProject(p)

	require.Len(t, issues, 2)
	assert.Contains(t, issues[0].Description, "b")
	assert.Contains(t, issues[1].Description, "c")
	for _, is := range issues {
		assert.Equal(t, rules.CategoryTesting, is.Category)
		assert.Equal(t, rules.SeverityWarning, is.Severity)
	}
}
