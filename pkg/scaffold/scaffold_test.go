package scaffold_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkoosis/checkup/pkg/engine"
	"github.com/dkoosis/checkup/pkg/report"
	"github.com/dkoosis/checkup/pkg/rules"
	"github.com/dkoosis/checkup/pkg/scaffold"
	"github.com/dkoosis/checkup/pkg/scan"
)

func TestCreate_GeneratesModuleSkeleton(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	created, err := scaffold.Create(root, "quality_trimmer")

	require.NoError(t, err)
	assert.ElementsMatch(t, []string{
		"src/quality_trimmer/quality_trimmer.h",
		"src/quality_trimmer/quality_trimmer.cpp",
		"src/quality_trimmer/CMakeLists.txt",
		"tests/unit/quality_trimmer/test_quality_trimmer.cpp",
	}, created)
}

func TestCreate_GeneratedModulePassesLint(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	_, err := scaffold.Create(root, "encoder")
	require.NoError(t, err)

	opts := rules.Options{}
	eng := engine.New(rules.Catalogue(opts))
	project, issues, err := eng.Run(context.Background(), scan.New(root))
	require.NoError(t, err)

	rep := report.Lint(issues, rules.MeasureCoverage(project, opts))
	assert.Empty(t, rep.Issues, "a fresh module must start clean")
	assert.True(t, rep.Pass)
}

func TestCreate_RejectsBadNamesAndDuplicates(t *testing.T) {
	t.Parallel()

	root := t.TempDir()

	_, err := scaffold.Create(root, "MyModule")
	require.Error(t, err, "module names must be lower_snake_case")

	_, err = scaffold.Create(root, "encoder")
	require.NoError(t, err)
	_, err = scaffold.Create(root, "encoder")
	require.Error(t, err, "existing modules must not be overwritten")
}
