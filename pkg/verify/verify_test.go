package verify_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkoosis/checkup/pkg/rules"
	"github.com/dkoosis/checkup/pkg/verify"
)

func writeTree(t *testing.T, files map[string]string, dirs ...string) string {
	t.Helper()
	root := t.TempDir()
	for _, dir := range dirs {
		require.NoError(t, os.MkdirAll(filepath.Join(root, filepath.FromSlash(dir)), 0o755))
	}
	for rel, content := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
	return root
}

func compliantConfig() verify.Config {
	return verify.Config{
		ExpectedPaths:      []string{"src/common", "tests/unit", "scripts/build.sh"},
		DeprecatedPatterns: []string{`#include "Common/`},
	}
}

func compliantTree(t *testing.T) string {
	t.Helper()
	return writeTree(t, map[string]string{
		"scripts/build.sh": "#!/bin/sh\n",
		"src/common/a.cpp": "// a\n#include \"common/a.h\"\n",
	}, "src/common", "tests/unit")
}

func TestRun_PassesOnCompliantTree(t *testing.T) {
	t.Parallel()

	rep, err := verify.Run(context.Background(), compliantTree(t), compliantConfig())

	require.NoError(t, err)
	assert.Empty(t, rep.Issues)
	assert.True(t, rep.Pass)
}

func TestRun_OneStructureErrorPerMissingManifestPath(t *testing.T) {
	t.Parallel()

	root := compliantTree(t)
	require.NoError(t, os.RemoveAll(filepath.Join(root, "tests", "unit")))

	rep, err := verify.Run(context.Background(), root, compliantConfig())

	require.NoError(t, err)
	require.Len(t, rep.Issues, 1)
	assert.Equal(t, rules.CategoryStructure, rep.Issues[0].Category)
	assert.Equal(t, rules.SeverityError, rep.Issues[0].Severity)
	assert.Equal(t, "tests/unit", rep.Issues[0].Path)
	assert.False(t, rep.Pass, "a single missing path must flip the verdict")
}

func TestContentPatternRule_EmitsOneIssuePerFilePatternPair(t *testing.T) {
	t.Parallel()

	// The same deprecated include three times in one file.
	root := writeTree(t, map[string]string{
		"scripts/build.sh": "#!/bin/sh\n",
		"src/common/a.cpp": `#include "Common/x.h"
#include "Common/y.h"
#include "Common/z.h"
`,
	}, "src/common", "tests/unit")

	rep, err := verify.Run(context.Background(), root, compliantConfig())

	require.NoError(t, err)
	require.Len(t, rep.Issues, 1, "repeated occurrences collapse to one issue per (file, pattern)")
	assert.Equal(t, rules.CategoryContentPattern, rep.Issues[0].Category)
	assert.Equal(t, "src/common/a.cpp", rep.Issues[0].Path)
}

func TestContentPatternRule_SeparateIssuesForDistinctPatterns(t *testing.T) {
	t.Parallel()

	cfg := verify.Config{
		ExpectedPaths:      []string{"src"},
		DeprecatedPatterns: []string{`#include "Common/`, `#include "Encoder/`},
	}
	root := writeTree(t, map[string]string{
		"src/a.cpp": "#include \"Common/a.h\"\n#include \"Encoder/e.h\"\n",
	})

	rep, err := verify.Run(context.Background(), root, cfg)

	require.NoError(t, err)
	assert.Len(t, rep.Issues, 2)
}

func TestLoadConfig_OverridesAndDefaults(t *testing.T) {
	t.Parallel()

	t.Run("partial config falls back to default patterns", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "verify.yml")
		require.NoError(t, os.WriteFile(path, []byte("expected_paths:\n  - src/core\n"), 0o644))

		cfg, err := verify.LoadConfig(path)

		require.NoError(t, err)
		assert.Equal(t, []string{"src/core"}, cfg.ExpectedPaths)
		assert.Equal(t, verify.DefaultConfig().DeprecatedPatterns, cfg.DeprecatedPatterns)
	})

	t.Run("malformed YAML is an error", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "verify.yml")
		require.NoError(t, os.WriteFile(path, []byte("expected_paths: [unbalanced\n"), 0o644))

		_, err := verify.LoadConfig(path)
		require.Error(t, err)
	})

	t.Run("missing file is an error", func(t *testing.T) {
		t.Parallel()

		_, err := verify.LoadConfig(filepath.Join(t.TempDir(), "absent.yml"))
		require.Error(t, err)
	})
}

func TestDefaultConfig_CarriesMigrationManifest(t *testing.T) {
	t.Parallel()

	cfg := verify.DefaultConfig()

	assert.Contains(t, cfg.ExpectedPaths, "src/statistics")
	assert.Contains(t, cfg.ExpectedPaths, "scripts/build.sh")
	assert.Contains(t, cfg.DeprecatedPatterns, `#include "FqStatistic/`)
}
