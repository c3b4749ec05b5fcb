package verify

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the structural manifest and the deprecated content patterns.
// Both are static data: nothing here is discovered from the tree.
type Config struct {
	// ExpectedPaths are root-relative directories and files that must exist
	// after the migration.
	ExpectedPaths []string `yaml:"expected_paths"`
	// DeprecatedPatterns are substrings that must not appear in any scanned
	// file.
	DeprecatedPatterns []string `yaml:"deprecated_patterns"`
}

// DefaultConfig returns the built-in manifest for the post-migration layout.
func DefaultConfig() Config {
	return Config{
		ExpectedPaths: []string{
			"src/common",
			"src/fastq",
			"src/statistics",
			"src/encoder",
			"src/processing",
			"app/commands",
			"tests/unit",
			"tests/integration",
			"tests/fixtures",
			"tests/utils",
			"docs/user-guide",
			"docs/developer-guide",
			"docs/api",
			"scripts",
			"tools/benchmarks",
			"tools/generators",
			"tools/validators",
			"examples/basic-usage",
			"examples/advanced",
			"config",
			"CMakeLists.txt",
			"tests/CMakeLists.txt",
			"tests/utils/test_helpers.h",
			"tests/utils/test_helpers.cpp",
			"scripts/build.sh",
			"scripts/test.sh",
			"scripts/format.sh",
			"scripts/dev.sh",
		},
		DeprecatedPatterns: []string{
			`#include "Common/`,
			`#include "FastQ/`,
			`#include "FqStatistic/`,
			`#include "Encoder/`,
			`#include "Processing/`,
			`#include "Commands/`,
		},
	}
}

// LoadConfig reads a YAML config file. Fields left empty fall back to the
// built-in defaults, so a config may override just one of the two sets.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	defaults := DefaultConfig()
	if len(cfg.ExpectedPaths) == 0 {
		cfg.ExpectedPaths = defaults.ExpectedPaths
	}
	if len(cfg.DeprecatedPatterns) == 0 {
		cfg.DeprecatedPatterns = defaults.DeprecatedPatterns
	}
	return cfg, nil
}
