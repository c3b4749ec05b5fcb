// Package scaffold generates the skeleton for a new source module: header,
// source stub, CMake fragment, and a unit test. Generated files follow the
// same conventions the lint catalogue checks, so a fresh module starts
// clean.
package scaffold

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

var namePattern = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)

// Create writes the module skeleton under root and returns the created
// paths, root-relative. It refuses to overwrite an existing module.
func Create(root, name string) ([]string, error) {
	if !namePattern.MatchString(name) {
		return nil, fmt.Errorf("module name %q must be lower_snake_case", name)
	}

	moduleDir := filepath.Join(root, "src", name)
	if _, err := os.Stat(moduleDir); err == nil {
		return nil, fmt.Errorf("module %s already exists", name)
	}
	testDir := filepath.Join(root, "tests", "unit", name)

	for _, dir := range []string{moduleDir, testDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create directory: %w", err)
		}
	}

	files := []struct {
		path    string
		content string
	}{
		{filepath.Join(moduleDir, name+".h"), headerContent(name)},
		{filepath.Join(moduleDir, name+".cpp"), sourceContent(name)},
		{filepath.Join(moduleDir, "CMakeLists.txt"), cmakeContent(name)},
		{filepath.Join(testDir, "test_"+name+".cpp"), testContent(name)},
	}

	created := make([]string, 0, len(files))
	for _, f := range files {
		if err := os.WriteFile(f.path, []byte(f.content), 0o644); err != nil {
			return nil, fmt.Errorf("write %s: %w", f.path, err)
		}
		rel, err := filepath.Rel(root, f.path)
		if err != nil {
			rel = f.path
		}
		created = append(created, filepath.ToSlash(rel))
	}

	return created, nil
}

// className converts lower_snake_case to CamelCase.
func className(name string) string {
	parts := strings.Split(name, "_")
	for i, p := range parts {
		if p == "" {
			continue
		}
		parts[i] = strings.ToUpper(p[:1]) + p[1:]
	}
	return strings.Join(parts, "")
}

func guardName(name string) string {
	return "FASTQTOOLS_" + strings.ToUpper(name) + "_H"
}

func headerContent(name string) string {
	guard := guardName(name)
	class := className(name)
	return fmt.Sprintf(`#ifndef %s
#define %s

// %s module public interface.

#include <string>

namespace fq::%s {

/**
 * @brief Entry point of the %s module.
 */
class %s {
public:
    %s() = default;
    virtual ~%s() = default;

    bool initialize();
    std::string name() const;
};

} // namespace fq::%s

#endif // %s
`, guard, guard, name, name, name, class, class, class, name, guard)
}

func sourceContent(name string) string {
	class := className(name)
	return fmt.Sprintf(`// %s module implementation.

#include "%s/%s.h"

namespace fq::%s {

bool %s::initialize() {
    return true;
}

std::string %s::name() const {
    return "%s";
}

} // namespace fq::%s
`, name, name, name, name, class, class, name, name)
}

func cmakeContent(name string) string {
	upper := strings.ToUpper(name)
	return fmt.Sprintf(`# %s module

set(%s_SOURCES
    %s.cpp
)

add_library(fastq_%s STATIC ${%s_SOURCES})

set_target_properties(fastq_%s PROPERTIES
    CXX_STANDARD 20
    CXX_STANDARD_REQUIRED ON
)

target_include_directories(fastq_%s
    PUBLIC
        ${CMAKE_SOURCE_DIR}/src
)
`, name, upper, name, name, upper, name, name)
}

func testContent(name string) string {
	class := className(name)
	return fmt.Sprintf(`// Unit tests for the %s module.

#include "%s/%s.h"

#include <gtest/gtest.h>

TEST(%sTest, Initializes) {
    fq::%s::%s module;
    EXPECT_TRUE(module.initialize());
    EXPECT_EQ(module.name(), "%s");
}
`, name, name, name, class, name, class, name)
}
