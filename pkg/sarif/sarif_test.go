package sarif_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/dkoosis/checkup/pkg/sarif"
)

// failingWriter simulates a writer that fails after first write attempt.
type failingWriter struct{}

func (f failingWriter) Write(_ []byte) (int, error) {
	return 0, errors.New("write failure")
}

func TestNewLog_ReturnsInitializedLog_When_Created(t *testing.T) {
	t.Parallel()

	log := sarif.NewLog()

	if log.Version != sarif.Version {
		t.Fatalf("version mismatch: got %s", log.Version)
	}
	if log.Schema != "https://json.schemastore.org/sarif-2.1.0.json" {
		t.Fatalf("schema mismatch: got %s", log.Schema)
	}
	if log.Runs == nil || len(log.Runs) != 0 {
		t.Fatalf("runs slice should start initialized and empty, got %v", log.Runs)
	}
}

func TestFileLocation_OmitsRegion_When_LineIsZero(t *testing.T) {
	t.Parallel()

	whole := sarif.FileLocation("src/encoder.cpp", 0)
	if whole.PhysicalLocation.Region != nil {
		t.Fatalf("expected nil region for whole-file location")
	}

	lined := sarif.FileLocation("src/encoder.cpp", 12)
	if lined.PhysicalLocation.Region == nil || lined.PhysicalLocation.Region.StartLine != 12 {
		t.Fatalf("expected region with start line 12, got %+v", lined.PhysicalLocation.Region)
	}
}

func TestEncoder_HandlesEncodingScenarios_When_WritingLogs(t *testing.T) {
	t.Parallel()

	log := sarif.NewLog()
	log.Runs = append(log.Runs, sarif.Run{
		Tool: sarif.Tool{Driver: sarif.Driver{Name: "checkup-lint"}},
		Results: []sarif.Result{{
			RuleID:    "include-guard",
			Level:     "error",
			Message:   sarif.Message{Text: "header lacks an include guard"},
			Locations: []sarif.Location{sarif.FileLocation("src/fastq.h", 1)},
		}},
	})

	t.Run("error: writer failure is returned", func(t *testing.T) {
		t.Parallel()

		err := sarif.NewEncoder(failingWriter{}).Encode(log)
		if err == nil || !strings.Contains(err.Error(), "write failure") {
			t.Fatalf("expected write failure, got %v", err)
		}
	})

	t.Run("success: log is encoded with indentation", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if err := sarif.NewEncoder(&buf).Encode(log); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		output := buf.String()
		if !strings.Contains(output, "\n  \"version\"") {
			t.Fatalf("expected indented output, got %s", output)
		}
		if !strings.Contains(output, "\"ruleId\": \"include-guard\"") {
			t.Fatalf("expected rule id in output, got %s", output)
		}
	})
}
