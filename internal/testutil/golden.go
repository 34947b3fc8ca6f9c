// Package testutil provides shared test helpers for golden file testing.
package testutil

import (
	"flag"
	"os"
	"path/filepath"
	"testing"
)

// Update is a flag that, when set, regenerates golden files from current output.
// Usage: go test ./... -update
var Update = flag.Bool("update", false, "update golden files")

// GenerateFunc turns the contents of a case's input file into an artifact.
type GenerateFunc func(input []byte) ([]byte, error)

// RunGolden runs a single golden file test in dir: it reads the input file,
// applies genFn and compares the result against the expected file.
func RunGolden(t *testing.T, dir, input, expected string, genFn GenerateFunc) {
	t.Helper()

	inputPath := filepath.Join(dir, input)
	expectedPath := filepath.Join(dir, expected)

	inputBytes, err := os.ReadFile(inputPath)
	if err != nil {
		t.Fatalf("failed to read %s: %v", inputPath, err)
	}

	actual, err := genFn(inputBytes)
	if err != nil {
		t.Fatalf("generate %s: %v", dir, err)
	}

	if *Update {
		if err := os.WriteFile(expectedPath, actual, 0o644); err != nil {
			t.Fatalf("failed to update golden file %s: %v", expectedPath, err)
		}
		t.Logf("updated golden file: %s", expectedPath)
		return
	}

	expectedBytes, err := os.ReadFile(expectedPath)
	if err != nil {
		t.Fatalf("failed to read %s: %v", expectedPath, err)
	}

	if string(actual) != string(expectedBytes) {
		t.Errorf("output mismatch for %s:\n--- expected\n%s\n--- actual\n%s", dir, expectedBytes, actual)
	}
}

// RunGoldenDir runs RunGolden as a subtest for every subdirectory of
// testdataDir.
func RunGoldenDir(t *testing.T, testdataDir, input, expected string, genFn GenerateFunc) {
	t.Helper()

	entries, err := os.ReadDir(testdataDir)
	if err != nil {
		t.Fatalf("failed to read testdata dir %s: %v", testdataDir, err)
	}

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		t.Run(entry.Name(), func(t *testing.T) {
			RunGolden(t, filepath.Join(testdataDir, entry.Name()), input, expected, genFn)
		})
	}
}
