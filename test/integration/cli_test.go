package integration

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"boxfmt/test"
)

func TestCLICommands(t *testing.T) {
	tests := []test.TestCase{
		{
			Name:  "indent from stdin",
			Args:  []string{"indent"},
			Stdin: "{a=1,b=2}",
			Stdout: `{
  a = 1,
  b = 2
}`,
		},
		{
			Name:  "unwrapped root",
			Args:  []string{"indent"},
			Stdin: "a=1, b",
			Stdout: `{
  a = 1,
  b
}`,
		},
		{
			Name:  "box two leaves",
			Args:  []string{"box"},
			Stdin: "{a=1,b=2}",
			Stdout: `================
|              |
|   a = 1      |
|              |
|   b = 2      |
|              |
================`,
		},
		{
			Name:     "check rejects a mismatched closer",
			Args:     []string{"check"},
			Stdin:    "{a=(b=1})",
			ExitCode: 1,
			Stderr:   "✗ expected ')' to close '('",
		},
		{
			Name:     "diff flags unformatted input",
			Args:     []string{"diff"},
			Stdin:    "{a=1}",
			ExitCode: 1,
			Stderr:   "input differs from its indent rendering",
		},
		{
			Name:     "unknown command",
			Args:     []string{"paint"},
			ExitCode: 2,
			Stderr:   "boxfmt: error:",
		},
		{
			Name:   "version",
			Args:   []string{"version"},
			Stdout: "boxfmt 0.4.0",
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.Name, func(t *testing.T) {
			test.RunCLITest(t, testCase)
		})
	}
}

func TestCLITestData(t *testing.T) {
	files, err := filepath.Glob(filepath.Join("testdata", "*.box"))
	if err != nil {
		t.Fatal(err)
	}
	if len(files) == 0 {
		t.Fatal("no testdata files found")
	}

	for _, file := range files {
		content, err := test.LoadTestDataFile(filepath.Base(file))
		if err != nil {
			t.Fatalf("Failed to load %s: %v", file, err)
		}
		testCase := test.ParseTestCase(content)
		if testCase.Name == "" {
			testCase.Name = strings.TrimSuffix(filepath.Base(file), ".box")
		}
		t.Run(testCase.Name, func(t *testing.T) {
			test.RunCLITest(t, *testCase)
		})
	}
}

func TestCLIFileInputs(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.box")
	if err := os.WriteFile(path, []byte("(x, y)"), 0644); err != nil {
		t.Fatalf("Failed to write input: %v", err)
	}

	test.RunCLITest(t, test.TestCase{
		Name: "file argument",
		Args: []string{"indent", path},
		Stdout: `(
  x,
  y
)`,
	})

	test.RunCLITest(t, test.TestCase{
		Name:     "missing file",
		Args:     []string{"box", filepath.Join(dir, "missing.box")},
		ExitCode: 1,
		Stderr:   "missing.box",
	})
}
