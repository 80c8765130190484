package test

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"testing"
)

// TestCase represents a single boxfmt invocation
type TestCase struct {
	Name     string   // Test name
	Args     []string // Command line arguments
	Stdin    string   // Notation fed on stdin
	ExitCode int      // Expected exit code
	Stdout   string   // Expected stdout content
	Stderr   string   // Expected stderr content
}

var (
	buildOnce sync.Once
	binPath   string
	buildErr  error
)

// binary builds cmd/boxfmt once per test process and returns its path.
func binary(t *testing.T) string {
	t.Helper()

	buildOnce.Do(func() {
		wd, err := os.Getwd()
		if err != nil {
			buildErr = fmt.Errorf("getting working directory: %w", err)
			return
		}

		projectRoot := wd
		for {
			if _, err := os.Stat(filepath.Join(projectRoot, "go.mod")); err == nil {
				break
			}
			parent := filepath.Dir(projectRoot)
			if parent == projectRoot {
				buildErr = fmt.Errorf("could not locate project root from %s", wd)
				return
			}
			projectRoot = parent
		}

		dir, err := os.MkdirTemp("", "boxfmt-test")
		if err != nil {
			buildErr = err
			return
		}
		binPath = filepath.Join(dir, "boxfmt")
		buildCmd := exec.Command("go", "build", "-o", binPath, "./cmd/boxfmt")
		buildCmd.Dir = projectRoot
		if output, err := buildCmd.CombinedOutput(); err != nil {
			buildErr = fmt.Errorf("%v\nOutput: %s", err, output)
		}
	})

	if buildErr != nil {
		t.Fatalf("Failed to build boxfmt binary: %v", buildErr)
	}
	return binPath
}

// RunCLITest executes boxfmt and validates the results
func RunCLITest(t *testing.T, testCase TestCase) {
	t.Helper()

	cmd := exec.Command(binary(t), testCase.Args...)
	cmd.Dir = t.TempDir()
	cmd.Env = append(os.Environ(), "HOME="+cmd.Dir)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	cmd.Stdin = strings.NewReader(testCase.Stdin)

	err := cmd.Run()

	exitCode := 0
	if err != nil {
		if exitError, ok := err.(*exec.ExitError); ok {
			exitCode = exitError.ExitCode()
		} else {
			t.Fatalf("Failed to execute boxfmt: %v", err)
		}
	}

	if exitCode != testCase.ExitCode {
		t.Errorf("Expected exit code %d, got %d\nStderr: %s", testCase.ExitCode, exitCode, stderr.String())
	}

	if testCase.Stdout != "" {
		actualStdout := strings.TrimSpace(stdout.String())
		expectedStdout := strings.TrimSpace(testCase.Stdout)
		if actualStdout != expectedStdout {
			t.Errorf("Stdout mismatch:\nExpected:\n%s\n\nActual:\n%s", expectedStdout, actualStdout)
		}
	}

	if testCase.Stderr != "" {
		actualStderr := strings.TrimSpace(stderr.String())
		expectedStderr := strings.TrimSpace(testCase.Stderr)
		if !strings.Contains(actualStderr, expectedStderr) {
			t.Errorf("Stderr mismatch:\nExpected to contain:\n%s\n\nActual:\n%s", expectedStderr, actualStderr)
		}
	}

	if testing.Verbose() {
		fmt.Printf("=== Test: %s ===\n", testCase.Name)
		fmt.Printf("Exit Code: %d\n", exitCode)
		fmt.Printf("Stdout:\n%s\n", stdout.String())
		fmt.Printf("Stderr:\n%s\n", stderr.String())
		fmt.Println("=================")
	}
}

// LoadTestDataFile loads a test file from testdata directory
func LoadTestDataFile(filename string) (string, error) {
	content, err := os.ReadFile(filepath.Join("testdata", filename))
	if err != nil {
		return "", err
	}
	return string(content), nil
}

// ParseTestCase parses a test case from a structured comment format. Lines
// outside the directives become stdin. Expected output lines are written
// after "#|" so their leading spaces survive.
func ParseTestCase(content string) *TestCase {
	lines := strings.Split(content, "\n")
	testCase := &TestCase{}

	var inputLines []string
	var mode string

	appendLine := func(dst *string, line string) {
		if *dst != "" {
			*dst += "\n"
		}
		*dst += line
	}

	for _, raw := range lines {
		line := strings.TrimSpace(raw)

		switch {
		case strings.HasPrefix(line, "# TEST:"):
			testCase.Name = strings.TrimSpace(strings.TrimPrefix(line, "# TEST:"))
		case strings.HasPrefix(line, "# EXPECT_EXIT:"):
			fmt.Sscanf(line, "# EXPECT_EXIT: %d", &testCase.ExitCode)
		case strings.HasPrefix(line, "# EXPECT_STDOUT:"):
			mode = "stdout"
		case strings.HasPrefix(line, "# EXPECT_STDERR:"):
			mode = "stderr"
		case strings.HasPrefix(line, "# ARGS:"):
			testCase.Args = strings.Fields(strings.TrimPrefix(line, "# ARGS:"))
		case strings.HasPrefix(line, "# END_"):
			mode = ""
		case strings.HasPrefix(line, "#|") && mode != "":
			content := strings.TrimPrefix(line, "#|")
			switch mode {
			case "stdout":
				appendLine(&testCase.Stdout, content)
			case "stderr":
				appendLine(&testCase.Stderr, content)
			}
		case strings.HasPrefix(line, "#"):
		default:
			inputLines = append(inputLines, raw)
		}
	}

	testCase.Stdin = strings.Join(inputLines, "\n")
	return testCase
}
