// Package integration runs the typereg binary end to end.
package integration

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
)

var (
	// typeregBin is the binary built by TestMain.
	typeregBin string
	buildErr   error
)

// BuildError wraps a build error with the compiler output.
type BuildError struct {
	Err    error
	Output string
}

func (e *BuildError) Error() string {
	return e.Err.Error() + ": " + e.Output
}

// FindProjectRoot walks up from the working directory to go.mod.
func FindProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", os.ErrNotExist
		}
		dir = parent
	}
}

// TestEnv is an isolated config and data directory pair.
type TestEnv struct {
	t       *testing.T
	Root    string
	Config  string
	DataDir string
}

// NewTestEnv creates a TestEnv whose config.yaml selects backend.
func NewTestEnv(t *testing.T, backend string) *TestEnv {
	t.Helper()

	if buildErr != nil {
		t.Fatalf("failed to build typereg: %v", buildErr)
	}
	if typeregBin == "" {
		t.Fatal("typereg binary not built")
	}

	root := t.TempDir()
	env := &TestEnv{
		t:       t,
		Root:    root,
		Config:  filepath.Join(root, "config"),
		DataDir: filepath.Join(root, "data"),
	}

	if err := os.MkdirAll(env.Config, 0o755); err != nil {
		t.Fatalf("failed to create config dir: %v", err)
	}
	content := "backend: " + backend + "\ndata_dir: " + env.DataDir + "\n"
	if err := os.WriteFile(filepath.Join(env.Config, "config.yaml"), []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return env
}

// CmdResult is the outcome of one typereg invocation.
type CmdResult struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// Run executes typereg with args against the environment's config dir.
func (e *TestEnv) Run(args ...string) CmdResult {
	e.t.Helper()

	cmd := exec.Command(typeregBin, append([]string{"--config-dir", e.Config}, args...)...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	exitCode := 0
	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			e.t.Fatalf("failed to run typereg: %v", err)
		}
		exitCode = exitErr.ExitCode()
	}

	return CmdResult{Stdout: stdout.String(), Stderr: stderr.String(), ExitCode: exitCode}
}

// MustRun executes typereg and fails the test on a non-zero exit.
func (e *TestEnv) MustRun(args ...string) CmdResult {
	e.t.Helper()
	result := e.Run(args...)
	if result.ExitCode != 0 {
		e.t.Fatalf("typereg %v failed with exit code %d:\nstdout: %s\nstderr: %s",
			args, result.ExitCode, result.Stdout, result.Stderr)
	}
	return result
}

// ParseJSON decodes command output into T.
func ParseJSON[T any](t *testing.T, s string) T {
	t.Helper()
	var v T
	if err := json.Unmarshal([]byte(s), &v); err != nil {
		t.Fatalf("failed to parse JSON %q: %v", s, err)
	}
	return v
}

// ReadJSONLFile decodes every line of a JSONL file.
func ReadJSONLFile[T any](t *testing.T, path string) []T {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("failed to open %s: %v", path, err)
	}
	defer f.Close()

	var out []T
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if len(scanner.Bytes()) == 0 {
			continue
		}
		var v T
		if err := json.Unmarshal(scanner.Bytes(), &v); err != nil {
			t.Fatalf("failed to parse line in %s: %v", path, err)
		}
		out = append(out, v)
	}
	if err := scanner.Err(); err != nil {
		t.Fatalf("failed to scan %s: %v", path, err)
	}
	return out
}

// Manifest returns the path of the sample manifest.
func Manifest(t *testing.T) string {
	t.Helper()
	root, err := FindProjectRoot()
	if err != nil {
		t.Fatalf("find project root: %v", err)
	}
	return filepath.Join(root, "internal", "manifest", "testdata", "catalog.yaml")
}
