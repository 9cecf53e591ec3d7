package main

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var rtoolsBinary string

func TestMain(m *testing.M) {
	// Build the binary once for all tests
	tmpDir, err := os.MkdirTemp("", "rtools-e2e-*")
	if err != nil {
		panic("failed to create temp dir: " + err.Error())
	}

	rtoolsBinary = filepath.Join(tmpDir, "rtools")

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	cmd := exec.CommandContext(ctx, "go", "build", "-o", rtoolsBinary, ".")
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		cancel()
		os.RemoveAll(tmpDir)
		panic("failed to build rtools binary: " + err.Error())
	}
	cancel() // Call cancel explicitly before os.Exit

	code := m.Run()
	os.RemoveAll(tmpDir)
	os.Exit(code)
}

// runRtools runs the binary with an isolated HOME and the given stdin.
func runRtools(t *testing.T, workDir, stdin string, args ...string) (stdout, stderr string, code int) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	cmd := exec.CommandContext(ctx, rtoolsBinary, args...)
	cmd.Dir = workDir
	cmd.Stdin = strings.NewReader(stdin)
	cmd.Env = append(os.Environ(),
		"HOME="+t.TempDir(),
		"RTOOLS_CONFIG=",
		"RTOOLS_TEMPLATES=",
		"RTOOLS_EDITOR=",
		"NO_COLOR=1",
	)

	var outBuf, errBuf strings.Builder
	cmd.Stdout = &outBuf
	cmd.Stderr = &errBuf

	err := cmd.Run()
	var exitErr *exec.ExitError
	switch {
	case err == nil:
		code = 0
	case errors.As(err, &exitErr):
		code = exitErr.ExitCode()
	default:
		t.Fatalf("running rtools: %v", err)
	}

	return outBuf.String(), errBuf.String(), code
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestE2E_Component(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, ".Common", "index.js"), "")
	writeFile(t, filepath.Join(dir, "index.js"), "import {\n  Button\n} from './.Common';\n")

	stdout, stderr, code := runRtools(t, dir, "", "component", "--name", "Widget")
	require.Equal(t, 0, code, "stderr: %s", stderr)

	assert.FileExists(t, filepath.Join(dir, ".Common", "Widget", "Widget.jsx"))
	assert.FileExists(t, filepath.Join(dir, ".Common", "Widget", "index.js"))
	assert.FileExists(t, filepath.Join(dir, ".Common", "Widget", "styled.jsx"))
	assert.Contains(t, stdout, "Widget.jsx")

	data, err := os.ReadFile(filepath.Join(dir, "index.js"))
	require.NoError(t, err)
	assert.Equal(t, "import {\n  Button,\n  Widget,\n} from './.Common';\n", string(data))
}

func TestE2E_Container_NameFromStdin(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "index.js"), "")

	_, stderr, code := runRtools(t, dir, "Dashboard\n", "container", dir)
	require.Equal(t, 0, code, "stderr: %s", stderr)

	assert.FileExists(t, filepath.Join(dir, "Dashboard", "Dashboard.jsx"))
	assert.NoFileExists(t, filepath.Join(dir, "Dashboard", "styled.jsx"))
}

func TestE2E_Container_EmptyLineAcceptsDefault(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "index.js"), "")

	stdout, stderr, code := runRtools(t, dir, "\n", "container")
	require.Equal(t, 0, code, "stderr: %s", stderr)

	assert.Contains(t, stdout, "Name [NewContainer]: ")
	assert.FileExists(t, filepath.Join(dir, "NewContainer", "NewContainer.jsx"))

	data, err := os.ReadFile(filepath.Join(dir, "index.js"))
	require.NoError(t, err)
	assert.Equal(t, "\nexport {\n\tNewContainer\n} from './NewContainer';\n", string(data))
}

func TestE2E_NoInputCancels(t *testing.T) {
	dir := t.TempDir()

	_, stderr, code := runRtools(t, dir, "", "container")
	assert.Equal(t, 0, code)
	assert.Empty(t, stderr)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestE2E_AlreadyExists(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "Dashboard", "index.js"), "")

	_, stderr, code := runRtools(t, dir, "", "container", "--name", "Dashboard")
	assert.Equal(t, 6, code, "expected exit code 6 for an existing target")
	assert.Equal(t, 1, strings.Count(stderr, "Container already exists"), "reported once: %s", stderr)
}

func TestE2E_MissingBarrel(t *testing.T) {
	dir := t.TempDir()

	_, stderr, code := runRtools(t, dir, "", "container", "--name", "Dashboard")
	assert.Equal(t, 5, code, "expected exit code 5 for a missing barrel")
	assert.Contains(t, stderr, "index.js")
	assert.DirExists(t, filepath.Join(dir, "Dashboard"), "no rollback")
}

func TestE2E_Version(t *testing.T) {
	stdout, stderr, code := runRtools(t, t.TempDir(), "", "version")
	require.Equal(t, 0, code, "stderr: %s", stderr)
	assert.Contains(t, stdout, "rtools:")
}

func TestE2E_Help(t *testing.T) {
	stdout, stderr, code := runRtools(t, t.TempDir(), "", "--help")
	require.Equal(t, 0, code, "stderr: %s", stderr)

	for _, sub := range []string{"component", "container", "templates", "config", "version"} {
		assert.Contains(t, stdout, sub)
	}
}
