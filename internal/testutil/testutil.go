// Package testutil provides test helpers for rtools tests.
package testutil

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
)

// WriteFile creates a file with the given content under dir.
func WriteFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("failed to create parent dirs for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write file %s: %v", path, err)
	}
	return path
}

// ReadFile returns the content of a file, failing the test on error.
func ReadFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read file %s: %v", path, err)
	}
	return string(data)
}

// Snapshot maps every file under dir (slash-separated, relative) to its
// content. Directories are recorded with a trailing slash.
func Snapshot(t *testing.T, dir string) map[string]string {
	t.Helper()
	snap := make(map[string]string)
	err := filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil || rel == "." {
			return err
		}
		rel = filepath.ToSlash(rel)
		if d.IsDir() {
			snap[rel+"/"] = ""
			return nil
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		snap[rel] = string(data)
		return nil
	})
	if err != nil {
		t.Fatalf("failed to snapshot %s: %v", dir, err)
	}
	return snap
}

// FakePort is a scripted, recording interaction port.
type FakePort struct {
	mu sync.Mutex

	// Name is returned by PromptForName; Cancel makes the prompt dismissed.
	Name      string
	Cancel    bool
	PromptErr error
	RevealErr error

	Defaults []string
	Revealed []string
	Errors   []string
}

// PromptForName records the suggested default and returns the script.
func (f *FakePort) PromptForName(_ context.Context, defaultName string) (string, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Defaults = append(f.Defaults, defaultName)
	if f.PromptErr != nil {
		return "", false, f.PromptErr
	}
	if f.Cancel {
		return "", false, nil
	}
	return f.Name, true, nil
}

// RevealFile records path.
func (f *FakePort) RevealFile(_ context.Context, path string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.RevealErr != nil {
		return f.RevealErr
	}
	f.Revealed = append(f.Revealed, path)
	return nil
}

// NotifyError records msg.
func (f *FakePort) NotifyError(msg string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Errors = append(f.Errors, msg)
}
