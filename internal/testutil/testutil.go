package testutil

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

// PackageRelDir is where InstalledPackage places the package, relative to the project root.
var PackageRelDir = filepath.Join("vendor", "conn-castle", "standards")

// WriteFile writes content to path, creating parent directories as needed.
// t is the active test; path is the file to write; content is its body.
func WriteFile(t *testing.T, path string, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

// WriteStub writes an executable shell stub that exits successfully.
// t is the active test; dir is the output directory; name is the executable file name.
func WriteStub(t *testing.T, dir string, name string) {
	t.Helper()
	WriteStubWithExit(t, dir, name, 0)
}

// WriteStubWithExit writes an executable shell stub that exits with the provided code.
// t is the active test; dir is the output directory; name is the executable file name.
func WriteStubWithExit(t *testing.T, dir string, name string, exitCode int) {
	t.Helper()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", dir, err)
	}
	path := filepath.Join(dir, name)
	content := []byte(fmt.Sprintf("#!/bin/sh\nexit %d\n", exitCode))
	if err := os.WriteFile(path, content, 0o755); err != nil {
		t.Fatalf("write stub: %v", err)
	}
}

// InstalledPackage creates a project root holding an installed package at
// PackageRelDir with standards, github, and bin trees. It returns both paths.
func InstalledPackage(t *testing.T) (root string, pkg string) {
	t.Helper()
	root = t.TempDir()
	pkg = filepath.Join(root, PackageRelDir)
	WriteFile(t, filepath.Join(pkg, "standards", "phpcs.xml"), "<ruleset name=\"standards\"/>")
	WriteFile(t, filepath.Join(pkg, "standards", "rules", "extra.xml"), "<rule ref=\"Generic\"/>")
	WriteFile(t, filepath.Join(pkg, "github", "PULL_REQUEST_TEMPLATE.md"), "pr template")
	WriteFile(t, filepath.Join(pkg, "github", "workflows", "lint.yml"), "on: push")
	WriteStub(t, filepath.Join(pkg, "bin"), "lint.sh")
	return root, pkg
}

// Snapshot maps slash-separated paths under root to file contents.
// Directories map to "/".
func Snapshot(t *testing.T, root string) map[string]string {
	t.Helper()
	out := map[string]string{}
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		if rel == "." {
			return nil
		}
		rel = filepath.ToSlash(rel)
		if d.IsDir() {
			out[rel] = "/"
			return nil
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		out[rel] = string(data)
		return nil
	})
	if err != nil {
		t.Fatalf("walk %s: %v", root, err)
	}
	return out
}

// ReadFile returns the contents of path, failing the test on error.
func ReadFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return string(data)
}
