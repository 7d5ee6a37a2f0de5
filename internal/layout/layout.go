// Package layout resolves where the hook's bundled trees live and which
// directory is the consuming project's root.
package layout

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/go-homedir"

	"github.com/conn-castle/standards-hook/internal/messages"
)

// Layout pairs the package directory with the project root it installs into.
type Layout struct {
	// PackageDir holds the bundled standards, github, and bin trees.
	PackageDir string
	// ProjectRoot is the consuming project's root directory.
	ProjectRoot string
}

// executable is a seam for tests.
var executable = os.Executable

// PackageDir returns the directory of the running executable with symlinks
// resolved, so a launcher linked into a shared bin directory still points at
// the package that ships it.
func PackageDir() (string, error) {
	exe, err := executable()
	if err != nil {
		return "", fmt.Errorf(messages.LayoutExecutableFmt, err)
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Dir(exe), nil
}

// ProjectRoot ascends depth directory levels from packageDir.
// The result is not checked against the real install layout.
func ProjectRoot(packageDir string, depth int) (string, error) {
	if strings.TrimSpace(packageDir) == "" {
		return "", errors.New(messages.LayoutPackageDirRequired)
	}
	if depth < 0 {
		return "", fmt.Errorf(messages.LayoutInstallDepthInvalidFmt, depth)
	}
	dir := filepath.Clean(packageDir)
	for i := 0; i < depth; i++ {
		dir = filepath.Dir(dir)
	}
	return dir, nil
}

// ExpandPath expands a leading ~ and returns an absolute, cleaned path.
func ExpandPath(path string) (string, error) {
	expanded, err := homedir.Expand(strings.TrimSpace(path))
	if err != nil {
		return "", fmt.Errorf(messages.LayoutExpandPathFmt, path, err)
	}
	abs, err := filepath.Abs(expanded)
	if err != nil {
		return "", fmt.Errorf(messages.LayoutExpandPathFmt, path, err)
	}
	return abs, nil
}

// Resolve builds a Layout. An empty packageDir falls back to PackageDir; an
// explicit projectRoot wins over ascending depth levels from the package.
func Resolve(packageDir string, projectRoot string, depth int) (Layout, error) {
	var pkg string
	var err error
	if strings.TrimSpace(packageDir) == "" {
		pkg, err = PackageDir()
	} else {
		pkg, err = ExpandPath(packageDir)
	}
	if err != nil {
		return Layout{}, err
	}

	var root string
	if strings.TrimSpace(projectRoot) != "" {
		root, err = ExpandPath(projectRoot)
	} else {
		root, err = ProjectRoot(pkg, depth)
	}
	if err != nil {
		return Layout{}, err
	}
	return Layout{PackageDir: pkg, ProjectRoot: root}, nil
}
