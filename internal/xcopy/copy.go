// Package xcopy copies a file, or a directory and all of its descendants,
// from a source path to a destination path.
//
// Copies only add or overwrite. Destination entries that are absent from the
// source are never removed, so running the same copy twice leaves the
// destination in the same state as running it once.
package xcopy

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/conn-castle/standards-hook/internal/messages"
)

// defaultDirPerm is applied to destination directories created by Copy.
const defaultDirPerm os.FileMode = 0o755

// Copy copies source to dest.
// A regular file overwrites dest and keeps the source permission bits. A
// directory is merged into dest, creating dest when missing. Failures on one
// entry do not stop its siblings; every failure is joined into the returned
// error. A missing source returns an error wrapping fs.ErrNotExist and leaves
// dest untouched.
func Copy(ctx context.Context, sys System, source string, dest string) error {
	if sys == nil {
		return errors.New(messages.CopySystemRequired)
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	return copyPath(ctx, sys, source, dest)
}

func copyPath(ctx context.Context, sys System, source string, dest string) error {
	info, err := sys.Stat(source)
	if err != nil {
		return fmt.Errorf(messages.CopyFailedStatFmt, source, err)
	}
	switch {
	case info.Mode().IsRegular():
		return copyFile(sys, source, dest, info.Mode().Perm())
	case info.IsDir():
		return copyDir(ctx, sys, source, dest)
	default:
		return fmt.Errorf(messages.CopyUnsupportedFileTypeFmt, info.Mode().Type(), source)
	}
}

func copyFile(sys System, source string, dest string, perm os.FileMode) error {
	data, err := sys.ReadFile(source)
	if err != nil {
		return fmt.Errorf(messages.CopyFailedReadFmt, source, err)
	}
	if err := sys.WriteFileAtomic(dest, data, perm); err != nil {
		return fmt.Errorf(messages.CopyFailedWriteFmt, dest, err)
	}
	return nil
}

func copyDir(ctx context.Context, sys System, source string, dest string) error {
	if err := ensureDir(sys, dest); err != nil {
		return err
	}
	entries, err := sys.ReadDir(source)
	if err != nil {
		return fmt.Errorf(messages.CopyFailedReadDirFmt, source, err)
	}
	var errs []error
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}
		name := entry.Name()
		if name == "." || name == ".." {
			continue
		}
		if err := copyPath(ctx, sys, filepath.Join(source, name), filepath.Join(dest, name)); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// ensureDir creates dest when it is missing and rejects non-directories.
func ensureDir(sys System, dest string) error {
	info, err := sys.Stat(dest)
	if err == nil {
		if !info.IsDir() {
			return fmt.Errorf(messages.CopyDestNotDirFmt, dest)
		}
		return nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf(messages.CopyFailedStatFmt, dest, err)
	}
	if err := sys.MkdirAll(dest, defaultDirPerm); err != nil {
		return fmt.Errorf(messages.CopyFailedCreateDirFmt, dest, err)
	}
	return nil
}
