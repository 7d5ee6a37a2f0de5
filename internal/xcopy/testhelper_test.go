package xcopy

import (
	"io/fs"
	"os"
	"path/filepath"
	"time"
)

// faultSystem is a test helper that allows deterministic error injection for the
// copier System interface without chmod-based permission tricks.
type faultSystem struct {
	base      System
	statErrs  map[string]error
	statInfos map[string]os.FileInfo
	readErrs  map[string]error
	dirErrs   map[string]error
	mkdirErrs map[string]error
	writeErrs map[string]error
	writes    []string
}

func newFaultSystem(base System) *faultSystem {
	return &faultSystem{
		base:      base,
		statErrs:  map[string]error{},
		statInfos: map[string]os.FileInfo{},
		readErrs:  map[string]error{},
		dirErrs:   map[string]error{},
		mkdirErrs: map[string]error{},
		writeErrs: map[string]error{},
	}
}

func normalizePath(path string) string {
	return filepath.Clean(path)
}

func (f *faultSystem) Stat(name string) (os.FileInfo, error) {
	if err, ok := f.statErrs[normalizePath(name)]; ok {
		return nil, err
	}
	if info, ok := f.statInfos[normalizePath(name)]; ok {
		return info, nil
	}
	return f.base.Stat(name)
}

func (f *faultSystem) ReadFile(name string) ([]byte, error) {
	if err, ok := f.readErrs[normalizePath(name)]; ok {
		return nil, err
	}
	return f.base.ReadFile(name)
}

func (f *faultSystem) ReadDir(name string) ([]os.DirEntry, error) {
	if err, ok := f.dirErrs[normalizePath(name)]; ok {
		return nil, err
	}
	return f.base.ReadDir(name)
}

func (f *faultSystem) MkdirAll(path string, perm os.FileMode) error {
	if err, ok := f.mkdirErrs[normalizePath(path)]; ok {
		return err
	}
	return f.base.MkdirAll(path, perm)
}

func (f *faultSystem) WriteFileAtomic(filename string, data []byte, perm os.FileMode) error {
	if err, ok := f.writeErrs[normalizePath(filename)]; ok {
		return err
	}
	f.writes = append(f.writes, normalizePath(filename))
	return f.base.WriteFileAtomic(filename, data, perm)
}

// fakeInfo reports an arbitrary file mode for Stat overrides.
type fakeInfo struct {
	name string
	mode fs.FileMode
}

func (i fakeInfo) Name() string       { return i.name }
func (i fakeInfo) Size() int64        { return 0 }
func (i fakeInfo) Mode() fs.FileMode  { return i.mode }
func (i fakeInfo) ModTime() time.Time { return time.Time{} }
func (i fakeInfo) IsDir() bool        { return i.mode.IsDir() }
func (i fakeInfo) Sys() any           { return nil }
