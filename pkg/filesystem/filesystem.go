package filesystem

import (
	"os"
	"path/filepath"

	"github.com/arthur-debert/valk/pkg/errors"
	"github.com/spf13/afero"
)

const (
	DirPerm  os.FileMode = 0755
	FilePerm os.FileMode = 0644
)

// NewOS returns the OS filesystem; relative paths resolve against the
// process working directory.
func NewOS() afero.Fs {
	return afero.NewOsFs()
}

// NewMemory returns an empty in-memory filesystem
func NewMemory() afero.Fs {
	return afero.NewMemMapFs()
}

// EnsureDir creates dir if it is missing. Only the last path element is
// created; a missing parent is an error. created reports whether dir is new.
func EnsureDir(fs afero.Fs, dir string) (created bool, err error) {
	info, statErr := fs.Stat(dir)
	if statErr == nil {
		if !info.IsDir() {
			return false, errors.Newf(errors.ErrDirCreate, "%s exists and is not a directory", dir).
				WithDetail("path", dir)
		}
		return false, nil
	}

	if err := fs.Mkdir(dir, DirPerm); err != nil {
		return false, errors.Wrapf(err, errors.ErrDirCreate, "failed to create directory %s", dir).
			WithDetail("path", dir)
	}
	return true, nil
}

// Create opens path for writing, truncating an existing file
func Create(fs afero.Fs, path string) (afero.File, error) {
	f, err := fs.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, FilePerm)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileCreate, "failed to create %s", path).
			WithDetail("path", path)
	}
	return f, nil
}

// WriteFile writes data to path, replacing any previous content
func WriteFile(fs afero.Fs, path string, data []byte) error {
	if err := afero.WriteFile(fs, path, data, FilePerm); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "failed to write %s", path).
			WithDetail("path", path)
	}
	return nil
}

// AtomicFile collects writes in a temporary sibling of its target. The
// target is only replaced by Commit.
type AtomicFile struct {
	fs     afero.Fs
	tmp    afero.File
	target string
}

// CreateAtomic starts an AtomicFile for path
func CreateAtomic(fs afero.Fs, path string) (*AtomicFile, error) {
	dir, base := filepath.Split(path)
	if dir == "" {
		dir = "."
	}
	tmp, err := afero.TempFile(fs, dir, "."+base+".tmp-*")
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileCreate, "failed to create temporary file for %s", path).
			WithDetail("path", path)
	}
	return &AtomicFile{fs: fs, tmp: tmp, target: path}, nil
}

func (a *AtomicFile) Write(p []byte) (int, error) {
	return a.tmp.Write(p)
}

// Commit moves the written content onto the target path
func (a *AtomicFile) Commit() error {
	if err := a.tmp.Close(); err != nil {
		_ = a.fs.Remove(a.tmp.Name())
		return errors.Wrapf(err, errors.ErrFileWrite, "failed to flush %s", a.target)
	}
	if err := a.fs.Chmod(a.tmp.Name(), FilePerm); err != nil {
		_ = a.fs.Remove(a.tmp.Name())
		return errors.Wrapf(err, errors.ErrFileWrite, "failed to set mode on %s", a.target)
	}
	if err := a.fs.Rename(a.tmp.Name(), a.target); err != nil {
		_ = a.fs.Remove(a.tmp.Name())
		return errors.Wrapf(err, errors.ErrFileWrite, "failed to move temporary file onto %s", a.target).
			WithDetail("path", a.target)
	}
	return nil
}

// Abort discards everything written; the target is untouched
func (a *AtomicFile) Abort() error {
	_ = a.tmp.Close()
	return a.fs.Remove(a.tmp.Name())
}
