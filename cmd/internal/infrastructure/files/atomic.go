package files

import (
	"errors"
	"os"
	"path/filepath"
)

// AtomicFile is written under a temporary name in the target directory and
// only takes the target name on Commit.
type AtomicFile struct {
	*os.File
	target string
	done   bool
}

// DefaultMode is given to a new target. A target that already exists keeps
// its own permission bits.
const DefaultMode os.FileMode = 0o644

// CreateAtomic also proves the target directory is writable before any work
// is done.
func CreateAtomic(target string) (*AtomicFile, error) {
	dir := filepath.Dir(target)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(target)+".*.tmp")
	if err != nil {
		return nil, err
	}

	// CreateTemp opens with 0600
	mode := DefaultMode
	if info, err := os.Stat(target); err == nil {
		mode = info.Mode().Perm()
	}
	if err := tmp.Chmod(mode); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return nil, err
	}
	return &AtomicFile{File: tmp, target: target}, nil
}

func (a *AtomicFile) Commit() error {
	if a.done {
		return errors.New("atomic file already closed")
	}
	a.done = true

	if err := a.File.Sync(); err != nil {
		_ = a.File.Close()
		_ = os.Remove(a.File.Name())
		return err
	}
	if err := a.File.Close(); err != nil {
		_ = os.Remove(a.File.Name())
		return err
	}
	if err := os.Rename(a.File.Name(), a.target); err != nil {
		_ = os.Remove(a.File.Name())
		return err
	}
	return nil
}

// Abort drops the temporary file. It is a no-op after Commit.
func (a *AtomicFile) Abort() {
	if a.done {
		return
	}
	a.done = true
	_ = a.File.Close()
	_ = os.Remove(a.File.Name())
}
