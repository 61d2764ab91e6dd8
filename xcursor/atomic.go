package xcursor

import (
	"os"
	"path/filepath"
)

// atomicOp accumulates undo steps and runs them in reverse order unless
// committed.
type atomicOp struct {
	undoSteps []func() error
	committed bool
}

func (op *atomicOp) addUndo(fn func() error) {
	op.undoSteps = append(op.undoSteps, fn)
}

func (op *atomicOp) commit() {
	op.committed = true
}

// rollback returns the first error but runs every step.
func (op *atomicOp) rollback() error {
	if op.committed {
		return nil
	}
	var firstErr error
	for i := len(op.undoSteps) - 1; i >= 0; i-- {
		if err := op.undoSteps[i](); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// WriteFile encodes f into a temporary file next to path and renames it into
// place. On failure the temporary file is removed and path is left untouched.
func WriteFile(path string, f *File) error {
	op := &atomicOp{}
	defer op.rollback()

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return ioError("create temp file", err)
	}
	tmpName := tmp.Name()
	op.addUndo(func() error { return os.Remove(tmpName) })
	op.addUndo(func() error {
		tmp.Close()
		return nil
	})

	if err := NewEncoder(tmp).Encode(f); err != nil {
		return err
	}
	if err := tmp.Sync(); err != nil {
		return ioError("sync "+tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		return ioError("close "+tmpName, err)
	}
	mode := os.FileMode(0o644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}
	if err := os.Chmod(tmpName, mode); err != nil {
		return ioError("chmod "+tmpName, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return ioError("rename to "+path, err)
	}

	op.commit()
	return nil
}
