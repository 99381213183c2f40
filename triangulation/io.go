package triangulation

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// IOError reports a failed read or write of a triangulation document
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("unable to %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

// WriteJSON creates or replaces path with the records document. The target is
// replaced atomically, a failed write leaves any existing file untouched
func WriteJSON(path string, records []Record) (err error) {
	var (
		data []byte
	)
	if data, err = Marshal(records); err != nil {
		return
	}
	return writeFileAtomic(path, data)
}

func ReadJSON(path string) (records []Record, err error) {
	var (
		data []byte
	)
	if data, err = os.ReadFile(path); err != nil {
		return nil, &IOError{Op: "read", Path: path, Err: err}
	}
	if err = json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("unable to parse %s: %w", path, err)
	}
	return
}

func writeFileAtomic(path string, data []byte) (err error) {
	var (
		tmp *os.File
	)
	if tmp, err = os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".tmp-*"); err != nil {
		return &IOError{Op: "create", Path: path, Err: err}
	}
	tmpName := tmp.Name()
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmpName)
		}
	}()
	if _, err = tmp.Write(data); err != nil {
		return &IOError{Op: "write", Path: path, Err: err}
	}
	if err = tmp.Sync(); err != nil {
		return &IOError{Op: "sync", Path: path, Err: err}
	}
	if err = tmp.Close(); err != nil {
		return &IOError{Op: "close", Path: path, Err: err}
	}
	if err = os.Chmod(tmpName, 0o644); err != nil {
		return &IOError{Op: "chmod", Path: path, Err: err}
	}
	if err = os.Rename(tmpName, path); err != nil {
		return &IOError{Op: "rename", Path: path, Err: err}
	}
	return
}
