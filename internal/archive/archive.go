// Package archive persists assessment records as a JSON array in a single
// file. The whole file is read and rewritten on every append. There is no
// cross-process locking: two writers racing on the same file can drop a
// record, so one process per archive file is assumed.
package archive

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/khrees2412/careerpivot/pkg/models"
	"github.com/pkg/errors"
)

// PersistenceError reports a failed archive read or write.
type PersistenceError struct {
	Op   string
	Path string
	Err  error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("archive %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

// Archive is a JSON file of assessment records
type Archive struct {
	path string
}

// New returns an archive backed by path. The file need not exist yet.
func New(path string) *Archive {
	return &Archive{path: path}
}

// Path returns the backing file path
func (a *Archive) Path() string {
	return a.path
}

// Load returns every archived entry as raw JSON, oldest first.
func (a *Archive) Load() ([]json.RawMessage, error) {
	data, err := os.ReadFile(a.path)
	if os.IsNotExist(err) {
		return []json.RawMessage{}, nil
	}
	if err != nil {
		return nil, &PersistenceError{Op: "load", Path: a.path, Err: err}
	}

	entries, err := decodeEntries(data)
	if err != nil {
		return nil, &PersistenceError{Op: "load", Path: a.path, Err: err}
	}
	return entries, nil
}

// decodeEntries is the one place that knows the on-disk layouts: a JSON
// array of records, or a single bare record written by older versions.
func decodeEntries(data []byte) ([]json.RawMessage, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return []json.RawMessage{}, nil
	}

	if trimmed[0] == '[' {
		var entries []json.RawMessage
		if err := json.Unmarshal(trimmed, &entries); err != nil {
			return nil, errors.Wrap(err, "parse archive array")
		}
		if entries == nil {
			entries = []json.RawMessage{}
		}
		return entries, nil
	}

	var single json.RawMessage
	if err := json.Unmarshal(trimmed, &single); err != nil {
		return nil, errors.Wrap(err, "parse legacy archive entry")
	}
	return []json.RawMessage{single}, nil
}

// Append adds rec to the end of the archive and rewrites the file. An
// archive that cannot be parsed is left untouched.
func (a *Archive) Append(rec *models.Record) error {
	entries, err := a.Load()
	if err != nil {
		return err
	}

	raw, err := marshalRecord(rec)
	if err != nil {
		return &PersistenceError{Op: "encode", Path: a.path, Err: err}
	}
	entries = append(entries, raw)

	data, err := encodeEntries(entries)
	if err != nil {
		return &PersistenceError{Op: "encode", Path: a.path, Err: err}
	}

	if dir := filepath.Dir(a.path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return &PersistenceError{Op: "write", Path: a.path, Err: errors.Wrap(err, "create archive directory")}
		}
	}
	if err := os.WriteFile(a.path, data, 0644); err != nil {
		return &PersistenceError{Op: "write", Path: a.path, Err: err}
	}
	return nil
}

func marshalRecord(rec *models.Record) (json.RawMessage, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(rec); err != nil {
		return nil, errors.Wrap(err, "marshal record")
	}
	return json.RawMessage(bytes.TrimRight(buf.Bytes(), "\n")), nil
}

// encodeEntries writes two-space indented JSON with non-ASCII and HTML
// characters kept literal.
func encodeEntries(entries []json.RawMessage) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(entries); err != nil {
		return nil, errors.Wrap(err, "encode archive")
	}
	return buf.Bytes(), nil
}
