// Package export writes a snapshot of the todo collection to disk.
// Snapshots are reports; nothing reads them back.
package export

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/idilsaglam/todoboard/internal/todo"
)

// Format selects the snapshot encoding.
type Format string

const (
	JSON Format = "json"
	YAML Format = "yaml"
)

var ErrUnknownFormat = errors.New("unknown export format")

// Snapshot is the exported document.
type Snapshot struct {
	Session    string      `json:"session" yaml:"session"`
	ExportedAt time.Time   `json:"exported_at" yaml:"exported_at"`
	Items      []todo.Item `json:"items" yaml:"items"`
}

// New stamps items with the session id and the current time.
func New(session string, items []todo.Item) Snapshot {
	if items == nil {
		items = []todo.Item{}
	}
	return Snapshot{Session: session, ExportedAt: time.Now().UTC().Truncate(time.Second), Items: items}
}

// FormatFor picks the format from the file extension: .yaml and .yml are
// YAML, anything else JSON.
func FormatFor(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return YAML
	}
	return JSON
}

// Encode writes snap to w.
func Encode(w io.Writer, f Format, snap Snapshot) error {
	switch f {
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(snap); err != nil {
			return fmt.Errorf("json encode: %w", err)
		}
		return nil
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(snap); err != nil {
			return fmt.Errorf("yaml encode: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("yaml encode: %w", err)
		}
		return nil
	}
	return fmt.Errorf("%w: %q", ErrUnknownFormat, f)
}

// WriteFile encodes snap into path, creating parent directories. The file is
// written to a temporary sibling first and renamed into place.
func WriteFile(path string, snap Snapshot) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create dir: %w", err)
	}
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("create temp: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := Encode(tmp, FormatFor(path), snap); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp: %w", err)
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return fmt.Errorf("chmod: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("write file: %w", err)
	}
	return nil
}
