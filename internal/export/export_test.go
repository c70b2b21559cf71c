package export

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"gopkg.in/yaml.v3"

	"github.com/idilsaglam/todoboard/internal/todo"
)

func sample() Snapshot {
	return Snapshot{
		Session:    "s-1",
		ExportedAt: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
		Items: []todo.Item{
			{ID: 1, Text: "A", Status: todo.StatusCompleted},
			{ID: 2, Text: "B", Status: todo.StatusNotStarted},
		},
	}
}

func TestFormatFor(t *testing.T) {
	tests := map[string]Format{
		"out.json":      JSON,
		"out.yaml":      YAML,
		"OUT.YML":       YAML,
		"snapshot":      JSON,
		"dir.yaml/file": JSON,
	}
	for path, want := range tests {
		if got := FormatFor(path); got != want {
			t.Errorf("FormatFor(%q) = %q, want %q", path, got, want)
		}
	}
}

func TestEncodeJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(&buf, JSON, sample()); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	out := buf.String()
	if !strings.HasSuffix(out, "}\n") {
		t.Errorf("want trailing newline, got %q", out[len(out)-3:])
	}
	if !strings.Contains(out, `"status": "Completed"`) {
		t.Errorf("status not encoded by label:\n%s", out)
	}

	var doc struct {
		Session    string `json:"session"`
		ExportedAt string `json:"exported_at"`
		Items      []struct {
			ID     int    `json:"id"`
			Text   string `json:"text"`
			Status string `json:"status"`
		} `json:"items"`
	}
	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if doc.Session != "s-1" || doc.ExportedAt != "2026-03-01T12:00:00Z" {
		t.Errorf("header: %+v", doc)
	}
	if len(doc.Items) != 2 || doc.Items[1].ID != 2 || doc.Items[1].Status != "Not Started" {
		t.Errorf("items: %+v", doc.Items)
	}
}

func TestEncodeYAML(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(&buf, YAML, sample()); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	var doc map[string]any
	if err := yaml.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("unmarshal: %v\n%s", err, buf.String())
	}
	items, ok := doc["items"].([]any)
	if !ok || len(items) != 2 {
		t.Fatalf("items: %#v", doc["items"])
	}
	want := map[string]any{"id": 1, "text": "A", "status": "Completed"}
	if diff := cmp.Diff(want, items[0]); diff != "" {
		t.Errorf("first item (-want +got):\n%s", diff)
	}
}

func TestEncodeEmptyItems(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(&buf, JSON, New("s", nil)); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if !strings.Contains(buf.String(), `"items": []`) {
		t.Errorf("empty collection should encode as []:\n%s", buf.String())
	}
}

func TestEncodeUnknownFormat(t *testing.T) {
	err := Encode(&bytes.Buffer{}, Format("csv"), sample())
	if !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("got %v, want ErrUnknownFormat", err)
	}
}

func TestWriteFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "todos.yaml")

	if err := WriteFile(path, sample()); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !strings.HasPrefix(string(b), "session: s-1\n") {
		t.Errorf("unexpected YAML:\n%s", b)
	}

	entries, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("temp files left behind: %v", entries)
	}
}
