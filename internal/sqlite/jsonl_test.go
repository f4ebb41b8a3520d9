package sqlite

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestWriteJSONLRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "records.jsonl")
	records := []json.RawMessage{
		json.RawMessage(`{"a":1}`),
		json.RawMessage(`{"b":"two"}`),
	}

	if err := writeJSONL(path, records); err != nil {
		t.Fatalf("writeJSONL failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "{\"a\":1}\n{\"b\":\"two\"}\n" {
		t.Errorf("unexpected file content %q", data)
	}

	got, err := readJSONL(path)
	if err != nil {
		t.Fatalf("readJSONL failed: %v", err)
	}
	if len(got) != 2 || string(got[1]) != `{"b":"two"}` {
		t.Errorf("unexpected records %q", got)
	}
}

func TestWriteJSONLLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "records.jsonl")

	for range 3 {
		if err := writeJSONL(path, []json.RawMessage{json.RawMessage(`{}`)}); err != nil {
			t.Fatalf("writeJSONL failed: %v", err)
		}
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), ".tmp") {
			t.Errorf("temp file left behind: %s", e.Name())
		}
	}
}

func TestWriteJSONLEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "records.jsonl")
	if err := writeJSONL(path, nil); err != nil {
		t.Fatalf("writeJSONL failed: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if info.Size() != 0 {
		t.Errorf("expected empty file, got %d bytes", info.Size())
	}
}

func TestReadJSONLMissingFile(t *testing.T) {
	if _, err := readJSONL(filepath.Join(t.TempDir(), "missing.jsonl")); err == nil {
		t.Error("expected error for missing file")
	}
}
