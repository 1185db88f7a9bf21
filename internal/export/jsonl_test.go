package export

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/vrn21/spiderman/internal/document"
)

func testDoc(url string) *document.Document {
	return document.New(url, "# Content", []string{url + "/link"}).
		WithTitle("Title").
		WithTimestamp(time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC))
}

func readLines(t *testing.T, path string) []string {
	t.Helper()

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("Failed to open output: %v", err)
	}
	defer func() { _ = f.Close() }()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	return lines
}

func TestJSONLAppendCreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "crawl.jsonl")
	exporter := NewJSONL(path)

	if err := exporter.Append(testDoc("http://example.com")); err != nil {
		t.Fatalf("Append failed: %v", err)
	}

	lines := readLines(t, path)
	if len(lines) != 1 {
		t.Fatalf("Expected 1 line, got %d", len(lines))
	}

	var record map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &record); err != nil {
		t.Fatalf("Line is not valid JSON: %v", err)
	}
	if record["url"] != "http://example.com" {
		t.Errorf("url = %v, want http://example.com", record["url"])
	}
}

func TestJSONLAppendAccumulates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "crawl.jsonl")
	exporter := NewJSONL(path)

	for _, url := range []string{"http://example.com/a", "http://example.com/b", "http://example.com/c"} {
		if err := exporter.Append(testDoc(url)); err != nil {
			t.Fatalf("Append failed: %v", err)
		}
	}

	lines := readLines(t, path)
	if len(lines) != 3 {
		t.Errorf("Expected 3 lines, got %d", len(lines))
	}
}

func TestJSONLAppendBatchMatchesRepeatedAppend(t *testing.T) {
	dir := t.TempDir()
	single := NewJSONL(filepath.Join(dir, "single.jsonl"))
	batch := NewJSONL(filepath.Join(dir, "batch.jsonl"))

	docs := []*document.Document{
		testDoc("http://example.com/a"),
		testDoc("http://example.com/b"),
	}

	for _, doc := range docs {
		if err := single.Append(doc); err != nil {
			t.Fatalf("Append failed: %v", err)
		}
	}
	if err := batch.AppendBatch(docs); err != nil {
		t.Fatalf("AppendBatch failed: %v", err)
	}

	singleLines := readLines(t, single.Path())
	batchLines := readLines(t, batch.Path())

	if len(singleLines) != len(batchLines) {
		t.Fatalf("Line counts differ: %d vs %d", len(singleLines), len(batchLines))
	}
	for i := range singleLines {
		if singleLines[i] != batchLines[i] {
			t.Errorf("Line %d differs:\n%s\n%s", i, singleLines[i], batchLines[i])
		}
	}
}

func TestJSONLAppendBatchEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "crawl.jsonl")

	if err := NewJSONL(path).AppendBatch(nil); err != nil {
		t.Fatalf("AppendBatch(nil) failed: %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("Expected no file created for empty batch")
	}
}
