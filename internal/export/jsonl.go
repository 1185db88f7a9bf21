// Package export persists crawled page records. It provides an append-only
// JSONL exporter for the crawl output file and a SQLite archive for
// queryable storage of pages and their link graph.
package export

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/vrn21/spiderman/internal/document"
)

// JSONL appends one JSON-encoded record per line to a file. The file and
// its parent directories are created on first use, so records survive and
// accumulate across crawls.
type JSONL struct {
	path string
}

// NewJSONL creates a JSONL exporter writing to the given path.
func NewJSONL(path string) *JSONL {
	return &JSONL{path: path}
}

// Path returns the output file path.
func (e *JSONL) Path() string {
	return e.path
}

// Append serializes the record and appends it as a single line.
func (e *JSONL) Append(doc *document.Document) error {
	f, err := e.open()
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	return writeRecord(f, doc)
}

// AppendBatch appends every record in order. It is equivalent to calling
// Append once per record but opens the file only once.
func (e *JSONL) AppendBatch(docs []*document.Document) error {
	if len(docs) == 0 {
		return nil
	}

	f, err := e.open()
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	for _, doc := range docs {
		if err := writeRecord(f, doc); err != nil {
			return err
		}
	}
	return nil
}

func (e *JSONL) open() (*os.File, error) {
	if dir := filepath.Dir(e.path); dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return nil, fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	f, err := os.OpenFile(e.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open output file: %w", err)
	}
	return f, nil
}

func writeRecord(f *os.File, doc *document.Document) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to serialize record: %w", err)
	}

	if _, err := f.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to write record: %w", err)
	}
	return nil
}
