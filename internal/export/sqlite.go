package export

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/vrn21/spiderman/internal/document"
	// SQLite database driver (CGO-free)
	_ "modernc.org/sqlite"
)

// SQLiteArchive stores page records and the outbound link graph in a SQLite
// database. Appending the same canonical URL twice replaces the earlier row,
// so re-running a crawl refreshes the archive instead of duplicating it.
type SQLiteArchive struct {
	db *sql.DB
}

// NewSQLiteArchive opens (or creates) the archive at the given path.
func NewSQLiteArchive(dbPath string) (*SQLiteArchive, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Single connection prevents lock conflicts
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(30 * time.Minute)

	a := &SQLiteArchive{db: db}
	if err := a.initSchema(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return a, nil
}

func (a *SQLiteArchive) initSchema() error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 30000",
	}

	for _, pragma := range pragmas {
		if _, err := a.db.Exec(pragma); err != nil {
			return fmt.Errorf("failed to execute pragma %s: %w", pragma, err)
		}
	}

	if _, err := a.db.Exec(schemaSQL); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

// Close closes the database connection.
func (a *SQLiteArchive) Close() error {
	return a.db.Close()
}

// Append stores one page record and its outbound links.
func (a *SQLiteArchive) Append(doc *document.Document) error {
	var metadataJSON []byte
	if len(doc.Metadata) > 0 {
		var err error
		metadataJSON, err = json.Marshal(doc.Metadata)
		if err != nil {
			return fmt.Errorf("failed to marshal metadata: %w", err)
		}
	}

	tx, err := a.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.Exec(`
		INSERT OR REPLACE INTO pages (url, title, description, content, raw_html, metadata, crawled_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, doc.URL, doc.Title, doc.Description, doc.Content, doc.RawHTML, string(metadataJSON), doc.CrawledAt)
	if err != nil {
		return fmt.Errorf("failed to insert page %s: %w", doc.URL, err)
	}

	if len(doc.Links) > 0 {
		stmt, err := tx.Prepare(`
			INSERT OR IGNORE INTO links (source_url, target_url)
			VALUES (?, ?)
		`)
		if err != nil {
			return fmt.Errorf("failed to prepare statement: %w", err)
		}
		defer func() { _ = stmt.Close() }()

		for _, target := range doc.Links {
			if _, err := stmt.Exec(doc.URL, target); err != nil {
				return fmt.Errorf("failed to insert link %s -> %s: %w", doc.URL, target, err)
			}
		}
	}

	return tx.Commit()
}

// PageCount returns the number of archived pages.
func (a *SQLiteArchive) PageCount() (int, error) {
	var count int
	if err := a.db.QueryRow(`SELECT COUNT(*) FROM pages`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count pages: %w", err)
	}
	return count, nil
}

// LinkCount returns the number of archived link pairs.
func (a *SQLiteArchive) LinkCount() (int, error) {
	var count int
	if err := a.db.QueryRow(`SELECT COUNT(*) FROM links`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count links: %w", err)
	}
	return count, nil
}
