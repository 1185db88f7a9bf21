package crawler

import (
	"time"

	"github.com/vrn21/spiderman/internal/document"
)

// FetchResult holds the content of a successfully fetched page.
type FetchResult struct {
	URL         string // URL that was requested
	StatusCode  int    // HTTP status code
	ContentType string // HTTP Content-Type header
	Body        string // Raw page markup
}

// Stats represents crawling statistics.
type Stats struct {
	PagesCrawled   int           // Pages fetched, recorded, and exported
	PagesFailed    int           // Pages whose fetch failed
	URLsDiscovered int           // Total URLs ever admitted to the frontier
	StartTime      time.Time
	Duration       time.Duration
}

// Result is the outcome of one crawl: final statistics plus every record
// produced.
type Result struct {
	Stats     Stats
	Documents []*document.Document
}
