// Package document defines the page record produced for every successfully
// crawled page, plus the utilities that derive its fields from HTML:
// head-metadata extraction and Markdown conversion.
package document

import "time"

// Document is the record exported for one crawled page. It is assembled
// once, handed to the exporters, and never mutated afterwards.
type Document struct {
	URL         string            `json:"url"`
	Title       string            `json:"title"`
	Description string            `json:"description,omitempty"`
	Content     string            `json:"content"`
	RawHTML     string            `json:"raw_html,omitempty"`
	Links       []string          `json:"links"`
	CrawledAt   time.Time         `json:"crawled_at"`
	Metadata    map[string]string `json:"metadata,omitempty"`
}

// New creates a document for the given canonical URL with its converted
// content and the outbound links discovered on the page. The capture
// timestamp is set to the current UTC time.
func New(url, content string, links []string) *Document {
	return &Document{
		URL:       url,
		Content:   content,
		Links:     links,
		CrawledAt: time.Now().UTC(),
	}
}

// WithTitle sets the title and returns the document.
func (d *Document) WithTitle(title string) *Document {
	d.Title = title
	return d
}

// WithDescription sets the description and returns the document.
func (d *Document) WithDescription(description string) *Document {
	d.Description = description
	return d
}

// WithRawHTML attaches the original markup and returns the document.
func (d *Document) WithRawHTML(markup string) *Document {
	d.RawHTML = markup
	return d
}

// WithMetadata adds a metadata key-value pair and returns the document.
func (d *Document) WithMetadata(key, value string) *Document {
	if d.Metadata == nil {
		d.Metadata = make(map[string]string)
	}
	d.Metadata[key] = value
	return d
}

// WithTimestamp overrides the capture timestamp and returns the document.
// Useful in tests and when restoring records from storage.
func (d *Document) WithTimestamp(ts time.Time) *Document {
	d.CrawledAt = ts
	return d
}

// LinkCount returns the number of outbound links on the page.
func (d *Document) LinkCount() int {
	return len(d.Links)
}
