// Package crawler drives the breadth-first crawl loop: it pulls the next
// URL from the frontier, fetches it, feeds discovered links back into the
// frontier, and hands one page record per successful fetch to the
// exporters.
package crawler

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/vrn21/spiderman/internal/config"
	"github.com/vrn21/spiderman/internal/document"
	"github.com/vrn21/spiderman/internal/frontier"
	"github.com/vrn21/spiderman/internal/links"
)

// Crawler runs one crawl from a seed URL to exhaustion or a configured
// limit. It exclusively owns its frontier; one URL is in flight at a time.
type Crawler struct {
	cfg       *config.CrawlConfig
	frontier  *frontier.Frontier
	fetcher   Fetcher
	exporters []Exporter
	limiter   *RateLimiter
}

// Option configures a Crawler.
type Option func(*Crawler)

// WithFetcher replaces the default HTTP fetcher.
func WithFetcher(f Fetcher) Option {
	return func(c *Crawler) {
		c.fetcher = f
	}
}

// WithExporters adds sinks that receive every finished page record.
func WithExporters(exporters ...Exporter) Option {
	return func(c *Crawler) {
		c.exporters = append(c.exporters, exporters...)
	}
}

// New creates a crawler for the given configuration. Configuration errors
// are the only fatal class and are reported here, before any fetch occurs.
func New(cfg *config.CrawlConfig, opts ...Option) (*Crawler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	front, err := frontier.New(cfg.SeedURL,
		frontier.WithMaxPages(cfg.Limit),
		frontier.WithAllowedDomains(cfg.AllowedDomains),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create frontier: %w", err)
	}

	c := &Crawler{
		cfg:      cfg,
		frontier: front,
		limiter:  NewRateLimiter(cfg.RequestDelay),
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.fetcher == nil {
		c.fetcher = NewHTTPFetcher(cfg.UserAgent, cfg.RequestTimeout)
	}

	return c, nil
}

// Run executes the crawl loop until the frontier is exhausted or the
// context is cancelled. A failed fetch is final for that URL: it is counted
// and skipped, never re-enqueued. Export failures are logged and do not
// abort the crawl. The returned result carries the final statistics and
// every record produced, also when the context ends the crawl early.
func (c *Crawler) Run(ctx context.Context) (*Result, error) {
	result := &Result{Stats: Stats{StartTime: time.Now()}}

	for {
		select {
		case <-ctx.Done():
			return c.finalize(result), ctx.Err()
		default:
		}

		url, ok := c.frontier.Next()
		if !ok {
			break
		}

		if err := c.limiter.Wait(ctx, url); err != nil {
			return c.finalize(result), err
		}

		fetched, err := c.fetcher.Fetch(ctx, url)
		if err != nil {
			slog.Warn("Failed to fetch page", "url", url, "error", err)
			result.Stats.PagesFailed++
			continue
		}

		discovered := links.Extract(fetched.Body, url)
		admitted := 0
		for _, link := range discovered {
			if c.frontier.Add(link) {
				admitted++
			}
		}

		doc := c.buildDocument(url, fetched.Body, discovered)
		for _, exporter := range c.exporters {
			if err := exporter.Append(doc); err != nil {
				slog.Warn("Failed to export record", "url", url, "error", err)
			}
		}

		result.Documents = append(result.Documents, doc)
		result.Stats.PagesCrawled++

		slog.Info("Crawled page",
			"url", url,
			"status", fetched.StatusCode,
			"links", len(discovered),
			"new", admitted)
	}

	return c.finalize(result), nil
}

// Progress returns the frontier's view of the crawl: total URLs admitted,
// still queued, and already processed.
func (c *Crawler) Progress() (total, queued, processed int) {
	return c.frontier.Stats()
}

func (c *Crawler) finalize(result *Result) *Result {
	total, _, _ := c.frontier.Stats()
	result.Stats.URLsDiscovered = total
	result.Stats.Duration = time.Since(result.Stats.StartTime)
	return result
}

// buildDocument assembles the page record for one fetched page.
func (c *Crawler) buildDocument(url, markup string, discovered []string) *document.Document {
	meta := document.ExtractMetadata(markup)

	doc := document.New(url, document.ToMarkdown(markup), discovered).
		WithTitle(meta.Title).
		WithDescription(meta.Description)

	if meta.Keywords != "" {
		doc.WithMetadata("keywords", meta.Keywords)
	}
	if meta.Author != "" {
		doc.WithMetadata("author", meta.Author)
	}
	for name, content := range meta.Other {
		doc.WithMetadata(name, content)
	}

	if c.cfg.StoreHTML {
		doc.WithRawHTML(markup)
	}

	return doc
}
