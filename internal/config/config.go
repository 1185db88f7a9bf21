// Package config provides configuration management for the crawler.
// It defines the crawl configuration structure, default values, and validation.
package config

import (
	"strings"
	"time"
)

// CrawlConfig holds the configuration for a single crawl. It is assembled
// once before the crawl starts and never mutated afterwards.
type CrawlConfig struct {
	// Crawl scope
	SeedURL        string   `mapstructure:"seed_url" yaml:"seed_url"`               // Starting URL for the crawl
	Limit          int      `mapstructure:"limit" yaml:"limit"`                     // Maximum pages to admit (0=unlimited)
	AllowedDomains []string `mapstructure:"allowed_domains" yaml:"allowed_domains"` // Hosts the crawl is restricted to (empty=all)

	// HTTP behavior
	RequestDelay   time.Duration `mapstructure:"request_delay" yaml:"request_delay"`     // Delay between requests
	RequestTimeout time.Duration `mapstructure:"request_timeout" yaml:"request_timeout"` // Per-request timeout
	UserAgent      string        `mapstructure:"user_agent" yaml:"user_agent"`           // HTTP User-Agent header

	// Output
	OutputPath   string `mapstructure:"output_path" yaml:"output_path"`     // Path to the JSONL output file
	DatabasePath string `mapstructure:"database_path" yaml:"database_path"` // Optional SQLite archive (empty=disabled)
	StoreHTML    bool   `mapstructure:"store_html" yaml:"store_html"`       // Keep raw HTML in exported records
}

// DefaultConfig returns a configuration with default values.
func DefaultConfig() *CrawlConfig {
	return &CrawlConfig{
		Limit:          0, // unlimited
		RequestDelay:   100 * time.Millisecond,
		RequestTimeout: 30 * time.Second,
		UserAgent:      "Spiderman/1.0",
		OutputPath:     "./crawl.jsonl",
	}
}

// Validate checks if the configuration is valid. An empty seed URL is the
// fatal error class: it must be reported before any fetch occurs.
func (c *CrawlConfig) Validate() error {
	if strings.TrimSpace(c.SeedURL) == "" {
		return ErrEmptySeedURL
	}

	if c.Limit < 0 {
		return ErrNegativeLimit
	}

	if c.RequestTimeout <= 0 {
		return ErrInvalidTimeout
	}

	if c.OutputPath == "" {
		return ErrEmptyOutputPath
	}

	// Enforce a minimum delay so a misconfigured crawl cannot hammer a host
	if c.RequestDelay < 10*time.Millisecond {
		c.RequestDelay = 10 * time.Millisecond
	}

	return nil
}
