// Package frontier owns the crawl work queue and the seen-set: which URLs
// are waiting for a visit, which have ever been admitted, and the policy
// (domain allow-list, page cap) that decides what gets in.
package frontier

import (
	"errors"
	"strings"
	"sync"
)

// ErrEmptySeed is returned when a frontier is created without a seed URL
var ErrEmptySeed = errors.New("seed URL cannot be empty")

// Frontier is the crawl frontier: a FIFO queue of canonical URLs awaiting a
// visit plus the set of canonical URLs ever admitted. A URL is admitted at
// most once; the queue never contains a URL missing from the seen-set and
// never contains duplicates. The zero value is not usable; create one with
// New. Safe for concurrent use.
type Frontier struct {
	mu             sync.Mutex
	queue          []string
	seen           map[string]struct{}
	maxPages       int // 0 = unlimited
	allowedDomains []string
}

// Option configures a Frontier.
type Option func(*Frontier)

// WithMaxPages caps the total number of URLs the frontier will admit.
// Zero or negative means unlimited.
func WithMaxPages(n int) Option {
	return func(f *Frontier) {
		if n > 0 {
			f.maxPages = n
		}
	}
}

// WithAllowedDomains restricts admission to URLs whose host exactly matches
// one of the given domains. Matching is case-insensitive and ignores ports.
func WithAllowedDomains(domains []string) Option {
	return func(f *Frontier) {
		for _, d := range domains {
			d = strings.ToLower(strings.TrimSpace(d))
			if d != "" {
				f.allowedDomains = append(f.allowedDomains, d)
			}
		}
	}
}

// New creates a frontier seeded with the given URL. The seed is normalized
// and admitted unconditionally as the first entry, bypassing the domain and
// cap filters. It lives for exactly one crawl.
func New(seed string, opts ...Option) (*Frontier, error) {
	if strings.TrimSpace(seed) == "" {
		return nil, ErrEmptySeed
	}

	f := &Frontier{
		seen: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(f)
	}

	u := Normalize(seed)
	f.queue = append(f.queue, u)
	f.seen[u] = struct{}{}

	return f, nil
}

// Add canonicalizes the URL and admits it to the frontier. It returns false
// if the URL was already seen, if its host is not on the configured
// allow-list, or if the page cap has been reached. The checks run in that
// order. The cap is enforced against the admitted count: once maxPages URLs
// have been admitted, nothing more gets in.
func (f *Frontier) Add(raw string) bool {
	u := Normalize(raw)

	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.seen[u]; ok {
		return false
	}

	if len(f.allowedDomains) > 0 {
		host := Host(u)
		matched := false
		for _, d := range f.allowedDomains {
			if host == d {
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}

	if f.maxPages > 0 && len(f.seen) >= f.maxPages {
		return false
	}

	f.queue = append(f.queue, u)
	f.seen[u] = struct{}{}
	return true
}

// Next pops and returns the front of the queue. Strict FIFO: URLs come back
// in discovery order, giving breadth-first traversal. The second return
// value is false when the queue is exhausted, which ends the crawl.
func (f *Frontier) Next() (string, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if len(f.queue) == 0 {
		return "", false
	}

	u := f.queue[0]
	f.queue = f.queue[1:]
	return u, true
}

// HasPending reports whether any URLs are waiting for a visit.
func (f *Frontier) HasPending() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.queue) > 0
}

// Seen reports whether the URL (in canonical form) has ever been admitted.
func (f *Frontier) Seen(raw string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.seen[Normalize(raw)]
	return ok
}

// Stats returns the total number of URLs ever admitted, the number still
// queued, and the number already handed out for processing.
func (f *Frontier) Stats() (total, queued, processed int) {
	f.mu.Lock()
	defer f.mu.Unlock()

	total = len(f.seen)
	queued = len(f.queue)
	processed = total - queued
	return total, queued, processed
}
