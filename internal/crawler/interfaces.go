package crawler

import (
	"context"

	"github.com/vrn21/spiderman/internal/document"
)

// Fetcher turns a URL into page content or a failure. Implementations cover
// connection, DNS, timeout, and malformed-response errors with a non-nil
// error return; the orchestrator never inspects the failure beyond counting
// it.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (*FetchResult, error)
}

// Exporter appends one finished page record to a sink.
type Exporter interface {
	Append(doc *document.Document) error
}
