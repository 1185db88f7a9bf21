package export

const schemaSQL = `
-- Archived page records, keyed by canonical URL
CREATE TABLE IF NOT EXISTS pages (
    url TEXT PRIMARY KEY,
    title TEXT,
    description TEXT,
    content TEXT,
    raw_html TEXT,
    metadata TEXT,
    crawled_at DATETIME NOT NULL
);

-- Outbound link graph: one row per (source, target) pair
CREATE TABLE IF NOT EXISTS links (
    source_url TEXT NOT NULL,
    target_url TEXT NOT NULL,
    PRIMARY KEY (source_url, target_url)
);

CREATE INDEX IF NOT EXISTS idx_links_target ON links(target_url);
`
