// Package links discovers hyperlinks in HTML markup: it extracts anchor
// targets, filters out non-navigable references, and resolves the rest into
// absolute, fragment-free URLs. Everything here is pure string work with no
// network or crawl-state dependencies.
package links

import (
	"strings"

	"golang.org/x/net/html"
)

// Extract scans the markup for anchor href targets, filters out references
// that cannot be crawled, and resolves the rest against the base URL. The
// result is deduplicated and ordered by first discovery. The scan is token
// based, so malformed markup yields whatever anchors can still be
// recognized instead of an error.
func Extract(markup, base string) []string {
	seen := make(map[string]struct{})
	var found []string

	z := html.NewTokenizer(strings.NewReader(markup))
	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			// io.EOF or an unrecoverable parse position; either way the
			// scan is done
			break
		}
		if tt != html.StartTagToken && tt != html.SelfClosingTagToken {
			continue
		}

		name, hasAttr := z.TagName()
		if len(name) != 1 || name[0] != 'a' || !hasAttr {
			continue
		}

		for {
			key, val, more := z.TagAttr()
			if string(key) == "href" {
				href := string(val)
				if IsCrawlable(href) {
					if abs, ok := Resolve(href, base); ok {
						if _, dup := seen[abs]; !dup {
							seen[abs] = struct{}{}
							found = append(found, abs)
						}
					}
				}
				break
			}
			if !more {
				break
			}
		}
	}

	return found
}
