package document

import (
	"strings"

	"golang.org/x/net/html"
)

// Metadata holds the values extracted from a page's head section. Missing
// tags leave their field empty; extraction itself never fails.
type Metadata struct {
	Title       string
	Description string
	Keywords    string
	Author      string
	Other       map[string]string
}

// ExtractMetadata scans the markup for the title tag and name/content meta
// pairs. Well-known meta names fill the dedicated fields; anything else
// lands in Other under its original name. HTML entities in the extracted
// text are decoded by the tokenizer.
func ExtractMetadata(markup string) Metadata {
	md := Metadata{Other: make(map[string]string)}

	z := html.NewTokenizer(strings.NewReader(markup))
	inTitle := false

	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			return md
		}

		switch tt {
		case html.StartTagToken, html.SelfClosingTagToken:
			name, hasAttr := z.TagName()
			switch string(name) {
			case "title":
				inTitle = tt == html.StartTagToken
			case "meta":
				if hasAttr {
					readMetaTag(z, &md)
				}
			}

		case html.EndTagToken:
			name, _ := z.TagName()
			if string(name) == "title" {
				inTitle = false
			}

		case html.TextToken:
			if inTitle && md.Title == "" {
				md.Title = strings.TrimSpace(string(z.Text()))
			}
		}
	}
}

// readMetaTag consumes the attributes of a meta tag and records its
// name/content pair.
func readMetaTag(z *html.Tokenizer, md *Metadata) {
	var name, content string

	for {
		key, val, more := z.TagAttr()
		switch string(key) {
		case "name":
			name = string(val)
		case "content":
			content = string(val)
		}
		if !more {
			break
		}
	}

	if name == "" || content == "" {
		return
	}

	switch strings.ToLower(name) {
	case "description":
		md.Description = content
	case "keywords":
		md.Keywords = content
	case "author":
		md.Author = content
	default:
		md.Other[name] = content
	}
}
