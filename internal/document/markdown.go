package document

import (
	"strings"

	"golang.org/x/net/html"
)

// ToMarkdown converts HTML markup to a Markdown-flavored text body. Headings,
// paragraphs, lists, emphasis, and links are rendered with their Markdown
// equivalents; script and style content is dropped. Empty input yields an
// empty string, and runs of blank lines are collapsed to at most two.
func ToMarkdown(markup string) string {
	if strings.TrimSpace(markup) == "" {
		return ""
	}

	var b strings.Builder
	z := html.NewTokenizer(strings.NewReader(markup))

	skipTag := "" // inside <script>/<style>, text is dropped
	anchorHref := ""
	inAnchor := false

	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			break
		}

		switch tt {
		case html.StartTagToken, html.SelfClosingTagToken:
			raw, hasAttr := z.TagName()
			tag := string(raw)

			if skipTag != "" {
				continue
			}

			switch tag {
			case "script", "style":
				if tt == html.StartTagToken {
					skipTag = tag
				}
			case "h1", "h2", "h3", "h4", "h5", "h6":
				level := int(tag[1] - '0')
				b.WriteString("\n\n" + strings.Repeat("#", level) + " ")
			case "p", "div", "section", "article", "blockquote":
				b.WriteString("\n\n")
			case "br":
				b.WriteString("\n")
			case "hr":
				b.WriteString("\n\n---\n\n")
			case "li":
				b.WriteString("\n- ")
			case "ul", "ol":
				b.WriteString("\n")
			case "strong", "b":
				b.WriteString("**")
			case "em", "i":
				b.WriteString("*")
			case "a":
				anchorHref = ""
				if hasAttr {
					for {
						key, val, more := z.TagAttr()
						if string(key) == "href" {
							anchorHref = strings.TrimSpace(string(val))
						}
						if !more {
							break
						}
					}
				}
				if tt == html.StartTagToken && anchorHref != "" && !strings.HasPrefix(anchorHref, "#") {
					inAnchor = true
					b.WriteString("[")
				}
			}

		case html.EndTagToken:
			raw, _ := z.TagName()
			tag := string(raw)

			if skipTag != "" {
				if tag == skipTag {
					skipTag = ""
				}
				continue
			}

			switch tag {
			case "h1", "h2", "h3", "h4", "h5", "h6", "p", "div", "section", "article", "blockquote":
				b.WriteString("\n\n")
			case "ul", "ol":
				b.WriteString("\n")
			case "strong", "b":
				b.WriteString("**")
			case "em", "i":
				b.WriteString("*")
			case "a":
				if inAnchor {
					b.WriteString("](" + anchorHref + ")")
					inAnchor = false
				}
			}

		case html.TextToken:
			if skipTag != "" {
				continue
			}
			b.WriteString(normalizeSpace(string(z.Text())))
		}
	}

	return collapseBlankLines(b.String())
}

// normalizeSpace collapses internal whitespace runs to single spaces while
// preserving one boundary space on either side, so words separated by inline
// tags stay separated.
func normalizeSpace(s string) string {
	if s == "" {
		return ""
	}

	fields := strings.Fields(s)
	if len(fields) == 0 {
		return " "
	}

	out := strings.Join(fields, " ")
	if s[0] == ' ' || s[0] == '\n' || s[0] == '\t' || s[0] == '\r' {
		out = " " + out
	}
	last := s[len(s)-1]
	if last == ' ' || last == '\n' || last == '\t' || last == '\r' {
		out += " "
	}
	return out
}

// collapseBlankLines limits consecutive blank lines to two and trims the
// result.
func collapseBlankLines(s string) string {
	var out strings.Builder
	blank := 0

	for _, line := range strings.Split(s, "\n") {
		if strings.TrimSpace(line) == "" {
			blank++
			if blank <= 2 {
				out.WriteByte('\n')
			}
			continue
		}
		blank = 0
		out.WriteString(strings.TrimRight(strings.TrimLeft(line, " "), " "))
		out.WriteByte('\n')
	}

	return strings.TrimSpace(out.String())
}
