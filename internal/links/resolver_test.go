package links

import "testing"

func TestIsCrawlable(t *testing.T) {
	valid := []string{
		"http://example.com",
		"https://example.com",
		"/about",
		"../page.html",
		"page.html",
		"//cdn.example.com/f.js",
	}
	for _, href := range valid {
		if !IsCrawlable(href) {
			t.Errorf("IsCrawlable(%q) = false, want true", href)
		}
	}

	invalid := []string{
		"",
		"   ",
		"#section",
		"javascript:void(0)",
		"JavaScript:void(0)",
		"mailto:test@example.com",
		"tel:+1234567890",
		"data:image/png;base64,123",
	}
	for _, href := range invalid {
		if IsCrawlable(href) {
			t.Errorf("IsCrawlable(%q) = true, want false", href)
		}
	}
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name     string
		ref      string
		base     string
		expected string
	}{
		{
			name:     "absolute URL passes through",
			ref:      "http://other.com/page",
			base:     "http://example.com",
			expected: "http://other.com/page",
		},
		{
			name:     "absolute URL keeps its own scheme",
			ref:      "https://secure.com/page",
			base:     "http://example.com",
			expected: "https://secure.com/page",
		},
		{
			name:     "absolute path",
			ref:      "/about",
			base:     "http://example.com/some/path",
			expected: "http://example.com/about",
		},
		{
			name:     "absolute path with segments",
			ref:      "/contact/us",
			base:     "http://example.com/some/path",
			expected: "http://example.com/contact/us",
		},
		{
			name:     "relative to directory base",
			ref:      "contact.html",
			base:     "http://example.com/blog/",
			expected: "http://example.com/blog/contact.html",
		},
		{
			name:     "relative drops base filename",
			ref:      "post.html",
			base:     "http://example.com/blog/index.html",
			expected: "http://example.com/blog/post.html",
		},
		{
			name:     "parent directory",
			ref:      "../page.html",
			base:     "http://example.com/a/b/c/",
			expected: "http://example.com/a/b/page.html",
		},
		{
			name:     "current directory marker",
			ref:      "./page.html",
			base:     "http://example.com/a/",
			expected: "http://example.com/a/page.html",
		},
		{
			name:     "parent never escapes root",
			ref:      "../../../../page.html",
			base:     "http://example.com/a/",
			expected: "http://example.com/page.html",
		},
		{
			name:     "protocol-relative inherits https",
			ref:      "//cdn.example.com/f.js",
			base:     "https://example.com",
			expected: "https://cdn.example.com/f.js",
		},
		{
			name:     "protocol-relative inherits http",
			ref:      "//cdn.example.com/f.js",
			base:     "http://example.com",
			expected: "http://cdn.example.com/f.js",
		},
		{
			name:     "fragment stripped",
			ref:      "http://example.com/page#section",
			base:     "http://example.com",
			expected: "http://example.com/page",
		},
		{
			name:     "base without path",
			ref:      "page.html",
			base:     "http://example.com",
			expected: "http://example.com/page.html",
		},
		{
			name:     "surrounding whitespace trimmed",
			ref:      "  /about  ",
			base:     "http://example.com",
			expected: "http://example.com/about",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Resolve(tt.ref, tt.base)
			if !ok {
				t.Fatalf("Resolve(%q, %q) failed", tt.ref, tt.base)
			}
			if got != tt.expected {
				t.Errorf("Resolve(%q, %q) = %q, want %q", tt.ref, tt.base, got, tt.expected)
			}
		})
	}
}

func TestResolveUnparseableBase(t *testing.T) {
	for _, base := range []string{"example.com", "not a url", ""} {
		if got, ok := Resolve("/about", base); ok {
			t.Errorf("Resolve(/about, %q) = %q, want failure", base, got)
		}
	}

	// An absolute reference resolves regardless of the base
	if _, ok := Resolve("http://example.com/x", "garbage"); !ok {
		t.Error("Expected absolute reference to resolve against any base")
	}
}
