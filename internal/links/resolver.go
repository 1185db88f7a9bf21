package links

import "strings"

// nonNavigable lists href schemes that never lead to a crawlable page.
var nonNavigable = []string{"javascript:", "mailto:", "tel:", "data:"}

// IsCrawlable reports whether an href value is a candidate for crawling.
// Empty values, fragment-only references, and non-navigable schemes are
// rejected; everything else is a candidate.
func IsCrawlable(href string) bool {
	href = strings.TrimSpace(href)

	if href == "" {
		return false
	}

	if strings.HasPrefix(href, "#") {
		return false
	}

	lower := strings.ToLower(href)
	for _, scheme := range nonNavigable {
		if strings.HasPrefix(lower, scheme) {
			return false
		}
	}

	return true
}

// Resolve turns a candidate reference into an absolute, fragment-free URL
// using the given base. The second return value is false when the reference
// cannot be resolved, which happens only when a relative reference meets a
// base with no recognizable scheme.
func Resolve(ref, base string) (string, bool) {
	ref = strings.TrimSpace(ref)
	base = strings.TrimSpace(base)

	// Already absolute
	if strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") {
		return clean(ref), true
	}

	// Protocol-relative: inherit the scheme from the base
	if strings.HasPrefix(ref, "//") {
		scheme := "http:"
		if strings.HasPrefix(base, "https://") {
			scheme = "https:"
		}
		return clean(scheme + ref), true
	}

	scheme, host, path, ok := splitBase(base)
	if !ok {
		return "", false
	}

	// Absolute path on the base host
	if strings.HasPrefix(ref, "/") {
		return clean(scheme + "://" + host + ref), true
	}

	// Relative to the directory of the base path: drop the final segment
	// unless the path already names a directory.
	dir := path
	if !strings.HasSuffix(dir, "/") {
		if i := strings.LastIndex(dir, "/"); i >= 0 {
			dir = dir[:i+1]
		} else {
			dir = "/"
		}
	}

	return clean(resolveDots(scheme + "://" + host + dir + ref)), true
}

// splitBase breaks a base URL into scheme, host[:port], and path. A base
// without a scheme separator is unparseable.
func splitBase(base string) (scheme, host, path string, ok bool) {
	i := strings.Index(base, "://")
	if i < 0 {
		return "", "", "", false
	}

	scheme = base[:i]
	rest := base[i+3:]

	if j := strings.Index(rest, "/"); j >= 0 {
		return scheme, rest[:j], rest[j:], true
	}
	return scheme, rest, "/", true
}

// resolveDots collapses "." and ".." segments in the path of an absolute
// URL. A ".." pops the previous component only while more than one remains,
// so the path can never escape above its root.
func resolveDots(u string) string {
	i := strings.Index(u, "://")
	if i < 0 {
		return u
	}
	j := strings.Index(u[i+3:], "/")
	if j < 0 {
		return u
	}
	split := i + 3 + j
	prefix, path := u[:split], u[split:]

	parts := strings.Split(path, "/")
	resolved := make([]string, 0, len(parts))
	for _, part := range parts {
		switch part {
		case ".", "":
			// Keep only the leading empty component that anchors the root
			if len(resolved) == 0 {
				resolved = append(resolved, "")
			}
		case "..":
			if len(resolved) > 1 {
				resolved = resolved[:len(resolved)-1]
			}
		default:
			resolved = append(resolved, part)
		}
	}

	return prefix + strings.Join(resolved, "/")
}

// clean strips everything from the first '#' onward and trims whitespace.
func clean(u string) string {
	u = strings.TrimSpace(u)
	if i := strings.Index(u, "#"); i >= 0 {
		u = u[:i]
	}
	return u
}
