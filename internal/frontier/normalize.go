package frontier

import "strings"

// Normalize converts a URL to its canonical form used as the dedup key:
// lowercased, fragment stripped, default ports (80/443) stripped, and the
// trailing slash removed unless the path is root. Normalization is
// idempotent: Normalize(Normalize(u)) == Normalize(u).
func Normalize(raw string) string {
	u := strings.ToLower(strings.TrimSpace(raw))

	// Strip fragment
	if i := strings.Index(u, "#"); i >= 0 {
		u = u[:i]
	}

	// Strip default ports
	u = strings.ReplaceAll(u, ":80/", "/")
	u = strings.ReplaceAll(u, ":443/", "/")
	u = strings.TrimSuffix(u, ":80")
	u = strings.TrimSuffix(u, ":443")

	// Strip trailing slash, keeping bare "http://" and root URLs intact
	if strings.HasSuffix(u, "/") && len(u) > 8 {
		if i := strings.Index(u, "://"); i >= 0 && strings.Contains(u[i+3:], "/") {
			u = u[:len(u)-1]
		}
	}

	return u
}

// Host extracts the host portion of a URL: the scheme is stripped, the
// remainder is cut at the first slash, and any :port suffix is removed.
// Returns an empty string if no host can be found.
func Host(u string) string {
	rest := u
	if i := strings.Index(rest, "://"); i >= 0 {
		rest = rest[i+3:]
	}
	if i := strings.Index(rest, "/"); i >= 0 {
		rest = rest[:i]
	}
	if i := strings.Index(rest, ":"); i >= 0 {
		rest = rest[:i]
	}
	return rest
}
