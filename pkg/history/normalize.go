package history

import (
	"fmt"
	"net/url"
	"strings"
)

// NormalizeURL canonicalizes an article URL for use as a history key.
// Scheme and host are lowercased, the mobile host variant collapses to
// the canonical one (en.m.wikipedia.org -> en.wikipedia.org), and
// fragment and query are dropped. Two URLs pointing at the same article
// in the same language normalize to the same key.
func NormalizeURL(raw string) (string, error) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return "", fmt.Errorf("parse url %q: %w", raw, err)
	}
	if u.Host == "" {
		return "", fmt.Errorf("url %q has no host", raw)
	}

	u.Scheme = strings.ToLower(u.Scheme)
	if u.Scheme == "" {
		u.Scheme = "https"
	}
	u.Host = canonicalHost(strings.ToLower(u.Host))
	u.Fragment = ""
	u.RawQuery = ""
	u.Path = strings.TrimSuffix(u.Path, "/")

	return u.String(), nil
}

// canonicalHost drops the mobile marker from language-variant hosts,
// e.g. "en.m.wikipedia.org" becomes "en.wikipedia.org"
func canonicalHost(host string) string {
	parts := strings.Split(host, ".")
	if len(parts) >= 4 && parts[1] == "m" {
		return strings.Join(append(parts[:1], parts[2:]...), ".")
	}
	return host
}
