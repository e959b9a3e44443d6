package theme

import (
	"regexp"
	"strings"
)

var protocolRE = regexp.MustCompile(`^([a-zA-Z][a-zA-Z0-9+.-]*:|//)`)

// Resolver turns logical asset and page paths into URLs under the site's base URL.
type Resolver struct {
	// SiteURL is the scheme and host the site is deployed to, used when Absolute is set.
	SiteURL  string
	// BaseURL is the path the site is served under. Normalised to start and end with "/".
	BaseURL  string
	Absolute bool
}

// NewResolver returns a Resolver with a normalised base URL.
func NewResolver(siteURL, baseURL string) Resolver {
	return Resolver{
		SiteURL: strings.TrimSuffix(siteURL, "/"),
		BaseURL: normaliseBase(baseURL),
	}
}

func normaliseBase(base string) string {
	if !strings.HasPrefix(base, "/") {
		base = "/" + base
	}
	if !strings.HasSuffix(base, "/") {
		base += "/"
	}
	return base
}

// Resolve returns the URL for path. Empty paths, fragments and URLs that
// already carry a protocol are returned unchanged.
func (r Resolver) Resolve(path string) string {
	if path == "" || strings.HasPrefix(path, "#") || protocolRE.MatchString(path) {
		return path
	}

	base := normaliseBase(r.BaseURL)
	if path == strings.TrimSuffix(base, "/") {
		return base
	}

	resolved := path
	if !strings.HasPrefix(path, base) {
		resolved = base + strings.TrimPrefix(path, "/")
	}
	if r.Absolute {
		return strings.TrimSuffix(r.SiteURL, "/") + resolved
	}
	return resolved
}
