package host

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-pass-sync/models"
)

// NormalizeDomain lower-cases d and drops a leading dot.
func NormalizeDomain(d string) string {
	return strings.ToLower(strings.TrimPrefix(strings.TrimSpace(d), "."))
}

// DomainMatches reports whether a cookie set for cookieDomain belongs to
// domain or to one of its subdomains.
func DomainMatches(cookieDomain, domain string) bool {
	cd, d := NormalizeDomain(cookieDomain), NormalizeDomain(domain)
	if cd == "" || d == "" {
		return false
	}
	return cd == d || strings.HasSuffix(cd, "."+d)
}

// sentTo reports whether c would be sent with a request to u.
func sentTo(c models.Cookie, u *url.URL) bool {
	host := strings.ToLower(u.Hostname())
	cd := NormalizeDomain(c.Domain)
	if host != cd && !strings.HasSuffix(host, "."+cd) {
		return false
	}

	cookiePath := c.Path
	if cookiePath == "" {
		cookiePath = "/"
	}
	reqPath := u.EscapedPath()
	if reqPath == "" {
		reqPath = "/"
	}
	return strings.HasPrefix(reqPath, cookiePath)
}

// ParseCookieLine parses a document.cookie style assignment such as
// "sid=abc; path=/". Attributes other than path and domain are ignored.
func ParseCookieLine(line string) (models.Cookie, error) {
	parts := strings.Split(line, ";")

	name, value, ok := strings.Cut(parts[0], "=")
	name = strings.TrimSpace(name)
	if !ok || name == "" {
		return models.Cookie{}, fmt.Errorf("invalid cookie line %q", line)
	}

	c := models.Cookie{Name: name, Value: strings.TrimSpace(value), Path: "/"}
	for _, attr := range parts[1:] {
		k, v, _ := strings.Cut(attr, "=")
		switch strings.ToLower(strings.TrimSpace(k)) {
		case "path":
			if p := strings.TrimSpace(v); p != "" {
				c.Path = p
			}
		case "domain":
			c.Domain = strings.TrimSpace(v)
		}
	}
	return c, nil
}
