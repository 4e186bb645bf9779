package models

import (
	"net/url"
	"strings"
)

// Cookie is a cookie as the host runtime reports it.
type Cookie struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Domain string `json:"domain"`
	Path   string `json:"path"`
}

// CookieKey identifies a cookie for de-duplication.
type CookieKey struct {
	Name, Domain, Path string
}

// Key returns the (name, domain, path) identity of the cookie.
func (c Cookie) Key() CookieKey {
	return CookieKey{Name: c.Name, Domain: c.Domain, Path: c.Path}
}

// Document is the host's currently active document.
type Document struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

// Domain returns the lower-cased hostname of the document url.
func (d Document) Domain() string {
	u, err := url.Parse(d.URL)
	if err != nil {
		return ""
	}
	return strings.ToLower(u.Hostname())
}
