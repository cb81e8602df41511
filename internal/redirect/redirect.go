// Package redirect builds the hand-off URL that sends an unauthenticated user
// to the login page and back to where they were.
package redirect

import (
	"fmt"
	"net/url"
	"strings"
)

// Param is the query parameter the login page reads the return path from.
const Param = "redirect"

// LoginRedirector builds login URLs for a fixed login page.
type LoginRedirector struct {
	login *url.URL
}

// New parses loginURL, which may be a path ("/login") or an absolute URL.
func New(loginURL string) (*LoginRedirector, error) {
	if strings.TrimSpace(loginURL) == "" {
		return nil, fmt.Errorf("redirect.New: login URL is required")
	}
	u, err := url.Parse(loginURL)
	if err != nil {
		return nil, fmt.Errorf("redirect.New: %w", err)
	}
	return &LoginRedirector{login: u}, nil
}

// Target returns the login URL carrying returnTo as the redirect parameter.
// Anything that is not a local path is replaced by "/" so the hand-off can
// never bounce the user to another host.
func (r *LoginRedirector) Target(returnTo string) string {
	u := *r.login
	q := u.Query()
	q.Set(Param, SafePath(returnTo))
	u.RawQuery = q.Encode()
	return u.String()
}

// SafePath returns p if it is a path on this site and "/" otherwise.
func SafePath(p string) string {
	if !strings.HasPrefix(p, "/") || strings.HasPrefix(p, "//") || strings.HasPrefix(p, "/\\") {
		return "/"
	}
	u, err := url.Parse(p)
	if err != nil || u.Scheme != "" || u.Host != "" {
		return "/"
	}
	return p
}
