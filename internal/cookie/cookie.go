// Package cookie keeps the client-side key/value strings the site stores in
// browser cookies: the remembered account and the last content seed.
package cookie

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Names of the cookies the site writes.
const (
	// StateCookie remembers the content workflow state (seed, selection).
	StateCookie = "24x7cs"
	// AccountCookie remembers the login account.
	AccountCookie = "24x7c"
)

// DefaultExpiryDays is how long a written cookie lives.
const DefaultExpiryDays = 180

var (
	// ErrNotFound is returned for a missing or expired cookie.
	ErrNotFound = errors.New("cookie not found")
	// ErrInvalidName is returned for a name that cannot be encoded.
	ErrInvalidName = errors.New("invalid cookie name")
	// ErrClosed is returned by a closed Store.
	ErrClosed = errors.New("cookie store closed")
)

// Cookie is one stored name/value pair with its attributes.
type Cookie struct {
	Name    string
	Value   string
	Expires time.Time // zero means session cookie
	Path    string
	Domain  string
	Secure  bool
}

// Expired reports whether the cookie has expired at now.
func (c Cookie) Expired(now time.Time) bool {
	return !c.Expires.IsZero() && !now.Before(c.Expires)
}

// String renders the cookie the way it is assigned to document.cookie:
// name=<percent-encoded value> followed by ;-separated attributes.
func (c Cookie) String() string {
	var b strings.Builder
	b.WriteString(c.Name)
	b.WriteByte('=')
	b.WriteString(Escape(c.Value))
	if !c.Expires.IsZero() {
		b.WriteString(";expires=")
		b.WriteString(c.Expires.UTC().Format(http.TimeFormat))
	}
	if c.Path != "" {
		b.WriteString(";path=")
		b.WriteString(c.Path)
	}
	if c.Domain != "" {
		b.WriteString(";domain=")
		b.WriteString(c.Domain)
	}
	if c.Secure {
		b.WriteString(";secure")
	}
	return b.String()
}

// ValidateName rejects names that would break the header encoding.
func ValidateName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty", ErrInvalidName)
	}
	if i := strings.IndexAny(name, "=;, \t\r\n"); i >= 0 {
		return fmt.Errorf("%w: %q contains %q", ErrInvalidName, name, name[i])
	}
	return nil
}

// uriComponent undoes the escapes url.QueryEscape adds beyond
// encodeURIComponent.
var uriComponent = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

// Escape percent-encodes v like encodeURIComponent: spaces become %20,
// never '+', and !'()* stay literal.
func Escape(v string) string {
	return uriComponent.Replace(url.QueryEscape(v))
}

// Unescape reverses Escape. A malformed escape leaves v as it is.
func Unescape(v string) string {
	s, err := url.PathUnescape(v)
	if err != nil {
		return v
	}
	return s
}

// ParseHeader parses a "name=value; name2=value2" list as read back from
// document.cookie. Values are decoded; pairs without a name are skipped and
// the first occurrence of a name wins.
func ParseHeader(header string) map[string]string {
	out := make(map[string]string)
	for _, part := range strings.Split(header, ";") {
		name, value, _ := strings.Cut(part, "=")
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if _, seen := out[name]; seen {
			continue
		}
		out[name] = Unescape(strings.TrimSpace(value))
	}
	return out
}
