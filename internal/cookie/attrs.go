package cookie

import "strings"

// Attribute names kept inside the site's cookies.
const (
	AttrSeed      = "seed"
	AttrSelection = "selection"
	AttrAccount   = "account"
)

// Attr is one key=value pair inside a cookie value.
type Attr struct {
	Key   string
	Value string
}

// Attrs is an ordered attribute list, encoded as key=value pairs joined by
// ':'. A ':' or '%' inside a value is percent-encoded so it survives the
// round trip.
type Attrs []Attr

var attrEscaper = strings.NewReplacer("%", "%25", ":", "%3A")

// ParseAttrs decodes a colon-separated list. Empty items are skipped; an
// item without '=' becomes a key with an empty value.
func ParseAttrs(s string) Attrs {
	var attrs Attrs
	for _, item := range strings.Split(s, ":") {
		if item == "" {
			continue
		}
		key, value, _ := strings.Cut(item, "=")
		attrs = append(attrs, Attr{Key: key, Value: Unescape(value)})
	}
	return attrs
}

// Get returns the value of the last occurrence of key.
func (a Attrs) Get(key string) (string, bool) {
	for i := len(a) - 1; i >= 0; i-- {
		if a[i].Key == key {
			return a[i].Value, true
		}
	}
	return "", false
}

// Set replaces the value of key in place, or appends the pair. Duplicates
// of key left by older writers are dropped.
func (a Attrs) Set(key, value string) Attrs {
	out := make(Attrs, 0, len(a)+1)
	found := false
	for _, attr := range a {
		if attr.Key != key {
			out = append(out, attr)
			continue
		}
		if !found {
			out = append(out, Attr{Key: key, Value: value})
			found = true
		}
	}
	if !found {
		out = append(out, Attr{Key: key, Value: value})
	}
	return out
}

// Delete removes every occurrence of key.
func (a Attrs) Delete(key string) Attrs {
	out := make(Attrs, 0, len(a))
	for _, attr := range a {
		if attr.Key != key {
			out = append(out, attr)
		}
	}
	return out
}

// String encodes the list.
func (a Attrs) String() string {
	parts := make([]string, len(a))
	for i, attr := range a {
		parts[i] = attr.Key + "=" + attrEscaper.Replace(attr.Value)
	}
	return strings.Join(parts, ":")
}
