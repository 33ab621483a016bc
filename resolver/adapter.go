package resolver

import (
	"net/http"
	"strings"
)

// Store is a caller-owned parameter store that resolved params can be
// merged into. url.Values and http.Header both satisfy it.
type Store interface {
	Set(key, value string)
}

// MergeInto writes every entry of params into store, replacing values of
// the same key. Entries already in store that params does not name are
// left untouched.
func MergeInto(store Store, params Params) {
	for key, value := range params {
		store.Set(key, value)
	}
}

// RequestTarget supplies the raw request target (path plus optional query
// string) of the current request.
type RequestTarget interface {
	RequestTarget() string
}

// RequestTargetFunc adapts an ordinary function to RequestTarget.
type RequestTargetFunc func() string

// RequestTarget implements RequestTarget.
func (f RequestTargetFunc) RequestTarget() string {
	return f()
}

// HTTPRequest returns a RequestTarget for r. It prefers r.RequestURI, which
// the server sets to the unmodified request-target, when it is in origin
// form. Absolute-form targets (proxy requests) and client-built requests fall
// back to r.URL.RequestURI, which keeps the escaped path.
func HTTPRequest(r *http.Request) RequestTarget {
	return RequestTargetFunc(func() string {
		if strings.HasPrefix(r.RequestURI, "/") {
			return r.RequestURI
		}
		if r.URL == nil {
			return ""
		}
		return r.URL.RequestURI()
	})
}

// ResolveFrom resolves the request target supplied by src.
func (rs *Resolver) ResolveFrom(src RequestTarget) Params {
	return rs.Resolve(src.RequestTarget())
}

// ResolveFrom resolves the request target supplied by src with the default
// configuration.
func ResolveFrom(src RequestTarget) Params {
	return defaultResolver.ResolveFrom(src)
}
