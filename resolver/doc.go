// Package resolver resolves request parameters from clean URLs.
//
// A clean URL carries its parameters as path segments instead of a query
// string. The path is split on '/' and consecutive segments are paired up
// as key/value parameters:
//
//	params := resolver.Resolve("/pag/123/key1/value1")
//	// params["pag"] == "123", params["key1"] == "value1"
//
// # Page Alias
//
// The first segment identifies the page. When it is the page marker
// ("pag" by default) it starts an ordinary pair whose value is the page
// identifier. Any other first segment is a page alias and is stored under
// the alias key ("pag_alias" by default):
//
//	params := resolver.Resolve("/login/redirect/%2F")
//	// params["pag_alias"] == "login", params["redirect"] == "/"
//
// The alias is written after all pairs, so it replaces a pair that uses the
// alias key.
//
// # Decoding
//
// Keys and values are decoded exactly once with Unescape, which turns '+'
// into a space and "%XX" into the corresponding byte. Malformed escapes are
// kept as-is. Resolve is total: every input, including the empty string,
// yields a non-nil Params.
//
// A trailing key without a value maps to the empty string, and a literal
// query string ("?a=1") is ignored.
//
// # Configuration
//
// New builds a Resolver with a custom page marker and alias key. Config
// values can be decoded from YAML with ParseConfig:
//
//	rs, err := resolver.New(resolver.Config{PageMarker: "page", AliasKey: "page_alias"})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	params := rs.Resolve(r.RequestURI)
//
// # Integration
//
// MergeInto writes params into a caller-owned Store such as url.Values.
// ResolveFrom reads the request target through the RequestTarget
// capability; HTTPRequest adapts an *http.Request.
//
// Middleware resolves every request and stores the params in the request
// context. Optionally it also merges them into the request URL query:
//
//	mw, err := resolver.Middleware(resolver.MiddlewareConfig{MergeQuery: true})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	http.Handle("/", mw(handler))
//
//	func handler(w http.ResponseWriter, r *http.Request) {
//	    if page, ok := resolver.ParamGet(r, "pag"); ok {
//	        fmt.Fprintf(w, "page %s\n", page)
//	    }
//	    fmt.Fprintf(w, "alias %s\n", r.URL.Query().Get("pag_alias"))
//	}
//
// With MergeQuery the resolved params replace query pairs of the same key.
// All other pairs of the original query string are kept as sent.
package resolver
