package resolver

import (
	"net/http"
	"net/url"
	"strings"
)

// MiddlewareConfig configures the clean URL middleware behaviour.
type MiddlewareConfig struct {
	// Resolver configures how request targets are resolved.
	Resolver Config

	// MergeQuery, when true, merges the resolved params into the query of
	// the request URL seen by downstream handlers. Resolved values replace
	// query values with the same key; other query values are kept.
	MergeQuery bool

	// LogFunc is an optional callback invoked with the request and the
	// resolved params. When nil, no logging is performed.
	LogFunc func(r *http.Request, params Params)
}

// Middleware returns a middleware that resolves the clean URL of each
// request and stores the params in the request context, where they are
// available through RequestParams and ParamGet. It returns an error if the
// resolver config is invalid.
func Middleware(cfg MiddlewareConfig) (func(http.Handler) http.Handler, error) {
	rs, err := New(cfg.Resolver)
	if err != nil {
		return nil, err
	}

	mergeQuery := cfg.MergeQuery
	logFunc := cfg.LogFunc

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			params := rs.ResolveFrom(HTTPRequest(r))

			if logFunc != nil {
				logFunc(r, params)
			}

			ctx := NewContext(r.Context(), params)

			if mergeQuery && len(params) > 0 {
				r = r.Clone(ctx)
				r.URL.RawQuery = mergeRawQuery(r.URL.RawQuery, params)
			} else {
				r = r.WithContext(ctx)
			}

			next.ServeHTTP(w, r)
		})
	}, nil
}

// mergeRawQuery appends params to the raw query string. Existing pairs whose
// key is replaced by params are dropped; every other pair, including pairs
// url.ParseQuery would reject, is kept verbatim.
func mergeRawQuery(rawQuery string, params Params) string {
	resolved := make(url.Values, len(params))
	MergeInto(resolved, params)

	kept := make([]string, 0, strings.Count(rawQuery, "&")+1)
	for pair := range strings.SplitSeq(rawQuery, "&") {
		if pair == "" {
			continue
		}
		if !strings.Contains(pair, ";") {
			key, _, _ := strings.Cut(pair, "=")
			if key, err := url.QueryUnescape(key); err == nil {
				if _, ok := resolved[key]; ok {
					continue
				}
			}
		}
		kept = append(kept, pair)
	}

	kept = append(kept, resolved.Encode())

	return strings.Join(kept, "&")
}
