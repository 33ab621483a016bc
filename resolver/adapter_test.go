package resolver

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMergeInto(t *testing.T) {
	t.Run("keeps existing entries", func(t *testing.T) {
		store := url.Values{"a": {"1"}, "b": {"2"}}

		MergeInto(store, Resolve("/?a=1;b=2"))

		assert.Equal(t, url.Values{"a": {"1"}, "b": {"2"}}, store)
	})

	t.Run("resolved values replace existing ones", func(t *testing.T) {
		store := url.Values{"pag": {"1", "2"}, "x": {"y"}}

		MergeInto(store, Resolve("/pag/3/redirect/%2F"))

		assert.Equal(t, url.Values{
			"pag":      {"3"},
			"redirect": {"/"},
			"x":        {"y"},
		}, store)
	})

	t.Run("empty value is stored", func(t *testing.T) {
		store := url.Values{}

		MergeInto(store, Resolve("/pag/123/key"))

		assert.Equal(t, []string{""}, store["key"])
	})

	t.Run("header store", func(t *testing.T) {
		store := http.Header{}

		MergeInto(store, Params{"x-page": "home"})

		assert.Equal(t, "home", store.Get("X-Page"))
	})
}

func TestResolveFrom(t *testing.T) {
	t.Run("function capability", func(t *testing.T) {
		src := RequestTargetFunc(func() string { return "/login/redirect/%2F" })

		assert.Equal(t, Params{"pag_alias": "login", "redirect": "/"}, ResolveFrom(src))
	})

	t.Run("custom resolver", func(t *testing.T) {
		rs, err := New(Config{AliasKey: "alias"})
		assert.NoError(t, err)

		src := RequestTargetFunc(func() string { return "/login" })
		assert.Equal(t, Params{"alias": "login"}, rs.ResolveFrom(src))
	})
}

func TestHTTPRequest(t *testing.T) {
	t.Run("uses request URI", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/pag/1/a%2Fb/c?x=1", nil)

		assert.Equal(t, "/pag/1/a%2Fb/c?x=1", HTTPRequest(req).RequestTarget())
	})

	t.Run("absolute form falls back to URL", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "http://example.com/pag/1?x=1", nil)

		assert.Equal(t, "/pag/1?x=1", HTTPRequest(req).RequestTarget())
		assert.Equal(t, Params{"pag": "1"}, ResolveFrom(HTTPRequest(req)))
	})

	t.Run("absolute form keeps encoded slash", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "http://example.com/pag/a%2Fb", nil)

		assert.Equal(t, Params{"pag": "a/b"}, ResolveFrom(HTTPRequest(req)))
	})

	t.Run("falls back to URL", func(t *testing.T) {
		req := &http.Request{URL: &url.URL{Path: "/pag/1", RawQuery: "x=1"}}

		assert.Equal(t, "/pag/1?x=1", HTTPRequest(req).RequestTarget())
	})

	t.Run("keeps encoded path from URL", func(t *testing.T) {
		req := &http.Request{URL: &url.URL{Path: "/pag/a/b", RawPath: "/pag/a%2Fb"}}

		assert.Equal(t, Params{"pag": "a/b"}, ResolveFrom(HTTPRequest(req)))
	})

	t.Run("no URL", func(t *testing.T) {
		assert.Equal(t, "", HTTPRequest(&http.Request{}).RequestTarget())
	})
}
