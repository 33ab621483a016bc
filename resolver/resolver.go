package resolver

import "strings"

// Params holds request parameters resolved from a clean URL.
type Params map[string]string

// Resolver converts clean URL request targets into Params. A Resolver is
// immutable after New and safe for concurrent use.
type Resolver struct {
	pageMarker string
	aliasKey   string
}

// New returns a Resolver for cfg. Empty config fields use their defaults.
func New(cfg Config) (*Resolver, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	cfg = cfg.withDefaults()

	return &Resolver{
		pageMarker: cfg.PageMarker,
		aliasKey:   cfg.AliasKey,
	}, nil
}

var defaultResolver = &Resolver{
	pageMarker: DefaultPageMarker,
	aliasKey:   DefaultAliasKey,
}

// Resolve resolves requestTarget with the default configuration.
//
//	Resolve("/pag/123/redirect/%2F") // {"pag": "123", "redirect": "/"}
//	Resolve("/login/redirect/%2F")   // {"pag_alias": "login", "redirect": "/"}
func Resolve(requestTarget string) Params {
	return defaultResolver.Resolve(requestTarget)
}

// Resolve splits the path of requestTarget into segments and pairs them up
// as key/value parameters. A literal query string is ignored. When the first
// segment is not the page marker it is stored under the alias key instead of
// starting a pair. A trailing key without a value maps to "". Keys and values
// are percent-decoded once; later keys overwrite earlier ones and the alias
// overwrites a pair with the same key.
//
// The returned Params is never nil.
func (rs *Resolver) Resolve(requestTarget string) Params {
	parts := splitPath(requestTarget)
	specials := rs.specials(&parts)

	params := make(Params, len(parts)/2+len(specials))
	pairParams(params, parts)

	for key, value := range specials {
		params[key] = value
	}

	return params
}

// splitPath drops the query string and surrounding slashes from target and
// splits the rest on '/'. Empty segments between slashes are kept.
func splitPath(target string) []string {
	target, _, _ = strings.Cut(target, "?")

	target = strings.Trim(target, "/")
	if target == "" {
		return nil
	}

	return strings.Split(target, "/")
}

// specials removes a leading page alias segment from parts and returns it
// keyed by the alias key.
func (rs *Resolver) specials(parts *[]string) map[string]string {
	segs := *parts
	if len(segs) == 0 || segs[0] == rs.pageMarker {
		return nil
	}

	*parts = segs[1:]

	return map[string]string{rs.aliasKey: Unescape(segs[0])}
}

// pairParams writes consecutive segments of parts into params as decoded
// key/value pairs. An odd trailing key gets an empty value.
func pairParams(params Params, parts []string) {
	if len(parts)%2 != 0 {
		parts = append(parts, "")
	}

	for i := 0; i < len(parts); i += 2 {
		params[Unescape(parts[i])] = Unescape(parts[i+1])
	}
}
