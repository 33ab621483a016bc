package resolver

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultPageMarker is the first path segment that starts an explicit
	// page/identifier pair instead of a page alias.
	DefaultPageMarker = "pag"

	// DefaultAliasKey is the parameter name under which a leading page
	// alias segment is stored.
	DefaultAliasKey = "pag_alias"
)

var (
	// ErrInvalidPageMarker is returned when the page marker contains a
	// character that can never appear inside a single path segment.
	ErrInvalidPageMarker = errors.New("resolver: page marker must not contain '/' or '?'")

	// ErrInvalidAliasKey is returned when the alias key is blank.
	ErrInvalidAliasKey = errors.New("resolver: alias key must not be blank")
)

// Config configures the parameter resolver.
type Config struct {
	// PageMarker is the literal first segment that suppresses page alias
	// handling. Defaults to DefaultPageMarker when empty.
	PageMarker string `json:"page_marker" yaml:"page_marker"`

	// AliasKey is the parameter name for the page alias. Defaults to
	// DefaultAliasKey when empty.
	AliasKey string `json:"alias_key" yaml:"alias_key"`
}

// withDefaults returns a copy of cfg with empty fields set to their defaults.
func (cfg Config) withDefaults() Config {
	if cfg.PageMarker == "" {
		cfg.PageMarker = DefaultPageMarker
	}
	if cfg.AliasKey == "" {
		cfg.AliasKey = DefaultAliasKey
	}
	return cfg
}

// Validate reports whether the config, after defaults are applied, can be
// used to build a Resolver.
func (cfg Config) Validate() error {
	cfg = cfg.withDefaults()

	if strings.ContainsAny(cfg.PageMarker, "/?") {
		return ErrInvalidPageMarker
	}
	if strings.TrimSpace(cfg.AliasKey) == "" {
		return ErrInvalidAliasKey
	}

	return nil
}

// ParseConfig decodes a YAML document into a Config. Unknown fields are
// rejected. An empty document yields the zero Config.
func ParseConfig(data []byte) (Config, error) {
	var cfg Config

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("resolver: decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}
