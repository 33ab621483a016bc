// Command cleanurl prints the request parameters resolved from clean URL
// request targets.
//
//	cleanurl -format yaml /pag/123/redirect/%2F /login/key/value
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/vitalvas/cleanurl/resolver"
	"gopkg.in/yaml.v3"
)

var errUnknownFormat = errors.New("unknown output format")

// result is one resolved request target.
type result struct {
	Target string          `json:"target" yaml:"target"`
	Params resolver.Params `json:"params" yaml:"params"`
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("cleanurl: ")

	if err := run(os.Args[1:], os.Stdout); err != nil {
		log.Fatal(err)
	}
}

func run(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("cleanurl", flag.ContinueOnError)

	var configPath, format string
	fs.StringVar(&configPath, "config", "", "Path to a YAML resolver config file")
	fs.StringVar(&format, "format", "json", "Output format: json or yaml")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if format != "json" && format != "yaml" {
		return fmt.Errorf("%w: %q", errUnknownFormat, format)
	}

	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	rs, err := resolver.New(cfg)
	if err != nil {
		return err
	}

	results := make([]result, 0, fs.NArg())
	for _, target := range fs.Args() {
		results = append(results, result{Target: target, Params: rs.Resolve(target)})
	}

	return write(out, format, results)
}

func loadConfig(path string) (resolver.Config, error) {
	if path == "" {
		return resolver.Config{}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return resolver.Config{}, fmt.Errorf("read config: %w", err)
	}

	return resolver.ParseConfig(data)
}

func write(out io.Writer, format string, results []result) error {
	if format == "yaml" {
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(results); err != nil {
			return err
		}
		return enc.Close()
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(results)
}
