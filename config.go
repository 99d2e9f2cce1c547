package main

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// Config holds the command line settings that may also come from a TOML
// file, like:
//
//	timeout = "5s"
//	labels = "prescan"
//	trace = true
//	trace-file = "trace.jsonl"
//
//	[quirks]
//	sub-adds = true
//
//	[aliases]
//	TOSTR = "CONVERT"
type Config struct {
	Timeout   duration          `toml:"timeout"`
	Labels    string            `toml:"labels"`
	Trace     bool              `toml:"trace"`
	TraceFile string            `toml:"trace-file"`
	Quirks    Quirks            `toml:"quirks"`
	Aliases   map[string]string `toml:"aliases"`
}

type duration struct{ time.Duration }

func (d *duration) UnmarshalText(text []byte) (err error) {
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

func (d duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// LoadConfig reads a TOML config file. Unknown keys are an error, so that a
// misspelled setting does not go unnoticed.
func LoadConfig(path string) (Config, error) {
	var cfg Config
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return cfg, fmt.Errorf("cannot load config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, key := range undecoded {
			keys[i] = key.String()
		}
		sort.Strings(keys)
		return cfg, fmt.Errorf("config %s: unknown keys %v", path, strings.Join(keys, ", "))
	}
	if err := cfg.validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (cfg Config) validate() error {
	if _, err := ParseLabelMode(cfg.Labels); err != nil {
		return err
	}
	if _, err := parseAliases(cfg.Aliases); err != nil {
		return err
	}
	if cfg.Timeout.Duration < 0 {
		return fmt.Errorf("negative timeout %v", cfg.Timeout)
	}
	return nil
}

// Options converts the config into VM options.
func (cfg Config) Options() ([]VMOption, error) {
	mode, err := ParseLabelMode(cfg.Labels)
	if err != nil {
		return nil, err
	}
	aliases, err := WithAliases(cfg.Aliases)
	if err != nil {
		return nil, err
	}
	return []VMOption{
		WithLabelMode(mode),
		WithQuirks(cfg.Quirks),
		aliases,
	}, nil
}
