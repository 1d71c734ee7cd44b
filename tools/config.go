package tools

import (
	"fmt"

	"github.com/weburi/weburi/std/log"
	"github.com/weburi/weburi/std/uri"
	"github.com/weburi/weburi/std/uri/inet"
)

type Config struct {
	Parser ParserConfig `json:"parser"`
	Log    LogConfig    `json:"log"`
	Store  StoreConfig  `json:"store"`
}

type ParserConfig struct {
	// Preset is "strict" (RFC 3986) or "loose" (WHATWG).
	Preset string `json:"preset"`
	// The fields below override the preset when set.
	AllowRelative    *bool             `json:"allow_relative"`
	IPv4             *inet.IPv4Options `json:"ipv4"`
	ValidatePunycode *bool             `json:"validate_punycode"`
	CheckLabels      *bool             `json:"check_labels"`
}

type LogConfig struct {
	Level log.Level `json:"level"`
	Json  bool      `json:"json"`
}

type StoreConfig struct {
	// Backend is "memory", "badger" or "sqlite".
	Backend string `json:"backend"`
	// Directory of a badger store or file of a sqlite store.
	Path string `json:"path"`
}

func DefaultConfig() *Config {
	return &Config{
		Parser: ParserConfig{Preset: "strict"},
		Log:    LogConfig{Level: log.LevelInfo},
		Store:  StoreConfig{Backend: "memory"},
	}
}

// Options builds the parser options from the preset and its overrides.
func (c *ParserConfig) Options() (uri.Options, error) {
	var opts uri.Options
	switch c.Preset {
	case "", "strict":
		opts = uri.Strict
	case "loose":
		opts = uri.Loose
	default:
		return opts, fmt.Errorf("unknown parser preset: %s", c.Preset)
	}

	if c.AllowRelative != nil {
		opts.AllowRelative = *c.AllowRelative
	}
	if c.IPv4 != nil {
		opts.IPv4 = *c.IPv4
	}
	if c.ValidatePunycode != nil {
		opts.CheckPunycode = *c.ValidatePunycode
	}
	if c.CheckLabels != nil {
		opts.CheckLabels = *c.CheckLabels
	}
	return opts, nil
}

// Desc returns the store description understood by storage.Open.
func (c *StoreConfig) Desc() (string, error) {
	switch c.Backend {
	case "", "memory":
		return "memory", nil
	case "badger", "sqlite":
		if c.Path == "" {
			return "", fmt.Errorf("%s store needs a path", c.Backend)
		}
		return c.Backend + ":" + c.Path, nil
	default:
		return "", fmt.Errorf("unknown store backend: %s", c.Backend)
	}
}

// Parse checks the configuration.
func (c *Config) Parse() error {
	if _, err := c.Parser.Options(); err != nil {
		return err
	}
	if _, err := c.Store.Desc(); err != nil {
		return err
	}
	return nil
}
