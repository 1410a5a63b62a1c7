// Copyright 2025 The lyaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"slices"

	"github.com/BurntSushi/toml"

	"github.com/gvvaughan/lyaml"
)

// config holds the settings a TOML file may provide. Command line flags
// override the file.
type config struct {
	Format   string `toml:"format"`
	Marks    bool   `toml:"marks"`
	Color    string `toml:"color"`
	MaxSize  int    `toml:"max_size"`
	Encoding string `toml:"encoding"`
	LogLevel string `toml:"log_level"`
}

func defaultConfig() config {
	return config{
		Format:   "events",
		Color:    "auto",
		Encoding: string(lyaml.AnyEncoding),
		LogLevel: "error",
	}
}

// loadConfig decodes the TOML file at path over cfg. Unknown keys are an
// error.
func loadConfig(path string, cfg *config) error {
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return fmt.Errorf("config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("config %s: unknown key %q", path, undecoded[0].String())
	}
	return nil
}

// override copies the setting of the named flag from set.
func (c *config) override(flagName string, set config) {
	switch flagName {
	case "f":
		c.Format = set.Format
	case "m":
		c.Marks = set.Marks
	case "color":
		c.Color = set.Color
	case "max-size":
		c.MaxSize = set.MaxSize
	case "encoding":
		c.Encoding = set.Encoding
	case "log.level":
		c.LogLevel = set.LogLevel
	}
}

func (c *config) validate() error {
	if !slices.Contains([]string{"events", "json", "yaml"}, c.Format) {
		return fmt.Errorf("unknown format %q", c.Format)
	}
	if !slices.Contains([]string{"auto", "always", "never"}, c.Color) {
		return fmt.Errorf("unknown color mode %q", c.Color)
	}
	encodings := []lyaml.Encoding{lyaml.AnyEncoding, lyaml.UTF8Encoding, lyaml.UTF16LEEncoding, lyaml.UTF16BEEncoding}
	if !slices.Contains(encodings, lyaml.Encoding(c.Encoding)) {
		return fmt.Errorf("unknown encoding %q", c.Encoding)
	}
	if c.MaxSize < 0 {
		return fmt.Errorf("max size must not be negative, got %d", c.MaxSize)
	}
	return nil
}
