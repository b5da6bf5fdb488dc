// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package spatial

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config is the YAML form of the construction options.
//
//	dimension: 2
//	max_items_per_node: 64
//	item_storage: fixed
//	expected_items: 1000000
type Config struct {
	Dimension       int         `yaml:"dimension"`
	MaxItemsPerNode int         `yaml:"max_items_per_node"`
	ItemStorage     ItemStorage `yaml:"item_storage"`
	ExpectedItems   int         `yaml:"expected_items"`
}

// DefaultConfig is a two dimensional tree with default capacity.
func DefaultConfig() Config {
	return Config{
		Dimension:       2,
		MaxItemsPerNode: DefaultMaxItemsPerNode,
		ItemStorage:     GrowableItems,
	}
}

// ParseConfig decodes YAML over DefaultConfig.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// LoadConfig reads and parses a YAML file.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}
	return ParseConfig(data)
}

// Options turns the config into construction options.
func (c Config) Options() []Option {
	opts := []Option{
		WithMaxItemsPerNode(c.MaxItemsPerNode),
		WithItemStorage(c.ItemStorage),
	}
	if c.ExpectedItems > 0 {
		opts = append(opts, WithExpectedItems(c.ExpectedItems))
	}
	return opts
}

func (s ItemStorage) MarshalYAML() (any, error) {
	return s.String(), nil
}

func (s *ItemStorage) UnmarshalYAML(value *yaml.Node) error {
	switch strings.ToLower(value.Value) {
	case "", "growable", "vector":
		*s = GrowableItems
	case "fixed", "array":
		*s = FixedItems
	default:
		return fmt.Errorf("line %d: unknown item storage %q", value.Line, value.Value)
	}
	return nil
}
