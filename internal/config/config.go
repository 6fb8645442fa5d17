// Package config loads scenelint preferences from .scenelint.yaml,
// SCENELINT_* environment variables and bound CLI flags.
package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/jacobarthurs/scenelint/internal/analyzer"
)

const (
	EnvPrefix = "SCENELINT"
	FileName  = ".scenelint"

	StyleDetailed = "detailed"
	StyleCompact  = "compact"

	FormatText = "text"
	FormatJSON = "json"

	DefaultInterval = 5 * time.Second
)

// Config holds the preferences of one invocation.
type Config struct {
	// Rules maps a problem code to its enabled flag. Codes without an entry
	// stay enabled.
	Rules    map[string]bool `mapstructure:"rules"`
	Style    string          `mapstructure:"style"`
	Interval time.Duration   `mapstructure:"interval"`
	Format   string          `mapstructure:"format"`
	Verbose  bool            `mapstructure:"verbose"`
}

// RuleToggle is one per-rule preference, generated from the registry.
type RuleToggle struct {
	Code    analyzer.Code
	Key     string
	Title   string
	Default bool
}

// Rules returns a toggle for every registered problem in registry order.
func Rules() []RuleToggle {
	defs := analyzer.Definitions()
	toggles := make([]RuleToggle, len(defs))
	for i, p := range defs {
		toggles[i] = RuleToggle{
			Code:    p.Code,
			Key:     ruleKey(p.Code),
			Title:   p.Title,
			Default: true,
		}
	}
	return toggles
}

func ruleKey(code analyzer.Code) string {
	return "rules." + strconv.Itoa(int(code))
}

// SetDefaults registers built-in defaults with viper.
func SetDefaults() {
	for _, r := range Rules() {
		viper.SetDefault(r.Key, r.Default)
	}
	viper.SetDefault("style", StyleDetailed)
	viper.SetDefault("interval", DefaultInterval)
	viper.SetDefault("format", FormatText)
	viper.SetDefault("verbose", false)
}

// Load reads configuration from viper, applying built-in defaults for any
// values not set by config file, environment, or flags.
func Load() (Config, error) {
	SetDefaults()

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch c.Style {
	case StyleDetailed, StyleCompact:
	default:
		return fmt.Errorf("invalid style %q (want %s or %s)", c.Style, StyleDetailed, StyleCompact)
	}
	switch c.Format {
	case FormatText, FormatJSON:
	default:
		return fmt.Errorf("invalid format %q (want %s or %s)", c.Format, FormatText, FormatJSON)
	}
	if c.Interval <= 0 {
		return fmt.Errorf("interval must be positive, got %s", c.Interval)
	}
	return nil
}

// Settings converts the rule flags into scan settings. Keys that do not name
// a registered problem are ignored.
func (c Config) Settings() analyzer.Settings {
	var off []analyzer.Code
	for key, enabled := range c.Rules {
		if enabled {
			continue
		}
		n, err := strconv.Atoi(strings.TrimSpace(key))
		if err != nil {
			continue
		}
		if _, ok := analyzer.Lookup(analyzer.Code(n)); ok {
			off = append(off, analyzer.Code(n))
		}
	}
	return analyzer.DefaultSettings().Disable(off...)
}

// Template renders a commented config file with every setting at its default.
func Template() ([]byte, error) {
	rules := &yaml.Node{Kind: yaml.MappingNode}
	for _, r := range Rules() {
		rules.Content = append(rules.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: strconv.Itoa(int(r.Code)), Style: yaml.DoubleQuotedStyle},
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: strconv.FormatBool(r.Default), LineComment: r.Title},
		)
	}

	doc := &yaml.Node{Kind: yaml.MappingNode}
	add := func(key, comment string, value *yaml.Node) {
		doc.Content = append(doc.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: key, HeadComment: comment},
			value,
		)
	}
	add("rules", "Per-rule switches. A disabled rule is never evaluated.", rules)
	add("style", "Report style: detailed or compact.", scalar(StyleDetailed))
	add("format", "Output format: text or json.", scalar(FormatText))
	add("interval", "Rescan period for watch.", scalar(DefaultInterval.String()))

	data, err := yaml.Marshal(&yaml.Node{Kind: yaml.DocumentNode, Content: []*yaml.Node{doc}})
	if err != nil {
		return nil, fmt.Errorf("rendering config template: %w", err)
	}
	return data, nil
}

func scalar(v string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Value: v}
}
