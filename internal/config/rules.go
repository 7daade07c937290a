package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// TimePattern describes one accepted timestamp syntax: a regular expression
// for the timestamp portion (the label prefix is added by the extractor) and
// the Go time layout the captured text must parse under.
type TimePattern struct {
	Regexp string `yaml:"regexp"`
	Layout string `yaml:"layout"`
}

// Rules configures timestamp extraction: which labels to look for and which
// timestamp syntaxes to accept after them.
type Rules struct {
	StartLabel string        `yaml:"start_label"`
	EndLabel   string        `yaml:"end_label"`
	Patterns   []TimePattern `yaml:"patterns"`
}

// DefaultRules returns the built-in extraction rules: the two fixed labels
// and the two date-order conventions seen in chamber export files.
func DefaultRules() *Rules {
	return &Rules{
		StartLabel: "Test Start Time",
		EndLabel:   "Test End Time",
		Patterns: []TimePattern{
			{Regexp: `\d{2}/\d{2}/\d{4} \d{2}:\d{2}:\d{2}`, Layout: "01/02/2006 15:04:05"},
			{Regexp: `\d{4}/\d{2}/\d{2} \d{2}:\d{2}:\d{2}`, Layout: "2006/01/02 15:04:05"},
		},
	}
}

// LoadRules loads extraction rules from a YAML file. Omitted fields fall
// back to the defaults; custom patterns are appended after the built-ins so
// the standard conventions keep priority.
func LoadRules(path string) (*Rules, error) {
	rules := DefaultRules()
	if path == "" {
		return rules, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read rules file: %w", err)
	}

	var loaded Rules
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return nil, fmt.Errorf("failed to parse rules file: %w", err)
	}

	if loaded.StartLabel != "" {
		rules.StartLabel = loaded.StartLabel
	}
	if loaded.EndLabel != "" {
		rules.EndLabel = loaded.EndLabel
	}
	for _, p := range loaded.Patterns {
		if p.Regexp == "" || p.Layout == "" {
			return nil, fmt.Errorf("rules file: pattern entries need both regexp and layout")
		}
		rules.Patterns = append(rules.Patterns, p)
	}

	return rules, nil
}
