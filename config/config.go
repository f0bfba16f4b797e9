// Package config provides configuration loading for omccheck.
//
// Defaults reproduce the fixed vocabulary contract the validation
// depends on; a config file can relocate the ontology namespace,
// change the required entity list, extend the misspelling table, or
// pick the report format. Absent file means defaults.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/me-nexus/omccheck/report"
	"github.com/me-nexus/omccheck/validate"
	"github.com/me-nexus/omccheck/vocabulary"
)

// Config represents the complete omccheck configuration.
type Config struct {
	Ontology OntologyConfig `yaml:"ontology"`
	Checks   ChecksConfig   `yaml:"checks"`
	Output   OutputConfig   `yaml:"output"`
}

// OntologyConfig configures the vocabulary namespaces.
type OntologyConfig struct {
	// Base is the ontology namespace providing the entity type and
	// relationship IRIs.
	Base string `yaml:"base"`
}

// ChecksConfig configures the validation checks.
type ChecksConfig struct {
	// RequiredTypes lists entity type class names (resolved against
	// ontology.base) that must each have at least one instance.
	RequiredTypes []string `yaml:"required_types"`

	// Misspellings maps lower-cased misspelled tokens to corrections,
	// merged over the built-in table.
	Misspellings map[string]string `yaml:"misspellings"`
}

// OutputConfig configures report rendering.
type OutputConfig struct {
	// Format is "text" or "json".
	Format string `yaml:"format"`

	// NoColor disables terminal color in text reports.
	NoColor bool `yaml:"no_color"`
}

// DefaultConfig returns a Config with the fixed validation contract.
func DefaultConfig() *Config {
	return &Config{
		Ontology: OntologyConfig{
			Base: vocabulary.OMCBase,
		},
		Checks: ChecksConfig{
			RequiredTypes: []string{"CreativeWork", "Participant", "Person", "Location", "Asset"},
			Misspellings:  validate.DefaultMisspellings(),
		},
		Output: OutputConfig{
			Format: string(report.FormatText),
		},
	}
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.Ontology.Base == "" {
		return fmt.Errorf("ontology.base is required")
	}
	if len(c.Checks.RequiredTypes) == 0 {
		return fmt.Errorf("checks.required_types must name at least one entity type")
	}
	if _, err := report.ParseFormat(c.Output.Format); err != nil {
		return fmt.Errorf("output.format: %w", err)
	}
	return nil
}

// Merge overlays non-zero fields of other onto c. Misspellings are
// merged key-wise so a config file can extend the built-in table
// without restating it.
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}
	if other.Ontology.Base != "" {
		c.Ontology.Base = other.Ontology.Base
	}
	if len(other.Checks.RequiredTypes) > 0 {
		c.Checks.RequiredTypes = other.Checks.RequiredTypes
	}
	for token, fix := range other.Checks.Misspellings {
		if c.Checks.Misspellings == nil {
			c.Checks.Misspellings = make(map[string]string)
		}
		c.Checks.Misspellings[token] = fix
	}
	if other.Output.Format != "" {
		c.Output.Format = other.Output.Format
	}
	if other.Output.NoColor {
		c.Output.NoColor = true
	}
}

// LoadFromFile loads configuration from a YAML file, layered over the
// defaults.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	var override Config
	if err := yaml.Unmarshal(data, &override); err != nil {
		return nil, fmt.Errorf("parse config file: %w", err)
	}

	cfg := DefaultConfig()
	cfg.Merge(&override)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Requirements resolves the configured required types into presence
// requirements, preserving list order for the report.
func (c *Config) Requirements() []validate.PresenceRequirement {
	reqs := make([]validate.PresenceRequirement, 0, len(c.Checks.RequiredTypes))
	for _, name := range c.Checks.RequiredTypes {
		reqs = append(reqs, validate.PresenceRequirement{
			Name: name,
			Type: vocabulary.Class(c.Ontology.Base, name),
		})
	}
	return reqs
}
