// Copyright (c) 2025 pk910
// SPDX-License-Identifier: Apache-2.0
// This file is part of the fuzzdec library.

package fuzzdec

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the YAML-loadable driver configuration.
//
//	seed: 42
//	iteration_cap: 4096
//	verbose: true
//	expected_faults:
//	  - name: bounds
//	    match: "kind == 'panic' && fault =~ 'out of range'"
type Config struct {
	Seed           int64        `yaml:"seed"`
	IterationCap   int          `yaml:"iteration_cap"`
	Verbose        bool         `yaml:"verbose"`
	ExpectedFaults []RuleConfig `yaml:"expected_faults"`
}

type RuleConfig struct {
	Name  string `yaml:"name"`
	Match string `yaml:"match"`
}

// LoadConfig reads a YAML driver configuration from path.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %v", err)
	}
	return ParseConfig(data)
}

// ParseConfig parses a YAML driver configuration.
func ParseConfig(data []byte) (*Config, error) {
	config := &Config{}
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("error parsing config: %v", err)
	}
	return config, nil
}

// Options converts the configuration into driver options.
func (c *Config) Options() []DriverOption {
	opts := []DriverOption{}
	if c.IterationCap > 0 {
		opts = append(opts, WithIterationCap(c.IterationCap))
	}
	if c.Verbose {
		opts = append(opts, WithVerbose())
	}
	for _, rule := range c.ExpectedFaults {
		opts = append(opts, WithExpectedFaults(ClassifierRule{
			Name:  rule.Name,
			Match: rule.Match,
		}))
	}
	return opts
}
