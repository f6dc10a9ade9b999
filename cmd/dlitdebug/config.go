package main

import (
	"os"

	"gopkg.in/yaml.v3"
)

// sample is one named literal the REPL can load and inspect, stored in the
// config file rather than typed in live since dlit has no tagged-template
// syntax for a human to type directly.
type sample struct {
	Name     string   `yaml:"name"`
	Strings  []string `yaml:"strings"`
	SVG      bool     `yaml:"svg"`
	ValueLog []string `yaml:"values"` // rendered with fmt, one entry per render
}

// debugConfig is the REPL's full on-disk configuration.
type debugConfig struct {
	Samples []sample `yaml:"samples"`
}

func loadConfig(path string) (*debugConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg debugConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func defaultConfig() *debugConfig {
	return &debugConfig{
		Samples: []sample{
			{
				Name:     "counter",
				Strings:  []string{"<button>count: ", "</button>"},
				ValueLog: []string{"0", "1", "2"},
			},
			{
				Name:     "attr",
				Strings:  []string{`<div class="`, `"></div>`},
				ValueLog: []string{"a", "b"},
			},
		},
	}
}
