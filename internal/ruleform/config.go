package ruleform

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/sirkon/ruleform/internal/form"
)

// Config controls the identities the transform injects into a module.
type Config struct {
	// Origin tags every error marker this transform emits.
	Origin string `yaml:"origin"`

	// Support is the runtime hook every rewritten plain generator calls.
	// It takes the quoted generator source expression as its only argument
	// and returns the enumerable sequence a native generator would have
	// produced.
	Support form.Ref `yaml:"support"`

	// InfoFunc names the generated zero-argument introspection function.
	InfoFunc string `yaml:"info_function"`
}

// DefaultConfig returns the stock identities.
func DefaultConfig() Config {
	return Config{
		Origin:   "ruleform",
		Support:  form.Ref{Module: "ruleform_rt", Name: "eval_generator"},
		InfoFunc: "rule_info",
	}
}

// LoadConfig reads a YAML config file. Fields left unset keep their
// DefaultConfig values.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config file: %w", err)
	}

	return cfg.withDefaults(), nil
}

// withDefaults fills zero fields from DefaultConfig.
func (c Config) withDefaults() Config {
	def := DefaultConfig()
	if c.Origin == "" {
		c.Origin = def.Origin
	}
	if c.Support == (form.Ref{}) {
		c.Support = def.Support
	}
	if c.InfoFunc == "" {
		c.InfoFunc = def.InfoFunc
	}

	return c
}
