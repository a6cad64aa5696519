package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/AdrienGallet/unitcalc/internal/dimension"
	"github.com/AdrienGallet/unitcalc/internal/quantity"
)

const DefaultDataDir = ".unitcalc"

// Config is a worksheet: a named set of variable declarations.
type Config struct {
	Name      string           `yaml:"name"`
	DataDir   string           `yaml:"data_dir"`
	Variables []VariableConfig `yaml:"variables"`
}

// VariableConfig declares one quantity, either as a shorthand string
// ("a=200mm") or as explicit value+unit fields. A variable with an
// unregistered unit must carry a 7-element dimension vector.
type VariableConfig struct {
	Name      string    `yaml:"name"`
	Shorthand string    `yaml:"shorthand"`
	Value     *float64  `yaml:"value"`
	Unit      *string   `yaml:"unit"`
	Dimension []float64 `yaml:"dimension"`
	Info      string    `yaml:"info"`
	Formula   string    `yaml:"formula"`
}

func DefaultConfig() *Config {
	return &Config{
		Name:    "worksheet",
		DataDir: DefaultDataDir,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Build constructs every declared variable, in order. The first failing
// declaration aborts the build.
func (c *Config) Build() ([]*quantity.Quantity, error) {
	quantities := make([]*quantity.Quantity, 0, len(c.Variables))
	for _, v := range c.Variables {
		q, err := v.Build()
		if err != nil {
			return nil, fmt.Errorf("variable %q: %w", v.DisplayName(), err)
		}
		quantities = append(quantities, q)
	}
	return quantities, nil
}

// DisplayName returns the declared name, falling back to the shorthand.
func (v VariableConfig) DisplayName() string {
	if v.Name != "" {
		return v.Name
	}
	return v.Shorthand
}

// Build turns one declaration into a quantity through [quantity.FromSpec],
// so value/unit pairing rules apply uniformly.
func (v VariableConfig) Build() (*quantity.Quantity, error) {
	spec := quantity.Spec{
		Name:    v.Name,
		Value:   v.Value,
		Unit:    v.Unit,
		Info:    v.Info,
		Formula: v.Formula,
	}
	if v.Shorthand != "" {
		spec.Name = v.Shorthand
	}
	if v.Dimension != nil {
		want := len(dimension.Vector{})
		if len(v.Dimension) != want {
			return nil, fmt.Errorf("dimension must have %d entries, got %d", want, len(v.Dimension))
		}
		var dim dimension.Vector
		copy(dim[:], v.Dimension)
		spec.Dimension = &dim
	}
	return quantity.FromSpec(spec)
}
