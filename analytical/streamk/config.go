package streamk

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// fileConfig is the on-disk shape of a coefficient override file.
type fileConfig struct {
	Coefficients struct {
		A float64 `yaml:"a"`
		B float64 `yaml:"b"`
		C float64 `yaml:"c"`
		D float64 `yaml:"d"`
	} `yaml:"coefficients"`
}

// LoadCoefficients reads a YAML coefficient override file and returns
// the parsed Coefficients. Callers that have no override file should
// use DefaultCoefficients directly rather than calling this.
func LoadCoefficients(path string) (Coefficients, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Coefficients{}, fmt.Errorf("streamk: reading coefficients file %q: %w", path, err)
	}

	var cfg fileConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Coefficients{}, fmt.Errorf("streamk: parsing coefficients file %q: %w", path, err)
	}

	c := cfg.Coefficients
	if c.A == 0 && c.B == 0 && c.C == 0 && c.D == 0 {
		return Coefficients{}, fmt.Errorf("streamk: coefficients file %q has no non-zero coefficients", path)
	}
	return Coefficients{A: c.A, B: c.B, C: c.C, D: c.D}, nil
}
