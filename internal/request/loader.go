package request

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"vecop-generator/internal/common"
)

// Defaults for settings a config leaves empty.
const (
	DefaultVersion     = "1"
	DefaultContainer   = "Vector"
	DefaultConstructor = "New"
	DefaultLiteral     = "From"
	DefaultElem        = "T"
	DefaultConstraint  = "Number"
	DefaultErrorType   = "SizeMismatchError"
	DefaultOutput      = "ops_gen.go"
)

// LoadFile loads and parses a YAML config file from the given path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into a Config.
func Parse(data []byte) (*Config, error) {
	var cfg Config

	err := yaml.Unmarshal(data, &cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	applyDefaults(&cfg)

	return &cfg, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(cfg *Config) {
	if cfg.Version == "" {
		cfg.Version = DefaultVersion
	}

	if cfg.Package == "" {
		cfg.Package = common.PkgAlias(cfg.ImportPath)
	}

	if cfg.Container == "" {
		cfg.Container = DefaultContainer
	}

	if cfg.Constructor == "" {
		cfg.Constructor = DefaultConstructor
	}

	if cfg.Literal == "" {
		cfg.Literal = DefaultLiteral
	}

	if cfg.Elem == "" {
		cfg.Elem = DefaultElem
	}

	if cfg.Constraint == "" {
		cfg.Constraint = DefaultConstraint
	}

	if cfg.ErrorType == "" {
		cfg.ErrorType = DefaultErrorType
	}

	if cfg.Output == "" {
		cfg.Output = DefaultOutput
	}

	if cfg.ExamplesOutput == "" {
		cfg.ExamplesOutput = strings.TrimSuffix(cfg.Output, ".go") + "_example_test.go"
	}

	for i := range cfg.Operators {
		op := &cfg.Operators[i]
		op.Family = normalizeFamily(op.Family)
	}

	if len(cfg.Constraints) > 0 {
		constraints := make(map[string]string, len(cfg.Constraints))
		for name, constraint := range cfg.Constraints {
			constraints[normalizeFamily(name)] = constraint
		}

		cfg.Constraints = constraints
	}
}

func normalizeFamily(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Marshal serializes a Config to YAML.
func Marshal(cfg *Config) ([]byte, error) {
	return yaml.Marshal(cfg)
}
