package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/Zachacious/go-fetchlint/internal/model"
	"gopkg.in/yaml.v3"
)

// Config controls which call sites are inspected and how strict the
// query-encoding rule is. Rule enablement is a host concern: the engine
// itself never decides which rules run.
type Config struct {
	// Target is the name of the network-request function to look for.
	// Matching is by bare identifier only; aliased or wrapped targets
	// are invisible to the analysis.
	Target string `yaml:"target"`

	// RequireQueryBuilder makes the query-encoding rule report
	// preferURLSearchParams when manual encoding is used without a
	// query-string builder.
	RequireQueryBuilder bool `yaml:"requireQueryBuilder"`

	// Rules is the set of enabled rule kinds. Empty means all rules.
	Rules []model.RuleKind `yaml:"rules"`
}

// Default returns the configuration used when no .fetchlint.yaml exists.
func Default() *Config {
	return &Config{
		Target:              "fetch",
		RequireQueryBuilder: true,
	}
}

// Load reads .fetchlint.yaml from projectPath, merging it over the
// defaults. A missing file is not an error.
func Load(projectPath string) (*Config, error) {
	cfg := Default()

	configPath := filepath.Join(projectPath, ".fetchlint.yaml")
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", configPath, err)
	}
	if cfg.Target == "" {
		cfg.Target = "fetch"
	}
	for _, r := range cfg.Rules {
		if model.Message(r) == "" {
			return nil, fmt.Errorf("%s: unknown rule %q", configPath, r)
		}
	}
	return cfg, nil
}

// Enabled reports whether a rule kind should run.
func (c *Config) Enabled(kind model.RuleKind) bool {
	if len(c.Rules) == 0 {
		return true
	}
	for _, r := range c.Rules {
		if r == kind {
			return true
		}
	}
	return false
}
