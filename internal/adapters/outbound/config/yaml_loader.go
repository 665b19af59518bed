package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/abdidvp/taxkraft/internal/domain"
	"gopkg.in/yaml.v3"
)

// FileName is the project-level configuration file.
const FileName = ".taxkraft.yaml"

// YAMLLoader implements domain.ConfigLoader by reading .taxkraft.yaml.
type YAMLLoader struct{}

// New creates a YAMLLoader.
func New() *YAMLLoader { return &YAMLLoader{} }

// Load reads .taxkraft.yaml from projectPath. ${VAR} references are
// expanded from the environment before parsing.
// Returns DefaultConfig if the file does not exist.
func (l *YAMLLoader) Load(projectPath string) (domain.TaxConfig, error) {
	data, err := os.ReadFile(filepath.Join(projectPath, FileName))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.DefaultConfig(), nil
		}
		return domain.TaxConfig{}, err
	}

	var cfg domain.TaxConfig
	if err := yaml.Unmarshal([]byte(os.ExpandEnv(string(data))), &cfg); err != nil {
		return domain.TaxConfig{}, fmt.Errorf("parsing %s: %w", FileName, err)
	}

	cfg = mergeConfig(domain.DefaultConfig(), cfg)

	if err := cfg.Validate(); err != nil {
		return domain.TaxConfig{}, fmt.Errorf("invalid %s: %w", FileName, err)
	}

	return cfg, nil
}

// mergeConfig overlays explicit values on top of the defaults.
// An explicit strategies list replaces the default registry entirely.
func mergeConfig(base, override domain.TaxConfig) domain.TaxConfig {
	result := base

	if len(override.Strategies) > 0 {
		result.Strategies = override.Strategies
	}
	result.Ledger = override.Ledger
	if override.Logging.Level != "" {
		result.Logging.Level = override.Logging.Level
	}

	return result
}

const fileHeader = `# taxkraft configuration
# Strategies are tried in order: the first one applicable to an order wins.

`

const fileFooter = `
# Custom fixed-amount strategies take countries and an amount:
#
#   - name: mexico
#     countries: [MX]
#     amount: "16"
`

// Write serializes cfg to .taxkraft.yaml under projectPath.
func Write(projectPath string, cfg domain.TaxConfig) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", FileName, err)
	}
	content := fileHeader + string(data) + fileFooter
	return os.WriteFile(filepath.Join(projectPath, FileName), []byte(content), 0644)
}
