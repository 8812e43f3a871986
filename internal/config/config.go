package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// AliasEntry maps a free-text alias to a canonical stop. Aliases are checked
// in file order and the first match wins, so the order in the YAML file is
// significant and preserved.
type AliasEntry struct {
	Alias        string `yaml:"alias" validate:"required"`
	StopIDPadded string `yaml:"stop_id_padded" validate:"required"`
	StopName     string `yaml:"stop_name" validate:"required"`
}

// Answering holds the answering-side configuration loaded once at startup and
// treated as read-only afterwards.
type Answering struct {
	Aliases []AliasEntry `yaml:"aliases"`
}

// LoadAnswering reads and validates the answering configuration from a YAML
// file. A missing file is not an error: the resolver simply runs without the
// alias tier.
func LoadAnswering(path string) (Answering, error) {
	var cfg Answering

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("error reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("error parsing config %s: %w", path, err)
	}

	v := validator.New()
	for i, entry := range cfg.Aliases {
		if err := v.Struct(entry); err != nil {
			return Answering{}, fmt.Errorf("invalid alias entry %d: %w", i, err)
		}
	}

	return cfg, nil
}
