package config

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/jonathan/resume-matcher/internal/vocabulary"
)

// LoadVocabulary returns the built-in vocabulary merged with the overrides in
// the YAML or JSON file at path. An empty path returns the built-in vocabulary.
func LoadVocabulary(path string) (*vocabulary.Vocabulary, error) {
	base := vocabulary.Default()
	if path == "" {
		return base, nil
	}

	// skill aliases such as node.js contain dots
	v := viper.NewWithOptions(viper.KeyDelimiter("::"))
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read vocabulary file %s: %w", path, err)
	}

	var override vocabulary.Vocabulary
	if err := v.Unmarshal(&override); err != nil {
		return nil, fmt.Errorf("failed to decode vocabulary file %s: %w", path, err)
	}

	merged := base.Merge(&override)
	if err := merged.Validate(); err != nil {
		return nil, fmt.Errorf("invalid vocabulary in %s: %w", path, err)
	}
	return merged, nil
}
