package llm

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// registryFile is the on-disk format of model overrides:
//
//	models:
//	  my-finetune:
//	    name: My Finetune
//	    max_input_tokens: 16000
//	    max_output_tokens: 4096
type registryFile struct {
	Models map[string]ModelConfig `yaml:"models"`
}

// LoadRegistryFile reads model overrides from a YAML file and returns a registry
// containing the built-in models plus those entries. An empty path yields
// the built-in table.
func LoadRegistryFile(path string) (*Registry, error) {
	if path == "" {
		return NewRegistry(nil), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read model registry %s: %w", path, err)
	}
	return ParseRegistry(data)
}

// ParseRegistry parses YAML model overrides
func ParseRegistry(data []byte) (*Registry, error) {
	var file registryFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse model registry: %w", err)
	}

	for id, cfg := range file.Models {
		if cfg.MaxInputTokens <= 0 || cfg.MaxOutputTokens <= 0 {
			return nil, fmt.Errorf("model %q: token limits must be positive", id)
		}
		if cfg.Name == "" {
			cfg.Name = id
			file.Models[id] = cfg
		}
	}
	return NewRegistry(file.Models), nil
}
