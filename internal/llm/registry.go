package llm

import "strings"

// ModelConfig describes the limits of one model
type ModelConfig struct {
	Name            string `yaml:"name"` // Display name
	MaxInputTokens  int    `yaml:"max_input_tokens"`
	MaxOutputTokens int    `yaml:"max_output_tokens"`
}

// ModelRegistry resolves a model identifier to its config
type ModelRegistry interface {
	Lookup(model string) ModelConfig
}

// DefaultModelID is the fallback entry for unknown identifiers
const DefaultModelID = "gpt-4o-mini"

var builtinModels = map[string]ModelConfig{
	"gpt-4o-mini":      {Name: "GPT-4o Mini", MaxInputTokens: 128000, MaxOutputTokens: 16384},
	"gpt-4o":           {Name: "GPT-4o", MaxInputTokens: 128000, MaxOutputTokens: 16384},
	"gpt-4.1-mini":     {Name: "GPT-4.1 Mini", MaxInputTokens: 1047576, MaxOutputTokens: 32768},
	"gpt-3.5-turbo":    {Name: "GPT-3.5 Turbo", MaxInputTokens: 16385, MaxOutputTokens: 4096},
	"gemini-2.5-flash": {Name: "Gemini 2.5 Flash", MaxInputTokens: 1048576, MaxOutputTokens: 65536},
	"gemini-2.5-pro":   {Name: "Gemini 2.5 Pro", MaxInputTokens: 1048576, MaxOutputTokens: 65536},
}

// Registry is a static, read-only model table
type Registry struct {
	models map[string]ModelConfig
}

// NewRegistry creates a registry from the built-in models plus any extra entries.
// Extra entries override built-ins with the same identifier.
func NewRegistry(extra map[string]ModelConfig) *Registry {
	models := make(map[string]ModelConfig, len(builtinModels)+len(extra))
	for id, cfg := range builtinModels {
		models[id] = cfg
	}
	for id, cfg := range extra {
		models[strings.ToLower(id)] = cfg
	}
	return &Registry{models: models}
}

// Lookup returns the config for model. Unknown identifiers get the default
// model's limits under their own name.
func (r *Registry) Lookup(model string) ModelConfig {
	if cfg, ok := r.models[strings.ToLower(model)]; ok {
		return cfg
	}
	cfg := r.models[DefaultModelID]
	cfg.Name = model
	return cfg
}

// Models returns the known model identifiers
func (r *Registry) Models() []string {
	ids := make([]string, 0, len(r.models))
	for id := range r.models {
		ids = append(ids, id)
	}
	return ids
}
