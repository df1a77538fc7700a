// Package config provides unified configuration for the llamaedge CLI.
//
// Configuration is loaded with a layered approach:
//  1. Built-in defaults
//  2. YAML config file (discovered or explicitly specified)
//  3. Environment variable overrides (LLAMAEDGE_ prefix)
//  4. File reference resolution (_file suffix fields)
//  5. Validation
package config

// Config holds all configuration for the llamaedge CLI.
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Chat       ChatConfig       `yaml:"chat"`
	Rag        RagConfig        `yaml:"rag"`
	Embeddings EmbeddingsConfig `yaml:"embeddings"`
}

// ServerConfig names the LlamaEdge API server to talk to.
type ServerConfig struct {
	URL string `yaml:"url"` // required
}

// ChatConfig holds chat completion settings.
type ChatConfig struct {
	Model        string  `yaml:"model"`         // optional, empty selects the server's loaded model
	SystemPrompt string  `yaml:"system_prompt"` // optional, prepended to the conversation
	Temperature  float64 `yaml:"temperature"`   // default: 1.0
	MaxTokens    int64   `yaml:"max_tokens"`    // default: 1024
}

// RagConfig holds retrieval settings for RAG chat and retrieve calls.
type RagConfig struct {
	VdbServerURL   string    `yaml:"vdb_server_url"`
	CollectionName []string  `yaml:"collection_name"`
	Limit          []uint64  `yaml:"limit"`           // one entry per collection
	ScoreThreshold []float32 `yaml:"score_threshold"` // one entry per collection
	APIKey         string    `yaml:"api_key"`
	APIKeyFile     string    `yaml:"api_key_file"` // _file variant for api_key
	ContextWindow  uint64    `yaml:"context_window"` // default: 1
}

// EmbeddingsConfig holds embeddings settings.
type EmbeddingsConfig struct {
	Model string `yaml:"model"` // optional
}

// Defaults returns a Config with all default values filled in.
func Defaults() Config {
	return Config{
		Chat: ChatConfig{
			Temperature: 1.0,
			MaxTokens:   1024,
		},
		Rag: RagConfig{
			ContextWindow: 1,
		},
	}
}
