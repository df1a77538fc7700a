package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Load loads configuration from a layered set of sources.
//
// The loading order is:
//  1. Built-in defaults
//  2. YAML config file (explicit path, LLAMAEDGE_CONFIG env, ./llamaedge.yaml, /etc/llamaedge/config.yaml)
//  3. Environment variable overrides
//  4. File reference resolution (_file suffix)
//  5. Validation
func Load(configPath string) (*Config, error) {
	cfg := Defaults()

	filePath := discoverConfigFile(configPath)
	if filePath != "" {
		if err := loadYAMLFile(filePath, &cfg); err != nil {
			return nil, fmt.Errorf("loading config file %s: %w", filePath, err)
		}
	}

	applyEnvOverrides(&cfg)

	if err := resolveFileReferences(&cfg); err != nil {
		return nil, fmt.Errorf("resolving file references: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	return &cfg, nil
}

// discoverConfigFile finds the config file path using the discovery order:
// 1. Explicit configPath argument
// 2. LLAMAEDGE_CONFIG environment variable
// 3. ./llamaedge.yaml in the current directory
// 4. /etc/llamaedge/config.yaml
//
// Returns empty string if no config file is found.
func discoverConfigFile(configPath string) string {
	if configPath != "" {
		return configPath
	}

	if envPath := os.Getenv("LLAMAEDGE_CONFIG"); envPath != "" {
		return envPath
	}

	candidates := []string{
		"llamaedge.yaml",
		"/etc/llamaedge/config.yaml",
	}
	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// loadYAMLFile reads and parses a YAML file into the Config struct.
// Fields not present in the YAML retain their current (default) values.
func loadYAMLFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

// applyEnvOverrides maps LLAMAEDGE_* environment variables to config
// fields. Environment values win over the config file.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("LLAMAEDGE_SERVER_URL"); v != "" {
		cfg.Server.URL = v
	}
	if v := os.Getenv("LLAMAEDGE_MODEL"); v != "" {
		cfg.Chat.Model = v
	}
	if v := os.Getenv("LLAMAEDGE_SYSTEM_PROMPT"); v != "" {
		cfg.Chat.SystemPrompt = v
	}
	if v := os.Getenv("LLAMAEDGE_TEMPERATURE"); v != "" {
		if temp, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Chat.Temperature = temp
		}
	}
	if v := os.Getenv("LLAMAEDGE_MAX_TOKENS"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			cfg.Chat.MaxTokens = n
		}
	}
	if v := os.Getenv("LLAMAEDGE_VDB_SERVER_URL"); v != "" {
		cfg.Rag.VdbServerURL = v
	}
	if v := os.Getenv("LLAMAEDGE_VDB_COLLECTION"); v != "" {
		cfg.Rag.CollectionName = splitList(v)
	}
	if v := os.Getenv("LLAMAEDGE_VDB_API_KEY"); v != "" {
		cfg.Rag.APIKey = v
	}
	if v := os.Getenv("LLAMAEDGE_EMBEDDING_MODEL"); v != "" {
		cfg.Embeddings.Model = v
	}
}

// splitList splits a comma-separated env value into trimmed entries.
func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// resolveFileReferences reads _file fields and populates the corresponding
// value fields. The file is read and surrounding whitespace trimmed; an
// already set value field wins over its _file variant.
func resolveFileReferences(cfg *Config) error {
	if cfg.Rag.APIKeyFile != "" && cfg.Rag.APIKey == "" {
		val, err := readSecretFile(cfg.Rag.APIKeyFile)
		if err != nil {
			return fmt.Errorf("rag.api_key_file: %w", err)
		}
		cfg.Rag.APIKey = val
	}
	return nil
}

// readSecretFile reads a file and returns its content with surrounding whitespace trimmed.
func readSecretFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}
