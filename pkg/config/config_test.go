package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "llamaedge.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config file: %v", err)
	}
	return path
}

func TestDefaults(t *testing.T) {
	cfg := Defaults()

	if cfg.Chat.Temperature != 1.0 {
		t.Errorf("chat.temperature = %v, want 1.0", cfg.Chat.Temperature)
	}
	if cfg.Chat.MaxTokens != 1024 {
		t.Errorf("chat.max_tokens = %d, want 1024", cfg.Chat.MaxTokens)
	}
	if cfg.Rag.ContextWindow != 1 {
		t.Errorf("rag.context_window = %d, want 1", cfg.Rag.ContextWindow)
	}
}

func TestLoad_YAMLFile(t *testing.T) {
	path := writeConfigFile(t, `
server:
  url: http://localhost:8080
chat:
  model: llama-3-8b
  max_tokens: 2048
rag:
  vdb_server_url: http://qdrant:6333
  collection_name: [docs, wiki]
  limit: [3, 5]
  score_threshold: [0.5, 0.7]
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8080", cfg.Server.URL)
	assert.Equal(t, "llama-3-8b", cfg.Chat.Model)
	assert.Equal(t, int64(2048), cfg.Chat.MaxTokens)
	// Fields absent from the YAML keep their defaults.
	assert.Equal(t, 1.0, cfg.Chat.Temperature)
	assert.Equal(t, []string{"docs", "wiki"}, cfg.Rag.CollectionName)
	assert.Equal(t, []uint64{3, 5}, cfg.Rag.Limit)
	assert.Equal(t, []float32{0.5, 0.7}, cfg.Rag.ScoreThreshold)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfigFile(t, `
server:
  url: http://from-file:8080
chat:
  model: from-file
`)
	t.Setenv("LLAMAEDGE_SERVER_URL", "http://from-env:9090")
	t.Setenv("LLAMAEDGE_MODEL", "from-env")
	t.Setenv("LLAMAEDGE_VDB_COLLECTION", "docs, wiki")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "http://from-env:9090", cfg.Server.URL, "env should win over file")
	assert.Equal(t, "from-env", cfg.Chat.Model, "env should win over file")
	assert.Equal(t, []string{"docs", "wiki"}, cfg.Rag.CollectionName)
}

func TestLoad_EnvOnly(t *testing.T) {
	t.Setenv("LLAMAEDGE_SERVER_URL", "http://localhost:8080")

	cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	if err == nil {
		t.Fatal("Load should fail for an explicit missing config file")
	}

	// Without an explicit path the missing file is simply skipped.
	cfg, err = Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.URL != "http://localhost:8080" {
		t.Errorf("server.url = %q", cfg.Server.URL)
	}
}

func TestLoad_APIKeyFile(t *testing.T) {
	keyPath := filepath.Join(t.TempDir(), "vdb-key")
	if err := os.WriteFile(keyPath, []byte("  secret-key\n"), 0o600); err != nil {
		t.Fatalf("write key file: %v", err)
	}
	path := writeConfigFile(t, `
server:
  url: http://localhost:8080
rag:
  api_key_file: `+keyPath+`
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Rag.APIKey != "secret-key" {
		t.Errorf("rag.api_key = %q, want trimmed file content", cfg.Rag.APIKey)
	}
}

func TestLoad_APIKeyWinsOverFile(t *testing.T) {
	keyPath := filepath.Join(t.TempDir(), "vdb-key")
	if err := os.WriteFile(keyPath, []byte("from-file"), 0o600); err != nil {
		t.Fatalf("write key file: %v", err)
	}
	path := writeConfigFile(t, `
server:
  url: http://localhost:8080
rag:
  api_key: inline-key
  api_key_file: `+keyPath+`
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Rag.APIKey != "inline-key" {
		t.Errorf("rag.api_key = %q, inline value should win", cfg.Rag.APIKey)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:    "missing server url",
			mutate:  func(c *Config) { c.Server.URL = "" },
			wantErr: "server.url is required",
		},
		{
			name:    "relative server url",
			mutate:  func(c *Config) { c.Server.URL = "localhost:8080/v1" },
			wantErr: "absolute URL",
		},
		{
			name:    "temperature out of range",
			mutate:  func(c *Config) { c.Chat.Temperature = 2.5 },
			wantErr: "chat.temperature",
		},
		{
			name:    "max_tokens too small",
			mutate:  func(c *Config) { c.Chat.MaxTokens = 0 },
			wantErr: "chat.max_tokens",
		},
		{
			name: "limit length mismatch",
			mutate: func(c *Config) {
				c.Rag.CollectionName = []string{"docs", "wiki"}
				c.Rag.Limit = []uint64{3}
			},
			wantErr: "rag.limit",
		},
		{
			name: "score_threshold length mismatch",
			mutate: func(c *Config) {
				c.Rag.CollectionName = []string{"docs"}
				c.Rag.ScoreThreshold = []float32{0.5, 0.7}
			},
			wantErr: "rag.score_threshold",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Defaults()
			cfg.Server.URL = "http://localhost:8080"
			tt.mutate(&cfg)

			err := cfg.Validate()
			if err == nil {
				t.Fatal("Validate should fail")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %q, should mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestValidate_OK(t *testing.T) {
	cfg := Defaults()
	cfg.Server.URL = "http://localhost:8080"
	cfg.Rag.CollectionName = []string{"docs", "wiki"}
	cfg.Rag.Limit = []uint64{3, 5}
	cfg.Rag.ScoreThreshold = []float32{0.5, 0.7}

	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
}
