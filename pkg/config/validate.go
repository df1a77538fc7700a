package config

import (
	"errors"
	"fmt"
	"net/url"
)

// Validate checks the configuration for required fields and valid values.
// Returns an error with a descriptive field path on failure.
func (c *Config) Validate() error {
	var errs []error

	// server.url is required and must be an absolute URL.
	if c.Server.URL == "" {
		errs = append(errs, fmt.Errorf("server.url is required"))
	} else if u, err := url.Parse(c.Server.URL); err != nil || !u.IsAbs() || u.Host == "" {
		errs = append(errs, fmt.Errorf("server.url must be an absolute URL, got %q", c.Server.URL))
	}

	// chat.temperature must stay in the sampling range.
	if c.Chat.Temperature < 0 || c.Chat.Temperature > 2 {
		errs = append(errs, fmt.Errorf("chat.temperature must be between 0.0 and 2.0, got %v", c.Chat.Temperature))
	}

	// chat.max_tokens must be positive.
	if c.Chat.MaxTokens < 1 {
		errs = append(errs, fmt.Errorf("chat.max_tokens must be >= 1, got %d", c.Chat.MaxTokens))
	}

	// The per-collection lists must carry one value per collection.
	if n := len(c.Rag.CollectionName); n > 0 {
		if len(c.Rag.Limit) != 0 && len(c.Rag.Limit) != n {
			errs = append(errs, fmt.Errorf("rag.limit must carry one entry per collection, got %d for %d collections", len(c.Rag.Limit), n))
		}
		if len(c.Rag.ScoreThreshold) != 0 && len(c.Rag.ScoreThreshold) != n {
			errs = append(errs, fmt.Errorf("rag.score_threshold must carry one entry per collection, got %d for %d collections", len(c.Rag.ScoreThreshold), n))
		}
	}

	return errors.Join(errs...)
}
