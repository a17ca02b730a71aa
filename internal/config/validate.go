package config

import (
	"fmt"
	"strings"

	"github.com/cours-de-latin/generrate"
)

// Validate performs business-rule validation on the loaded configuration.
// Load calls it automatically.
func (c *Config) Validate() error {
	if _, err := generrate.TagSetByName(c.Lexicon.TagSet); err != nil {
		return fmt.Errorf("lexicon.tag_set: %w", err)
	}
	if c.Corpus.Workers < 1 {
		return fmt.Errorf("corpus.workers must be >= 1 (got %d)", c.Corpus.Workers)
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port out of range (got %d)", c.Server.Port)
	}
	if c.Redis.Enabled && c.Redis.Key == "" {
		return fmt.Errorf("redis.key is required when redis is enabled")
	}

	switch strings.ToLower(c.Log.Format) {
	case "json", "text":
	default:
		return fmt.Errorf("log.format must be json or text (got %q)", c.Log.Format)
	}
	return nil
}
