package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeYAML(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const validYAML = `
server:
  host: "127.0.0.1"
  port: 9090
  read_timeout: "5s"

lexicon:
  tag_set: claws
  dictionary_path: /data/dictionary.txt

redis:
  enabled: true
  addr: "redis:6379"

corpus:
  workers: 8

log:
  level: debug
  format: text
`

func TestLoad_FromYAML(t *testing.T) {
	t.Setenv("CONFIG_PATH", writeYAML(t, t.TempDir(), validYAML))

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9090", cfg.Server.Addr())
	assert.Equal(t, 5*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 30*time.Second, cfg.Server.WriteTimeout)
	assert.Equal(t, "claws", cfg.Lexicon.TagSet)
	assert.Equal(t, "/data/dictionary.txt", cfg.Lexicon.DictionaryPath)
	assert.True(t, cfg.Redis.Enabled)
	assert.Equal(t, "redis:6379", cfg.Redis.Addr)
	assert.Equal(t, "generrate:dictionary", cfg.Redis.Key)
	assert.Equal(t, 8, cfg.Corpus.Workers)
	assert.Equal(t, "text", cfg.Log.Format)
}

func TestLoad_EnvOverridesYAML(t *testing.T) {
	t.Setenv("CONFIG_PATH", writeYAML(t, t.TempDir(), validYAML))
	t.Setenv("CORPUS_WORKERS", "2")
	t.Setenv("LEXICON_TAG_SET", "penn")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Corpus.Workers)
	assert.Equal(t, "penn", cfg.Lexicon.TagSet)
}

func TestLoad_DefaultsWithoutFile(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "0.0.0.0:8080", cfg.Server.Addr())
	assert.Equal(t, "penn", cfg.Lexicon.TagSet)
	assert.False(t, cfg.Redis.Enabled)
	assert.Equal(t, 4, cfg.Corpus.Workers)
	assert.Equal(t, []string{"GET", "POST", "OPTIONS"}, cfg.CORS.Methods())
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	t.Setenv("CONFIG_PATH", filepath.Join(t.TempDir(), "nope.yaml"))
	_, err := Load()
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	base := func() Config {
		return Config{
			Server:  ServerConfig{Port: 8080},
			Lexicon: LexiconConfig{TagSet: "penn"},
			Redis:   RedisConfig{Key: "k"},
			Corpus:  CorpusConfig{Workers: 1},
			Log:     LogConfig{Format: "json"},
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid", func(*Config) {}, false},
		{"unknown tag set", func(c *Config) { c.Lexicon.TagSet = "brown" }, true},
		{"zero workers", func(c *Config) { c.Corpus.Workers = 0 }, true},
		{"bad port", func(c *Config) { c.Server.Port = 70000 }, true},
		{"redis without key", func(c *Config) { c.Redis = RedisConfig{Enabled: true} }, true},
		{"bad log format", func(c *Config) { c.Log.Format = "xml" }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCORSLists(t *testing.T) {
	c := CORSConfig{AllowedOrigins: " https://a.example , ,https://b.example"}
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, c.Origins())
	assert.Nil(t, CORSConfig{}.Headers())
}
