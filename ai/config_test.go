package ai

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.NotNil(t, cfg)
	assert.Equal(t, "http://localhost:11434/v1", cfg.Host)
	assert.Equal(t, "all-minilm", cfg.Model)
	assert.Equal(t, "none", cfg.Token)
	assert.Equal(t, 10*time.Second, cfg.Timeout)
}

func TestNewConfig(t *testing.T) {
	t.Run("with no options", func(t *testing.T) {
		cfg := NewConfig()

		assert.NotNil(t, cfg)
		// Should have default values
		assert.Equal(t, "http://localhost:11434/v1", cfg.Host)
		assert.Equal(t, "all-minilm", cfg.Model)
	})

	t.Run("with custom host", func(t *testing.T) {
		cfg := NewConfig(WithHost("http://custom:8080/v1"))

		assert.Equal(t, "http://custom:8080/v1", cfg.Host)
	})

	t.Run("with custom model", func(t *testing.T) {
		cfg := NewConfig(WithModel("text-embedding-3-large"))

		assert.Equal(t, "text-embedding-3-large", cfg.Model)
	})

	t.Run("with token", func(t *testing.T) {
		cfg := NewConfig(WithToken("sk-test"))

		assert.Equal(t, "sk-test", cfg.Token)
	})

	t.Run("empty token keeps placeholder", func(t *testing.T) {
		cfg := NewConfig(WithToken(""))

		assert.Equal(t, "none", cfg.Token)
	})

	t.Run("with multiple options", func(t *testing.T) {
		cfg := NewConfig(
			WithHost("https://api.openai.com/v1"),
			WithModel("text-embedding-3-large"),
			WithToken("sk-test"),
			WithTimeout(30*time.Second),
		)

		assert.Equal(t, "https://api.openai.com/v1", cfg.Host)
		assert.Equal(t, "text-embedding-3-large", cfg.Model)
		assert.Equal(t, "sk-test", cfg.Token)
		assert.Equal(t, 30*time.Second, cfg.Timeout)
	})
}

func TestConfigNormalize(t *testing.T) {
	tests := []struct {
		name     string
		host     string
		expected string
	}{
		{"already has /v1", "http://localhost:11434/v1", "http://localhost:11434/v1"},
		{"missing /v1", "http://localhost:11434", "http://localhost:11434/v1"},
		{"has trailing slash", "http://localhost:11434/", "http://localhost:11434/v1"},
		{"empty host", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{Host: tt.host}

			cfg.Normalize()

			assert.Equal(t, tt.expected, cfg.Host)
		})
	}
}

func TestConfigValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Host:    "http://localhost:11434",
			Model:   "all-minilm",
			Token:   "none",
			Timeout: 10 * time.Second,
		}
	}

	t.Run("valid config", func(t *testing.T) {
		cfg := valid()

		err := cfg.Validate()
		assert.NoError(t, err)

		// Should also normalize
		assert.Equal(t, "http://localhost:11434/v1", cfg.Host)
	})

	t.Run("missing host", func(t *testing.T) {
		cfg := valid()
		cfg.Host = ""

		err := cfg.Validate()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Host")
	})

	t.Run("missing model", func(t *testing.T) {
		cfg := valid()
		cfg.Model = ""

		err := cfg.Validate()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Model")
	})

	t.Run("missing token", func(t *testing.T) {
		cfg := valid()
		cfg.Token = ""

		err := cfg.Validate()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Token")
	})

	t.Run("non-positive timeout", func(t *testing.T) {
		cfg := valid()
		cfg.Timeout = 0

		err := cfg.Validate()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Timeout")
	})
}

func TestConfigValidate_Integration(t *testing.T) {
	// Both constructors must produce a valid configuration out of the box.
	require.NoError(t, NewConfig().Validate())
	require.NoError(t, DefaultConfig().Validate())
}
