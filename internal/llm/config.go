package llm

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// ProviderNone disables the LLM entirely.
const ProviderNone = "none"

// Config selects and configures the coach's backend. Provider is one of
// anthropic, openai, gemini, openrouter, mock or none.
type Config struct {
	Provider string

	Anthropic  AnthropicConfig
	OpenAI     OpenAIConfig
	Gemini     GeminiConfig
	OpenRouter OpenRouterConfig
	Retry      RetryConfig

	// Timeout bounds one Generate call including retries.
	Timeout time.Duration
}

type AnthropicConfig struct {
	APIKey string
	Model  string
}

type OpenAIConfig struct {
	APIKey string
	Model  string
	// BaseURL points at an OpenAI-compatible gateway instead of api.openai.com.
	BaseURL string
}

type GeminiConfig struct {
	APIKey string
	Model  string
}

type OpenRouterConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

type RetryConfig struct {
	MaxAttempts int
	InitialWait time.Duration
	MaxWait     time.Duration
	Multiplier  float64
}

func DefaultConfig() Config {
	return Config{
		Provider:   "anthropic",
		Anthropic:  AnthropicConfig{Model: "claude-haiku"},
		OpenAI:     OpenAIConfig{Model: "gpt-4o-mini"},
		Gemini:     GeminiConfig{Model: "gemini-flash"},
		OpenRouter: OpenRouterConfig{Model: "google/gemini-2.0-flash-exp"},
		Retry: RetryConfig{
			MaxAttempts: 3,
			InitialWait: time.Second,
			MaxWait:     10 * time.Second,
			Multiplier:  2,
		},
		Timeout: 30 * time.Second,
	}
}

// stringVars binds LEGACYREADY_* variables to string fields of c.
func stringVars(c *Config) map[string]*string {
	return map[string]*string{
		"LEGACYREADY_LLM_PROVIDER":        &c.Provider,
		"LEGACYREADY_ANTHROPIC_API_KEY":   &c.Anthropic.APIKey,
		"LEGACYREADY_ANTHROPIC_MODEL":     &c.Anthropic.Model,
		"LEGACYREADY_OPENAI_API_KEY":      &c.OpenAI.APIKey,
		"LEGACYREADY_OPENAI_MODEL":        &c.OpenAI.Model,
		"LEGACYREADY_OPENAI_BASE_URL":     &c.OpenAI.BaseURL,
		"LEGACYREADY_GEMINI_API_KEY":      &c.Gemini.APIKey,
		"LEGACYREADY_GEMINI_MODEL":        &c.Gemini.Model,
		"LEGACYREADY_OPENROUTER_API_KEY":  &c.OpenRouter.APIKey,
		"LEGACYREADY_OPENROUTER_MODEL":    &c.OpenRouter.Model,
		"LEGACYREADY_OPENROUTER_BASE_URL": &c.OpenRouter.BaseURL,
	}
}

// ConfigFromEnv overlays LEGACYREADY_* variables on DefaultConfig. Unset or
// unparsable values keep their defaults.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()
	for name, field := range stringVars(&cfg) {
		if v := os.Getenv(name); v != "" {
			*field = v
		}
	}
	if d, err := time.ParseDuration(os.Getenv("LEGACYREADY_LLM_TIMEOUT")); err == nil && d > 0 {
		cfg.Timeout = d
	}
	if n, err := strconv.Atoi(os.Getenv("LEGACYREADY_LLM_MAX_ATTEMPTS")); err == nil && n > 0 {
		cfg.Retry.MaxAttempts = n
	}
	return cfg
}

// ResolveConfig picks the coach's configuration. An explicit
// LEGACYREADY_LLM_PROVIDER wins; otherwise well-known API key variables are
// probed. The bool is false when nothing is available or the provider is
// "none".
func ResolveConfig() (Config, bool) {
	if os.Getenv("LEGACYREADY_LLM_PROVIDER") == "" {
		return DiscoverConfig()
	}
	cfg := ConfigFromEnv()
	return cfg, cfg.Provider != ProviderNone
}

// discoveryOrder lists the vendor key variables DiscoverConfig probes.
var discoveryOrder = []struct {
	envVar   string
	provider string
}{
	{"GEMINI_API_KEY", "gemini"},
	{"OPENAI_API_KEY", "openai"},
	{"ANTHROPIC_API_KEY", "anthropic"},
	{"OPENROUTER_API_KEY", "openrouter"},
}

// DiscoverConfig returns a default Config for the first provider whose
// vendor API key variable is set.
func DiscoverConfig() (Config, bool) {
	for _, d := range discoveryOrder {
		key := os.Getenv(d.envVar)
		if key == "" {
			continue
		}
		cfg := DefaultConfig()
		cfg.Provider = d.provider
		*cfg.apiKey() = key
		return cfg, true
	}
	return Config{}, false
}

// apiKey returns the key field of the selected provider, or nil for
// providers that take none.
func (c *Config) apiKey() *string {
	switch c.Provider {
	case "anthropic":
		return &c.Anthropic.APIKey
	case "openai":
		return &c.OpenAI.APIKey
	case "gemini":
		return &c.Gemini.APIKey
	case "openrouter":
		return &c.OpenRouter.APIKey
	}
	return nil
}

// Validate checks that the selected provider is known and has a key.
func (c Config) Validate() error {
	switch c.Provider {
	case "mock", ProviderNone:
		return nil
	}
	key := c.apiKey()
	if key == nil {
		return fmt.Errorf("unknown LLM provider: %q", c.Provider)
	}
	if *key == "" {
		return fmt.Errorf("an API key is required for the %s provider (set LEGACYREADY_%s_API_KEY)",
			c.Provider, strings.ToUpper(c.Provider))
	}
	return nil
}
