package llm

import (
	"context"
	"testing"
	"time"
)

func clearLLMEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"LEGACYREADY_LLM_PROVIDER", "LEGACYREADY_LLM_TIMEOUT", "LEGACYREADY_LLM_MAX_ATTEMPTS",
		"LEGACYREADY_ANTHROPIC_API_KEY", "LEGACYREADY_OPENAI_API_KEY",
		"LEGACYREADY_GEMINI_API_KEY", "LEGACYREADY_OPENROUTER_API_KEY",
		"GEMINI_API_KEY", "OPENAI_API_KEY", "ANTHROPIC_API_KEY", "OPENROUTER_API_KEY",
	} {
		t.Setenv(k, "")
	}
}

func TestConfigFromEnv(t *testing.T) {
	clearLLMEnv(t)
	t.Setenv("LEGACYREADY_LLM_PROVIDER", "openrouter")
	t.Setenv("LEGACYREADY_OPENROUTER_API_KEY", "sk-or")
	t.Setenv("LEGACYREADY_LLM_TIMEOUT", "5s")

	cfg := ConfigFromEnv()
	if cfg.Provider != "openrouter" {
		t.Errorf("provider = %q", cfg.Provider)
	}
	if cfg.OpenRouter.APIKey != "sk-or" {
		t.Errorf("api key = %q", cfg.OpenRouter.APIKey)
	}
	if cfg.Timeout != 5*time.Second {
		t.Errorf("timeout = %v, want 5s", cfg.Timeout)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("validate: %v", err)
	}
}

func TestResolveConfig(t *testing.T) {
	t.Run("nothing configured", func(t *testing.T) {
		clearLLMEnv(t)
		if _, ok := ResolveConfig(); ok {
			t.Fatal("expected no provider")
		}
	})

	t.Run("discovered key", func(t *testing.T) {
		clearLLMEnv(t)
		t.Setenv("ANTHROPIC_API_KEY", "sk-ant")
		cfg, ok := ResolveConfig()
		if !ok || cfg.Provider != "anthropic" {
			t.Fatalf("got %q, %v", cfg.Provider, ok)
		}
	})

	t.Run("explicitly disabled", func(t *testing.T) {
		clearLLMEnv(t)
		t.Setenv("LEGACYREADY_LLM_PROVIDER", ProviderNone)
		t.Setenv("ANTHROPIC_API_KEY", "sk-ant")
		if _, ok := ResolveConfig(); ok {
			t.Fatal("expected provider to be disabled")
		}
	})
}

func TestValidate_MissingKey(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Provider = "gemini"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for missing gemini key")
	}
	cfg.Provider = "bogus"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for unknown provider")
	}
}

func TestNewProvider_Mock(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Provider = "mock"
	p, err := NewProvider(context.Background(), cfg, nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.ModelID() != "mock" || ProviderName(p) != "mock" {
		t.Errorf("got %s/%s", ProviderName(p), p.ModelID())
	}
}

func TestNewProvider_OpenRouter(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Provider = "openrouter"
	cfg.OpenRouter.APIKey = "sk-or"
	p, err := NewProvider(context.Background(), cfg, nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ProviderName(p) != "openrouter" {
		t.Errorf("name = %q, want openrouter", ProviderName(p))
	}
}

func TestConfigFromEnv_IgnoresBadNumbers(t *testing.T) {
	clearLLMEnv(t)
	t.Setenv("LEGACYREADY_LLM_TIMEOUT", "soon")
	t.Setenv("LEGACYREADY_LLM_MAX_ATTEMPTS", "5")

	cfg := ConfigFromEnv()
	if cfg.Timeout != DefaultConfig().Timeout {
		t.Errorf("timeout = %v, want default", cfg.Timeout)
	}
	if cfg.Retry.MaxAttempts != 5 {
		t.Errorf("max attempts = %d, want 5", cfg.Retry.MaxAttempts)
	}
}

func TestDiscoverConfig_Order(t *testing.T) {
	clearLLMEnv(t)
	t.Setenv("OPENROUTER_API_KEY", "sk-or")
	t.Setenv("OPENAI_API_KEY", "sk-oa")

	cfg, ok := DiscoverConfig()
	if !ok || cfg.Provider != "openai" || cfg.OpenAI.APIKey != "sk-oa" {
		t.Errorf("got %+v, %v", cfg, ok)
	}
}
