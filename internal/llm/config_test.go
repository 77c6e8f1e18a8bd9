package llm

import (
	"errors"
	"testing"
)

func TestConfig_Validate(t *testing.T) {
	withKey := func(p string) Config {
		c := DefaultConfig()
		c.Provider = p
		switch p {
		case ProviderGemini:
			c.Gemini.APIKey = "k"
		case ProviderOpenAI:
			c.OpenAI.APIKey = "k"
		case ProviderAnthropic:
			c.Anthropic.APIKey = "k"
		case ProviderOpenRouter:
			c.OpenRouter.APIKey = "k"
		}
		return c
	}
	noKey := DefaultConfig()
	noKey.Provider = ProviderGemini
	unknown := DefaultConfig()
	unknown.Provider = "cohere"

	tests := []struct {
		name          string
		cfg           Config
		notConfigured bool
		wantErr       bool
	}{
		{"offline", DefaultConfig(), true, true},
		{"gemini", withKey(ProviderGemini), false, false},
		{"openai", withKey(ProviderOpenAI), false, false},
		{"anthropic", withKey(ProviderAnthropic), false, false},
		{"openrouter", withKey(ProviderOpenRouter), false, false},
		{"mock", withKey(ProviderMock), false, false},
		{"missing key", noKey, true, true},
		{"unknown", unknown, false, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() = %v, wantErr %v", err, tt.wantErr)
			}
			if got := errors.Is(err, ErrNotConfigured); got != tt.notConfigured {
				t.Fatalf("errors.Is(ErrNotConfigured) = %v, want %v", got, tt.notConfigured)
			}
		})
	}
}

func TestDefaultConfig(t *testing.T) {
	c := DefaultConfig()
	if !c.Offline() {
		t.Fatal("default config should be offline")
	}
	if c.Retry.MaxAttempts != 2 {
		t.Fatalf("expected one retry (2 attempts), got %d", c.Retry.MaxAttempts)
	}
	if c.Timeout.Seconds() != 20 {
		t.Fatalf("expected 20s timeout, got %s", c.Timeout)
	}
	if got := resolveModel(c.Gemini.Model, geminiModels); got != "gemini-2.5-flash" {
		t.Fatalf("expected gemini-2.5-flash default, got %q", got)
	}
}

func TestNewProvider_Offline(t *testing.T) {
	_, err := NewProvider(t.Context(), DefaultConfig(), nil, nil)
	if !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("expected ErrNotConfigured, got %v", err)
	}
}

func TestNewProvider_OpenAIWrapped(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Provider = ProviderOpenAI
	cfg.OpenAI.APIKey = "test-key"

	p, err := NewProvider(t.Context(), cfg, nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := p.(*RetryProvider); !ok {
		t.Fatalf("expected retry wrapper outermost, got %T", p)
	}
	if p.ModelID() != "gpt-4o-mini" {
		t.Fatalf("expected gpt-4o-mini, got %q", p.ModelID())
	}
}

func TestLookupCost(t *testing.T) {
	if LookupCost("gemini-2.5-flash") == nil {
		t.Fatal("expected pricing for gemini-2.5-flash")
	}
	if LookupCost("google/gemini-2.5-flash") == nil {
		t.Fatal("expected OpenRouter id to resolve")
	}
	if LookupCost("unknown-model") != nil {
		t.Fatal("expected nil for unknown model")
	}
	c := ModelCost{InputPerMTok: 1, OutputPerMTok: 2}
	if got := c.Cost(1_000_000, 500_000); got != 2 {
		t.Fatalf("expected cost 2, got %v", got)
	}
}
