package llm

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/abhisek/retomath/internal/store"
)

// NewProvider builds the configured provider wrapped with middleware:
// caller → retry → timeout → logging → base. Each attempt gets its own
// timeout and is logged separately. events may be nil.
func NewProvider(ctx context.Context, cfg Config, events store.EventRepo, log *zap.SugaredLogger) (Provider, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var base Provider
	var err error
	switch cfg.Provider {
	case ProviderGemini:
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case ProviderOpenAI:
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case ProviderOpenRouter:
		base, err = NewOpenRouterProvider(cfg.OpenRouter)
	case ProviderAnthropic:
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case ProviderMock:
		return NewMockProvider(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	logged := WithLogging(base, cfg.Provider, events, log)
	timed := WithTimeout(logged, cfg.Timeout)
	return WithRetry(timed, cfg.Retry), nil
}

// resolveModel maps a friendly model name to a provider model ID. Unknown
// names pass through so full model IDs work too.
func resolveModel(name string, models map[string]string) string {
	if id, ok := models[name]; ok {
		return id
	}
	return name
}
