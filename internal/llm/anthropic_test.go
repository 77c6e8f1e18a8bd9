package llm

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
)

func TestMapAnthropicError(t *testing.T) {
	rateLimited := &anthropic.Error{
		StatusCode: http.StatusTooManyRequests,
		Response:   &http.Response{Header: http.Header{"Retry-After": []string{"2"}}},
	}
	var rl *ErrRateLimit
	if !errors.As(mapAnthropicError(rateLimited), &rl) {
		t.Fatal("429 should map to ErrRateLimit")
	}
	if rl.RetryAfter != 2*time.Second {
		t.Errorf("RetryAfter = %s, want 2s", rl.RetryAfter)
	}

	var unavailable *ErrProviderUnavailable
	if !errors.As(mapAnthropicError(&anthropic.Error{StatusCode: http.StatusBadGateway}), &unavailable) {
		t.Error("502 should map to ErrProviderUnavailable")
	}
	if !errors.As(mapAnthropicError(errors.New("dial tcp: refused")), &unavailable) {
		t.Error("transport errors should map to ErrProviderUnavailable")
	}
}
