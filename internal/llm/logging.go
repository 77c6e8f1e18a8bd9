package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/abhisek/retomath/internal/logging"
	"github.com/abhisek/retomath/internal/store"
)

// LoggingProvider records every call in the event log and the app log.
type LoggingProvider struct {
	inner    Provider
	provider string
	events   store.EventRepo
	log      *zap.SugaredLogger
}

// WithLogging wraps p. events may be nil, in which case only the app log
// is written.
func WithLogging(p Provider, providerName string, events store.EventRepo, log *zap.SugaredLogger) Provider {
	return &LoggingProvider{inner: p, provider: providerName, events: events, log: logging.OrNop(log)}
}

func (l *LoggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	purpose := PurposeFrom(ctx)

	resp, err := l.inner.Generate(ctx, req)
	latency := time.Since(start)

	data := store.LLMRequestEventData{
		Provider:    l.provider,
		Model:       l.inner.ModelID(),
		Purpose:     purpose,
		LatencyMs:   latency.Milliseconds(),
		Success:     err == nil,
		RequestBody: serializeRequest(req),
	}
	if resp != nil {
		data.InputTokens = resp.Usage.InputTokens
		data.OutputTokens = resp.Usage.OutputTokens
		data.Model = resp.Model
		data.ResponseBody = string(resp.Content)
	}
	if err != nil {
		data.ErrorMessage = err.Error()
		l.log.Errorw("llm request failed",
			"provider", l.provider, "model", data.Model, "purpose", purpose,
			"latency", latency, "error", err)
	} else {
		l.log.Debugw("llm request",
			"provider", l.provider, "model", data.Model, "purpose", purpose,
			"latency", latency, "in", data.InputTokens, "out", data.OutputTokens)
	}

	if l.events != nil {
		// Use a fresh context: the request context may already be past its
		// deadline, and the failure is exactly what we want recorded.
		if logErr := l.events.AppendLLMRequest(context.WithoutCancel(ctx), data); logErr != nil {
			l.log.Warnw("failed to record llm request event", "error", logErr)
		}
	}

	return resp, err
}

func (l *LoggingProvider) ModelID() string {
	return l.inner.ModelID()
}

// serializeRequest renders the request for `retomath llm view`.
func serializeRequest(req Request) string {
	var b strings.Builder

	if req.System != "" {
		b.WriteString("[system]\n")
		b.WriteString(req.System)
		b.WriteString("\n\n")
	}
	for _, m := range req.Messages {
		fmt.Fprintf(&b, "[%s]\n%s\n\n", m.Role, m.Content)
	}
	if req.Schema != nil {
		if def, err := json.Marshal(req.Schema.Definition); err == nil {
			fmt.Fprintf(&b, "[schema: %s]\n%s\n", req.Schema.Name, def)
		}
	}
	return b.String()
}
