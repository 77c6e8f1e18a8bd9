package llm

import (
	"context"
	"encoding/json"
	"testing"
	"time"
)

func TestWithTimeout_ZeroReturnsInner(t *testing.T) {
	mock := NewMockProvider()
	if p := WithTimeout(mock, 0); p != Provider(mock) {
		t.Fatal("expected the inner provider back")
	}
}

func TestWithTimeout_FastCallPasses(t *testing.T) {
	mock := NewMockProvider(MockResponse{Content: json.RawMessage(`[]`)})
	p := WithTimeout(mock, time.Second)

	if _, err := p.Generate(context.Background(), Request{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.ModelID() != "mock" {
		t.Fatalf("expected mock model id, got %q", p.ModelID())
	}
}

func TestWithTimeout_SlowCallFails(t *testing.T) {
	mock := NewMockProvider(MockResponse{Content: json.RawMessage(`[]`)})
	mock.Block = make(chan struct{})
	p := WithTimeout(mock, 5*time.Millisecond)

	start := time.Now()
	if _, err := p.Generate(context.Background(), Request{}); err == nil {
		t.Fatal("expected error")
	}
	if time.Since(start) > time.Second {
		t.Fatal("timeout did not fire")
	}
}
