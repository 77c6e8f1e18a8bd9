package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestObjectRooted_WrapsArray(t *testing.T) {
	s, wrapped := objectRooted(batchSchema())
	if !wrapped {
		t.Fatal("expected array schema to be wrapped")
	}
	if s.Definition["type"] != "object" {
		t.Fatalf("expected object root, got %v", s.Definition["type"])
	}
	props := s.Definition["properties"].(map[string]any)
	if _, ok := props[wrapKey]; !ok {
		t.Fatalf("expected %q property", wrapKey)
	}
	if s.Name == batchSchema().Name {
		t.Fatal("wrapped schema must not share the cache key")
	}
}

func TestObjectRooted_LeavesObjects(t *testing.T) {
	in := &Schema{Name: "obj", Definition: map[string]any{"type": "object"}}
	s, wrapped := objectRooted(in)
	if wrapped || s != in {
		t.Fatal("object schema should pass through")
	}
	if s, wrapped := objectRooted(nil); wrapped || s != nil {
		t.Fatal("nil schema should pass through")
	}
}

func TestUnwrapArray(t *testing.T) {
	got, err := unwrapArray(json.RawMessage(`{"items":[{"text":"a"}]}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(got) != `[{"text":"a"}]` {
		t.Fatalf("unexpected content: %s", got)
	}

	_, err = unwrapArray(json.RawMessage(`{"questions":[]}`))
	var inv *ErrInvalidResponse
	if !errors.As(err, &inv) {
		t.Fatalf("expected ErrInvalidResponse, got %v", err)
	}
}
