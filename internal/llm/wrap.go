package llm

import (
	"encoding/json"
	"fmt"
)

// wrapKey holds an array result inside the object wrapper.
const wrapKey = "items"

// objectRooted returns s unchanged when its root is already an object.
// Array roots are wrapped in {"items": [...]} for providers whose
// structured output requires an object root.
func objectRooted(s *Schema) (*Schema, bool) {
	if s == nil || s.Definition["type"] != "array" {
		return s, false
	}
	return &Schema{
		Name:        s.Name + "-wrapped",
		Description: s.Description,
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				wrapKey: s.Definition,
			},
			"required":             []any{wrapKey},
			"additionalProperties": false,
		},
	}, true
}

// unwrapArray extracts the array from an object-wrapped response.
func unwrapArray(raw json.RawMessage) (json.RawMessage, error) {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(raw, &obj); err != nil {
		return nil, &ErrInvalidResponse{Content: raw, Err: fmt.Errorf("invalid JSON: %w", err)}
	}
	inner, ok := obj[wrapKey]
	if !ok {
		return nil, &ErrInvalidResponse{Content: raw, Err: fmt.Errorf("missing %q in wrapped response", wrapKey)}
	}
	return inner, nil
}
