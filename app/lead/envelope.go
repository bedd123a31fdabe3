package lead

import (
	"encoding/json"
	"fmt"
)

// Envelope is the host's item wrapping: every record travels as {"json": {...}}.
type Envelope[T any] struct {
	JSON T `json:"json"`
}

func Wrap[T any](values []T) []Envelope[T] {
	wrapped := make([]Envelope[T], 0, len(values))
	for _, v := range values {
		wrapped = append(wrapped, Envelope[T]{JSON: v})
	}
	return wrapped
}

// DecodeBatch parses a JSON array of items, accepting both plain and enveloped entries. A single
// object is read as a one-item batch. Entries that are not objects become empty items so
// positions are preserved.
func DecodeBatch(data []byte) ([]RawItem, error) {
	var decoded any
	if err := json.Unmarshal(data, &decoded); err != nil {
		return nil, fmt.Errorf("failed to decode item batch: %w", err)
	}

	var entries []any
	switch value := decoded.(type) {
	case []any:
		entries = value
	case map[string]any:
		entries = []any{value}
	default:
		return nil, fmt.Errorf("failed to decode item batch: expected array or object, got %T", decoded)
	}

	items := make([]RawItem, 0, len(entries))
	for _, entry := range entries {
		object, _ := entry.(map[string]any)
		items = append(items, unwrap(object))
	}
	return items, nil
}

// DecodeCompletion parses a completion response. A single-element batch (the host's wrapping)
// is unwrapped to its first item. Anything that is not an object decodes to an empty response.
func DecodeCompletion(data []byte) map[string]any {
	var decoded any
	if err := json.Unmarshal(data, &decoded); err != nil {
		return map[string]any{}
	}

	switch value := decoded.(type) {
	case map[string]any:
		return unwrap(value)
	case []any:
		if len(value) > 0 {
			if object, ok := value[0].(map[string]any); ok {
				return unwrap(object)
			}
		}
	}
	return map[string]any{}
}

func unwrap(object map[string]any) RawItem {
	if len(object) == 1 {
		if inner, ok := object["json"].(map[string]any); ok {
			return inner
		}
	}
	return object
}
