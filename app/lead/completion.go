package lead

import (
	"cmp"
	"encoding/json"
	"log/slog"
)

// EmptyPayload is what ResolvePayload falls back to when no known shape matches.
const EmptyPayload = "{}"

// ResolvePayload locates the generated text inside a completion response. Known shapes are
// probed in order:
//
//	output[0].content[0].text    (responses-style output)
//	choices[0].message.content   (chat-completions)
//	content                      (bare)
//
// The result is usually a string holding JSON but may already be a decoded object.
func ResolvePayload(raw map[string]any) any {
	if text, ok := lookupPath(raw, "output", 0, "content", 0, "text"); ok {
		return text
	}
	if content, ok := lookupPath(raw, "choices", 0, "message", "content"); ok {
		return content
	}
	if content := raw["content"]; truthy(content) {
		return content
	}
	return EmptyPayload
}

// AdaptAICompletion emits one record per generated story. Stories are copied through without
// truncation or fallback chains, and published_at is always the normalization instant.
func (n *Normalizer) AdaptAICompletion(raw map[string]any, originHint string) []Record {
	stories := parseStories(ResolvePayload(raw))

	origin := Origin(SourcePerplexity, cmp.Or(originHint, UnknownTopic))
	now := n.timestamp()

	records := make([]Record, 0, len(stories))
	for _, s := range stories {
		story, _ := s.(map[string]any)
		records = append(records, Record{
			Title:        stringValue(story["title"]),
			URL:          stringValue(story["url"]),
			Summary:      stringValue(story["summary"]),
			SourceOrigin: origin,
			PublishedAt:  now,
		})
	}

	slog.Debug("Normalized completion", "source", origin, "stories", len(records))
	return records
}

func parseStories(payload any) []any {
	parsed := payload
	if text, ok := payload.(string); ok {
		var decoded any
		if err := json.Unmarshal([]byte(text), &decoded); err != nil {
			slog.Warn("Completion payload is not valid JSON, treating as no stories", "error", err)
			return nil
		}
		parsed = decoded
	}

	object, ok := parsed.(map[string]any)
	if !ok {
		return nil
	}
	stories, _ := object["stories"].([]any)
	return stories
}

// lookupPath walks nested maps (string steps) and arrays (int steps). It fails on any missing
// step and on a nil leaf.
func lookupPath(v any, path ...any) (any, bool) {
	current := v
	for _, step := range path {
		switch key := step.(type) {
		case string:
			object, ok := current.(map[string]any)
			if !ok {
				return nil, false
			}
			current = object[key]
		case int:
			list, ok := current.([]any)
			if !ok || key >= len(list) {
				return nil, false
			}
			current = list[key]
		}
	}
	return current, current != nil
}
