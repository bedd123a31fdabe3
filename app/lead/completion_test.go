package lead

import (
	"encoding/json"
	"testing"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

const storiesJSON = `{"stories":[
	{"title":"The Hum of Taos","url":"https://example.com/taos","summary":"A low-frequency sound heard by a few residents."},
	{"title":"Ball Lightning","url":"https://example.com/ball","summary":"Rare glowing spheres during storms."}
]}`

func chatCompletionResponse(t *testing.T, content string) map[string]any {
	t.Helper()

	resp := openai.ChatCompletionResponse{
		ID:    "chatcmpl-1",
		Model: "sonar",
		Choices: []openai.ChatCompletionChoice{
			{
				Index: 0,
				Message: openai.ChatCompletionMessage{
					Role:    openai.ChatMessageRoleAssistant,
					Content: content,
				},
			},
		},
	}

	data, err := json.Marshal(resp)
	if err != nil {
		t.Fatal(err)
	}

	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatal(err)
	}
	return raw
}

func responsesOutput(text any) map[string]any {
	return map[string]any{
		"output": []any{
			map[string]any{
				"type": "message",
				"content": []any{
					map[string]any{"type": "output_text", "text": text},
				},
			},
		},
	}
}

func TestResolvePayload_Shapes(t *testing.T) {
	tests := []struct {
		name     string
		raw      map[string]any
		expected any
	}{
		{"responses output", responsesOutput("from-output"), "from-output"},
		{"chat completion", chatCompletionResponse(t, "from-choices"), "from-choices"},
		{"bare content", map[string]any{"content": "from-content"}, "from-content"},
		{"unknown shape", map[string]any{"foo": "bar"}, EmptyPayload},
		{"empty response", map[string]any{}, EmptyPayload},
		{"empty bare content", map[string]any{"content": ""}, EmptyPayload},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ResolvePayload(tt.raw); got != tt.expected {
				t.Errorf("Expected payload %v, got: %v", tt.expected, got)
			}
		})
	}
}

func TestResolvePayload_OutputTakesPrecedence(t *testing.T) {
	raw := responsesOutput("from-output")
	raw["choices"] = []any{map[string]any{"message": map[string]any{"content": "from-choices"}}}
	raw["content"] = "from-content"

	if got := ResolvePayload(raw); got != "from-output" {
		t.Errorf("Expected output shape to win, got: %v", got)
	}

	delete(raw, "output")
	if got := ResolvePayload(raw); got != "from-choices" {
		t.Errorf("Expected choices shape to win over bare content, got: %v", got)
	}
}

func TestResolvePayload_IncompleteShapesFallThrough(t *testing.T) {
	raw := map[string]any{
		"output":  []any{map[string]any{"content": []any{}}},
		"choices": []any{},
		"content": "from-content",
	}

	if got := ResolvePayload(raw); got != "from-content" {
		t.Errorf("Expected fall through to bare content, got: %v", got)
	}
}

func TestAdaptAICompletion_Stories(t *testing.T) {
	n := newTestNormalizer()

	records := n.AdaptAICompletion(chatCompletionResponse(t, storiesJSON), "acoustic anomalies")
	if len(records) != 2 {
		t.Fatalf("Expected 2 records, got: %d", len(records))
	}

	r := records[0]
	if r.Title != "The Hum of Taos" {
		t.Errorf("Expected title 'The Hum of Taos', got: %s", r.Title)
	}
	if r.URL != "https://example.com/taos" {
		t.Errorf("Expected url copied, got: %s", r.URL)
	}
	if r.SourceOrigin != "Perplexity: acoustic anomalies" {
		t.Errorf("Expected 'Perplexity: acoustic anomalies', got: %s", r.SourceOrigin)
	}
	if r.PublishedAt != "2024-05-01T12:30:00.000Z" {
		t.Errorf("Expected normalization time, got: %s", r.PublishedAt)
	}
}

func TestAdaptAICompletion_PublishedAtIsNow(t *testing.T) {
	n := NewNormalizer()
	start := time.Now().UTC().Truncate(time.Millisecond)

	records := n.AdaptAICompletion(map[string]any{"content": storiesJSON}, "topic")
	if len(records) != 2 {
		t.Fatalf("Expected 2 records, got: %d", len(records))
	}

	for i, r := range records {
		published, err := time.Parse(TimestampLayout, r.PublishedAt)
		if err != nil {
			t.Fatalf("Record %d: invalid timestamp %s: %v", i, r.PublishedAt, err)
		}
		if published.Before(start) {
			t.Errorf("Record %d: expected published_at >= %v, got: %v", i, start, published)
		}
	}
}

func TestAdaptAICompletion_SummaryNotTruncated(t *testing.T) {
	n := newTestNormalizer()

	long := make([]byte, 3000)
	for i := range long {
		long[i] = 'y'
	}
	payload := map[string]any{
		"stories": []any{map[string]any{"title": "t", "url": "u", "summary": string(long)}},
	}

	records := n.AdaptAICompletion(map[string]any{"content": payload}, "topic")
	if len(records) != 1 {
		t.Fatalf("Expected 1 record, got: %d", len(records))
	}
	if len(records[0].Summary) != 3000 {
		t.Errorf("Expected untruncated summary of 3000 characters, got: %d", len(records[0].Summary))
	}
}

func TestAdaptAICompletion_Degraded(t *testing.T) {
	n := newTestNormalizer()

	tests := []struct {
		name string
		raw  map[string]any
	}{
		{"unknown shape", map[string]any{"unexpected": true}},
		{"malformed JSON", map[string]any{"content": "Here are some stories: {not json"}},
		{"no stories key", map[string]any{"content": `{"results": []}`}},
		{"stories not a list", map[string]any{"content": `{"stories": {"title": "x"}}`}},
		{"JSON array payload", map[string]any{"content": `[{"title": "x"}]`}},
		{"nil response", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records := n.AdaptAICompletion(tt.raw, "topic")
			if records == nil || len(records) != 0 {
				t.Errorf("Expected empty non-nil result, got: %v", records)
			}
		})
	}
}

func TestAdaptAICompletion_MissingFieldsAndHint(t *testing.T) {
	n := newTestNormalizer()

	raw := responsesOutput(`{"stories":[{"title":"Only a title"}, "not an object"]}`)
	records := n.AdaptAICompletion(raw, "")
	if len(records) != 2 {
		t.Fatalf("Expected one record per story, got: %d", len(records))
	}

	if records[0].URL != "" || records[0].Summary != "" {
		t.Errorf("Expected empty url and summary, got: '%s', '%s'", records[0].URL, records[0].Summary)
	}
	if records[1].Title != "" {
		t.Errorf("Expected empty title for non-object story, got: %s", records[1].Title)
	}
	if records[0].SourceOrigin != "Perplexity: Unknown Topic" {
		t.Errorf("Expected 'Perplexity: Unknown Topic', got: %s", records[0].SourceOrigin)
	}
}
