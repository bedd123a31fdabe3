package lead

import (
	"fmt"
	"time"
)

type SourceKind string

const (
	SourceRSS        SourceKind = "RSS"
	SourcePerplexity SourceKind = "Perplexity"
)

const (
	DefaultTitle     = "No Title"
	UnknownURL       = "Unknown URL"
	UnknownTopic     = "Unknown Topic"
	MaxSummaryLength = 1500

	// TimestampLayout matches the host's ISO-8601 rendering (UTC, millisecond precision).
	TimestampLayout = "2006-01-02T15:04:05.000Z07:00"
)

// Record is the canonical lead produced by every adapter. All fields are always populated,
// possibly with defaults; none are optional.
type Record struct {
	Title        string `json:"title"`
	URL          string `json:"url"`
	Summary      string `json:"summary"`
	SourceOrigin string `json:"source_origin"`
	PublishedAt  string `json:"published_at"`
}

// RawItem is an untyped upstream record (feed entry or completion fragment).
type RawItem map[string]any

// HasError reports whether the upstream stage flagged this item as failed.
func (i RawItem) HasError() bool {
	return truthy(i["error"])
}

func Origin(kind SourceKind, hint string) string {
	return fmt.Sprintf("%s: %s", kind, hint)
}

func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}
