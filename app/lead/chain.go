package lead

import (
	"encoding/json"
	"math"
	"strconv"
	"unicode/utf8"
)

// Extractor pulls one candidate value out of a raw item. The boolean is false when the
// candidate is missing or empty, which lets the next extractor in a Chain take over.
type Extractor func(item RawItem) (string, bool)

// Chain is an ordered list of extractors; the first one that yields a value wins.
type Chain []Extractor

// Field reads one key. Falsy values (zero numbers included) count as missing.
func Field(key string) Extractor {
	return func(item RawItem) (string, bool) {
		raw := item[key]
		if !truthy(raw) {
			return "", false
		}
		value := stringValue(raw)
		return value, value != ""
	}
}

func (c Chain) Resolve(item RawItem) (string, bool) {
	for _, extract := range c {
		if value, ok := extract(item); ok {
			return value, true
		}
	}
	return "", false
}

func (c Chain) Or(item RawItem, fallback string) string {
	if value, ok := c.Resolve(item); ok {
		return value
	}
	return fallback
}

var (
	SummaryChain   = Chain{Field("description"), Field("contentSnippet"), Field("content:encoded"), Field("content")}
	URLChain       = Chain{Field("link"), Field("guid"), Field("origLink")}
	PublishedChain = Chain{Field("pubDate"), Field("isoDate")}
	TitleChain     = Chain{Field("title")}
)

// stringValue renders scalar JSON values as text. Objects, arrays and null yield "".
func stringValue(v any) string {
	switch value := v.(type) {
	case string:
		return value
	case json.Number:
		return value.String()
	case float64:
		if math.IsNaN(value) || math.IsInf(value, 0) {
			return ""
		}
		return strconv.FormatFloat(value, 'f', -1, 64)
	case int:
		return strconv.Itoa(value)
	case int64:
		return strconv.FormatInt(value, 10)
	default:
		return ""
	}
}

func truthy(v any) bool {
	switch value := v.(type) {
	case nil:
		return false
	case bool:
		return value
	case string:
		return value != ""
	case float64:
		return value != 0 && !math.IsNaN(value)
	case int:
		return value != 0
	case int64:
		return value != 0
	case json.Number:
		f, err := value.Float64()
		return err != nil || f != 0
	default:
		return true
	}
}

// truncate cuts s to at most limit characters without splitting a code point.
func truncate(s string, limit int) string {
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	count := 0
	for pos := range s {
		if count == limit {
			return s[:pos]
		}
		count++
	}
	return s
}
