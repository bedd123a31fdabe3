package feed

import (
	"bytes"
	"cmp"
	"fmt"
	"log/slog"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/mmcdole/gofeed"

	"github.com/lysyi3m/lead-comb/app/lead"
)

// Decoder turns an already-fetched RSS, Atom or JSON feed document into raw items keyed the
// way the workflow host names them (title, link, guid, pubDate, isoDate, content:encoded, ...).
// gofeed parsers keep per-document state, so each Run gets its own.
type Decoder struct {
	newParser func() *gofeed.Parser
}

func NewDecoder() *Decoder {
	return &Decoder{
		newParser: gofeed.NewParser,
	}
}

func (d *Decoder) Run(data []byte) ([]lead.RawItem, error) {
	feed, err := d.newParser().Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to parse feed: %w", err)
	}

	items := make([]lead.RawItem, 0, len(feed.Items))
	for _, item := range feed.Items {
		if item == nil {
			continue
		}
		items = append(items, d.toRawItem(feed.FeedType, item))
	}

	return items, nil
}

// Items turns a request body into an RSS batch. Feed documents are decoded, anything else is
// read as a JSON item array. A body that cannot be decoded becomes a single error-marker item,
// which the RSS adapter treats as an upstream failure.
func (d *Decoder) Items(data []byte) []lead.RawItem {
	var (
		items []lead.RawItem
		err   error
	)

	if LooksLikeFeed(data) {
		items, err = d.Run(data)
	} else {
		items, err = lead.DecodeBatch(data)
	}

	if err != nil {
		slog.Debug("Undecodable item batch", "error", err)
		return []lead.RawItem{{"error": err.Error()}}
	}
	return items
}

func (d *Decoder) toRawItem(feedType string, item *gofeed.Item) lead.RawItem {
	raw := lead.RawItem{}
	set := func(key, value string) {
		if value != "" {
			raw[key] = value
		}
	}

	set("title", item.Title)
	set("link", item.Link)
	set("guid", item.GUID)
	set("description", item.Description)
	set("content", item.Content)

	encoded := extensionValue(item, "content", "encoded")
	if encoded == "" && feedType == "rss" {
		encoded = item.Content
	}
	set("content:encoded", encoded)
	set("contentSnippet", plainText(cmp.Or(item.Content, item.Description)))
	set("origLink", extensionValue(item, "feedburner", "origLink"))

	set("pubDate", cmp.Or(item.Published, item.Updated))
	if parsed := cmp.Or(item.PublishedParsed, item.UpdatedParsed); parsed != nil {
		set("isoDate", lead.FormatTimestamp(*parsed))
	}

	return raw
}

func extensionValue(item *gofeed.Item, namespace, name string) string {
	values := item.Extensions[namespace][name]
	if len(values) == 0 {
		return ""
	}
	return strings.TrimSpace(values[0].Value)
}

// plainText strips markup and collapses whitespace.
func plainText(fragment string) string {
	if fragment == "" {
		return ""
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return ""
	}
	return strings.Join(strings.Fields(doc.Text()), " ")
}

// LooksLikeFeed sniffs whether a request body is a feed document rather than a JSON item batch.
func LooksLikeFeed(data []byte) bool {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return false
	}
	if trimmed[0] == '<' {
		return true
	}
	return trimmed[0] == '{' && bytes.Contains(trimmed, []byte("jsonfeed.org"))
}
