package lead

import (
	"cmp"
	"log/slog"
)

// AdaptRSS normalizes a batch of feed entries. An empty batch, or one whose first entry carries
// an upstream error marker, yields no records. A positive itemCap limits processing to the
// leading items.
func (n *Normalizer) AdaptRSS(batch []RawItem, sourceURLHint string, itemCap int) []Record {
	if len(batch) == 0 {
		return []Record{}
	}
	if batch[0].HasError() {
		slog.Debug("Upstream error marker on first item, skipping batch",
			"source", sourceURLHint,
			"error", stringValue(batch[0]["error"]))
		return []Record{}
	}

	if itemCap > 0 && itemCap < len(batch) {
		batch = batch[:itemCap]
	}

	origin := Origin(SourceRSS, cmp.Or(sourceURLHint, UnknownURL))
	now := n.timestamp()

	records := make([]Record, 0, len(batch))
	for _, item := range batch {
		records = append(records, Record{
			Title:        TitleChain.Or(item, DefaultTitle),
			URL:          URLChain.Or(item, ""),
			Summary:      truncate(SummaryChain.Or(item, ""), MaxSummaryLength),
			SourceOrigin: origin,
			PublishedAt:  PublishedChain.Or(item, now),
		})
	}

	slog.Debug("Normalized RSS batch", "source", origin, "input", len(batch), "records", len(records))
	return records
}
