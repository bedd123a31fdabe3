package lead

import (
	"time"
)

// Normalizer converts upstream batches into lead records. It holds no mutable state and is
// safe for concurrent use.
type Normalizer struct {
	now func() time.Time
}

func NewNormalizer() *Normalizer {
	return &Normalizer{now: time.Now}
}

func (n *Normalizer) timestamp() string {
	return FormatTimestamp(n.now())
}
