package api

import (
	"github.com/lysyi3m/lead-comb/app/feed"
	"github.com/lysyi3m/lead-comb/app/lead"
	"github.com/lysyi3m/lead-comb/app/registry"
	"github.com/lysyi3m/lead-comb/app/topic"
)

type ItemDecoder interface {
	Items(data []byte) []lead.RawItem
}

var _ ItemDecoder = (*feed.Decoder)(nil)

type Handler struct {
	registry   *registry.Registry
	normalizer *lead.Normalizer
	decoder    ItemDecoder
	topics     topic.Lookup
	itemCap    int
	version    string
}

type healthResponse struct {
	Status          string `json:"status"`
	Version         string `json:"version"`
	RegistryVersion string `json:"registry_version"`
	Feeds           int    `json:"feeds"`
	Timestamp       string `json:"timestamp"`
}
