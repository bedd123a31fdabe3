package registry

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNoFeeds        = errors.New("registry contains no feeds")
	ErrEmptyURL       = errors.New("feed URL is required")
	ErrDuplicateURL   = errors.New("feed URL is listed more than once")
	ErrEmptyGroupName = errors.New("group name is required")
)

// FeedEntry is what the registry hands to the downstream fetch stage.
type FeedEntry struct {
	URL string `json:"url"`
}

// Group is a documentation-only grouping of feeds; it has no runtime behavior.
type Group struct {
	Name  string   `yaml:"name" json:"name"`
	Feeds []string `yaml:"feeds" json:"feeds"`
}

// Registry is an immutable, ordered list of feed URLs.
type Registry struct {
	version string
	groups  []Group
	size    int
}

// New validates groups and returns a registry holding its own copy of them.
func New(version string, groups []Group) (*Registry, error) {
	seen := make(map[string]bool)
	copied := make([]Group, 0, len(groups))

	for i, group := range groups {
		name := strings.TrimSpace(group.Name)
		if name == "" {
			return nil, fmt.Errorf("group at index %d: %w", i, ErrEmptyGroupName)
		}

		feeds := make([]string, 0, len(group.Feeds))
		for j, raw := range group.Feeds {
			url := strings.TrimSpace(raw)
			if url == "" {
				return nil, fmt.Errorf("group %q feed at index %d: %w", name, j, ErrEmptyURL)
			}
			if seen[url] {
				return nil, fmt.Errorf("group %q feed %s: %w", name, url, ErrDuplicateURL)
			}
			seen[url] = true
			feeds = append(feeds, url)
		}

		copied = append(copied, Group{Name: name, Feeds: feeds})
	}

	if len(seen) == 0 {
		return nil, ErrNoFeeds
	}

	return &Registry{
		version: version,
		groups:  copied,
		size:    len(seen),
	}, nil
}

// ListFeeds returns every configured feed in declaration order.
func (r *Registry) ListFeeds() []FeedEntry {
	entries := make([]FeedEntry, 0, r.size)
	for _, group := range r.groups {
		for _, url := range group.Feeds {
			entries = append(entries, FeedEntry{URL: url})
		}
	}
	return entries
}

func (r *Registry) Groups() []Group {
	groups := make([]Group, 0, len(r.groups))
	for _, group := range r.groups {
		groups = append(groups, Group{
			Name:  group.Name,
			Feeds: append([]string(nil), group.Feeds...),
		})
	}
	return groups
}

func (r *Registry) Version() string {
	return r.version
}

func (r *Registry) Len() int {
	return r.size
}
