package registry

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultRegistry(t *testing.T) {
	r := Default()

	feeds := r.ListFeeds()
	if len(feeds) != 31 {
		t.Fatalf("Expected 31 feeds, got: %d", len(feeds))
	}
	if feeds[0].URL != "https://www.quantamagazine.org/feed" {
		t.Errorf("Expected first feed to be Quanta, got: %s", feeds[0].URL)
	}
	if feeds[len(feeds)-1].URL != "https://skepticalinquirer.org/feed/" {
		t.Errorf("Expected last feed to be Skeptical Inquirer, got: %s", feeds[len(feeds)-1].URL)
	}
	if len(r.Groups()) != 6 {
		t.Errorf("Expected 6 groups, got: %d", len(r.Groups()))
	}
	if r.Version() != DefaultVersion {
		t.Errorf("Expected version '%s', got: %s", DefaultVersion, r.Version())
	}
}

func TestListFeedsIsDeterministicAndIsolated(t *testing.T) {
	r := Default()

	first := r.ListFeeds()
	first[0].URL = "mutated"
	groups := r.Groups()
	groups[0].Feeds[0] = "mutated"

	second := r.ListFeeds()
	if second[0].URL != "https://www.quantamagazine.org/feed" {
		t.Errorf("Expected registry to be unaffected by caller mutation, got: %s", second[0].URL)
	}
}

func TestNewValidation(t *testing.T) {
	tests := []struct {
		name    string
		groups  []Group
		wantErr error
	}{
		{"no groups", nil, ErrNoFeeds},
		{"empty group", []Group{{Name: "science"}}, ErrNoFeeds},
		{"blank url", []Group{{Name: "science", Feeds: []string{"  "}}}, ErrEmptyURL},
		{"blank name", []Group{{Name: "", Feeds: []string{"https://a"}}}, ErrEmptyGroupName},
		{"duplicate across groups", []Group{
			{Name: "a", Feeds: []string{"https://a"}},
			{Name: "b", Feeds: []string{"https://a"}},
		}, ErrDuplicateURL},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New("test", tt.groups)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Expected error %v, got: %v", tt.wantErr, err)
			}
		})
	}
}

func TestLoadYAML(t *testing.T) {
	tempDir := t.TempDir()

	content := `
version: "2024-06"
groups:
  - name: core science
    feeds:
      - https://www.quantamagazine.org/feed
      - " https://aeon.co/feed.rss "
  - name: staging
    feeds:
      - https://example.com/feed.xml
`
	path := filepath.Join(tempDir, "feeds.yml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	r, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}

	if r.Version() != "2024-06" {
		t.Errorf("Expected version '2024-06', got: %s", r.Version())
	}

	feeds := r.ListFeeds()
	expected := []string{
		"https://www.quantamagazine.org/feed",
		"https://aeon.co/feed.rss",
		"https://example.com/feed.xml",
	}
	if len(feeds) != len(expected) {
		t.Fatalf("Expected %d feeds, got: %d", len(expected), len(feeds))
	}
	for i, feed := range feeds {
		if feed.URL != expected[i] {
			t.Errorf("Feed %d: expected '%s', got: '%s'", i, expected[i], feed.URL)
		}
	}
}

func TestLoadErrors(t *testing.T) {
	tempDir := t.TempDir()

	if _, err := Load(filepath.Join(tempDir, "missing.yml")); err == nil {
		t.Error("Expected error for missing file")
	}

	invalid := filepath.Join(tempDir, "invalid.yml")
	if err := os.WriteFile(invalid, []byte("groups: [unterminated"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(invalid); err == nil {
		t.Error("Expected error for invalid YAML")
	}

	empty := filepath.Join(tempDir, "empty.yml")
	if err := os.WriteFile(empty, []byte("version: x\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(empty); !errors.Is(err, ErrNoFeeds) {
		t.Errorf("Expected ErrNoFeeds, got: %v", err)
	}
}

func TestLoadOrDefault(t *testing.T) {
	r, err := LoadOrDefault("")
	if err != nil {
		t.Fatal(err)
	}
	if r.Len() != 31 {
		t.Errorf("Expected built-in registry, got %d feeds", r.Len())
	}
}

func TestWriteTable(t *testing.T) {
	r, err := New("v1", []Group{
		{Name: "core science", Feeds: []string{"https://a", "https://b"}},
		{Name: "tech", Feeds: []string{"https://c"}},
	})
	if err != nil {
		t.Fatal(err)
	}

	var b strings.Builder
	if err := WriteTable(&b, r); err != nil {
		t.Fatal(err)
	}

	out := b.String()
	lines := strings.Split(out, "\n")
	if !strings.HasPrefix(lines[0], "GROUP") {
		t.Errorf("Expected header row, got: %s", lines[0])
	}
	if lines[1] != "Core Science  https://a" {
		t.Errorf("Expected title-cased group on first row, got: '%s'", lines[1])
	}
	if lines[2] != "              https://b" {
		t.Errorf("Expected blank group column on continuation row, got: '%s'", lines[2])
	}
	if !strings.Contains(out, "3 feeds in 2 groups (version v1)") {
		t.Errorf("Expected summary line, got: %s", out)
	}
}
