package registry

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// WriteTable prints the registry as a two-column listing, one feed per row, with the group
// name shown on the first row of each group.
func WriteTable(w io.Writer, r *Registry) error {
	title := cases.Title(language.English)

	width := runewidth.StringWidth("GROUP")
	names := make([]string, 0, len(r.groups))
	for _, group := range r.groups {
		name := title.String(group.Name)
		names = append(names, name)
		width = max(width, runewidth.StringWidth(name))
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s  %s\n", runewidth.FillRight("GROUP", width), "URL")
	for i, group := range r.groups {
		for j, url := range group.Feeds {
			label := ""
			if j == 0 {
				label = names[i]
			}
			fmt.Fprintf(&b, "%s  %s\n", runewidth.FillRight(label, width), url)
		}
	}
	fmt.Fprintf(&b, "\n%d feeds in %d groups (version %s)\n", r.size, len(r.groups), r.version)

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("failed to write registry table: %w", err)
	}
	return nil
}
