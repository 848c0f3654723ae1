package state

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

const fillerText = "Lorem ipsum dolor sit amet, consectetur adipiscing elit."

// Entry is a single row of the navigable list.
type Entry struct {
	ID          string
	Title       string
	Description string
	UsageCount  int
}

// EntryTitle satisfies the list's title lookup.
func (e Entry) EntryTitle() string {
	return e.Title
}

// DetailLines returns the lines rendered beneath the title: one copy of the
// description per recorded use.
func (e Entry) DetailLines() []string {
	desc := strings.TrimSpace(e.Description)
	if desc == "" || e.UsageCount <= 0 {
		return nil
	}
	lines := make([]string, e.UsageCount)
	for i := range lines {
		lines[i] = desc
	}
	return lines
}

// NewEntry builds an entry inserted at runtime.
func NewEntry(title, description string) Entry {
	return Entry{
		ID:          uuid.NewString(),
		Title:       title,
		Description: description,
		UsageCount:  1,
	}
}

// SeedEntries returns the entries the list starts with.
func SeedEntries() []Entry {
	counts := []int{1, 2, 1, 3, 1, 4, 1, 3, 1, 6}
	entries := make([]Entry, len(counts))
	for i, count := range counts {
		entries[i] = Entry{
			ID:          fmt.Sprintf("item-%d", i),
			Title:       fmt.Sprintf("Item%d", i),
			Description: fillerText,
			UsageCount:  count,
		}
	}
	return entries
}
