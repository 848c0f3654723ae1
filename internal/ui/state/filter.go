package state

import (
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Focus stores the entry best matching query as the exit point, leaving the
// cursor untouched, so the next restore or peek starts from that entry.
// Reports whether anything matched.
func (l *List[T]) Focus(query string) bool {
	idx := BestMatchIndex(l.titles(), query)
	if idx < 0 {
		return false
	}
	l.exitPoint = idx
	return true
}

func (l *List[T]) titles() []string {
	titles := make([]string, len(l.items))
	for i, item := range l.items {
		titles[i] = item.EntryTitle()
	}
	return titles
}

// BestMatchIndex ranks titles against query: exact (case-insensitive) first,
// then prefix, then substring, then the closest fuzzy match. Returns -1 when
// the query is blank or nothing matches.
func BestMatchIndex(titles []string, query string) int {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" || len(titles) == 0 {
		return -1
	}
	lower := strings.ToLower(trimmed)
	for i, title := range titles {
		if strings.EqualFold(title, trimmed) {
			return i
		}
	}
	for i, title := range titles {
		if strings.HasPrefix(strings.ToLower(title), lower) {
			return i
		}
	}
	for i, title := range titles {
		if strings.Contains(strings.ToLower(title), lower) {
			return i
		}
	}
	ranks := fuzzy.RankFindNormalizedFold(trimmed, titles)
	if len(ranks) == 0 {
		return -1
	}
	best := ranks[0]
	for _, rank := range ranks[1:] {
		if rank.Distance < best.Distance {
			best = rank
			continue
		}
		if rank.Distance == best.Distance && rank.OriginalIndex < best.OriginalIndex {
			best = rank
		}
	}
	if best.OriginalIndex < 0 || best.OriginalIndex >= len(titles) {
		return -1
	}
	return best.OriginalIndex
}
