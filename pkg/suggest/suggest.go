// Package suggest ranks grocery-name completions for the entry field. Pure
// lookup over a built-in catalogue, no state.
package suggest

import (
	"sort"
	"strings"
)

// Grocery is one catalogue entry. Common marks household staples that rank
// above the long tail.
type Grocery struct {
	Name     string   `json:"name"`
	Category string   `json:"category"`
	Aliases  []string `json:"aliases,omitempty"`
	Common   bool     `json:"common"`
}

type Index struct {
	items []Grocery
}

// NewIndex builds an index over the built-in catalogue.
func NewIndex() *Index {
	return &Index{items: catalogue}
}

// NewIndexWith builds an index over a caller-supplied catalogue.
func NewIndexWith(items []Grocery) *Index {
	return &Index{items: items}
}

// Search returns up to limit entries ranked by match quality: exact name,
// then name prefix, then name substring, then alias substring, with common
// items boosted within each band. Queries shorter than two runes match
// nothing.
func (idx *Index) Search(query string, limit int) []Grocery {
	normalized := strings.ToLower(strings.TrimSpace(query))
	if len([]rune(normalized)) < 2 || limit < 1 {
		return []Grocery{}
	}

	type scored struct {
		item  Grocery
		score int
	}
	matches := make([]scored, 0, limit)
	for _, item := range idx.items {
		s := score(item, normalized)
		if s > 0 {
			matches = append(matches, scored{item: item, score: s})
		}
	}
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].score > matches[j].score
	})
	if len(matches) > limit {
		matches = matches[:limit]
	}
	out := make([]Grocery, len(matches))
	for i, m := range matches {
		out[i] = m.item
	}
	return out
}

func score(item Grocery, query string) int {
	name := strings.ToLower(item.Name)
	boost := func(n int) int {
		if item.Common {
			return n
		}
		return 0
	}

	var s int
	switch {
	case name == query:
		s = 1000
	case strings.HasPrefix(name, query):
		s = 100 + boost(50)
	case strings.Contains(name, query):
		s = 50 + boost(25)
	default:
		for _, alias := range item.Aliases {
			if strings.Contains(strings.ToLower(alias), query) {
				s = 40 + boost(20)
				break
			}
		}
	}
	if s > 0 && item.Common {
		s += 10
	}
	return s
}
