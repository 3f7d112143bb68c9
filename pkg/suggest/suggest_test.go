package suggest

import (
	"testing"

	"github.com/go-playground/assert/v2"
)

func TestSearchRanking(t *testing.T) {
	idx := NewIndexWith([]Grocery{
		{Name: "mjölk", Category: "Mejeri", Common: true},
		{Name: "filmjölk", Category: "Mejeri", Common: true},
		{Name: "mjölkchoklad", Category: "Snacks", Common: false},
		{Name: "kokosmjölk", Category: "Konserver", Common: false},
	})

	out := idx.Search("mjölk", 10)
	assert.Equal(t, 4, len(out))
	// exact beats prefix beats substring, with common boosted inside a band
	assert.Equal(t, "mjölk", out[0].Name)
	assert.Equal(t, "mjölkchoklad", out[1].Name)
	assert.Equal(t, "filmjölk", out[2].Name)
	assert.Equal(t, "kokosmjölk", out[3].Name)
}

func TestSearchAliases(t *testing.T) {
	idx := NewIndexWith([]Grocery{
		{Name: "bananer", Category: "Frukt", Aliases: []string{"banan"}, Common: true},
	})
	out := idx.Search("banan", 5)
	assert.Equal(t, 1, len(out))
	assert.Equal(t, "bananer", out[0].Name)
}

func TestSearchLimitAndShortQuery(t *testing.T) {
	idx := NewIndex()
	assert.Equal(t, 0, len(idx.Search("m", 5)))
	assert.Equal(t, 0, len(idx.Search("  ", 5)))
	assert.Equal(t, 0, len(idx.Search("mjölk", 0)))
	assert.Equal(t, 2, len(idx.Search("sk", 2)))
}

func TestSearchNoMatch(t *testing.T) {
	idx := NewIndex()
	assert.Equal(t, 0, len(idx.Search("zzzz", 5)))
}
