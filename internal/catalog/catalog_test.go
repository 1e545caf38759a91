package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestItemsReturnsACopy(t *testing.T) {
	a := Items()
	require.Len(t, a, 10)
	a[0].Title = "mutated"
	assert.Equal(t, "Truffle Fries", Items()[0].Title)
}

func TestByID(t *testing.T) {
	it, ok := ByID(5)
	require.True(t, ok)
	assert.Equal(t, "Margherita Pizza", it.Title)
	assert.Equal(t, "Mains", it.Category)

	_, ok = ByID(999)
	assert.False(t, ok)
}

func TestSearchByCategory(t *testing.T) {
	drinks := Search("Drinks", "")
	require.Len(t, drinks, 2)
	for _, it := range drinks {
		assert.Equal(t, "Drinks", it.Category)
	}

	// "All" and empty both disable the category filter
	assert.Len(t, Search("All", ""), 10)
	assert.Len(t, Search("", ""), 10)
}

func TestSearchByTitle(t *testing.T) {
	got := Search("", "pizza")
	require.Len(t, got, 1)
	assert.Equal(t, "Margherita Pizza", got[0].Title)

	// query is trimmed and case-insensitive
	got = Search("", "  TIRA ")
	require.Len(t, got, 1)
	assert.Equal(t, "Tiramisu", got[0].Title)
}

func TestSearchCombinesFilters(t *testing.T) {
	got := Search("Desserts", "lava")
	require.Len(t, got, 1)
	assert.Equal(t, 8, got[0].ID)

	assert.Empty(t, Search("Drinks", "pizza"))
}
