package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ReiKama414/mysterious-art-marketplace/models"
)

func fixtureArtworks() []models.Artwork {
	return []models.Artwork{
		{ID: "A", Title: "Morning Light", Artist: "Luna Martinez", Category: "Abstract", Style: "Contemporary", Price: 100, Year: 2020},
		{ID: "B", Title: "City Nights", Artist: "Kenji Tanaka", Category: "Modern", Style: "Street Art", Price: 200, Year: 2021},
		{ID: "C", Title: "Quiet Shore", Artist: "Elena Rossi", Category: "Seascape", Style: "Impressionist", Price: 150, Year: 2019},
		{ID: "D", Title: "Light Study", Artist: "Luna Martinez", Category: "Abstract", Style: "Contemporary", Price: 300, Year: 2021},
	}
}

func fullRange() Query {
	return Query{Category: AnyFilter, Style: AnyFilter, MinPrice: 0, MaxPrice: 5000}
}

func ids(artworks []models.Artwork) []string {
	out := make([]string, len(artworks))
	for i, a := range artworks {
		out[i] = a.ID
	}
	return out
}

func TestFilterNoConstraintsKeepsCatalogOrder(t *testing.T) {
	got := Filter(fixtureArtworks(), fullRange())
	assert.Equal(t, []string{"A", "B", "C", "D"}, ids(got))
}

func TestFilterSearchMatchesTitleOrArtist(t *testing.T) {
	q := fullRange()
	q.Search = "light"
	got := Filter(fixtureArtworks(), q)
	// "Morning Light" by title, "Light Study" by title; case-insensitive.
	assert.Equal(t, []string{"A", "D"}, ids(got))

	q.Search = "TANAKA"
	got = Filter(fixtureArtworks(), q)
	assert.Equal(t, []string{"B"}, ids(got))
}

func TestFilterCategoryAndStyle(t *testing.T) {
	q := fullRange()
	q.Category = "Abstract"
	got := Filter(fixtureArtworks(), q)
	assert.Equal(t, []string{"A", "D"}, ids(got))

	q.Style = "Street Art"
	got = Filter(fixtureArtworks(), q)
	assert.Empty(t, got, "conjunction of category and style")

	q = fullRange()
	q.Category = "Sculpture"
	assert.Empty(t, Filter(fixtureArtworks(), q), "unknown category is empty, not an error")
}

func TestFilterPriceRangeInclusive(t *testing.T) {
	q := fullRange()
	q.MinPrice = 150
	q.MaxPrice = 200
	got := Filter(fixtureArtworks(), q)
	assert.Equal(t, []string{"B", "C"}, ids(got), "both bounds are inclusive")
}

func TestFilterSortNewestOldest(t *testing.T) {
	q := fullRange()
	q.SortBy = SortNewest
	got := Filter(fixtureArtworks(), q)
	// B and D tie on 2021 and keep catalog order.
	assert.Equal(t, []string{"B", "D", "A", "C"}, ids(got))

	q.SortBy = SortOldest
	got = Filter(fixtureArtworks(), q)
	assert.Equal(t, []string{"C", "A", "B", "D"}, ids(got))
}

func TestFilterSortByPriceReverses(t *testing.T) {
	q := fullRange()
	q.SortBy = SortPriceLowHigh
	lowHigh := Filter(fixtureArtworks(), q)
	assert.Equal(t, []string{"A", "C", "B", "D"}, ids(lowHigh))

	q.SortBy = SortPriceHighLow
	highLow := Filter(fixtureArtworks(), q)
	require.Len(t, highLow, len(lowHigh))
	for i := range lowHigh {
		assert.Equal(t, lowHigh[i].ID, highLow[len(highLow)-1-i].ID)
	}
}

func TestFilterDoesNotMutateInput(t *testing.T) {
	in := fixtureArtworks()
	q := fullRange()
	q.SortBy = SortPriceHighLow
	_ = Filter(in, q)
	assert.Equal(t, []string{"A", "B", "C", "D"}, ids(in))
}

func TestFilterSpecExample(t *testing.T) {
	in := []models.Artwork{
		{ID: "A", Price: 100, Year: 2020},
		{ID: "B", Price: 200, Year: 2021},
	}
	q := fullRange()
	q.SortBy = SortPriceLowHigh
	assert.Equal(t, []string{"A", "B"}, ids(Filter(in, q)))

	q.SortBy = SortNewest
	assert.Equal(t, []string{"B", "A"}, ids(Filter(in, q)))
}

func TestValidSort(t *testing.T) {
	assert.True(t, ValidSort(SortNewest))
	assert.True(t, ValidSort(SortPriceHighLow))
	assert.False(t, ValidSort("alphabetical"))
	assert.False(t, ValidSort(""))
}
