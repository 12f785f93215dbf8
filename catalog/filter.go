package catalog

import (
	"sort"
	"strings"

	"github.com/ReiKama414/mysterious-art-marketplace/models"
)

// Sort keys accepted by Filter.
const (
	SortNewest       = "newest"
	SortOldest       = "oldest"
	SortPriceLowHigh = "priceLowHigh"
	SortPriceHighLow = "priceHighLow"
)

// AnyFilter matches every record for the category and style selectors.
const AnyFilter = "all"

// Query holds the filter and sort parameters for one catalog projection.
// The zero value of Category/Style is treated like AnyFilter.
type Query struct {
	Search   string
	Category string
	Style    string
	MinPrice float64
	MaxPrice float64
	SortBy   string
}

// ValidSort reports whether s is one of the supported sort keys.
func ValidSort(s string) bool {
	switch s {
	case SortNewest, SortOldest, SortPriceLowHigh, SortPriceHighLow:
		return true
	}
	return false
}

// Filter projects the given artworks into a fresh, ordered slice. The input
// is never mutated. A record is kept when the search term is a
// case-insensitive substring of its title or artist name, its category and
// style match the selectors (or the selector is "all"/empty), and its price
// falls inside the inclusive [MinPrice, MaxPrice] range. The sort is stable:
// records that compare equal keep catalog order.
func Filter(artworks []models.Artwork, q Query) []models.Artwork {
	search := strings.ToLower(q.Search)

	out := make([]models.Artwork, 0, len(artworks))
	for _, a := range artworks {
		if search != "" &&
			!strings.Contains(strings.ToLower(a.Title), search) &&
			!strings.Contains(strings.ToLower(a.Artist), search) {
			continue
		}
		if q.Category != "" && q.Category != AnyFilter && a.Category != q.Category {
			continue
		}
		if q.Style != "" && q.Style != AnyFilter && a.Style != q.Style {
			continue
		}
		if a.Price < q.MinPrice || a.Price > q.MaxPrice {
			continue
		}
		out = append(out, a)
	}

	switch q.SortBy {
	case SortNewest:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Year > out[j].Year })
	case SortOldest:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Year < out[j].Year })
	case SortPriceLowHigh:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price < out[j].Price })
	case SortPriceHighLow:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price > out[j].Price })
	}
	return out
}
