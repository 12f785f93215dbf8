package artworkControllers

import (
	"errors"
	"math"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ReiKama414/mysterious-art-marketplace/catalog"
)

// GET /artworks
// Query params: search, category, style, min_price, max_price, sort_by.
func GetArtworks(cat *catalog.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		q := catalog.Query{
			Search:   c.Query("search"),
			Category: c.DefaultQuery("category", catalog.AnyFilter),
			Style:    c.DefaultQuery("style", catalog.AnyFilter),
			MinPrice: 0,
			MaxPrice: math.MaxFloat64,
			SortBy:   c.DefaultQuery("sort_by", catalog.SortNewest),
		}

		if s := c.Query("min_price"); s != "" {
			v, err := strconv.ParseFloat(s, 64)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid min_price"})
				return
			}
			q.MinPrice = v
		}
		if s := c.Query("max_price"); s != "" {
			v, err := strconv.ParseFloat(s, 64)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid max_price"})
				return
			}
			q.MaxPrice = v
		}
		if !catalog.ValidSort(q.SortBy) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid sort_by"})
			return
		}

		c.JSON(http.StatusOK, catalog.Filter(cat.Artworks(), q))
	}
}

// GET /artworks/featured
func GetFeaturedArtworks(cat *catalog.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, cat.Featured())
	}
}

// GET /artworks/:id
func GetArtworkByID(cat *catalog.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		artwork, err := cat.ArtworkByID(c.Param("id"))
		if err != nil {
			if errors.Is(err, catalog.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Artwork not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve artwork"})
			return
		}
		c.JSON(http.StatusOK, artwork)
	}
}
