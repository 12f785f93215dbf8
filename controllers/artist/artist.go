package artistControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ReiKama414/mysterious-art-marketplace/catalog"
)

// GET /artists
func GetArtists(cat *catalog.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, cat.Artists())
	}
}

// GET /artists/:id
func GetArtistByID(cat *catalog.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		artist, err := cat.ArtistByID(c.Param("id"))
		if err != nil {
			if errors.Is(err, catalog.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Artist not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve artist"})
			return
		}
		c.JSON(http.StatusOK, artist)
	}
}

// GET /artists/:id/artworks
// An artist with no artworks gets an empty list, not an error.
func GetArtistArtworks(cat *catalog.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		artworks, err := cat.ArtworksByArtist(c.Param("id"))
		if err != nil {
			if errors.Is(err, catalog.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Artist not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve artworks"})
			return
		}
		c.JSON(http.StatusOK, artworks)
	}
}
