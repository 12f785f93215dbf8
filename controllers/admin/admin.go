package adminControllers

import (
	"errors"
	"net/http"
	"os"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/gin-gonic/gin"

	"github.com/ReiKama414/mysterious-art-marketplace/catalog"
)

// Demo credentials, shown on the login page of the original storefront.
// This is a mock admin panel, not an auth system.
const (
	demoUsername = "admin"
	demoPassword = "admin"
)

type LoginInput struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// POST /admin/login
// Issues a token scoped to the current UTC date; the session expires at
// midnight the way the original compared its stored login date with today.
func Login() gin.HandlerFunc {
	return func(c *gin.Context) {
		var input LoginInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		if input.Username != demoUsername || input.Password != demoPassword {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials. Use: admin/admin"})
			return
		}

		now := time.Now().UTC()
		endOfDay := time.Date(now.Year(), now.Month(), now.Day(), 23, 59, 59, 0, time.UTC)
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"role":       "admin",
			"login_date": now.Format("2006-01-02"),
			"exp":        endOfDay.Unix(),
		})
		signed, err := token.SignedString([]byte(os.Getenv("ADMIN_JWT_SECRET")))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Token generation failed"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"token":      signed,
			"login_date": now.Format("2006-01-02"),
		})
	}
}

// GET /admin/session
func GetSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"role":       "admin",
			"login_date": c.GetString("login_date"),
		})
	}
}

// GET /admin/stats
func GetStats(cat *catalog.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		artworks := cat.Artworks()
		available, featured := 0, 0
		var totalValue float64
		for _, a := range artworks {
			if a.IsAvailable {
				available++
			}
			if a.IsFeatured {
				featured++
			}
			totalValue += a.Price
		}
		c.JSON(http.StatusOK, gin.H{
			"totalArtworks":     len(artworks),
			"totalArtists":      len(cat.Artists()),
			"availableArtworks": available,
			"featuredArtworks":  featured,
			"totalValue":        totalValue,
		})
	}
}

// The mutation endpoints below only simulate success. The catalog is
// immutable; the demo storefront never persists admin edits.

// PUT /admin/artworks/:id
func UpdateArtwork(cat *catalog.Catalog) gin.HandlerFunc {
	return simulatedArtworkAction(cat, "Demo: edit artwork feature simulated")
}

// DELETE /admin/artworks/:id
func DeleteArtwork(cat *catalog.Catalog) gin.HandlerFunc {
	return simulatedArtworkAction(cat, "Demo: delete artwork feature simulated")
}

// PUT /admin/artists/:id
func UpdateArtist(cat *catalog.Catalog) gin.HandlerFunc {
	return simulatedArtistAction(cat, "Demo: edit artist feature simulated")
}

// DELETE /admin/artists/:id
func DeleteArtist(cat *catalog.Catalog) gin.HandlerFunc {
	return simulatedArtistAction(cat, "Demo: delete artist feature simulated")
}

// PUT /admin/orders/:id
func UpdateOrder() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "Demo: edit order feature simulated",
			"id":      c.Param("id"),
		})
	}
}

func simulatedArtworkAction(cat *catalog.Catalog, message string) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		if _, err := cat.ArtworkByID(id); err != nil {
			if errors.Is(err, catalog.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Artwork not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve artwork"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": message, "id": id})
	}
}

func simulatedArtistAction(cat *catalog.Catalog, message string) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		if _, err := cat.ArtistByID(id); err != nil {
			if errors.Is(err, catalog.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Artist not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve artist"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": message, "id": id})
	}
}
