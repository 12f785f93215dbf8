package cartControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/ReiKama414/mysterious-art-marketplace/cart"
	"github.com/ReiKama414/mysterious-art-marketplace/catalog"
	"github.com/ReiKama414/mysterious-art-marketplace/storage"
)

// AddItemInput carries an add-to-cart request. The 1-10 quantity bound lives
// here on purpose: the cart engine itself accepts any positive quantity.
type AddItemInput struct {
	ArtworkID string `json:"artwork_id" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required,min=1,max=10"`
}

type UpdateItemInput struct {
	Quantity int `json:"quantity" binding:"min=0,max=10"`
}

// POST /guest/session
func CreateGuestSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"guest_id": uuid.NewString()})
	}
}

// GET /guest/cart
func GetGuestCart(kv *storage.KV) gin.HandlerFunc {
	return func(c *gin.Context) {
		engine, ok := loadEngine(c, kv)
		if !ok {
			return
		}
		c.JSON(http.StatusOK, engine.View())
	}
}

// POST /guest/cart
// Adds an artwork to the cart, aggregating quantity when the id is already
// present. The artwork is resolved from the catalog at add time and stored
// as a snapshot.
func AddGuestCartItem(cat *catalog.Catalog, kv *storage.KV) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input AddItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		artwork, err := cat.ArtworkByID(input.ArtworkID)
		if err != nil {
			if errors.Is(err, catalog.ErrNotFound) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Artwork does not exist"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to validate artwork"})
			return
		}

		engine, ok := loadEngine(c, kv)
		if !ok {
			return
		}
		if err := engine.Add(artwork, input.Quantity); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add item to cart"})
			return
		}
		c.JSON(http.StatusCreated, engine.View())
	}
}

// PUT /guest/cart/:artwork_id
// Sets the quantity to exactly the given value; zero removes the item.
func UpdateGuestCartItem(kv *storage.KV) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input UpdateItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		engine, ok := loadEngine(c, kv)
		if !ok {
			return
		}
		if err := engine.UpdateQuantity(c.Param("artwork_id"), input.Quantity); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart item"})
			return
		}
		c.JSON(http.StatusOK, engine.View())
	}
}

// DELETE /guest/cart/:artwork_id
func DeleteGuestCartItem(kv *storage.KV) gin.HandlerFunc {
	return func(c *gin.Context) {
		engine, ok := loadEngine(c, kv)
		if !ok {
			return
		}
		if err := engine.Remove(c.Param("artwork_id")); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete item"})
			return
		}
		c.JSON(http.StatusOK, engine.View())
	}
}

// DELETE /guest/cart
func ClearGuestCart(kv *storage.KV) gin.HandlerFunc {
	return func(c *gin.Context) {
		engine, ok := loadEngine(c, kv)
		if !ok {
			return
		}
		if err := engine.Clear(); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear cart"})
			return
		}
		c.JSON(http.StatusOK, engine.View())
	}
}

// loadEngine resolves the guest_id query param and loads that guest's cart.
// On failure it writes the error response and returns ok=false.
func loadEngine(c *gin.Context, kv *storage.KV) (*cart.Engine, bool) {
	guestID := c.Query("guest_id")
	if guestID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "guest_id is required"})
		return nil, false
	}
	engine, err := cart.Load(kv, guestID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load cart"})
		return nil, false
	}
	return engine, true
}
