package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/ReiKama414/mysterious-art-marketplace/catalog"
	"github.com/ReiKama414/mysterious-art-marketplace/prefs"
	"github.com/ReiKama414/mysterious-art-marketplace/storage"
)

// Deps holds everything the handlers need. The catalog is built before the
// cart and preference layers since they only reference it at request time.
type Deps struct {
	Catalog *catalog.Catalog
	KV      *storage.KV
	Prefs   *prefs.Store
}

// SetupRoutes is the single entry point that wires up the shop, guest, and
// admin route groups.
func SetupRoutes(r *gin.Engine, deps Deps) {
	// Public catalog browsing (no middleware)
	SetupShopRoutes(r, deps)

	// Guest cart and preferences, keyed by guest_id
	SetupGuestRoutes(r, deps)

	// Mock admin panel (token-protected)
	SetupAdminRoutes(r, deps)
}
