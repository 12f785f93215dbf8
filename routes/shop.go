package routes

import (
	"github.com/gin-gonic/gin"

	artistControllers "github.com/ReiKama414/mysterious-art-marketplace/controllers/artist"
	artworkControllers "github.com/ReiKama414/mysterious-art-marketplace/controllers/artwork"
)

// SetupShopRoutes registers the public catalog endpoints.
func SetupShopRoutes(r *gin.Engine, deps Deps) {
	artworkGroup := r.Group("/artworks")
	{
		artworkGroup.GET("", artworkControllers.GetArtworks(deps.Catalog))                // GET /artworks
		artworkGroup.GET("/featured", artworkControllers.GetFeaturedArtworks(deps.Catalog)) // GET /artworks/featured
		artworkGroup.GET("/:id", artworkControllers.GetArtworkByID(deps.Catalog))         // GET /artworks/:id
	}

	artistGroup := r.Group("/artists")
	{
		artistGroup.GET("", artistControllers.GetArtists(deps.Catalog))                   // GET /artists
		artistGroup.GET("/:id", artistControllers.GetArtistByID(deps.Catalog))            // GET /artists/:id
		artistGroup.GET("/:id/artworks", artistControllers.GetArtistArtworks(deps.Catalog)) // GET /artists/:id/artworks
	}
}
