package routes

import (
	"github.com/gin-gonic/gin"

	adminControllers "github.com/ReiKama414/mysterious-art-marketplace/controllers/admin"
	"github.com/ReiKama414/mysterious-art-marketplace/middleware"
)

// SetupAdminRoutes registers the mock admin panel. Login is public; the rest
// of the group requires a same-day admin token. The mutation endpoints only
// simulate success, matching the demo storefront.
func SetupAdminRoutes(r *gin.Engine, deps Deps) {
	r.POST("/admin/login", adminControllers.Login())

	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.ValidateAdminToken)
	{
		adminGroup.GET("/session", adminControllers.GetSession())
		adminGroup.GET("/stats", adminControllers.GetStats(deps.Catalog))

		adminGroup.PUT("/artworks/:id", adminControllers.UpdateArtwork(deps.Catalog))
		adminGroup.DELETE("/artworks/:id", adminControllers.DeleteArtwork(deps.Catalog))

		adminGroup.PUT("/artists/:id", adminControllers.UpdateArtist(deps.Catalog))
		adminGroup.DELETE("/artists/:id", adminControllers.DeleteArtist(deps.Catalog))

		adminGroup.PUT("/orders/:id", adminControllers.UpdateOrder())
	}
}
