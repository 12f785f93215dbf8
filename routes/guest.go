package routes

import (
	"github.com/gin-gonic/gin"

	cartControllers "github.com/ReiKama414/mysterious-art-marketplace/controllers/cart"
	prefsControllers "github.com/ReiKama414/mysterious-art-marketplace/controllers/prefs"
)

// SetupGuestRoutes registers the "/guest/*" endpoints. Every endpoint except
// session creation expects a guest_id query param.
func SetupGuestRoutes(r *gin.Engine, deps Deps) {
	guestGroup := r.Group("/guest")
	{
		guestGroup.POST("/session", cartControllers.CreateGuestSession()) // POST /guest/session

		cartGroup := guestGroup.Group("/cart")
		{
			cartGroup.GET("", cartControllers.GetGuestCart(deps.KV))                              // GET /guest/cart
			cartGroup.POST("", cartControllers.AddGuestCartItem(deps.Catalog, deps.KV))           // POST /guest/cart
			cartGroup.PUT("/:artwork_id", cartControllers.UpdateGuestCartItem(deps.KV))           // PUT /guest/cart/:artwork_id
			cartGroup.DELETE("/:artwork_id", cartControllers.DeleteGuestCartItem(deps.KV))        // DELETE /guest/cart/:artwork_id
			cartGroup.DELETE("", cartControllers.ClearGuestCart(deps.KV))                         // DELETE /guest/cart
		}

		prefGroup := guestGroup.Group("/preferences")
		{
			prefGroup.GET("/theme", prefsControllers.GetTheme(deps.Prefs))                 // GET /guest/preferences/theme
			prefGroup.PUT("/theme", prefsControllers.SetTheme(deps.Prefs))                 // PUT /guest/preferences/theme
			prefGroup.GET("/language", prefsControllers.GetLanguage(deps.Prefs))           // GET /guest/preferences/language
			prefGroup.PUT("/language", prefsControllers.SetLanguage(deps.Prefs))           // PUT /guest/preferences/language
			prefGroup.GET("/demo-warning", prefsControllers.GetDemoWarning(deps.Prefs))    // GET /guest/preferences/demo-warning
			prefGroup.POST("/demo-warning", prefsControllers.DismissDemoWarning(deps.Prefs)) // POST /guest/preferences/demo-warning
		}
	}
}
