package prefsControllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/ReiKama414/mysterious-art-marketplace/models"
	"github.com/ReiKama414/mysterious-art-marketplace/prefs"
)

type ThemeInput struct {
	Theme models.Theme `json:"theme" binding:"required"`
}

type LanguageInput struct {
	Language models.Language `json:"language" binding:"required"`
}

// GET /guest/preferences/theme
// The client's system dark-mode signal rides on the Sec-CH-Prefers-Color-Scheme
// header; it only matters when the guest has no stored choice.
func GetTheme(store *prefs.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		guestID, ok := requireGuestID(c)
		if !ok {
			return
		}
		prefersDark := c.GetHeader("Sec-CH-Prefers-Color-Scheme") == "dark"
		theme, err := store.Theme(guestID, prefersDark)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve theme"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"theme": theme})
	}
}

// PUT /guest/preferences/theme
func SetTheme(store *prefs.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		guestID, ok := requireGuestID(c)
		if !ok {
			return
		}
		var input ThemeInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		if err := store.SetTheme(guestID, input.Theme); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Theme must be light or dark"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"theme": input.Theme})
	}
}

// GET /guest/preferences/language
// Falls back to Accept-Language detection when nothing is stored.
func GetLanguage(store *prefs.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		guestID, ok := requireGuestID(c)
		if !ok {
			return
		}
		language, err := store.Language(guestID, primaryLocale(c.GetHeader("Accept-Language")))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve language"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"language": language})
	}
}

// PUT /guest/preferences/language
func SetLanguage(store *prefs.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		guestID, ok := requireGuestID(c)
		if !ok {
			return
		}
		var input LanguageInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		if err := store.SetLanguage(guestID, input.Language); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Language must be en, zh or ja"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"language": input.Language})
	}
}

// GET /guest/preferences/demo-warning
func GetDemoWarning(store *prefs.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		guestID, ok := requireGuestID(c)
		if !ok {
			return
		}
		seen, err := store.HasSeenDemoWarning(guestID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read demo warning state"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"seen": seen})
	}
}

// POST /guest/preferences/demo-warning
func DismissDemoWarning(store *prefs.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		guestID, ok := requireGuestID(c)
		if !ok {
			return
		}
		if err := store.MarkDemoWarningSeen(guestID); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record demo warning state"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"seen": true})
	}
}

func requireGuestID(c *gin.Context) (string, bool) {
	guestID := c.Query("guest_id")
	if guestID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "guest_id is required"})
		return "", false
	}
	return guestID, true
}

// primaryLocale extracts the first tag from an Accept-Language header,
// e.g. "zh-TW,zh;q=0.9" -> "zh-TW".
func primaryLocale(header string) string {
	if header == "" {
		return ""
	}
	first := strings.Split(header, ",")[0]
	return strings.TrimSpace(strings.Split(first, ";")[0])
}
