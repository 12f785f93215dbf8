package middleware

import (
	"errors"
	"net/http"
	"os"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/gin-gonic/gin"
)

// ValidateAdminToken gates the /admin group. The token must verify against
// ADMIN_JWT_SECRET and its login_date claim must be today's UTC date, so a
// login only lasts until midnight.
func ValidateAdminToken(c *gin.Context) {
	tokenString := c.GetHeader("Authorization")
	if tokenString == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is missing"})
		c.Abort()
		return
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid token signing method")
		}
		return []byte(os.Getenv("ADMIN_JWT_SECRET")), nil
	})
	if err != nil || !token.Valid {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
		c.Abort()
		return
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token claims"})
		c.Abort()
		return
	}

	loginDate, _ := claims["login_date"].(string)
	if loginDate != time.Now().UTC().Format("2006-01-02") {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Admin session expired, log in again"})
		c.Abort()
		return
	}

	c.Set("login_date", loginDate)
	c.Next()
}
