package middleware

import (
	"errors"
	"fmt"
	"net/http"

	"fdict/dictation-api/model"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// SessionCookie is the cookie holding the signed session token.
const SessionCookie = "auth_token"

func abortUnauthorized(c *gin.Context, code, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"success": false,
		"error":   gin.H{"code": code, "message": message},
	})
}

// NewSessionMiddleware returns a middleware guarding protected routes. It
// verifies the session cookie's JWT, checks the user still exists and sets
// userID on the context.
func NewSessionMiddleware(d *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr, err := c.Cookie(SessionCookie)
		if err != nil {
			abortUnauthorized(c, "AUTH_REQUIRED", "Authentication required")
			return
		}

		token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (any, error) {
			if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
				return nil, fmt.Errorf("unexpected signing method: %s", t.Method.Alg())
			}

			return []byte(viper.GetString("jwt.secret")), nil
		}, jwt.WithExpirationRequired())
		if err != nil || !token.Valid {
			if errors.Is(err, jwt.ErrTokenExpired) {
				abortUnauthorized(c, "AUTH_SESSION_EXPIRED", "Session expired")
				return
			}

			abortUnauthorized(c, "AUTH_SESSION_INVALID", "Invalid session")
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			abortUnauthorized(c, "AUTH_SESSION_INVALID", "Invalid session")
			return
		}

		userID, ok := claims["user_id"].(string)
		if !ok {
			abortUnauthorized(c, "AUTH_SESSION_INVALID", "Invalid session")
			return
		}

		// Sessions outlive account deletion, so make sure the user is
		// still around before trusting the token.
		var user model.User
		err = d.Where("id = ?", userID).First(&user).Error
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				abortUnauthorized(c, "AUTH_SESSION_INVALID", "Invalid session")
				return
			}

			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"error":   gin.H{"code": "AUTH_LOOKUP_FAILED", "message": "Internal server error"},
			})

			zap.L().Error("Failed to check if user exists", zap.Error(err))
			return
		}

		c.Set("userID", userID)
		c.Next()
	}
}
