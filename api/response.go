package api

import (
	"fdict/dictation-api/config"

	"github.com/gin-gonic/gin"
)

// respondError writes the shared error envelope. Details (field errors, raw
// error text) are stripped in production so internals don't leak to clients.
func respondError(c *gin.Context, status int, code, message string, details any) {
	e := gin.H{
		"code":    code,
		"message": message,
	}

	if details != nil && !config.Production() {
		e["details"] = details
	}

	c.AbortWithStatusJSON(status, gin.H{
		"success": false,
		"error":   e,
	})
}

func respondData(c *gin.Context, status int, data any) {
	c.JSON(status, gin.H{
		"success": true,
		"data":    data,
	})
}
