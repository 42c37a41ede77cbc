// Package middleware contains any custom middleware used in the app
package middleware

import (
	"fdict/dictation-api/util"

	"github.com/gin-gonic/gin"
)

// NewRequestIDMiddleware returns a middleware that tags each incoming request
// with a random ID under the requestID context key, so log lines and error
// responses can be correlated.
func NewRequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("requestID", util.RandStr(10))
		c.Next()
	}
}
