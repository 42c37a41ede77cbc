package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Validate only exists so clients can cheaply ask "is my session still
// good?" before rendering a protected page. The session middleware does all
// the work.
func (a *API) Validate(c *gin.Context) {
	c.Status(http.StatusOK)
}
