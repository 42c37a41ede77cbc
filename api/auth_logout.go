package api

import (
	"net/http"

	"fdict/dictation-api/config"
	"fdict/dictation-api/middleware"

	"github.com/gin-gonic/gin"
)

func (a *API) AuthLogout(c *gin.Context) {
	c.SetCookie(middleware.SessionCookie, "", -1, "/", "", config.Production(), true)

	respondData(c, http.StatusOK, gin.H{
		"message": "Logged out",
	})
}
