package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func (a *API) Health(c *gin.Context) {
	var one int

	if err := a.DB.Raw("SELECT 1").Scan(&one).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "HEALTH_CHECK_FAILED", "Database connection failed", err.Error())

		zap.L().Error("Health check failed", zap.Error(err))
		return
	}

	respondData(c, http.StatusOK, gin.H{
		"status":    "ok",
		"database":  "connected",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
