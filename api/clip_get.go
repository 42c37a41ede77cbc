package api

import (
	"net/http"
	"strings"

	"fdict/dictation-api/model"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func (a *API) ClipGet(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)

	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		respondError(c, http.StatusBadRequest, "CLIP_INVALID_ID", "Invalid clip ID provided", nil)
		return
	}

	var clip model.VideoClip

	err := a.DB.
		Where("id = ?", id).
		First(&clip).
		Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			respondError(c, http.StatusNotFound, "CLIP_NOT_FOUND", "Video clip not found", nil)
			return
		}

		respondError(c, http.StatusInternalServerError, "CLIP_RETRIEVAL_FAILED", "Failed to retrieve video clip", err.Error())

		zap.L().Error("Failed to fetch clip", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	respondData(c, http.StatusOK, clip)
}
