package api

import (
	"net/http"

	"fdict/dictation-api/model"
	"fdict/dictation-api/validators"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func (a *API) ClipList(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)

	q, err := validators.ListClipsQueryValidator(
		c.Query("limit"),
		c.Query("offset"),
		c.Query("difficulty"),
	)
	if err != nil {
		respondError(c, http.StatusBadRequest, "CLIP_LIST_INVALID_PARAMS", "Invalid query parameters", err.Error())
		return
	}

	count := a.DB.Model(&model.VideoClip{})
	if q.Difficulty != "" {
		count = count.Where("difficulty_level = ?", q.Difficulty)
	}

	var total int64
	if err := count.Count(&total).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "CLIP_LIST_FAILED", "Failed to retrieve video clips", err.Error())

		zap.L().Error("Failed to count clips", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	list := a.DB.
		Order("created_at desc").
		Limit(q.Limit).
		Offset(q.Offset)
	if q.Difficulty != "" {
		list = list.Where("difficulty_level = ?", q.Difficulty)
	}

	clips := []model.VideoClip{}
	if err := list.Find(&clips).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "CLIP_LIST_FAILED", "Failed to retrieve video clips", err.Error())

		zap.L().Error("Failed to fetch clips", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	respondData(c, http.StatusOK, gin.H{
		"clips": clips,
		"pagination": gin.H{
			"total":   total,
			"limit":   q.Limit,
			"offset":  q.Offset,
			"hasMore": int64(q.Offset+q.Limit) < total,
		},
	})
}
