package api

import (
	"context"
	"fmt"
	"net/http"
	"path"
	"strings"
	"time"

	"fdict/dictation-api/model"
	"fdict/dictation-api/util"
	"fdict/dictation-api/validators"

	"github.com/gin-gonic/gin"
	gonanoid "github.com/matoous/go-nanoid/v2"
	"go.uber.org/zap"
)

// ClipUpload runs the upload workflow: validate everything first, then write
// the object to storage, then the metadata row. Storage and database aren't
// under one transaction, so a failed row write triggers a best-effort delete
// of the object that was just stored.
func (a *API) ClipUpload(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)
	userID := c.MustGet("userID").(string)

	fh, err := c.FormFile("file")
	if err != nil {
		respondError(c, http.StatusBadRequest, "CLIP_UPLOAD_MISSING_FILE", "No video file provided", nil)
		return
	}

	f, err := validators.ClipFileValidator(fh)
	if err != nil {
		code := "CLIP_UPLOAD_INVALID_FORMAT"
		if err == validators.ErrFileTooLarge {
			code = "CLIP_UPLOAD_FILE_TOO_LARGE"
		}

		respondError(c, http.StatusBadRequest, code, err.Error(), nil)
		return
	}
	defer f.Close()

	meta := validators.ClipMetadata{
		Title:           c.PostForm("title"),
		Description:     c.PostForm("description"),
		DifficultyLevel: c.PostForm("difficultyLevel"),
		SubtitleText:    c.PostForm("subtitleText"),
	}

	if fields := validators.ClipMetadataValidator(meta); fields != nil {
		respondError(c, http.StatusBadRequest, "CLIP_UPLOAD_INVALID_METADATA", "Invalid metadata provided", fields)
		return
	}

	words, err := validators.ParseDifficultyWords(c.PostForm("difficultyWords"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "CLIP_UPLOAD_INVALID_DIFFICULTY_WORDS", err.Error(), nil)
		return
	}

	clipID, err := gonanoid.New()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "CLIP_UPLOAD_FAILED", "Unexpected error during upload", err.Error())

		zap.L().Error("Failed to generate clip ID", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	ext := strings.ToLower(path.Ext(fh.Filename))
	key := fmt.Sprintf("%d-%s%s", time.Now().UnixMilli(), util.RandStr(8), ext)
	contentType, _, _ := strings.Cut(fh.Header.Get("Content-Type"), ";")

	clipURL, err := a.R2.Upload(c.Request.Context(), key, f, fh.Size, strings.TrimSpace(contentType))
	if err != nil {
		respondError(c, http.StatusInternalServerError, "CLIP_UPLOAD_STORAGE_FAILED", "Failed to upload video to storage", err.Error())

		zap.L().Error("Failed to upload clip to storage", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	clip := model.VideoClip{
		ID:              clipID,
		Title:           meta.Title,
		Description:     meta.Description,
		StorageKey:      key,
		ClipURL:         clipURL,
		DurationSeconds: model.ClipDurationSeconds,
		DifficultyLevel: meta.DifficultyLevel,
		SubtitleText:    meta.SubtitleText,
		DifficultyWords: words,
	}

	if err := a.DB.Create(&clip).Error; err != nil {
		zap.L().Error("Failed to save clip record to db",
			zap.Error(err),
			zap.String("requestID", requestID),
			zap.String("userID", userID))

		// Compensate the storage write so the bucket doesn't accumulate
		// objects no row points at. Its failure doesn't change the outcome,
		// the reconciler picks up whatever this misses.
		if derr := a.R2.Delete(context.Background(), key); derr != nil {
			zap.L().Error("Failed to clean up object after db error",
				zap.Error(derr),
				zap.String("key", key),
				zap.String("requestID", requestID))
		}

		respondError(c, http.StatusInternalServerError, "CLIP_UPLOAD_DATABASE_FAILED", "Failed to save video metadata", err.Error())
		return
	}

	respondData(c, http.StatusCreated, clip)
}
