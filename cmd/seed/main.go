// Command seed fills the clip catalog from a local manifest. It bypasses the
// API's 5 MiB cap by going through the multipart uploader directly, which is
// why it lives here and not behind an endpoint.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path"
	"strings"
	"time"

	"fdict/dictation-api/cloudflare"
	"fdict/dictation-api/config"
	"fdict/dictation-api/db"
	"fdict/dictation-api/model"
	"fdict/dictation-api/util"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/gabriel-vasile/mimetype"
	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

var manifestPath = pflag.String("manifest", "clips.json", "Path to the clip manifest JSON")

type seedClip struct {
	File            string                `json:"file"`
	Title           string                `json:"title"`
	Description     string                `json:"description"`
	DifficultyLevel string                `json:"difficultyLevel"`
	SubtitleText    string                `json:"subtitleText"`
	DifficultyWords model.DifficultyWords `json:"difficultyWords"`
}

func main() {
	if err := config.Setup(); err != nil {
		panic(err)
	}

	log, _ := zap.NewDevelopment()
	zap.ReplaceGlobals(log)

	database, err := db.New()
	if err != nil {
		panic(err)
	}

	r2, err := cloudflare.NewR2()
	if err != nil {
		panic(err)
	}

	uploader, err := r2.Uploader()
	if err != nil {
		panic(err)
	}

	raw, err := os.ReadFile(*manifestPath)
	if err != nil {
		panic(err)
	}

	var clips []seedClip
	if err := json.Unmarshal(raw, &clips); err != nil {
		panic(fmt.Errorf("failed to parse manifest, %w", err))
	}

	ctx := context.Background()

	for _, sc := range clips {
		if !model.ValidDifficulty(sc.DifficultyLevel) {
			zap.L().Warn("Skipping clip with invalid difficulty", zap.String("file", sc.File))
			continue
		}

		mtype, err := mimetype.DetectFile(sc.File)
		if err != nil {
			zap.L().Warn("Skipping unreadable clip", zap.String("file", sc.File), zap.Error(err))
			continue
		}

		if !mtype.Is("video/mp4") && !mtype.Is("video/webm") {
			zap.L().Warn("Skipping non-video file", zap.String("file", sc.File), zap.String("type", mtype.String()))
			continue
		}

		f, err := os.Open(sc.File)
		if err != nil {
			zap.L().Warn("Skipping unreadable clip", zap.String("file", sc.File), zap.Error(err))
			continue
		}

		key := fmt.Sprintf("%d-%s%s", time.Now().UnixMilli(), util.RandStr(8), strings.ToLower(path.Ext(sc.File)))

		_, err = uploader.Upload(ctx, &s3.PutObjectInput{
			Bucket:      r2.Bucket,
			Key:         aws.String(key),
			Body:        f,
			ContentType: aws.String(mtype.String()),
		})
		f.Close()
		if err != nil {
			zap.L().Error("Failed to upload clip", zap.String("file", sc.File), zap.Error(err))
			continue
		}

		id, err := gonanoid.New()
		if err != nil {
			panic(err)
		}

		clip := model.VideoClip{
			ID:              id,
			Title:           sc.Title,
			Description:     sc.Description,
			StorageKey:      key,
			ClipURL:         r2.PublicURL(key),
			DurationSeconds: model.ClipDurationSeconds,
			DifficultyLevel: sc.DifficultyLevel,
			SubtitleText:    sc.SubtitleText,
			DifficultyWords: sc.DifficultyWords,
		}

		if err := database.Create(&clip).Error; err != nil {
			zap.L().Error("Failed to save clip record", zap.String("file", sc.File), zap.Error(err))

			if derr := r2.Delete(ctx, key); derr != nil {
				zap.L().Error("Failed to clean up object after db error", zap.String("key", key), zap.Error(derr))
			}
			continue
		}

		zap.L().Info("Seeded clip", zap.String("id", clip.ID), zap.String("title", clip.Title))
	}
}
