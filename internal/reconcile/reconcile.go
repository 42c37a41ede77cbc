// Package reconcile removes bucket objects that lost their database row.
// Inline compensating deletes in the upload path are best-effort, so a crash
// at the wrong moment can still strand an object; this job is the backstop.
package reconcile

import (
	"context"
	"fmt"
	"time"

	"fdict/dictation-api/cloudflare"
	"fdict/dictation-api/model"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Job struct {
	DB *gorm.DB
	R2 *cloudflare.R2Client

	// Objects younger than Grace are left alone: their row may simply not
	// have committed yet.
	Grace time.Duration

	now func() time.Time
}

func New(db *gorm.DB, r2 *cloudflare.R2Client) *Job {
	return &Job{
		DB:    db,
		R2:    r2,
		Grace: 24 * time.Hour,
		now:   time.Now,
	}
}

// Run lists the bucket and deletes every object without a matching clip row
// that is older than the grace period. Individual delete failures are logged
// and skipped so one bad object doesn't stall the sweep.
func (j *Job) Run(ctx context.Context) error {
	var keys []string

	err := j.DB.Model(&model.VideoClip{}).Pluck("storage_key", &keys).Error
	if err != nil {
		return fmt.Errorf("failed to load clip storage keys, %w", err)
	}

	known := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		known[k] = struct{}{}
	}

	var (
		removed int
		token   *string
	)

	for {
		out, err := j.R2.C.ListObjectsV2(ctx, &s3.ListObjectsV2Input{
			Bucket:            j.R2.Bucket,
			ContinuationToken: token,
		})
		if err != nil {
			return fmt.Errorf("failed to list bucket objects, %w", err)
		}

		for _, obj := range out.Contents {
			key := aws.ToString(obj.Key)

			if _, ok := known[key]; ok {
				continue
			}

			if obj.LastModified != nil && j.now().Sub(*obj.LastModified) < j.Grace {
				continue
			}

			if err := j.R2.Delete(ctx, key); err != nil {
				zap.L().Error("Failed to delete orphaned object", zap.Error(err), zap.String("key", key))
				continue
			}

			removed++
			zap.L().Info("Removed orphaned object", zap.String("key", key))
		}

		if out.IsTruncated == nil || !*out.IsTruncated {
			break
		}
		token = out.NextContinuationToken
	}

	zap.L().Info("Reconciliation finished", zap.Int("removed", removed))
	return nil
}

// Schedule registers the job on c under the given cron spec.
func (j *Job) Schedule(c *cron.Cron, spec string) (cron.EntryID, error) {
	return c.AddFunc(spec, func() {
		if err := j.Run(context.Background()); err != nil {
			zap.L().Error("Reconciliation failed", zap.Error(err))
		}
	})
}
