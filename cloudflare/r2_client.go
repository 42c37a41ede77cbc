// Package cloudflare provides a client for Cloudflare R2, spoken to through
// the S3-compatible API.
package cloudflare

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/smithy-go"
	"github.com/spf13/viper"
)

// S3API is the slice of the S3 client the app actually uses. Handlers and
// jobs are tested against a fake implementation of this.
type S3API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
	HeadObject(ctx context.Context, params *s3.HeadObjectInput, optFns ...func(*s3.Options)) (*s3.HeadObjectOutput, error)
	ListObjectsV2(ctx context.Context, params *s3.ListObjectsV2Input, optFns ...func(*s3.Options)) (*s3.ListObjectsV2Output, error)
}

type R2Client struct {
	C          S3API
	Bucket     *string
	PublicBase string

	sdk *s3.Client
}

// NewR2 builds the client from viper config and verifies the bucket exists
// so a typo fails at startup instead of on the first upload.
func NewR2() (*R2Client, error) {
	cfg, err := config.LoadDefaultConfig(context.TODO(),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			viper.GetString("cloudflare.access_key_id"),
			viper.GetString("cloudflare.secret_access_key"),
			"",
		)),
	)
	if err != nil {
		return nil, err
	}

	bucket := aws.String(viper.GetString("cloudflare.bucket"))

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(fmt.Sprintf("https://%s.r2.cloudflarestorage.com", viper.GetString("cloudflare.account_id")))
		o.Region = "auto"
	})

	_, err = client.HeadBucket(context.TODO(), &s3.HeadBucketInput{
		Bucket: bucket,
	})
	if err != nil {
		var apiErr smithy.APIError

		if errors.As(err, &apiErr) {
			if apiErr.ErrorCode() == "NotFound" {
				return nil, fmt.Errorf("bucket '%s' does not exist", *bucket)
			}
		}

		return nil, fmt.Errorf("failed to check if bucket exists, %w", err)
	}

	return &R2Client{
		C:          client,
		Bucket:     bucket,
		PublicBase: strings.TrimRight(viper.GetString("cloudflare.public_url"), "/"),
		sdk:        client,
	}, nil
}

// Upload stores body under key and returns the public CDN URL of the object.
func (r *R2Client) Upload(ctx context.Context, key string, body io.Reader, size int64, contentType string) (string, error) {
	_, err := r.C.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        r.Bucket,
		Key:           aws.String(key),
		Body:          body,
		ContentLength: aws.Int64(size),
		ContentType:   aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload object to R2, %w", err)
	}

	return r.PublicURL(key), nil
}

// Delete removes the object stored under key.
func (r *R2Client) Delete(ctx context.Context, key string) error {
	_, err := r.C.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: r.Bucket,
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("failed to delete object from R2, %w", err)
	}

	return nil
}

// Exists reports whether an object is stored under key.
func (r *R2Client) Exists(ctx context.Context, key string) (bool, error) {
	_, err := r.C.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: r.Bucket,
		Key:    aws.String(key),
	})
	if err != nil {
		var apiErr smithy.APIError

		if errors.As(err, &apiErr) && apiErr.ErrorCode() == "NotFound" {
			return false, nil
		}

		return false, fmt.Errorf("failed to check if object exists, %w", err)
	}

	return true, nil
}

// PresignGet returns a presigned download URL for key, valid for expiry.
func (r *R2Client) PresignGet(ctx context.Context, key string, expiry time.Duration) (string, error) {
	if r.sdk == nil {
		return "", errors.New("presigning requires a real S3 client")
	}

	req, err := s3.NewPresignClient(r.sdk).PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: r.Bucket,
		Key:    aws.String(key),
	}, s3.WithPresignExpires(expiry))
	if err != nil {
		return "", fmt.Errorf("failed to presign object URL, %w", err)
	}

	return req.URL, nil
}

// PublicURL returns the CDN URL an object is served from.
func (r *R2Client) PublicURL(key string) string {
	return r.PublicBase + "/" + key
}

// Uploader returns a multipart uploader over the underlying client. Only the
// seed command needs it; API uploads are capped well below the multipart
// threshold.
func (r *R2Client) Uploader() (*manager.Uploader, error) {
	if r.sdk == nil {
		return nil, errors.New("multipart uploads require a real S3 client")
	}

	return manager.NewUploader(r.sdk, func(u *manager.Uploader) {
		u.Concurrency = 3
		u.PartSize = 5 << 20
	}), nil
}
