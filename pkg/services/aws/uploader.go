package aws

import (
	"bytes"
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awssdk "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// Uploader publishes exported CSV reports to an S3 bucket.
type Uploader struct {
	client *s3.Client
}

func NewUploader(cfg awssdk.Config) *Uploader {
	return &Uploader{
		client: s3.NewFromConfig(cfg),
	}
}

func (u *Uploader) Upload(ctx context.Context, bucket, key string, body []byte) error {
	_, err := u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String("text/csv"),
	})
	if err != nil {
		return fmt.Errorf("failed to upload report to s3://%s/%s: %w", bucket, key, err)
	}
	return nil
}
