package storage

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"profranchising/internal/config"
)

// R2Store puts objects into a Cloudflare R2 (S3 compatible) bucket.
type R2Store struct {
	client  *s3.Client
	bucket  string
	baseURL string
}

func NewR2Store(ctx context.Context, r2 config.R2) (*R2Store, error) {
	cfg, err := awsconfig.LoadDefaultConfig(
		ctx,
		awsconfig.WithRegion("auto"),
		awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(
				r2.AccessKey,
				r2.SecretKey,
				"",
			),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("load r2 config: %w", err)
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(r2.Endpoint)
		o.UsePathStyle = true
	})

	return &R2Store{
		client:  client,
		bucket:  r2.Bucket,
		baseURL: strings.TrimRight(r2.PublicBaseURL, "/"),
	}, nil
}

func (r *R2Store) Upload(ctx context.Context, key string, body io.Reader, contentType string) (string, error) {
	input := &s3.PutObjectInput{
		Bucket: aws.String(r.bucket),
		Key:    aws.String(key),
		Body:   body,
	}
	if contentType != "" {
		input.ContentType = aws.String(contentType)
	}

	if _, err := r.client.PutObject(ctx, input); err != nil {
		return "", fmt.Errorf("put object %s: %w", key, err)
	}

	return fmt.Sprintf("%s/%s", r.baseURL, key), nil
}
