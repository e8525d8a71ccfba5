// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package storage

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// MinIOClient stores assets through the MinIO client.
type MinIOClient struct {
	client    *minio.Client
	bucket    string
	region    string
	baseURL   string
	publicURL string
}

// NewMinIO creates a MinIO storage client. The endpoint may carry an
// http:// or https:// scheme, which then overrides cfg.Secure.
func NewMinIO(cfg Config) (*MinIOClient, error) {
	host, secure := splitEndpoint(cfg.Endpoint, cfg.Secure)

	client, err := minio.New(host, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: secure,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("minio client: %w", err)
	}

	scheme := "http"
	if secure {
		scheme = "https"
	}
	return &MinIOClient{
		client:    client,
		bucket:    cfg.Bucket,
		region:    cfg.Region,
		baseURL:   scheme + "://" + host,
		publicURL: strings.TrimRight(cfg.PublicURL, "/"),
	}, nil
}

func splitEndpoint(endpoint string, secure bool) (string, bool) {
	endpoint = strings.TrimRight(endpoint, "/")
	switch {
	case strings.HasPrefix(endpoint, "https://"):
		return strings.TrimPrefix(endpoint, "https://"), true
	case strings.HasPrefix(endpoint, "http://"):
		return strings.TrimPrefix(endpoint, "http://"), false
	}
	return endpoint, secure
}

// EnsureBucket creates the bucket when missing and grants anonymous read
// on its objects so public URLs resolve.
func (c *MinIOClient) EnsureBucket(ctx context.Context) error {
	exists, err := c.client.BucketExists(ctx, c.bucket)
	if err != nil {
		return fmt.Errorf("minio bucket exists %s: %w", c.bucket, err)
	}
	if !exists {
		if err := c.client.MakeBucket(ctx, c.bucket, minio.MakeBucketOptions{Region: c.region}); err != nil {
			return fmt.Errorf("minio make bucket %s: %w", c.bucket, err)
		}
	}

	policy := fmt.Sprintf(`{
	"Version": "2012-10-17",
	"Statement": [{
		"Effect": "Allow",
		"Principal": {"AWS": "*"},
		"Action": ["s3:GetObject"],
		"Resource": ["arn:aws:s3:::%s/*"]
	}]
}`, c.bucket)
	if err := c.client.SetBucketPolicy(ctx, c.bucket, policy); err != nil {
		return fmt.Errorf("minio bucket policy %s: %w", c.bucket, err)
	}
	return nil
}

// Upload stores an object, replacing any existing one at key.
func (c *MinIOClient) Upload(ctx context.Context, key, contentType string, data []byte) error {
	_, err := c.client.PutObject(ctx, c.bucket, key, bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return fmt.Errorf("minio upload %s/%s: %w", c.bucket, key, err)
	}
	return nil
}

// Delete removes an object from the bucket.
func (c *MinIOClient) Delete(ctx context.Context, key string) error {
	if err := c.client.RemoveObject(ctx, c.bucket, key, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("minio delete %s/%s: %w", c.bucket, key, err)
	}
	return nil
}

// PublicURL returns the public URL for key.
func (c *MinIOClient) PublicURL(key string) string {
	if c.publicURL != "" {
		return joinURL(c.publicURL, key)
	}
	return joinURL(c.baseURL+"/"+c.bucket, key)
}
