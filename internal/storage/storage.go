// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package storage provides the object store that holds generated brand
// assets (logos, hero images, mockups) and serves them by public URL.
// Two S3-compatible drivers are available: the AWS SDK v2 client and the
// MinIO client. Both write to a single public bucket.
package storage

import (
	"context"
	"fmt"
	"strings"
)

// Supported drivers.
const (
	DriverS3    = "s3"
	DriverMinIO = "minio"
)

// DefaultBucket holds every generated asset.
const DefaultBucket = "brand-assets"

// ObjectStore is the subset of object storage the asset pipeline needs.
// Upload overwrites an existing object at the same key.
type ObjectStore interface {
	Upload(ctx context.Context, key, contentType string, data []byte) error
	Delete(ctx context.Context, key string) error
	PublicURL(key string) string
}

// Config selects and configures a driver.
type Config struct {
	Driver    string
	Endpoint  string
	Region    string
	AccessKey string
	SecretKey string
	Bucket    string
	PublicURL string
	Secure    bool
}

// New builds the configured driver. Returns (nil, nil) if endpoint or
// credentials are empty, allowing the app to start without storage.
func New(cfg Config) (ObjectStore, error) {
	if cfg.Endpoint == "" || cfg.AccessKey == "" || cfg.SecretKey == "" {
		return nil, nil
	}
	if cfg.Bucket == "" {
		cfg.Bucket = DefaultBucket
	}

	switch strings.ToLower(cfg.Driver) {
	case "", DriverS3:
		return NewS3(cfg), nil
	case DriverMinIO:
		return NewMinIO(cfg)
	default:
		return nil, fmt.Errorf("storage: unknown driver %q", cfg.Driver)
	}
}

// joinURL builds "<base>/<key>" without doubling slashes.
func joinURL(base, key string) string {
	return strings.TrimRight(base, "/") + "/" + strings.TrimLeft(key, "/")
}
