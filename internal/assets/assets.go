// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package assets moves generated images from the image API's short-lived
// URLs into durable object storage.
package assets

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"normalai/internal/slug"
	"normalai/internal/storage"
)

// Storage directories, one per asset kind.
const (
	DirHero   = "hero-images"
	DirLogo   = "logos"
	DirMockup = "mockups"
)

// MaxImageBytes caps a single download.
const MaxImageBytes = 20 << 20

// ContentType is the type every asset is stored with.
const ContentType = "image/png"

// Asset names where a relocated image lands.
type Asset struct {
	Dir     string
	Name    string // brand name, slugged
	Variant string // mockup type, optional
}

// Key returns "<dir>/<slug>[-<variant>]-<unix ms>.png".
func (a Asset) Key(at time.Time) string {
	var b strings.Builder
	b.WriteString(a.Dir)
	b.WriteByte('/')
	b.WriteString(slug.Asset(a.Name))
	if a.Variant != "" {
		b.WriteByte('-')
		b.WriteString(a.Variant)
	}
	b.WriteByte('-')
	b.WriteString(strconv.FormatInt(at.UnixMilli(), 10))
	b.WriteString(".png")
	return b.String()
}

// Stored is a relocated asset.
type Stored struct {
	Key string
	URL string
}

// Relocator downloads an image and re-uploads it to object storage.
type Relocator struct {
	store  storage.ObjectStore
	client *http.Client
	now    func() time.Time
}

// NewRelocator creates a relocator. A nil client gets a 60s timeout client.
func NewRelocator(store storage.ObjectStore, client *http.Client) *Relocator {
	if client == nil {
		client = &http.Client{Timeout: 60 * time.Second}
	}
	return &Relocator{store: store, client: client, now: time.Now}
}

// WithClock replaces the clock used for object keys.
func (r *Relocator) WithClock(now func() time.Time) *Relocator {
	r.now = now
	return r
}

// Relocate fetches src and stores it under a.Key, overwriting any object
// already there. Returns the stored key and its public URL.
func (r *Relocator) Relocate(ctx context.Context, src string, a Asset) (Stored, error) {
	if r.store == nil {
		return Stored{}, fmt.Errorf("relocate: object storage is not configured")
	}

	data, err := r.download(ctx, src)
	if err != nil {
		return Stored{}, err
	}

	key := a.Key(r.now())
	if err := r.store.Upload(ctx, key, ContentType, data); err != nil {
		return Stored{}, fmt.Errorf("relocate upload: %w", err)
	}
	return Stored{Key: key, URL: r.store.PublicURL(key)}, nil
}

// Delete removes a previously relocated object.
func (r *Relocator) Delete(ctx context.Context, key string) error {
	if r.store == nil {
		return nil
	}
	return r.store.Delete(ctx, key)
}

func (r *Relocator) download(ctx context.Context, src string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, src, nil)
	if err != nil {
		return nil, fmt.Errorf("relocate request: %w", err)
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("relocate download: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("relocate download: status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, MaxImageBytes+1))
	if err != nil {
		return nil, fmt.Errorf("relocate read body: %w", err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("relocate download: empty body")
	}
	if len(data) > MaxImageBytes {
		return nil, fmt.Errorf("relocate download: image exceeds %d bytes", MaxImageBytes)
	}
	if ct := http.DetectContentType(data); !strings.HasPrefix(ct, "image/") {
		return nil, fmt.Errorf("relocate download: unexpected content type %q", ct)
	}
	return data, nil
}
