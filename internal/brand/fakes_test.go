// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package brand

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"normalai/internal/ai"
	"normalai/internal/archetype"
	"normalai/internal/assets"
	"normalai/internal/models"
)

// fakeCompleter answers completions from a queue of canned replies.
type fakeCompleter struct {
	mu      sync.Mutex
	replies []string
	err     error
	calls   [][]ai.Message
}

func (f *fakeCompleter) Complete(ctx context.Context, messages []ai.Message) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, messages)
	if f.err != nil {
		return "", f.err
	}
	if len(f.replies) == 0 {
		return "", errors.New("fake completer: no reply queued")
	}
	r := f.replies[0]
	f.replies = f.replies[1:]
	return r, nil
}

// lastUser returns the user content of call i.
func (f *fakeCompleter) lastUser(i int) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, m := range f.calls[i] {
		if m.Role == ai.RoleUser {
			return m.Content
		}
	}
	return ""
}

// fakeImages returns a temporary URL derived from the prompt. failOn makes
// any prompt containing that text fail.
type fakeImages struct {
	mu     sync.Mutex
	failOn string
	reqs   []ai.ImageRequest
}

func (f *fakeImages) GenerateImage(ctx context.Context, req ai.ImageRequest) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.reqs = append(f.reqs, req)
	if f.failOn != "" && strings.Contains(req.Prompt, f.failOn) {
		return "", errors.New("content policy violation")
	}
	return fmt.Sprintf("https://tmp.example/%d.png", len(f.reqs)), nil
}

// fakeRelocator records uploads and deletions in memory.
type fakeRelocator struct {
	mu      sync.Mutex
	clock   int64
	stored  map[string]bool
	deleted []string
	err     error
}

func newFakeRelocator() *fakeRelocator {
	return &fakeRelocator{stored: make(map[string]bool), clock: 1700000000000}
}

func (f *fakeRelocator) Relocate(ctx context.Context, src string, a assets.Asset) (assets.Stored, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return assets.Stored{}, f.err
	}
	f.clock++
	key := a.Key(time.UnixMilli(f.clock))
	f.stored[key] = true
	return assets.Stored{Key: key, URL: "https://cdn.example/" + key}, nil
}

func (f *fakeRelocator) Delete(ctx context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.stored, key)
	f.deleted = append(f.deleted, key)
	return nil
}

func (f *fakeRelocator) keys() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, 0, len(f.stored))
	for k := range f.stored {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// memBrands is an in-memory BrandRepository.
type memBrands struct {
	mu   sync.Mutex
	rows map[uuid.UUID]models.Brand
	err  error
}

func newMemBrands() *memBrands { return &memBrands{rows: make(map[uuid.UUID]models.Brand)} }

func (m *memBrands) Create(ctx context.Context, b *models.Brand) (*models.Brand, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	row := *b
	if row.ID == uuid.Nil {
		row.ID = uuid.New()
	}
	if row.Name == "" {
		row.Name = models.DefaultBrandName
	}
	row.CreatedAt = time.Now()
	m.rows[row.ID] = row
	return &row, nil
}

func (m *memBrands) FindByID(ctx context.Context, id uuid.UUID) (*models.Brand, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	row, ok := m.rows[id]
	if !ok {
		return nil, nil
	}
	return &row, nil
}

func (m *memBrands) ListByOwner(ctx context.Context, ownerID string) ([]models.Brand, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.Brand
	for _, row := range m.rows {
		if row.OwnerID == ownerID {
			out = append(out, row)
		}
	}
	return out, nil
}

func (m *memBrands) UpdateName(ctx context.Context, id uuid.UUID, name string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	row, ok := m.rows[id]
	if !ok {
		return false, nil
	}
	row.Name = name
	m.rows[id] = row
	return true, nil
}

// memBrains is an in-memory BrainRepository.
type memBrains struct {
	mu   sync.Mutex
	rows map[uuid.UUID]models.BrandBrain
	err  error
}

func newMemBrains() *memBrains { return &memBrains{rows: make(map[uuid.UUID]models.BrandBrain)} }

func (m *memBrains) Create(ctx context.Context, b *models.BrandBrain) (*models.BrandBrain, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	row := *b
	if row.ID == uuid.Nil {
		row.ID = uuid.New()
	}
	row.CreatedAt = time.Now()
	m.rows[row.ID] = row
	return &row, nil
}

func (m *memBrains) FindByID(ctx context.Context, id uuid.UUID) (*models.BrandBrain, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	row, ok := m.rows[id]
	if !ok {
		return nil, nil
	}
	return &row, nil
}

func (m *memBrains) ListByOwner(ctx context.Context, ownerID string) ([]models.BrandBrain, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.BrandBrain
	for _, row := range m.rows {
		if row.OwnerID == ownerID {
			out = append(out, row)
		}
	}
	return out, nil
}

func (m *memBrains) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.rows[id]
	return ok, nil
}

func (m *memBrains) update(id uuid.UUID, fn func(*models.BrandBrain)) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return false, m.err
	}
	row, ok := m.rows[id]
	if !ok {
		return false, nil
	}
	fn(&row)
	m.rows[id] = row
	return true, nil
}

func (m *memBrains) UpdateHeroImageURL(ctx context.Context, id uuid.UUID, url string) (bool, error) {
	return m.update(id, func(b *models.BrandBrain) { b.HeroImageURL = &url })
}

func (m *memBrains) UpdateLogoURL(ctx context.Context, id uuid.UUID, url string) (bool, error) {
	return m.update(id, func(b *models.BrandBrain) { b.LogoURL = &url })
}

func (m *memBrains) UpdateMockupURLs(ctx context.Context, id uuid.UUID, urls []string) (bool, error) {
	return m.update(id, func(b *models.BrandBrain) { b.MockupURLs = append([]string(nil), urls...) })
}

// harness bundles a Service with its fakes.
type harness struct {
	svc       *Service
	completer *fakeCompleter
	images    *fakeImages
	relocator *fakeRelocator
	brands    *memBrands
	brains    *memBrains
}

func newHarness(t *testing.T, opts Options) *harness {
	t.Helper()
	catalog, err := archetype.Builtin()
	if err != nil {
		t.Fatalf("archetype.Builtin: %v", err)
	}
	h := &harness{
		completer: &fakeCompleter{},
		images:    &fakeImages{},
		relocator: newFakeRelocator(),
		brands:    newMemBrands(),
		brains:    newMemBrains(),
	}
	h.svc = NewService(Deps{
		Completer: h.completer,
		Images:    h.images,
		Relocator: h.relocator,
		Brands:    h.brands,
		Brains:    h.brains,
		Catalog:   catalog,
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}, opts)
	return h
}

// seedBrain stores an empty brain and returns its ID.
func (h *harness) seedBrain(t *testing.T) uuid.UUID {
	t.Helper()
	b, err := h.brains.Create(context.Background(), &models.BrandBrain{OwnerID: "u1", Status: models.BrainStatusActive})
	if err != nil {
		t.Fatalf("seed brain: %v", err)
	}
	return b.ID
}
