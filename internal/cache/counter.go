// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package cache

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// counterKeyPrefix is the Valkey key prefix for rate-limit windows.
const counterKeyPrefix = "ratelimit:"

// WindowCounter is a fixed-window request counter shared by every server
// instance talking to the same Valkey.
type WindowCounter struct {
	client *redis.Client
	limit  int64
	window time.Duration
	now    func() time.Time
}

// NewWindowCounter allows limit hits per key in each window.
func NewWindowCounter(client *redis.Client, limit int, window time.Duration) *WindowCounter {
	if window <= 0 {
		window = time.Minute
	}
	return &WindowCounter{client: client, limit: int64(limit), window: window, now: time.Now}
}

// Allow records one hit for key and reports whether it is within the limit.
func (c *WindowCounter) Allow(ctx context.Context, key string) (bool, error) {
	n, err := c.Hit(ctx, key)
	if err != nil {
		return false, err
	}
	return n <= c.limit, nil
}

// Hit increments the current window for key and returns the new count.
// The window key expires on its own after one window.
func (c *WindowCounter) Hit(ctx context.Context, key string) (int64, error) {
	k := c.windowKey(key)

	pipe := c.client.TxPipeline()
	incr := pipe.Incr(ctx, k)
	pipe.ExpireNX(ctx, k, c.window)
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, fmt.Errorf("rate counter %s: %w", key, err)
	}
	return incr.Val(), nil
}

func (c *WindowCounter) windowKey(key string) string {
	slot := c.now().UnixNano() / int64(c.window)
	return counterKeyPrefix + key + ":" + strconv.FormatInt(slot, 10)
}
