package cache

import (
	"context"
	"fmt"
	"time"
)

const (
	BlogPostKeyPrefix = "blog:%d"
	BlogListKey       = "blogs:published"
	JobListKey        = "jobs:active"
	SyncStatusKey     = "sync:status"
)

const (
	BlogPostTTL   = 10 * time.Minute
	BlogListTTL   = 5 * time.Minute
	JobListTTL    = 5 * time.Minute
	SyncStatusTTL = time.Minute
)

func BlogPostKey(id uint) string {
	return fmt.Sprintf(BlogPostKeyPrefix, id)
}

func Invalidate(ctx context.Context, key string) {
	if client != nil {
		client.Del(ctx, key)
	}
}

// InvalidateBlogs drops the published-list cache and a single post's cache.
func InvalidateBlogs(ctx context.Context, id uint) {
	Invalidate(ctx, BlogListKey)
	if id != 0 {
		Invalidate(ctx, BlogPostKey(id))
	}
}

// InvalidateJobs drops the active-list cache.
func InvalidateJobs(ctx context.Context) {
	Invalidate(ctx, JobListKey)
}
