package nntp

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"time"

	"newsgate/internal/domain"
)

// Syncer brings the mapping up to date before a read.
type Syncer interface {
	Sync(ctx context.Context, group string) (*domain.SyncStats, error)
}

// Mapping answers questions that only need article numbers.
type Mapping interface {
	Stats(ctx context.Context, group string) (domain.GroupStats, error)
	Count(ctx context.Context, group string, rng domain.Range) (int64, error)
	Before(ctx context.Context, group string, n int64) (int64, error)
	After(ctx context.Context, group string, n int64) (int64, error)
	Numbers(ctx context.Context, group string) ([]int64, error)
	MessageID(ctx context.Context, group string, n int64) (string, error)
	NumberByMessageID(ctx context.Context, messageID string) (string, int64, error)
}

// ArticleView returns joined article content.
type ArticleView interface {
	Articles(ctx context.Context, group string, rng domain.Range) ([]domain.Article, error)
	Since(ctx context.Context, group string, t time.Time) ([]domain.MappingEntry, error)
}
