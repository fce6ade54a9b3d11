package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"newsgate/internal/domain"
)

// BlogSource lists eligible blog rows that have not been numbered yet.
type BlogSource interface {
	Unnumbered(ctx context.Context) ([]domain.SourceArticle, error)
}

type MappingWriter interface {
	Append(ctx context.Context, group string, ref domain.SourceRef, messageID string) (int64, error)
}

type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type Publisher interface {
	Publish(ctx context.Context, entry *domain.MappingEntry) error
	Close() error
}
