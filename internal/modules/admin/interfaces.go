package admin

import (
	"context"

	"youquote/internal/domain"
)

type QuoteRepository interface {
	GetUnscoped(ctx context.Context, id int64) (*domain.Quote, error)
	ListTrashed(ctx context.Context) ([]domain.Quote, error)
	Restore(ctx context.Context, id int64) error
	Purge(ctx context.Context, id int64) error
}

type StatsReader interface {
	Stats(ctx context.Context) (*domain.Stats, error)
}
