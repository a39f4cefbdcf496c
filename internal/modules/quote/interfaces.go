package quote

import (
	"context"

	"youquote/internal/domain"
	"youquote/internal/repository"
)

type QuoteRepositoryInterface interface {
	Create(ctx context.Context, q *domain.Quote) error
	GetByID(ctx context.Context, id int64) (*domain.Quote, error)
	GetUnscoped(ctx context.Context, id int64) (*domain.Quote, error)
	FindCategories(ctx context.Context, ids []int64) ([]domain.Category, error)
	FindTags(ctx context.Context, ids []int64) ([]domain.Tag, error)
	Update(ctx context.Context, q *domain.Quote, patch repository.QuotePatch) error
	SetValidated(ctx context.Context, id int64, validated bool) error
	IncrementPopularity(ctx context.Context, id int64) error
	ListByValidation(ctx context.Context, validated bool) ([]domain.Quote, error)
	ListByUser(ctx context.Context, userID int64) ([]domain.Quote, error)
	ListByTerm(ctx context.Context, kind domain.TaxonomyKind, termID int64) ([]domain.Quote, error)
	ListByWordCount(ctx context.Context, min, max int) ([]domain.Quote, error)
	Random(ctx context.Context, n int) ([]domain.Quote, error)
	Popular(ctx context.Context, limit int) ([]domain.Quote, error)
	SoftDelete(ctx context.Context, id int64) error
}

// TermReader resolves a category or tag by id.
type TermReader interface {
	Kind() domain.TaxonomyKind
	GetByID(ctx context.Context, id int64) (*domain.Term, error)
}
