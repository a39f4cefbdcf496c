package taxonomy

import (
	"context"

	"youquote/internal/domain"
)

type TermRepositoryInterface interface {
	Kind() domain.TaxonomyKind
	List(ctx context.Context) ([]domain.Term, error)
	GetByID(ctx context.Context, id int64) (*domain.Term, error)
	Create(ctx context.Context, name string) (*domain.Term, error)
	Update(ctx context.Context, id int64, name string) (*domain.Term, error)
	Delete(ctx context.Context, id int64) error
}
