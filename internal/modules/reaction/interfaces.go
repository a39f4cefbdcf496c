package reaction

import (
	"context"

	"youquote/internal/domain"
)

type ReactionRepositoryInterface interface {
	Toggle(ctx context.Context, kind domain.ReactionKind, userID, quoteID int64) (domain.ToggleState, *domain.Quote, error)
	Remove(ctx context.Context, kind domain.ReactionKind, userID, quoteID int64) error
	ListMine(ctx context.Context, kind domain.ReactionKind, userID int64) ([]domain.ReactionEntry, error)
	ListForQuote(ctx context.Context, kind domain.ReactionKind, quoteID int64) ([]domain.Reactor, error)
}

type QuoteReader interface {
	GetByID(ctx context.Context, id int64) (*domain.Quote, error)
}
