package reaction

import (
	"context"
	"errors"

	"youquote/internal/domain"
	"youquote/internal/repository"

	"gorm.io/gorm"
)

// Service implements likes and favorites. Both kinds share the same rules.
type Service struct {
	reactions ReactionRepositoryInterface
	quotes    QuoteReader
}

func NewService(reactions ReactionRepositoryInterface, quotes QuoteReader) *Service {
	return &Service{reactions: reactions, quotes: quotes}
}

// Toggle flips the caller's reaction on a quote. Applying it twice restores the original state.
func (s *Service) Toggle(ctx context.Context, kind domain.ReactionKind, principal domain.Principal, quoteID int64) (*ToggleResponse, error) {
	state, q, err := s.reactions.Toggle(ctx, kind, principal.UserID, quoteID)
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			return nil, ErrQuoteNotFound
		case errors.Is(err, repository.ErrSoftDeleted):
			return nil, ErrQuoteGone
		}
		return nil, err
	}
	return &ToggleResponse{State: state, Quote: q.Snapshot()}, nil
}

func (s *Service) Remove(ctx context.Context, kind domain.ReactionKind, principal domain.Principal, quoteID int64) error {
	err := s.reactions.Remove(ctx, kind, principal.UserID, quoteID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrReactionNotFound
	}
	return err
}

func (s *Service) ListMine(ctx context.Context, kind domain.ReactionKind, principal domain.Principal) ([]domain.ReactionEntry, error) {
	return s.reactions.ListMine(ctx, kind, principal.UserID)
}

// ListForQuote returns who reacted to a live quote.
func (s *Service) ListForQuote(ctx context.Context, kind domain.ReactionKind, quoteID int64) ([]domain.Reactor, error) {
	if _, err := s.quotes.GetByID(ctx, quoteID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrQuoteNotFound
		}
		return nil, err
	}
	return s.reactions.ListForQuote(ctx, kind, quoteID)
}
