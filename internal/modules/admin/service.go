package admin

import (
	"context"
	"errors"

	"youquote/internal/domain"

	"gorm.io/gorm"
)

type Service struct {
	quotes QuoteRepository
	stats  StatsReader
}

func NewService(quotes QuoteRepository, stats StatsReader) *Service {
	return &Service{
		quotes: quotes,
		stats:  stats,
	}
}

// -------------------- Trash --------------------

func (s *Service) ListTrashed(ctx context.Context) ([]domain.QuoteView, error) {
	quotes, err := s.quotes.ListTrashed(ctx)
	if err != nil {
		return nil, err
	}
	return domain.QuoteViews(quotes), nil
}

// ShowTrashed only finds quotes that are actually in the trash.
func (s *Service) ShowTrashed(ctx context.Context, id int64) (*domain.QuoteView, error) {
	q, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if !q.IsDeleted() {
		return nil, ErrQuoteNotFound
	}
	v := q.View()
	return &v, nil
}

// Restore takes the quote out of the trash. Its validation flag is left as it was.
func (s *Service) Restore(ctx context.Context, id int64) (*domain.QuoteView, error) {
	q, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if !q.IsDeleted() {
		return nil, ErrNotInTrash
	}

	if err := s.quotes.Restore(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotInTrash
		}
		return nil, err
	}

	restored, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	v := restored.View()
	return &v, nil
}

// Purge deletes the quote for good, with its category/tag links and reactions.
func (s *Service) Purge(ctx context.Context, id int64) error {
	if _, err := s.load(ctx, id); err != nil {
		return err
	}
	if err := s.quotes.Purge(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNothingToPurge
		}
		return err
	}
	return nil
}

// -------------------- Statistics --------------------

func (s *Service) Stats(ctx context.Context) (*domain.Stats, error) {
	return s.stats.Stats(ctx)
}

func (s *Service) load(ctx context.Context, id int64) (*domain.Quote, error) {
	q, err := s.quotes.GetUnscoped(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrQuoteNotFound
		}
		return nil, err
	}
	return q, nil
}
