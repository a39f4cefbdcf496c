package quote

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"youquote/internal/domain"
	"youquote/internal/pkg/textutil"
	"youquote/internal/repository"

	"gorm.io/gorm"
)

const (
	DefaultMaxWords     = 1000
	DefaultPopularLimit = 6
	MaxPopularLimit     = 50
)

type Service struct {
	quotes QuoteRepositoryInterface
	terms  map[domain.TaxonomyKind]TermReader
}

func NewService(quotes QuoteRepositoryInterface, categories, tags TermReader) *Service {
	return &Service{
		quotes: quotes,
		terms: map[domain.TaxonomyKind]TermReader{
			categories.Kind(): categories,
			tags.Kind():       tags,
		},
	}
}

func (s *Service) Create(ctx context.Context, principal domain.Principal, req CreateQuoteRequest) (*domain.QuoteView, error) {
	content := strings.TrimSpace(req.Content)
	if content == "" {
		return nil, fmt.Errorf("%w: content is required", ErrValidation)
	}

	categories, err := s.resolveCategories(ctx, req.CategoryIDs)
	if err != nil {
		return nil, err
	}
	tags, err := s.resolveTags(ctx, req.TagIDs)
	if err != nil {
		return nil, err
	}

	q := &domain.Quote{
		Content:     content,
		UserID:      principal.UserID,
		WordCount:   textutil.WordCount(content),
		IsValidated: false,
		Categories:  categories,
		Tags:        tags,
	}
	if err := s.quotes.Create(ctx, q); err != nil {
		return nil, err
	}

	return s.reload(ctx, q.ID)
}

// View returns the quote and counts the view. Trashed quotes are not viewable.
func (s *Service) View(ctx context.Context, id int64) (*domain.QuoteView, error) {
	if err := s.quotes.IncrementPopularity(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrQuoteNotFound
		}
		return nil, err
	}
	return s.reload(ctx, id)
}

func (s *Service) Update(ctx context.Context, principal domain.Principal, id int64, req UpdateQuoteRequest) (*domain.QuoteView, error) {
	q, err := s.loadManageable(ctx, principal, id)
	if err != nil {
		return nil, err
	}

	var patch repository.QuotePatch
	if req.Content != nil {
		content := strings.TrimSpace(*req.Content)
		if content == "" {
			return nil, fmt.Errorf("%w: content must not be empty", ErrValidation)
		}
		patch.Content = &content
		patch.WordCount = textutil.WordCount(content)
	}
	if req.CategoryIDs != nil {
		categories, err := s.resolveCategories(ctx, *req.CategoryIDs)
		if err != nil {
			return nil, err
		}
		if categories == nil {
			categories = []domain.Category{}
		}
		patch.Categories = categories
	}
	if req.TagIDs != nil {
		tags, err := s.resolveTags(ctx, *req.TagIDs)
		if err != nil {
			return nil, err
		}
		if tags == nil {
			tags = []domain.Tag{}
		}
		patch.Tags = tags
	}

	if err := s.quotes.Update(ctx, q, patch); err != nil {
		return nil, err
	}
	return s.reload(ctx, id)
}

// Destroy moves the quote to the trash. Only the author or an admin may do it.
func (s *Service) Destroy(ctx context.Context, principal domain.Principal, id int64) error {
	if _, err := s.loadManageable(ctx, principal, id); err != nil {
		return err
	}
	if err := s.quotes.SoftDelete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrQuoteGone
		}
		return err
	}
	return nil
}

func (s *Service) Validate(ctx context.Context, principal domain.Principal, id int64) (*domain.QuoteView, error) {
	if _, err := s.quotes.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrQuoteNotFound
		}
		return nil, err
	}
	if !principal.IsAdmin() {
		return nil, ErrForbidden
	}
	if err := s.quotes.SetValidated(ctx, id, true); err != nil {
		return nil, err
	}
	return s.reload(ctx, id)
}

func (s *Service) ListByValidation(ctx context.Context, validated bool) ([]domain.QuoteView, error) {
	quotes, err := s.quotes.ListByValidation(ctx, validated)
	if err != nil {
		return nil, err
	}
	return domain.QuoteViews(quotes), nil
}

func (s *Service) ListMine(ctx context.Context, principal domain.Principal) ([]domain.QuoteView, error) {
	quotes, err := s.quotes.ListByUser(ctx, principal.UserID)
	if err != nil {
		return nil, err
	}
	return domain.QuoteViews(quotes), nil
}

func (s *Service) ListByTerm(ctx context.Context, kind domain.TaxonomyKind, termID int64) (*TermQuotes, error) {
	reader, ok := s.terms[kind]
	if !ok {
		return nil, fmt.Errorf("%w: unknown taxonomy %q", ErrValidation, kind)
	}
	term, err := reader.GetByID(ctx, termID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTermNotFound
		}
		return nil, err
	}

	quotes, err := s.quotes.ListByTerm(ctx, kind, termID)
	if err != nil {
		return nil, err
	}
	return &TermQuotes{Kind: kind, Term: *term, Quotes: domain.QuoteViews(quotes)}, nil
}

// FilterByLength lists quotes whose word count is within [min, max]. Zero means default.
func (s *Service) FilterByLength(ctx context.Context, min, max int) ([]domain.QuoteView, error) {
	if min < 0 || max < 0 {
		return nil, fmt.Errorf("%w: min and max must be positive", ErrValidation)
	}
	if max == 0 {
		max = DefaultMaxWords
	}
	if min > max {
		return nil, fmt.Errorf("%w: min must not exceed max", ErrValidation)
	}

	quotes, err := s.quotes.ListByWordCount(ctx, min, max)
	if err != nil {
		return nil, err
	}
	return domain.QuoteViews(quotes), nil
}

func (s *Service) Random(ctx context.Context, n int) ([]domain.QuoteView, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: count must be at least 1", ErrValidation)
	}
	quotes, err := s.quotes.Random(ctx, n)
	if err != nil {
		return nil, err
	}
	return domain.QuoteViews(quotes), nil
}

func (s *Service) Popular(ctx context.Context, limit int) ([]domain.QuoteView, error) {
	switch {
	case limit <= 0:
		limit = DefaultPopularLimit
	case limit > MaxPopularLimit:
		limit = MaxPopularLimit
	}
	quotes, err := s.quotes.Popular(ctx, limit)
	if err != nil {
		return nil, err
	}
	return domain.QuoteViews(quotes), nil
}

// loadManageable fetches the quote for a write and applies the ownership rule.
func (s *Service) loadManageable(ctx context.Context, principal domain.Principal, id int64) (*domain.Quote, error) {
	q, err := s.quotes.GetUnscoped(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrQuoteNotFound
		}
		return nil, err
	}
	if q.IsDeleted() {
		return nil, ErrQuoteGone
	}
	if !principal.CanManage(q.UserID) {
		return nil, ErrForbidden
	}
	return q, nil
}

func (s *Service) reload(ctx context.Context, id int64) (*domain.QuoteView, error) {
	q, err := s.quotes.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrQuoteNotFound
		}
		return nil, err
	}
	v := q.View()
	return &v, nil
}

func (s *Service) resolveCategories(ctx context.Context, ids []int64) ([]domain.Category, error) {
	ids = uniqueIDs(ids)
	found, err := s.quotes.FindCategories(ctx, ids)
	if err != nil {
		return nil, err
	}
	if len(found) != len(ids) {
		return nil, fmt.Errorf("%w: unknown category id", ErrValidation)
	}
	return found, nil
}

func (s *Service) resolveTags(ctx context.Context, ids []int64) ([]domain.Tag, error) {
	ids = uniqueIDs(ids)
	found, err := s.quotes.FindTags(ctx, ids)
	if err != nil {
		return nil, err
	}
	if len(found) != len(ids) {
		return nil, fmt.Errorf("%w: unknown tag id", ErrValidation)
	}
	return found, nil
}

func uniqueIDs(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
