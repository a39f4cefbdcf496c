package taxonomy

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"youquote/internal/domain"

	"gorm.io/gorm"
)

const maxNameLength = 255

// Service manages one lookup table: categories or tags.
type Service struct {
	terms TermRepositoryInterface
}

func NewService(terms TermRepositoryInterface) *Service {
	return &Service{terms: terms}
}

func (s *Service) Kind() domain.TaxonomyKind {
	return s.terms.Kind()
}

func (s *Service) List(ctx context.Context) ([]domain.Term, error) {
	return s.terms.List(ctx)
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.Term, error) {
	t, err := s.terms.GetByID(ctx, id)
	return t, translate(err)
}

func (s *Service) Create(ctx context.Context, name string) (*domain.Term, error) {
	name, err := cleanName(name)
	if err != nil {
		return nil, err
	}
	return s.terms.Create(ctx, name)
}

func (s *Service) Update(ctx context.Context, id int64, name string) (*domain.Term, error) {
	name, err := cleanName(name)
	if err != nil {
		return nil, err
	}
	t, err := s.terms.Update(ctx, id, name)
	return t, translate(err)
}

// Delete removes the term and detaches it from its quotes.
func (s *Service) Delete(ctx context.Context, id int64) error {
	return translate(s.terms.Delete(ctx, id))
}

func cleanName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", fmt.Errorf("%w: name is required", ErrValidation)
	}
	if utf8.RuneCountInString(name) > maxNameLength {
		return "", fmt.Errorf("%w: name must be at most %d characters", ErrValidation, maxNameLength)
	}
	return name, nil
}

func translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
