package repository

import (
	"context"

	"youquote/internal/domain"

	"gorm.io/gorm"
)

type StatsRepository struct {
	db *gorm.DB
}

func NewStatsRepository(db *gorm.DB) *StatsRepository {
	return &StatsRepository{db: db}
}

func (r *StatsRepository) Stats(ctx context.Context) (*domain.Stats, error) {
	db := r.db.WithContext(ctx)
	var s domain.Stats

	counts := []struct {
		dst   *int64
		query *gorm.DB
	}{
		{&s.Users, db.Model(&domain.User{})},
		{&s.Admins, db.Model(&domain.User{}).Where("role = ?", domain.RoleAdmin)},
		{&s.QuotesValidated, db.Model(&domain.Quote{}).Where("is_validated = ?", true)},
		{&s.QuotesPending, db.Model(&domain.Quote{}).Where("is_validated = ?", false)},
		{&s.QuotesTrashed, db.Unscoped().Model(&domain.Quote{}).Where("deleted_at IS NOT NULL")},
		{&s.Categories, db.Model(&domain.Category{})},
		{&s.Tags, db.Model(&domain.Tag{})},
		{&s.Likes, db.Model(&domain.Like{})},
		{&s.Favorites, db.Model(&domain.Favorite{})},
	}
	for _, c := range counts {
		if err := c.query.Count(c.dst).Error; err != nil {
			return nil, err
		}
	}
	return &s, nil
}
