package repository

import (
	"context"

	"youquote/internal/domain"

	"gorm.io/gorm"
)

type QuoteRepository struct {
	db *gorm.DB
}

func NewQuoteRepository(db *gorm.DB) *QuoteRepository {
	return &QuoteRepository{db: db}
}

// QuotePatch describes an update. Nil fields are left untouched; a non-nil
// empty slice clears the association.
type QuotePatch struct {
	Content    *string
	WordCount  int
	Categories []domain.Category
	Tags       []domain.Tag
}

func withRelations(tx *gorm.DB) *gorm.DB {
	return tx.
		Preload("User").
		Preload("Tags", func(db *gorm.DB) *gorm.DB { return db.Order("tags.id") }).
		Preload("Categories", func(db *gorm.DB) *gorm.DB { return db.Order("categories.id") })
}

func newestFirst(tx *gorm.DB) *gorm.DB {
	return tx.Order("quotes.created_at DESC").Order("quotes.id DESC")
}

func (r *QuoteRepository) Create(ctx context.Context, q *domain.Quote) error {
	return r.db.WithContext(ctx).Create(q).Error
}

// GetByID returns a live quote with its relations. Trashed quotes are not found.
func (r *QuoteRepository) GetByID(ctx context.Context, id int64) (*domain.Quote, error) {
	var q domain.Quote
	if err := withRelations(r.db.WithContext(ctx)).First(&q, id).Error; err != nil {
		return nil, err
	}
	return &q, nil
}

// GetUnscoped returns the quote whether or not it is in the trash.
func (r *QuoteRepository) GetUnscoped(ctx context.Context, id int64) (*domain.Quote, error) {
	var q domain.Quote
	if err := withRelations(r.db.WithContext(ctx).Unscoped()).First(&q, id).Error; err != nil {
		return nil, err
	}
	return &q, nil
}

func (r *QuoteRepository) FindCategories(ctx context.Context, ids []int64) ([]domain.Category, error) {
	var out []domain.Category
	if len(ids) == 0 {
		return out, nil
	}
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Order("id").Find(&out).Error
	return out, err
}

func (r *QuoteRepository) FindTags(ctx context.Context, ids []int64) ([]domain.Tag, error) {
	var out []domain.Tag
	if len(ids) == 0 {
		return out, nil
	}
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Order("id").Find(&out).Error
	return out, err
}

func (r *QuoteRepository) Update(ctx context.Context, q *domain.Quote, patch QuotePatch) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if patch.Content != nil {
			err := tx.Model(&domain.Quote{}).
				Where("id = ?", q.ID).
				Updates(map[string]any{
					"content":    *patch.Content,
					"word_count": patch.WordCount,
				}).Error
			if err != nil {
				return err
			}
		}
		if patch.Categories != nil {
			if err := replaceAssociation(tx, q, "Categories", patch.Categories, len(patch.Categories)); err != nil {
				return err
			}
		}
		if patch.Tags != nil {
			if err := replaceAssociation(tx, q, "Tags", patch.Tags, len(patch.Tags)); err != nil {
				return err
			}
		}
		return nil
	})
}

func replaceAssociation(tx *gorm.DB, q *domain.Quote, name string, values any, n int) error {
	assoc := tx.Model(&domain.Quote{ID: q.ID}).Association(name)
	if n == 0 {
		return assoc.Clear()
	}
	return assoc.Replace(values)
}

func (r *QuoteRepository) SetValidated(ctx context.Context, id int64, validated bool) error {
	res := r.db.WithContext(ctx).Model(&domain.Quote{}).
		Where("id = ?", id).
		Update("is_validated", validated)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// IncrementPopularity bumps the view counter in a single UPDATE so concurrent views are not lost.
func (r *QuoteRepository) IncrementPopularity(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Model(&domain.Quote{}).
		Where("id = ?", id).
		UpdateColumn("popularity", gorm.Expr("popularity + ?", 1))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *QuoteRepository) ListByValidation(ctx context.Context, validated bool) ([]domain.Quote, error) {
	var out []domain.Quote
	err := newestFirst(withRelations(r.db.WithContext(ctx))).
		Where("is_validated = ?", validated).
		Find(&out).Error
	return out, err
}

func (r *QuoteRepository) ListByUser(ctx context.Context, userID int64) ([]domain.Quote, error) {
	var out []domain.Quote
	err := newestFirst(withRelations(r.db.WithContext(ctx))).
		Where("user_id = ?", userID).
		Find(&out).Error
	return out, err
}

// ListByTerm returns live quotes attached to the given category or tag.
func (r *QuoteRepository) ListByTerm(ctx context.Context, kind domain.TaxonomyKind, termID int64) ([]domain.Quote, error) {
	var out []domain.Quote
	sub := r.db.Table(kind.PivotTable()).
		Select("quote_id").
		Where(kind.PivotColumn()+" = ?", termID)
	err := newestFirst(withRelations(r.db.WithContext(ctx))).
		Where("quotes.id IN (?)", sub).
		Find(&out).Error
	return out, err
}

// ListByWordCount returns live quotes whose word count lies in [min, max].
func (r *QuoteRepository) ListByWordCount(ctx context.Context, min, max int) ([]domain.Quote, error) {
	var out []domain.Quote
	err := withRelations(r.db.WithContext(ctx)).
		Where("word_count BETWEEN ? AND ?", min, max).
		Order("word_count").Order("id").
		Find(&out).Error
	return out, err
}

func (r *QuoteRepository) Random(ctx context.Context, n int) ([]domain.Quote, error) {
	var out []domain.Quote
	err := withRelations(r.db.WithContext(ctx)).
		Order("RANDOM()").
		Limit(n).
		Find(&out).Error
	return out, err
}

func (r *QuoteRepository) Popular(ctx context.Context, limit int) ([]domain.Quote, error) {
	var out []domain.Quote
	err := withRelations(r.db.WithContext(ctx)).
		Order("popularity DESC").Order("id").
		Limit(limit).
		Find(&out).Error
	return out, err
}

func (r *QuoteRepository) SoftDelete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&domain.Quote{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *QuoteRepository) ListTrashed(ctx context.Context) ([]domain.Quote, error) {
	var out []domain.Quote
	err := withRelations(r.db.WithContext(ctx).Unscoped()).
		Where("quotes.deleted_at IS NOT NULL").
		Order("quotes.deleted_at DESC").Order("quotes.id DESC").
		Find(&out).Error
	return out, err
}

func (r *QuoteRepository) Restore(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Unscoped().Model(&domain.Quote{}).
		Where("id = ? AND deleted_at IS NOT NULL", id).
		Update("deleted_at", nil)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Purge removes the quote row together with its pivot rows and reactions.
func (r *QuoteRepository) Purge(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, table := range []string{
			domain.TaxonomyCategory.PivotTable(),
			domain.TaxonomyTag.PivotTable(),
			domain.ReactionLike.Table(),
			domain.ReactionFavorite.Table(),
		} {
			if err := tx.Exec("DELETE FROM "+table+" WHERE quote_id = ?", id).Error; err != nil {
				return err
			}
		}
		res := tx.Unscoped().Delete(&domain.Quote{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
