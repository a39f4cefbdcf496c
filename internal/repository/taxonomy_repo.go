package repository

import (
	"context"
	"time"

	"youquote/internal/domain"

	"gorm.io/gorm"
)

// TaxonomyRepository serves both categories and tags; the two tables share one shape.
type TaxonomyRepository struct {
	db   *gorm.DB
	kind domain.TaxonomyKind
}

func NewTaxonomyRepository(db *gorm.DB, kind domain.TaxonomyKind) *TaxonomyRepository {
	return &TaxonomyRepository{db: db, kind: kind}
}

func (r *TaxonomyRepository) Kind() domain.TaxonomyKind {
	return r.kind
}

func (r *TaxonomyRepository) table(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Table(r.kind.Table())
}

func (r *TaxonomyRepository) List(ctx context.Context) ([]domain.Term, error) {
	var out []domain.Term
	err := r.table(ctx).Order("name").Order("id").Find(&out).Error
	return out, err
}

func (r *TaxonomyRepository) GetByID(ctx context.Context, id int64) (*domain.Term, error) {
	var t domain.Term
	if err := r.table(ctx).Where("id = ?", id).Take(&t).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *TaxonomyRepository) Create(ctx context.Context, name string) (*domain.Term, error) {
	now := time.Now().UTC()
	t := &domain.Term{Name: name, CreatedAt: now, UpdatedAt: now}
	if err := r.table(ctx).Create(t).Error; err != nil {
		return nil, err
	}
	return t, nil
}

func (r *TaxonomyRepository) Update(ctx context.Context, id int64, name string) (*domain.Term, error) {
	res := r.table(ctx).Where("id = ?", id).Updates(map[string]any{
		"name":       name,
		"updated_at": time.Now().UTC(),
	})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.GetByID(ctx, id)
}

// Delete removes the term and detaches it from every quote. Quotes are kept.
func (r *TaxonomyRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Exec("DELETE FROM "+r.kind.PivotTable()+" WHERE "+r.kind.PivotColumn()+" = ?", id).Error
		if err != nil {
			return err
		}
		res := tx.Exec("DELETE FROM "+r.kind.Table()+" WHERE id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
