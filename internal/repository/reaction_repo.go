package repository

import (
	"context"
	"time"

	"youquote/internal/domain"

	"gorm.io/gorm"
)

// reactionRow is the common row shape of the likes and favorites tables.
type reactionRow struct {
	ID        int64
	UserID    int64
	QuoteID   int64
	CreatedAt time.Time
}

type ReactionRepository struct {
	db *gorm.DB
}

func NewReactionRepository(db *gorm.DB) *ReactionRepository {
	return &ReactionRepository{db: db}
}

// Toggle adds the (user, quote) reaction when absent and removes it when present.
// The whole operation runs in one transaction and the unique index on
// (user_id, quote_id) settles concurrent inserts: the loser reports ToggleAdded.
//
// Returns gorm.ErrRecordNotFound for an unknown quote and ErrSoftDeleted for a trashed one.
func (r *ReactionRepository) Toggle(ctx context.Context, kind domain.ReactionKind, userID, quoteID int64) (domain.ToggleState, *domain.Quote, error) {
	var (
		state domain.ToggleState
		quote domain.Quote
	)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := withRelations(tx.Unscoped()).First(&quote, quoteID).Error; err != nil {
			return err
		}
		if quote.IsDeleted() {
			return ErrSoftDeleted
		}

		res := tx.Table(kind.Table()).
			Where("user_id = ? AND quote_id = ?", userID, quoteID).
			Delete(&reactionRow{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected > 0 {
			state = domain.ToggleRemoved
			return nil
		}

		// Nested transaction = savepoint, so a lost race does not abort the outer tx on Postgres.
		err := tx.Transaction(func(sp *gorm.DB) error {
			return sp.Table(kind.Table()).Create(&reactionRow{
				UserID:    userID,
				QuoteID:   quoteID,
				CreatedAt: time.Now().UTC(),
			}).Error
		})
		if err != nil && !IsUniqueViolation(err) {
			return err
		}
		state = domain.ToggleAdded
		return nil
	})
	if err != nil {
		return "", nil, err
	}
	return state, &quote, nil
}

// Remove deletes the reaction explicitly. Returns gorm.ErrRecordNotFound when absent.
func (r *ReactionRepository) Remove(ctx context.Context, kind domain.ReactionKind, userID, quoteID int64) error {
	res := r.db.WithContext(ctx).Table(kind.Table()).
		Where("user_id = ? AND quote_id = ?", userID, quoteID).
		Delete(&reactionRow{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *ReactionRepository) Exists(ctx context.Context, kind domain.ReactionKind, userID, quoteID int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Table(kind.Table()).
		Where("user_id = ? AND quote_id = ?", userID, quoteID).
		Count(&count).Error
	return count > 0, err
}

// ListMine returns the user's reactions of the given kind on live quotes, newest first,
// with like and favorite counts aggregated per quote.
func (r *ReactionRepository) ListMine(ctx context.Context, kind domain.ReactionKind, userID int64) ([]domain.ReactionEntry, error) {
	db := r.db.WithContext(ctx)
	t := kind.Table()

	var rows []reactionRow
	err := db.Table(t).
		Select(t+".id, "+t+".user_id, "+t+".quote_id, "+t+".created_at").
		Joins("JOIN quotes ON quotes.id = "+t+".quote_id AND quotes.deleted_at IS NULL").
		Where(t+".user_id = ?", userID).
		Order(t + ".created_at DESC").Order(t + ".id DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return []domain.ReactionEntry{}, nil
	}

	ids := make([]int64, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.QuoteID)
	}

	var quotes []domain.Quote
	if err := withRelations(db).Where("id IN ?", ids).Find(&quotes).Error; err != nil {
		return nil, err
	}
	byID := make(map[int64]*domain.Quote, len(quotes))
	for i := range quotes {
		byID[quotes[i].ID] = &quotes[i]
	}

	likes, err := r.countByQuote(ctx, domain.ReactionLike, ids)
	if err != nil {
		return nil, err
	}
	favorites, err := r.countByQuote(ctx, domain.ReactionFavorite, ids)
	if err != nil {
		return nil, err
	}
	liked, err := r.reactedSet(ctx, domain.ReactionLike, userID, ids)
	if err != nil {
		return nil, err
	}
	favorited, err := r.reactedSet(ctx, domain.ReactionFavorite, userID, ids)
	if err != nil {
		return nil, err
	}

	out := make([]domain.ReactionEntry, 0, len(rows))
	for _, row := range rows {
		q, ok := byID[row.QuoteID]
		if !ok {
			continue
		}
		out = append(out, domain.ReactionEntry{
			ReactionID:     row.ID,
			AddedAt:        row.CreatedAt,
			Quote:          q.Snapshot(),
			LikesCount:     likes[row.QuoteID],
			FavoritesCount: favorites[row.QuoteID],
			IsLiked:        liked[row.QuoteID],
			IsFavorited:    favorited[row.QuoteID],
		})
	}
	return out, nil
}

func (r *ReactionRepository) countByQuote(ctx context.Context, kind domain.ReactionKind, ids []int64) (map[int64]int64, error) {
	var rows []struct {
		QuoteID int64
		Total   int64
	}
	err := r.db.WithContext(ctx).Table(kind.Table()).
		Select("quote_id, COUNT(*) AS total").
		Where("quote_id IN ?", ids).
		Group("quote_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make(map[int64]int64, len(rows))
	for _, row := range rows {
		out[row.QuoteID] = row.Total
	}
	return out, nil
}

func (r *ReactionRepository) reactedSet(ctx context.Context, kind domain.ReactionKind, userID int64, ids []int64) (map[int64]bool, error) {
	var quoteIDs []int64
	err := r.db.WithContext(ctx).Table(kind.Table()).
		Where("user_id = ? AND quote_id IN ?", userID, ids).
		Pluck("quote_id", &quoteIDs).Error
	if err != nil {
		return nil, err
	}
	out := make(map[int64]bool, len(quoteIDs))
	for _, id := range quoteIDs {
		out[id] = true
	}
	return out, nil
}

// ListForQuote returns who reacted to the quote, newest first.
func (r *ReactionRepository) ListForQuote(ctx context.Context, kind domain.ReactionKind, quoteID int64) ([]domain.Reactor, error) {
	t := kind.Table()
	var out []domain.Reactor
	err := r.db.WithContext(ctx).Table(t).
		Select(t+".id AS reaction_id, users.id AS user_id, users.name, users.email, "+t+".created_at AS added_at").
		Joins("JOIN users ON users.id = "+t+".user_id").
		Where(t+".quote_id = ?", quoteID).
		Order(t + ".created_at DESC").Order(t + ".id DESC").
		Scan(&out).Error
	if err != nil {
		return nil, err
	}
	if out == nil {
		out = []domain.Reactor{}
	}
	return out, nil
}
