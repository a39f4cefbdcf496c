package domain

import (
	"time"
)

// Favorite is a bookmark: the user keeps the quote in their favorites list.
type Favorite struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	UserID    int64     `json:"user_id" gorm:"not null;index;uniqueIndex:idx_favorite_user_quote"`
	QuoteID   int64     `json:"quote_id" gorm:"not null;index;uniqueIndex:idx_favorite_user_quote"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`

	User  *User  `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Quote *Quote `json:"quote,omitempty" gorm:"foreignKey:QuoteID"`
}

func (Favorite) TableName() string {
	return "favorites"
}

// Like marks that the user likes the quote. Independent from Favorite.
type Like struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	UserID    int64     `json:"user_id" gorm:"not null;index;uniqueIndex:idx_like_user_quote"`
	QuoteID   int64     `json:"quote_id" gorm:"not null;index;uniqueIndex:idx_like_user_quote"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`

	User  *User  `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Quote *Quote `json:"quote,omitempty" gorm:"foreignKey:QuoteID"`
}

func (Like) TableName() string {
	return "likes"
}

type ReactionKind string

const (
	ReactionLike     ReactionKind = "like"
	ReactionFavorite ReactionKind = "favorite"
)

func (k ReactionKind) Valid() bool {
	return k == ReactionLike || k == ReactionFavorite
}

// Table is the association table backing the reaction kind.
func (k ReactionKind) Table() string {
	if k == ReactionFavorite {
		return Favorite{}.TableName()
	}
	return Like{}.TableName()
}

type ToggleState string

const (
	ToggleAdded   ToggleState = "added"
	ToggleRemoved ToggleState = "removed"
)

// QuoteSnapshot is the short quote description returned by reaction endpoints.
type QuoteSnapshot struct {
	ID         int64    `json:"id"`
	Content    string   `json:"content"`
	AuthorID   int64    `json:"author_id"`
	Author     string   `json:"author"`
	Popularity int64    `json:"popularity"`
	Tags       []string `json:"tags"`
	Categories []string `json:"categories"`
}

func (q *Quote) Snapshot() QuoteSnapshot {
	v := q.View()
	return QuoteSnapshot{
		ID:         v.ID,
		Content:    v.Content,
		AuthorID:   v.AuthorID,
		Author:     v.Author,
		Popularity: v.Popularity,
		Tags:       v.Tags,
		Categories: v.Categories,
	}
}

// ReactionEntry is one item of a user's likes or favorites list.
type ReactionEntry struct {
	ReactionID     int64         `json:"reaction_id"`
	AddedAt        time.Time     `json:"added_at"`
	Quote          QuoteSnapshot `json:"quote"`
	LikesCount     int64         `json:"likes_count"`
	FavoritesCount int64         `json:"favorites_count"`
	IsLiked        bool          `json:"is_liked"`
	IsFavorited    bool          `json:"is_favorited"`
}

// Reactor is a user who liked or favorited a given quote.
type Reactor struct {
	ReactionID int64     `json:"reaction_id"`
	UserID     int64     `json:"user_id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	AddedAt    time.Time `json:"added_at"`
}
