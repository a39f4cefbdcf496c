package domain

import (
	"time"

	"gorm.io/gorm"
)

type Quote struct {
	ID          int64          `json:"id" gorm:"primaryKey"`
	Content     string         `json:"content" gorm:"type:text;not null"`
	UserID      int64          `json:"user_id" gorm:"index;not null"`
	Popularity  int64          `json:"popularity" gorm:"not null;default:0"`
	WordCount   int            `json:"word_count" gorm:"index;not null;default:0"`
	IsValidated bool           `json:"is_validated" gorm:"index;not null;default:false"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `json:"-" gorm:"index"`

	User       *User      `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Categories []Category `json:"categories,omitempty" gorm:"many2many:quote_categories;"`
	Tags       []Tag      `json:"tags,omitempty" gorm:"many2many:quote_tags;"`
}

func (Quote) TableName() string {
	return "quotes"
}

func (q *Quote) IsDeleted() bool {
	return q.DeletedAt.Valid
}

// QuoteView is the denormalized representation returned by every quote listing.
type QuoteView struct {
	ID          int64      `json:"id"`
	Content     string     `json:"content"`
	AuthorID    int64      `json:"author_id"`
	Author      string     `json:"author"`
	Popularity  int64      `json:"popularity"`
	WordCount   int        `json:"word_count"`
	IsValidated bool       `json:"is_validated"`
	IsDeleted   bool       `json:"is_deleted"`
	Tags        []string   `json:"tags"`
	Categories  []string   `json:"categories"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	DeletedAt   *time.Time `json:"deleted_at,omitempty"`
}

// View flattens a quote with its preloaded relations. Missing relations become empty lists.
func (q *Quote) View() QuoteView {
	v := QuoteView{
		ID:          q.ID,
		Content:     q.Content,
		AuthorID:    q.UserID,
		Popularity:  q.Popularity,
		WordCount:   q.WordCount,
		IsValidated: q.IsValidated,
		IsDeleted:   q.DeletedAt.Valid,
		Tags:        make([]string, 0, len(q.Tags)),
		Categories:  make([]string, 0, len(q.Categories)),
		CreatedAt:   q.CreatedAt,
		UpdatedAt:   q.UpdatedAt,
	}
	if q.User != nil {
		v.Author = q.User.Name
	}
	for _, t := range q.Tags {
		v.Tags = append(v.Tags, t.Name)
	}
	for _, c := range q.Categories {
		v.Categories = append(v.Categories, c.Name)
	}
	if q.DeletedAt.Valid {
		at := q.DeletedAt.Time
		v.DeletedAt = &at
	}
	return v
}

func QuoteViews(quotes []Quote) []QuoteView {
	out := make([]QuoteView, 0, len(quotes))
	for i := range quotes {
		out = append(out, quotes[i].View())
	}
	return out
}
