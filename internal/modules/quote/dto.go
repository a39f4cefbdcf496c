package quote

import "youquote/internal/domain"

type CreateQuoteRequest struct {
	Content     string  `json:"content" binding:"required"`
	CategoryIDs []int64 `json:"category_ids" binding:"omitempty,dive,gt=0"`
	TagIDs      []int64 `json:"tag_ids" binding:"omitempty,dive,gt=0"`
}

// UpdateQuoteRequest is a partial update. A present id list replaces the current set.
type UpdateQuoteRequest struct {
	Content     *string  `json:"content" validate:"omitempty,min=1"`
	CategoryIDs *[]int64 `json:"category_ids" validate:"omitempty,dive,gt=0"`
	TagIDs      *[]int64 `json:"tag_ids" validate:"omitempty,dive,gt=0"`
}

// TermQuotes is the result of a search by category or tag.
type TermQuotes struct {
	Kind   domain.TaxonomyKind `json:"kind"`
	Term   domain.Term         `json:"term"`
	Quotes []domain.QuoteView  `json:"quotes"`
}
