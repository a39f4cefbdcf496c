package domain

// Stats is the moderation dashboard summary.
type Stats struct {
	Users           int64 `json:"users"`
	Admins          int64 `json:"admins"`
	QuotesValidated int64 `json:"quotes_validated"`
	QuotesPending   int64 `json:"quotes_pending"`
	QuotesTrashed   int64 `json:"quotes_trashed"`
	Categories      int64 `json:"categories"`
	Tags            int64 `json:"tags"`
	Likes           int64 `json:"likes"`
	Favorites       int64 `json:"favorites"`
}
