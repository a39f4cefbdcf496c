package reaction

import "youquote/internal/domain"

type ToggleRequest struct {
	QuoteID int64 `json:"quote_id" binding:"required,gt=0"`
}

type ToggleResponse struct {
	State domain.ToggleState   `json:"state"`
	Quote domain.QuoteSnapshot `json:"quote"`
}
