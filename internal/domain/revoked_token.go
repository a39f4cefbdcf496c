package domain

import "time"

// RevokedToken records a logged-out access token by its jti.
//
// Only the jti is stored, never the token itself. Rows are useless after
// ExpiresAt since the JWT is rejected on expiry anyway, so they can be purged.
type RevokedToken struct {
	JTI       string    `json:"jti" gorm:"primaryKey;size:64"`
	UserID    int64     `json:"user_id" gorm:"index;not null"`
	ExpiresAt time.Time `json:"expires_at" gorm:"index;not null"`
	CreatedAt time.Time `json:"created_at"`
}

func (RevokedToken) TableName() string {
	return "revoked_tokens"
}

func (t *RevokedToken) IsExpired(now time.Time) bool {
	return now.After(t.ExpiresAt)
}
