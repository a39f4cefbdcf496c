package auth

import (
	"context"
	"time"

	"youquote/internal/domain"
	"youquote/internal/pkg/jwt"
)

// UserRepositoryInterface lists only the methods the auth service uses
type UserRepositoryInterface interface {
	CreateFirstAware(ctx context.Context, u *domain.User) error
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

type TokenIssuer interface {
	GenerateToken(userID int64, role string) (*jwt.Issued, error)
}

// TokenRevoker stores logged-out token ids until they expire
type TokenRevoker interface {
	Revoke(ctx context.Context, jti string, userID int64, expiresAt time.Time) error
}
