package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"youquote/internal/domain"
	"youquote/internal/repository"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Service contains all business logic for authentication
type Service struct {
	users   UserRepositoryInterface
	tokens  TokenIssuer
	revoker TokenRevoker
}

type AuthResult struct {
	User      *domain.User
	Token     string
	ExpiresAt time.Time
}

func NewService(users UserRepositoryInterface, tokens TokenIssuer, revoker TokenRevoker) *Service {
	return &Service{
		users:   users,
		tokens:  tokens,
		revoker: revoker,
	}
}

// Register creates the account and signs the user in. The very first account becomes admin.
func (s *Service) Register(ctx context.Context, req RegisterRequest) (*AuthResult, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	exists, err := s.users.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrEmailAlreadyExists
	}

	hashedPassword, err := hashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Name:         strings.TrimSpace(req.Name),
		Email:        email,
		PasswordHash: hashedPassword,
	}
	if err := s.users.CreateFirstAware(ctx, user); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, ErrEmailAlreadyExists
		}
		return nil, err
	}

	return s.issue(user)
}

func (s *Service) Login(ctx context.Context, req LoginRequest) (*AuthResult, error) {
	user, err := s.users.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		return nil, ErrInvalidCredentials
	}

	return s.issue(user)
}

// Logout revokes the token id until the token would have expired anyway.
func (s *Service) Logout(ctx context.Context, principal domain.Principal, jti string, expiresAt time.Time) error {
	if jti == "" {
		return ErrUnauthorized
	}
	if expiresAt.IsZero() {
		expiresAt = time.Now().Add(24 * time.Hour)
	}
	return s.revoker.Revoke(ctx, jti, principal.UserID, expiresAt)
}

func (s *Service) Me(ctx context.Context, principal domain.Principal) (*MeResponse, error) {
	user, err := s.users.GetByID(ctx, principal.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUnauthorized
		}
		return nil, err
	}

	return &MeResponse{
		User:        toUserPublic(user),
		Role:        user.Role,
		Permissions: domain.Permissions(user.Role),
	}, nil
}

func (s *Service) issue(user *domain.User) (*AuthResult, error) {
	issued, err := s.tokens.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		return nil, err
	}
	user.PasswordHash = ""
	return &AuthResult{
		User:      user,
		Token:     issued.Token,
		ExpiresAt: issued.ExpiresAt,
	}, nil
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
