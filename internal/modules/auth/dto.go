package auth

import (
	"regexp"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"youquote/internal/domain"
)

var (
	namePattern         = regexp.MustCompile(`^[\p{L}\s\-]+$`)
	hasLetter           = regexp.MustCompile(`\p{L}`)
	hasUpper            = regexp.MustCompile(`\p{Lu}`)
	hasLower            = regexp.MustCompile(`\p{Ll}`)
	hasDigit            = regexp.MustCompile(`[0-9]`)
	hasSymbol           = regexp.MustCompile(`[^\p{L}\p{N}\s]`)
	errPasswordMismatch = validation.NewError("validation_password_mismatch", "password confirmation does not match")
)

type RegisterRequest struct {
	Name                 string `json:"name"`
	Email                string `json:"email"`
	Password             string `json:"password"`
	PasswordConfirmation string `json:"password_confirmation"`
}

func (r RegisterRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email,
			validation.Required.Error("email is required"),
			is.Email.Error("invalid email format"),
			validation.RuneLength(0, 255),
		),
		validation.Field(&r.Name,
			validation.Required.Error("name is required"),
			validation.RuneLength(1, 255),
			validation.Match(namePattern).Error("name may only contain letters, spaces and hyphens"),
		),
		validation.Field(&r.Password,
			validation.Required.Error("password is required"),
			validation.RuneLength(8, 0).Error("password must be at least 8 characters"),
			validation.Match(hasLetter).Error("password must contain at least one letter"),
			validation.Match(hasUpper).Error("password must contain at least one uppercase letter"),
			validation.Match(hasLower).Error("password must contain at least one lowercase letter"),
			validation.Match(hasDigit).Error("password must contain at least one number"),
			validation.Match(hasSymbol).Error("password must contain at least one symbol"),
		),
		validation.Field(&r.PasswordConfirmation,
			validation.Required.Error("password confirmation is required"),
			validation.When(r.PasswordConfirmation != r.Password, validation.By(func(any) error {
				return errPasswordMismatch
			})),
		),
	)
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type UserPublic struct {
	ID        int64           `json:"id"`
	Name      string          `json:"name"`
	Email     string          `json:"email"`
	Role      domain.UserRole `json:"role"`
	CreatedAt time.Time       `json:"created_at"`
}

func toUserPublic(u *domain.User) UserPublic {
	return UserPublic{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}

type AuthResponse struct {
	User      UserPublic `json:"user"`
	Token     string     `json:"token"`
	TokenType string     `json:"token_type"`
	ExpiresAt time.Time  `json:"expires_at"`
}

type MeResponse struct {
	User        UserPublic          `json:"user"`
	Role        domain.UserRole     `json:"role"`
	Permissions []domain.Permission `json:"permissions"`
}
