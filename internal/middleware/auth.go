package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"youquote/internal/domain"
	"youquote/internal/pkg/jwt"
	"youquote/internal/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

const (
	ctxUserID    = "user_id"
	ctxRole      = "role"
	ctxTokenID   = "jti"
	ctxTokenExp  = "token_exp"
	ctxPrincipal = "principal"
)

type TokenValidator interface {
	ValidateToken(tokenStr string) (*jwt.Claims, error)
}

type RevocationChecker interface {
	IsRevoked(ctx context.Context, jti string) (bool, error)
}

// UserLookup loads the account behind a token so role changes apply immediately.
type UserLookup interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

// JWTAuth authenticates the request from the Authorization header, falling back
// to the auth cookie. Revoked tokens are rejected. When users is set, the role
// comes from the stored account rather than the token claim.
func JWTAuth(tokens TokenValidator, revoked RevocationChecker, users UserLookup, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr := bearerToken(c)
		if tokenStr == "" && cookieName != "" {
			tokenStr, _ = c.Cookie(cookieName)
		}
		if tokenStr == "" {
			response.Abort(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
			return
		}

		claims, err := tokens.ValidateToken(tokenStr)
		if err != nil {
			response.Abort(c, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid token")
			return
		}

		if revoked != nil {
			isRevoked, err := revoked.IsRevoked(c.Request.Context(), claims.ID)
			if err != nil {
				log.Error().Err(err).Str("jti", claims.ID).Msg("revocation lookup failed")
				response.Abort(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to verify token")
				return
			}
			if isRevoked {
				response.Abort(c, http.StatusUnauthorized, "UNAUTHORIZED", "Token has been revoked")
				return
			}
		}

		role := domain.UserRole(claims.Role)
		if users != nil {
			user, err := users.GetByID(c.Request.Context(), claims.UserID)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					response.Abort(c, http.StatusUnauthorized, "UNAUTHORIZED", "Account no longer exists")
					return
				}
				log.Error().Err(err).Int64("user_id", claims.UserID).Msg("user lookup failed")
				response.Abort(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to verify token")
				return
			}
			role = user.Role
		}
		c.Set(ctxUserID, claims.UserID)
		c.Set(ctxRole, string(role))
		c.Set(ctxTokenID, claims.ID)
		if claims.ExpiresAt != nil {
			c.Set(ctxTokenExp, claims.ExpiresAt.Time)
		}
		c.Set(ctxPrincipal, domain.Principal{UserID: claims.UserID, Role: role})

		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	h := strings.TrimSpace(c.GetHeader("Authorization"))
	if len(h) < 7 || !strings.EqualFold(h[:7], "Bearer ") {
		return ""
	}
	return strings.TrimSpace(h[7:])
}

// PrincipalFrom returns the caller resolved by JWTAuth.
func PrincipalFrom(c *gin.Context) (domain.Principal, bool) {
	v, ok := c.Get(ctxPrincipal)
	if !ok {
		return domain.Principal{}, false
	}
	p, ok := v.(domain.Principal)
	return p, ok
}

// TokenFrom returns the id and expiry of the token that authenticated the request.
func TokenFrom(c *gin.Context) (string, time.Time) {
	exp, _ := c.Get(ctxTokenExp)
	t, _ := exp.(time.Time)
	return c.GetString(ctxTokenID), t
}
