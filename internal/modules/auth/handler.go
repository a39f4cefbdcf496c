package auth

import (
	"errors"
	"net/http"
	"time"

	"youquote/internal/middleware"
	"youquote/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

// CookieSettings control the auth_token cookie written on register and login.
type CookieSettings struct {
	Name     string
	Secure   bool
	SameSite http.SameSite
}

// Handler manages all HTTP interactions for authentication
type Handler struct {
	service *Service
	cookie  CookieSettings
}

func NewHandler(service *Service, cookie CookieSettings) *Handler {
	return &Handler{
		service: service,
		cookie:  cookie,
	}
}

func (h *Handler) RegisterPublicRoutes(api *gin.RouterGroup) {
	api.POST("/register", h.Register)
	api.POST("/login", h.Login)
}

func (h *Handler) RegisterProtectedRoutes(protected *gin.RouterGroup) {
	protected.POST("/logout", h.Logout)
	protected.GET("/me", h.Me)
}

// Register creates an account and returns a token.
// @Summary		Register
// @Tags		Auth
// @Param		request	body	RegisterRequest	true	"name, email, password, password_confirmation"
// @Success		201	{object}	AuthResponse
// @Failure		400	{object}	map[string]interface{} "Validation error"
// @Failure		409	{object}	map[string]interface{} "Email already registered"
// @Router		/register [POST]
func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid registration data", err)
		return
	}

	result, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrEmailAlreadyExists) {
			response.Error(c, http.StatusConflict, "EMAIL_EXISTS", "This email is already registered")
			return
		}
		response.Internal(c, err)
		return
	}

	h.setAuthCookie(c, result.Token, result.ExpiresAt)
	response.Message(c, http.StatusCreated, "User registered successfully", toAuthResponse(result))
}

// Login verifies credentials and returns a token.
// @Summary		Login
// @Tags		Auth
// @Param		request	body	LoginRequest	true	"email and password"
// @Success		200	{object}	AuthResponse
// @Failure		401	{object}	map[string]interface{} "Invalid credentials"
// @Router		/login [POST]
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	result, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			response.Error(c, http.StatusUnauthorized, "INVALID_CREDENTIALS", "Invalid email or password")
			return
		}
		response.Internal(c, err)
		return
	}

	h.setAuthCookie(c, result.Token, result.ExpiresAt)
	response.Message(c, http.StatusOK, "Logged in successfully", toAuthResponse(result))
}

func (h *Handler) Logout(c *gin.Context) {
	principal, ok := middleware.PrincipalFrom(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}
	jti, exp := middleware.TokenFrom(c)

	if err := h.service.Logout(c.Request.Context(), principal, jti, exp); err != nil {
		if errors.Is(err, ErrUnauthorized) {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
			return
		}
		response.Internal(c, err)
		return
	}

	h.clearAuthCookie(c)
	response.Message(c, http.StatusOK, "Logged out successfully", nil)
}

func (h *Handler) Me(c *gin.Context) {
	principal, ok := middleware.PrincipalFrom(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}

	me, err := h.service.Me(c.Request.Context(), principal)
	if err != nil {
		if errors.Is(err, ErrUnauthorized) {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "User no longer exists")
			return
		}
		response.Internal(c, err)
		return
	}

	response.Success(c, http.StatusOK, me)
}

func toAuthResponse(r *AuthResult) AuthResponse {
	return AuthResponse{
		User:      toUserPublic(r.User),
		Token:     r.Token,
		TokenType: "Bearer",
		ExpiresAt: r.ExpiresAt,
	}
}

func (h *Handler) setAuthCookie(c *gin.Context, token string, expiresAt time.Time) {
	maxAge := int(time.Until(expiresAt).Seconds())
	if maxAge < 0 {
		maxAge = 0
	}
	c.SetSameSite(h.cookie.SameSite)
	c.SetCookie(h.cookie.Name, token, maxAge, "/", "", h.cookie.Secure, true)
}

func (h *Handler) clearAuthCookie(c *gin.Context) {
	c.SetSameSite(h.cookie.SameSite)
	c.SetCookie(h.cookie.Name, "", -1, "/", "", h.cookie.Secure, true)
}
