package app

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"youquote/internal/domain"
	"youquote/internal/modules/auth"
	jwtsvc "youquote/internal/pkg/jwt"
	"youquote/internal/repository"
	"youquote/internal/testutil"
)

const strongPassword = "Str0ng!Pass"

type e2eSuite struct {
	t      *testing.T
	router *gin.Engine
	db     *gorm.DB
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Meta    *struct {
		Count int `json:"count"`
	} `json:"meta"`
	Error *struct {
		Code    string      `json:"code"`
		Message string      `json:"message"`
		Details interface{} `json:"details"`
	} `json:"error"`
}

func setupSuite(t *testing.T) *e2eSuite {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := testutil.SetupTestDB(t)
	router := NewRouter(Deps{
		DB:  db,
		JWT: jwtsvc.New("test_secret_key_32_characters_min", time.Hour),
		Cookie: auth.CookieSettings{
			Name:     "auth_token",
			SameSite: http.SameSiteLaxMode,
		},
	})
	return &e2eSuite{t: t, router: router, db: db}
}

func (s *e2eSuite) do(method, path string, body interface{}, token string) (int, envelope) {
	s.t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(s.t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	var env envelope
	if w.Body.Len() > 0 {
		require.NoError(s.t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	}
	return w.Code, env
}

func (s *e2eSuite) decode(env envelope, out interface{}) {
	s.t.Helper()
	require.NoError(s.t, json.Unmarshal(env.Data, out))
}

func (s *e2eSuite) register(name, email string) (string, domain.UserRole) {
	s.t.Helper()
	code, env := s.do(http.MethodPost, "/api/register", map[string]string{
		"name":                  name,
		"email":                 email,
		"password":              strongPassword,
		"password_confirmation": strongPassword,
	}, "")
	require.Equal(s.t, http.StatusCreated, code, env.Message)

	var out struct {
		Token string `json:"token"`
		User  struct {
			Role domain.UserRole `json:"role"`
		} `json:"user"`
	}
	s.decode(env, &out)
	require.NotEmpty(s.t, out.Token)
	return out.Token, out.User.Role
}

func (s *e2eSuite) createQuote(token, content string, extra map[string]interface{}) int64 {
	s.t.Helper()
	body := map[string]interface{}{"content": content}
	for k, v := range extra {
		body[k] = v
	}
	code, env := s.do(http.MethodPost, "/api/quotes", body, token)
	require.Equal(s.t, http.StatusCreated, code)

	var view domain.QuoteView
	s.decode(env, &view)
	assert.False(s.t, view.IsValidated)
	return view.ID
}

func TestHealth(t *testing.T) {
	s := setupSuite(t)
	code, env := s.do(http.MethodGet, "/api/health", nil, "")
	assert.Equal(t, http.StatusOK, code)
	assert.True(t, env.Success)
}

func TestRegister_FirstUserIsAdmin(t *testing.T) {
	s := setupSuite(t)

	_, role := s.register("Ada Lovelace", "ada@example.com")
	assert.Equal(t, domain.RoleAdmin, role)

	_, role = s.register("Alan Turing", "alan@example.com")
	assert.Equal(t, domain.RoleAuthor, role)
}

func TestRegister_Rejections(t *testing.T) {
	s := setupSuite(t)
	s.register("Ada Lovelace", "ada@example.com")

	code, env := s.do(http.MethodPost, "/api/register", map[string]string{
		"name":                  "Grace Hopper",
		"email":                 "ADA@example.com",
		"password":              strongPassword,
		"password_confirmation": strongPassword,
	}, "")
	assert.Equal(t, http.StatusConflict, code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "EMAIL_EXISTS", env.Error.Code)

	code, env = s.do(http.MethodPost, "/api/register", map[string]string{
		"name":                  "Grace Hopper",
		"email":                 "grace@example.com",
		"password":              "password",
		"password_confirmation": "password",
	}, "")
	assert.Equal(t, http.StatusBadRequest, code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "VALIDATION_ERROR", env.Error.Code)
	assert.NotNil(t, env.Error.Details)
}

func TestLoginAndLogout(t *testing.T) {
	s := setupSuite(t)
	s.register("Ada Lovelace", "ada@example.com")

	code, _ := s.do(http.MethodPost, "/api/login", map[string]string{
		"email": "ada@example.com", "password": "wrong",
	}, "")
	assert.Equal(t, http.StatusUnauthorized, code)

	code, env := s.do(http.MethodPost, "/api/login", map[string]string{
		"email": "ada@example.com", "password": strongPassword,
	}, "")
	require.Equal(t, http.StatusOK, code)
	var out struct {
		Token string `json:"token"`
	}
	s.decode(env, &out)

	code, _ = s.do(http.MethodGet, "/api/me", nil, out.Token)
	assert.Equal(t, http.StatusOK, code)

	code, _ = s.do(http.MethodPost, "/api/logout", nil, out.Token)
	assert.Equal(t, http.StatusOK, code)

	code, _ = s.do(http.MethodGet, "/api/me", nil, out.Token)
	assert.Equal(t, http.StatusUnauthorized, code)
}

func TestQuotes_RequireAuth(t *testing.T) {
	s := setupSuite(t)
	code, env := s.do(http.MethodGet, "/api/quotes", nil, "")
	assert.Equal(t, http.StatusUnauthorized, code)
	assert.False(t, env.Success)
}

func TestQuote_ModerationFlow(t *testing.T) {
	s := setupSuite(t)
	admin, _ := s.register("Ada Lovelace", "ada@example.com")
	author, _ := s.register("Alan Turing", "alan@example.com")

	id := s.createQuote(author, "We can only see a short distance ahead", nil)

	code, env := s.do(http.MethodGet, "/api/quotes", nil, author)
	require.Equal(t, http.StatusOK, code)
	require.NotNil(t, env.Meta)
	assert.Equal(t, 0, env.Meta.Count)
	assert.JSONEq(t, "[]", string(env.Data))

	code, _ = s.do(http.MethodGet, "/api/quotes/pending", nil, author)
	assert.Equal(t, http.StatusForbidden, code)

	code, _ = s.do(http.MethodPost, fmt.Sprintf("/api/quotes/%d/validate", id), nil, author)
	assert.Equal(t, http.StatusForbidden, code)

	code, env = s.do(http.MethodGet, "/api/quotes/pending", nil, admin)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, 1, env.Meta.Count)

	code, _ = s.do(http.MethodPost, fmt.Sprintf("/api/quotes/%d/validate", id), nil, admin)
	require.Equal(t, http.StatusOK, code)

	code, env = s.do(http.MethodGet, "/api/quotes", nil, author)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, 1, env.Meta.Count)

	code, _ = s.do(http.MethodPost, "/api/quotes/9999/validate", nil, admin)
	assert.Equal(t, http.StatusNotFound, code)
}

func TestQuote_ViewIncrementsPopularity(t *testing.T) {
	s := setupSuite(t)
	s.register("Ada Lovelace", "ada@example.com")
	author, _ := s.register("Alan Turing", "alan@example.com")
	id := s.createQuote(author, "Machines take me by surprise", nil)

	for i := 0; i < 3; i++ {
		code, _ := s.do(http.MethodGet, fmt.Sprintf("/api/quotes/%d", id), nil, author)
		require.Equal(t, http.StatusOK, code)
	}

	var q domain.Quote
	require.NoError(t, s.db.First(&q, id).Error)
	assert.Equal(t, int64(3), q.Popularity)
}

func TestQuote_OwnershipAndTrash(t *testing.T) {
	s := setupSuite(t)
	admin, _ := s.register("Ada Lovelace", "ada@example.com")
	alan, _ := s.register("Alan Turing", "alan@example.com")
	grace, _ := s.register("Grace Hopper", "grace@example.com")

	id := s.createQuote(alan, "Those who can imagine anything can create the impossible", nil)
	path := fmt.Sprintf("/api/quotes/%d", id)

	code, _ := s.do(http.MethodDelete, path, nil, grace)
	assert.Equal(t, http.StatusForbidden, code)

	code, _ = s.do(http.MethodPatch, path, map[string]string{"content": "hijacked"}, grace)
	assert.Equal(t, http.StatusForbidden, code)

	code, _ = s.do(http.MethodDelete, path, nil, alan)
	require.Equal(t, http.StatusOK, code)

	code, _ = s.do(http.MethodGet, path, nil, alan)
	assert.Equal(t, http.StatusNotFound, code)

	code, _ = s.do(http.MethodDelete, path, nil, alan)
	assert.Equal(t, http.StatusGone, code)

	code, _ = s.do(http.MethodPut, path, map[string]string{"content": "again"}, alan)
	assert.Equal(t, http.StatusGone, code)

	code, _ = s.do(http.MethodGet, "/api/trash", nil, alan)
	assert.Equal(t, http.StatusForbidden, code)

	code, env := s.do(http.MethodGet, "/api/trash", nil, admin)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, 1, env.Meta.Count)

	trashPath := fmt.Sprintf("/api/trash/%d", id)
	code, _ = s.do(http.MethodPost, trashPath, nil, admin)
	require.Equal(t, http.StatusOK, code)

	code, _ = s.do(http.MethodPost, trashPath, nil, admin)
	assert.Equal(t, http.StatusBadRequest, code)

	code, _ = s.do(http.MethodGet, path, nil, alan)
	assert.Equal(t, http.StatusOK, code)

	code, _ = s.do(http.MethodDelete, trashPath, nil, admin)
	require.Equal(t, http.StatusOK, code)

	code, _ = s.do(http.MethodGet, trashPath, nil, admin)
	assert.Equal(t, http.StatusNotFound, code)
}

func TestReactions_Toggle(t *testing.T) {
	s := setupSuite(t)
	s.register("Ada Lovelace", "ada@example.com")
	author, _ := s.register("Alan Turing", "alan@example.com")
	id := s.createQuote(author, "Sometimes it is the people no one imagines anything of", nil)

	steps := []struct {
		state  domain.ToggleState
		status int
	}{
		{domain.ToggleAdded, http.StatusCreated},
		{domain.ToggleRemoved, http.StatusOK},
		{domain.ToggleAdded, http.StatusCreated},
	}
	for _, want := range steps {
		code, env := s.do(http.MethodPost, "/api/likes", map[string]int64{"quote_id": id}, author)
		require.Equal(t, want.status, code)
		var out struct {
			State domain.ToggleState `json:"state"`
		}
		s.decode(env, &out)
		assert.Equal(t, want.state, out.State)
	}

	code, env := s.do(http.MethodGet, fmt.Sprintf("/api/likes/quote/%d", id), nil, author)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, 1, env.Meta.Count)

	code, env = s.do(http.MethodGet, "/api/favorites", nil, author)
	require.Equal(t, http.StatusOK, code)
	assert.JSONEq(t, "[]", string(env.Data))

	code, _ = s.do(http.MethodPost, "/api/favorites", map[string]int64{"quote_id": id}, author)
	require.Equal(t, http.StatusCreated, code)

	code, env = s.do(http.MethodGet, "/api/favorites", nil, author)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, 1, env.Meta.Count)

	code, _ = s.do(http.MethodDelete, fmt.Sprintf("/api/favorites/%d", id), nil, author)
	require.Equal(t, http.StatusOK, code)

	code, _ = s.do(http.MethodPost, "/api/likes", map[string]int64{"quote_id": 9999}, author)
	assert.Equal(t, http.StatusNotFound, code)

	code, _ = s.do(http.MethodDelete, fmt.Sprintf("/api/quotes/%d", id), nil, author)
	require.Equal(t, http.StatusOK, code)

	code, _ = s.do(http.MethodPost, "/api/likes", map[string]int64{"quote_id": id}, author)
	assert.Equal(t, http.StatusGone, code)

	code, env = s.do(http.MethodGet, "/api/likes", nil, author)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, 0, env.Meta.Count)
}

func TestTaxonomy_DeleteDetachesQuotes(t *testing.T) {
	s := setupSuite(t)
	admin, _ := s.register("Ada Lovelace", "ada@example.com")
	author, _ := s.register("Alan Turing", "alan@example.com")

	code, _ := s.do(http.MethodPost, "/api/categories", map[string]string{"name": "Science"}, author)
	assert.Equal(t, http.StatusForbidden, code)

	code, env := s.do(http.MethodPost, "/api/categories", map[string]string{"name": "Science"}, admin)
	require.Equal(t, http.StatusCreated, code)
	var category domain.Term
	s.decode(env, &category)

	id := s.createQuote(author, "Science is a way of thinking", map[string]interface{}{
		"category_ids": []int64{category.ID},
	})

	code, env = s.do(http.MethodGet, fmt.Sprintf("/api/categories/%d/quotes", category.ID), nil, author)
	require.Equal(t, http.StatusOK, code)
	var listing struct {
		Quotes []domain.QuoteView `json:"quotes"`
	}
	s.decode(env, &listing)
	require.Len(t, listing.Quotes, 1)
	assert.Equal(t, []string{"Science"}, listing.Quotes[0].Categories)

	code, _ = s.do(http.MethodDelete, fmt.Sprintf("/api/categories/%d", category.ID), nil, admin)
	require.Equal(t, http.StatusOK, code)

	code, env = s.do(http.MethodGet, fmt.Sprintf("/api/quotes/%d", id), nil, author)
	require.Equal(t, http.StatusOK, code)
	var view domain.QuoteView
	s.decode(env, &view)
	assert.Empty(t, view.Categories)

	code, _ = s.do(http.MethodPost, "/api/quotes", map[string]interface{}{
		"content":      "Unknown category",
		"category_ids": []int64{category.ID},
	}, author)
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestAdminStats(t *testing.T) {
	s := setupSuite(t)
	admin, _ := s.register("Ada Lovelace", "ada@example.com")
	author, _ := s.register("Alan Turing", "alan@example.com")
	s.createQuote(author, "Counting quotes", nil)

	code, _ := s.do(http.MethodGet, "/api/admin/stats", nil, author)
	assert.Equal(t, http.StatusForbidden, code)

	code, env := s.do(http.MethodGet, "/api/admin/stats", nil, admin)
	require.Equal(t, http.StatusOK, code)
	var stats domain.Stats
	s.decode(env, &stats)
	assert.Equal(t, int64(2), stats.Users)
	assert.Equal(t, int64(1), stats.QuotesPending)
}

func TestRoleChangeAppliesToExistingToken(t *testing.T) {
	s := setupSuite(t)
	admin, _ := s.register("Ada Lovelace", "ada@example.com")

	code, _ := s.do(http.MethodGet, "/api/admin/stats", nil, admin)
	require.Equal(t, http.StatusOK, code)

	users := repository.NewUserRepository(s.db)
	ada, err := users.GetByEmail(context.Background(), "ada@example.com")
	require.NoError(t, err)
	require.NoError(t, users.UpdateRole(context.Background(), ada.ID, domain.RoleAuthor))

	code, _ = s.do(http.MethodGet, "/api/admin/stats", nil, admin)
	assert.Equal(t, http.StatusForbidden, code)

	code, _ = s.do(http.MethodPost, "/api/categories", map[string]string{"name": "Science"}, admin)
	assert.Equal(t, http.StatusForbidden, code)

	code, _ = s.do(http.MethodGet, "/api/quotes/pending", nil, admin)
	assert.Equal(t, http.StatusForbidden, code)

	code, _ = s.do(http.MethodGet, "/api/quotes", nil, admin)
	assert.Equal(t, http.StatusOK, code)
}
