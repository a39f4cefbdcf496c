package testutil

import (
	"fmt"
	"strings"
	"testing"

	"gorm.io/gorm"

	"youquote/internal/database"
	"youquote/internal/domain"
	"youquote/internal/pkg/textutil"
)

var dsnReplacer = strings.NewReplacer("/", "_", " ", "_", "#", "_")

// SetupTestDB opens a private in-memory SQLite database with the full schema.
func SetupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", dsnReplacer.Replace(t.Name()))
	db, err := database.Connect(dsn)
	if err != nil {
		t.Fatalf("failed to open sqlite db: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := database.Migrate(db); err != nil {
		t.Fatalf("failed to migrate db: %v", err)
	}
	return db
}

func CreateUser(t *testing.T, db *gorm.DB, name string, role domain.UserRole) *domain.User {
	t.Helper()
	u := &domain.User{
		Name:         name,
		Email:        strings.ToLower(strings.ReplaceAll(name, " ", ".")) + "@example.com",
		PasswordHash: "x",
		Role:         role,
	}
	if err := db.Create(u).Error; err != nil {
		t.Fatalf("failed to create user: %v", err)
	}
	return u
}

func CreateCategory(t *testing.T, db *gorm.DB, name string) *domain.Category {
	t.Helper()
	c := &domain.Category{Name: name}
	if err := db.Create(c).Error; err != nil {
		t.Fatalf("failed to create category: %v", err)
	}
	return c
}

func CreateTag(t *testing.T, db *gorm.DB, name string) *domain.Tag {
	t.Helper()
	tag := &domain.Tag{Name: name}
	if err := db.Create(tag).Error; err != nil {
		t.Fatalf("failed to create tag: %v", err)
	}
	return tag
}

type QuoteOption func(q *domain.Quote)

func Validated(q *domain.Quote) { q.IsValidated = true }

func WithPopularity(n int64) QuoteOption {
	return func(q *domain.Quote) { q.Popularity = n }
}

func WithCategories(cs ...*domain.Category) QuoteOption {
	return func(q *domain.Quote) {
		for _, c := range cs {
			q.Categories = append(q.Categories, *c)
		}
	}
}

func WithTags(ts ...*domain.Tag) QuoteOption {
	return func(q *domain.Quote) {
		for _, tag := range ts {
			q.Tags = append(q.Tags, *tag)
		}
	}
}

func CreateQuote(t *testing.T, db *gorm.DB, author *domain.User, content string, opts ...QuoteOption) *domain.Quote {
	t.Helper()
	q := &domain.Quote{
		Content:   content,
		UserID:    author.ID,
		WordCount: textutil.WordCount(content),
	}
	for _, opt := range opts {
		opt(q)
	}
	if err := db.Create(q).Error; err != nil {
		t.Fatalf("failed to create quote: %v", err)
	}
	return q
}

// SoftDelete marks the quote deleted the same way the API does.
func SoftDelete(t *testing.T, db *gorm.DB, q *domain.Quote) {
	t.Helper()
	if err := db.Delete(&domain.Quote{}, q.ID).Error; err != nil {
		t.Fatalf("failed to soft delete quote: %v", err)
	}
}

// Words builds content with exactly n words.
func Words(n int) string {
	return strings.TrimSpace(strings.Repeat("word ", n))
}
