package seed

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"youquote/internal/domain"
	"youquote/internal/pkg/textutil"
)

var (
	defaultCategories = []string{"Inspiration", "Science", "Literature", "Philosophy", "Humor"}
	defaultTags       = []string{"life", "love", "wisdom", "work", "courage", "time", "change"}

	sentences = []string{
		"The best way to predict the future is to invent it.",
		"Simplicity is prerequisite for reliability.",
		"Every great journey starts with a single careful step.",
		"Curiosity keeps moving us forward.",
		"What we know is a drop and what we do not know is an ocean.",
		"Patience is bitter but its fruit is sweet.",
		"A person who never made a mistake never tried anything new.",
		"Well done is better than well said.",
		"Knowledge speaks but wisdom listens.",
		"The only way out is through.",
	}
)

type Options struct {
	AdminName     string
	AdminEmail    string
	AdminPassword string
	Quotes        int
	// Rand drives every random choice. Nil means a time-seeded source.
	Rand *rand.Rand
}

type Result struct {
	Admin      *domain.User
	Categories int
	Tags       int
	Quotes     int
	Validated  int
}

// Run fills an empty database with an admin account, a base taxonomy and sample quotes.
// Existing users, categories and tags are reused, so it is safe to run twice.
func Run(ctx context.Context, db *gorm.DB, opts Options) (*Result, error) {
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	res := &Result{}
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		admin, err := ensureAdmin(tx, opts)
		if err != nil {
			return err
		}
		res.Admin = admin

		categories := make([]domain.Category, 0, len(defaultCategories))
		for _, name := range defaultCategories {
			c := domain.Category{Name: name}
			if err := tx.Where("name = ?", name).FirstOrCreate(&c).Error; err != nil {
				return fmt.Errorf("seed category %q: %w", name, err)
			}
			categories = append(categories, c)
		}
		res.Categories = len(categories)

		tags := make([]domain.Tag, 0, len(defaultTags))
		for _, name := range defaultTags {
			t := domain.Tag{Name: name}
			if err := tx.Where("name = ?", name).FirstOrCreate(&t).Error; err != nil {
				return fmt.Errorf("seed tag %q: %w", name, err)
			}
			tags = append(tags, t)
		}
		res.Tags = len(tags)

		for i := 0; i < opts.Quotes; i++ {
			content := paragraph(rng)
			q := domain.Quote{
				Content:     content,
				UserID:      admin.ID,
				WordCount:   textutil.WordCount(content),
				IsValidated: rng.IntN(100) < 70,
				Popularity:  rng.Int64N(101),
				Categories:  pick(rng, categories, 1+rng.IntN(2)),
				Tags:        pick(rng, tags, 1+rng.IntN(3)),
			}
			if err := tx.Create(&q).Error; err != nil {
				return fmt.Errorf("seed quote: %w", err)
			}
			res.Quotes++
			if q.IsValidated {
				res.Validated++
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Info().
		Int64("admin_id", res.Admin.ID).
		Int("quotes", res.Quotes).
		Int("validated", res.Validated).
		Msg("database seeded")
	return res, nil
}

func ensureAdmin(tx *gorm.DB, opts Options) (*domain.User, error) {
	email := strings.ToLower(strings.TrimSpace(opts.AdminEmail))
	if email == "" || opts.AdminPassword == "" {
		return nil, fmt.Errorf("admin email and password are required")
	}

	var admin domain.User
	err := tx.Where("email = ?", email).Take(&admin).Error
	if err == nil {
		if admin.Role != domain.RoleAdmin {
			if err := tx.Model(&admin).Update("role", domain.RoleAdmin).Error; err != nil {
				return nil, err
			}
		}
		return &admin, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(opts.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	admin = domain.User{
		Name:         opts.AdminName,
		Email:        email,
		PasswordHash: string(hash),
		Role:         domain.RoleAdmin,
	}
	if admin.Name == "" {
		admin.Name = "Admin"
	}
	if err := tx.Create(&admin).Error; err != nil {
		return nil, fmt.Errorf("seed admin: %w", err)
	}
	return &admin, nil
}

func paragraph(rng *rand.Rand) string {
	n := 2 + rng.IntN(4)
	parts := make([]string, n)
	for i := range parts {
		parts[i] = sentences[rng.IntN(len(sentences))]
	}
	return strings.Join(parts, " ")
}

// pick returns n distinct elements in random order.
func pick[T any](rng *rand.Rand, from []T, n int) []T {
	if n > len(from) {
		n = len(from)
	}
	out := make([]T, 0, n)
	for _, i := range rng.Perm(len(from))[:n] {
		out = append(out, from[i])
	}
	return out
}
