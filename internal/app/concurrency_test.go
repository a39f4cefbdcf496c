package app

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"youquote/internal/database"
	"youquote/internal/domain"
	"youquote/internal/modules/quote"
	"youquote/internal/modules/reaction"
	"youquote/internal/repository"
	"youquote/internal/testutil"
)

// setupFileDB opens a real on-disk database the same way cmd/api does.
func setupFileDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Connect(filepath.Join(t.TempDir(), "youquote.db"))
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, database.Migrate(db))
	return db
}

func runConcurrently(n int, fn func(i int) error) []error {
	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		errs []error
	)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if err := fn(i); err != nil {
				mu.Lock()
				errs = append(errs, err)
				mu.Unlock()
			}
		}(i)
	}
	wg.Wait()
	return errs
}

func TestConcurrentViews_FileDatabase(t *testing.T) {
	db := setupFileDB(t)
	quotes := repository.NewQuoteRepository(db)
	svc := quote.NewService(quotes,
		repository.NewTaxonomyRepository(db, domain.TaxonomyCategory),
		repository.NewTaxonomyRepository(db, domain.TaxonomyTag),
	)

	author := testutil.CreateUser(t, db, "Author", domain.RoleAuthor)
	q := testutil.CreateQuote(t, db, author, "Viewed by many at once")

	const views = 50
	errs := runConcurrently(views, func(int) error {
		_, err := svc.View(context.Background(), q.ID)
		return err
	})
	require.Empty(t, errs)

	stored, err := quotes.GetByID(context.Background(), q.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(views), stored.Popularity)
}

func TestConcurrentToggles_FileDatabase(t *testing.T) {
	db := setupFileDB(t)
	quotes := repository.NewQuoteRepository(db)
	svc := reaction.NewService(repository.NewReactionRepository(db), quotes)

	author := testutil.CreateUser(t, db, "Author", domain.RoleAuthor)
	q := testutil.CreateQuote(t, db, author, "Liked by many at once")

	const fans = 20
	users := make([]*domain.User, fans)
	for i := range users {
		users[i] = testutil.CreateUser(t, db, fmt.Sprintf("Fan %d", i), domain.RoleAuthor)
	}

	errs := runConcurrently(fans, func(i int) error {
		principal := domain.Principal{UserID: users[i].ID, Role: domain.RoleAuthor}
		_, err := svc.Toggle(context.Background(), domain.ReactionLike, principal, q.ID)
		return err
	})
	require.Empty(t, errs)

	var likes int64
	require.NoError(t, db.Model(&domain.Like{}).Where("quote_id = ?", q.ID).Count(&likes).Error)
	assert.Equal(t, int64(fans), likes)

	// an even number of toggles by one user leaves no favorite behind
	owner := domain.Principal{UserID: author.ID, Role: domain.RoleAuthor}
	errs = runConcurrently(10, func(int) error {
		_, err := svc.Toggle(context.Background(), domain.ReactionFavorite, owner, q.ID)
		return err
	})
	require.Empty(t, errs)

	var favorites int64
	require.NoError(t, db.Model(&domain.Favorite{}).Where("quote_id = ?", q.ID).Count(&favorites).Error)
	assert.Zero(t, favorites)
}
