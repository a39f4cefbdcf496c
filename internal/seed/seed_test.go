package seed

import (
	"context"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"youquote/internal/domain"
	"youquote/internal/testutil"
)

func TestRun(t *testing.T) {
	db := testutil.SetupTestDB(t)
	opts := Options{
		AdminEmail:    "Admin@YouQuote.local",
		AdminPassword: "Adm1n!pass",
		Quotes:        30,
		Rand:          rand.New(rand.NewPCG(1, 2)),
	}

	res, err := Run(context.Background(), db, opts)
	require.NoError(t, err)
	assert.Equal(t, domain.RoleAdmin, res.Admin.Role)
	assert.Equal(t, "admin@youquote.local", res.Admin.Email)
	assert.Equal(t, 30, res.Quotes)

	var quotes []domain.Quote
	require.NoError(t, db.Preload("Categories").Preload("Tags").Find(&quotes).Error)
	require.Len(t, quotes, 30)
	for _, q := range quotes {
		assert.GreaterOrEqual(t, q.Popularity, int64(0))
		assert.LessOrEqual(t, q.Popularity, int64(100))
		assert.NotEmpty(t, q.Categories)
		assert.LessOrEqual(t, len(q.Categories), 2)
		assert.NotEmpty(t, q.Tags)
		assert.LessOrEqual(t, len(q.Tags), 3)
		assert.Positive(t, q.WordCount)
	}

	// second run reuses the admin and the taxonomy
	opts.Quotes = 0
	again, err := Run(context.Background(), db, opts)
	require.NoError(t, err)
	assert.Equal(t, res.Admin.ID, again.Admin.ID)

	var categories, users int64
	require.NoError(t, db.Model(&domain.Category{}).Count(&categories).Error)
	require.NoError(t, db.Model(&domain.User{}).Count(&users).Error)
	assert.Equal(t, int64(len(defaultCategories)), categories)
	assert.Equal(t, int64(1), users)
}

func TestRun_RequiresAdminCredentials(t *testing.T) {
	db := testutil.SetupTestDB(t)
	_, err := Run(context.Background(), db, Options{AdminEmail: "a@b.c"})
	assert.Error(t, err)
}
