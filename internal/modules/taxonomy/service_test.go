package taxonomy

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"youquote/internal/domain"
	"youquote/internal/repository"
	"youquote/internal/testutil"
)

func TestService_CRUD(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := NewService(repository.NewTaxonomyRepository(db, domain.TaxonomyTag))
	ctx := context.Background()

	created, err := svc.Create(ctx, "  courage ")
	require.NoError(t, err)
	assert.Equal(t, "courage", created.Name)

	got, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)

	updated, err := svc.Update(ctx, created.ID, "bravery")
	require.NoError(t, err)
	assert.Equal(t, "bravery", updated.Name)

	list, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	require.NoError(t, svc.Delete(ctx, created.ID))
	_, err = svc.Get(ctx, created.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, svc.Delete(ctx, created.ID), ErrNotFound)
	_, err = svc.Update(ctx, created.ID, "x")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_NameRules(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := NewService(repository.NewTaxonomyRepository(db, domain.TaxonomyCategory))
	ctx := context.Background()

	_, err := svc.Create(ctx, "   ")
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.Create(ctx, strings.Repeat("é", 256))
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.Create(ctx, strings.Repeat("é", 255))
	assert.NoError(t, err)
}

func TestService_DeleteKeepsQuotes(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := NewService(repository.NewTaxonomyRepository(db, domain.TaxonomyCategory))
	ctx := context.Background()

	author := testutil.CreateUser(t, db, "Author", domain.RoleAuthor)
	cat := testutil.CreateCategory(t, db, "Ephemeral")
	q := testutil.CreateQuote(t, db, author, "still here", testutil.WithCategories(cat))

	require.NoError(t, svc.Delete(ctx, cat.ID))

	var count int64
	require.NoError(t, db.Model(&domain.Quote{}).Where("id = ?", q.ID).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	var pivots int64
	require.NoError(t, db.Table("quote_categories").Where("quote_id = ?", q.ID).Count(&pivots).Error)
	assert.Zero(t, pivots)
}
