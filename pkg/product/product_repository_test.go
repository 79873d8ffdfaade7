package product

import (
	"context"
	"path/filepath"
	"testing"

	"expiry-tracker/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	require.NoError(t, err)
	return db
}

func newTestRepository(t *testing.T) ProductRepository {
	t.Helper()
	repo := NewProductRepository(newTestDB(t))
	require.NoError(t, repo.EnsureSchema(context.Background()))
	return repo
}

func TestEnsureSchemaIdempotent(t *testing.T) {
	repo := NewProductRepository(newTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.EnsureSchema(ctx))
	require.NoError(t, repo.EnsureSchema(ctx))
}

func TestInsertAssignsID(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	first := &entities.Product{UserName: "guest", ItemName: "Milk", ExpiryType: "consumption limit", ExpiryDate: "2024-01-01"}
	require.NoError(t, repo.Insert(ctx, first))
	assert.NotZero(t, first.ID)

	second := &entities.Product{UserName: "guest", ItemName: "Eggs", ExpiryType: "best-before date", ExpiryDate: "2024-02-01"}
	require.NoError(t, repo.Insert(ctx, second))
	assert.Greater(t, second.ID, first.ID)
}

func TestInsertAcceptsUnvalidatedFields(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	row := &entities.Product{UserName: "guest", ItemName: "", ExpiryType: "", ExpiryDate: "not-a-date"}
	require.NoError(t, repo.Insert(ctx, row))

	rows, err := repo.FetchAll(ctx, "guest")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "not-a-date", rows[0].ExpiryDate)
}

func TestFetchAllOrdersByExpiryDateString(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	dates := []string{"2025-03-10", "2024-12-31", "2025-01-05"}
	for _, d := range dates {
		require.NoError(t, repo.Insert(ctx, &entities.Product{UserName: "guest", ItemName: "item", ExpiryDate: d}))
	}

	rows, err := repo.FetchAll(ctx, "guest")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "2024-12-31", rows[0].ExpiryDate)
	assert.Equal(t, "2025-01-05", rows[1].ExpiryDate)
	assert.Equal(t, "2025-03-10", rows[2].ExpiryDate)
}

func TestFetchAllScopedByUser(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.Insert(ctx, &entities.Product{UserName: "guest", ItemName: "Milk", ExpiryDate: "2024-01-01"}))
	require.NoError(t, repo.Insert(ctx, &entities.Product{UserName: "alice", ItemName: "Tofu", ExpiryDate: "2024-01-02"}))

	rows, err := repo.FetchAll(ctx, "guest")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Milk", rows[0].ItemName)

	rows, err = repo.FetchAll(ctx, "nobody")
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestDeleteIdempotent(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	row := &entities.Product{UserName: "guest", ItemName: "Milk", ExpiryDate: "2024-01-01"}
	require.NoError(t, repo.Insert(ctx, row))

	require.NoError(t, repo.Delete(ctx, row.ID))
	rows, err := repo.FetchAll(ctx, "guest")
	require.NoError(t, err)
	assert.Empty(t, rows)

	// deleting the same id again is a no-op, not an error
	require.NoError(t, repo.Delete(ctx, row.ID))
	// neither is deleting an id that never existed
	require.NoError(t, repo.Delete(ctx, 9999))
}
