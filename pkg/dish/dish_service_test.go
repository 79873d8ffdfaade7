package dish

import (
	"context"
	"path/filepath"
	"testing"

	"expiry-tracker/domain"
	"expiry-tracker/entities"
	"expiry-tracker/pkg/product"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type captureDishClient struct {
	gotPayload domain.IngredientList
	proposal   domain.DishProposal
	err        error
}

func (c *captureDishClient) Propose(ctx context.Context, payload domain.IngredientList) (domain.DishProposal, error) {
	c.gotPayload = payload
	return c.proposal, c.err
}

func newTestProductRepository(t *testing.T) product.ProductRepository {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	require.NoError(t, err)
	repo := product.NewProductRepository(db)
	require.NoError(t, repo.EnsureSchema(context.Background()))
	return repo
}

func TestProposeBuildsIngredientsFromProducts(t *testing.T) {
	repo := newTestProductRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.Insert(ctx, &entities.Product{
		UserName: "guest", ItemName: "Milk",
		ExpiryType: domain.ExpiryTypeConsumptionLimit, ExpiryDate: "2024-05-01",
	}))
	require.NoError(t, repo.Insert(ctx, &entities.Product{
		UserName: "guest", ItemName: "Carrot",
		ExpiryType: domain.ExpiryTypeBestBefore, ExpiryDate: "2024-04-01",
	}))
	// another user's product must not leak into the payload
	require.NoError(t, repo.Insert(ctx, &entities.Product{
		UserName: "alice", ItemName: "Tofu", ExpiryDate: "2024-04-15",
	}))

	client := &captureDishClient{proposal: domain.DishProposal{Dishes: []domain.Dish{{Dish: "Stew"}}}}
	svc := NewDishService(client, repo)

	proposal, err := svc.Propose(ctx, domain.ProposeDishesRequest{UserName: "guest", Purpose: "夕食"})
	require.NoError(t, err)
	require.Len(t, proposal.Dishes, 1)

	require.Len(t, client.gotPayload.Ingredients, 2)
	// rows arrive in expiry-date order
	assert.Equal(t, "Carrot", client.gotPayload.Ingredients[0].Name)
	assert.Equal(t, "Milk", client.gotPayload.Ingredients[1].Name)
	assert.Equal(t, "夕食", client.gotPayload.Purpose)
}

func TestProposeEmptyFridge(t *testing.T) {
	repo := newTestProductRepository(t)
	svc := NewDishService(&captureDishClient{}, repo)

	_, err := svc.Propose(context.Background(), domain.ProposeDishesRequest{UserName: "guest", Purpose: "夕食"})
	assert.ErrorIs(t, err, domain.ErrNoIngredients)
}
