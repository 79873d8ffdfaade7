package dish

import (
	"context"

	"expiry-tracker/domain"
	"expiry-tracker/pkg/product"
)

type (
	DishService interface {
		Propose(ctx context.Context, req domain.ProposeDishesRequest) (domain.DishProposal, error)
	}

	dishService struct {
		dishClient        DishClient
		productRepository product.ProductRepository
	}
)

func NewDishService(dishClient DishClient, productRepository product.ProductRepository) DishService {
	return &dishService{
		dishClient:        dishClient,
		productRepository: productRepository,
	}
}

// Propose builds the ingredient list from the user's current products and
// asks the recipe service for dish suggestions. An empty fridge is refused
// before any network call happens.
func (s *dishService) Propose(ctx context.Context, req domain.ProposeDishesRequest) (domain.DishProposal, error) {
	products, err := s.productRepository.FetchAll(ctx, req.UserName)
	if err != nil {
		return domain.DishProposal{}, err
	}

	if len(products) == 0 {
		return domain.DishProposal{}, domain.ErrNoIngredients
	}

	ingredients := make([]domain.Ingredient, 0, len(products))
	for _, item := range products {
		ingredients = append(ingredients, domain.Ingredient{
			Name:       item.ItemName,
			ExpiryType: item.ExpiryType,
			ExpiryDate: item.ExpiryDate,
		})
	}

	return s.dishClient.Propose(ctx, domain.IngredientList{
		Ingredients: ingredients,
		Purpose:     req.Purpose,
	})
}
