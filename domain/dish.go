package domain

import "errors"

var (
	MessageSuccessProposeDishes = "dish proposals retrieved successfully"

	MessageFailedProposeDishes = "failed to retrieve dish proposals"

	ErrNoIngredients  = errors.New("no ingredients available for dish proposal")
	ErrProposalFailed = errors.New("dish proposal service request failed")
)

type (
	// Ingredient is one entry of the proposal payload. The JSON keys are
	// the Japanese field names the recipe service expects.
	Ingredient struct {
		Name       string `json:"食材"`
		ExpiryType string `json:"期限種類"`
		ExpiryDate string `json:"期限"`
	}

	// IngredientList is the full request body for the recipe service.
	// Proposing from an empty fridge is refused before the call is made.
	IngredientList struct {
		Ingredients []Ingredient `json:"食材リスト" validate:"required"`
		Purpose     string       `json:"目的"`
	}

	Dish struct {
		Dish        string   `json:"dish"`
		Ingredients []string `json:"ingredients"`
		Steps       []string `json:"steps"`
	}

	DishProposal struct {
		Dishes []Dish `json:"Dishes"`
	}

	ProposeDishesRequest struct {
		UserName string `json:"user_name" validate:"required"`
		Purpose  string `json:"purpose"`
	}
)
