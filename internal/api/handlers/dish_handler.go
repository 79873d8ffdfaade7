package handlers

import (
	"errors"

	"expiry-tracker/domain"
	"expiry-tracker/internal/api/presenters"
	"expiry-tracker/pkg/dish"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	DishHandler interface {
		ProposeDishes(c *fiber.Ctx) error
	}

	dishHandler struct {
		dishService dish.DishService
		validator   *validator.Validate
	}
)

func NewDishHandler(dishService dish.DishService, validator *validator.Validate) DishHandler {
	return &dishHandler{
		dishService: dishService,
		validator:   validator,
	}
}

func (h *dishHandler) ProposeDishes(c *fiber.Ctx) error {
	req := new(domain.ProposeDishesRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedProposeDishes, err)
	}

	proposal, err := h.dishService.Propose(c.Context(), *req)
	if err != nil {
		if errors.Is(err, domain.ErrNoIngredients) {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedProposeDishes, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadGateway, domain.MessageFailedProposeDishes, err)
	}

	return presenters.SuccessResponse(c, proposal, fiber.StatusOK, domain.MessageSuccessProposeDishes)
}
