package handlers

import (
	"errors"
	"strconv"

	"expiry-tracker/domain"
	"expiry-tracker/internal/api/presenters"
	"expiry-tracker/pkg/product"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	ProductHandler interface {
		RegisterProducts(c *fiber.Ctx) error
		GetProducts(c *fiber.Ctx) error
		DeleteProduct(c *fiber.Ctx) error
		GetProductImage(c *fiber.Ctx) error
	}

	productHandler struct {
		productService product.ProductService
		validator      *validator.Validate
	}
)

func NewProductHandler(productService product.ProductService, validator *validator.Validate) ProductHandler {
	return &productHandler{
		productService: productService,
		validator:      validator,
	}
}

func (h *productHandler) RegisterProducts(c *fiber.Ctx) error {
	req := new(domain.RegisterProductsRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedRegisterProducts, err)
	}

	res, err := h.productService.Register(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedRegisterProducts, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessRegisterProducts)
}

func (h *productHandler) GetProducts(c *fiber.Ctx) error {
	userName := c.Query("user", domain.DefaultUserName)

	items, err := h.productService.List(c.Context(), userName)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetProducts, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"user":  userName,
		"items": items,
	}, fiber.StatusOK, domain.MessageSuccessGetProducts)
}

func (h *productHandler) DeleteProduct(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteProduct, domain.ErrInvalidProductID)
	}

	if err := h.productService.Delete(c.Context(), uint(id)); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteProduct, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteProduct)
}

func (h *productHandler) GetProductImage(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetProductImage, domain.ErrInvalidProductID)
	}

	path, err := h.productService.ImagePath(uint(id))
	if err != nil {
		if errors.Is(err, domain.ErrProductImageMissing) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedGetProductImage, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetProductImage, err)
	}

	return c.SendFile(path)
}
