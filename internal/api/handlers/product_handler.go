package handlers

import (
	"Pickup-Order-System/domain"
	"Pickup-Order-System/internal/api/presenters"
	"Pickup-Order-System/pkg/product"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	ProductHandler interface {
		CreateProduct(c *fiber.Ctx) error
		GetProducts(c *fiber.Ctx) error
		GetProduct(c *fiber.Ctx) error
		UpdateProduct(c *fiber.Ctx) error
		DeleteProduct(c *fiber.Ctx) error
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

func (h *productHandler) CreateProduct(c *fiber.Ctx) error {
	req := new(domain.CreateProductRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if file, err := c.FormFile("image"); err == nil {
		req.Image = file
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateProduct, err)
	}

	res, err := h.productService.CreateProduct(c.UserContext(), *req)
	if err != nil {
		return presenters.ServiceError(c, domain.MessageFailedCreateProduct, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateProduct)
}

// GetProducts lists the catalog, optionally narrowed with ?category=<id>.
func (h *productHandler) GetProducts(c *fiber.Ctx) error {
	res, err := h.productService.GetProducts(c.UserContext(), c.Query("category"))
	if err != nil {
		return presenters.ServiceError(c, domain.MessageFailedGetProducts, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetProducts)
}

func (h *productHandler) GetProduct(c *fiber.Ctx) error {
	res, err := h.productService.GetProductByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return presenters.ServiceError(c, domain.MessageFailedGetProduct, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetProduct)
}

func (h *productHandler) UpdateProduct(c *fiber.Ctx) error {
	req := new(domain.UpdateProductRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if file, err := c.FormFile("image"); err == nil {
		req.Image = file
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateProduct, err)
	}

	res, err := h.productService.UpdateProduct(c.UserContext(), c.Params("id"), *req)
	if err != nil {
		return presenters.ServiceError(c, domain.MessageFailedUpdateProduct, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateProduct)
}

func (h *productHandler) DeleteProduct(c *fiber.Ctx) error {
	if err := h.productService.DeleteProduct(c.UserContext(), c.Params("id")); err != nil {
		return presenters.ServiceError(c, domain.MessageFailedDeleteProduct, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteProduct)
}
