package handlers

import (
	"Pickup-Order-System/domain"
	"Pickup-Order-System/internal/api/presenters"
	"Pickup-Order-System/pkg/category"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	CategoryHandler interface {
		CreateCategory(c *fiber.Ctx) error
		GetCategories(c *fiber.Ctx) error
		GetCategory(c *fiber.Ctx) error
		UpdateCategory(c *fiber.Ctx) error
		DeleteCategory(c *fiber.Ctx) error
	}

	categoryHandler struct {
		categoryService category.CategoryService
		validator       *validator.Validate
	}
)

func NewCategoryHandler(categoryService category.CategoryService, validator *validator.Validate) CategoryHandler {
	return &categoryHandler{
		categoryService: categoryService,
		validator:       validator,
	}
}

func (h *categoryHandler) CreateCategory(c *fiber.Ctx) error {
	req := new(domain.CreateCategoryRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if file, err := c.FormFile("image"); err == nil {
		req.Image = file
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateCategory, err)
	}

	res, err := h.categoryService.CreateCategory(c.UserContext(), *req)
	if err != nil {
		return presenters.ServiceError(c, domain.MessageFailedCreateCategory, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateCategory)
}

func (h *categoryHandler) GetCategories(c *fiber.Ctx) error {
	res, err := h.categoryService.GetCategories(c.UserContext())
	if err != nil {
		return presenters.ServiceError(c, domain.MessageFailedGetCategories, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetCategories)
}

func (h *categoryHandler) GetCategory(c *fiber.Ctx) error {
	res, err := h.categoryService.GetCategoryByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return presenters.ServiceError(c, domain.MessageFailedGetCategory, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetCategory)
}

func (h *categoryHandler) UpdateCategory(c *fiber.Ctx) error {
	req := new(domain.UpdateCategoryRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if file, err := c.FormFile("image"); err == nil {
		req.Image = file
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateCategory, err)
	}

	res, err := h.categoryService.UpdateCategory(c.UserContext(), c.Params("id"), *req)
	if err != nil {
		return presenters.ServiceError(c, domain.MessageFailedUpdateCategory, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateCategory)
}

func (h *categoryHandler) DeleteCategory(c *fiber.Ctx) error {
	if err := h.categoryService.DeleteCategory(c.UserContext(), c.Params("id")); err != nil {
		return presenters.ServiceError(c, domain.MessageFailedDeleteCategory, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteCategory)
}
