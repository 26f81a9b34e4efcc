package handlers

import (
	"Pickup-Order-System/domain"
	"Pickup-Order-System/internal/api/presenters"
	"Pickup-Order-System/pkg/order"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	OrderHandler interface {
		CreateOrder(c *fiber.Ctx) error
		GetMyOrders(c *fiber.Ctx) error
		GetAllOrders(c *fiber.Ctx) error
		GetOrderStats(c *fiber.Ctx) error
		GetOrder(c *fiber.Ctx) error
		UpdateOrderStatus(c *fiber.Ctx) error
		CancelOrder(c *fiber.Ctx) error
	}

	orderHandler struct {
		orderService order.OrderService
		validator    *validator.Validate
	}
)

func NewOrderHandler(orderService order.OrderService, validator *validator.Validate) OrderHandler {
	return &orderHandler{
		orderService: orderService,
		validator:    validator,
	}
}

func (h *orderHandler) CreateOrder(c *fiber.Ctx) error {
	actor, err := actorOf(c)
	if err != nil {
		return presenters.ServiceError(c, domain.MessageFailedGetToken, err)
	}
	req := new(domain.CreateOrderRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateOrder, err)
	}

	res, err := h.orderService.CreateOrder(c.UserContext(), actor, *req)
	if err != nil {
		return presenters.ServiceError(c, domain.MessageFailedCreateOrder, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateOrder)
}

func (h *orderHandler) GetMyOrders(c *fiber.Ctx) error {
	actor, err := actorOf(c)
	if err != nil {
		return presenters.ServiceError(c, domain.MessageFailedGetToken, err)
	}

	res, err := h.orderService.GetMyOrders(c.UserContext(), actor, c.Query("status"))
	if err != nil {
		return presenters.ServiceError(c, domain.MessageFailedGetOrders, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetOrders)
}

func (h *orderHandler) GetAllOrders(c *fiber.Ctx) error {
	actor, err := actorOf(c)
	if err != nil {
		return presenters.ServiceError(c, domain.MessageFailedGetToken, err)
	}
	page, limit := pagination(c)

	res, err := h.orderService.GetAllOrders(c.UserContext(), actor, c.Query("status"), c.Query("date"), page, limit)
	if err != nil {
		return presenters.ServiceError(c, domain.MessageFailedGetOrders, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetOrders)
}

func (h *orderHandler) GetOrderStats(c *fiber.Ctx) error {
	actor, err := actorOf(c)
	if err != nil {
		return presenters.ServiceError(c, domain.MessageFailedGetToken, err)
	}

	res, err := h.orderService.GetOrderStats(c.UserContext(), actor)
	if err != nil {
		return presenters.ServiceError(c, domain.MessageFailedGetOrderStats, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetOrderStats)
}

func (h *orderHandler) GetOrder(c *fiber.Ctx) error {
	actor, err := actorOf(c)
	if err != nil {
		return presenters.ServiceError(c, domain.MessageFailedGetToken, err)
	}

	res, err := h.orderService.GetOrderByID(c.UserContext(), actor, c.Params("id"))
	if err != nil {
		return presenters.ServiceError(c, domain.MessageFailedGetOrder, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetOrder)
}

func (h *orderHandler) UpdateOrderStatus(c *fiber.Ctx) error {
	actor, err := actorOf(c)
	if err != nil {
		return presenters.ServiceError(c, domain.MessageFailedGetToken, err)
	}
	req := new(domain.UpdateOrderStatusRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateOrderStatus, err)
	}

	res, err := h.orderService.UpdateOrderStatus(c.UserContext(), actor, c.Params("id"), *req)
	if err != nil {
		return presenters.ServiceError(c, domain.MessageFailedUpdateOrderStatus, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateOrderStatus)
}

func (h *orderHandler) CancelOrder(c *fiber.Ctx) error {
	actor, err := actorOf(c)
	if err != nil {
		return presenters.ServiceError(c, domain.MessageFailedGetToken, err)
	}

	res, err := h.orderService.CancelOrder(c.UserContext(), actor, c.Params("id"))
	if err != nil {
		return presenters.ServiceError(c, domain.MessageFailedCancelOrder, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessCancelOrder)
}
