package handlers

import (
	"Pickup-Order-System/domain"
	"Pickup-Order-System/internal/api/presenters"
	"Pickup-Order-System/pkg/notification"

	"github.com/gofiber/fiber/v2"
)

type (
	NotificationHandler interface {
		GetMyNotifications(c *fiber.Ctx) error
		GetUnreadCount(c *fiber.Ctx) error
		MarkAsRead(c *fiber.Ctx) error
		MarkAllAsRead(c *fiber.Ctx) error
		DeleteNotification(c *fiber.Ctx) error
	}

	notificationHandler struct {
		notificationService notification.NotificationService
	}
)

func NewNotificationHandler(notificationService notification.NotificationService) NotificationHandler {
	return &notificationHandler{notificationService: notificationService}
}

func (h *notificationHandler) GetMyNotifications(c *fiber.Ctx) error {
	actor, err := actorOf(c)
	if err != nil {
		return presenters.ServiceError(c, domain.MessageFailedGetToken, err)
	}
	page, limit := pagination(c)
	unreadOnly := c.QueryBool("unreadOnly", c.QueryBool("unread_only", false))

	res, err := h.notificationService.GetMyNotifications(c.UserContext(), actor, unreadOnly, page, limit)
	if err != nil {
		return presenters.ServiceError(c, domain.MessageFailedGetNotifications, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetNotifications)
}

func (h *notificationHandler) GetUnreadCount(c *fiber.Ctx) error {
	actor, err := actorOf(c)
	if err != nil {
		return presenters.ServiceError(c, domain.MessageFailedGetToken, err)
	}

	res, err := h.notificationService.GetUnreadCount(c.UserContext(), actor)
	if err != nil {
		return presenters.ServiceError(c, domain.MessageFailedUnreadCount, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUnreadCount)
}

func (h *notificationHandler) MarkAsRead(c *fiber.Ctx) error {
	actor, err := actorOf(c)
	if err != nil {
		return presenters.ServiceError(c, domain.MessageFailedGetToken, err)
	}

	res, err := h.notificationService.MarkAsRead(c.UserContext(), actor, c.Params("id"))
	if err != nil {
		return presenters.ServiceError(c, domain.MessageFailedMarkRead, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessMarkRead)
}

func (h *notificationHandler) MarkAllAsRead(c *fiber.Ctx) error {
	actor, err := actorOf(c)
	if err != nil {
		return presenters.ServiceError(c, domain.MessageFailedGetToken, err)
	}

	updated, err := h.notificationService.MarkAllAsRead(c.UserContext(), actor)
	if err != nil {
		return presenters.ServiceError(c, domain.MessageFailedMarkAllRead, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{"updated": updated}, fiber.StatusOK, domain.MessageSuccessMarkAllRead)
}

func (h *notificationHandler) DeleteNotification(c *fiber.Ctx) error {
	actor, err := actorOf(c)
	if err != nil {
		return presenters.ServiceError(c, domain.MessageFailedGetToken, err)
	}

	if err := h.notificationService.DeleteNotification(c.UserContext(), actor, c.Params("id")); err != nil {
		return presenters.ServiceError(c, domain.MessageFailedDeleteNotif, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteNotif)
}
