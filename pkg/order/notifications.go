package order

import (
	"Pickup-Order-System/domain"
	"Pickup-Order-System/entities"
	"Pickup-Order-System/internal/utils"
	"fmt"
	"html"

	"github.com/google/uuid"
)

const messageDateLayout = "02 Jan 2006"

func newNotification(order *entities.Order, recipientID uuid.UUID, recipientType domain.RecipientType, kind domain.NotificationType, title, message string) *entities.Notification {
	return &entities.Notification{
		ID:            uuid.New(),
		RecipientID:   recipientID,
		RecipientType: recipientType,
		Type:          kind,
		OrderID:       order.ID,
		Title:         title,
		Message:       message,
	}
}

func orderPlacedMessage(order *entities.Order) string {
	return fmt.Sprintf("New order %s from %s scheduled for %s at %s",
		order.OrderNumber(),
		order.ContactName,
		order.ScheduledDate.In(utils.Location()).Format(messageDateLayout),
		order.ScheduledTime,
	)
}

func orderPlacedNotifications(order *entities.Order, admins []*entities.User) []*entities.Notification {
	notifications := make([]*entities.Notification, 0, len(admins))
	for _, admin := range admins {
		notifications = append(notifications, newNotification(order, admin.ID, domain.RecipientAdmin,
			domain.NotificationOrderPlaced, "New Order Received", orderPlacedMessage(order)))
	}
	return notifications
}

func orderReadyNotification(order *entities.Order) *entities.Notification {
	return newNotification(order, order.UserID, domain.RecipientUser, domain.NotificationOrderReady,
		"Order Ready for Pickup", fmt.Sprintf("Your order %s is ready for pickup!", order.OrderNumber()))
}

func cancelledByAdminNotification(order *entities.Order) *entities.Notification {
	return newNotification(order, order.UserID, domain.RecipientUser, domain.NotificationOrderCancelled,
		"Order Cancelled", fmt.Sprintf("Your order %s has been cancelled by admin", order.OrderNumber()))
}

func cancelledByCustomerNotifications(order *entities.Order, admins []*entities.User) []*entities.Notification {
	notifications := make([]*entities.Notification, 0, len(admins))
	for _, admin := range admins {
		notifications = append(notifications, newNotification(order, admin.ID, domain.RecipientAdmin,
			domain.NotificationOrderCancelled, "Order Cancelled",
			fmt.Sprintf("Order %s has been cancelled by customer", order.OrderNumber())))
	}
	return notifications
}

func shopMailBody(order *entities.Order) string {
	esc := html.EscapeString
	body := fmt.Sprintf("<p>%s</p><p>Contact: %s (%s)</p><ul>", esc(orderPlacedMessage(order)), esc(order.ContactName), esc(order.ContactPhone))
	for _, item := range order.Items {
		body += fmt.Sprintf("<li>%s: %s = ₹%s</li>", esc(item.ProductName), esc(item.QuantityText), item.TotalPrice.StringFixed(2))
	}
	body += fmt.Sprintf("</ul><p>Total: ₹%s</p>", order.TotalAmount.StringFixed(2))
	if order.SpecialInstructions != "" {
		body += fmt.Sprintf("<p>Note: %s</p>", esc(order.SpecialInstructions))
	}
	return body
}
