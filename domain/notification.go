package domain

import "time"

var (
	MessageSuccessGetNotifications = "notifications retrieved successfully"
	MessageSuccessMarkRead         = "notification marked as read"
	MessageSuccessMarkAllRead      = "all notifications marked as read"
	MessageSuccessDeleteNotif      = "notification deleted"
	MessageSuccessUnreadCount      = "unread count retrieved successfully"

	MessageFailedGetNotifications = "failed to fetch notifications"
	MessageFailedMarkRead         = "failed to update notification"
	MessageFailedMarkAllRead      = "failed to update notifications"
	MessageFailedDeleteNotif      = "failed to delete notification"
	MessageFailedUnreadCount      = "failed to get unread count"

	ErrNotificationNotFound     = NewError(ErrNotFound, "notification not found")
	ErrNotificationAccessDenied = NewError(ErrForbidden, "not authorized")
)

const DefaultNotificationPageLimit = 20

type NotificationType string

const (
	NotificationOrderPlaced    NotificationType = "order_placed"
	NotificationOrderReady     NotificationType = "order_ready"
	NotificationOrderConfirmed NotificationType = "order_confirmed"
	NotificationOrderCancelled NotificationType = "order_cancelled"
)

type RecipientType string

const (
	RecipientAdmin RecipientType = "admin"
	RecipientUser  RecipientType = "user"
)

type (
	NotificationOrderSummary struct {
		ID            string      `json:"id"`
		OrderNumber   string      `json:"order_number"`
		Status        OrderStatus `json:"status"`
		ScheduledDate time.Time   `json:"scheduled_date"`
		ScheduledTime string      `json:"scheduled_time"`
	}

	NotificationResponse struct {
		ID            string                    `json:"id"`
		RecipientID   string                    `json:"recipient_id"`
		RecipientType RecipientType             `json:"recipient_type"`
		Type          NotificationType          `json:"type"`
		OrderID       string                    `json:"order_id"`
		Order         *NotificationOrderSummary `json:"order,omitempty"`
		Title         string                    `json:"title"`
		Message       string                    `json:"message"`
		IsRead        bool                      `json:"is_read"`
		ReadAt        *time.Time                `json:"read_at,omitempty"`
		CreatedAt     time.Time                 `json:"created_at"`
	}

	NotificationPageResponse struct {
		Notifications []NotificationResponse `json:"notifications"`
		UnreadCount   int64                  `json:"unread_count"`
		TotalPages    int64                  `json:"total_pages"`
		CurrentPage   int                    `json:"current_page"`
		Total         int64                  `json:"total"`
	}

	UnreadCountResponse struct {
		UnreadCount int64 `json:"unread_count"`
	}
)
