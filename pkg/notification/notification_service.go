package notification

import (
	"Pickup-Order-System/domain"
	"Pickup-Order-System/entities"
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	NotificationService interface {
		GetMyNotifications(ctx context.Context, actor domain.Actor, unreadOnly bool, page int, limit int) (domain.NotificationPageResponse, error)
		MarkAsRead(ctx context.Context, actor domain.Actor, id string) (domain.NotificationResponse, error)
		MarkAllAsRead(ctx context.Context, actor domain.Actor) (int64, error)
		DeleteNotification(ctx context.Context, actor domain.Actor, id string) error
		GetUnreadCount(ctx context.Context, actor domain.Actor) (domain.UnreadCountResponse, error)
	}

	notificationService struct {
		notificationRepository NotificationRepository
	}
)

func NewNotificationService(notificationRepository NotificationRepository) NotificationService {
	return &notificationService{notificationRepository: notificationRepository}
}

func ToNotificationResponse(notification *entities.Notification) domain.NotificationResponse {
	res := domain.NotificationResponse{
		ID:            notification.ID.String(),
		RecipientID:   notification.RecipientID.String(),
		RecipientType: notification.RecipientType,
		Type:          notification.Type,
		OrderID:       notification.OrderID.String(),
		Title:         notification.Title,
		Message:       notification.Message,
		IsRead:        notification.IsRead,
		ReadAt:        notification.ReadAt,
		CreatedAt:     notification.CreatedAt,
	}
	if order := notification.Order; order != nil {
		res.Order = &domain.NotificationOrderSummary{
			ID:            order.ID.String(),
			OrderNumber:   order.OrderNumber(),
			Status:        order.Status,
			ScheduledDate: order.ScheduledDate,
			ScheduledTime: order.ScheduledTime,
		}
	}
	return res
}

func (s *notificationService) GetMyNotifications(ctx context.Context, actor domain.Actor, unreadOnly bool, page int, limit int) (domain.NotificationPageResponse, error) {
	page, limit = domain.Paginate(page, limit, domain.DefaultNotificationPageLimit)

	notifications, total, err := s.notificationRepository.GetNotifications(ctx, actor.UserID, unreadOnly, page, limit)
	if err != nil {
		return domain.NotificationPageResponse{}, domain.Unexpected(err)
	}
	unread, err := s.notificationRepository.CountUnread(ctx, actor.UserID)
	if err != nil {
		return domain.NotificationPageResponse{}, domain.Unexpected(err)
	}

	res := domain.NotificationPageResponse{
		Notifications: make([]domain.NotificationResponse, 0, len(notifications)),
		UnreadCount:   unread,
		TotalPages:    domain.TotalPages(total, limit),
		CurrentPage:   page,
		Total:         total,
	}
	for _, notification := range notifications {
		res.Notifications = append(res.Notifications, ToNotificationResponse(notification))
	}
	return res, nil
}

// owned loads the notification and checks that actor is its recipient.
func (s *notificationService) owned(ctx context.Context, actor domain.Actor, id string) (*entities.Notification, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, domain.ErrNotificationNotFound
	}
	notification, err := s.notificationRepository.GetNotificationByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotificationNotFound
		}
		return nil, domain.Unexpected(err)
	}
	if notification.RecipientID.String() != actor.UserID {
		return nil, domain.ErrNotificationAccessDenied
	}
	return notification, nil
}

func (s *notificationService) MarkAsRead(ctx context.Context, actor domain.Actor, id string) (domain.NotificationResponse, error) {
	notification, err := s.owned(ctx, actor, id)
	if err != nil {
		return domain.NotificationResponse{}, err
	}

	now := time.Now()
	notification.IsRead = true
	notification.ReadAt = &now
	if err := s.notificationRepository.MarkRead(ctx, notification); err != nil {
		return domain.NotificationResponse{}, domain.Unexpected(err)
	}
	return ToNotificationResponse(notification), nil
}

func (s *notificationService) MarkAllAsRead(ctx context.Context, actor domain.Actor) (int64, error) {
	updated, err := s.notificationRepository.MarkAllRead(ctx, actor.UserID, time.Now())
	if err != nil {
		return 0, domain.Unexpected(err)
	}
	return updated, nil
}

func (s *notificationService) DeleteNotification(ctx context.Context, actor domain.Actor, id string) error {
	if _, err := s.owned(ctx, actor, id); err != nil {
		return err
	}
	if err := s.notificationRepository.DeleteNotification(ctx, id); err != nil {
		return domain.Unexpected(err)
	}
	return nil
}

func (s *notificationService) GetUnreadCount(ctx context.Context, actor domain.Actor) (domain.UnreadCountResponse, error) {
	count, err := s.notificationRepository.CountUnread(ctx, actor.UserID)
	if err != nil {
		return domain.UnreadCountResponse{}, domain.Unexpected(err)
	}
	return domain.UnreadCountResponse{UnreadCount: count}, nil
}
