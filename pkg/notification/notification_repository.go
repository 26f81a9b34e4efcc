package notification

import (
	"Pickup-Order-System/domain"
	"Pickup-Order-System/entities"
	"context"
	"time"

	"gorm.io/gorm"
)

type (
	NotificationRepository interface {
		GetNotifications(ctx context.Context, recipientID string, unreadOnly bool, page int, limit int) ([]*entities.Notification, int64, error)
		CountUnread(ctx context.Context, recipientID string) (int64, error)
		GetNotificationByID(ctx context.Context, id string) (*entities.Notification, error)
		MarkRead(ctx context.Context, notification *entities.Notification) error
		MarkAllRead(ctx context.Context, recipientID string, readAt time.Time) (int64, error)
		DeleteNotification(ctx context.Context, id string) error
	}

	notificationRepository struct {
		db *gorm.DB
	}
)

func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &notificationRepository{db: db}
}

func orderSummary(db *gorm.DB) *gorm.DB {
	return db.Select("id", "status", "scheduled_date", "scheduled_time")
}

func (r *notificationRepository) forRecipient(ctx context.Context, recipientID string, unreadOnly bool) *gorm.DB {
	query := r.db.WithContext(ctx).
		Model(&entities.Notification{}).
		Where("recipient_id = ?", recipientID)
	if unreadOnly {
		query = query.Where("is_read = ?", false)
	}
	return query
}

func (r *notificationRepository) GetNotifications(ctx context.Context, recipientID string, unreadOnly bool, page int, limit int) ([]*entities.Notification, int64, error) {
	var (
		notifications []*entities.Notification
		count         int64
	)

	if err := r.forRecipient(ctx, recipientID, unreadOnly).Count(&count).Error; err != nil {
		return nil, 0, err
	}

	offset := domain.Offset(page, limit)
	if err := r.forRecipient(ctx, recipientID, unreadOnly).
		Preload("Order", orderSummary).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&notifications).Error; err != nil {
		return nil, 0, err
	}
	return notifications, count, nil
}

func (r *notificationRepository) CountUnread(ctx context.Context, recipientID string) (int64, error) {
	var count int64
	if err := r.forRecipient(ctx, recipientID, true).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *notificationRepository) GetNotificationByID(ctx context.Context, id string) (*entities.Notification, error) {
	var notification entities.Notification
	if err := r.db.WithContext(ctx).
		Preload("Order", orderSummary).
		Where("id = ?", id).
		First(&notification).Error; err != nil {
		return nil, err
	}
	return &notification, nil
}

func (r *notificationRepository) MarkRead(ctx context.Context, notification *entities.Notification) error {
	return r.db.WithContext(ctx).
		Model(&entities.Notification{}).
		Where("id = ?", notification.ID).
		Updates(map[string]any{
			"is_read": true,
			"read_at": notification.ReadAt,
		}).Error
}

func (r *notificationRepository) MarkAllRead(ctx context.Context, recipientID string, readAt time.Time) (int64, error) {
	res := r.forRecipient(ctx, recipientID, true).Updates(map[string]any{
		"is_read": true,
		"read_at": readAt,
	})
	return res.RowsAffected, res.Error
}

func (r *notificationRepository) DeleteNotification(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.Notification{}).Error
}
