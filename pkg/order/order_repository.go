package order

import (
	"Pickup-Order-System/domain"
	"Pickup-Order-System/entities"
	"Pickup-Order-System/internal/utils"
	"context"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type (
	OrderRepository interface {
		CreateOrder(ctx context.Context, order *entities.Order, notifications []*entities.Notification) error
		GetOrderByID(ctx context.Context, id string) (*entities.Order, error)
		GetOrdersByUser(ctx context.Context, userID string, status domain.OrderStatus) ([]*entities.Order, error)
		GetOrders(ctx context.Context, filter domain.OrderFilter) ([]*entities.Order, int64, error)
		TransitionOrder(ctx context.Context, order *entities.Order, from domain.OrderStatus, notifications []*entities.Notification) error
		CountOrdersByStatus(ctx context.Context) (map[domain.OrderStatus]int64, error)
		CountOrdersScheduledSince(ctx context.Context, since time.Time) (int64, error)
		SumRevenue(ctx context.Context) (decimal.Decimal, error)
		GetRecentOrders(ctx context.Context, limit int) ([]*entities.Order, error)
	}

	orderRepository struct {
		db *gorm.DB
	}
)

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{db: db}
}

func itemsByPosition(db *gorm.DB) *gorm.DB {
	return db.Order("position ASC")
}

func (r *orderRepository) withDetails(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("User").
		Preload("Items", itemsByPosition).
		Preload("Items.Product")
}

// CreateOrder writes the order, its items and the admin notifications in one transaction.
func (r *orderRepository) CreateOrder(ctx context.Context, order *entities.Order, notifications []*entities.Notification) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("User").Create(order).Error; err != nil {
			return err
		}
		if len(notifications) > 0 {
			if err := tx.Omit("Order").Create(&notifications).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *orderRepository) GetOrderByID(ctx context.Context, id string) (*entities.Order, error) {
	var order entities.Order
	if err := r.withDetails(ctx).Where("id = ?", id).First(&order).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) GetOrdersByUser(ctx context.Context, userID string, status domain.OrderStatus) ([]*entities.Order, error) {
	var orders []*entities.Order
	query := r.db.WithContext(ctx).
		Preload("Items", itemsByPosition).
		Preload("Items.Product").
		Where("user_id = ?", userID)
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if err := query.Order("created_at DESC").Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *orderRepository) filtered(ctx context.Context, filter domain.OrderFilter) *gorm.DB {
	query := r.db.WithContext(ctx).Model(&entities.Order{})
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Date != nil {
		start, end := utils.DayBounds(*filter.Date)
		query = query.Where("scheduled_date BETWEEN ? AND ?", start, end)
	}
	return query
}

func (r *orderRepository) GetOrders(ctx context.Context, filter domain.OrderFilter) ([]*entities.Order, int64, error) {
	var (
		orders []*entities.Order
		count  int64
	)

	if err := r.filtered(ctx, filter).Count(&count).Error; err != nil {
		return nil, 0, err
	}

	offset := domain.Offset(filter.Page, filter.Limit)
	if err := r.filtered(ctx, filter).
		Preload("User").
		Preload("Items", itemsByPosition).
		Preload("Items.Product").
		Order("created_at DESC").
		Offset(offset).
		Limit(filter.Limit).
		Find(&orders).Error; err != nil {
		return nil, 0, err
	}
	return orders, count, nil
}

// TransitionOrder persists the lifecycle fields of order only if its stored status is still from,
// together with any notifications the transition produces.
func (r *orderRepository) TransitionOrder(ctx context.Context, order *entities.Order, from domain.OrderStatus, notifications []*entities.Notification) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&entities.Order{}).
			Where("id = ? AND status = ?", order.ID, from).
			Updates(map[string]any{
				"status":            order.Status,
				"confirmed_at":      order.ConfirmedAt,
				"ready_at":          order.ReadyAt,
				"completed_at":      order.CompletedAt,
				"customer_notified": order.CustomerNotified,
				"updated_at":        order.UpdatedAt,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return domain.ErrOrderStatusChanged
		}

		if len(notifications) > 0 {
			if err := tx.Omit("Order").Create(&notifications).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *orderRepository) CountOrdersByStatus(ctx context.Context) (map[domain.OrderStatus]int64, error) {
	var rows []struct {
		Status domain.OrderStatus
		Count  int64
	}
	if err := r.db.WithContext(ctx).
		Model(&entities.Order{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	counts := make(map[domain.OrderStatus]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts, nil
}

func (r *orderRepository) CountOrdersScheduledSince(ctx context.Context, since time.Time) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entities.Order{}).
		Where("scheduled_date >= ?", since).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *orderRepository) SumRevenue(ctx context.Context) (decimal.Decimal, error) {
	var total decimal.Decimal
	if err := r.db.WithContext(ctx).
		Model(&entities.Order{}).
		Select("COALESCE(SUM(total_amount), 0)").
		Where("status <> ?", domain.OrderStatusCancelled).
		Row().
		Scan(&total); err != nil {
		return decimal.Zero, err
	}
	return total, nil
}

func (r *orderRepository) GetRecentOrders(ctx context.Context, limit int) ([]*entities.Order, error) {
	var orders []*entities.Order
	if err := r.withDetails(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}
