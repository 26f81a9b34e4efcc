package order

import (
	"Pickup-Order-System/domain"
	"Pickup-Order-System/entities"
	"Pickup-Order-System/internal/utils/testdb"
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestRepository(t *testing.T) (OrderRepository, *gorm.DB) {
	t.Helper()
	db := testdb.Open(t,
		&entities.User{},
		&entities.Category{},
		&entities.Product{},
		&entities.Order{},
		&entities.OrderItem{},
		&entities.Notification{},
	)
	return NewOrderRepository(db), db
}

func seedUser(t *testing.T, db *gorm.DB) *entities.User {
	t.Helper()
	u := &entities.User{
		ID:       uuid.New(),
		Name:     "Ravi",
		Phone:    uuid.NewString()[:10],
		Password: "hash",
		Role:     domain.RoleUser,
		Address:  entities.Address{FirstLine: "7 Temple Street", Pincode: "600001"},
	}
	require.NoError(t, db.Create(u).Error)
	return u
}

func newStoredOrder(userID uuid.UUID, status domain.OrderStatus, scheduled time.Time, total string) *entities.Order {
	id := uuid.New()
	amount := decimal.RequireFromString(total)
	return &entities.Order{
		ID:            id,
		UserID:        userID,
		ScheduledDate: scheduled,
		ScheduledTime: "10:30 AM",
		Status:        status,
		Subtotal:      amount,
		TotalAmount:   amount,
		ContactPhone:  "9876543210",
		ContactName:   "Ravi",
		Items: []*entities.OrderItem{
			{ID: uuid.New(), OrderID: id, Position: 1, ProductID: uuid.New(), ProductName: "Rice", QuantityText: "500 g", QuantityValue: decimal.NewFromInt(500), Unit: domain.UnitGram, Price: decimal.NewFromInt(60), TotalPrice: decimal.NewFromInt(30)},
			{ID: uuid.New(), OrderID: id, Position: 0, ProductID: uuid.New(), ProductName: "Paneer", QuantityText: "1 piece", QuantityValue: decimal.NewFromInt(1), Unit: domain.UnitPiece, Price: decimal.NewFromInt(20), TotalPrice: decimal.NewFromInt(20)},
		},
	}
}

func notificationFor(order *entities.Order, recipient uuid.UUID) *entities.Notification {
	return &entities.Notification{
		ID:            uuid.New(),
		RecipientID:   recipient,
		RecipientType: domain.RecipientAdmin,
		Type:          domain.NotificationOrderPlaced,
		OrderID:       order.ID,
		Title:         "New order",
		Message:       "A new order was placed",
	}
}

func TestOrderRepositoryCreateOrder(t *testing.T) {
	repo, db := newTestRepository(t)
	ctx := context.Background()
	user := seedUser(t, db)
	day := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)

	order := newStoredOrder(user.ID, domain.OrderStatusPending, day, "50")
	require.NoError(t, repo.CreateOrder(ctx, order, []*entities.Notification{notificationFor(order, uuid.New())}))

	stored, err := repo.GetOrderByID(ctx, order.ID.String())
	require.NoError(t, err)
	require.NotNil(t, stored.User)
	assert.Equal(t, "Ravi", stored.User.Name)
	require.Len(t, stored.Items, 2)
	assert.Equal(t, "Paneer", stored.Items[0].ProductName)
	assert.True(t, stored.TotalAmount.Equal(decimal.NewFromInt(50)))

	var notifications int64
	require.NoError(t, db.Model(&entities.Notification{}).Where("order_id = ?", order.ID).Count(&notifications).Error)
	assert.Equal(t, int64(1), notifications)

	_, err = repo.GetOrderByID(ctx, uuid.NewString())
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestOrderRepositoryCreateOrderRollsBack(t *testing.T) {
	repo, db := newTestRepository(t)
	ctx := context.Background()
	user := seedUser(t, db)

	order := newStoredOrder(user.ID, domain.OrderStatusPending, time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC), "50")
	first := notificationFor(order, uuid.New())
	second := notificationFor(order, uuid.New())
	second.ID = first.ID

	err := repo.CreateOrder(ctx, order, []*entities.Notification{first, second})
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)

	var orders, items, notifications int64
	require.NoError(t, db.Model(&entities.Order{}).Count(&orders).Error)
	require.NoError(t, db.Model(&entities.OrderItem{}).Count(&items).Error)
	require.NoError(t, db.Model(&entities.Notification{}).Count(&notifications).Error)
	assert.Zero(t, orders)
	assert.Zero(t, items)
	assert.Zero(t, notifications)
}

func TestOrderRepositoryTransitionOrder(t *testing.T) {
	repo, db := newTestRepository(t)
	ctx := context.Background()
	user := seedUser(t, db)

	order := newStoredOrder(user.ID, domain.OrderStatusPending, time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC), "50")
	require.NoError(t, repo.CreateOrder(ctx, order, nil))

	confirmedAt := time.Date(2026, 3, 13, 9, 0, 0, 0, time.UTC)
	order.Status = domain.OrderStatusConfirmed
	order.ConfirmedAt = &confirmedAt
	order.CustomerNotified = true
	order.UpdatedAt = confirmedAt
	notice := notificationFor(order, user.ID)
	notice.RecipientType = domain.RecipientUser
	notice.Type = domain.NotificationOrderConfirmed
	require.NoError(t, repo.TransitionOrder(ctx, order, domain.OrderStatusPending, []*entities.Notification{notice}))

	stored, err := repo.GetOrderByID(ctx, order.ID.String())
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusConfirmed, stored.Status)
	require.NotNil(t, stored.ConfirmedAt)
	assert.True(t, stored.ConfirmedAt.Equal(confirmedAt))
	assert.True(t, stored.CustomerNotified)

	// A second writer still believing the order is pending loses, and its notification is not kept.
	order.Status = domain.OrderStatusCancelled
	stale := notificationFor(order, user.ID)
	stale.Type = domain.NotificationOrderCancelled
	err = repo.TransitionOrder(ctx, order, domain.OrderStatusPending, []*entities.Notification{stale})
	assert.ErrorIs(t, err, domain.ErrOrderStatusChanged)

	stored, err = repo.GetOrderByID(ctx, order.ID.String())
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusConfirmed, stored.Status)

	var notifications int64
	require.NoError(t, db.Model(&entities.Notification{}).Count(&notifications).Error)
	assert.Equal(t, int64(1), notifications)
}

func TestOrderRepositoryAggregates(t *testing.T) {
	repo, db := newTestRepository(t)
	ctx := context.Background()
	user := seedUser(t, db)
	day := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)

	empty, err := repo.SumRevenue(ctx)
	require.NoError(t, err)
	assert.True(t, empty.IsZero())

	seeded := []*entities.Order{
		newStoredOrder(user.ID, domain.OrderStatusPending, day.Add(-24*time.Hour), "50.25"),
		newStoredOrder(user.ID, domain.OrderStatusPending, day.Add(10*time.Hour), "20"),
		newStoredOrder(user.ID, domain.OrderStatusReady, day.Add(23*time.Hour+59*time.Minute), "100"),
		newStoredOrder(user.ID, domain.OrderStatusCancelled, day, "999"),
		newStoredOrder(user.ID, domain.OrderStatusCompleted, day.Add(48*time.Hour), "10"),
	}
	for _, o := range seeded {
		require.NoError(t, repo.CreateOrder(ctx, o, nil))
	}

	counts, err := repo.CountOrdersByStatus(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), counts[domain.OrderStatusPending])
	assert.Equal(t, int64(1), counts[domain.OrderStatusReady])
	assert.Equal(t, int64(1), counts[domain.OrderStatusCancelled])
	assert.Equal(t, int64(1), counts[domain.OrderStatusCompleted])
	assert.Zero(t, counts[domain.OrderStatusConfirmed])

	revenue, err := repo.SumRevenue(ctx)
	require.NoError(t, err)
	assert.Equal(t, "180.25", revenue.String())

	since, err := repo.CountOrdersScheduledSince(ctx, day)
	require.NoError(t, err)
	assert.Equal(t, int64(4), since)

	page, total, err := repo.GetOrders(ctx, domain.OrderFilter{Date: &day, Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Len(t, page, 3)

	page, total, err = repo.GetOrders(ctx, domain.OrderFilter{Status: domain.OrderStatusPending, Date: &day, Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, page, 1)
	assert.Equal(t, seeded[1].ID, page[0].ID)

	page, total, err = repo.GetOrders(ctx, domain.OrderFilter{Page: 3, Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
	assert.Len(t, page, 1)

	page, _, err = repo.GetOrders(ctx, domain.OrderFilter{Page: domain.MaxPage, Limit: domain.MaxPageLimit})
	require.NoError(t, err)
	assert.Empty(t, page)

	recent, err := repo.GetRecentOrders(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, recent, 2)
}
