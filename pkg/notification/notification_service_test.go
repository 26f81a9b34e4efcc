package notification

import (
	"Pickup-Order-System/domain"
	"Pickup-Order-System/entities"
	"context"
	"sort"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeNotificationRepository struct {
	notifications map[uuid.UUID]*entities.Notification
}

func (f *fakeNotificationRepository) list(recipientID string, unreadOnly bool) []*entities.Notification {
	var out []*entities.Notification
	for _, n := range f.notifications {
		if n.RecipientID.String() == recipientID && (!unreadOnly || !n.IsRead) {
			out = append(out, n)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out
}

func (f *fakeNotificationRepository) GetNotifications(_ context.Context, recipientID string, unreadOnly bool, page int, limit int) ([]*entities.Notification, int64, error) {
	all := f.list(recipientID, unreadOnly)
	start := (page - 1) * limit
	if start > len(all) {
		start = len(all)
	}
	end := start + limit
	if end > len(all) {
		end = len(all)
	}
	return all[start:end], int64(len(all)), nil
}

func (f *fakeNotificationRepository) CountUnread(_ context.Context, recipientID string) (int64, error) {
	return int64(len(f.list(recipientID, true))), nil
}

func (f *fakeNotificationRepository) GetNotificationByID(_ context.Context, id string) (*entities.Notification, error) {
	n, ok := f.notifications[uuid.MustParse(id)]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *n
	return &copied, nil
}

func (f *fakeNotificationRepository) MarkRead(_ context.Context, n *entities.Notification) error {
	stored := f.notifications[n.ID]
	stored.IsRead = true
	stored.ReadAt = n.ReadAt
	return nil
}

func (f *fakeNotificationRepository) MarkAllRead(_ context.Context, recipientID string, readAt time.Time) (int64, error) {
	var updated int64
	for _, n := range f.list(recipientID, true) {
		n.IsRead = true
		n.ReadAt = &readAt
		updated++
	}
	return updated, nil
}

func (f *fakeNotificationRepository) DeleteNotification(_ context.Context, id string) error {
	delete(f.notifications, uuid.MustParse(id))
	return nil
}

func seed(repo *fakeNotificationRepository, recipient uuid.UUID, count int) []*entities.Notification {
	order := &entities.Order{ID: uuid.New(), Status: domain.OrderStatusPending, ScheduledTime: "09:00 AM"}
	var out []*entities.Notification
	for i := 0; i < count; i++ {
		n := &entities.Notification{
			ID:            uuid.New(),
			RecipientID:   recipient,
			RecipientType: domain.RecipientUser,
			Type:          domain.NotificationOrderReady,
			OrderID:       order.ID,
			Title:         "Order Ready for Pickup",
			Message:       "Your order is ready for pickup!",
			CreatedAt:     time.Now().Add(time.Duration(i) * time.Minute),
			Order:         order,
		}
		repo.notifications[n.ID] = n
		out = append(out, n)
	}
	return out
}

func newService() (NotificationService, *fakeNotificationRepository) {
	repo := &fakeNotificationRepository{notifications: map[uuid.UUID]*entities.Notification{}}
	return NewNotificationService(repo), repo
}

func TestGetMyNotifications(t *testing.T) {
	svc, repo := newService()
	ctx := context.Background()
	me := uuid.New()
	seeded := seed(repo, me, 3)
	seed(repo, uuid.New(), 2)
	seeded[0].IsRead = true

	actor := domain.Actor{UserID: me.String(), Role: domain.RoleUser}

	page, err := svc.GetMyNotifications(ctx, actor, false, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(3), page.Total)
	assert.Equal(t, int64(2), page.TotalPages)
	assert.Equal(t, int64(2), page.UnreadCount)
	require.Len(t, page.Notifications, 2)
	assert.Equal(t, seeded[2].ID.String(), page.Notifications[0].ID)
	require.NotNil(t, page.Notifications[0].Order)
	assert.Regexp(t, `^ORD-[0-9A-F]{8}$`, page.Notifications[0].Order.OrderNumber)

	unread, err := svc.GetMyNotifications(ctx, actor, true, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(2), unread.Total)
	assert.Equal(t, int64(2), unread.UnreadCount)
	assert.Equal(t, 1, unread.CurrentPage)
}

func TestMarkAsReadOwnership(t *testing.T) {
	svc, repo := newService()
	ctx := context.Background()
	owner := uuid.New()
	n := seed(repo, owner, 1)[0]

	other := domain.Actor{UserID: uuid.NewString(), Role: domain.RoleAdmin}
	_, err := svc.MarkAsRead(ctx, other, n.ID.String())
	assert.ErrorIs(t, err, domain.ErrForbidden)
	assert.ErrorIs(t, svc.DeleteNotification(ctx, other, n.ID.String()), domain.ErrForbidden)

	_, err = svc.MarkAsRead(ctx, other, uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrNotFound)

	actor := domain.Actor{UserID: owner.String(), Role: domain.RoleUser}
	res, err := svc.MarkAsRead(ctx, actor, n.ID.String())
	require.NoError(t, err)
	assert.True(t, res.IsRead)
	assert.NotNil(t, res.ReadAt)
	assert.True(t, repo.notifications[n.ID].IsRead)

	require.NoError(t, svc.DeleteNotification(ctx, actor, n.ID.String()))
	assert.ErrorIs(t, svc.DeleteNotification(ctx, actor, n.ID.String()), domain.ErrNotificationNotFound)
}

func TestMarkAllAsReadIsIdempotent(t *testing.T) {
	svc, repo := newService()
	ctx := context.Background()
	me := uuid.New()
	seed(repo, me, 4)
	actor := domain.Actor{UserID: me.String(), Role: domain.RoleUser}

	updated, err := svc.MarkAllAsRead(ctx, actor)
	require.NoError(t, err)
	assert.Equal(t, int64(4), updated)

	count, err := svc.GetUnreadCount(ctx, actor)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count.UnreadCount)

	updated, err = svc.MarkAllAsRead(ctx, actor)
	require.NoError(t, err)
	assert.Equal(t, int64(0), updated)

	count, err = svc.GetUnreadCount(ctx, actor)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count.UnreadCount)
}
