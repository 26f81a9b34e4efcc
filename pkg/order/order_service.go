package order

import (
	"Pickup-Order-System/domain"
	"Pickup-Order-System/entities"
	"Pickup-Order-System/internal/utils"
	"Pickup-Order-System/internal/utils/mailing"
	"Pickup-Order-System/pkg/product"
	"Pickup-Order-System/pkg/user"
	"context"
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type (
	OrderService interface {
		CreateOrder(ctx context.Context, actor domain.Actor, req domain.CreateOrderRequest) (domain.OrderResponse, error)
		UpdateOrderStatus(ctx context.Context, actor domain.Actor, orderID string, req domain.UpdateOrderStatusRequest) (domain.OrderResponse, error)
		CancelOrder(ctx context.Context, actor domain.Actor, orderID string) (domain.OrderResponse, error)
		GetMyOrders(ctx context.Context, actor domain.Actor, status string) ([]domain.OrderResponse, error)
		GetAllOrders(ctx context.Context, actor domain.Actor, status string, date string, page int, limit int) (domain.OrderPageResponse, error)
		GetOrderByID(ctx context.Context, actor domain.Actor, orderID string) (domain.OrderResponse, error)
		GetOrderStats(ctx context.Context, actor domain.Actor) (domain.OrderStatsResponse, error)
	}

	orderService struct {
		orderRepository   OrderRepository
		productRepository product.ProductRepository
		userRepository    user.UserRepository
		mailer            mailing.Mailer
		shopEmail         string
		now               func() time.Time
	}
)

func NewOrderService(
	orderRepository OrderRepository,
	productRepository product.ProductRepository,
	userRepository user.UserRepository,
	mailer mailing.Mailer,
	shopEmail string,
) OrderService {
	return &orderService{
		orderRepository:   orderRepository,
		productRepository: productRepository,
		userRepository:    userRepository,
		mailer:            mailer,
		shopEmail:         shopEmail,
		now:               time.Now,
	}
}

func ToOrderResponse(order *entities.Order) domain.OrderResponse {
	res := domain.OrderResponse{
		ID:                  order.ID.String(),
		OrderNumber:         order.OrderNumber(),
		UserID:              order.UserID.String(),
		Items:               make([]domain.OrderItemResponse, 0, len(order.Items)),
		ScheduledDate:       order.ScheduledDate,
		ScheduledTime:       order.ScheduledTime,
		Status:              order.Status,
		Subtotal:            order.Subtotal.InexactFloat64(),
		TotalAmount:         order.TotalAmount.InexactFloat64(),
		SpecialInstructions: order.SpecialInstructions,
		ContactPhone:        order.ContactPhone,
		ContactName:         order.ContactName,
		DeliveryAddress: domain.Address{
			FirstLine:  order.DeliveryAddress.FirstLine,
			SecondLine: order.DeliveryAddress.SecondLine,
			Pincode:    order.DeliveryAddress.Pincode,
		},
		AdminNotified:    order.AdminNotified,
		CustomerNotified: order.CustomerNotified,
		ConfirmedAt:      order.ConfirmedAt,
		ReadyAt:          order.ReadyAt,
		CompletedAt:      order.CompletedAt,
		CreatedAt:        order.CreatedAt,
		UpdatedAt:        order.UpdatedAt,
	}
	if order.User != nil {
		res.User = &domain.OrderUserResponse{
			ID:    order.User.ID.String(),
			Name:  order.User.Name,
			Phone: order.User.Phone,
		}
	}

	for _, item := range order.Items {
		itemRes := domain.OrderItemResponse{
			ProductID:     item.ProductID.String(),
			ProductName:   item.ProductName,
			QuantityText:  item.QuantityText,
			QuantityValue: item.QuantityValue.InexactFloat64(),
			Unit:          item.Unit,
			Price:         item.Price.InexactFloat64(),
			TotalPrice:    item.TotalPrice.InexactFloat64(),
			Image:         item.Image,
		}
		if item.Product != nil {
			productRes := product.ToProductResponse(item.Product)
			itemRes.Product = &productRes
		}
		res.Items = append(res.Items, itemRes)
	}
	return res
}

func toOrderResponses(orders []*entities.Order) []domain.OrderResponse {
	res := make([]domain.OrderResponse, 0, len(orders))
	for _, order := range orders {
		res = append(res, ToOrderResponse(order))
	}
	return res
}

// buildItems validates and prices every requested line before anything is written.
func (s *orderService) buildItems(ctx context.Context, reqItems []domain.OrderItemRequest) ([]*entities.OrderItem, map[uuid.UUID]*entities.Product, decimal.Decimal, error) {
	ids := make([]string, 0, len(reqItems))
	for _, item := range reqItems {
		if _, err := uuid.Parse(item.ProductID); err == nil {
			ids = append(ids, item.ProductID)
		}
	}

	products, err := s.productRepository.GetProductsByIDs(ctx, ids)
	if err != nil {
		return nil, nil, decimal.Zero, domain.Unexpected(err)
	}
	byID := make(map[uuid.UUID]*entities.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	subtotal := decimal.Zero
	items := make([]*entities.OrderItem, 0, len(reqItems))
	for i, req := range reqItems {
		productID, err := uuid.Parse(req.ProductID)
		if err != nil {
			return nil, nil, decimal.Zero, domain.ErrProductNotFound
		}
		p, ok := byID[productID]
		if !ok {
			return nil, nil, decimal.Zero, domain.ErrProductNotFound
		}

		raw := string(req.QuantityValue)
		if raw == "" {
			raw = req.QuantityText
		}
		quantity, err := ParseQuantity(raw)
		if err != nil {
			return nil, nil, decimal.Zero, err
		}

		if !req.Unit.IsValid() || !p.UnitType.Allows(req.Unit) {
			return nil, nil, decimal.Zero, domain.ErrInvalidUnit
		}
		lineTotal, err := LineTotal(p.PricePerUnit, quantity, req.Unit)
		if err != nil {
			return nil, nil, decimal.Zero, err
		}

		quantityText := strings.TrimSpace(req.QuantityText)
		if quantityText == "" {
			quantityText = defaultQuantityText(quantity, req.Unit)
		}

		items = append(items, &entities.OrderItem{
			ID:            uuid.New(),
			Position:      i,
			ProductID:     p.ID,
			ProductName:   p.Name,
			QuantityText:  quantityText,
			QuantityValue: quantity,
			Unit:          req.Unit,
			Price:         p.PricePerUnit,
			TotalPrice:    lineTotal,
			Image:         p.Image,
		})
		subtotal = subtotal.Add(lineTotal)
	}
	return items, byID, subtotal, nil
}

func deliveryAddress(override *domain.Address, stored entities.Address) (entities.Address, error) {
	address := stored
	if override != nil {
		address = entities.Address{
			FirstLine:  strings.TrimSpace(override.FirstLine),
			SecondLine: strings.TrimSpace(override.SecondLine),
			Pincode:    strings.TrimSpace(override.Pincode),
		}
	}
	if address.FirstLine == "" || address.Pincode == "" {
		return entities.Address{}, domain.ErrDeliveryAddressMissing
	}
	return address, nil
}

func (s *orderService) getUser(ctx context.Context, userID string) (*entities.User, error) {
	if _, err := uuid.Parse(userID); err != nil {
		return nil, domain.ErrUserNotFound
	}
	u, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, domain.Unexpected(err)
	}
	return u, nil
}

func (s *orderService) CreateOrder(ctx context.Context, actor domain.Actor, req domain.CreateOrderRequest) (domain.OrderResponse, error) {
	if len(req.Items) == 0 {
		return domain.OrderResponse{}, domain.ErrNoOrderItems
	}
	scheduledDate, err := utils.ParseDate(strings.TrimSpace(req.ScheduledDate))
	if err != nil {
		return domain.OrderResponse{}, domain.ErrInvalidScheduledDate
	}
	instructions := strings.TrimSpace(req.SpecialInstructions)
	if utf8.RuneCountInString(instructions) > domain.MaxSpecialInstructions {
		return domain.OrderResponse{}, domain.ErrInstructionsTooLong
	}

	items, products, subtotal, err := s.buildItems(ctx, req.Items)
	if err != nil {
		return domain.OrderResponse{}, err
	}

	customer, err := s.getUser(ctx, actor.UserID)
	if err != nil {
		return domain.OrderResponse{}, err
	}
	address, err := deliveryAddress(req.DeliveryAddress, customer.Address)
	if err != nil {
		return domain.OrderResponse{}, err
	}

	admins, err := s.userRepository.GetUsersByRole(ctx, domain.RoleAdmin)
	if err != nil {
		return domain.OrderResponse{}, domain.Unexpected(err)
	}

	order := &entities.Order{
		ID:                  uuid.New(),
		UserID:              customer.ID,
		ScheduledDate:       scheduledDate,
		ScheduledTime:       strings.TrimSpace(req.ScheduledTime),
		Status:              domain.OrderStatusPending,
		Subtotal:            subtotal,
		TotalAmount:         subtotal,
		SpecialInstructions: instructions,
		ContactPhone:        customer.Phone,
		ContactName:         customer.Name,
		DeliveryAddress:     address,
		Items:               items,
	}
	for _, item := range items {
		item.OrderID = order.ID
	}

	notifications := orderPlacedNotifications(order, admins)
	order.AdminNotified = len(notifications) > 0

	if err := s.orderRepository.CreateOrder(ctx, order, notifications); err != nil {
		return domain.OrderResponse{}, domain.Unexpected(err)
	}
	log.Infof("order %s placed by %s with %d items, total %s", order.OrderNumber(), customer.ID, len(items), order.TotalAmount.StringFixed(2))

	s.mailShop(order)

	order.User = customer
	for _, item := range order.Items {
		item.Product = products[item.ProductID]
	}
	return ToOrderResponse(order), nil
}

// mailShop sends a copy of a new order to the shop inbox. Delivery is best effort.
func (s *orderService) mailShop(order *entities.Order) {
	if s.mailer == nil || s.shopEmail == "" {
		return
	}
	subject := "New Order " + order.OrderNumber()
	body := shopMailBody(order)
	go func() {
		if err := s.mailer.SendMail(s.shopEmail, subject, body); err != nil {
			log.Warnf("failed to mail order %s to shop: %v", order.OrderNumber(), err)
		}
	}()
}

func (s *orderService) getOrder(ctx context.Context, orderID string) (*entities.Order, error) {
	if _, err := uuid.Parse(orderID); err != nil {
		return nil, domain.ErrOrderNotFound
	}
	order, err := s.orderRepository.GetOrderByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, domain.Unexpected(err)
	}
	return order, nil
}

func (s *orderService) transition(ctx context.Context, order *entities.Order, from domain.OrderStatus, notifications []*entities.Notification) error {
	order.UpdatedAt = s.now()
	if err := s.orderRepository.TransitionOrder(ctx, order, from, notifications); err != nil {
		if errors.Is(err, domain.ErrOrderStatusChanged) {
			return err
		}
		return domain.Unexpected(err)
	}
	return nil
}

func (s *orderService) UpdateOrderStatus(ctx context.Context, actor domain.Actor, orderID string, req domain.UpdateOrderStatusRequest) (domain.OrderResponse, error) {
	if !actor.IsAdmin() {
		return domain.OrderResponse{}, domain.ErrUserNotAllowed
	}
	next, err := domain.ParseOrderStatus(string(req.Status))
	if err != nil {
		return domain.OrderResponse{}, err
	}

	order, err := s.getOrder(ctx, orderID)
	if err != nil {
		return domain.OrderResponse{}, err
	}

	from := order.Status
	if !from.CanTransitionTo(next) {
		return domain.OrderResponse{}, domain.ErrIllegalTransition
	}

	now := s.now()
	order.Status = next
	var notifications []*entities.Notification
	switch next {
	case domain.OrderStatusConfirmed:
		order.ConfirmedAt = &now
	case domain.OrderStatusReady:
		order.ReadyAt = &now
		order.CustomerNotified = true
		notifications = append(notifications, orderReadyNotification(order))
	case domain.OrderStatusCompleted:
		order.CompletedAt = &now
	}

	if err := s.transition(ctx, order, from, notifications); err != nil {
		return domain.OrderResponse{}, err
	}
	log.Infof("order %s status %s -> %s", order.OrderNumber(), from, next)
	return ToOrderResponse(order), nil
}

func (s *orderService) CancelOrder(ctx context.Context, actor domain.Actor, orderID string) (domain.OrderResponse, error) {
	order, err := s.getOrder(ctx, orderID)
	if err != nil {
		return domain.OrderResponse{}, err
	}

	isOwner := order.UserID.String() == actor.UserID
	if !isOwner && !actor.IsAdmin() {
		return domain.OrderResponse{}, domain.ErrOrderAccessDenied
	}
	if !order.Status.Cancellable() {
		return domain.OrderResponse{}, domain.ErrOrderNotCancellable
	}

	var notifications []*entities.Notification
	if actor.IsAdmin() {
		notifications = append(notifications, cancelledByAdminNotification(order))
	} else {
		admins, err := s.userRepository.GetUsersByRole(ctx, domain.RoleAdmin)
		if err != nil {
			return domain.OrderResponse{}, domain.Unexpected(err)
		}
		notifications = cancelledByCustomerNotifications(order, admins)
	}

	from := order.Status
	order.Status = domain.OrderStatusCancelled
	if err := s.transition(ctx, order, from, notifications); err != nil {
		return domain.OrderResponse{}, err
	}
	log.Infof("order %s cancelled by %s", order.OrderNumber(), actor.Role)
	return ToOrderResponse(order), nil
}

func parseStatusFilter(status string) (domain.OrderStatus, error) {
	if strings.TrimSpace(status) == "" {
		return "", nil
	}
	return domain.ParseOrderStatus(status)
}

func (s *orderService) GetMyOrders(ctx context.Context, actor domain.Actor, status string) ([]domain.OrderResponse, error) {
	filter, err := parseStatusFilter(status)
	if err != nil {
		return nil, err
	}
	orders, err := s.orderRepository.GetOrdersByUser(ctx, actor.UserID, filter)
	if err != nil {
		return nil, domain.Unexpected(err)
	}
	return toOrderResponses(orders), nil
}

func (s *orderService) GetAllOrders(ctx context.Context, actor domain.Actor, status string, date string, page int, limit int) (domain.OrderPageResponse, error) {
	if !actor.IsAdmin() {
		return domain.OrderPageResponse{}, domain.ErrUserNotAllowed
	}

	filter := domain.OrderFilter{}
	filter.Page, filter.Limit = domain.Paginate(page, limit, domain.DefaultOrderPageLimit)

	var err error
	if filter.Status, err = parseStatusFilter(status); err != nil {
		return domain.OrderPageResponse{}, err
	}
	if date = strings.TrimSpace(date); date != "" {
		day, err := utils.ParseDate(date)
		if err != nil {
			return domain.OrderPageResponse{}, domain.ErrInvalidScheduledDate
		}
		filter.Date = &day
	}

	orders, total, err := s.orderRepository.GetOrders(ctx, filter)
	if err != nil {
		return domain.OrderPageResponse{}, domain.Unexpected(err)
	}

	return domain.OrderPageResponse{
		Orders:      toOrderResponses(orders),
		TotalPages:  domain.TotalPages(total, filter.Limit),
		CurrentPage: filter.Page,
		Total:       total,
	}, nil
}

func (s *orderService) GetOrderByID(ctx context.Context, actor domain.Actor, orderID string) (domain.OrderResponse, error) {
	order, err := s.getOrder(ctx, orderID)
	if err != nil {
		return domain.OrderResponse{}, err
	}
	if !actor.IsAdmin() && order.UserID.String() != actor.UserID {
		return domain.OrderResponse{}, domain.ErrOrderAccessDenied
	}
	return ToOrderResponse(order), nil
}

func (s *orderService) GetOrderStats(ctx context.Context, actor domain.Actor) (domain.OrderStatsResponse, error) {
	if !actor.IsAdmin() {
		return domain.OrderStatsResponse{}, domain.ErrUserNotAllowed
	}

	counts, err := s.orderRepository.CountOrdersByStatus(ctx)
	if err != nil {
		return domain.OrderStatsResponse{}, domain.Unexpected(err)
	}
	statusCounts := make(map[domain.OrderStatus]int64, len(domain.OrderStatuses))
	for _, status := range domain.OrderStatuses {
		statusCounts[status] = counts[status]
	}

	startOfDay, _ := utils.DayBounds(s.now().In(utils.Location()))
	today, err := s.orderRepository.CountOrdersScheduledSince(ctx, startOfDay)
	if err != nil {
		return domain.OrderStatsResponse{}, domain.Unexpected(err)
	}

	revenue, err := s.orderRepository.SumRevenue(ctx)
	if err != nil {
		return domain.OrderStatsResponse{}, domain.Unexpected(err)
	}

	recent, err := s.orderRepository.GetRecentOrders(ctx, domain.RecentOrdersLimit)
	if err != nil {
		return domain.OrderStatsResponse{}, domain.Unexpected(err)
	}

	return domain.OrderStatsResponse{
		StatusCounts:     statusCounts,
		TodayOrdersCount: today,
		TotalRevenue:     revenue.InexactFloat64(),
		RecentOrders:     toOrderResponses(recent),
	}, nil
}
