package domain

import (
	"bytes"
	"encoding/json"
	"strings"
	"time"
)

var (
	MessageSuccessCreateOrder       = "order placed successfully"
	MessageSuccessGetOrders         = "orders retrieved successfully"
	MessageSuccessGetOrder          = "order retrieved successfully"
	MessageSuccessUpdateOrderStatus = "order status updated successfully"
	MessageSuccessCancelOrder       = "order cancelled successfully"
	MessageSuccessGetOrderStats     = "order statistics retrieved successfully"

	MessageFailedCreateOrder       = "failed to create order"
	MessageFailedGetOrders         = "failed to fetch orders"
	MessageFailedGetOrder          = "failed to fetch order"
	MessageFailedUpdateOrderStatus = "failed to update order status"
	MessageFailedCancelOrder       = "failed to cancel order"
	MessageFailedGetOrderStats     = "failed to fetch order statistics"

	ErrOrderNotFound          = NewError(ErrNotFound, "order not found")
	ErrNoOrderItems           = NewError(ErrInvalidInput, "no items in order")
	ErrInvalidQuantity        = NewError(ErrInvalidInput, "invalid quantity")
	ErrInvalidUnit            = NewError(ErrInvalidInput, "invalid unit type")
	ErrInvalidScheduledDate   = NewError(ErrInvalidInput, "invalid scheduled date")
	ErrInvalidOrderStatus     = NewError(ErrInvalidInput, "invalid order status")
	ErrIllegalTransition      = NewError(ErrInvalidState, "illegal order status transition")
	ErrOrderNotCancellable    = NewError(ErrInvalidState, "order can no longer be cancelled")
	ErrOrderAccessDenied      = NewError(ErrForbidden, "not authorized to access this order")
	ErrDeliveryAddressMissing = NewError(ErrInvalidInput, "delivery address first line and pincode are required")
	ErrInstructionsTooLong    = NewError(ErrInvalidInput, "special instructions must be at most 500 characters")
	ErrOrderStatusChanged     = NewError(ErrInvalidState, "order status changed by another request")
)

const (
	MaxSpecialInstructions = 500
	OrderNumberPrefix      = "ORD-"
	OrderNumberLength      = 8
	RecentOrdersLimit      = 5
	DefaultOrderPageLimit  = 10
	MaxPageLimit           = 100
	MaxPage                = 100000
	ScheduledDateLayout    = "2006-01-02"
)

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusPreparing OrderStatus = "preparing"
	OrderStatusReady     OrderStatus = "ready"
	OrderStatusCompleted OrderStatus = "completed"
	OrderStatusCancelled OrderStatus = "cancelled"
)

var OrderStatuses = []OrderStatus{
	OrderStatusPending,
	OrderStatusConfirmed,
	OrderStatusPreparing,
	OrderStatusReady,
	OrderStatusCompleted,
	OrderStatusCancelled,
}

var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusPending:   {OrderStatusConfirmed, OrderStatusCancelled},
	OrderStatusConfirmed: {OrderStatusPreparing, OrderStatusCancelled},
	OrderStatusPreparing: {OrderStatusReady},
	OrderStatusReady:     {OrderStatusCompleted},
}

func ParseOrderStatus(s string) (OrderStatus, error) {
	status := OrderStatus(strings.ToLower(strings.TrimSpace(s)))
	if !status.IsValid() {
		return "", ErrInvalidOrderStatus
	}
	return status, nil
}

func (s OrderStatus) IsValid() bool {
	for _, status := range OrderStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no transition leaves s.
func (s OrderStatus) IsTerminal() bool {
	return len(orderTransitions[s]) == 0
}

func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, allowed := range orderTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Cancellable is true only before preparation starts.
func (s OrderStatus) Cancellable() bool {
	return s.CanTransitionTo(OrderStatusCancelled)
}

// Unit is the unit an order line quantity is expressed in.
type Unit string

const (
	UnitKg    Unit = "kg"
	UnitGram  Unit = "gram"
	UnitPiece Unit = "piece"
)

func (u Unit) IsValid() bool {
	return u == UnitKg || u == UnitGram || u == UnitPiece
}

// QuantityValue accepts either a JSON number or a JSON string and keeps the raw text
// so the order service can parse and validate it in one place.
type QuantityValue string

func (q *QuantityValue) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*q = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*q = QuantityValue(strings.TrimSpace(s))
		return nil
	}
	*q = QuantityValue(b)
	return nil
}

type (
	OrderItemRequest struct {
		ProductID     string        `json:"product_id" validate:"required,uuid"`
		Unit          Unit          `json:"unit" validate:"required,order_unit"`
		QuantityValue QuantityValue `json:"quantity_value" validate:"required_without=QuantityText"`
		QuantityText  string        `json:"quantity_text" validate:"omitempty,max=50"`
	}

	CreateOrderRequest struct {
		Items               []OrderItemRequest `json:"items" validate:"required,min=1,dive"`
		ScheduledDate       string             `json:"scheduled_date" validate:"required"`
		ScheduledTime       string             `json:"scheduled_time" validate:"required"`
		SpecialInstructions string             `json:"special_instructions" validate:"omitempty,max=500"`
		DeliveryAddress     *Address           `json:"delivery_address" validate:"omitempty"`
	}

	UpdateOrderStatusRequest struct {
		Status OrderStatus `json:"status" validate:"required,order_status"`
	}

	OrderFilter struct {
		Status OrderStatus
		Date   *time.Time
		Page   int
		Limit  int
	}

	OrderItemResponse struct {
		ProductID     string           `json:"product_id"`
		Product       *ProductResponse `json:"product,omitempty"`
		ProductName   string           `json:"product_name"`
		QuantityText  string           `json:"quantity_text"`
		QuantityValue float64          `json:"quantity_value"`
		Unit          Unit             `json:"unit"`
		Price         float64          `json:"price"`
		TotalPrice    float64          `json:"total_price"`
		Image         string           `json:"image,omitempty"`
	}

	OrderUserResponse struct {
		ID    string `json:"id"`
		Name  string `json:"name"`
		Phone string `json:"phone"`
	}

	OrderResponse struct {
		ID                  string              `json:"id"`
		OrderNumber         string              `json:"order_number"`
		User                *OrderUserResponse  `json:"user,omitempty"`
		UserID              string              `json:"user_id"`
		Items               []OrderItemResponse `json:"items"`
		ScheduledDate       time.Time           `json:"scheduled_date"`
		ScheduledTime       string              `json:"scheduled_time"`
		Status              OrderStatus         `json:"status"`
		Subtotal            float64             `json:"subtotal"`
		TotalAmount         float64             `json:"total_amount"`
		SpecialInstructions string              `json:"special_instructions,omitempty"`
		ContactPhone        string              `json:"contact_phone"`
		ContactName         string              `json:"contact_name"`
		DeliveryAddress     Address             `json:"delivery_address"`
		AdminNotified       bool                `json:"admin_notified"`
		CustomerNotified    bool                `json:"customer_notified"`
		ConfirmedAt         *time.Time          `json:"confirmed_at,omitempty"`
		ReadyAt             *time.Time          `json:"ready_at,omitempty"`
		CompletedAt         *time.Time          `json:"completed_at,omitempty"`
		CreatedAt           time.Time           `json:"created_at"`
		UpdatedAt           time.Time           `json:"updated_at"`
	}

	OrderPageResponse struct {
		Orders      []OrderResponse `json:"orders"`
		TotalPages  int64           `json:"total_pages"`
		CurrentPage int             `json:"current_page"`
		Total       int64           `json:"total"`
	}

	OrderStatsResponse struct {
		StatusCounts     map[OrderStatus]int64 `json:"status_counts"`
		TodayOrdersCount int64                 `json:"today_orders_count"`
		TotalRevenue     float64               `json:"total_revenue"`
		RecentOrders     []OrderResponse       `json:"recent_orders"`
	}
)
