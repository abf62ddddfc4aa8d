package domain

import (
	"time"

	"github.com/govalues/decimal"
)

type OrderStatus string

const (
	OrderStatusPending       OrderStatus = "PENDING"
	OrderStatusAccepted      OrderStatus = "ACCEPTED"
	OrderStatusInPreparation OrderStatus = "IN_PREPARATION"
	OrderStatusWaiting       OrderStatus = "WAITING"
	OrderStatusPickedUp      OrderStatus = "PICKED_UP"
	OrderStatusDelivered     OrderStatus = "DELIVERED"
	OrderStatusCanceled      OrderStatus = "CANCELED"
	OrderStatusRejected      OrderStatus = "REJECTED"
)

var knownStatuses = map[OrderStatus]struct{}{
	OrderStatusPending:       {},
	OrderStatusAccepted:      {},
	OrderStatusInPreparation: {},
	OrderStatusWaiting:       {},
	OrderStatusPickedUp:      {},
	OrderStatusDelivered:     {},
	OrderStatusCanceled:      {},
	OrderStatusRejected:      {},
}

// ParseOrderStatus validates a status string coming from the API layer.
func ParseOrderStatus(s string) (OrderStatus, error) {
	status := OrderStatus(s)
	if _, ok := knownStatuses[status]; !ok {
		return "", ErrInvalidOrderStatus
	}
	return status, nil
}

type Order struct {
	ID           uint64
	UserID       uint64
	CompanyID    uint64
	CourierID    *uint64
	AssignedByID *uint64

	// Contact data is snapshotted at creation time, not a live reference.
	CustomerName    string
	CustomerEmail   string
	CustomerPhone   string
	CustomerAddress string
	OrderNotes      string

	TotalProducts int
	Quantity      int

	Discount    decimal.Decimal
	Subtotal    decimal.Decimal
	DeliveryFee decimal.Decimal
	TotalAmount decimal.Decimal

	Status OrderStatus

	OrderDate   time.Time
	CreatedAt   time.Time
	LastUpdated time.Time

	AcceptedAt      *time.Time
	InPreparationAt *time.Time
	WaitingAt       *time.Time
	PickedUpAt      *time.Time
	ShippedAt       *time.Time
	DeliveredAt     *time.Time
	CanceledAt      *time.Time
	RejectedAt      *time.Time

	// Version guards against concurrent status updates on the same order.
	Version uint64

	User    *User
	Company *Company
	Courier *User
}

// HasCourier reports whether a courier has been assigned to the order.
func (o *Order) HasCourier() bool {
	return o.CourierID != nil && *o.CourierID != 0
}

// ApplyStatus moves the order to newStatus and returns the notification
// events the transition produces. The per-status timestamp is stamped only
// if it is still unset, so repeating a status does not move the clock.
// LastUpdated moves on every call.
func (o *Order) ApplyStatus(newStatus OrderStatus, now time.Time) []EventKind {
	oldStatus := o.Status
	o.Status = newStatus
	o.LastUpdated = now

	stamp := func(t **time.Time) {
		if *t == nil {
			ts := now
			*t = &ts
		}
	}

	switch newStatus {
	case OrderStatusAccepted:
		stamp(&o.AcceptedAt)
	case OrderStatusInPreparation:
		stamp(&o.InPreparationAt)
	case OrderStatusWaiting:
		stamp(&o.WaitingAt)
	case OrderStatusPickedUp:
		stamp(&o.PickedUpAt)
		stamp(&o.ShippedAt)
	case OrderStatusDelivered:
		stamp(&o.DeliveredAt)
	case OrderStatusCanceled:
		stamp(&o.CanceledAt)
	case OrderStatusRejected:
		stamp(&o.RejectedAt)
	}

	return TransitionEvents(oldStatus, newStatus, o.HasCourier())
}
