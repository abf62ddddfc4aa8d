package domain_test

import (
	"testing"
	"time"

	"github.com/jibli-app/jibli-backend/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestOrder_ApplyStatusStampsOnce(t *testing.T) {
	first := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	second := first.Add(time.Hour)

	order := domain.Order{Status: domain.OrderStatusPending}

	order.ApplyStatus(domain.OrderStatusAccepted, first)
	assert.NotNil(t, order.AcceptedAt)
	assert.Equal(t, first, *order.AcceptedAt)
	assert.Equal(t, first, order.LastUpdated)

	// Repeating the status must not move the stamp, only LastUpdated.
	order.ApplyStatus(domain.OrderStatusAccepted, second)
	assert.Equal(t, first, *order.AcceptedAt)
	assert.Equal(t, second, order.LastUpdated)
}

func TestOrder_ApplyStatusRepeatedWaitingStaysSilent(t *testing.T) {
	first := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	second := first.Add(time.Minute)

	courierID := uint64(9)
	order := domain.Order{Status: domain.OrderStatusInPreparation, CourierID: &courierID}

	events := order.ApplyStatus(domain.OrderStatusWaiting, first)
	assert.Equal(t, []domain.EventKind{domain.EventDeliveryAssigned}, events)

	events = order.ApplyStatus(domain.OrderStatusWaiting, second)
	assert.Empty(t, events)
	assert.Equal(t, first, *order.WaitingAt)
}

func TestOrder_ApplyStatusPickedUpStampsShipped(t *testing.T) {
	now := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	order := domain.Order{Status: domain.OrderStatusWaiting}
	order.ApplyStatus(domain.OrderStatusPickedUp, now)

	assert.NotNil(t, order.PickedUpAt)
	assert.NotNil(t, order.ShippedAt)
	assert.Equal(t, now, *order.PickedUpAt)
	assert.Equal(t, now, *order.ShippedAt)
}

func TestOrder_ApplyStatusStampPerStatus(t *testing.T) {
	now := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		status domain.OrderStatus
		stamp  func(o *domain.Order) *time.Time
	}{
		{domain.OrderStatusAccepted, func(o *domain.Order) *time.Time { return o.AcceptedAt }},
		{domain.OrderStatusInPreparation, func(o *domain.Order) *time.Time { return o.InPreparationAt }},
		{domain.OrderStatusWaiting, func(o *domain.Order) *time.Time { return o.WaitingAt }},
		{domain.OrderStatusPickedUp, func(o *domain.Order) *time.Time { return o.PickedUpAt }},
		{domain.OrderStatusDelivered, func(o *domain.Order) *time.Time { return o.DeliveredAt }},
		{domain.OrderStatusCanceled, func(o *domain.Order) *time.Time { return o.CanceledAt }},
		{domain.OrderStatusRejected, func(o *domain.Order) *time.Time { return o.RejectedAt }},
	}

	for _, test := range tests {
		t.Run(string(test.status), func(t *testing.T) {
			order := domain.Order{Status: domain.OrderStatusPending}
			order.ApplyStatus(test.status, now)

			assert.Equal(t, test.status, order.Status)
			if assert.NotNil(t, test.stamp(&order)) {
				assert.Equal(t, now, *test.stamp(&order))
			}
		})
	}
}

func TestParseOrderStatus(t *testing.T) {
	status, err := domain.ParseOrderStatus("WAITING")
	assert.NoError(t, err)
	assert.Equal(t, domain.OrderStatusWaiting, status)

	_, err = domain.ParseOrderStatus("SHIPPED")
	assert.ErrorIs(t, err, domain.ErrInvalidOrderStatus)

	_, err = domain.ParseOrderStatus("")
	assert.ErrorIs(t, err, domain.ErrInvalidOrderStatus)
}

func TestOrder_HasCourier(t *testing.T) {
	order := domain.Order{}
	assert.False(t, order.HasCourier())

	zero := uint64(0)
	order.CourierID = &zero
	assert.False(t, order.HasCourier())

	id := uint64(7)
	order.CourierID = &id
	assert.True(t, order.HasCourier())
}
