package notify_test

import (
	"testing"

	"github.com/govalues/decimal"
	"github.com/jibli-app/jibli-backend/internal/core/domain"
	"github.com/jibli-app/jibli-backend/internal/core/notify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildContext(t *testing.T) {
	amount, _ := decimal.Parse("40")
	order := &domain.Order{
		ID:              11,
		Status:          domain.OrderStatusWaiting,
		CustomerName:    "Sami",
		CustomerPhone:   "+216 55 000 000",
		CustomerAddress: "Sfax",
		TotalAmount:     amount,
	}

	c := notify.BuildContext(order)

	assert.Equal(t, "11", c["orderId"])
	assert.Equal(t, "WAITING", c["status"])
	assert.Equal(t, "40.00", c["totalAmount"])
	assert.Equal(t, "Sami", c["customerName"])

	// Fallbacks when relations are not loaded.
	assert.Equal(t, "Jibli", c["companyName"])
	assert.Equal(t, "Livreur", c["courierName"])

	order.Company = &domain.Company{Name: "Pizzeria Roma"}
	order.Courier = &domain.User{FullName: "Karim"}
	c = notify.BuildContext(order)
	assert.Equal(t, "Pizzeria Roma", c["companyName"])
	assert.Equal(t, "Karim", c["courierName"])
}

func TestTemplatePayloadCarriesRoutingKeys(t *testing.T) {
	amount, _ := decimal.Parse("25.50")
	order := &domain.Order{
		ID:          5,
		Status:      domain.OrderStatusPending,
		TotalAmount: amount,
	}
	c := notify.BuildContext(order)

	for _, kind := range []domain.EventKind{
		domain.EventOrderCreated,
		domain.EventOrderAccepted,
		domain.EventDeliveryAssigned,
		domain.EventDeliveryPickedUp,
		domain.EventDeliveryRejected,
		domain.EventOrderDeliveredMerchant,
		domain.EventOrderDeliveredCustomer,
	} {
		tmpl, ok := notify.TemplateFor(kind)
		require.True(t, ok, "missing template for %s", kind)

		payload := tmpl.Payload(c)
		assert.Equal(t, "5", payload["orderId"], "kind %s", kind)
		assert.NotEmpty(t, payload["route"], "kind %s", kind)
		assert.NotEmpty(t, payload["type"], "kind %s", kind)
		assert.NotEmpty(t, tmpl.Title(c), "kind %s", kind)
		assert.NotEmpty(t, tmpl.Body(c), "kind %s", kind)
	}
}

func TestNoTemplateForCancellation(t *testing.T) {
	_, ok := notify.TemplateFor(domain.EventOrderCanceled)
	assert.False(t, ok)
}
