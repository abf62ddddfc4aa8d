package domain

type EventKind string

const (
	EventOrderCreated           EventKind = "ORDER_CREATED"
	EventOrderAccepted          EventKind = "ORDER_ACCEPTED"
	EventDeliveryAssigned       EventKind = "DELIVERY_ASSIGNED"
	EventDeliveryPickedUp       EventKind = "DELIVERY_PICKED_UP"
	EventDeliveryRejected       EventKind = "DELIVERY_REJECTED"
	EventOrderDeliveredMerchant EventKind = "ORDER_DELIVERED_MERCHANT"
	EventOrderDeliveredCustomer EventKind = "ORDER_DELIVERED_CUSTOMER"
	EventOrderCanceled          EventKind = "ORDER_CANCELED"
)

// NotificationEvent is a notification-worthy fact produced by a status
// transition, decoupled from its eventual delivery.
type NotificationEvent struct {
	Kind  EventKind
	Order *Order
}

type transition struct {
	From OrderStatus
	To   OrderStatus
}

// transitionEvents is the whole notification policy of the order lifecycle.
// A delivered order notifies both sides, everything else notifies one.
var transitionEvents = map[transition][]EventKind{
	{OrderStatusPending, OrderStatusInPreparation}: {EventOrderAccepted},
	{OrderStatusWaiting, OrderStatusPickedUp}:      {EventDeliveryPickedUp},
	{OrderStatusWaiting, OrderStatusRejected}:      {EventDeliveryRejected},
	{OrderStatusPickedUp, OrderStatusDelivered}:    {EventOrderDeliveredMerchant, EventOrderDeliveredCustomer},
}

// TransitionEvents maps a status change to the events it emits. Pure and
// total: the same inputs always produce the same set. Moving into WAITING
// from any other status additionally notifies the courier when one is
// assigned; repeating WAITING stays silent.
func TransitionEvents(from, to OrderStatus, hasCourier bool) []EventKind {
	events := make([]EventKind, 0, 2)
	events = append(events, transitionEvents[transition{from, to}]...)
	if to == OrderStatusWaiting && from != to && hasCourier {
		events = append(events, EventDeliveryAssigned)
	}
	return events
}
