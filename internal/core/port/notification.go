package port

import (
	"context"

	"github.com/jibli-app/jibli-backend/internal/core/domain"
)

// RecipientRole selects which party of an order is being addressed.
type RecipientRole string

const (
	RoleCompanyStaff  RecipientRole = "COMPANY_STAFF"
	RoleOrderCustomer RecipientRole = "ORDER_CUSTOMER"
	RoleOrderCourier  RecipientRole = "ORDER_COURIER"
)

//go:generate mockgen -source=notification.go -destination=mock/notification.go -package=mock
type RecipientResolver interface {
	ResolveForOrder(ctx context.Context, role RecipientRole, order *domain.Order) ([]domain.Recipient, error)
	ResolveForAudience(ctx context.Context, selector domain.AudienceSelector) ([]domain.Recipient, error)
}

// NotificationGateway sends a single push message to one recipient.
// It reports success or failure and must never fail any harder than that.
type NotificationGateway interface {
	SendToRecipient(ctx context.Context, recipient domain.Recipient, title, body string, payload map[string]string) bool
}

// Dispatcher turns a cascading order event into concrete push messages.
// Dispatch is best-effort telemetry: it has no error to return.
type Dispatcher interface {
	Dispatch(ctx context.Context, event domain.NotificationEvent)
}

// BroadcastSender fans an announcement out to its audience without blocking
// the caller.
type BroadcastSender interface {
	Send(b *domain.Broadcast)
}
