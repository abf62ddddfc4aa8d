package notify

import (
	"context"

	"github.com/jibli-app/jibli-backend/internal/core/domain"
	"github.com/jibli-app/jibli-backend/internal/core/port"
	"go.uber.org/zap"
)

// Dispatcher delivers cascading order events through the push gateway.
// Delivery is best-effort: nothing a dispatch does can fail the business
// operation that produced the event.
type Dispatcher struct {
	resolver port.RecipientResolver
	gateway  port.NotificationGateway
	logger   *zap.Logger
}

func NewDispatcher(resolver port.RecipientResolver, gateway port.NotificationGateway, logger *zap.Logger) *Dispatcher {
	return &Dispatcher{
		resolver: resolver,
		gateway:  gateway,
		logger:   logger,
	}
}

func (d *Dispatcher) Dispatch(ctx context.Context, event domain.NotificationEvent) {
	template, ok := templates[event.Kind]
	if !ok {
		d.logger.Warn("no template for event",
			zap.String("kind", string(event.Kind)))
		return
	}

	recipients, err := d.resolver.ResolveForOrder(ctx, template.Audience, event.Order)
	if err != nil {
		d.logger.Warn("recipient resolution failed",
			zap.String("kind", string(event.Kind)),
			zap.Uint64("order", event.Order.ID),
			zap.Error(err))
		return
	}

	c := BuildContext(event.Order)
	title := template.Title(c)
	body := template.Body(c)
	payload := template.Payload(c)

	// Fan-out is independent per recipient: one failure never aborts the rest.
	for _, recipient := range recipients {
		if !d.gateway.SendToRecipient(ctx, recipient, title, body, payload) {
			d.logger.Warn("notification delivery failed",
				zap.String("kind", string(event.Kind)),
				zap.Uint64("order", event.Order.ID),
				zap.Uint64("recipient", recipient.UserID))
			continue
		}
		d.logger.Debug("notification sent",
			zap.String("kind", string(event.Kind)),
			zap.Uint64("order", event.Order.ID),
			zap.Uint64("recipient", recipient.UserID))
	}
}
