package notify

import (
	"context"

	"github.com/jibli-app/jibli-backend/internal/core/domain"
	"github.com/jibli-app/jibli-backend/internal/core/port"
)

// Resolver maps abstract audiences to concrete recipients using the user
// store.
type Resolver struct {
	repo port.Repository
}

func NewResolver(repo port.Repository) *Resolver {
	return &Resolver{repo: repo}
}

func (r *Resolver) ResolveForOrder(ctx context.Context, role port.RecipientRole, order *domain.Order) ([]domain.Recipient, error) {
	switch role {
	case port.RoleCompanyStaff:
		users, err := r.repo.ListUsersByCompany(ctx, order.CompanyID)
		if err != nil {
			return nil, err
		}
		return toRecipients(users), nil
	case port.RoleOrderCustomer:
		user, err := r.repo.ReadUser(ctx, order.UserID)
		if err != nil {
			return nil, err
		}
		return []domain.Recipient{{UserID: user.ID, DeviceToken: user.DeviceToken}}, nil
	case port.RoleOrderCourier:
		if !order.HasCourier() {
			return []domain.Recipient{}, nil
		}
		user, err := r.repo.ReadUser(ctx, *order.CourierID)
		if err != nil {
			return nil, err
		}
		return []domain.Recipient{{UserID: user.ID, DeviceToken: user.DeviceToken}}, nil
	}
	return []domain.Recipient{}, nil
}

// ResolveForAudience materializes a broadcast audience. An unknown selector
// falls back to everyone.
func (r *Resolver) ResolveForAudience(ctx context.Context, selector domain.AudienceSelector) ([]domain.Recipient, error) {
	var (
		users []*domain.User
		err   error
	)

	switch selector {
	case domain.AudienceCustomers:
		users, err = r.repo.ListUsersByRole(ctx, domain.RoleCustomer)
	case domain.AudienceMerchants:
		users, err = r.repo.ListUsersByRole(ctx, domain.RoleMerchant)
	case domain.AudienceCouriers:
		users, err = r.repo.ListUsersByRole(ctx, domain.RoleCourier)
	default:
		users, err = r.repo.ListUsers(ctx)
	}
	if err != nil {
		return nil, err
	}

	return toRecipients(users), nil
}

func toRecipients(users []*domain.User) []domain.Recipient {
	recipients := make([]domain.Recipient, 0, len(users))
	for _, u := range users {
		recipients = append(recipients, domain.Recipient{UserID: u.ID, DeviceToken: u.DeviceToken})
	}
	return recipients
}
