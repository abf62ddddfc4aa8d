package notify_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/govalues/decimal"
	"github.com/jibli-app/jibli-backend/internal/core/domain"
	"github.com/jibli-app/jibli-backend/internal/core/notify"
	"github.com/jibli-app/jibli-backend/internal/core/port"
	"github.com/jibli-app/jibli-backend/internal/core/port/mock"
	"go.uber.org/zap"
)

func testOrder() *domain.Order {
	amount, _ := decimal.Parse("105.00")
	return &domain.Order{
		ID:              42,
		UserID:          7,
		CompanyID:       3,
		CustomerName:    "Amine",
		CustomerPhone:   "+216 20 000 000",
		CustomerAddress: "Tunis",
		TotalAmount:     amount,
		Status:          domain.OrderStatusPending,
	}
}

func TestDispatcher_FanOutSurvivesFailures(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	resolver := mock.NewMockRecipientResolver(mockCtrl)
	gateway := mock.NewMockNotificationGateway(mockCtrl)

	order := testOrder()
	recipients := []domain.Recipient{
		{UserID: 1, DeviceToken: "tok-1"},
		{UserID: 2, DeviceToken: "tok-2"},
		{UserID: 3, DeviceToken: "tok-3"},
	}

	resolver.EXPECT().
		ResolveForOrder(gomock.Any(), port.RoleCompanyStaff, order).
		Return(recipients, nil)

	// The middle recipient fails; the others must still be attempted.
	gateway.EXPECT().
		SendToRecipient(gomock.Any(), recipients[0], gomock.Any(), gomock.Any(), gomock.Any()).
		Return(true)
	gateway.EXPECT().
		SendToRecipient(gomock.Any(), recipients[1], gomock.Any(), gomock.Any(), gomock.Any()).
		Return(false)
	gateway.EXPECT().
		SendToRecipient(gomock.Any(), recipients[2], gomock.Any(), gomock.Any(), gomock.Any()).
		Return(true)

	d := notify.NewDispatcher(resolver, gateway, zap.NewNop())
	d.Dispatch(context.Background(), domain.NotificationEvent{
		Kind:  domain.EventOrderCreated,
		Order: order,
	})
}

func TestDispatcher_ResolverFailureIsSwallowed(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	resolver := mock.NewMockRecipientResolver(mockCtrl)
	gateway := mock.NewMockNotificationGateway(mockCtrl)

	order := testOrder()

	resolver.EXPECT().
		ResolveForOrder(gomock.Any(), gomock.Any(), order).
		Return(nil, errors.New("db down"))

	// No gateway call may happen.
	d := notify.NewDispatcher(resolver, gateway, zap.NewNop())
	d.Dispatch(context.Background(), domain.NotificationEvent{
		Kind:  domain.EventOrderAccepted,
		Order: order,
	})
}

func TestDispatcher_UnknownKindIsSwallowed(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	resolver := mock.NewMockRecipientResolver(mockCtrl)
	gateway := mock.NewMockNotificationGateway(mockCtrl)

	// Neither the resolver nor the gateway may be touched.
	d := notify.NewDispatcher(resolver, gateway, zap.NewNop())
	d.Dispatch(context.Background(), domain.NotificationEvent{
		Kind:  domain.EventOrderCanceled,
		Order: testOrder(),
	})
}

func TestDispatcher_RoutingPerKind(t *testing.T) {
	tests := []struct {
		kind     domain.EventKind
		audience port.RecipientRole
	}{
		{domain.EventOrderCreated, port.RoleCompanyStaff},
		{domain.EventOrderAccepted, port.RoleOrderCustomer},
		{domain.EventDeliveryAssigned, port.RoleOrderCourier},
		{domain.EventDeliveryPickedUp, port.RoleCompanyStaff},
		{domain.EventDeliveryRejected, port.RoleCompanyStaff},
		{domain.EventOrderDeliveredMerchant, port.RoleCompanyStaff},
		{domain.EventOrderDeliveredCustomer, port.RoleOrderCustomer},
	}

	for _, test := range tests {
		t.Run(string(test.kind), func(t *testing.T) {
			mockCtrl := gomock.NewController(t)
			defer mockCtrl.Finish()

			resolver := mock.NewMockRecipientResolver(mockCtrl)
			gateway := mock.NewMockNotificationGateway(mockCtrl)

			order := testOrder()
			resolver.EXPECT().
				ResolveForOrder(gomock.Any(), test.audience, order).
				Return([]domain.Recipient{}, nil)

			d := notify.NewDispatcher(resolver, gateway, zap.NewNop())
			d.Dispatch(context.Background(), domain.NotificationEvent{
				Kind:  test.kind,
				Order: order,
			})
		})
	}
}
