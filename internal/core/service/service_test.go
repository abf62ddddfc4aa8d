package service_test

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/govalues/decimal"
	"github.com/jibli-app/jibli-backend/internal/core/domain"
	"github.com/jibli-app/jibli-backend/internal/core/port"
	"github.com/jibli-app/jibli-backend/internal/core/port/mock"
	"github.com/jibli-app/jibli-backend/internal/core/service"
	"github.com/jibli-app/jibli-backend/internal/core/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type mocks struct {
	repo       *mock.MockRepository
	ts         *mock.MockTokenService
	dispatcher *mock.MockDispatcher
	broadcasts *mock.MockBroadcastSender
}

func newService(t *testing.T) (*service.Service, mocks) {
	mockCtrl := gomock.NewController(t)
	t.Cleanup(mockCtrl.Finish)

	m := mocks{
		repo:       mock.NewMockRepository(mockCtrl),
		ts:         mock.NewMockTokenService(mockCtrl),
		dispatcher: mock.NewMockDispatcher(mockCtrl),
		broadcasts: mock.NewMockBroadcastSender(mockCtrl),
	}

	s, err := service.NewService(m.repo, m.ts, m.dispatcher, m.broadcasts, zap.NewNop())
	require.NoError(t, err)
	return s, m
}

func mustDecimal(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	v, err := decimal.Parse(s)
	require.NoError(t, err)
	return v
}

func TestService_RegisterUser(t *testing.T) {
	ctx := context.Background()

	hashed, _ := utils.HashPassword("secret")
	user := domain.User{ID: 1, Email: "a@b.tn", Password: hashed, Role: domain.RoleCustomer}

	t.Run("register good", func(t *testing.T) {
		s, m := newService(t)
		m.repo.EXPECT().GetUserByEmail(gomock.Any(), user.Email).
			Return(nil, domain.ErrDataNotFound)
		m.repo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(&user, nil)

		result, err := s.RegisterUser(ctx, &domain.User{Email: user.Email, Password: "secret"})
		assert.NoError(t, err)
		assert.Equal(t, &user, result)
	})

	t.Run("register already exists", func(t *testing.T) {
		s, m := newService(t)
		m.repo.EXPECT().GetUserByEmail(gomock.Any(), user.Email).Return(&user, nil)

		result, err := s.RegisterUser(ctx, &domain.User{Email: user.Email, Password: "secret"})
		assert.ErrorIs(t, err, domain.ErrConflictingData)
		assert.Nil(t, result)
	})
}

func TestService_LoginUser(t *testing.T) {
	ctx := context.Background()

	hashed, _ := utils.HashPassword("secret")
	user := domain.User{ID: 1, Email: "a@b.tn", Password: hashed}

	t.Run("login good", func(t *testing.T) {
		s, m := newService(t)
		m.repo.EXPECT().GetUserByEmail(gomock.Any(), user.Email).Return(&user, nil)
		m.ts.EXPECT().CreateToken(&user).Return("token", nil)

		token, err := s.LoginUser(ctx, user.Email, "secret")
		assert.NoError(t, err)
		assert.Equal(t, "token", token)
	})

	t.Run("bad password", func(t *testing.T) {
		s, m := newService(t)
		m.repo.EXPECT().GetUserByEmail(gomock.Any(), user.Email).Return(&user, nil)

		_, err := s.LoginUser(ctx, user.Email, "wrong")
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		s, m := newService(t)
		m.repo.EXPECT().GetUserByEmail(gomock.Any(), "x@y.tn").
			Return(nil, domain.ErrDataNotFound)

		_, err := s.LoginUser(ctx, "x@y.tn", "secret")
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})
}

func TestService_CreateOrder(t *testing.T) {
	ctx := context.Background()

	company := domain.Company{ID: 3, Name: "Pizzeria Roma",
		DeliveryFee: mustDecimal(t, "5.00")}

	t.Run("total is subtotal plus fee", func(t *testing.T) {
		s, m := newService(t)

		order := domain.Order{
			UserID: 7, CompanyID: 3,
			Subtotal: mustDecimal(t, "100.00"),
		}

		m.repo.EXPECT().ReadCompany(gomock.Any(), uint64(3)).Return(&company, nil)
		m.repo.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, o *domain.Order) (*domain.Order, error) {
				assert.Zero(t, o.TotalAmount.Cmp(mustDecimal(t, "105.00")))
				assert.Equal(t, domain.OrderStatusPending, o.Status)
				o.ID = 42
				return o, nil
			})
		m.dispatcher.EXPECT().Dispatch(gomock.Any(), gomock.Any()).
			Do(func(ctx context.Context, event domain.NotificationEvent) {
				assert.Equal(t, domain.EventOrderCreated, event.Kind)
				assert.Equal(t, uint64(42), event.Order.ID)
			})

		created, err := s.CreateOrder(ctx, &order)
		require.NoError(t, err)
		assert.Zero(t, created.TotalAmount.Cmp(mustDecimal(t, "105.00")))
		assert.Equal(t, &company, created.Company)
	})

	t.Run("fee falls back to the company", func(t *testing.T) {
		s, m := newService(t)

		order := domain.Order{
			UserID: 7, CompanyID: 3,
			Subtotal: mustDecimal(t, "20.00"),
		}

		m.repo.EXPECT().ReadCompany(gomock.Any(), uint64(3)).Return(&company, nil)
		m.repo.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, o *domain.Order) (*domain.Order, error) {
				assert.Zero(t, o.DeliveryFee.Cmp(mustDecimal(t, "5.00")))
				return o, nil
			})
		m.dispatcher.EXPECT().Dispatch(gomock.Any(), gomock.Any())

		_, err := s.CreateOrder(ctx, &order)
		assert.NoError(t, err)
	})

	t.Run("missing user or company", func(t *testing.T) {
		s, _ := newService(t)

		_, err := s.CreateOrder(ctx, &domain.Order{CompanyID: 3})
		assert.ErrorIs(t, err, domain.ErrOrderMissingUser)

		_, err = s.CreateOrder(ctx, &domain.Order{UserID: 7})
		assert.ErrorIs(t, err, domain.ErrOrderMissingCompany)
	})
}

func TestService_UpdateOrderStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("pickup dispatches once to staff", func(t *testing.T) {
		s, m := newService(t)

		courierID := uint64(9)
		stored := &domain.Order{ID: 1, UserID: 7, CompanyID: 3,
			CourierID: &courierID, Status: domain.OrderStatusWaiting}

		m.repo.EXPECT().ReadOrder(gomock.Any(), uint64(1)).Return(stored, nil)
		m.repo.EXPECT().UpdateOrder(gomock.Any(), stored).Return(stored, nil)
		m.dispatcher.EXPECT().Dispatch(gomock.Any(), gomock.Any()).
			Do(func(ctx context.Context, event domain.NotificationEvent) {
				assert.Equal(t, domain.EventDeliveryPickedUp, event.Kind)
			}).
			Times(1)

		updated, err := s.UpdateOrderStatus(ctx, 1,
			port.OrderStatusChange{Status: domain.OrderStatusPickedUp})
		require.NoError(t, err)
		assert.Equal(t, domain.OrderStatusPickedUp, updated.Status)
		assert.NotNil(t, updated.PickedUpAt)
	})

	t.Run("delivery dispatches to both sides", func(t *testing.T) {
		s, m := newService(t)

		stored := &domain.Order{ID: 1, UserID: 7, CompanyID: 3,
			Status: domain.OrderStatusPickedUp}

		m.repo.EXPECT().ReadOrder(gomock.Any(), uint64(1)).Return(stored, nil)
		m.repo.EXPECT().UpdateOrder(gomock.Any(), stored).Return(stored, nil)

		kinds := make([]domain.EventKind, 0, 2)
		m.dispatcher.EXPECT().Dispatch(gomock.Any(), gomock.Any()).
			Do(func(ctx context.Context, event domain.NotificationEvent) {
				kinds = append(kinds, event.Kind)
			}).
			Times(2)

		_, err := s.UpdateOrderStatus(ctx, 1,
			port.OrderStatusChange{Status: domain.OrderStatusDelivered})
		require.NoError(t, err)
		assert.Equal(t, []domain.EventKind{
			domain.EventOrderDeliveredMerchant,
			domain.EventOrderDeliveredCustomer,
		}, kinds)
	})

	t.Run("assigning a courier loads and notifies them", func(t *testing.T) {
		s, m := newService(t)

		stored := &domain.Order{ID: 1, UserID: 7, CompanyID: 3,
			Status: domain.OrderStatusInPreparation}
		courierID := uint64(9)
		courier := &domain.User{ID: 9, FullName: "Karim", Role: domain.RoleCourier}

		m.repo.EXPECT().ReadOrder(gomock.Any(), uint64(1)).Return(stored, nil)
		m.repo.EXPECT().ReadUser(gomock.Any(), courierID).Return(courier, nil)
		m.repo.EXPECT().UpdateOrder(gomock.Any(), stored).Return(stored, nil)
		m.dispatcher.EXPECT().Dispatch(gomock.Any(), gomock.Any()).
			Do(func(ctx context.Context, event domain.NotificationEvent) {
				assert.Equal(t, domain.EventDeliveryAssigned, event.Kind)
			}).
			Times(1)

		updated, err := s.UpdateOrderStatus(ctx, 1, port.OrderStatusChange{
			Status:    domain.OrderStatusWaiting,
			CourierID: &courierID,
		})
		require.NoError(t, err)
		assert.Equal(t, courier, updated.Courier)
	})

	t.Run("lost update race", func(t *testing.T) {
		s, m := newService(t)

		stored := &domain.Order{ID: 1, UserID: 7, CompanyID: 3,
			Status: domain.OrderStatusPending, Version: 4}

		m.repo.EXPECT().ReadOrder(gomock.Any(), uint64(1)).Return(stored, nil)
		m.repo.EXPECT().UpdateOrder(gomock.Any(), stored).
			Return(nil, domain.ErrConflictingData)

		_, err := s.UpdateOrderStatus(ctx, 1,
			port.OrderStatusChange{Status: domain.OrderStatusCanceled})
		assert.ErrorIs(t, err, domain.ErrConflictingData)
	})

	t.Run("cancellation dispatches nothing", func(t *testing.T) {
		s, m := newService(t)

		stored := &domain.Order{ID: 1, UserID: 7, CompanyID: 3,
			Status: domain.OrderStatusPending}

		m.repo.EXPECT().ReadOrder(gomock.Any(), uint64(1)).Return(stored, nil)
		m.repo.EXPECT().UpdateOrder(gomock.Any(), stored).Return(stored, nil)

		updated, err := s.UpdateOrderStatus(ctx, 1,
			port.OrderStatusChange{Status: domain.OrderStatusCanceled})
		require.NoError(t, err)
		assert.NotNil(t, updated.CanceledAt)
	})
}

func TestService_CreateProduct(t *testing.T) {
	ctx := context.Background()

	t.Run("pricing applied", func(t *testing.T) {
		s, m := newService(t)

		product := domain.Product{
			CompanyID:          3,
			Name:               "Pizza",
			Price:              mustDecimal(t, "50.00"),
			DiscountPercentage: mustDecimal(t, "20"),
		}

		m.repo.EXPECT().CreateProduct(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, p *domain.Product) (*domain.Product, error) {
				return p, nil
			})

		created, err := s.CreateProduct(ctx, &product)
		require.NoError(t, err)
		assert.Zero(t, created.FinalPrice.Cmp(mustDecimal(t, "40.00")))
	})

	t.Run("validation", func(t *testing.T) {
		s, _ := newService(t)

		_, err := s.CreateProduct(ctx, &domain.Product{Price: mustDecimal(t, "5")})
		assert.ErrorIs(t, err, domain.ErrProductMissingName)

		_, err = s.CreateProduct(ctx, &domain.Product{Name: "Pizza"})
		assert.ErrorIs(t, err, domain.ErrProductBadPrice)
	})
}

func TestService_Broadcasts(t *testing.T) {
	ctx := context.Background()

	t.Run("create enqueues delivery", func(t *testing.T) {
		s, m := newService(t)

		b := domain.Broadcast{Title: "Promo"}
		saved := domain.Broadcast{ID: 5, Title: "Promo",
			TargetAudience: domain.AudienceAll, IsActive: true}

		m.repo.EXPECT().CreateBroadcast(gomock.Any(), gomock.Any()).Return(&saved, nil)
		m.broadcasts.EXPECT().Send(&saved)

		result, err := s.CreateBroadcast(ctx, &b)
		require.NoError(t, err)
		assert.Equal(t, &saved, result)
		assert.Equal(t, domain.AudienceAll, b.TargetAudience)
		assert.Equal(t, domain.BroadcastAnnouncement, b.Category)
	})

	t.Run("missing title", func(t *testing.T) {
		s, _ := newService(t)

		_, err := s.CreateBroadcast(ctx, &domain.Broadcast{})
		assert.ErrorIs(t, err, domain.ErrBroadcastMissingTitle)
	})

	t.Run("schedule requires a time", func(t *testing.T) {
		s, _ := newService(t)

		_, err := s.ScheduleBroadcast(ctx, &domain.Broadcast{Title: "Promo"})
		assert.ErrorIs(t, err, domain.ErrBadRequest)
	})

	t.Run("deactivate flips the flag", func(t *testing.T) {
		s, m := newService(t)

		b := domain.Broadcast{ID: 5, Title: "Promo", IsActive: true}
		m.repo.EXPECT().ReadBroadcast(gomock.Any(), uint64(5)).Return(&b, nil)
		m.repo.EXPECT().UpdateBroadcast(gomock.Any(), &b).Return(&b, nil)

		err := s.DeactivateBroadcast(ctx, 5)
		require.NoError(t, err)
		assert.False(t, b.IsActive)
	})
}
