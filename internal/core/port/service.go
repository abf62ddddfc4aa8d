package port

import (
	"context"

	"github.com/jibli-app/jibli-backend/internal/core/domain"
)

type OrderStatusChange struct {
	Status       domain.OrderStatus
	CourierID    *uint64
	AssignedByID *uint64
}

type Service interface {
	RegisterUser(ctx context.Context, user *domain.User) (*domain.User, error)
	LoginUser(ctx context.Context, email string, password string) (string, error)
	RegisterDeviceToken(ctx context.Context, userID uint64, token string) error

	CreateOrder(ctx context.Context, order *domain.Order) (*domain.Order, error)
	UpdateOrderStatus(ctx context.Context, orderID uint64, change OrderStatusChange) (*domain.Order, error)
	GetOrder(ctx context.Context, orderID uint64) (*domain.Order, error)
	ListOrders(ctx context.Context) ([]*domain.Order, error)
	ListOrdersByUser(ctx context.Context, userID uint64) ([]*domain.Order, error)
	ListOrdersByCompany(ctx context.Context, companyID uint64) ([]*domain.Order, error)
	ListOrdersByCourier(ctx context.Context, courierID uint64) ([]*domain.Order, error)
	DeleteOrder(ctx context.Context, orderID uint64) error

	CreateProduct(ctx context.Context, product *domain.Product) (*domain.Product, error)
	UpdateProduct(ctx context.Context, product *domain.Product) (*domain.Product, error)
	GetProduct(ctx context.Context, productID uint64) (*domain.Product, error)
	ListProducts(ctx context.Context) ([]*domain.Product, error)
	DeleteProduct(ctx context.Context, productID uint64) error

	CreateBroadcast(ctx context.Context, b *domain.Broadcast) (*domain.Broadcast, error)
	ScheduleBroadcast(ctx context.Context, b *domain.Broadcast) (*domain.Broadcast, error)
	ListBroadcasts(ctx context.Context) ([]*domain.Broadcast, error)
	DeactivateBroadcast(ctx context.Context, broadcastID uint64) error
}
