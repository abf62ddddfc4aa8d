package port

import (
	"context"

	"github.com/jibli-app/jibli-backend/internal/core/domain"
)

//go:generate mockgen -source=repository.go -destination=mock/repository.go -package=mock
type Repository interface {
	// User
	CreateUser(ctx context.Context, user *domain.User) (*domain.User, error)
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)
	ReadUser(ctx context.Context, userID uint64) (*domain.User, error)
	ListUsers(ctx context.Context) ([]*domain.User, error)
	ListUsersByRole(ctx context.Context, role domain.UserRole) ([]*domain.User, error)
	ListUsersByCompany(ctx context.Context, companyID uint64) ([]*domain.User, error)
	UpdateUserDeviceToken(ctx context.Context, userID uint64, token string) error

	// Company
	ReadCompany(ctx context.Context, companyID uint64) (*domain.Company, error)

	// Order
	CreateOrder(ctx context.Context, order *domain.Order) (*domain.Order, error)
	UpdateOrder(ctx context.Context, order *domain.Order) (*domain.Order, error)
	ReadOrder(ctx context.Context, orderID uint64) (*domain.Order, error)
	ListOrders(ctx context.Context) ([]*domain.Order, error)
	ListOrdersByUser(ctx context.Context, userID uint64) ([]*domain.Order, error)
	ListOrdersByCompany(ctx context.Context, companyID uint64) ([]*domain.Order, error)
	ListOrdersByCourier(ctx context.Context, courierID uint64) ([]*domain.Order, error)
	DeleteOrder(ctx context.Context, orderID uint64) error

	// Product
	CreateProduct(ctx context.Context, product *domain.Product) (*domain.Product, error)
	UpdateProduct(ctx context.Context, product *domain.Product) (*domain.Product, error)
	ReadProduct(ctx context.Context, productID uint64) (*domain.Product, error)
	ListProducts(ctx context.Context) ([]*domain.Product, error)
	DeleteProduct(ctx context.Context, productID uint64) error

	// Broadcast
	CreateBroadcast(ctx context.Context, b *domain.Broadcast) (*domain.Broadcast, error)
	UpdateBroadcast(ctx context.Context, b *domain.Broadcast) (*domain.Broadcast, error)
	ReadBroadcast(ctx context.Context, broadcastID uint64) (*domain.Broadcast, error)
	ListBroadcasts(ctx context.Context) ([]*domain.Broadcast, error)
	ListDueBroadcasts(ctx context.Context) ([]*domain.Broadcast, error)
}
