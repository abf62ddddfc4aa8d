package service

import (
	"context"
	"errors"
	"time"

	"github.com/jibli-app/jibli-backend/internal/core/domain"
	"github.com/jibli-app/jibli-backend/internal/core/port"
	"go.uber.org/zap"
)

func (s *Service) CreateOrder(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	if order.UserID == 0 {
		return nil, domain.ErrOrderMissingUser
	}
	if order.CompanyID == 0 {
		return nil, domain.ErrOrderMissingCompany
	}

	company, err := s.repo.ReadCompany(ctx, order.CompanyID)
	if err != nil {
		return nil, err
	}
	order.Company = company

	// Fee comes from the request when given, otherwise from the company.
	if order.DeliveryFee.IsZero() {
		order.DeliveryFee = company.DeliveryFee
	}

	total, err := order.Subtotal.Add(order.DeliveryFee)
	if err != nil {
		s.logger.Error("Order total", zap.Error(err))
		return nil, domain.ErrInternal
	}
	order.TotalAmount = total

	now := time.Now()
	order.Status = domain.OrderStatusPending
	order.OrderDate = now
	order.CreatedAt = now
	order.LastUpdated = now

	newOrder, err := s.repo.CreateOrder(ctx, order)
	if err != nil {
		s.logger.Error("Create order", zap.Error(err))
		return nil, err
	}
	newOrder.Company = company

	// Creation notifies the merchant staff; never part of the transaction.
	s.dispatcher.Dispatch(ctx, domain.NotificationEvent{
		Kind:  domain.EventOrderCreated,
		Order: newOrder,
	})

	return newOrder, nil
}

func (s *Service) UpdateOrderStatus(ctx context.Context, orderID uint64,
	change port.OrderStatusChange) (*domain.Order, error) {
	order, err := s.repo.ReadOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if change.CourierID != nil {
		courier, err := s.repo.ReadUser(ctx, *change.CourierID)
		if err != nil {
			return nil, err
		}
		order.CourierID = change.CourierID
		order.Courier = courier
	}
	if change.AssignedByID != nil {
		order.AssignedByID = change.AssignedByID
	}

	events := order.ApplyStatus(change.Status, time.Now())

	updated, err := s.repo.UpdateOrder(ctx, order)
	if err != nil {
		if errors.Is(err, domain.ErrConflictingData) {
			// Lost an update race on this order; the caller retries.
			return nil, domain.ErrConflictingData
		}
		s.logger.Error("Update order",
			zap.Uint64("order", orderID), zap.Error(err))
		return nil, err
	}

	for _, kind := range events {
		s.dispatcher.Dispatch(ctx, domain.NotificationEvent{
			Kind:  kind,
			Order: updated,
		})
	}

	return updated, nil
}

func (s *Service) GetOrder(ctx context.Context, orderID uint64) (*domain.Order, error) {
	return s.repo.ReadOrder(ctx, orderID)
}

func (s *Service) ListOrders(ctx context.Context) ([]*domain.Order, error) {
	list, err := s.repo.ListOrders(ctx)
	if err != nil {
		s.logger.Error("List orders", zap.Error(err))
		return nil, err
	}
	return list, nil
}

func (s *Service) ListOrdersByUser(ctx context.Context, userID uint64) ([]*domain.Order, error) {
	return s.repo.ListOrdersByUser(ctx, userID)
}

func (s *Service) ListOrdersByCompany(ctx context.Context, companyID uint64) ([]*domain.Order, error) {
	return s.repo.ListOrdersByCompany(ctx, companyID)
}

func (s *Service) ListOrdersByCourier(ctx context.Context, courierID uint64) ([]*domain.Order, error) {
	return s.repo.ListOrdersByCourier(ctx, courierID)
}

func (s *Service) DeleteOrder(ctx context.Context, orderID uint64) error {
	return s.repo.DeleteOrder(ctx, orderID)
}
