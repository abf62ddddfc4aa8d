package service

import (
	"context"
	"time"

	"github.com/jibli-app/jibli-backend/internal/core/domain"
	"github.com/jibli-app/jibli-backend/internal/core/pricing"
	"go.uber.org/zap"
)

// applyPricing derives the final price from the product's base price and
// discount. It runs on every write and on every read mapping so the stored
// value can never drift from its inputs.
func (s *Service) applyPricing(product *domain.Product) error {
	product.DiscountPercentage = pricing.ClampDiscount(product.DiscountPercentage)

	final, err := pricing.FinalPrice(product.Price, product.DiscountPercentage)
	if err != nil {
		s.logger.Error("Product pricing", zap.Error(err))
		return domain.ErrInternal
	}
	product.FinalPrice = final
	return nil
}

func (s *Service) CreateProduct(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	if product.Name == "" {
		return nil, domain.ErrProductMissingName
	}
	if !product.Price.IsPos() {
		return nil, domain.ErrProductBadPrice
	}

	if err := s.applyPricing(product); err != nil {
		return nil, err
	}

	now := time.Now()
	product.CreatedAt = now
	product.LastUpdated = now

	newProduct, err := s.repo.CreateProduct(ctx, product)
	if err != nil {
		s.logger.Error("Create product", zap.Error(err))
		return nil, err
	}
	return newProduct, nil
}

func (s *Service) UpdateProduct(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	existing, err := s.repo.ReadProduct(ctx, product.ID)
	if err != nil {
		return nil, err
	}

	if product.Name != "" {
		existing.Name = product.Name
	}
	if product.Description != "" {
		existing.Description = product.Description
	}
	if product.Price.IsPos() {
		existing.Price = product.Price
	}
	existing.DiscountPercentage = product.DiscountPercentage
	existing.IsAvailable = product.IsAvailable
	existing.LastUpdated = time.Now()

	if err := s.applyPricing(existing); err != nil {
		return nil, err
	}

	updated, err := s.repo.UpdateProduct(ctx, existing)
	if err != nil {
		s.logger.Error("Update product",
			zap.Uint64("product", product.ID), zap.Error(err))
		return nil, err
	}
	return updated, nil
}

func (s *Service) GetProduct(ctx context.Context, productID uint64) (*domain.Product, error) {
	product, err := s.repo.ReadProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	if err := s.applyPricing(product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *Service) ListProducts(ctx context.Context) ([]*domain.Product, error) {
	list, err := s.repo.ListProducts(ctx)
	if err != nil {
		s.logger.Error("List products", zap.Error(err))
		return nil, err
	}
	for _, product := range list {
		if err := s.applyPricing(product); err != nil {
			return nil, err
		}
	}
	return list, nil
}

func (s *Service) DeleteProduct(ctx context.Context, productID uint64) error {
	return s.repo.DeleteProduct(ctx, productID)
}
