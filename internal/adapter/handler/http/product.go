package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/govalues/decimal"
	"github.com/jibli-app/jibli-backend/internal/core/domain"
	"github.com/jibli-app/jibli-backend/internal/core/port"
	"go.uber.org/zap"
)

type ProductHandler struct {
	Handler
	service port.Service
}

func NewProductHandler(service port.Service, logger *zap.Logger) (*ProductHandler, error) {
	return &ProductHandler{
		Handler: *NewHandler(logger),
		service: service,
	}, nil
}

type productRequest struct {
	CompanyID          uint64  `json:"companyId"`
	CategoryID         uint64  `json:"categoryId"`
	Name               string  `json:"name"`
	Description        string  `json:"description"`
	Price              float64 `json:"price"`
	DiscountPercentage float64 `json:"discountPercentage"`
	IsAvailable        bool    `json:"isAvailable"`
}

func (pr *productRequest) toDomain() (*domain.Product, error) {
	price, err := decimal.NewFromFloat64(pr.Price)
	if err != nil {
		return nil, err
	}
	discount, err := decimal.NewFromFloat64(pr.DiscountPercentage)
	if err != nil {
		return nil, err
	}
	return &domain.Product{
		CompanyID:          pr.CompanyID,
		CategoryID:         pr.CategoryID,
		Name:               pr.Name,
		Description:        pr.Description,
		Price:              price,
		DiscountPercentage: discount,
		IsAvailable:        pr.IsAvailable,
	}, nil
}

type productResponse struct {
	ID                 uint64          `json:"id"`
	CompanyID          uint64          `json:"companyId"`
	CategoryID         uint64          `json:"categoryId"`
	Name               string          `json:"name"`
	Description        string          `json:"description"`
	Price              decimal.Decimal `json:"price"`
	DiscountPercentage decimal.Decimal `json:"discountPercentage"`
	FinalPrice         decimal.Decimal `json:"finalPrice"`
	IsAvailable        bool            `json:"isAvailable"`
	CreatedAt          time.Time       `json:"createdAt"`
	LastUpdated        time.Time       `json:"lastUpdated"`
}

func newProductResponse(p *domain.Product) productResponse {
	return productResponse{
		ID:                 p.ID,
		CompanyID:          p.CompanyID,
		CategoryID:         p.CategoryID,
		Name:               p.Name,
		Description:        p.Description,
		Price:              p.Price,
		DiscountPercentage: p.DiscountPercentage,
		FinalPrice:         p.FinalPrice,
		IsAvailable:        p.IsAvailable,
		CreatedAt:          p.CreatedAt,
		LastUpdated:        p.LastUpdated,
	}
}

func (ph *ProductHandler) CreateProduct(ctx *gin.Context) {
	req := productRequest{}
	err := ctx.ShouldBindBodyWithJSON(&req)
	if err != nil {
		ph.handleValidationError(ctx, err)
		return
	}

	product, err := req.toDomain()
	if err != nil {
		ph.handleValidationError(ctx, err)
		return
	}

	created, err := ph.service.CreateProduct(ctx, product)
	if err != nil {
		ph.handleError(ctx, err)
		return
	}

	ph.handleSuccessWithStatus(ctx, newProductResponse(created), http.StatusCreated)
}

func (ph *ProductHandler) UpdateProduct(ctx *gin.Context) {
	productID, err := pathID(ctx, "id")
	if err != nil {
		ph.handleValidationError(ctx, err)
		return
	}

	req := productRequest{}
	err = ctx.ShouldBindBodyWithJSON(&req)
	if err != nil {
		ph.handleValidationError(ctx, err)
		return
	}

	product, err := req.toDomain()
	if err != nil {
		ph.handleValidationError(ctx, err)
		return
	}
	product.ID = productID

	updated, err := ph.service.UpdateProduct(ctx, product)
	if err != nil {
		ph.handleError(ctx, err)
		return
	}

	ph.handleSuccess(ctx, newProductResponse(updated))
}

func (ph *ProductHandler) GetProduct(ctx *gin.Context) {
	productID, err := pathID(ctx, "id")
	if err != nil {
		ph.handleValidationError(ctx, err)
		return
	}

	product, err := ph.service.GetProduct(ctx, productID)
	if err != nil {
		ph.handleError(ctx, err)
		return
	}

	ph.handleSuccess(ctx, newProductResponse(product))
}

func (ph *ProductHandler) ListProducts(ctx *gin.Context) {
	list, err := ph.service.ListProducts(ctx)
	if err != nil {
		ph.handleError(ctx, err)
		return
	}

	result := make([]productResponse, 0, len(list))
	for _, p := range list {
		result = append(result, newProductResponse(p))
	}
	ph.handleSuccess(ctx, result)
}

func (ph *ProductHandler) DeleteProduct(ctx *gin.Context) {
	productID, err := pathID(ctx, "id")
	if err != nil {
		ph.handleValidationError(ctx, err)
		return
	}

	err = ph.service.DeleteProduct(ctx, productID)
	if err != nil {
		ph.handleError(ctx, err)
		return
	}

	ph.handleSuccessWithStatus(ctx, nil, http.StatusNoContent)
}
