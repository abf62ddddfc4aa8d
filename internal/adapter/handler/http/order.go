package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/govalues/decimal"
	"github.com/jibli-app/jibli-backend/internal/core/domain"
	"github.com/jibli-app/jibli-backend/internal/core/port"
	"go.uber.org/zap"
)

type OrderHandler struct {
	Handler
	service port.Service
}

func NewOrderHandler(service port.Service, logger *zap.Logger) (*OrderHandler, error) {
	return &OrderHandler{
		Handler: *NewHandler(logger),
		service: service,
	}, nil
}

func pathID(ctx *gin.Context, name string) (uint64, error) {
	return strconv.ParseUint(ctx.Param(name), 10, 64)
}

type createOrderRequest struct {
	CompanyID       uint64  `json:"companyId" binding:"required"`
	CustomerName    string  `json:"customerName"`
	CustomerEmail   string  `json:"customerEmail"`
	CustomerPhone   string  `json:"customerPhone"`
	CustomerAddress string  `json:"customerAddress"`
	OrderNotes      string  `json:"orderNotes"`
	TotalProducts   int     `json:"totalProducts"`
	Quantity        int     `json:"quantity"`
	Subtotal        float64 `json:"subtotal"`
	DeliveryFee     float64 `json:"deliveryFee"`
	Discount        float64 `json:"discount"`
}

func (oh *OrderHandler) CreateOrder(ctx *gin.Context) {
	req := createOrderRequest{}
	err := ctx.ShouldBindBodyWithJSON(&req)
	if err != nil {
		oh.handleValidationError(ctx, err)
		return
	}

	subtotal, err := decimal.NewFromFloat64(req.Subtotal)
	if err != nil {
		oh.handleValidationError(ctx, err)
		return
	}
	fee, err := decimal.NewFromFloat64(req.DeliveryFee)
	if err != nil {
		oh.handleValidationError(ctx, err)
		return
	}
	discount, err := decimal.NewFromFloat64(req.Discount)
	if err != nil {
		oh.handleValidationError(ctx, err)
		return
	}

	order := &domain.Order{
		UserID:          getAuthPayload(ctx).UserID,
		CompanyID:       req.CompanyID,
		CustomerName:    req.CustomerName,
		CustomerEmail:   req.CustomerEmail,
		CustomerPhone:   req.CustomerPhone,
		CustomerAddress: req.CustomerAddress,
		OrderNotes:      req.OrderNotes,
		TotalProducts:   req.TotalProducts,
		Quantity:        req.Quantity,
		Subtotal:        subtotal,
		DeliveryFee:     fee,
		Discount:        discount,
	}

	created, err := oh.service.CreateOrder(ctx, order)
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	oh.handleSuccessWithStatus(ctx, newOrderResponse(created), http.StatusCreated)
}

type updateStatusRequest struct {
	Status       string  `json:"status" binding:"required"`
	CourierID    *uint64 `json:"courierId"`
	AssignedByID *uint64 `json:"assignedById"`
}

func (oh *OrderHandler) UpdateOrderStatus(ctx *gin.Context) {
	orderID, err := pathID(ctx, "id")
	if err != nil {
		oh.handleValidationError(ctx, err)
		return
	}

	req := updateStatusRequest{}
	err = ctx.ShouldBindBodyWithJSON(&req)
	if err != nil {
		oh.handleValidationError(ctx, err)
		return
	}

	status, err := domain.ParseOrderStatus(req.Status)
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	order, err := oh.service.UpdateOrderStatus(ctx, orderID, port.OrderStatusChange{
		Status:       status,
		CourierID:    req.CourierID,
		AssignedByID: req.AssignedByID,
	})
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	oh.handleSuccess(ctx, newOrderResponse(order))
}

type orderResponse struct {
	ID              uint64          `json:"id"`
	UserID          uint64          `json:"userId"`
	CompanyID       uint64          `json:"companyId"`
	CourierID       *uint64         `json:"courierId,omitempty"`
	CustomerName    string          `json:"customerName"`
	CustomerPhone   string          `json:"customerPhone"`
	CustomerAddress string          `json:"customerAddress"`
	Status          string          `json:"status"`
	Subtotal        decimal.Decimal `json:"subtotal"`
	DeliveryFee     decimal.Decimal `json:"deliveryFee"`
	TotalAmount     decimal.Decimal `json:"totalAmount"`
	CreatedAt       time.Time       `json:"createdAt"`
	LastUpdated     time.Time       `json:"lastUpdated"`
	DeliveredAt     *time.Time      `json:"deliveredAt,omitempty"`
}

func newOrderResponse(o *domain.Order) orderResponse {
	return orderResponse{
		ID:              o.ID,
		UserID:          o.UserID,
		CompanyID:       o.CompanyID,
		CourierID:       o.CourierID,
		CustomerName:    o.CustomerName,
		CustomerPhone:   o.CustomerPhone,
		CustomerAddress: o.CustomerAddress,
		Status:          string(o.Status),
		Subtotal:        o.Subtotal,
		DeliveryFee:     o.DeliveryFee,
		TotalAmount:     o.TotalAmount,
		CreatedAt:       o.CreatedAt,
		LastUpdated:     o.LastUpdated,
		DeliveredAt:     o.DeliveredAt,
	}
}

func (oh *OrderHandler) listResponse(ctx *gin.Context, list []*domain.Order, err error) {
	if err != nil {
		oh.handleError(ctx, err)
		return
	}
	result := make([]orderResponse, 0, len(list))
	for _, o := range list {
		result = append(result, newOrderResponse(o))
	}
	oh.handleSuccess(ctx, result)
}

func (oh *OrderHandler) GetOrder(ctx *gin.Context) {
	orderID, err := pathID(ctx, "id")
	if err != nil {
		oh.handleValidationError(ctx, err)
		return
	}

	order, err := oh.service.GetOrder(ctx, orderID)
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	oh.handleSuccess(ctx, newOrderResponse(order))
}

func (oh *OrderHandler) ListOrders(ctx *gin.Context) {
	list, err := oh.service.ListOrders(ctx)
	oh.listResponse(ctx, list, err)
}

func (oh *OrderHandler) ListOrdersByUser(ctx *gin.Context) {
	userID, err := pathID(ctx, "id")
	if err != nil {
		oh.handleValidationError(ctx, err)
		return
	}
	list, err := oh.service.ListOrdersByUser(ctx, userID)
	oh.listResponse(ctx, list, err)
}

func (oh *OrderHandler) ListOrdersByCompany(ctx *gin.Context) {
	companyID, err := pathID(ctx, "id")
	if err != nil {
		oh.handleValidationError(ctx, err)
		return
	}
	list, err := oh.service.ListOrdersByCompany(ctx, companyID)
	oh.listResponse(ctx, list, err)
}

func (oh *OrderHandler) ListOrdersByCourier(ctx *gin.Context) {
	courierID, err := pathID(ctx, "id")
	if err != nil {
		oh.handleValidationError(ctx, err)
		return
	}
	list, err := oh.service.ListOrdersByCourier(ctx, courierID)
	oh.listResponse(ctx, list, err)
}

func (oh *OrderHandler) DeleteOrder(ctx *gin.Context) {
	orderID, err := pathID(ctx, "id")
	if err != nil {
		oh.handleValidationError(ctx, err)
		return
	}

	err = oh.service.DeleteOrder(ctx, orderID)
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	oh.handleSuccessWithStatus(ctx, nil, http.StatusNoContent)
}
