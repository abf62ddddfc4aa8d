package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jibli-app/jibli-backend/internal/core/domain"
	"github.com/jibli-app/jibli-backend/internal/core/port"
	"go.uber.org/zap"
)

type BroadcastHandler struct {
	Handler
	service port.Service
}

func NewBroadcastHandler(service port.Service, logger *zap.Logger) (*BroadcastHandler, error) {
	return &BroadcastHandler{
		Handler: *NewHandler(logger),
		service: service,
	}, nil
}

type broadcastRequest struct {
	Title          string     `json:"title" binding:"required"`
	Body           string     `json:"body"`
	ImageURL       string     `json:"imageUrl"`
	Category       string     `json:"category"`
	TargetAudience string     `json:"targetAudience"`
	ScheduledAt    *time.Time `json:"scheduledAt"`
	ExpiresAt      *time.Time `json:"expiresAt"`
}

func (br *broadcastRequest) toDomain() *domain.Broadcast {
	return &domain.Broadcast{
		Title:          br.Title,
		Body:           br.Body,
		ImageURL:       br.ImageURL,
		Category:       domain.ParseBroadcastCategory(br.Category),
		TargetAudience: domain.AudienceSelector(br.TargetAudience),
		ScheduledAt:    br.ScheduledAt,
		ExpiresAt:      br.ExpiresAt,
	}
}

type broadcastResponse struct {
	ID             uint64     `json:"id"`
	Title          string     `json:"title"`
	Body           string     `json:"body"`
	ImageURL       string     `json:"imageUrl,omitempty"`
	Category       string     `json:"category"`
	TargetAudience string     `json:"targetAudience"`
	IsActive       bool       `json:"isActive"`
	SentCount      int        `json:"sentCount"`
	FailedCount    int        `json:"failedCount"`
	CreatedAt      time.Time  `json:"createdAt"`
	ScheduledAt    *time.Time `json:"scheduledAt,omitempty"`
	ExpiresAt      *time.Time `json:"expiresAt,omitempty"`
	SentAt         *time.Time `json:"sentAt,omitempty"`
}

func newBroadcastResponse(b *domain.Broadcast) broadcastResponse {
	return broadcastResponse{
		ID:             b.ID,
		Title:          b.Title,
		Body:           b.Body,
		ImageURL:       b.ImageURL,
		Category:       string(b.Category),
		TargetAudience: string(b.TargetAudience),
		IsActive:       b.IsActive,
		SentCount:      b.SentCount,
		FailedCount:    b.FailedCount,
		CreatedAt:      b.CreatedAt,
		ScheduledAt:    b.ScheduledAt,
		ExpiresAt:      b.ExpiresAt,
		SentAt:         b.SentAt,
	}
}

func (bh *BroadcastHandler) CreateBroadcast(ctx *gin.Context) {
	req := broadcastRequest{}
	err := ctx.ShouldBindBodyWithJSON(&req)
	if err != nil {
		bh.handleValidationError(ctx, err)
		return
	}

	created, err := bh.service.CreateBroadcast(ctx, req.toDomain())
	if err != nil {
		bh.handleError(ctx, err)
		return
	}

	bh.handleSuccessWithStatus(ctx, newBroadcastResponse(created), http.StatusAccepted)
}

func (bh *BroadcastHandler) ScheduleBroadcast(ctx *gin.Context) {
	req := broadcastRequest{}
	err := ctx.ShouldBindBodyWithJSON(&req)
	if err != nil {
		bh.handleValidationError(ctx, err)
		return
	}

	scheduled, err := bh.service.ScheduleBroadcast(ctx, req.toDomain())
	if err != nil {
		bh.handleError(ctx, err)
		return
	}

	bh.handleSuccessWithStatus(ctx, newBroadcastResponse(scheduled), http.StatusCreated)
}

func (bh *BroadcastHandler) ListBroadcasts(ctx *gin.Context) {
	list, err := bh.service.ListBroadcasts(ctx)
	if err != nil {
		bh.handleError(ctx, err)
		return
	}

	result := make([]broadcastResponse, 0, len(list))
	for _, b := range list {
		result = append(result, newBroadcastResponse(b))
	}
	bh.handleSuccess(ctx, result)
}

func (bh *BroadcastHandler) DeactivateBroadcast(ctx *gin.Context) {
	broadcastID, err := pathID(ctx, "id")
	if err != nil {
		bh.handleValidationError(ctx, err)
		return
	}

	err = bh.service.DeactivateBroadcast(ctx, broadcastID)
	if err != nil {
		bh.handleError(ctx, err)
		return
	}

	bh.handleSuccessWithStatus(ctx, nil, http.StatusNoContent)
}
