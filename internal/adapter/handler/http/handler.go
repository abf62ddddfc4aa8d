package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	logger *zap.Logger
}

func NewHandler(logger *zap.Logger) *Handler {
	return &Handler{logger: logger}
}

func (h *Handler) handleValidationError(ctx *gin.Context, err error) {
	handleValidationError(ctx, err)
}

func (h *Handler) handleError(ctx *gin.Context, err error) {
	statusCode, ok := errorStatusMap[err]
	if !ok {
		statusCode = http.StatusInternalServerError
		h.logger.Error("error processing request", zap.Error(err))
	}
	ctx.Status(statusCode)
}

func (h *Handler) handleSuccessWithStatus(ctx *gin.Context, data any, status int) {
	handleSuccessWithStatus(ctx, data, status)
}

func (h *Handler) handleSuccess(ctx *gin.Context, data any) {
	handleSuccess(ctx, data)
}
