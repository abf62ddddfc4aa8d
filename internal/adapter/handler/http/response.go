package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jibli-app/jibli-backend/internal/core/domain"
)

var errorStatusMap = map[error]int{
	domain.ErrInternal:        http.StatusInternalServerError,
	domain.ErrDataNotFound:    http.StatusNotFound,
	domain.ErrConflictingData: http.StatusConflict,

	domain.ErrInvalidCredentials:         http.StatusUnauthorized,
	domain.ErrUnauthorized:               http.StatusUnauthorized,
	domain.ErrEmptyAuthorizationHeader:   http.StatusUnauthorized,
	domain.ErrInvalidAuthorizationHeader: http.StatusUnauthorized,
	domain.ErrInvalidAuthorizationType:   http.StatusUnauthorized,
	domain.ErrInvalidToken:               http.StatusUnauthorized,
	domain.ErrExpiredToken:               http.StatusUnauthorized,
	domain.ErrForbidden:                  http.StatusForbidden,

	domain.ErrNoUpdatedData: http.StatusBadRequest,
	domain.ErrBadRequest:    http.StatusBadRequest,

	domain.ErrInvalidOrderStatus:    http.StatusUnprocessableEntity,
	domain.ErrOrderMissingCompany:   http.StatusUnprocessableEntity,
	domain.ErrOrderMissingUser:      http.StatusUnprocessableEntity,
	domain.ErrProductBadPrice:       http.StatusUnprocessableEntity,
	domain.ErrProductMissingName:    http.StatusUnprocessableEntity,
	domain.ErrBroadcastMissingTitle: http.StatusUnprocessableEntity,
}

// handleValidationError sends an error response for some specific request validation error
func handleValidationError(ctx *gin.Context, err error) {
	ctx.Status(http.StatusBadRequest)
}

// handleAbort sends an error response and aborts the request with the specified status code and error message
func handleAbort(ctx *gin.Context, err error) {
	statusCode, ok := errorStatusMap[err]
	if !ok {
		statusCode = http.StatusInternalServerError
	}
	ctx.AbortWithError(statusCode, err)
}

// handleSuccess sends a success response with the specified status code and optional data
func handleSuccessWithStatus(ctx *gin.Context, data any, status int) {
	if data != nil {
		ctx.JSON(status, data)
	} else {
		ctx.Status(status)
	}
}

func handleSuccess(ctx *gin.Context, data any) {
	handleSuccessWithStatus(ctx, data, http.StatusOK)
}
