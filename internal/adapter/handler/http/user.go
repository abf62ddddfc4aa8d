package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jibli-app/jibli-backend/internal/core/domain"
	"github.com/jibli-app/jibli-backend/internal/core/port"
	"github.com/jibli-app/jibli-backend/internal/core/utils"
	"go.uber.org/zap"
)

type UserHandler struct {
	Handler
	service port.Service
}

func NewUserHandler(service port.Service, logger *zap.Logger) (*UserHandler, error) {
	return &UserHandler{
		Handler: *NewHandler(logger),
		service: service,
	}, nil
}

type registerRequest struct {
	FullName string `json:"fullName" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Phone    string `json:"phone"`
	Password string `json:"password" binding:"required,min=6"`
	Role     string `json:"role"`
}

func (uh *UserHandler) RegisterUser(ctx *gin.Context) {
	req := registerRequest{}
	err := ctx.ShouldBindBodyWithJSON(&req)
	if err != nil {
		uh.handleValidationError(ctx, err)
		return
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		uh.handleError(ctx, domain.ErrInternal)
		return
	}

	role := domain.RoleCustomer
	switch domain.UserRole(req.Role) {
	case domain.RoleMerchant, domain.RoleCourier:
		role = domain.UserRole(req.Role)
	}

	user := &domain.User{
		FullName: req.FullName,
		Email:    req.Email,
		Phone:    req.Phone,
		Password: hashed,
		Role:     role,
	}

	_, err = uh.service.RegisterUser(ctx, user)
	if err != nil {
		uh.handleError(ctx, err)
		return
	}

	token, err := uh.service.LoginUser(ctx, req.Email, req.Password)
	if err != nil {
		uh.handleError(ctx, err)
		return
	}

	uh.handleSuccessWithStatus(ctx, tokenResponse{Token: token}, http.StatusCreated)
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

func (uh *UserHandler) LoginUser(ctx *gin.Context) {
	req := loginRequest{}
	err := ctx.ShouldBindBodyWithJSON(&req)
	if err != nil {
		uh.handleValidationError(ctx, err)
		return
	}

	token, err := uh.service.LoginUser(ctx, req.Email, req.Password)
	if err != nil {
		uh.handleError(ctx, err)
		return
	}

	uh.handleSuccess(ctx, tokenResponse{Token: token})
}

type deviceTokenRequest struct {
	DeviceToken string `json:"deviceToken" binding:"required"`
}

func (uh *UserHandler) RegisterDeviceToken(ctx *gin.Context) {
	req := deviceTokenRequest{}
	err := ctx.ShouldBindBodyWithJSON(&req)
	if err != nil {
		uh.handleValidationError(ctx, err)
		return
	}

	userID := getAuthPayload(ctx).UserID

	err = uh.service.RegisterDeviceToken(ctx, userID, req.DeviceToken)
	if err != nil {
		uh.handleError(ctx, err)
		return
	}

	uh.handleSuccessWithStatus(ctx, nil, http.StatusNoContent)
}
