package service

import (
	"context"
	"errors"

	"github.com/jibli-app/jibli-backend/internal/core/domain"
	"github.com/jibli-app/jibli-backend/internal/core/port"
	"github.com/jibli-app/jibli-backend/internal/core/utils"
	"go.uber.org/zap"
)

type Service struct {
	repo         port.Repository
	tokenService port.TokenService
	dispatcher   port.Dispatcher
	broadcasts   port.BroadcastSender
	logger       *zap.Logger
}

func NewService(repo port.Repository, tokenService port.TokenService,
	dispatcher port.Dispatcher, broadcasts port.BroadcastSender,
	logger *zap.Logger) (*Service, error) {
	return &Service{
		repo:         repo,
		tokenService: tokenService,
		dispatcher:   dispatcher,
		broadcasts:   broadcasts,
		logger:       logger,
	}, nil
}

func (s *Service) RegisterUser(ctx context.Context, user *domain.User) (*domain.User, error) {
	exUser, err := s.repo.GetUserByEmail(ctx, user.Email)
	if err != nil && !errors.Is(err, domain.ErrDataNotFound) {
		s.logger.Error("Get user", zap.Error(err))
		return nil, domain.ErrInternal
	}

	if exUser != nil {
		return nil, domain.ErrConflictingData
	}

	newUser, err := s.repo.CreateUser(ctx, user)
	if err != nil {
		s.logger.Error("Create user", zap.Error(err))
		return nil, domain.ErrInternal
	}

	return newUser, nil
}

func (s *Service) LoginUser(ctx context.Context, email string, password string) (string, error) {
	user, err := s.repo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrDataNotFound) {
			return "", domain.ErrInvalidCredentials
		}
		return "", domain.ErrInternal
	}

	err = utils.ComparePassword(password, user.Password)
	if err != nil {
		return "", domain.ErrInvalidCredentials
	}

	token, err := s.tokenService.CreateToken(user)
	if err != nil {
		s.logger.Error("Create token", zap.Error(err))
		return "", domain.ErrTokenCreation
	}

	return token, nil
}

func (s *Service) RegisterDeviceToken(ctx context.Context, userID uint64, token string) error {
	if _, err := s.repo.ReadUser(ctx, userID); err != nil {
		return err
	}

	err := s.repo.UpdateUserDeviceToken(ctx, userID, token)
	if err != nil {
		s.logger.Error("Save device token",
			zap.Uint64("user", userID), zap.Error(err))
		return domain.ErrInternal
	}
	return nil
}
