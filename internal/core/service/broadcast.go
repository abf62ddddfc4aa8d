package service

import (
	"context"
	"time"

	"github.com/jibli-app/jibli-backend/internal/core/domain"
	"go.uber.org/zap"
)

func (s *Service) prepareBroadcast(b *domain.Broadcast) error {
	if b.Title == "" {
		return domain.ErrBroadcastMissingTitle
	}
	if b.TargetAudience == "" {
		b.TargetAudience = domain.AudienceAll
	}
	b.Category = domain.ParseBroadcastCategory(string(b.Category))
	b.IsActive = true
	b.SentCount = 0
	b.FailedCount = 0
	b.CreatedAt = time.Now()
	return nil
}

// CreateBroadcast persists the announcement and hands it to the batch
// sender. The call returns as soon as the record is saved; delivery runs
// detached.
func (s *Service) CreateBroadcast(ctx context.Context, b *domain.Broadcast) (*domain.Broadcast, error) {
	if err := s.prepareBroadcast(b); err != nil {
		return nil, err
	}

	saved, err := s.repo.CreateBroadcast(ctx, b)
	if err != nil {
		s.logger.Error("Create broadcast", zap.Error(err))
		return nil, err
	}

	s.broadcasts.Send(saved)

	return saved, nil
}

// ScheduleBroadcast persists the announcement for a future send; the batch
// sender's scheduler picks it up once due.
func (s *Service) ScheduleBroadcast(ctx context.Context, b *domain.Broadcast) (*domain.Broadcast, error) {
	if b.ScheduledAt == nil {
		return nil, domain.ErrBadRequest
	}
	if err := s.prepareBroadcast(b); err != nil {
		return nil, err
	}

	saved, err := s.repo.CreateBroadcast(ctx, b)
	if err != nil {
		s.logger.Error("Schedule broadcast", zap.Error(err))
		return nil, err
	}
	return saved, nil
}

func (s *Service) ListBroadcasts(ctx context.Context) ([]*domain.Broadcast, error) {
	list, err := s.repo.ListBroadcasts(ctx)
	if err != nil {
		s.logger.Error("List broadcasts", zap.Error(err))
		return nil, err
	}
	return list, nil
}

func (s *Service) DeactivateBroadcast(ctx context.Context, broadcastID uint64) error {
	b, err := s.repo.ReadBroadcast(ctx, broadcastID)
	if err != nil {
		return err
	}

	b.IsActive = false
	if _, err := s.repo.UpdateBroadcast(ctx, b); err != nil {
		s.logger.Error("Deactivate broadcast",
			zap.Uint64("broadcast", broadcastID), zap.Error(err))
		return domain.ErrInternal
	}
	return nil
}
