package broadcast

import (
	"context"
	"strconv"
	"time"

	"github.com/jibli-app/jibli-backend/internal/core/domain"
	"github.com/jibli-app/jibli-backend/internal/core/port"
	"go.uber.org/zap"
)

// BatchSize bounds how many recipients are walked per batch during a
// broadcast. Batch boundaries are a throughput control, not a consistency
// boundary: progress made in earlier batches survives a failing later one.
const BatchSize = 100

const schedulerInterval = time.Minute

// Sender fans announcements out to their audience on a worker pool. The
// triggering request only enqueues and never waits for delivery.
type Sender struct {
	repo     port.Repository
	resolver port.RecipientResolver
	gateway  port.NotificationGateway
	logger   *zap.Logger
	queue    chan *domain.Broadcast
}

func NewSender(repo port.Repository, resolver port.RecipientResolver,
	gateway port.NotificationGateway, logger *zap.Logger) *Sender {
	return &Sender{
		repo:     repo,
		resolver: resolver,
		gateway:  gateway,
		logger:   logger,
		queue:    make(chan *domain.Broadcast, 16),
	}
}

// Send hands the broadcast to the worker pool and returns immediately.
// When the queue is saturated the handoff moves to its own goroutine, so
// the triggering request still never waits on delivery.
func (s *Sender) Send(b *domain.Broadcast) {
	select {
	case s.queue <- b:
	default:
		s.logger.Warn("broadcast queue saturated",
			zap.Uint64("broadcast", b.ID))
		go func() { s.queue <- b }()
	}
}

// Run starts the delivery workers and the scheduler loop. Workers stop
// between broadcasts when ctx is done; an in-flight broadcast runs to
// completion.
func (s *Sender) Run(ctx context.Context, workers int) {
	for i := 0; i < workers; i++ {
		go func() {
			for {
				select {
				case b := <-s.queue:
					s.Process(ctx, b)
				case <-ctx.Done():
					s.logger.Debug("broadcast worker stopped")
					return
				}
			}
		}()
	}

	go s.scheduleLoop(ctx)
}

// scheduleLoop enqueues scheduled broadcasts once they become due.
func (s *Sender) scheduleLoop(ctx context.Context) {
	ticker := time.NewTicker(schedulerInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			due, err := s.repo.ListDueBroadcasts(ctx)
			if err != nil {
				s.logger.Error("listing due broadcasts", zap.Error(err))
				continue
			}
			for _, b := range due {
				s.logger.Info("scheduled broadcast due",
					zap.Uint64("broadcast", b.ID))
				s.Send(b)
			}
		case <-ctx.Done():
			return
		}
	}
}

// Process walks the resolved audience in fixed-size batches, counting sent
// and failed deliveries, and writes the counts back exactly once at the end.
func (s *Sender) Process(ctx context.Context, b *domain.Broadcast) {
	log := s.logger.With(zap.Uint64("broadcast", b.ID))

	audience, err := s.resolver.ResolveForAudience(ctx, b.TargetAudience)
	if err != nil {
		log.Error("audience resolution failed", zap.Error(err))
		return
	}

	if len(audience) == 0 {
		log.Warn("no recipients for audience",
			zap.String("audience", string(b.TargetAudience)))
		s.finish(ctx, b, 0, 0)
		return
	}

	title := b.Title
	body := b.Body
	payload := s.buildPayload(b)

	sent := 0
	failed := 0

	for start := 0; start < len(audience); start += BatchSize {
		end := min(start+BatchSize, len(audience))

		for _, recipient := range audience[start:end] {
			// Recipients without a registered device count as failed,
			// not as an error.
			if recipient.DeviceToken == "" {
				failed++
				continue
			}
			if s.gateway.SendToRecipient(ctx, recipient, title, body, payload) {
				sent++
			} else {
				failed++
			}
		}

		log.Debug("batch processed",
			zap.Int("progress", end),
			zap.Int("total", len(audience)),
			zap.Int("sent", sent),
			zap.Int("failed", failed))
	}

	s.finish(ctx, b, sent, failed)

	log.Info("broadcast completed",
		zap.Int("sent", sent),
		zap.Int("failed", failed))
}

func (s *Sender) buildPayload(b *domain.Broadcast) map[string]string {
	payload := map[string]string{
		"route":          "/broadcasts",
		"notificationId": strconv.FormatUint(b.ID, 10),
		"type":           string(b.Category),
	}
	if b.ImageURL != "" {
		payload["imageUrl"] = b.ImageURL
	}
	return payload
}

func (s *Sender) finish(ctx context.Context, b *domain.Broadcast, sent, failed int) {
	now := time.Now()
	b.SentCount = sent
	b.FailedCount = failed
	b.SentAt = &now

	if _, err := s.repo.UpdateBroadcast(ctx, b); err != nil {
		s.logger.Error("writing broadcast counters",
			zap.Uint64("broadcast", b.ID), zap.Error(err))
	}
}
