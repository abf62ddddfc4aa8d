package broadcast_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/jibli-app/jibli-backend/internal/core/broadcast"
	"github.com/jibli-app/jibli-backend/internal/core/domain"
	"github.com/jibli-app/jibli-backend/internal/core/port/mock"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func newSender(t *testing.T) (*broadcast.Sender, *mock.MockRepository, *mock.MockRecipientResolver, *mock.MockNotificationGateway) {
	mockCtrl := gomock.NewController(t)
	t.Cleanup(mockCtrl.Finish)

	repo := mock.NewMockRepository(mockCtrl)
	resolver := mock.NewMockRecipientResolver(mockCtrl)
	gateway := mock.NewMockNotificationGateway(mockCtrl)

	return broadcast.NewSender(repo, resolver, gateway, zap.NewNop()), repo, resolver, gateway
}

func TestSender_SendNeverBlocksWhenSaturated(t *testing.T) {
	sender, _, _, _ := newSender(t)

	// No workers running: every enqueue past the queue capacity would
	// block a caller doing a bare channel send.
	done := make(chan struct{})
	go func() {
		for i := 0; i < 64; i++ {
			sender.Send(&domain.Broadcast{ID: uint64(i + 1), Title: "Promo"})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Send blocked on a saturated queue")
	}
}

func TestSender_EmptyAudienceFinishesWithZeroCounts(t *testing.T) {
	sender, repo, resolver, _ := newSender(t)

	b := &domain.Broadcast{ID: 1, Title: "Promo", TargetAudience: domain.AudienceCouriers}

	resolver.EXPECT().
		ResolveForAudience(gomock.Any(), domain.AudienceCouriers).
		Return([]domain.Recipient{}, nil)
	repo.EXPECT().
		UpdateBroadcast(gomock.Any(), b).
		Return(b, nil)

	sender.Process(context.Background(), b)

	assert.Equal(t, 0, b.SentCount)
	assert.Equal(t, 0, b.FailedCount)
	assert.NotNil(t, b.SentAt)
}

func TestSender_TokenlessRecipientsCountAsFailed(t *testing.T) {
	sender, repo, resolver, _ := newSender(t)

	audience := make([]domain.Recipient, 250)
	for i := range audience {
		audience[i] = domain.Recipient{UserID: uint64(i + 1)}
	}

	b := &domain.Broadcast{ID: 2, Title: "Maintenance", TargetAudience: domain.AudienceAll}

	resolver.EXPECT().
		ResolveForAudience(gomock.Any(), domain.AudienceAll).
		Return(audience, nil)
	// No gateway call may happen: nobody has a device token.
	repo.EXPECT().
		UpdateBroadcast(gomock.Any(), b).
		Return(b, nil)

	sender.Process(context.Background(), b)

	assert.Equal(t, 0, b.SentCount)
	assert.Equal(t, 250, b.FailedCount)
}

func TestSender_CountsAcrossBatches(t *testing.T) {
	sender, repo, resolver, gateway := newSender(t)

	// Three batches worth of recipients, gateway fails every third call.
	total := broadcast.BatchSize*2 + 50
	audience := make([]domain.Recipient, total)
	for i := range audience {
		audience[i] = domain.Recipient{UserID: uint64(i + 1), DeviceToken: "tok"}
	}

	b := &domain.Broadcast{ID: 3, Title: "Update", TargetAudience: domain.AudienceCustomers}

	resolver.EXPECT().
		ResolveForAudience(gomock.Any(), domain.AudienceCustomers).
		Return(audience, nil)

	calls := 0
	gateway.EXPECT().
		SendToRecipient(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, r domain.Recipient, title, body string, payload map[string]string) bool {
			calls++
			return calls%3 != 0
		}).
		Times(total)

	var updated *domain.Broadcast
	repo.EXPECT().
		UpdateBroadcast(gomock.Any(), b).
		DoAndReturn(func(ctx context.Context, in *domain.Broadcast) (*domain.Broadcast, error) {
			updated = in
			return in, nil
		})

	sender.Process(context.Background(), b)

	failed := total / 3
	assert.Equal(t, total-failed, b.SentCount)
	assert.Equal(t, failed, b.FailedCount)
	// Counters are written back exactly once, after the full walk.
	assert.Same(t, b, updated)
}

func TestSender_ResolutionFailureWritesNothing(t *testing.T) {
	sender, _, resolver, _ := newSender(t)

	b := &domain.Broadcast{ID: 4, Title: "Promo", TargetAudience: domain.AudienceAll}

	resolver.EXPECT().
		ResolveForAudience(gomock.Any(), domain.AudienceAll).
		Return(nil, context.DeadlineExceeded)

	sender.Process(context.Background(), b)

	assert.Nil(t, b.SentAt)
}

func TestSender_PayloadRouting(t *testing.T) {
	sender, repo, resolver, gateway := newSender(t)

	b := &domain.Broadcast{
		ID:             9,
		Title:          "Promo du jour",
		Body:           "Livraison gratuite",
		ImageURL:       "https://cdn.example/promo.png",
		Category:       domain.BroadcastPromo,
		TargetAudience: domain.AudienceCustomers,
	}

	resolver.EXPECT().
		ResolveForAudience(gomock.Any(), domain.AudienceCustomers).
		Return([]domain.Recipient{{UserID: 1, DeviceToken: "tok"}}, nil)

	gateway.EXPECT().
		SendToRecipient(gomock.Any(), gomock.Any(), "Promo du jour", "Livraison gratuite", gomock.Any()).
		DoAndReturn(func(ctx context.Context, r domain.Recipient, title, body string, payload map[string]string) bool {
			assert.Equal(t, "/broadcasts", payload["route"])
			assert.Equal(t, "9", payload["notificationId"])
			assert.Equal(t, "PROMO", payload["type"])
			assert.Equal(t, "https://cdn.example/promo.png", payload["imageUrl"])
			return true
		})

	repo.EXPECT().UpdateBroadcast(gomock.Any(), b).Return(b, nil)

	sender.Process(context.Background(), b)

	assert.Equal(t, 1, b.SentCount)
	assert.Equal(t, 0, b.FailedCount)
}
