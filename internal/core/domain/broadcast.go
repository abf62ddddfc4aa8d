package domain

import "time"

type BroadcastCategory string

const (
	BroadcastAnnouncement BroadcastCategory = "ANNOUNCEMENT"
	BroadcastPromo        BroadcastCategory = "PROMO"
	BroadcastUpdate       BroadcastCategory = "UPDATE"
	BroadcastMaintenance  BroadcastCategory = "MAINTENANCE"
)

// ParseBroadcastCategory falls back to ANNOUNCEMENT for unknown input.
func ParseBroadcastCategory(s string) BroadcastCategory {
	switch BroadcastCategory(s) {
	case BroadcastPromo, BroadcastUpdate, BroadcastMaintenance:
		return BroadcastCategory(s)
	default:
		return BroadcastAnnouncement
	}
}

// Broadcast is an administrative announcement fanned out to an audience.
// SentCount and FailedCount are written once, after the audience has been
// fully walked.
type Broadcast struct {
	ID             uint64
	Title          string
	Body           string
	ImageURL       string
	Category       BroadcastCategory
	TargetAudience AudienceSelector
	IsActive       bool
	SentCount      int
	FailedCount    int
	CreatedAt      time.Time
	ScheduledAt    *time.Time
	ExpiresAt      *time.Time
	SentAt         *time.Time
}
