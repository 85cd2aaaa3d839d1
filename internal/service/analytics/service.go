// Package analytics aggregates persisted meetings, topics, and action items
// into trend and reminder read models. The aggregation itself is pure; the
// service wires it to repositories and an optional cache.
package analytics

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/oneonone-backend/internal/config"
	"github.com/heartmarshall/oneonone-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type memberRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Member, error)
	ListWithLastMeeting(ctx context.Context) ([]domain.MemberLastMeeting, error)
}

type meetingRepo interface {
	ListDatesSince(ctx context.Context, since time.Time) ([]domain.MemberMeetingDate, error)
}

type topicRepo interface {
	ListByMemberWithDates(ctx context.Context, memberID uuid.UUID) ([]domain.TopicWithDate, error)
}

type actionItemRepo interface {
	ListByMember(ctx context.Context, memberID uuid.UUID) ([]domain.ActionItem, error)
}

// readModelCache caches derived read models. Get returns false on miss;
// Set errors are logged and never fail the read.
type readModelCache interface {
	GetMember(ctx context.Context, kind, memberID string, dest any) bool
	SetMember(ctx context.Context, kind, memberID string, value any) error
	GetGlobal(ctx context.Context, kind string, dest any) bool
	SetGlobal(ctx context.Context, kind string, value any) error
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements the analytics read side.
type Service struct {
	members     memberRepo
	meetings    meetingRepo
	topics      topicRepo
	actionItems actionItemRepo
	cache       readModelCache
	cfg         config.AnalyticsConfig
	log         *slog.Logger
	now         func() time.Time
}

// NewService creates a new analytics service. cache may be nil when caching
// is disabled.
func NewService(
	log *slog.Logger,
	members memberRepo,
	meetings meetingRepo,
	topics topicRepo,
	actionItems actionItemRepo,
	cache readModelCache,
	cfg config.AnalyticsConfig,
) *Service {
	return &Service{
		members:     members,
		meetings:    meetings,
		topics:      topics,
		actionItems: actionItems,
		cache:       cache,
		cfg:         cfg,
		log:         log.With("service", "analytics"),
		now:         time.Now,
	}
}

func (s *Service) cacheSetMember(ctx context.Context, kind string, memberID uuid.UUID, value any) {
	if s.cache == nil {
		return
	}
	if err := s.cache.SetMember(ctx, kind, memberID.String(), value); err != nil {
		s.log.WarnContext(ctx, "cache write failed", "kind", kind, "error", err)
	}
}

func (s *Service) cacheSetGlobal(ctx context.Context, kind string, value any) {
	if s.cache == nil {
		return
	}
	if err := s.cache.SetGlobal(ctx, kind, value); err != nil {
		s.log.WarnContext(ctx, "cache write failed", "kind", kind, "error", err)
	}
}
