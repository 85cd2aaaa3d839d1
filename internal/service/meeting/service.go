// Package meeting implements the meeting reconciliation engine: transactional
// create/update of a meeting together with its topic and action item children,
// diffed against submitted drafts via explicit insert/update/delete sets.
package meeting

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/oneonone-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type meetingRepo interface {
	Create(ctx context.Context, m *domain.Meeting) (*domain.Meeting, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Meeting, error)
	Update(ctx context.Context, id uuid.UUID, params domain.MeetingUpdateParams) error
	Delete(ctx context.Context, id uuid.UUID) error
	ListByMember(ctx context.Context, memberID uuid.UUID) ([]*domain.Meeting, error)
}

type topicRepo interface {
	CreateBatch(ctx context.Context, meetingID uuid.UUID, topics []domain.Topic) error
	Update(ctx context.Context, t domain.Topic) error
	DeleteByIDs(ctx context.Context, meetingID uuid.UUID, ids []uuid.UUID) error
	ListByMeeting(ctx context.Context, meetingID uuid.UUID) ([]domain.Topic, error)
}

type actionItemRepo interface {
	CreateBatch(ctx context.Context, items []domain.ActionItem) error
	Update(ctx context.Context, id uuid.UUID, params domain.ActionItemUpdateParams) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.ActionItemStatus, completedAt *time.Time) (*domain.ActionItem, error)
	DeleteByIDs(ctx context.Context, meetingID uuid.UUID, ids []uuid.UUID) error
	ListByMeeting(ctx context.Context, meetingID uuid.UUID) ([]domain.ActionItem, error)
}

type memberRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Member, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// cacheInvalidator drops derived read models after a mutation.
type cacheInvalidator interface {
	InvalidateMember(ctx context.Context, memberID string) error
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements the meeting reconciliation engine.
type Service struct {
	meetings    meetingRepo
	topics      topicRepo
	actionItems actionItemRepo
	members     memberRepo
	tx          txManager
	cache       cacheInvalidator
	log         *slog.Logger
	now         func() time.Time
}

// NewService creates a new meeting service. cache may be nil when caching
// is disabled.
func NewService(
	log *slog.Logger,
	meetings meetingRepo,
	topics topicRepo,
	actionItems actionItemRepo,
	members memberRepo,
	tx txManager,
	cache cacheInvalidator,
) *Service {
	return &Service{
		meetings:    meetings,
		topics:      topics,
		actionItems: actionItems,
		members:     members,
		tx:          tx,
		cache:       cache,
		log:         log.With("service", "meeting"),
		now:         time.Now,
	}
}

// invalidate drops the member's cached read models. Cache failures are
// logged, never surfaced: the mutation already committed.
func (s *Service) invalidate(ctx context.Context, memberID uuid.UUID) {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidateMember(ctx, memberID.String()); err != nil {
		s.log.WarnContext(ctx, "cache invalidation failed", "member_id", memberID, "error", err)
	}
}

// loadChildren attaches a meeting's topics and action items in display order.
func (s *Service) loadChildren(ctx context.Context, m *domain.Meeting) error {
	topics, err := s.topics.ListByMeeting(ctx, m.ID)
	if err != nil {
		return err
	}
	items, err := s.actionItems.ListByMeeting(ctx, m.ID)
	if err != nil {
		return err
	}
	m.Topics = topics
	m.ActionItems = items
	return nil
}
