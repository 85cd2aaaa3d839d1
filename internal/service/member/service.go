// Package member implements member lifecycle management and the member list
// read model with derived scheduling state.
package member

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

type memberRepo interface {
	Create(ctx context.Context, m *domain.Member) (*domain.Member, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Member, error)
	List(ctx context.Context) ([]*domain.Member, error)
	Update(ctx context.Context, id uuid.UUID, params domain.MemberUpdateParams) (*domain.Member, error)
	Delete(ctx context.Context, id uuid.UUID) error
	ListWithLastMeeting(ctx context.Context) ([]domain.MemberLastMeeting, error)
}

// cacheInvalidator drops derived read models after a mutation.
type cacheInvalidator interface {
	InvalidateMember(ctx context.Context, memberID string) error
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements the member business logic.
type Service struct {
	members memberRepo
	cache   cacheInvalidator
	log     *slog.Logger
	now     func() time.Time
}

// NewService creates a new member service. cache may be nil when caching
// is disabled.
func NewService(log *slog.Logger, members memberRepo, cache cacheInvalidator) *Service {
	return &Service{
		members: members,
		cache:   cache,
		log:     log.With("service", "member"),
		now:     time.Now,
	}
}

func (s *Service) invalidate(ctx context.Context, memberID uuid.UUID) {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidateMember(ctx, memberID.String()); err != nil {
		s.log.WarnContext(ctx, "cache invalidation failed", "member_id", memberID, "error", err)
	}
}
