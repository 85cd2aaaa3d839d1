package analytics

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/oneonone-backend/internal/domain"
)

const (
	kindActionTrends = "action_trends"
	kindTopicTrends  = "topic_trends"
)

// GetMemberActionTrends returns completion metrics and the merged monthly
// created/completed series for one member's action items.
// Returns domain.ErrNotFound if the member does not exist.
func (s *Service) GetMemberActionTrends(ctx context.Context, memberID uuid.UUID) (*domain.ActionTrends, error) {
	if s.cache != nil {
		var cached domain.ActionTrends
		if s.cache.GetMember(ctx, kindActionTrends, memberID.String(), &cached) {
			return &cached, nil
		}
	}

	if _, err := s.members.GetByID(ctx, memberID); err != nil {
		return nil, fmt.Errorf("get member: %w", err)
	}

	items, err := s.actionItems.ListByMember(ctx, memberID)
	if err != nil {
		return nil, fmt.Errorf("list action items: %w", err)
	}

	avgDays, onTimeRate := CompletionMetrics(items)
	trends := &domain.ActionTrends{
		AverageCompletionDays: avgDays,
		OnTimeCompletionRate:  onTimeRate,
		MonthlyTrends:         MonthlyActionTrends(items),
	}

	s.cacheSetMember(ctx, kindActionTrends, memberID, trends)
	return trends, nil
}

// GetMemberTopicTrends returns the per-category distribution and the
// per-month stacked timeline of one member's discussion topics.
// Returns domain.ErrNotFound if the member does not exist.
func (s *Service) GetMemberTopicTrends(ctx context.Context, memberID uuid.UUID) (*domain.TopicTrends, error) {
	if s.cache != nil {
		var cached domain.TopicTrends
		if s.cache.GetMember(ctx, kindTopicTrends, memberID.String(), &cached) {
			return &cached, nil
		}
	}

	if _, err := s.members.GetByID(ctx, memberID); err != nil {
		return nil, fmt.Errorf("get member: %w", err)
	}

	topics, err := s.topics.ListByMemberWithDates(ctx, memberID)
	if err != nil {
		return nil, fmt.Errorf("list topics: %w", err)
	}

	trends := &domain.TopicTrends{
		Distribution: TopicDistribution(topics),
		Timeline:     TopicTimeline(topics),
	}

	s.cacheSetMember(ctx, kindTopicTrends, memberID, trends)
	return trends, nil
}
