package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/heartmarshall/oneonone-backend/internal/domain"
)

const (
	kindMeetingFrequency = "meeting_frequency"
	kindHeatmap          = "heatmap"
	kindRecommended      = "recommended"
	kindOverdue          = "overdue"
)

// GetMeetingFrequencyByMonth returns meeting counts per month over the
// configured trailing window, ascending. Months without meetings are omitted.
func (s *Service) GetMeetingFrequencyByMonth(ctx context.Context) ([]domain.MonthCount, error) {
	if s.cache != nil {
		var cached []domain.MonthCount
		if s.cache.GetGlobal(ctx, kindMeetingFrequency, &cached) {
			return cached, nil
		}
	}

	rows, err := s.meetings.ListDatesSince(ctx, s.windowStart(s.cfg.FrequencyMonths))
	if err != nil {
		return nil, fmt.Errorf("list meeting dates: %w", err)
	}

	series := MeetingFrequency(rows)
	s.cacheSetGlobal(ctx, kindMeetingFrequency, series)
	return series, nil
}

// GetMeetingHeatmap returns a dense member x month meeting-count grid over
// the configured trailing window. Every cell is present, zero-filled.
func (s *Service) GetMeetingHeatmap(ctx context.Context) ([]domain.HeatmapRow, error) {
	if s.cache != nil {
		var cached []domain.HeatmapRow
		if s.cache.GetGlobal(ctx, kindHeatmap, &cached) {
			return cached, nil
		}
	}

	members, err := s.members.ListWithLastMeeting(ctx)
	if err != nil {
		return nil, fmt.Errorf("list members: %w", err)
	}
	rows, err := s.meetings.ListDatesSince(ctx, s.windowStart(s.cfg.HeatmapMonths))
	if err != nil {
		return nil, fmt.Errorf("list meeting dates: %w", err)
	}

	grid := Heatmap(members, rows, MonthWindow(s.now(), s.cfg.HeatmapMonths))
	s.cacheSetGlobal(ctx, kindHeatmap, grid)
	return grid, nil
}

// GetRecommendedMeetings returns every member ranked by meeting urgency,
// never-met members first.
func (s *Service) GetRecommendedMeetings(ctx context.Context) ([]domain.MemberReminder, error) {
	if s.cache != nil {
		var cached []domain.MemberReminder
		if s.cache.GetGlobal(ctx, kindRecommended, &cached) {
			return cached, nil
		}
	}

	members, err := s.members.ListWithLastMeeting(ctx)
	if err != nil {
		return nil, fmt.Errorf("list members: %w", err)
	}

	reminders := RecommendedMeetings(members, s.now())
	s.cacheSetGlobal(ctx, kindRecommended, reminders)
	return reminders, nil
}

// GetOverdueReminders returns only overdue members ranked by elapsed days,
// never-met members last.
func (s *Service) GetOverdueReminders(ctx context.Context) ([]domain.MemberReminder, error) {
	if s.cache != nil {
		var cached []domain.MemberReminder
		if s.cache.GetGlobal(ctx, kindOverdue, &cached) {
			return cached, nil
		}
	}

	members, err := s.members.ListWithLastMeeting(ctx)
	if err != nil {
		return nil, fmt.Errorf("list members: %w", err)
	}

	reminders := OverdueReminders(members, s.now())
	s.cacheSetGlobal(ctx, kindOverdue, reminders)
	return reminders, nil
}

// windowStart returns the first instant of the oldest month in a trailing
// n-month window ending at now.
func (s *Service) windowStart(n int) time.Time {
	u := s.now().UTC()
	return time.Date(u.Year(), u.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -(n - 1), 0)
}
