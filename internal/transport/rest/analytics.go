package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/oneonone-backend/internal/domain"
)

type analyticsService interface {
	GetMemberActionTrends(ctx context.Context, memberID uuid.UUID) (*domain.ActionTrends, error)
	GetMemberTopicTrends(ctx context.Context, memberID uuid.UUID) (*domain.TopicTrends, error)
	GetMeetingFrequencyByMonth(ctx context.Context) ([]domain.MonthCount, error)
	GetMeetingHeatmap(ctx context.Context) ([]domain.HeatmapRow, error)
	GetRecommendedMeetings(ctx context.Context) ([]domain.MemberReminder, error)
	GetOverdueReminders(ctx context.Context) ([]domain.MemberReminder, error)
}

// AnalyticsHandler serves the trend and dashboard read endpoints.
type AnalyticsHandler struct {
	svc analyticsService
	log *slog.Logger
}

func NewAnalyticsHandler(svc analyticsService, logger *slog.Logger) *AnalyticsHandler {
	return &AnalyticsHandler{
		svc: svc,
		log: logger.With("handler", "analytics"),
	}
}

type monthlyActionTrendPayload struct {
	Month     string `json:"month"`
	Created   int    `json:"created"`
	Completed int    `json:"completed"`
}

type actionTrendsPayload struct {
	AverageCompletionDays float64                     `json:"averageCompletionDays"`
	OnTimeCompletionRate  float64                     `json:"onTimeCompletionRate"`
	MonthlyTrends         []monthlyActionTrendPayload `json:"monthlyTrends"`
}

// ActionTrends handles GET /api/v1/members/{id}/trends/actions.
func (h *AnalyticsHandler) ActionTrends(w http.ResponseWriter, r *http.Request) {
	memberID, err := pathID(r)
	if err != nil {
		respondBadRequest(w, "invalid member id")
		return
	}

	trends, err := h.svc.GetMemberActionTrends(r.Context(), memberID)
	if err != nil {
		respondError(r.Context(), w, h.log, err)
		return
	}

	payload := actionTrendsPayload{
		AverageCompletionDays: trends.AverageCompletionDays,
		OnTimeCompletionRate:  trends.OnTimeCompletionRate,
		MonthlyTrends:         make([]monthlyActionTrendPayload, 0, len(trends.MonthlyTrends)),
	}
	for _, t := range trends.MonthlyTrends {
		payload.MonthlyTrends = append(payload.MonthlyTrends, monthlyActionTrendPayload{
			Month:     t.Month,
			Created:   t.Created,
			Completed: t.Completed,
		})
	}
	respondData(w, http.StatusOK, payload)
}

type categoryCountPayload struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

type categoryMonthCountPayload struct {
	Month    string `json:"month"`
	Category string `json:"category"`
	Count    int    `json:"count"`
}

type topicTrendsPayload struct {
	Distribution []categoryCountPayload      `json:"distribution"`
	Timeline     []categoryMonthCountPayload `json:"timeline"`
}

// TopicTrends handles GET /api/v1/members/{id}/trends/topics.
func (h *AnalyticsHandler) TopicTrends(w http.ResponseWriter, r *http.Request) {
	memberID, err := pathID(r)
	if err != nil {
		respondBadRequest(w, "invalid member id")
		return
	}

	trends, err := h.svc.GetMemberTopicTrends(r.Context(), memberID)
	if err != nil {
		respondError(r.Context(), w, h.log, err)
		return
	}

	payload := topicTrendsPayload{
		Distribution: make([]categoryCountPayload, 0, len(trends.Distribution)),
		Timeline:     make([]categoryMonthCountPayload, 0, len(trends.Timeline)),
	}
	for _, d := range trends.Distribution {
		payload.Distribution = append(payload.Distribution, categoryCountPayload{
			Category: d.Category.String(),
			Count:    d.Count,
		})
	}
	for _, c := range trends.Timeline {
		payload.Timeline = append(payload.Timeline, categoryMonthCountPayload{
			Month:    c.Month,
			Category: c.Category.String(),
			Count:    c.Count,
		})
	}
	respondData(w, http.StatusOK, payload)
}

type monthCountPayload struct {
	Month string `json:"month"`
	Count int    `json:"count"`
}

// MeetingFrequency handles GET /api/v1/analytics/meeting-frequency.
func (h *AnalyticsHandler) MeetingFrequency(w http.ResponseWriter, r *http.Request) {
	counts, err := h.svc.GetMeetingFrequencyByMonth(r.Context())
	if err != nil {
		respondError(r.Context(), w, h.log, err)
		return
	}

	payload := make([]monthCountPayload, 0, len(counts))
	for _, c := range counts {
		payload = append(payload, monthCountPayload{Month: c.Month, Count: c.Count})
	}
	respondData(w, http.StatusOK, payload)
}

type heatmapRowPayload struct {
	MemberID   uuid.UUID           `json:"memberId"`
	MemberName string              `json:"memberName"`
	Cells      []monthCountPayload `json:"cells"`
}

// Heatmap handles GET /api/v1/analytics/heatmap: a dense member × month grid.
func (h *AnalyticsHandler) Heatmap(w http.ResponseWriter, r *http.Request) {
	rows, err := h.svc.GetMeetingHeatmap(r.Context())
	if err != nil {
		respondError(r.Context(), w, h.log, err)
		return
	}

	payload := make([]heatmapRowPayload, 0, len(rows))
	for _, row := range rows {
		cells := make([]monthCountPayload, 0, len(row.Cells))
		for _, c := range row.Cells {
			cells = append(cells, monthCountPayload{Month: c.Month, Count: c.Count})
		}
		payload = append(payload, heatmapRowPayload{
			MemberID:   row.MemberID,
			MemberName: row.MemberName,
			Cells:      cells,
		})
	}
	respondData(w, http.StatusOK, payload)
}

// Recommended handles GET /api/v1/reminders/recommended: every member ranked
// by urgency, members who never met first.
func (h *AnalyticsHandler) Recommended(w http.ResponseWriter, r *http.Request) {
	reminders, err := h.svc.GetRecommendedMeetings(r.Context())
	if err != nil {
		respondError(r.Context(), w, h.log, err)
		return
	}
	respondData(w, http.StatusOK, toReminderPayloads(reminders))
}

// Overdue handles GET /api/v1/reminders/overdue: only overdue members,
// longest-waiting first, never-met members last.
func (h *AnalyticsHandler) Overdue(w http.ResponseWriter, r *http.Request) {
	reminders, err := h.svc.GetOverdueReminders(r.Context())
	if err != nil {
		respondError(r.Context(), w, h.log, err)
		return
	}
	respondData(w, http.StatusOK, toReminderPayloads(reminders))
}
