package rest

import "net/http"

// NewRouter builds the HTTP route table. Method-qualified patterns let the
// mux reject wrong-method requests with 405 without extra handlers.
func NewRouter(
	members *MemberHandler,
	meetings *MeetingHandler,
	analytics *AnalyticsHandler,
	health *HealthHandler,
) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", health.Live)
	mux.HandleFunc("GET /ready", health.Ready)
	mux.HandleFunc("GET /health", health.Health)

	mux.HandleFunc("POST /api/v1/members", members.Create)
	mux.HandleFunc("GET /api/v1/members", members.List)
	mux.HandleFunc("GET /api/v1/members/{id}", members.Get)
	mux.HandleFunc("PUT /api/v1/members/{id}", members.Update)
	mux.HandleFunc("DELETE /api/v1/members/{id}", members.Delete)

	mux.HandleFunc("POST /api/v1/meetings", meetings.Create)
	mux.HandleFunc("GET /api/v1/meetings/{id}", meetings.Get)
	mux.HandleFunc("PUT /api/v1/meetings/{id}", meetings.Update)
	mux.HandleFunc("DELETE /api/v1/meetings/{id}", meetings.Delete)
	mux.HandleFunc("GET /api/v1/members/{id}/meetings", meetings.ListByMember)
	mux.HandleFunc("PATCH /api/v1/action-items/{id}/status", meetings.UpdateActionItemStatus)

	mux.HandleFunc("GET /api/v1/members/{id}/trends/actions", analytics.ActionTrends)
	mux.HandleFunc("GET /api/v1/members/{id}/trends/topics", analytics.TopicTrends)
	mux.HandleFunc("GET /api/v1/analytics/meeting-frequency", analytics.MeetingFrequency)
	mux.HandleFunc("GET /api/v1/analytics/heatmap", analytics.Heatmap)
	mux.HandleFunc("GET /api/v1/reminders/recommended", analytics.Recommended)
	mux.HandleFunc("GET /api/v1/reminders/overdue", analytics.Overdue)

	return mux
}
