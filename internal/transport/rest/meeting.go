package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/oneonone-backend/internal/domain"
	"github.com/heartmarshall/oneonone-backend/internal/service/meeting"
)

type meetingService interface {
	CreateMeeting(ctx context.Context, input meeting.CreateMeetingInput) (*domain.Meeting, error)
	GetMeeting(ctx context.Context, id uuid.UUID) (*domain.Meeting, error)
	UpdateMeeting(ctx context.Context, input meeting.UpdateMeetingInput) (*domain.Meeting, error)
	DeleteMeeting(ctx context.Context, id uuid.UUID) error
	ListMeetingsByMember(ctx context.Context, memberID uuid.UUID) ([]*domain.Meeting, error)
	UpdateActionItemStatus(ctx context.Context, id uuid.UUID, status domain.ActionItemStatus) (*domain.ActionItem, error)
}

// MeetingHandler serves the meeting and action item endpoints.
type MeetingHandler struct {
	svc meetingService
	log *slog.Logger
}

func NewMeetingHandler(svc meetingService, logger *slog.Logger) *MeetingHandler {
	return &MeetingHandler{
		svc: svc,
		log: logger.With("handler", "meeting"),
	}
}

// topicDraftRequest mirrors meeting.TopicDraft on the wire. A present id
// updates that topic; an absent id inserts a new one.
type topicDraftRequest struct {
	ID        *uuid.UUID `json:"id"`
	Category  string     `json:"category"`
	Title     string     `json:"title"`
	Notes     string     `json:"notes"`
	SortOrder int        `json:"sortOrder"`
}

type actionItemDraftRequest struct {
	ID          *uuid.UUID `json:"id"`
	Title       string     `json:"title"`
	Description *string    `json:"description"`
	DueDate     *string    `json:"dueDate"`
	SortOrder   int        `json:"sortOrder"`
}

func toTopicDrafts(reqs []topicDraftRequest) []meeting.TopicDraft {
	drafts := make([]meeting.TopicDraft, 0, len(reqs))
	for _, t := range reqs {
		drafts = append(drafts, meeting.TopicDraft{
			ID:        t.ID,
			Category:  domain.TopicCategory(t.Category),
			Title:     t.Title,
			Notes:     t.Notes,
			SortOrder: t.SortOrder,
		})
	}
	return drafts
}

func toActionItemDrafts(reqs []actionItemDraftRequest) ([]meeting.ActionItemDraft, error) {
	drafts := make([]meeting.ActionItemDraft, 0, len(reqs))
	for _, a := range reqs {
		due, err := parseDatePtr(a.DueDate)
		if err != nil {
			return nil, err
		}
		drafts = append(drafts, meeting.ActionItemDraft{
			ID:          a.ID,
			Title:       a.Title,
			Description: a.Description,
			DueDate:     due,
			SortOrder:   a.SortOrder,
		})
	}
	return drafts, nil
}

type createMeetingRequest struct {
	MemberID    uuid.UUID                `json:"memberId"`
	Date        string                   `json:"date"`
	Mood        *int                     `json:"mood"`
	Topics      []topicDraftRequest      `json:"topics"`
	ActionItems []actionItemDraftRequest `json:"actionItems"`
}

// Create handles POST /api/v1/meetings. The meeting and all submitted
// children are written in one transaction.
func (h *MeetingHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createMeetingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondBadRequest(w, "invalid request body")
		return
	}

	date, err := parseDate(req.Date)
	if err != nil {
		respondBadRequest(w, "invalid date: expected YYYY-MM-DD or RFC 3339")
		return
	}
	items, err := toActionItemDrafts(req.ActionItems)
	if err != nil {
		respondBadRequest(w, "invalid action item due date")
		return
	}

	created, err := h.svc.CreateMeeting(r.Context(), meeting.CreateMeetingInput{
		MemberID:    req.MemberID,
		Date:        date,
		Mood:        req.Mood,
		Topics:      toTopicDrafts(req.Topics),
		ActionItems: items,
	})
	if err != nil {
		respondError(r.Context(), w, h.log, err)
		return
	}

	respondData(w, http.StatusCreated, toMeetingPayload(created))
}

// Get handles GET /api/v1/meetings/{id}, children included.
func (h *MeetingHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondBadRequest(w, "invalid meeting id")
		return
	}

	m, err := h.svc.GetMeeting(r.Context(), id)
	if err != nil {
		respondError(r.Context(), w, h.log, err)
		return
	}

	respondData(w, http.StatusOK, toMeetingPayload(m))
}

type updateMeetingRequest struct {
	Date                 *string                  `json:"date"`
	StartedAt            *string                  `json:"startedAt"`
	EndedAt              *string                  `json:"endedAt"`
	Mood                 *int                     `json:"mood"`
	Topics               []topicDraftRequest      `json:"topics"`
	ActionItems          []actionItemDraftRequest `json:"actionItems"`
	DeletedTopicIDs      []uuid.UUID              `json:"deletedTopicIds"`
	DeletedActionItemIDs []uuid.UUID              `json:"deletedActionItemIds"`
}

// Update handles PUT /api/v1/meetings/{id}: the submitted drafts and deletion
// lists are reconciled against the stored meeting in one transaction.
func (h *MeetingHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondBadRequest(w, "invalid meeting id")
		return
	}

	var req updateMeetingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondBadRequest(w, "invalid request body")
		return
	}

	date, err := parseDatePtr(req.Date)
	if err != nil {
		respondBadRequest(w, "invalid date: expected YYYY-MM-DD or RFC 3339")
		return
	}
	startedAt, err := parseDatePtr(req.StartedAt)
	if err != nil {
		respondBadRequest(w, "invalid startedAt timestamp")
		return
	}
	endedAt, err := parseDatePtr(req.EndedAt)
	if err != nil {
		respondBadRequest(w, "invalid endedAt timestamp")
		return
	}
	items, err := toActionItemDrafts(req.ActionItems)
	if err != nil {
		respondBadRequest(w, "invalid action item due date")
		return
	}

	updated, err := h.svc.UpdateMeeting(r.Context(), meeting.UpdateMeetingInput{
		MeetingID:            id,
		Date:                 date,
		StartedAt:            startedAt,
		EndedAt:              endedAt,
		Mood:                 req.Mood,
		Topics:               toTopicDrafts(req.Topics),
		ActionItems:          items,
		DeletedTopicIDs:      req.DeletedTopicIDs,
		DeletedActionItemIDs: req.DeletedActionItemIDs,
	})
	if err != nil {
		respondError(r.Context(), w, h.log, err)
		return
	}

	respondData(w, http.StatusOK, toMeetingPayload(updated))
}

// Delete handles DELETE /api/v1/meetings/{id}.
func (h *MeetingHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondBadRequest(w, "invalid meeting id")
		return
	}

	if err := h.svc.DeleteMeeting(r.Context(), id); err != nil {
		respondError(r.Context(), w, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ListByMember handles GET /api/v1/members/{id}/meetings, newest first,
// without children.
func (h *MeetingHandler) ListByMember(w http.ResponseWriter, r *http.Request) {
	memberID, err := pathID(r)
	if err != nil {
		respondBadRequest(w, "invalid member id")
		return
	}

	meetings, err := h.svc.ListMeetingsByMember(r.Context(), memberID)
	if err != nil {
		respondError(r.Context(), w, h.log, err)
		return
	}

	payload := make([]meetingPayload, 0, len(meetings))
	for _, m := range meetings {
		payload = append(payload, toMeetingPayload(m))
	}
	respondData(w, http.StatusOK, payload)
}

type updateActionItemStatusRequest struct {
	Status string `json:"status"`
}

// UpdateActionItemStatus handles PATCH /api/v1/action-items/{id}/status.
func (h *MeetingHandler) UpdateActionItemStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondBadRequest(w, "invalid action item id")
		return
	}

	var req updateActionItemStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondBadRequest(w, "invalid request body")
		return
	}

	item, err := h.svc.UpdateActionItemStatus(r.Context(), id, domain.ActionItemStatus(req.Status))
	if err != nil {
		respondError(r.Context(), w, h.log, err)
		return
	}

	respondData(w, http.StatusOK, toActionItemPayload(*item))
}
