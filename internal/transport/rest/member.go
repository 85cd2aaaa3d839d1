package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/oneonone-backend/internal/domain"
	"github.com/heartmarshall/oneonone-backend/internal/service/member"
)

type memberService interface {
	CreateMember(ctx context.Context, input member.CreateMemberInput) (*domain.Member, error)
	GetMember(ctx context.Context, id uuid.UUID) (*domain.Member, error)
	UpdateMember(ctx context.Context, id uuid.UUID, input member.UpdateMemberInput) (*domain.Member, error)
	DeleteMember(ctx context.Context, id uuid.UUID) error
	ListMembers(ctx context.Context) ([]domain.MemberOverview, error)
}

// MemberHandler serves the member CRUD endpoints.
type MemberHandler struct {
	svc memberService
	log *slog.Logger
}

func NewMemberHandler(svc memberService, logger *slog.Logger) *MemberHandler {
	return &MemberHandler{
		svc: svc,
		log: logger.With("handler", "member"),
	}
}

type createMemberRequest struct {
	Name                string  `json:"name"`
	Department          *string `json:"department"`
	Position            *string `json:"position"`
	MeetingIntervalDays int     `json:"meetingIntervalDays"`
}

// Create handles POST /api/v1/members.
func (h *MemberHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createMemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondBadRequest(w, "invalid request body")
		return
	}

	created, err := h.svc.CreateMember(r.Context(), member.CreateMemberInput{
		Name:                req.Name,
		Department:          req.Department,
		Position:            req.Position,
		MeetingIntervalDays: req.MeetingIntervalDays,
	})
	if err != nil {
		respondError(r.Context(), w, h.log, err)
		return
	}

	respondData(w, http.StatusCreated, toMemberPayload(created))
}

// List handles GET /api/v1/members. Each entry carries the member row plus
// the derived scheduling state.
func (h *MemberHandler) List(w http.ResponseWriter, r *http.Request) {
	overviews, err := h.svc.ListMembers(r.Context())
	if err != nil {
		respondError(r.Context(), w, h.log, err)
		return
	}

	payload := make([]memberOverviewPayload, 0, len(overviews))
	for _, o := range overviews {
		payload = append(payload, toMemberOverviewPayload(o))
	}
	respondData(w, http.StatusOK, payload)
}

// Get handles GET /api/v1/members/{id}.
func (h *MemberHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondBadRequest(w, "invalid member id")
		return
	}

	m, err := h.svc.GetMember(r.Context(), id)
	if err != nil {
		respondError(r.Context(), w, h.log, err)
		return
	}

	respondData(w, http.StatusOK, toMemberPayload(m))
}

type updateMemberRequest struct {
	Name                *string `json:"name"`
	Department          *string `json:"department"`
	Position            *string `json:"position"`
	MeetingIntervalDays *int    `json:"meetingIntervalDays"`
}

// Update handles PUT /api/v1/members/{id}. Absent fields are left unchanged.
func (h *MemberHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondBadRequest(w, "invalid member id")
		return
	}

	var req updateMemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondBadRequest(w, "invalid request body")
		return
	}

	updated, err := h.svc.UpdateMember(r.Context(), id, member.UpdateMemberInput{
		Name:                req.Name,
		Department:          req.Department,
		Position:            req.Position,
		MeetingIntervalDays: req.MeetingIntervalDays,
	})
	if err != nil {
		respondError(r.Context(), w, h.log, err)
		return
	}

	respondData(w, http.StatusOK, toMemberPayload(updated))
}

// Delete handles DELETE /api/v1/members/{id}.
func (h *MemberHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondBadRequest(w, "invalid member id")
		return
	}

	if err := h.svc.DeleteMember(r.Context(), id); err != nil {
		respondError(r.Context(), w, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
