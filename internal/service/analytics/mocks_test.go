package analytics

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/oneonone-backend/internal/domain"
)

var _ memberRepo = &memberRepoMock{}

type memberRepoMock struct {
	GetByIDFunc             func(ctx context.Context, id uuid.UUID) (*domain.Member, error)
	ListWithLastMeetingFunc func(ctx context.Context) ([]domain.MemberLastMeeting, error)

	calls struct {
		GetByID             []struct{ ID uuid.UUID }
		ListWithLastMeeting []struct{}
	}
	lockGetByID             sync.RWMutex
	lockListWithLastMeeting sync.RWMutex
}

func (mock *memberRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Member, error) {
	if mock.GetByIDFunc == nil {
		panic("memberRepoMock.GetByIDFunc: method is nil but memberRepo.GetByID was just called")
	}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, struct{ ID uuid.UUID }{ID: id})
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *memberRepoMock) GetByIDCalls() []struct{ ID uuid.UUID } {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *memberRepoMock) ListWithLastMeeting(ctx context.Context) ([]domain.MemberLastMeeting, error) {
	if mock.ListWithLastMeetingFunc == nil {
		panic("memberRepoMock.ListWithLastMeetingFunc: method is nil but memberRepo.ListWithLastMeeting was just called")
	}
	mock.lockListWithLastMeeting.Lock()
	mock.calls.ListWithLastMeeting = append(mock.calls.ListWithLastMeeting, struct{}{})
	mock.lockListWithLastMeeting.Unlock()
	return mock.ListWithLastMeetingFunc(ctx)
}

func (mock *memberRepoMock) ListWithLastMeetingCalls() []struct{} {
	mock.lockListWithLastMeeting.RLock()
	calls := mock.calls.ListWithLastMeeting
	mock.lockListWithLastMeeting.RUnlock()
	return calls
}

var _ meetingRepo = &meetingRepoMock{}

type meetingRepoMock struct {
	ListDatesSinceFunc func(ctx context.Context, since time.Time) ([]domain.MemberMeetingDate, error)

	calls struct {
		ListDatesSince []struct{ Since time.Time }
	}
	lockListDatesSince sync.RWMutex
}

func (mock *meetingRepoMock) ListDatesSince(ctx context.Context, since time.Time) ([]domain.MemberMeetingDate, error) {
	if mock.ListDatesSinceFunc == nil {
		panic("meetingRepoMock.ListDatesSinceFunc: method is nil but meetingRepo.ListDatesSince was just called")
	}
	mock.lockListDatesSince.Lock()
	mock.calls.ListDatesSince = append(mock.calls.ListDatesSince, struct{ Since time.Time }{Since: since})
	mock.lockListDatesSince.Unlock()
	return mock.ListDatesSinceFunc(ctx, since)
}

func (mock *meetingRepoMock) ListDatesSinceCalls() []struct{ Since time.Time } {
	mock.lockListDatesSince.RLock()
	calls := mock.calls.ListDatesSince
	mock.lockListDatesSince.RUnlock()
	return calls
}

var _ topicRepo = &topicRepoMock{}

type topicRepoMock struct {
	ListByMemberWithDatesFunc func(ctx context.Context, memberID uuid.UUID) ([]domain.TopicWithDate, error)

	calls struct {
		ListByMemberWithDates []struct{ MemberID uuid.UUID }
	}
	lockListByMemberWithDates sync.RWMutex
}

func (mock *topicRepoMock) ListByMemberWithDates(ctx context.Context, memberID uuid.UUID) ([]domain.TopicWithDate, error) {
	if mock.ListByMemberWithDatesFunc == nil {
		panic("topicRepoMock.ListByMemberWithDatesFunc: method is nil but topicRepo.ListByMemberWithDates was just called")
	}
	mock.lockListByMemberWithDates.Lock()
	mock.calls.ListByMemberWithDates = append(mock.calls.ListByMemberWithDates, struct{ MemberID uuid.UUID }{MemberID: memberID})
	mock.lockListByMemberWithDates.Unlock()
	return mock.ListByMemberWithDatesFunc(ctx, memberID)
}

func (mock *topicRepoMock) ListByMemberWithDatesCalls() []struct{ MemberID uuid.UUID } {
	mock.lockListByMemberWithDates.RLock()
	calls := mock.calls.ListByMemberWithDates
	mock.lockListByMemberWithDates.RUnlock()
	return calls
}

var _ actionItemRepo = &actionItemRepoMock{}

type actionItemRepoMock struct {
	ListByMemberFunc func(ctx context.Context, memberID uuid.UUID) ([]domain.ActionItem, error)

	calls struct {
		ListByMember []struct{ MemberID uuid.UUID }
	}
	lockListByMember sync.RWMutex
}

func (mock *actionItemRepoMock) ListByMember(ctx context.Context, memberID uuid.UUID) ([]domain.ActionItem, error) {
	if mock.ListByMemberFunc == nil {
		panic("actionItemRepoMock.ListByMemberFunc: method is nil but actionItemRepo.ListByMember was just called")
	}
	mock.lockListByMember.Lock()
	mock.calls.ListByMember = append(mock.calls.ListByMember, struct{ MemberID uuid.UUID }{MemberID: memberID})
	mock.lockListByMember.Unlock()
	return mock.ListByMemberFunc(ctx, memberID)
}

func (mock *actionItemRepoMock) ListByMemberCalls() []struct{ MemberID uuid.UUID } {
	mock.lockListByMember.RLock()
	calls := mock.calls.ListByMember
	mock.lockListByMember.RUnlock()
	return calls
}

var _ readModelCache = &readModelCacheMock{}

// readModelCacheMock is an in-memory cache double keyed by kind (+member id).
type readModelCacheMock struct {
	mu      sync.Mutex
	entries map[string]any
	getHits int
	sets    int
}

func newCacheMock() *readModelCacheMock {
	return &readModelCacheMock{entries: map[string]any{}}
}

func (m *readModelCacheMock) GetMember(_ context.Context, kind, memberID string, dest any) bool {
	return m.get(kind+":"+memberID, dest)
}

func (m *readModelCacheMock) SetMember(_ context.Context, kind, memberID string, value any) error {
	m.set(kind+":"+memberID, value)
	return nil
}

func (m *readModelCacheMock) GetGlobal(_ context.Context, kind string, dest any) bool {
	return m.get(kind, dest)
}

func (m *readModelCacheMock) SetGlobal(_ context.Context, kind string, value any) error {
	m.set(kind, value)
	return nil
}

func (m *readModelCacheMock) get(key string, dest any) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.entries[key]
	if !ok {
		return false
	}
	m.getHits++
	switch d := dest.(type) {
	case *domain.ActionTrends:
		*d = *v.(*domain.ActionTrends)
	case *domain.TopicTrends:
		*d = *v.(*domain.TopicTrends)
	case *[]domain.MonthCount:
		*d = v.([]domain.MonthCount)
	case *[]domain.HeatmapRow:
		*d = v.([]domain.HeatmapRow)
	case *[]domain.MemberReminder:
		*d = v.([]domain.MemberReminder)
	default:
		panic("readModelCacheMock: unsupported dest type")
	}
	return true
}

func (m *readModelCacheMock) set(key string, value any) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[key] = value
	m.sets++
}
