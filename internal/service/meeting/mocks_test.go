package meeting

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/oneonone-backend/internal/domain"
)

var _ meetingRepo = &meetingRepoMock{}

type meetingRepoMock struct {
	CreateFunc       func(ctx context.Context, m *domain.Meeting) (*domain.Meeting, error)
	GetByIDFunc      func(ctx context.Context, id uuid.UUID) (*domain.Meeting, error)
	UpdateFunc       func(ctx context.Context, id uuid.UUID, params domain.MeetingUpdateParams) error
	DeleteFunc       func(ctx context.Context, id uuid.UUID) error
	ListByMemberFunc func(ctx context.Context, memberID uuid.UUID) ([]*domain.Meeting, error)

	calls struct {
		Create  []struct{ Meeting *domain.Meeting }
		GetByID []struct{ ID uuid.UUID }
		Update  []struct {
			ID     uuid.UUID
			Params domain.MeetingUpdateParams
		}
		Delete       []struct{ ID uuid.UUID }
		ListByMember []struct{ MemberID uuid.UUID }
	}
	lock sync.RWMutex
}

func (mock *meetingRepoMock) Create(ctx context.Context, m *domain.Meeting) (*domain.Meeting, error) {
	if mock.CreateFunc == nil {
		panic("meetingRepoMock.CreateFunc: method is nil but meetingRepo.Create was just called")
	}
	mock.lock.Lock()
	mock.calls.Create = append(mock.calls.Create, struct{ Meeting *domain.Meeting }{Meeting: m})
	mock.lock.Unlock()
	return mock.CreateFunc(ctx, m)
}

func (mock *meetingRepoMock) CreateCalls() []struct{ Meeting *domain.Meeting } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Create
}

func (mock *meetingRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Meeting, error) {
	if mock.GetByIDFunc == nil {
		panic("meetingRepoMock.GetByIDFunc: method is nil but meetingRepo.GetByID was just called")
	}
	mock.lock.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, struct{ ID uuid.UUID }{ID: id})
	mock.lock.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *meetingRepoMock) GetByIDCalls() []struct{ ID uuid.UUID } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.GetByID
}

func (mock *meetingRepoMock) Update(ctx context.Context, id uuid.UUID, params domain.MeetingUpdateParams) error {
	if mock.UpdateFunc == nil {
		panic("meetingRepoMock.UpdateFunc: method is nil but meetingRepo.Update was just called")
	}
	mock.lock.Lock()
	mock.calls.Update = append(mock.calls.Update, struct {
		ID     uuid.UUID
		Params domain.MeetingUpdateParams
	}{ID: id, Params: params})
	mock.lock.Unlock()
	return mock.UpdateFunc(ctx, id, params)
}

func (mock *meetingRepoMock) UpdateCalls() []struct {
	ID     uuid.UUID
	Params domain.MeetingUpdateParams
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Update
}

func (mock *meetingRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("meetingRepoMock.DeleteFunc: method is nil but meetingRepo.Delete was just called")
	}
	mock.lock.Lock()
	mock.calls.Delete = append(mock.calls.Delete, struct{ ID uuid.UUID }{ID: id})
	mock.lock.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *meetingRepoMock) DeleteCalls() []struct{ ID uuid.UUID } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Delete
}

func (mock *meetingRepoMock) ListByMember(ctx context.Context, memberID uuid.UUID) ([]*domain.Meeting, error) {
	if mock.ListByMemberFunc == nil {
		panic("meetingRepoMock.ListByMemberFunc: method is nil but meetingRepo.ListByMember was just called")
	}
	mock.lock.Lock()
	mock.calls.ListByMember = append(mock.calls.ListByMember, struct{ MemberID uuid.UUID }{MemberID: memberID})
	mock.lock.Unlock()
	return mock.ListByMemberFunc(ctx, memberID)
}

func (mock *meetingRepoMock) ListByMemberCalls() []struct{ MemberID uuid.UUID } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.ListByMember
}

var _ topicRepo = &topicRepoMock{}

type topicRepoMock struct {
	CreateBatchFunc   func(ctx context.Context, meetingID uuid.UUID, topics []domain.Topic) error
	UpdateFunc        func(ctx context.Context, t domain.Topic) error
	DeleteByIDsFunc   func(ctx context.Context, meetingID uuid.UUID, ids []uuid.UUID) error
	ListByMeetingFunc func(ctx context.Context, meetingID uuid.UUID) ([]domain.Topic, error)

	calls struct {
		CreateBatch []struct {
			MeetingID uuid.UUID
			Topics    []domain.Topic
		}
		Update      []struct{ Topic domain.Topic }
		DeleteByIDs []struct {
			MeetingID uuid.UUID
			IDs       []uuid.UUID
		}
		ListByMeeting []struct{ MeetingID uuid.UUID }
	}
	lock sync.RWMutex
}

func (mock *topicRepoMock) CreateBatch(ctx context.Context, meetingID uuid.UUID, topics []domain.Topic) error {
	if mock.CreateBatchFunc == nil {
		panic("topicRepoMock.CreateBatchFunc: method is nil but topicRepo.CreateBatch was just called")
	}
	mock.lock.Lock()
	mock.calls.CreateBatch = append(mock.calls.CreateBatch, struct {
		MeetingID uuid.UUID
		Topics    []domain.Topic
	}{MeetingID: meetingID, Topics: topics})
	mock.lock.Unlock()
	return mock.CreateBatchFunc(ctx, meetingID, topics)
}

func (mock *topicRepoMock) CreateBatchCalls() []struct {
	MeetingID uuid.UUID
	Topics    []domain.Topic
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.CreateBatch
}

func (mock *topicRepoMock) Update(ctx context.Context, t domain.Topic) error {
	if mock.UpdateFunc == nil {
		panic("topicRepoMock.UpdateFunc: method is nil but topicRepo.Update was just called")
	}
	mock.lock.Lock()
	mock.calls.Update = append(mock.calls.Update, struct{ Topic domain.Topic }{Topic: t})
	mock.lock.Unlock()
	return mock.UpdateFunc(ctx, t)
}

func (mock *topicRepoMock) UpdateCalls() []struct{ Topic domain.Topic } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Update
}

func (mock *topicRepoMock) DeleteByIDs(ctx context.Context, meetingID uuid.UUID, ids []uuid.UUID) error {
	if mock.DeleteByIDsFunc == nil {
		panic("topicRepoMock.DeleteByIDsFunc: method is nil but topicRepo.DeleteByIDs was just called")
	}
	mock.lock.Lock()
	mock.calls.DeleteByIDs = append(mock.calls.DeleteByIDs, struct {
		MeetingID uuid.UUID
		IDs       []uuid.UUID
	}{MeetingID: meetingID, IDs: ids})
	mock.lock.Unlock()
	return mock.DeleteByIDsFunc(ctx, meetingID, ids)
}

func (mock *topicRepoMock) DeleteByIDsCalls() []struct {
	MeetingID uuid.UUID
	IDs       []uuid.UUID
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.DeleteByIDs
}

func (mock *topicRepoMock) ListByMeeting(ctx context.Context, meetingID uuid.UUID) ([]domain.Topic, error) {
	if mock.ListByMeetingFunc == nil {
		panic("topicRepoMock.ListByMeetingFunc: method is nil but topicRepo.ListByMeeting was just called")
	}
	mock.lock.Lock()
	mock.calls.ListByMeeting = append(mock.calls.ListByMeeting, struct{ MeetingID uuid.UUID }{MeetingID: meetingID})
	mock.lock.Unlock()
	return mock.ListByMeetingFunc(ctx, meetingID)
}

func (mock *topicRepoMock) ListByMeetingCalls() []struct{ MeetingID uuid.UUID } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.ListByMeeting
}

var _ actionItemRepo = &actionItemRepoMock{}

type actionItemRepoMock struct {
	CreateBatchFunc   func(ctx context.Context, items []domain.ActionItem) error
	UpdateFunc        func(ctx context.Context, id uuid.UUID, params domain.ActionItemUpdateParams) error
	UpdateStatusFunc  func(ctx context.Context, id uuid.UUID, status domain.ActionItemStatus, completedAt *time.Time) (*domain.ActionItem, error)
	DeleteByIDsFunc   func(ctx context.Context, meetingID uuid.UUID, ids []uuid.UUID) error
	ListByMeetingFunc func(ctx context.Context, meetingID uuid.UUID) ([]domain.ActionItem, error)

	calls struct {
		CreateBatch []struct{ Items []domain.ActionItem }
		Update      []struct {
			ID     uuid.UUID
			Params domain.ActionItemUpdateParams
		}
		UpdateStatus []struct {
			ID          uuid.UUID
			Status      domain.ActionItemStatus
			CompletedAt *time.Time
		}
		DeleteByIDs []struct {
			MeetingID uuid.UUID
			IDs       []uuid.UUID
		}
		ListByMeeting []struct{ MeetingID uuid.UUID }
	}
	lock sync.RWMutex
}

func (mock *actionItemRepoMock) CreateBatch(ctx context.Context, items []domain.ActionItem) error {
	if mock.CreateBatchFunc == nil {
		panic("actionItemRepoMock.CreateBatchFunc: method is nil but actionItemRepo.CreateBatch was just called")
	}
	mock.lock.Lock()
	mock.calls.CreateBatch = append(mock.calls.CreateBatch, struct{ Items []domain.ActionItem }{Items: items})
	mock.lock.Unlock()
	return mock.CreateBatchFunc(ctx, items)
}

func (mock *actionItemRepoMock) CreateBatchCalls() []struct{ Items []domain.ActionItem } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.CreateBatch
}

func (mock *actionItemRepoMock) Update(ctx context.Context, id uuid.UUID, params domain.ActionItemUpdateParams) error {
	if mock.UpdateFunc == nil {
		panic("actionItemRepoMock.UpdateFunc: method is nil but actionItemRepo.Update was just called")
	}
	mock.lock.Lock()
	mock.calls.Update = append(mock.calls.Update, struct {
		ID     uuid.UUID
		Params domain.ActionItemUpdateParams
	}{ID: id, Params: params})
	mock.lock.Unlock()
	return mock.UpdateFunc(ctx, id, params)
}

func (mock *actionItemRepoMock) UpdateCalls() []struct {
	ID     uuid.UUID
	Params domain.ActionItemUpdateParams
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Update
}

func (mock *actionItemRepoMock) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.ActionItemStatus, completedAt *time.Time) (*domain.ActionItem, error) {
	if mock.UpdateStatusFunc == nil {
		panic("actionItemRepoMock.UpdateStatusFunc: method is nil but actionItemRepo.UpdateStatus was just called")
	}
	mock.lock.Lock()
	mock.calls.UpdateStatus = append(mock.calls.UpdateStatus, struct {
		ID          uuid.UUID
		Status      domain.ActionItemStatus
		CompletedAt *time.Time
	}{ID: id, Status: status, CompletedAt: completedAt})
	mock.lock.Unlock()
	return mock.UpdateStatusFunc(ctx, id, status, completedAt)
}

func (mock *actionItemRepoMock) UpdateStatusCalls() []struct {
	ID          uuid.UUID
	Status      domain.ActionItemStatus
	CompletedAt *time.Time
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.UpdateStatus
}

func (mock *actionItemRepoMock) DeleteByIDs(ctx context.Context, meetingID uuid.UUID, ids []uuid.UUID) error {
	if mock.DeleteByIDsFunc == nil {
		panic("actionItemRepoMock.DeleteByIDsFunc: method is nil but actionItemRepo.DeleteByIDs was just called")
	}
	mock.lock.Lock()
	mock.calls.DeleteByIDs = append(mock.calls.DeleteByIDs, struct {
		MeetingID uuid.UUID
		IDs       []uuid.UUID
	}{MeetingID: meetingID, IDs: ids})
	mock.lock.Unlock()
	return mock.DeleteByIDsFunc(ctx, meetingID, ids)
}

func (mock *actionItemRepoMock) DeleteByIDsCalls() []struct {
	MeetingID uuid.UUID
	IDs       []uuid.UUID
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.DeleteByIDs
}

func (mock *actionItemRepoMock) ListByMeeting(ctx context.Context, meetingID uuid.UUID) ([]domain.ActionItem, error) {
	if mock.ListByMeetingFunc == nil {
		panic("actionItemRepoMock.ListByMeetingFunc: method is nil but actionItemRepo.ListByMeeting was just called")
	}
	mock.lock.Lock()
	mock.calls.ListByMeeting = append(mock.calls.ListByMeeting, struct{ MeetingID uuid.UUID }{MeetingID: meetingID})
	mock.lock.Unlock()
	return mock.ListByMeetingFunc(ctx, meetingID)
}

func (mock *actionItemRepoMock) ListByMeetingCalls() []struct{ MeetingID uuid.UUID } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.ListByMeeting
}

var _ memberRepo = &memberRepoMock{}

type memberRepoMock struct {
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.Member, error)

	calls struct {
		GetByID []struct{ ID uuid.UUID }
	}
	lock sync.RWMutex
}

func (mock *memberRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Member, error) {
	if mock.GetByIDFunc == nil {
		panic("memberRepoMock.GetByIDFunc: method is nil but memberRepo.GetByID was just called")
	}
	mock.lock.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, struct{ ID uuid.UUID }{ID: id})
	mock.lock.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *memberRepoMock) GetByIDCalls() []struct{ ID uuid.UUID } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.GetByID
}

var _ txManager = &txManagerMock{}

type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error
}

// RunInTx executes fn directly unless RunInTxFunc overrides the behavior.
func (mock *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if mock.RunInTxFunc != nil {
		return mock.RunInTxFunc(ctx, fn)
	}
	return fn(ctx)
}

var _ cacheInvalidator = &cacheInvalidatorMock{}

type cacheInvalidatorMock struct {
	InvalidateMemberFunc func(ctx context.Context, memberID string) error

	calls struct {
		InvalidateMember []struct{ MemberID string }
	}
	lock sync.RWMutex
}

func (mock *cacheInvalidatorMock) InvalidateMember(ctx context.Context, memberID string) error {
	mock.lock.Lock()
	mock.calls.InvalidateMember = append(mock.calls.InvalidateMember, struct{ MemberID string }{MemberID: memberID})
	mock.lock.Unlock()
	if mock.InvalidateMemberFunc != nil {
		return mock.InvalidateMemberFunc(ctx, memberID)
	}
	return nil
}

func (mock *cacheInvalidatorMock) InvalidateMemberCalls() []struct{ MemberID string } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.InvalidateMember
}
