package member

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/oneonone-backend/internal/domain"
)

var _ memberRepo = &memberRepoMock{}

type memberRepoMock struct {
	CreateFunc              func(ctx context.Context, m *domain.Member) (*domain.Member, error)
	GetByIDFunc             func(ctx context.Context, id uuid.UUID) (*domain.Member, error)
	ListFunc                func(ctx context.Context) ([]*domain.Member, error)
	UpdateFunc              func(ctx context.Context, id uuid.UUID, params domain.MemberUpdateParams) (*domain.Member, error)
	DeleteFunc              func(ctx context.Context, id uuid.UUID) error
	ListWithLastMeetingFunc func(ctx context.Context) ([]domain.MemberLastMeeting, error)

	calls struct {
		Create  []struct{ Member *domain.Member }
		GetByID []struct{ ID uuid.UUID }
		List    []struct{}
		Update  []struct {
			ID     uuid.UUID
			Params domain.MemberUpdateParams
		}
		Delete              []struct{ ID uuid.UUID }
		ListWithLastMeeting []struct{}
	}
	lock sync.RWMutex
}

func (mock *memberRepoMock) Create(ctx context.Context, m *domain.Member) (*domain.Member, error) {
	if mock.CreateFunc == nil {
		panic("memberRepoMock.CreateFunc: method is nil but memberRepo.Create was just called")
	}
	mock.lock.Lock()
	mock.calls.Create = append(mock.calls.Create, struct{ Member *domain.Member }{Member: m})
	mock.lock.Unlock()
	return mock.CreateFunc(ctx, m)
}

func (mock *memberRepoMock) CreateCalls() []struct{ Member *domain.Member } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Create
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

func (mock *memberRepoMock) List(ctx context.Context) ([]*domain.Member, error) {
	if mock.ListFunc == nil {
		panic("memberRepoMock.ListFunc: method is nil but memberRepo.List was just called")
	}
	mock.lock.Lock()
	mock.calls.List = append(mock.calls.List, struct{}{})
	mock.lock.Unlock()
	return mock.ListFunc(ctx)
}

func (mock *memberRepoMock) ListCalls() []struct{} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.List
}

func (mock *memberRepoMock) Update(ctx context.Context, id uuid.UUID, params domain.MemberUpdateParams) (*domain.Member, error) {
	if mock.UpdateFunc == nil {
		panic("memberRepoMock.UpdateFunc: method is nil but memberRepo.Update was just called")
	}
	mock.lock.Lock()
	mock.calls.Update = append(mock.calls.Update, struct {
		ID     uuid.UUID
		Params domain.MemberUpdateParams
	}{ID: id, Params: params})
	mock.lock.Unlock()
	return mock.UpdateFunc(ctx, id, params)
}

func (mock *memberRepoMock) UpdateCalls() []struct {
	ID     uuid.UUID
	Params domain.MemberUpdateParams
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Update
}

func (mock *memberRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("memberRepoMock.DeleteFunc: method is nil but memberRepo.Delete was just called")
	}
	mock.lock.Lock()
	mock.calls.Delete = append(mock.calls.Delete, struct{ ID uuid.UUID }{ID: id})
	mock.lock.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *memberRepoMock) DeleteCalls() []struct{ ID uuid.UUID } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Delete
}

func (mock *memberRepoMock) ListWithLastMeeting(ctx context.Context) ([]domain.MemberLastMeeting, error) {
	if mock.ListWithLastMeetingFunc == nil {
		panic("memberRepoMock.ListWithLastMeetingFunc: method is nil but memberRepo.ListWithLastMeeting was just called")
	}
	mock.lock.Lock()
	mock.calls.ListWithLastMeeting = append(mock.calls.ListWithLastMeeting, struct{}{})
	mock.lock.Unlock()
	return mock.ListWithLastMeetingFunc(ctx)
}

func (mock *memberRepoMock) ListWithLastMeetingCalls() []struct{} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.ListWithLastMeeting
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
