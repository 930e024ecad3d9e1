package mocks

import (
	"context"
	"time"

	"go-event-planner/internal/cache"
	"go-event-planner/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type AuthServiceMock struct {
	mock.Mock
}

func NewAuthServiceMock() *AuthServiceMock {
	return &AuthServiceMock{}
}

func (m *AuthServiceMock) Register(ctx context.Context, email, password string, role model.Role) (*model.User, error) {
	args := m.Called(ctx, email, password, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *AuthServiceMock) Login(ctx context.Context, email, password string, claimedRole model.Role) (*cache.Session, error) {
	args := m.Called(ctx, email, password, claimedRole)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cache.Session), args.Error(1)
}

func (m *AuthServiceMock) Logout(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

type EventServiceMock struct {
	mock.Mock
}

func NewEventServiceMock() *EventServiceMock {
	return &EventServiceMock{}
}

func (m *EventServiceMock) Create(ctx context.Context, adminID int, event *model.Event) (*model.Event, error) {
	args := m.Called(ctx, adminID, event)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Event), args.Error(1)
}

func (m *EventServiceMock) GetByEventID(ctx context.Context, eventID uuid.UUID) (*model.Event, error) {
	args := m.Called(ctx, eventID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Event), args.Error(1)
}

func (m *EventServiceMock) ListUpcoming(ctx context.Context, from time.Time) ([]*model.Event, error) {
	args := m.Called(ctx, from)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Event), args.Error(1)
}

func (m *EventServiceMock) UpdateByEventID(ctx context.Context, adminID int, eventID uuid.UUID, params model.UpdateEventParams) (*model.Event, error) {
	args := m.Called(ctx, adminID, eventID, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Event), args.Error(1)
}

func (m *EventServiceMock) DeleteByEventID(ctx context.Context, adminID int, eventID uuid.UUID) error {
	args := m.Called(ctx, adminID, eventID)
	return args.Error(0)
}

func (m *EventServiceMock) Summary(ctx context.Context, adminID int, eventID uuid.UUID) (*model.RSVPSummary, error) {
	args := m.Called(ctx, adminID, eventID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.RSVPSummary), args.Error(1)
}

type RSVPServiceMock struct {
	mock.Mock
}

func NewRSVPServiceMock() *RSVPServiceMock {
	return &RSVPServiceMock{}
}

func (m *RSVPServiceMock) Submit(ctx context.Context, userID int, eventID uuid.UUID, status model.RSVPStatus, today time.Time) (*model.RSVP, error) {
	args := m.Called(ctx, userID, eventID, status, today)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.RSVP), args.Error(1)
}

func (m *RSVPServiceMock) ListForUser(ctx context.Context, userID int) ([]*model.RSVP, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.RSVP), args.Error(1)
}

func (m *RSVPServiceMock) Get(ctx context.Context, userID int, eventID uuid.UUID) (*model.RSVP, error) {
	args := m.Called(ctx, userID, eventID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.RSVP), args.Error(1)
}
