package mocks

import (
	"context"

	"go-event-planner/internal/cache"
	"go-event-planner/internal/model"

	"github.com/stretchr/testify/mock"
)

type SessionStoreMock struct {
	mock.Mock
}

func NewSessionStoreMock() *SessionStoreMock {
	return &SessionStoreMock{}
}

func (m *SessionStoreMock) Create(ctx context.Context, user *model.User) (*cache.Session, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cache.Session), args.Error(1)
}

func (m *SessionStoreMock) Get(ctx context.Context, token string) (*cache.Session, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cache.Session), args.Error(1)
}

func (m *SessionStoreMock) Delete(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}
