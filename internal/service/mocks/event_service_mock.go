package mocks

import (
	"context"

	"eventboard/internal/model"

	"github.com/stretchr/testify/mock"
)

type EventServiceMock struct {
	mock.Mock
}

func NewEventServiceMock() *EventServiceMock {
	return &EventServiceMock{}
}

func (m *EventServiceMock) List(ctx context.Context, filter model.EventFilter) ([]model.Event, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Event), args.Error(1)
}

func (m *EventServiceMock) GetByID(ctx context.Context, id string) (*model.Event, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Event), args.Error(1)
}

func (m *EventServiceMock) Create(ctx context.Context, input model.CreateEventInput) (*model.Event, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Event), args.Error(1)
}

func (m *EventServiceMock) Update(ctx context.Context, id string, params model.UpdateEventParams) (*model.Event, error) {
	args := m.Called(ctx, id, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Event), args.Error(1)
}

func (m *EventServiceMock) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *EventServiceMock) AddRSVP(ctx context.Context, id string) (*model.Event, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Event), args.Error(1)
}

func (m *EventServiceMock) CancelRSVP(ctx context.Context, id string) (*model.Event, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Event), args.Error(1)
}
