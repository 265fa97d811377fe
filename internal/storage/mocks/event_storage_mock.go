package mocks

import (
	"context"

	"eventboard/internal/model"

	"github.com/stretchr/testify/mock"
)

type EventStorageMock struct {
	mock.Mock
}

func NewEventStorageMock() *EventStorageMock {
	return &EventStorageMock{}
}

func (m *EventStorageMock) Load(ctx context.Context) ([]model.Event, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Event), args.Error(1)
}

func (m *EventStorageMock) Save(ctx context.Context, events []model.Event) error {
	args := m.Called(ctx, events)
	return args.Error(0)
}
