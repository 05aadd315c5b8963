package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"logidocs/internal/model"
)

type MockParticipantRepository struct {
	mock.Mock
}

func (m *MockParticipantRepository) Create(ctx context.Context, p *model.Participant) (*model.Participant, error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Participant), args.Error(1)
}

func (m *MockParticipantRepository) Exists(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockParticipantRepository) FindDetail(ctx context.Context, id string) (*model.ParticipantDetail, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ParticipantDetail), args.Error(1)
}

func (m *MockParticipantRepository) ListByOperation(ctx context.Context, operationID string) ([]model.ParticipantDetail, error) {
	args := m.Called(ctx, operationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ParticipantDetail), args.Error(1)
}

func (m *MockParticipantRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
